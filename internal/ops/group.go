package ops

import (
	"github.com/tacogips/crumb/internal/crumb"
)

// GroupByPattern lists one argument once per named pattern and returns the
// matches per group name. Groups with no matches are omitted; an entry may
// appear under several groups when their patterns overlap.
func GroupByPattern(c *crumb.Crumb, argName string, groups map[string]string) (map[string][]crumb.Resolved, error) {
	if !c.HasArg(argName) {
		return nil, crumb.NewUsageError("argument not open in crumb path", argName)
	}

	grouped := make(map[string][]crumb.Resolved)
	for group, pattern := range groups {
		pc, err := c.SetPattern(argName, pattern)
		if err != nil {
			return nil, err
		}
		results, err := pc.Ls(argName, crumb.LsOptions{FullPath: true, MakeCrumbs: true, Dedup: true})
		if err != nil {
			return nil, err
		}
		if len(results) > 0 {
			grouped[group] = results
		}
	}
	return grouped, nil
}
