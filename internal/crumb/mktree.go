package crumb

import (
	"fmt"

	"github.com/tacogips/crumb/internal/debug"
)

// Mktree creates one directory tree per binding map: each map is validated,
// bound into the crumb, and the resulting fixed prefix is created (existing
// directories are not an error). A nil valuesMaps creates the crumb's own
// fixed prefix. Maps are processed independently; a failing map does not roll
// back directories created for earlier maps, but its own validation happens
// before any side effect.
func (c *Crumb) Mktree(valuesMaps []map[string]string) ([]string, error) {
	if valuesMaps == nil {
		p, err := c.Touch(true)
		if err != nil {
			return nil, err
		}
		return []string{p}, nil
	}

	open := make(map[string]struct{})
	for _, name := range c.OpenArgs() {
		open[name] = struct{}{}
	}

	var paths []string
	for i, m := range valuesMaps {
		for name := range m {
			if _, ok := open[name]; !ok {
				return paths, newErrorWithArg(ErrUsage,
					fmt.Sprintf("values map %d names an argument that is not open", i), name)
			}
		}
		if missing := c.remainingDeps(m); len(missing) > 0 {
			return paths, newError(ErrMissingArgs,
				fmt.Sprintf("values map %d leaves ancestor arguments open: %v", i, missing))
		}

		bound, err := c.Bind(m)
		if err != nil {
			return paths, err
		}
		p, err := bound.Touch(true)
		if err != nil {
			return paths, err
		}
		debug.Debug("[crumb] Mktree: created %s", p)
		paths = append(paths, p)
	}
	return paths, nil
}

// remainingDeps returns the open arguments positioned before the last
// provided one that the binding map does not cover ("no skipped ancestors").
func (c *Crumb) remainingDeps(provided map[string]string) []string {
	open := c.OpenArgs()
	var missing []string
	started := false
	for i := len(open) - 1; i >= 0; i-- {
		if _, ok := provided[open[i]]; ok {
			started = true
		} else if started {
			missing = append(missing, open[i])
		}
	}
	// Reverse back to positional order for the error message.
	for i, j := 0, len(missing)-1; i < j; i, j = i+1, j-1 {
		missing[i], missing[j] = missing[j], missing[i]
	}
	return missing
}
