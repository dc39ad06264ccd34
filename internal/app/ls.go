package app

import (
	"fmt"

	"github.com/tacogips/crumb/internal/config"
	"github.com/tacogips/crumb/internal/crumb"
)

// LsOptions holds options for the ls operation.
type LsOptions struct {
	// Arg is the open argument to list; empty targets the rightmost one.
	Arg string
	// FullPath returns rendered paths instead of bare argument values.
	FullPath bool
	// CheckExists keeps only combinations that resolve to an existing path.
	CheckExists bool
}

// LsResult holds the results of an enumeration.
type LsResult struct {
	// Entries are the sorted, deduplicated values or paths.
	Entries []string
}

// Ls enumerates one open argument of a crumb path against the filesystem.
func Ls(spec CrumbSpec, cfg *config.Config, opts LsOptions) (*LsResult, error) {
	c, err := NewCrumb(spec, cfg)
	if err != nil {
		return nil, err
	}

	results, err := c.Ls(opts.Arg, crumb.LsOptions{
		FullPath:    opts.FullPath,
		CheckExists: opts.CheckExists,
		Dedup:       true,
	})
	if err != nil {
		return nil, NewListError(fmt.Sprintf("cannot list %s", spec.Path), err)
	}

	entries := make([]string, len(results))
	for i, r := range results {
		entries[i] = r.Path
	}
	return &LsResult{Entries: entries}, nil
}

// Map enumerates every open argument up to target and returns one record per
// discovered combination. An empty target covers the whole argument chain.
func Map(spec CrumbSpec, cfg *config.Config, target string) (crumb.ValuesMap, error) {
	c, err := NewCrumb(spec, cfg)
	if err != nil {
		return nil, err
	}

	if target == "" {
		last, err := c.LastOpenArg()
		if err != nil {
			return nil, NewListError(fmt.Sprintf("cannot list %s", spec.Path), err)
		}
		target = last
	}

	vm, err := c.ValuesMap(target)
	if err != nil {
		return nil, NewListError(fmt.Sprintf("cannot list %s", spec.Path), err)
	}
	vm.Sort()
	return vm, nil
}
