package crumb

import (
	"errors"
	"os"
	"sort"
	"strings"

	"github.com/tacogips/crumb/internal/debug"
)

// LsOptions configures enumeration results.
type LsOptions struct {
	// FullPath returns rendered paths instead of bare argument values.
	FullPath bool
	// MakeCrumbs returns crumb values for results that still have open
	// arguments. Only meaningful with FullPath; forced off otherwise.
	MakeCrumbs bool
	// CheckExists keeps only combinations that resolve to an existing path.
	CheckExists bool
	// Dedup removes duplicate results and sorts them.
	Dedup bool
}

// Ls resolves the filesystem values of the named open argument, recursively
// unfolding every open argument that precedes it in the path. An empty name
// targets the rightmost open argument.
func (c *Crumb) Ls(name string, opts LsOptions) ([]Resolved, error) {
	if name == "" {
		last, err := c.LastOpenArg()
		if err != nil {
			return nil, err
		}
		name = last
	}

	vm, err := c.ValuesMap(name)
	if err != nil {
		return nil, err
	}

	if opts.CheckExists {
		vm, err = c.filterExisting(vm)
		if err != nil {
			return nil, err
		}
	}

	if !opts.FullPath {
		values := vm.Values(name)
		if opts.Dedup {
			values = rmDups(values)
		}
		results := make([]Resolved, len(values))
		for i, v := range values {
			results[i] = Resolved{Kind: KindValue, Path: v}
		}
		return results, nil
	}

	results, err := c.BuildPaths(vm, opts.MakeCrumbs)
	if err != nil {
		return nil, err
	}
	if opts.Dedup {
		results = dedupResolved(results)
	}
	return results, nil
}

// Values returns the deduplicated, sorted values of one open argument.
func (c *Crumb) Values(name string) ([]string, error) {
	results, err := c.Ls(name, LsOptions{Dedup: true})
	if err != nil {
		return nil, err
	}
	values := make([]string, len(results))
	for i, r := range results {
		values[i] = r.Path
	}
	return values, nil
}

// ValuesMap enumerates the filesystem level by level and returns one record
// per discovered combination of values for the open arguments from the first
// one up to (and including) target. Values later in the chain depend on which
// concrete directories the earlier arguments selected, so the walk follows
// the dependency order; there is no global listing shortcut.
func (c *Crumb) ValuesMap(target string) (ValuesMap, error) {
	open := c.OpenArgs()
	if len(open) == 0 {
		return nil, newErrorWithPath(ErrUsage, "crumb has no open arguments", c.Path())
	}
	if !c.HasArg(target) {
		return nil, newErrorWithArg(ErrUsage, "argument not open in crumb path", target)
	}
	if !c.IsAbs() {
		return nil, newErrorWithPath(ErrNotAbsolute,
			"cannot enumerate a relative crumb path", c.Path())
	}

	// Parent chain: every open argument up to the target, positional order.
	var chain []string
	for _, name := range open {
		chain = append(chain, name)
		if name == target {
			break
		}
	}
	debug.Debug("[crumb] ValuesMap: target=%s chain=%v", target, chain)

	frontier := ValuesMap{Record{}}
	for _, arg := range chain {
		wantFiles, err := c.isLastComponent(arg)
		if err != nil {
			return nil, err
		}
		pattern := c.Pattern(arg)

		var next ValuesMap
		for _, rec := range frontier {
			rendered := c.render(rec.Map(), false)
			dir, _ := splitPath(rendered)
			children, err := c.listSubpaths(dir, !wantFiles, pattern)
			if err != nil {
				return nil, err
			}
			for _, child := range children {
				next = append(next, rec.Extend(arg, child))
			}
		}
		debug.Debug("[crumb] ValuesMap: arg=%s records=%d", arg, len(next))
		frontier = next
	}
	return frontier, nil
}

// isLastComponent reports whether the open argument occupies the final path
// component of the current text. An argument that is not the final component
// must denote a directory, so only subdirectories are listed for it.
func (c *Crumb) isLastComponent(name string) (bool, error) {
	tokens := c.current()
	depth, err := tokenDepth(tokens, name)
	if err != nil {
		return false, err
	}
	total := 0
	for _, tok := range tokens {
		total += strings.Count(tok.Literal, sep)
	}
	return depth == total, nil
}

// listSubpaths returns the immediate children of dir, directories only when
// justDirs is set, after applying the ignore list and the argument pattern.
func (c *Crumb) listSubpaths(dir string, justDirs bool, pattern string) ([]string, error) {
	info, err := c.fs.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, wrapError(ErrNotFound, "expected an existing path", dir, err)
		}
		return nil, wrapError(ErrNotFound, "cannot stat path", dir, err)
	}
	if !info.IsDir() {
		return nil, nil
	}

	infos, err := c.fs.ReadDir(dir)
	if err != nil {
		return nil, wrapError(ErrNotFound, "cannot list directory", dir, err)
	}

	names := make([]string, 0, len(infos))
	for _, fi := range infos {
		if justDirs && !fi.IsDir() {
			continue
		}
		names = append(names, fi.Name())
	}

	names, err = removeIgnored(c.ignore, names)
	if err != nil {
		return nil, err
	}
	if pattern != "" {
		names, err = filterPattern(c.match, pattern, names)
		if err != nil {
			return nil, err
		}
	}
	return names, nil
}

// filterExisting keeps the records whose full resolution exists on disk. The
// walk discovers combinations level by level, which does not guarantee that
// every combination still forms an existing path once all bindings are
// applied together.
func (c *Crumb) filterExisting(vm ValuesMap) (ValuesMap, error) {
	kept := make(ValuesMap, 0, len(vm))
	for _, rec := range vm {
		bound, err := c.Bind(rec.Map())
		if err != nil {
			return nil, err
		}
		if bound.Exists() {
			kept = append(kept, rec)
		}
	}
	return kept, nil
}

// dedupResolved removes duplicate results by path text and sorts them.
func dedupResolved(results []Resolved) []Resolved {
	seen := make(map[string]Resolved, len(results))
	for _, r := range results {
		if _, ok := seen[r.Path]; !ok {
			seen[r.Path] = r
		}
	}
	out := make([]Resolved, 0, len(seen))
	for _, r := range seen {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}
