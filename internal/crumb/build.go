package crumb

import (
	"errors"
	"os"
	"strings"
)

// render walks the raw token sequence and substitutes every argument bound
// either in the crumb or in extra. Unbound arguments are re-emitted, with
// their inline pattern when keepPatterns is true.
func (c *Crumb) render(extra map[string]string, keepPatterns bool) string {
	var b strings.Builder
	for _, tok := range c.tokens {
		b.WriteString(tok.Literal)
		if !tok.IsArg() {
			continue
		}
		if v, ok := c.bindings[tok.Name]; ok {
			b.WriteString(v)
			continue
		}
		if v, ok := extra[tok.Name]; ok {
			b.WriteString(v)
			continue
		}
		if keepPatterns {
			b.WriteString(formatArg(tok.Name, tok.Pattern))
		} else {
			b.WriteString(formatArg(tok.Name, ""))
		}
	}
	return b.String()
}

// Split returns the fixed prefix of the current path (the longest leading
// literal part containing no argument, without its trailing separator) and
// the remainder beginning at the first open argument. A crumb with no open
// arguments returns (path, "").
func (c *Crumb) Split() (string, string) {
	return splitPath(c.Path())
}

// splitPath splits a rendered crumb path at its first argument delimiter.
func splitPath(rendered string) (string, string) {
	idx := strings.IndexByte(rendered, byte(argStart))
	if idx < 0 {
		return rendered, ""
	}
	prefix := rendered[:idx]
	rest := rendered[idx:]
	if prefix != sep {
		prefix = strings.TrimSuffix(prefix, sep)
	}
	return prefix, rest
}

// Touch creates the fixed-prefix directory of the crumb and all intermediate
// ones. When existOK is false a pre-existing prefix is an error; otherwise
// the call is idempotent. Returns the created (or existing) path.
func (c *Crumb) Touch(existOK bool) (string, error) {
	prefix, _ := c.Split()
	if prefix == "" {
		return "", newErrorWithPath(ErrNotAbsolute,
			"cannot create directories for a crumb that starts with an argument", c.Path())
	}

	if _, err := c.fs.Stat(prefix); err == nil {
		if !existOK {
			return "", newErrorWithPath(ErrAlreadyExists, "directory already exists", prefix)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", wrapError(ErrNotFound, "cannot stat directory", prefix, err)
	}

	if err := c.fs.MkdirAll(prefix, 0o755); err != nil {
		return "", wrapError(ErrNotFound, "cannot create directory", prefix, err)
	}
	return prefix, nil
}

// ResolvedKind tags the variant of a Resolved value.
type ResolvedKind int

const (
	// KindValue is a bare argument value, not a path.
	KindValue ResolvedKind = iota
	// KindPath is a concrete or partially rendered path string.
	KindPath
	// KindCrumb is a crumb path that still has open arguments.
	KindCrumb
)

// Resolved is the tagged result of building or enumerating a crumb: either a
// bare value, a path string, or a crumb with open arguments left. The variant
// is decided once when the result is produced; callers switch on Kind instead
// of inspecting the string for argument syntax.
type Resolved struct {
	// Kind tags the variant.
	Kind ResolvedKind
	// Path is the value or path text.
	Path string
	// Crumb is set when Kind is KindCrumb.
	Crumb *Crumb
}

// String returns the textual form of the resolved value.
func (r Resolved) String() string {
	return r.Path
}

// BuildPaths renders one result per record of the values map. When makeCrumbs
// is true, results that still have open arguments are returned as crumb
// values; otherwise every result is a path string with the remaining
// arguments re-emitted.
func (c *Crumb) BuildPaths(vm ValuesMap, makeCrumbs bool) ([]Resolved, error) {
	results := make([]Resolved, 0, len(vm))
	for _, rec := range vm {
		bound, err := c.Bind(rec.Map())
		if err != nil {
			return nil, err
		}
		results = append(results, resolve(bound, makeCrumbs))
	}
	return results, nil
}

// resolve decides the tagged variant for a bound crumb.
func resolve(bound *Crumb, makeCrumbs bool) Resolved {
	if makeCrumbs && bound.HasArgs() {
		return Resolved{Kind: KindCrumb, Path: bound.Path(), Crumb: bound}
	}
	return Resolved{Kind: KindPath, Path: bound.Path()}
}
