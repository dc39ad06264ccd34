// Package crumb implements the templated-path resolution engine: crumb paths
// are filesystem paths containing named arguments such as
// "{base_dir}/raw/{subject_id}/{session_id}/{modality}/{image}" that can be
// bound to concrete values and resolved against the filesystem.
package crumb

import (
	"sort"
	"strings"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

// Crumb is an immutable crumb path value: the raw template text, the bindings
// accumulated so far, the ignore list, the match mode and the per-argument
// pattern overrides. Binding returns a new value; a Crumb is never mutated.
type Crumb struct {
	raw      string
	tokens   []Token
	bindings map[string]string
	ignore   []string
	mode     MatchMode
	patterns map[string]string
	fs       billy.Filesystem
	match    matchFunc
}

// Option configures a Crumb at construction.
type Option func(*Crumb)

// WithIgnore sets the glob patterns excluded at every enumeration level
// (e.g. ".*" to skip hidden entries).
func WithIgnore(patterns ...string) Option {
	return func(c *Crumb) {
		c.ignore = append([]string(nil), patterns...)
	}
}

// WithMatchMode selects how argument filter patterns are interpreted.
// The default is MatchGlob.
func WithMatchMode(mode MatchMode) Option {
	return func(c *Crumb) {
		c.mode = mode
	}
}

// WithFilesystem sets the filesystem the crumb resolves against.
// The default is the host filesystem rooted at "/".
func WithFilesystem(fs billy.Filesystem) Option {
	return func(c *Crumb) {
		c.fs = fs
	}
}

// New parses path into a Crumb. A malformed path is a fatal validation error.
func New(path string, opts ...Option) (*Crumb, error) {
	tokens, err := Tokenize(path)
	if err != nil {
		return nil, err
	}

	c := &Crumb{
		raw:      path,
		tokens:   tokens,
		bindings: map[string]string{},
		mode:     MatchGlob,
		patterns: map[string]string{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.fs == nil {
		c.fs = osfs.New("/")
	}

	c.match, err = matcherFor(c.mode)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// clone returns a copy of c with its own binding and pattern maps.
func (c *Crumb) clone() *Crumb {
	nc := &Crumb{
		raw:      c.raw,
		tokens:   c.tokens,
		bindings: make(map[string]string, len(c.bindings)),
		ignore:   append([]string(nil), c.ignore...),
		mode:     c.mode,
		patterns: make(map[string]string, len(c.patterns)),
		fs:       c.fs,
		match:    c.match,
	}
	for k, v := range c.bindings {
		nc.bindings[k] = v
	}
	for k, v := range c.patterns {
		nc.patterns[k] = v
	}
	return nc
}

// Raw returns the original crumb path text, with no bindings applied.
func (c *Crumb) Raw() string {
	return c.raw
}

// Path returns the current crumb path text: bound arguments substituted,
// open arguments re-emitted with their patterns.
func (c *Crumb) Path() string {
	return c.render(nil, true)
}

// String returns the current crumb path text.
func (c *Crumb) String() string {
	return c.Path()
}

// current re-parses the currently rendered text. Bound arguments disappear
// from the token sequence because rendering substitutes them; the result is
// the open-argument view of the crumb.
func (c *Crumb) current() []Token {
	if len(c.bindings) == 0 {
		return c.tokens
	}
	// Rendered text is valid by construction: bound values carry no
	// delimiter characters and open arguments are re-emitted verbatim.
	tokens, err := Tokenize(c.render(nil, true))
	if err != nil {
		return nil
	}
	return tokens
}

// AllArgs returns every argument name of the raw template in positional
// order, bound or not.
func (c *Crumb) AllArgs() []string {
	return argNames(c.tokens)
}

// OpenArgs returns the unbound argument names in positional order.
func (c *Crumb) OpenArgs() []string {
	return argNames(c.current())
}

// BoundArgs returns the bound argument names in positional order.
func (c *Crumb) BoundArgs() []string {
	var names []string
	for _, name := range c.AllArgs() {
		if _, ok := c.bindings[name]; ok {
			names = append(names, name)
		}
	}
	return names
}

// Bindings returns a copy of the current binding map.
func (c *Crumb) Bindings() map[string]string {
	m := make(map[string]string, len(c.bindings))
	for k, v := range c.bindings {
		m[k] = v
	}
	return m
}

// HasArg reports whether name is an open argument of the crumb.
func (c *Crumb) HasArg(name string) bool {
	for _, n := range c.OpenArgs() {
		if n == name {
			return true
		}
	}
	return false
}

// HasArgs reports whether the crumb has any open argument left.
func (c *Crumb) HasArgs() bool {
	return len(c.OpenArgs()) > 0
}

// FirstOpenArg returns the leftmost open argument.
func (c *Crumb) FirstOpenArg() (string, error) {
	open := c.OpenArgs()
	if len(open) == 0 {
		return "", newErrorWithPath(ErrUsage, "crumb has no open arguments", c.Path())
	}
	return open[0], nil
}

// LastOpenArg returns the rightmost open argument.
func (c *Crumb) LastOpenArg() (string, error) {
	open := c.OpenArgs()
	if len(open) == 0 {
		return "", newErrorWithPath(ErrUsage, "crumb has no open arguments", c.Path())
	}
	return open[len(open)-1], nil
}

// IsFirstOpenArg reports whether name is the leftmost open argument, i.e.
// whether its values can be listed directly from the fixed prefix without
// resolving any other argument first.
func (c *Crumb) IsFirstOpenArg(name string) (bool, error) {
	if !c.HasArg(name) {
		return false, newErrorWithArg(ErrUsage, "argument not open in crumb path", name)
	}
	first, err := c.FirstOpenArg()
	if err != nil {
		return false, err
	}
	return first == name, nil
}

// ArgDepth returns the number of path separators preceding the named open
// argument in the current text.
func (c *Crumb) ArgDepth(name string) (int, error) {
	return tokenDepth(c.current(), name)
}

// Pattern returns the effective filter pattern for an open argument: the
// runtime override if set, the inline pattern otherwise, or "".
func (c *Crumb) Pattern(name string) string {
	if p, ok := c.patterns[name]; ok {
		return p
	}
	for _, tok := range c.current() {
		if tok.IsArg() && tok.Name == name {
			return tok.Pattern
		}
	}
	return ""
}

// SetPattern returns a copy of c with a filter pattern override for an open
// argument.
func (c *Crumb) SetPattern(name, pattern string) (*Crumb, error) {
	if !c.HasArg(name) {
		return nil, newErrorWithArg(ErrUsage, "argument not open in crumb path", name)
	}
	nc := c.clone()
	nc.patterns[name] = pattern
	return nc, nil
}

// ClearPattern returns a copy of c without a pattern override for name.
// The inline pattern, if any, applies again.
func (c *Crumb) ClearPattern(name string) *Crumb {
	nc := c.clone()
	delete(nc.patterns, name)
	return nc
}

// Ignore returns a copy of the crumb's ignore list.
func (c *Crumb) Ignore() []string {
	return append([]string(nil), c.ignore...)
}

// Mode returns the crumb's pattern match mode.
func (c *Crumb) Mode() MatchMode {
	return c.mode
}

// Filesystem returns the filesystem the crumb resolves against.
func (c *Crumb) Filesystem() billy.Filesystem {
	return c.fs
}

// IsAbs reports whether the fixed prefix of the current path is absolute.
func (c *Crumb) IsAbs() bool {
	return strings.HasPrefix(c.Path(), sep)
}

// Bind returns a copy of c with the given arguments bound to literal values.
// Binding an unknown argument is a usage error; values must not contain
// delimiter characters. Rebinding a bound name replaces its value.
func (c *Crumb) Bind(pairs map[string]string) (*Crumb, error) {
	all := make(map[string]struct{})
	for _, name := range c.AllArgs() {
		all[name] = struct{}{}
	}

	nc := c.clone()
	for name, value := range pairs {
		if _, ok := all[name]; !ok {
			return nil, newErrorWithArg(ErrUsage, "argument not found in crumb path", name)
		}
		if strings.ContainsRune(value, argStart) || strings.ContainsRune(value, argEnd) {
			return nil, newErrorWithArg(ErrUsage, "binding value must not contain delimiter characters", name)
		}
		nc.bindings[name] = value
		delete(nc.patterns, name)
	}
	return nc, nil
}

// Unbind returns a copy of c with the named binding cleared; the argument
// becomes open again.
func (c *Crumb) Unbind(name string) (*Crumb, error) {
	if _, ok := c.bindings[name]; !ok {
		return nil, newErrorWithArg(ErrUsage, "argument is not bound", name)
	}
	nc := c.clone()
	delete(nc.bindings, name)
	return nc, nil
}

// Equal reports structural equality: raw text, bindings, ignore list, match
// mode and pattern overrides.
func (c *Crumb) Equal(other *Crumb) bool {
	if other == nil {
		return false
	}
	if c.raw != other.raw || c.mode != other.mode {
		return false
	}
	if !equalSlices(c.ignore, other.ignore) {
		return false
	}
	return equalMaps(c.bindings, other.bindings) && equalMaps(c.patterns, other.patterns)
}

func equalSlices(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalMaps(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if bv, ok := b[k]; !ok || bv != v {
			return false
		}
	}
	return true
}

// rmDups returns a sorted copy of values with duplicates removed.
func rmDups(values []string) []string {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
