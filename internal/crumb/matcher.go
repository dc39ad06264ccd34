package crumb

import (
	"fmt"
	"path"
	"regexp"
)

// MatchMode selects how argument filter patterns are interpreted. The mode is
// a per-crumb choice: every pattern of one crumb is matched the same way.
type MatchMode string

const (
	// MatchGlob interprets filter patterns as glob expressions.
	MatchGlob MatchMode = "glob"
	// MatchRegex interprets filter patterns as regular expressions.
	MatchRegex MatchMode = "regex"
)

// matchFunc matches one filesystem entry name against a filter pattern.
// The concrete function is selected once at crumb construction.
type matchFunc func(pattern, name string) (bool, error)

// matcherFor returns the match strategy for a mode.
func matcherFor(mode MatchMode) (matchFunc, error) {
	switch mode {
	case MatchGlob:
		return globMatch, nil
	case MatchRegex:
		return regexMatch, nil
	default:
		return nil, newError(ErrBadPattern, fmt.Sprintf("unknown match mode %q", mode))
	}
}

// globMatch matches name against a glob pattern.
func globMatch(pattern, name string) (bool, error) {
	ok, err := path.Match(pattern, name)
	if err != nil {
		return false, newErrorWithArg(ErrBadPattern, "invalid glob pattern", pattern)
	}
	return ok, nil
}

// regexMatch matches name against a regular expression.
func regexMatch(pattern, name string) (bool, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return false, wrapError(ErrBadPattern, "invalid regular expression", pattern, err)
	}
	return re.MatchString(name), nil
}

// filterPattern keeps the names that match pattern.
func filterPattern(match matchFunc, pattern string, names []string) ([]string, error) {
	kept := make([]string, 0, len(names))
	for _, name := range names {
		ok, err := match(pattern, name)
		if err != nil {
			return nil, err
		}
		if ok {
			kept = append(kept, name)
		}
	}
	return kept, nil
}

// removeIgnored drops the names matching any of the glob patterns in ignore.
// The ignore list is always glob syntax, independent of the crumb match mode.
func removeIgnored(ignore, names []string) ([]string, error) {
	if len(ignore) == 0 {
		return names, nil
	}
	kept := make([]string, 0, len(names))
	for _, name := range names {
		ignored := false
		for _, pattern := range ignore {
			ok, err := path.Match(pattern, name)
			if err != nil {
				return nil, newErrorWithArg(ErrBadPattern, "invalid ignore pattern", pattern)
			}
			if ok {
				ignored = true
				break
			}
		}
		if !ignored {
			kept = append(kept, name)
		}
	}
	return kept, nil
}
