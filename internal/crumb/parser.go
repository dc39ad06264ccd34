package crumb

import (
	"fmt"
	"strings"
)

// Crumb path syntax characters. An argument is written "{name}" or
// "{name:pattern}" and must span a whole path component.
const (
	argStart   = '{'
	argEnd     = '}'
	patternSep = ':'
	sep        = "/"
)

// Token is one parsed element of a crumb path: the literal text preceding an
// argument, the argument name, and its optional inline filter pattern. The
// trailing token of a path that ends in literal text has an empty Name.
type Token struct {
	// Literal is the literal text before the argument.
	Literal string
	// Name is the argument name, empty for a trailing literal-only token.
	Name string
	// Pattern is the optional inline filter pattern ("{name:pattern}").
	Pattern string
}

// IsArg reports whether the token carries an argument.
func (t Token) IsArg() bool {
	return t.Name != ""
}

// String renders the token back to its crumb path representation.
func (t Token) String() string {
	if !t.IsArg() {
		return t.Literal
	}
	return t.Literal + formatArg(t.Name, t.Pattern)
}

// formatArg renders an argument back to its "{name}" or "{name:pattern}" form.
func formatArg(name, pattern string) string {
	if pattern == "" {
		return string(argStart) + name + string(argEnd)
	}
	return string(argStart) + name + string(patternSep) + pattern + string(argEnd)
}

// Tokenize parses a crumb path into its token sequence. It validates that
// delimiters are balanced, argument names are unique and non-empty, and that
// every argument occupies a whole path component. Concatenating the String()
// of all tokens reproduces the input exactly.
func Tokenize(path string) ([]Token, error) {
	if path == "" {
		return nil, newError(ErrInvalidPath, "empty crumb path")
	}

	var tokens []Token
	seen := make(map[string]struct{})
	var literal strings.Builder

	i := 0
	for i < len(path) {
		switch path[i] {
		case byte(argEnd):
			return nil, newErrorWithPath(ErrInvalidPath,
				fmt.Sprintf("unbalanced %q delimiter at offset %d", argEnd, i), path)

		case byte(argStart):
			end := strings.IndexByte(path[i+1:], byte(argEnd))
			if end < 0 {
				return nil, newErrorWithPath(ErrInvalidPath,
					fmt.Sprintf("unbalanced %q delimiter at offset %d", argStart, i), path)
			}
			content := path[i+1 : i+1+end]
			if strings.ContainsRune(content, argStart) {
				return nil, newErrorWithPath(ErrInvalidPath,
					fmt.Sprintf("nested %q delimiter in argument %q", argStart, content), path)
			}

			name, pattern := splitArgContent(content)
			if name == "" {
				return nil, newErrorWithPath(ErrInvalidPath, "empty argument name", path)
			}
			if strings.Contains(name, sep) {
				return nil, newErrorWithArg(ErrInvalidPath,
					"argument name must not contain a path separator", name)
			}
			if _, dup := seen[name]; dup {
				return nil, newErrorWithArg(ErrInvalidPath, "duplicate argument name", name)
			}
			seen[name] = struct{}{}

			tokens = append(tokens, Token{
				Literal: literal.String(),
				Name:    name,
				Pattern: pattern,
			})
			literal.Reset()
			i += end + 2

		default:
			literal.WriteByte(path[i])
			i++
		}
	}

	if literal.Len() > 0 {
		tokens = append(tokens, Token{Literal: literal.String()})
	}

	if err := checkComponents(path, tokens); err != nil {
		return nil, err
	}
	return tokens, nil
}

// splitArgContent separates an argument's name from its inline pattern.
func splitArgContent(content string) (name, pattern string) {
	if idx := strings.IndexByte(content, byte(patternSep)); idx >= 0 {
		return content[:idx], content[idx+1:]
	}
	return content, ""
}

// checkComponents verifies that every argument spans a whole path component.
// Arguments are indexed by path component, so "/data/sub-{id}" cannot be
// resolved by listing a directory prefix and is rejected up front.
func checkComponents(path string, tokens []Token) error {
	for i, tok := range tokens {
		if !tok.IsArg() {
			continue
		}
		preOK := tok.Literal == "" && i == 0 || strings.HasSuffix(tok.Literal, sep)
		if !preOK {
			return newErrorWithArg(ErrInvalidPath,
				"argument must span a whole path component", tok.Name)
		}
		if i+1 < len(tokens) {
			next := tokens[i+1].Literal
			if next != "" && !strings.HasPrefix(next, sep) {
				return newErrorWithArg(ErrInvalidPath,
					"argument must span a whole path component", tok.Name)
			}
			if next == "" && tokens[i+1].IsArg() {
				return newErrorWithArg(ErrInvalidPath,
					"argument must span a whole path component", tokens[i+1].Name)
			}
		}
	}
	return nil
}

// argNames returns the argument names of a token sequence in positional order.
func argNames(tokens []Token) []string {
	var names []string
	for _, tok := range tokens {
		if tok.IsArg() {
			names = append(names, tok.Name)
		}
	}
	return names
}

// IsValid reports whether path is a well formed crumb path.
func IsValid(path string) bool {
	_, err := Tokenize(path)
	return err == nil
}

// HasArgs reports whether path contains at least one crumb argument.
func HasArgs(path string) bool {
	tokens, err := Tokenize(path)
	if err != nil {
		return false
	}
	return len(argNames(tokens)) > 0
}

// Depth returns the number of path separators in the literal text preceding
// the named argument. Depths are monotonically non-decreasing in positional
// order of appearance.
func Depth(path, name string) (int, error) {
	tokens, err := Tokenize(path)
	if err != nil {
		return 0, err
	}
	return tokenDepth(tokens, name)
}

// tokenDepth computes the depth of an argument within a token sequence.
func tokenDepth(tokens []Token, name string) (int, error) {
	depth := 0
	for _, tok := range tokens {
		depth += strings.Count(tok.Literal, sep)
		if tok.IsArg() && tok.Name == name {
			return depth, nil
		}
	}
	return 0, newErrorWithArg(ErrUsage, "argument not found in crumb path", name)
}
