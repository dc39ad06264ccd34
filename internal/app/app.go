// Package app implements the operations behind the crumb CLI commands. It
// turns command-line arguments and configuration into crumb values and drives
// the engine and ops packages, returning plain results for the CLI to print.
package app

import (
	"fmt"

	"github.com/tacogips/crumb/internal/config"
	"github.com/tacogips/crumb/internal/crumb"
	"github.com/tacogips/crumb/internal/debug"
)

// CrumbSpec describes a crumb path as given on the command line.
type CrumbSpec struct {
	// Path is the crumb path template, possibly with ~ or relative to cwd.
	Path string
	// Ignore are extra glob patterns excluded from directory listings, on
	// top of the configured ones.
	Ignore []string
	// Regex interprets inline patterns as regular expressions instead of
	// the configured default mode.
	Regex bool
}

// NewCrumb builds a crumb from a command-line spec merged with configuration
// defaults. The path is tilde-expanded and made absolute against the current
// working directory.
func NewCrumb(spec CrumbSpec, cfg *config.Config) (*crumb.Crumb, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	expanded, err := config.ExpandPath(spec.Path)
	if err != nil {
		return nil, NewSpecError(fmt.Sprintf("cannot resolve path %q", spec.Path), err)
	}

	mode := crumb.MatchMode(cfg.MatchMode)
	if spec.Regex {
		mode = crumb.MatchRegex
	}

	ignore := append([]string{}, cfg.Ignore...)
	ignore = append(ignore, spec.Ignore...)

	debug.Debug("[app] new crumb: path=%s mode=%s ignore=%v", expanded, mode, ignore)

	c, err := crumb.New(expanded,
		crumb.WithIgnore(ignore...),
		crumb.WithMatchMode(mode),
	)
	if err != nil {
		return nil, NewSpecError(fmt.Sprintf("invalid crumb path %q", spec.Path), err)
	}
	return c, nil
}
