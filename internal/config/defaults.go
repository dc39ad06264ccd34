package config

import (
	"os"
	"path/filepath"
)

// DefaultFileName is the configuration file looked up in the user's home
// directory.
const DefaultFileName = ".crumb.yaml"

// DefaultConfig returns the default configuration. Hidden entries are
// ignored and patterns are interpreted as globs.
func DefaultConfig() *Config {
	return &Config{
		Ignore:    []string{".*"},
		MatchMode: "glob",
		Output: OutputConfig{
			Color: true,
			Quiet: false,
		},
	}
}

// DefaultPath returns the path of the user-level configuration file, or an
// empty string when the home directory cannot be determined.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, DefaultFileName)
}
