package config

// Config represents the global crumb configuration.
type Config struct {
	// Ignore are glob patterns excluded from every directory listing.
	Ignore []string `yaml:"ignore"`
	// MatchMode selects how inline patterns are interpreted: "glob" or "regex".
	MatchMode string `yaml:"match_mode"`
	// Output configuration for display and logging.
	Output OutputConfig `yaml:"output"`
}

// OutputConfig represents output and display settings.
type OutputConfig struct {
	// Color enables colored terminal output.
	Color bool `yaml:"color"`
	// Quiet suppresses non-error output.
	Quiet bool `yaml:"quiet"`
}
