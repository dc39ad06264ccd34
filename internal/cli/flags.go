package cli

// Common flag names and descriptions
const (
	// Flag names
	FlagArg         = "arg"
	FlagIgnore      = "ignore"
	FlagRegex       = "regex"
	FlagFullPath    = "full-path"
	FlagCheckExists = "check-exists"
	FlagTable       = "table"
	FlagCSV         = "csv"
	FlagOn          = "on"
	FlagBase        = "base"
	FlagExistOK     = "exist-ok"
	FlagVerbose     = "verbose"
	FlagYes         = "yes"
	FlagValues      = "values"
	FlagConfig      = "config"
	FlagNoColor     = "no-color"
	FlagQuiet       = "quiet"
	FlagDebug       = "debug"

	// Flag descriptions
	DescArg         = "Argument name to list (default: rightmost open argument)"
	DescIgnore      = "Extra glob pattern to ignore in listings (repeatable)"
	DescRegex       = "Interpret inline patterns as regular expressions"
	DescFullPath    = "Print full paths instead of bare values"
	DescCheckExists = "Keep only combinations that resolve to an existing path"
	DescTable       = "Print argument values as a table"
	DescCSV         = "Print argument values as CSV lines"
	DescOn          = "Argument name to compare on (repeatable; default: all shared)"
	DescBase        = "Print results as paths of crumb path 1 or 2 instead of value rows"
	DescExistOK     = "Allow overwriting existing destination entries"
	DescVerbose     = "Verbose output"
	DescYes         = "Assume yes for confirmation prompts"
	DescValues      = "YAML file with argument values, one mapping per branch"
	DescConfig      = "Path to config file"
	DescNoColor     = "Disable colored output"
	DescQuiet       = "Suppress non-error output"
	DescDebug       = "Enable debug logging"
)
