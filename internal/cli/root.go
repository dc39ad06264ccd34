// Package cli wires the crumb commands: flag parsing, configuration loading,
// and output formatting around the app package operations.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tacogips/crumb/internal/config"
	"github.com/tacogips/crumb/internal/debug"
)

// Version information (set by main from build-time variables)
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Global flags
var (
	globalNoColor bool
	globalQuiet   bool
	globalDebug   bool
	globalConfig  string
)

// cliConfig is the loaded configuration, available to every command.
var cliConfig *config.Config

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "crumb",
	Short: "Templated filesystem path tool",
	Long: `crumb resolves templated filesystem paths against the disk.

A crumb path is a path template with named arguments in braces, such as
  /data/raw/{subject_id}/{session_id}/{image}

Use "crumb ls" to enumerate the values an argument takes on disk,
"crumb intersect" and "crumb diff" to compare two layouts over their
shared arguments, "crumb copy" and "crumb link" to reshape a tree, and
"crumb mktree" to create a directory tree from a values file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		debug.SetDebug(globalDebug)
		debug.SetNoColor(globalNoColor)

		path := globalConfig
		if path == "" {
			path = config.DefaultPath()
		}
		cfg, err := config.NewLoader().LoadOrDefault(path)
		if err != nil {
			return err
		}
		cliConfig = cfg

		if !cfg.Output.Color {
			globalNoColor = true
			debug.SetNoColor(true)
		}
		if cfg.Output.Quiet {
			globalQuiet = true
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVar(&globalNoColor, FlagNoColor, false, DescNoColor)
	rootCmd.PersistentFlags().BoolVarP(&globalQuiet, FlagQuiet, "q", false, DescQuiet)
	rootCmd.PersistentFlags().BoolVar(&globalDebug, FlagDebug, false, DescDebug)
	rootCmd.PersistentFlags().StringVar(&globalConfig, FlagConfig, "", DescConfig)

	// Add subcommands
	rootCmd.AddCommand(lsCmd)
	rootCmd.AddCommand(intersectCmd)
	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(copyCmd)
	rootCmd.AddCommand(linkCmd)
	rootCmd.AddCommand(mktreeCmd)
	rootCmd.AddCommand(versionCmd)
}

// printError prints an error message to stderr
func printError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
