package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tacogips/crumb/internal/app"
	"github.com/tacogips/crumb/internal/table"
)

// lsCmd represents the ls command
var lsCmd = &cobra.Command{
	Use:   "ls <crumb-path>",
	Short: "List the filesystem values of a crumb argument",
	Long: `List the values an open argument takes on the filesystem.

The crumb path is expanded level by level: every open argument before the
target is resolved against the directories actually on disk.

Examples:
  crumb ls '/data/raw/{subject_id}'
  crumb ls -a subject_id '/data/raw/{subject_id}/{session_id}'
  crumb ls --full-path '/data/raw/{subject_id:subj_02*}/{session_id}'
  crumb ls --table '/data/raw/{subject_id}/{session_id}'`,
	Args: cobra.ExactArgs(1),
	RunE: runLs,
}

// ls command flags
var (
	lsArg         string
	lsIgnore      []string
	lsRegex       bool
	lsFullPath    bool
	lsCheckExists bool
	lsTable       bool
	lsCSV         bool
)

func init() {
	// Flags for ls
	lsCmd.Flags().StringVarP(&lsArg, FlagArg, "a", "", DescArg)
	lsCmd.Flags().StringArrayVarP(&lsIgnore, FlagIgnore, "i", nil, DescIgnore)
	lsCmd.Flags().BoolVar(&lsRegex, FlagRegex, false, DescRegex)
	lsCmd.Flags().BoolVarP(&lsFullPath, FlagFullPath, "f", false, DescFullPath)
	lsCmd.Flags().BoolVarP(&lsCheckExists, FlagCheckExists, "e", false, DescCheckExists)
	lsCmd.Flags().BoolVarP(&lsTable, FlagTable, "t", false, DescTable)
	lsCmd.Flags().BoolVar(&lsCSV, FlagCSV, false, DescCSV)
}

func runLs(cmd *cobra.Command, args []string) error {
	spec := app.CrumbSpec{Path: args[0], Ignore: lsIgnore, Regex: lsRegex}

	if lsTable || lsCSV {
		vm, err := app.Map(spec, cliConfig, lsArg)
		if err != nil {
			return err
		}
		if len(vm) == 0 {
			printWarning("no matches found")
			return nil
		}
		if lsTable {
			table.Render(os.Stdout, vm)
			return nil
		}
		return table.WriteCSV(os.Stdout, vm)
	}

	result, err := app.Ls(spec, cliConfig, app.LsOptions{
		Arg:         lsArg,
		FullPath:    lsFullPath,
		CheckExists: lsCheckExists,
	})
	if err != nil {
		return err
	}
	for _, entry := range result.Entries {
		printInfo(entry)
	}
	return nil
}
