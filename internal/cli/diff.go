package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tacogips/crumb/internal/app"
	"github.com/tacogips/crumb/internal/table"
)

// diffCmd represents the diff command
var diffCmd = &cobra.Command{
	Use:   "diff <crumb-path-1> <crumb-path-2>",
	Short: "Show argument combinations present under the first crumb path only",
	Long: `Compare two crumb paths over their shared open arguments and print
the value combinations that exist under the first path but not the second.

Examples:
  crumb diff '/data/raw/{subject_id}/{image}' '/backup/{subject_id}/{image}'
  crumb diff --on subject_id '/data/raw/{subject_id}/{image}' '/backup/{subject_id}/{image}'
  crumb diff --base 1 '/data/raw/{subject_id}/{image}' '/backup/{subject_id}/{image}'`,
	Args: cobra.ExactArgs(2),
	RunE: runDiff,
}

// diff command flags
var (
	diffOn     []string
	diffIgnore []string
	diffRegex  bool
	diffTable  bool
	diffBase   int
)

func init() {
	// Flags for diff
	diffCmd.Flags().StringArrayVar(&diffOn, FlagOn, nil, DescOn)
	diffCmd.Flags().StringArrayVarP(&diffIgnore, FlagIgnore, "i", nil, DescIgnore)
	diffCmd.Flags().BoolVar(&diffRegex, FlagRegex, false, DescRegex)
	diffCmd.Flags().BoolVarP(&diffTable, FlagTable, "t", false, DescTable)
	diffCmd.Flags().IntVar(&diffBase, FlagBase, 0, DescBase)
}

func runDiff(cmd *cobra.Command, args []string) error {
	a := app.CrumbSpec{Path: args[0], Ignore: diffIgnore, Regex: diffRegex}
	b := app.CrumbSpec{Path: args[1], Ignore: diffIgnore, Regex: diffRegex}

	vm, err := app.Diff(a, b, cliConfig, app.CompareOptions{On: diffOn})
	if err != nil {
		return err
	}
	if len(vm) == 0 {
		printInfo("no differences found")
		return nil
	}
	if diffBase != 0 {
		return printAsBasePaths(a, b, diffBase, vm)
	}
	if diffTable {
		table.Render(os.Stdout, vm)
		return nil
	}
	return table.WriteCSV(os.Stdout, vm)
}
