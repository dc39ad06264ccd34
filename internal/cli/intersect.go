package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tacogips/crumb/internal/app"
	"github.com/tacogips/crumb/internal/crumb"
	"github.com/tacogips/crumb/internal/table"
)

// intersectCmd represents the intersect command
var intersectCmd = &cobra.Command{
	Use:   "intersect <crumb-path-1> <crumb-path-2>",
	Short: "Show argument combinations present under both crumb paths",
	Long: `Compare two crumb paths over their shared open arguments and print
the value combinations that exist under both.

Examples:
  crumb intersect '/data/raw/{subject_id}/{image}' '/backup/{subject_id}/{image}'
  crumb intersect --on subject_id '/data/raw/{subject_id}/{image}' '/backup/{subject_id}/{image}'
  crumb intersect --base 1 '/data/raw/{subject_id}/{image}' '/backup/{subject_id}/{image}'`,
	Args: cobra.ExactArgs(2),
	RunE: runIntersect,
}

// intersect command flags
var (
	intersectOn     []string
	intersectIgnore []string
	intersectRegex  bool
	intersectTable  bool
	intersectBase   int
)

func init() {
	// Flags for intersect
	intersectCmd.Flags().StringArrayVar(&intersectOn, FlagOn, nil, DescOn)
	intersectCmd.Flags().StringArrayVarP(&intersectIgnore, FlagIgnore, "i", nil, DescIgnore)
	intersectCmd.Flags().BoolVar(&intersectRegex, FlagRegex, false, DescRegex)
	intersectCmd.Flags().BoolVarP(&intersectTable, FlagTable, "t", false, DescTable)
	intersectCmd.Flags().IntVar(&intersectBase, FlagBase, 0, DescBase)
}

func runIntersect(cmd *cobra.Command, args []string) error {
	a := app.CrumbSpec{Path: args[0], Ignore: intersectIgnore, Regex: intersectRegex}
	b := app.CrumbSpec{Path: args[1], Ignore: intersectIgnore, Regex: intersectRegex}

	vm, err := app.Intersect(a, b, cliConfig, app.CompareOptions{On: intersectOn})
	if err != nil {
		return err
	}
	if len(vm) == 0 {
		printWarning("no common combinations found")
		return nil
	}
	if intersectBase != 0 {
		return printAsBasePaths(a, b, intersectBase, vm)
	}
	if intersectTable {
		table.Render(os.Stdout, vm)
		return nil
	}
	return table.WriteCSV(os.Stdout, vm)
}

// printAsBasePaths renders each record as a path of the chosen crumb (1 or 2)
// instead of a bare value row.
func printAsBasePaths(a, b app.CrumbSpec, base int, vm crumb.ValuesMap) error {
	var spec app.CrumbSpec
	switch base {
	case 1:
		spec = a
	case 2:
		spec = b
	default:
		return fmt.Errorf("--%s must be 1 or 2, got %d", FlagBase, base)
	}

	c, err := app.NewCrumb(spec, cliConfig)
	if err != nil {
		return err
	}
	for _, rec := range vm {
		bound, err := c.Bind(rec.Map())
		if err != nil {
			return err
		}
		printInfo(bound.Path())
	}
	return nil
}
