package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tacogips/crumb/internal/app"
)

// linkCmd represents the link command
var linkCmd = &cobra.Command{
	Use:   "link <src-crumb-path> <dst-crumb-path>",
	Short: "Symlink a source tree into the layout of a destination crumb path",
	Long: `Resolve every combination of the source crumb path, create the
destination folder structure, and symlink each leaf to its place in the
destination layout.

Examples:
  crumb link '/data/raw/{subject_id}/{image}' '/analysis/{subject_id}/{image}'
  crumb link --exist-ok '/data/raw/{subject_id}/{image}' '/analysis/{subject_id}/{image}'`,
	Args: cobra.ExactArgs(2),
	RunE: runLink,
}

// link command flags
var (
	linkIgnore  []string
	linkRegex   bool
	linkExistOK bool
	linkVerbose bool
	linkYes     bool
)

func init() {
	// Flags for link
	linkCmd.Flags().StringArrayVarP(&linkIgnore, FlagIgnore, "i", nil, DescIgnore)
	linkCmd.Flags().BoolVar(&linkRegex, FlagRegex, false, DescRegex)
	linkCmd.Flags().BoolVar(&linkExistOK, FlagExistOK, false, DescExistOK)
	linkCmd.Flags().BoolVarP(&linkVerbose, FlagVerbose, "v", false, DescVerbose)
	linkCmd.Flags().BoolVarP(&linkYes, FlagYes, "y", false, DescYes)
}

func runLink(cmd *cobra.Command, args []string) error {
	src := app.CrumbSpec{Path: args[0], Ignore: linkIgnore, Regex: linkRegex}
	dst := app.CrumbSpec{Path: args[1], Ignore: linkIgnore, Regex: linkRegex}

	existOK, err := resolveExistOK(dst, linkExistOK, linkYes)
	if err != nil {
		return err
	}

	err = app.Link(src, dst, cliConfig, app.TransferOptions{
		ExistOK: existOK,
		Verbose: linkVerbose,
		Out:     os.Stdout,
	})
	if err != nil {
		return err
	}
	printSuccess(fmt.Sprintf("linked %s to %s", src.Path, dst.Path))
	return nil
}
