package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tacogips/crumb/internal/app"
)

// copyCmd represents the copy command
var copyCmd = &cobra.Command{
	Use:   "copy <src-crumb-path> <dst-crumb-path>",
	Short: "Copy a source tree into the layout of a destination crumb path",
	Long: `Resolve every combination of the source crumb path and copy each
file or directory tree to its place in the destination layout. The
destination's open arguments must be a subset of the source's.

Examples:
  crumb copy '/data/raw/{subject_id}/{image}' '/backup/{subject_id}/{image}'
  crumb copy --exist-ok '/data/raw/{subject_id}/{image}' '/backup/{subject_id}/{image}'`,
	Args: cobra.ExactArgs(2),
	RunE: runCopy,
}

// copy command flags
var (
	copyIgnore  []string
	copyRegex   bool
	copyExistOK bool
	copyVerbose bool
	copyYes     bool
)

func init() {
	// Flags for copy
	copyCmd.Flags().StringArrayVarP(&copyIgnore, FlagIgnore, "i", nil, DescIgnore)
	copyCmd.Flags().BoolVar(&copyRegex, FlagRegex, false, DescRegex)
	copyCmd.Flags().BoolVar(&copyExistOK, FlagExistOK, false, DescExistOK)
	copyCmd.Flags().BoolVarP(&copyVerbose, FlagVerbose, "v", false, DescVerbose)
	copyCmd.Flags().BoolVarP(&copyYes, FlagYes, "y", false, DescYes)
}

func runCopy(cmd *cobra.Command, args []string) error {
	src := app.CrumbSpec{Path: args[0], Ignore: copyIgnore, Regex: copyRegex}
	dst := app.CrumbSpec{Path: args[1], Ignore: copyIgnore, Regex: copyRegex}

	existOK, err := resolveExistOK(dst, copyExistOK, copyYes)
	if err != nil {
		return err
	}

	err = app.Copy(src, dst, cliConfig, app.TransferOptions{
		ExistOK: existOK,
		Verbose: copyVerbose,
		Out:     os.Stdout,
	})
	if err != nil {
		return err
	}
	printSuccess(fmt.Sprintf("copied %s to %s", src.Path, dst.Path))
	return nil
}

// resolveExistOK decides whether an existing destination may be overwritten,
// prompting the user when the flag was not given.
func resolveExistOK(dst app.CrumbSpec, existOK, assumeYes bool) (bool, error) {
	if existOK {
		return true, nil
	}

	c, err := app.NewCrumb(dst, cliConfig)
	if err != nil {
		return false, err
	}
	prefix, _ := c.Split()
	if prefix == "" {
		return false, nil
	}
	if _, err := c.Filesystem().Stat(prefix); err != nil {
		return false, nil
	}

	overwrite, err := confirmOverwrite(prefix, assumeYes)
	if err != nil {
		return false, err
	}
	if !overwrite {
		return false, fmt.Errorf("aborted: destination %s already exists", prefix)
	}
	return true, nil
}
