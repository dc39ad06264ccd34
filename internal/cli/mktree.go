package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tacogips/crumb/internal/app"
)

// mktreeCmd represents the mktree command
var mktreeCmd = &cobra.Command{
	Use:   "mktree <crumb-path>",
	Short: "Create the directory tree described by a crumb path",
	Long: `Create directories for a crumb path. Without a values file only the
fixed prefix before the first argument is created. With one, each YAML
mapping fills the open arguments of one branch:

  - subject_id: subj_01
    session_id: session_0
  - subject_id: subj_02
    session_id: session_0

Every mapping must cover the leading arguments of the path without gaps.

Examples:
  crumb mktree '/data/raw/{subject_id}/{session_id}'
  crumb mktree --values subjects.yaml '/data/raw/{subject_id}/{session_id}'`,
	Args: cobra.ExactArgs(1),
	RunE: runMktree,
}

// mktree command flags
var (
	mktreeValues string
	mktreeIgnore []string
)

func init() {
	// Flags for mktree
	mktreeCmd.Flags().StringVar(&mktreeValues, FlagValues, "", DescValues)
	mktreeCmd.Flags().StringArrayVarP(&mktreeIgnore, FlagIgnore, "i", nil, DescIgnore)
}

func runMktree(cmd *cobra.Command, args []string) error {
	spec := app.CrumbSpec{Path: args[0], Ignore: mktreeIgnore}

	paths, err := app.Mktree(spec, cliConfig, mktreeValues)
	if err != nil {
		return err
	}
	for _, p := range paths {
		printSuccess(fmt.Sprintf("created %s", p))
	}
	return nil
}
