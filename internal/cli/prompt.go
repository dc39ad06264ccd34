package cli

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
)

// confirmOverwrite asks the user whether an existing destination may be
// overwritten. Returns true without prompting when assumeYes is set.
func confirmOverwrite(path string, assumeYes bool) (bool, error) {
	if assumeYes {
		return true, nil
	}

	var overwrite bool
	prompt := &survey.Confirm{
		Message: fmt.Sprintf("Destination %s already exists. Overwrite?", path),
		Default: false,
	}
	if err := survey.AskOne(prompt, &overwrite); err != nil {
		return false, err
	}
	return overwrite, nil
}
