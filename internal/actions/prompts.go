package actions

import (
	"os"

	"github.com/AlecAivazis/survey/v2"
)

// isNonInteractive reports whether prompts are disabled for this process
func isNonInteractive() bool {
	return os.Getenv("WORKFLOW_NON_INTERACTIVE") != ""
}

// confirmProceed asks the user to confirm an operation. Confirmation is
// skipped (treated as yes) when the caller opted out or prompts are disabled.
func confirmProceed(message string, skip bool) (bool, error) {
	if skip || isNonInteractive() {
		return true, nil
	}

	confirmed := false
	prompt := &survey.Confirm{
		Message: message,
		Default: false,
	}
	if err := survey.AskOne(prompt, &confirmed); err != nil {
		return false, err
	}
	return confirmed, nil
}
