package common

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/jpnorenam/cpuid-snap/pkg/utils"
)

// StartProgressSpinner shows a spinner on stderr until stop is called. Nothing
// is drawn when stdout is not a terminal, so piped output stays clean.
func StartProgressSpinner(prefix string) (stop func()) {
	if !utils.IsTerminalOutput() {
		return func() {}
	}

	s := spinner.New(spinner.CharSets[9], time.Millisecond*200, spinner.WithWriter(os.Stderr))
	s.Prefix = prefix + " "
	s.Start()

	return s.Stop
}
