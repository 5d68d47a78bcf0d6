package detect

import (
	"github.com/fatih/color"
	"github.com/jpnorenam/cpuid-snap/pkg/utils"
	"github.com/spf13/cobra"
)

const groupID = "detect"

func Group(title string) *cobra.Group {
	return &cobra.Group{
		ID:    groupID,
		Title: title,
	}
}

// yesNo renders a boolean, coloured when writing to a terminal.
func yesNo(b bool) string {
	if !utils.IsTerminalOutput() {
		if b {
			return "yes"
		}
		return "no"
	}
	if b {
		return color.GreenString("yes")
	}
	return color.RedString("no")
}
