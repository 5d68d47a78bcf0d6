package common

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ConfirmationPrompt asks a yes/no question on the terminal.
func ConfirmationPrompt(prompt string) bool {
	return confirm(os.Stdin, os.Stdout, prompt)
}

// confirm repeats the question until the answer is yes or no. End of input
// counts as no.
func confirm(in io.Reader, out io.Writer, prompt string) bool {
	reader := bufio.NewReader(in)

	for {
		fmt.Fprintf(out, "%s [y/n] ", prompt)
		input, err := reader.ReadString('\n')
		switch strings.ToLower(strings.TrimSpace(input)) {
		case "y", "yes":
			return true
		case "n", "no":
			return false
		}
		if err != nil {
			fmt.Fprintln(out)
			return false
		}
		fmt.Fprintln(out, `Invalid input. Please enter "y" or "n".`)
	}
}
