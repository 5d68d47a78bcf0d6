package others

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/jpnorenam/cpuid-snap/cmd/cli/common"
	"github.com/jpnorenam/cpuid-snap/pkg/cpuid"
	"github.com/spf13/cobra"
)

type dumpRawCommand struct {
	*common.Context

	// flags
	output string
	force  bool
}

func DumpRawCommand(ctx *common.Context) *cobra.Command {
	var cmd dumpRawCommand
	cmd.Context = ctx

	cobraCmd := &cobra.Command{
		Use:   "dump-raw",
		Short: "Save the raw CPUID data",
		Long: "Save the raw CPUID register values in libcpuid's text format.\n" +
			"The dump can be decoded later, on any machine, with the debug identify-raw command.",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE:              cmd.run,
	}

	// flags
	cobraCmd.Flags().StringVarP(&cmd.output, "output", "o", "", "write to a file instead of standard output")
	cobraCmd.Flags().BoolVar(&cmd.force, "force", false, "overwrite the output file without asking")

	return cobraCmd
}

func (cmd *dumpRawCommand) run(_ *cobra.Command, _ []string) error {
	if cmd.output == "" {
		return cmd.dump(os.Stdout)
	}

	if !cmd.force {
		_, err := os.Stat(cmd.output)
		if err == nil {
			if !common.ConfirmationPrompt(fmt.Sprintf("%s exists. Overwrite?", cmd.output)) {
				fmt.Println("Exiting. No changes applied.")
				return nil
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("error checking %s: %v", cmd.output, err)
		}
	}

	f, err := os.Create(cmd.output)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return common.ErrPermissionDenied
		}
		return fmt.Errorf("error creating %s: %v", cmd.output, err)
	}
	defer f.Close()

	if err := cmd.dump(f); err != nil {
		return err
	}
	if cmd.Verbose {
		log.Printf("Raw data written to %s", cmd.output)
	}
	return f.Close()
}

func (cmd *dumpRawCommand) dump(w io.Writer) error {
	raw, err := cmd.Detector.RawData()
	if err != nil {
		return fmt.Errorf("cpuid error: %w", err)
	}
	if err := cpuid.SaveRaw(w, raw, cmd.Detector.Version()); err != nil {
		return fmt.Errorf("error writing raw data: %v", err)
	}
	return nil
}
