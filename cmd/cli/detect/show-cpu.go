package detect

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/jpnorenam/cpuid-snap/cmd/cli/common"
	"github.com/jpnorenam/cpuid-snap/cmd/cli/config"
	"github.com/jpnorenam/cpuid-snap/pkg/cpuid"
	"github.com/jpnorenam/cpuid-snap/pkg/hardware_info/cpu"
	"github.com/jpnorenam/cpuid-snap/pkg/storage"
	"github.com/spf13/cobra"
)

type showCpuCommand struct {
	*common.Context

	// flags
	format string
}

func ShowCpuCommand(ctx *common.Context) *cobra.Command {
	var cmd showCpuCommand
	cmd.Context = ctx

	cobraCmd := &cobra.Command{
		Use:               "show-cpu",
		Short:             "Print information about the processor",
		Long:              "Identify the processor and print its vendor, model, topology and clock",
		GroupID:           groupID,
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE:              cmd.run,
	}

	// flags
	cobraCmd.Flags().StringVar(&cmd.format, "format", "", "output format: text, yaml or json")

	return cobraCmd
}

func (cmd *showCpuCommand) run(_ *cobra.Command, _ []string) error {
	format, err := config.OutputFormat(cmd.Config, cmd.format)
	if err != nil {
		return err
	}

	if format != common.FormatText {
		cpus, err := cpu.Info(cmd.Detector)
		if err != nil {
			return fmt.Errorf("cpuid error: %w", err)
		}
		return common.PrintFormatted(os.Stdout, cpus, format)
	}

	measureClock, err := config.GetBool(cmd.Config, storage.KeyClockMeasure)
	if err != nil {
		return err
	}

	return cmd.printCpu(os.Stdout, measureClock)
}

func (cmd *showCpuCommand) printCpu(w io.Writer, measureClock bool) error {
	detector := cmd.Detector
	version := detector.Version()

	fmt.Fprintf(w, "cpuid is present: %v\n", detector.IsPresent())
	fmt.Fprintf(w, "cpuid version: %s\n", version)

	info, err := detector.Identify()
	if err != nil {
		return fmt.Errorf("cpuid error: %w", err)
	}

	codename := info.Codename
	if codename == "" {
		codename = "unknown"
		if suggestion := common.SuggestNativeLibrary(version); suggestion != "" {
			log.Printf("Codename not available. %s", suggestion)
		}
	}

	fmt.Fprintf(w, "Found: %s CPU\n", info.Vendor)
	fmt.Fprintf(w, "Processor model is: %s\n", codename)
	fmt.Fprintf(w, "The full brand string is: %s\n", info.Brand)
	fmt.Fprintf(w, "The processor has %s cores and %s logical processors\n",
		count(info.NumCores), count(info.NumLogicalCpus))
	fmt.Fprintf(w, "AES supported: %s\n", yesNo(info.HasFeature(cpuid.AES)))

	if measureClock {
		if mhz, ok := detector.ClockFrequency(); ok {
			fmt.Fprintf(w, "Clock: %d MHz\n", mhz)
		} else {
			fmt.Fprintln(w, "Clock: unknown")
		}
	}

	return nil
}

func count(n int) string {
	if n < 0 {
		return "an unknown number of"
	}
	return fmt.Sprintf("%d", n)
}
