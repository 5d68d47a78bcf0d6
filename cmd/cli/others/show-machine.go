package others

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/jpnorenam/cpuid-snap/cmd/cli/common"
	"github.com/jpnorenam/cpuid-snap/cmd/cli/config"
	"github.com/jpnorenam/cpuid-snap/pkg/storage"
	"github.com/jpnorenam/cpuid-snap/pkg/types"
	"github.com/jpnorenam/cpuid-snap/pkg/utils"
	"github.com/spf13/cobra"
)

type showMachineCommand struct {
	*common.Context

	// flags
	format string
}

func ShowMachineCommand(ctx *common.Context) *cobra.Command {
	var cmd showMachineCommand
	cmd.Context = ctx

	cobraCmd := &cobra.Command{
		Use:               "show-machine",
		Short:             "Print information about the host machine",
		Long:              "Print information about the host machine, including processors, caches, clock and memory",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE:              cmd.run,
	}

	// flags
	cobraCmd.Flags().StringVar(&cmd.format, "format", "", "output format: text, yaml or json")

	return cobraCmd
}

func (cmd *showMachineCommand) run(_ *cobra.Command, _ []string) error {
	format, err := config.OutputFormat(cmd.Config, cmd.format)
	if err != nil {
		return err
	}

	measureClock, err := config.GetBool(cmd.Config, storage.KeyClockMeasure)
	if err != nil {
		return err
	}

	if !measureClock && cmd.Verbose {
		log.Printf("Clock measurement is disabled. %s", common.SuggestSnapConfig(storage.KeyClockMeasure))
	}

	stopProgress := common.StartProgressSpinner("Getting machine info")
	hwInfo, err := cmd.Cache.GetMachineInfo(measureClock)
	stopProgress()
	if err != nil {
		return fmt.Errorf("failed to get machine info: %s", err)
	}

	if format == common.FormatText {
		printMachine(os.Stdout, hwInfo)
		return nil
	}
	return common.PrintFormatted(os.Stdout, hwInfo, format)
}

func printMachine(w io.Writer, hwInfo *types.HwInfo) {
	if hwInfo.Library != nil {
		fmt.Fprintf(w, "libcpuid %s, cpuid present: %v\n", hwInfo.Library.Version, hwInfo.Library.CpuidPresent)
	}

	for i, cpu := range hwInfo.Cpus {
		fmt.Fprintf(w, "cpu %d: %s (%s)\n", i, orUnknown(cpu.Brand), cpu.Architecture)
		if cpu.ManufacturerId != "" {
			fmt.Fprintf(w, "  vendor: %s\n", cpu.ManufacturerId)
			fmt.Fprintf(w, "  family %s, model %s, stepping %s\n", cpu.ExtFamily, cpu.ExtModel, cpu.Stepping)
		}
		if cpu.Codename != "" {
			fmt.Fprintf(w, "  codename: %s\n", cpu.Codename)
		}
		fmt.Fprintf(w, "  cores: %s, logical cpus: %s\n", optional(cpu.Topology.Cores), optional(cpu.Topology.LogicalCpus))
		for _, cache := range cpu.Caches {
			fmt.Fprintf(w, "  %s cache: %s KiB\n", cache.Level, optional(cache.Size))
		}
		if cpu.Sgx != nil {
			fmt.Fprintf(w, "  sgx: %s\n", strings.Join(cpu.Sgx.Features, ", "))
		}
		if len(cpu.Flags) > 0 {
			fmt.Fprintf(w, "  flags: %s\n", strings.Join(cpu.Flags, " "))
		}
	}

	if hwInfo.ClockMhz != nil {
		fmt.Fprintf(w, "clock: %d MHz\n", *hwInfo.ClockMhz)
	}

	if hwInfo.Memory != nil {
		fmt.Fprintf(w, "memory: %s ram, %s swap\n",
			utils.FmtBytes(hwInfo.Memory.TotalRam), utils.FmtBytes(hwInfo.Memory.TotalSwap))
	}
}

func optional(v *int) string {
	if v == nil {
		return "unknown"
	}
	return fmt.Sprintf("%d", *v)
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
