package debug

import (
	"fmt"
	"log"
	"os"

	"github.com/jpnorenam/cpuid-snap/cmd/cli/common"
	"github.com/jpnorenam/cpuid-snap/pkg/cpuid"
	"github.com/jpnorenam/cpuid-snap/pkg/hardware_info/cpu"
	"github.com/jpnorenam/cpuid-snap/pkg/types"
	"github.com/spf13/cobra"
)

type identifyRawCommand struct {
	*common.Context

	// flags
	format       string
	architecture string
}

func IdentifyRawCommand(ctx *common.Context) *cobra.Command {
	var cmd identifyRawCommand
	cmd.Context = ctx

	cobraCmd := &cobra.Command{
		Use:   "identify-raw <dump>...",
		Short: "Decode raw CPUID dumps",
		Long: "Decode files written by dump-raw.\n" +
			"With --format, the decoded processors are printed. Otherwise each file is only checked.",
		Args: cobra.MinimumNArgs(1),
		RunE: cmd.run,
	}

	// flags
	cobraCmd.Flags().StringVar(&cmd.format, "format", "", "print the decoded processors as yaml or json")
	cobraCmd.Flags().StringVar(&cmd.architecture, "architecture", "amd64", "architecture of the machine the dumps come from")

	return cobraCmd
}

func (cmd *identifyRawCommand) run(_ *cobra.Command, args []string) error {
	if cmd.format != "" {
		var cpus []types.CpuInfo
		for _, dumpPath := range args {
			info, err := cmd.identify(dumpPath)
			if err != nil {
				return fmt.Errorf("%s: %v", dumpPath, err)
			}
			cpus = append(cpus, cpu.FromCpuInfo(info, cmd.architecture))
		}
		return common.PrintFormatted(os.Stdout, cpus, cmd.format)
	}

	allDumpsValid := true
	for _, dumpPath := range args {
		info, err := cmd.identify(dumpPath)
		if err != nil {
			allDumpsValid = false
			fmt.Printf("❌ %s: %s\n", dumpPath, err)
		} else {
			fmt.Printf("✅ %s: %s %s\n", dumpPath, info.Vendor, info.Brand)
		}
	}

	if !allDumpsValid {
		return fmt.Errorf("not all dumps are valid")
	}
	return nil
}

func (cmd *identifyRawCommand) identify(dumpPath string) (cpuid.CpuInfo, error) {
	f, err := os.Open(dumpPath)
	if err != nil {
		return cpuid.CpuInfo{}, err
	}
	defer f.Close()

	raw, err := cpuid.LoadRaw(f)
	if err != nil {
		return cpuid.CpuInfo{}, err
	}
	if cmd.Verbose {
		log.Printf("Loaded %s", dumpPath)
	}
	return cmd.Detector.IdentifyRaw(raw)
}
