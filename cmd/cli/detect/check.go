package detect

import (
	"fmt"
	"log"
	"strings"

	"github.com/jpnorenam/cpuid-snap/cmd/cli/common"
	"github.com/jpnorenam/cpuid-snap/pkg/cpuid"
	"github.com/jpnorenam/cpuid-snap/pkg/selector"
	"github.com/jpnorenam/cpuid-snap/pkg/selector/cpu"
	"github.com/jpnorenam/cpuid-snap/pkg/types"
	"github.com/jpnorenam/cpuid-snap/pkg/utils"
	"github.com/spf13/cobra"
)

type checkCommand struct {
	*common.Context

	// flags
	profilesFile   string
	manufacturerId string
	sgx            bool
}

func CheckCommand(ctx *common.Context) *cobra.Command {
	var cmd checkCommand
	cmd.Context = ctx

	cobraCmd := &cobra.Command{
		Use:   "check [<feature>...]",
		Short: "Check the processor against requirements",
		Long: "Check that the processor supports the given features, or satisfies the profiles in a YAML file.\n" +
			"Exits with an error when a requirement is not met.",
		GroupID:           groupID,
		ValidArgsFunction: completeFeatures,
		RunE:              cmd.run,
	}

	// flags
	cobraCmd.Flags().StringVar(&cmd.profilesFile, "profiles", "", "YAML file with a list of profiles")
	cobraCmd.Flags().StringVar(&cmd.manufacturerId, "manufacturer-id", "", "required vendor string, e.g. GenuineIntel")
	cobraCmd.Flags().BoolVar(&cmd.sgx, "sgx", false, "require SGX")

	return cobraCmd
}

func (cmd *checkCommand) run(_ *cobra.Command, args []string) error {
	profiles, err := cmd.profiles(args)
	if err != nil {
		return err
	}

	hwInfo, err := cmd.Cache.GetMachineInfo(false)
	if err != nil {
		return fmt.Errorf("error getting machine info: %w", err)
	}
	if cmd.Verbose {
		log.Printf("Machine info: %s", utils.FmtPretty(hwInfo.Cpus))
	}

	return cmd.checkProfiles(hwInfo, profiles)
}

func (cmd *checkCommand) profiles(features []string) ([]selector.Profile, error) {
	var profiles []selector.Profile

	if cmd.profilesFile != "" {
		loaded, err := selector.LoadProfiles(cmd.profilesFile)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, loaded...)
	}

	if len(features) > 0 || cmd.manufacturerId != "" || cmd.sgx {
		requirements := cpu.Requirements{Sgx: cmd.sgx}
		for _, name := range features {
			feature, err := cpuid.ParseFeature(name)
			if err != nil {
				return nil, err
			}
			requirements.Flags = append(requirements.Flags, feature.String())
		}
		if cmd.manufacturerId != "" {
			requirements.ManufacturerId = &cmd.manufacturerId
		}
		profiles = append(profiles, selector.Profile{
			Name: "command line",
			Cpu:  requirements,
		})
	}

	if len(profiles) == 0 {
		return nil, fmt.Errorf("nothing to check, give features or --profiles")
	}

	return profiles, nil
}

func (cmd *checkCommand) checkProfiles(hwInfo *types.HwInfo, profiles []selector.Profile) error {
	scoredProfiles, err := selector.ScoreProfiles(hwInfo, profiles)
	if err != nil {
		return fmt.Errorf("error scoring profiles: %v", err)
	}

	allCompatible := true
	for _, profile := range scoredProfiles {
		if profile.Compatible {
			fmt.Printf("✅ %s\n", profile.Name)
			if cmd.Verbose {
				log.Printf("%s: score %d", profile.Name, profile.Score)
			}
		} else {
			allCompatible = false
			fmt.Printf("❌ %s: %s\n", profile.Name, strings.Join(profile.CompatibilityIssues, ", "))
		}
	}

	if !allCompatible {
		return fmt.Errorf("not all requirements are met")
	}
	return nil
}

func completeFeatures(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var names []string
	for _, feature := range cpuid.AllFeatures() {
		if strings.HasPrefix(feature.String(), strings.ToLower(toComplete)) {
			names = append(names, feature.String()+"\t"+feature.Description())
		}
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
