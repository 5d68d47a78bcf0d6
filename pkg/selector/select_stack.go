package selector

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/jpnorenam/cpuid-snap/pkg/constants"
	"github.com/jpnorenam/cpuid-snap/pkg/cpuid"
	"github.com/jpnorenam/cpuid-snap/pkg/selector/cpu"
	"github.com/jpnorenam/cpuid-snap/pkg/types"
	"github.com/jpnorenam/cpuid-snap/pkg/utils"
	"gopkg.in/yaml.v3"
)

var ErrorNoCompatibleProfile = errors.New("no compatible profiles found")

// Profile is a named set of hardware requirements, for example a build
// target or the minimum machine a workload supports.
type Profile struct {
	Name        string           `json:"name" yaml:"name"`
	Description string           `json:"description,omitempty" yaml:"description,omitempty"`
	Memory      *string          `json:"memory,omitempty" yaml:"memory,omitempty"`
	Cpu         cpu.Requirements `json:"cpu" yaml:"cpu"`
}

type ScoredProfile struct {
	Profile             `yaml:",inline"`
	Score               int      `json:"score" yaml:"score"`
	Compatible          bool     `json:"compatible" yaml:"compatible"`
	CompatibilityIssues []string `json:"compatibility-issues,omitempty" yaml:"compatibility-issues,omitempty"`
}

// LoadProfiles reads a YAML file holding a list of profiles. Unknown fields,
// unknown flags and unparsable memory sizes are errors.
func LoadProfiles(path string) ([]Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading profiles: %v", err)
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("%s: empty yaml data", path)
	}

	var profiles []Profile

	yamlDecoder := yaml.NewDecoder(bytes.NewReader(data))

	// Error if there are unknown fields in the yaml
	yamlDecoder.KnownFields(true)

	if err := yamlDecoder.Decode(&profiles); err != nil {
		return nil, fmt.Errorf("error parsing profiles: %v", err)
	}

	for i, profile := range profiles {
		if err := profile.validate(); err != nil {
			return nil, fmt.Errorf("profile %d: %v", i, err)
		}
	}

	return profiles, nil
}

func (profile Profile) validate() error {
	if profile.Name == "" {
		return fmt.Errorf("required field is not set: name")
	}

	if profile.Memory != nil {
		_, err := utils.StringToBytes(*profile.Memory)
		if err != nil {
			return fmt.Errorf("error parsing memory: %v", err)
		}
	}

	if profile.Cpu.Architecture != nil {
		switch *profile.Cpu.Architecture {
		case constants.Amd64, constants.I386, constants.Arm64:
		default:
			return fmt.Errorf("invalid architecture: %v", *profile.Cpu.Architecture)
		}
	}

	for _, flag := range profile.Cpu.Flags {
		if _, err := cpuid.ParseFeature(flag); err != nil {
			return err
		}
	}

	return nil
}

func TopProfile(scoredProfiles []ScoredProfile) (*ScoredProfile, error) {
	var compatibleProfiles []ScoredProfile

	for _, profile := range scoredProfiles {
		if profile.Compatible {
			compatibleProfiles = append(compatibleProfiles, profile)
		}
	}

	if len(compatibleProfiles) == 0 {
		return nil, ErrorNoCompatibleProfile
	}

	// Sort by score (high to low) and return highest match
	sort.SliceStable(compatibleProfiles, func(i, j int) bool {
		return compatibleProfiles[i].Score > compatibleProfiles[j].Score
	})

	return &compatibleProfiles[0], nil
}

func ScoreProfiles(hardwareInfo *types.HwInfo, profiles []Profile) ([]ScoredProfile, error) {
	var scoredProfiles []ScoredProfile

	for _, currentProfile := range profiles {
		score, reasons, err := checkProfile(hardwareInfo, currentProfile)
		if err != nil {
			return nil, fmt.Errorf("profile %s: %v", currentProfile.Name, err)
		}

		scoredProfile := ScoredProfile{
			Profile:    currentProfile,
			Score:      score,
			Compatible: true,
		}

		if score == 0 {
			scoredProfile.Compatible = false
		}
		scoredProfile.CompatibilityIssues = append(scoredProfile.CompatibilityIssues, reasons...)

		scoredProfiles = append(scoredProfiles, scoredProfile)
	}

	return scoredProfiles, nil
}

func checkProfile(hardwareInfo *types.HwInfo, profile Profile) (int, []string, error) {
	profileScore := 0
	var reasons []string
	compatible := true

	// Enough memory
	if profile.Memory != nil {
		requiredMemory, err := utils.StringToBytes(*profile.Memory)
		if err != nil {
			return 0, nil, fmt.Errorf("failed to parse required memory: %v", err)

		} else if hardwareInfo.Memory == nil || hardwareInfo.Memory.TotalRam == 0 {
			return 0, nil, fmt.Errorf("total memory not reported by host system")

		} else if hardwareInfo.Memory.TotalRam+hardwareInfo.Memory.TotalSwap < requiredMemory {
			// Checking combination of ram and swap
			compatible = false
			reasons = append(reasons, "host system memory too small")

		} else {
			profileScore += 1
		}
	}

	cpuScore, issues := cpu.Match(profile.Cpu, hardwareInfo.Cpus)
	if len(issues) > 0 {
		compatible = false
		reasons = append(reasons, issues...)
	} else {
		profileScore += cpuScore
	}

	if !compatible {
		profileScore = 0
	}

	return profileScore, reasons, nil
}
