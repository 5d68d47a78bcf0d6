package cpu

import (
	"fmt"
	"slices"

	"github.com/jpnorenam/cpuid-snap/pkg/constants"
	"github.com/jpnorenam/cpuid-snap/pkg/selector/weights"
	"github.com/jpnorenam/cpuid-snap/pkg/types"
)

// Requirements describe the processor a workload needs. Nil and empty fields
// are not checked.
type Requirements struct {
	Architecture   *string  `json:"architecture,omitempty" yaml:"architecture,omitempty"`
	ManufacturerId *string  `json:"manufacturer-id,omitempty" yaml:"manufacturer-id,omitempty"`
	Family         *int     `json:"family,omitempty" yaml:"family,omitempty"`
	Flags          []string `json:"flags,omitempty" yaml:"flags,omitempty"`
	Sgx            bool     `json:"sgx,omitempty" yaml:"sgx,omitempty"`
}

/*
Match checks the requirements against every CPU reported for the system.
A score and a string slice with reasons are returned. If there is a matching CPU on the system, the score will be positive.
If no CPU matches, the score will be zero and there will be one or more reasons for the mismatch.
*/
func Match(required Requirements, hostCpus []types.CpuInfo) (maxCpuScore int, issues []string) {
	maxCpuScore = 0

	if hostCpus == nil {
		issues = append(issues, "no cpu found on host system")
	}

	for i, cpu := range hostCpus {
		cpuScore, cpuIssues := CheckCpu(required, cpu)

		if len(cpuIssues) > 0 {
			if len(hostCpus) > 1 {
				for _, issue := range cpuIssues {
					issues = append(issues, fmt.Sprintf("cpu %d: %v", i, issue))
				}
			} else {
				issues = append(issues, cpuIssues...)
			}
		} else {
			if cpuScore > maxCpuScore {
				maxCpuScore = cpuScore
			}
		}
	}

	return
}

func CheckCpu(required Requirements, hostCpu types.CpuInfo) (cpuScore int, issues []string) {
	cpuScore = weights.CpuDevice

	// architecture
	if required.Architecture != nil {
		if *required.Architecture == hostCpu.Architecture {
			// architecture matches - no additional weight
		} else {
			issues = append(issues, fmt.Sprintf("architecture not %s", *required.Architecture))
		}
	}

	x86 := hostCpu.Architecture == constants.Amd64 || hostCpu.Architecture == constants.I386
	if !x86 {
		if required.ManufacturerId != nil || required.Family != nil || len(required.Flags) > 0 || required.Sgx {
			issues = append(issues, fmt.Sprintf("cpuid properties not available on %s", hostCpu.Architecture))
		}
		cpuScore = 0
		return
	}

	// manufacturer ID
	if required.ManufacturerId != nil {
		if *required.ManufacturerId == hostCpu.ManufacturerId {
			cpuScore += weights.CpuVendor
		} else {
			issues = append(issues, fmt.Sprintf("manufacturer id mismatch: %s", hostCpu.ManufacturerId))
		}
	}

	// family, compared with the extended family as libcpuid reports it
	if required.Family != nil {
		if *required.Family == int(hostCpu.ExtFamily) {
			cpuScore += weights.CpuModel
		} else {
			issues = append(issues, fmt.Sprintf("family mismatch: %v", hostCpu.ExtFamily))
		}
	}

	// flags
	for _, flag := range required.Flags {
		if slices.Contains(hostCpu.Flags, flag) {
			cpuScore += weights.CpuFlag
		} else {
			issues = append(issues, fmt.Sprintf("flag %s missing", flag))
		}
	}

	if required.Sgx {
		if hostCpu.Sgx != nil {
			cpuScore += weights.CpuFlag
		} else {
			issues = append(issues, "sgx not available")
		}
	}

	if len(issues) > 0 {
		cpuScore = 0
	}

	return
}
