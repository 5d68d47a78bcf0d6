package cpu

import (
	"fmt"
	"strings"

	"github.com/jpnorenam/cpuid-snap/pkg/constants"
	"github.com/jpnorenam/cpuid-snap/pkg/cpuid"
	"github.com/jpnorenam/cpuid-snap/pkg/types"
)

// Info identifies the processor of the running machine.
func Info(detector *cpuid.Detector) ([]types.CpuInfo, error) {
	unameMachine, err := machine()
	if err != nil {
		return nil, fmt.Errorf("error getting machine architecture: %v", err)
	}

	architecture := constants.DebianArchitecture(unameMachine)

	// Without CPUID only the architecture is known
	if !detector.IsPresent() {
		return []types.CpuInfo{{Architecture: architecture}}, nil
	}

	info, err := detector.Identify()
	if err != nil {
		return nil, fmt.Errorf("error identifying cpu: %w", err)
	}

	return []types.CpuInfo{FromCpuInfo(info, architecture)}, nil
}

// InfoFromRawData identifies a processor from a libcpuid raw dump and the
// output of `uname -m` captured on the same machine.
func InfoFromRawData(detector *cpuid.Detector, rawDump, unameMachine string) ([]types.CpuInfo, error) {
	raw, err := cpuid.LoadRaw(strings.NewReader(rawDump))
	if err != nil {
		return nil, fmt.Errorf("error parsing raw dump: %v", err)
	}

	info, err := detector.IdentifyRaw(raw)
	if err != nil {
		return nil, fmt.Errorf("error identifying cpu: %w", err)
	}

	architecture := constants.DebianArchitecture(strings.TrimSpace(unameMachine))
	return []types.CpuInfo{FromCpuInfo(info, architecture)}, nil
}

// FromCpuInfo converts an identification result into its report form.
func FromCpuInfo(info cpuid.CpuInfo, architecture string) types.CpuInfo {
	cpu := types.CpuInfo{
		Architecture:   architecture,
		ManufacturerId: info.Vendor,
		Brand:          info.Brand,
		Codename:       info.Codename,
		Family:         types.HexInt(info.Family),
		Model:          types.HexInt(info.Model),
		Stepping:       types.HexInt(info.Stepping),
		ExtFamily:      types.HexInt(info.ExtFamily),
		ExtModel:       types.HexInt(info.ExtModel),
		Topology: types.CpuTopology{
			Cores:            count(info.NumCores),
			LogicalCpus:      count(info.NumLogicalCpus),
			TotalLogicalCpus: count(info.TotalLogicalCpus),
		},
	}

	for _, feature := range info.Features() {
		cpu.Flags = append(cpu.Flags, feature.String())
	}

	levels := []types.CacheInfo{
		{Level: "l1d", Size: info.L1DataCache.Ptr(), Associativity: info.L1Assoc.Ptr(), LineSize: info.L1Cacheline.Ptr()},
		{Level: "l1i", Size: info.L1InstructionCache.Ptr()},
		{Level: "l2", Size: info.L2Cache.Ptr(), Associativity: info.L2Assoc.Ptr(), LineSize: info.L2Cacheline.Ptr()},
		{Level: "l3", Size: info.L3Cache.Ptr(), Associativity: info.L3Assoc.Ptr(), LineSize: info.L3Cacheline.Ptr()},
		{Level: "l4", Size: info.L4Cache.Ptr(), Associativity: info.L4Assoc.Ptr(), LineSize: info.L4Cacheline.Ptr()},
	}
	for _, level := range levels {
		if level.Size == nil && level.Associativity == nil && level.LineSize == nil {
			continue
		}
		cpu.Caches = append(cpu.Caches, level)
	}

	if info.SGX.Present {
		sgx := types.SgxInfo{
			MaxEnclave32Bit: info.SGX.MaxEnclave32Bit,
			MaxEnclave64Bit: info.SGX.MaxEnclave64Bit,
			EpcSections:     info.SGX.NumEPCSections,
		}
		for _, feature := range []cpuid.SGXFeature{cpuid.IntelSGX1, cpuid.IntelSGX2} {
			if info.SGX.HasFeature(feature) {
				sgx.Features = append(sgx.Features, feature.String())
			}
		}
		cpu.Sgx = &sgx
	}

	return cpu
}

// count maps libcpuid's -1 to nil.
func count(n int) *int {
	if n < 0 {
		return nil
	}
	return &n
}
