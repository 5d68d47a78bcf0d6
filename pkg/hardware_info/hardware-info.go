package hardware_info

import (
	"fmt"
	"os"
	"testing"

	"github.com/jpnorenam/cpuid-snap/pkg/cpuid"
	"github.com/jpnorenam/cpuid-snap/pkg/hardware_info/cpu"
	"github.com/jpnorenam/cpuid-snap/pkg/hardware_info/memory"
	"github.com/jpnorenam/cpuid-snap/pkg/libcpuid"
	"github.com/jpnorenam/cpuid-snap/pkg/types"
)

// Get builds the machine report. Measuring the clock can take a moment, so it
// is optional.
func Get(detector *cpuid.Detector, measureClock bool) (*types.HwInfo, error) {
	var hwInfo types.HwInfo

	hwInfo.Library = &types.LibraryInfo{
		Version:      detector.Version(),
		CpuidPresent: detector.IsPresent(),
	}

	cpus, err := cpu.Info(detector)
	if err != nil {
		return nil, fmt.Errorf("error getting cpu info: %w", err)
	}
	hwInfo.Cpus = cpus

	if measureClock {
		if mhz, ok := detector.ClockFrequency(); ok {
			hwInfo.ClockMhz = &mhz
		}
	}

	memoryInfo, err := memory.Info()
	if err != nil {
		return nil, fmt.Errorf("error getting memory info: %v", err)
	}
	hwInfo.Memory = memoryInfo

	return &hwInfo, nil
}

// GetFromRawData is mainly used during testing, but also from other packages, and therefore needs to be exported.
// Raw dumps are decoded by the builtin library so results do not depend on the installed libcpuid.
func GetFromRawData(t *testing.T, device string, testDir string) (*types.HwInfo, error) {
	var hwInfo types.HwInfo

	devicePath := testDir + "/machines/" + device + "/"

	unameMachine, err := os.ReadFile(devicePath + "uname-m.txt")
	if err != nil {
		t.Fatal(err)
	}
	rawDump, err := os.ReadFile(devicePath + "cpuid-raw.txt")
	if err != nil {
		t.Fatal(err)
	}
	cpuInfo, err := cpu.InfoFromRawData(cpuid.New(libcpuid.Builtin()), string(rawDump), string(unameMachine))
	if err != nil {
		return nil, err
	}
	hwInfo.Cpus = cpuInfo

	return &hwInfo, nil
}
