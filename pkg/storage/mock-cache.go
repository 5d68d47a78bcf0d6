package storage

import (
	"fmt"

	"github.com/jpnorenam/cpuid-snap/pkg/cpuid"
	"github.com/jpnorenam/cpuid-snap/pkg/hardware_info"
	"github.com/jpnorenam/cpuid-snap/pkg/types"
)

type mockCache struct {
	detector    *cpuid.Detector
	machineInfo *types.HwInfo
}

// NewMockCache keeps the machine report in memory only.
func NewMockCache(detector *cpuid.Detector) Cache {
	return &mockCache{detector: detector}
}

func (c *mockCache) GetMachineInfo(measureClock bool) (*types.HwInfo, error) {
	if c.machineInfo == nil || (measureClock && c.machineInfo.ClockMhz == nil) {
		machineInfo, err := c.loadMachineInfo(measureClock)
		if err != nil {
			return nil, err
		}
		c.machineInfo = machineInfo
	}
	return c.machineInfo, nil
}

func (c *mockCache) Clear() error {
	c.machineInfo = nil
	return nil
}

func (c *mockCache) loadMachineInfo(measureClock bool) (*types.HwInfo, error) {
	machine, err := hardware_info.Get(c.detector, measureClock)
	if err != nil {
		return nil, fmt.Errorf("error getting machine info: %w", err)
	}
	return machine, nil
}
