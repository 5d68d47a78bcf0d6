package memory

import (
	"fmt"

	"github.com/jpnorenam/cpuid-snap/pkg/types"
	"github.com/shirou/gopsutil/mem"
)

func Info() (*types.MemoryInfo, error) {
	virtual, err := mem.VirtualMemory()
	if err != nil {
		return nil, fmt.Errorf("error reading virtual memory: %v", err)
	}

	var info types.MemoryInfo
	info.TotalRam = virtual.Total

	swap, err := mem.SwapMemory()
	if err == nil {
		info.TotalSwap = swap.Total
	}

	return &info, nil
}
