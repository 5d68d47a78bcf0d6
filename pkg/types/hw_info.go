package types

type HwInfo struct {
	Library  *LibraryInfo `json:"library,omitempty" yaml:"library,omitempty"`
	Cpus     []CpuInfo   `json:"cpus,omitempty" yaml:"cpus,omitempty"`
	ClockMhz *int        `json:"clock-mhz,omitempty" yaml:"clock-mhz,omitempty"`
	Memory   *MemoryInfo `json:"memory,omitempty" yaml:"memory,omitempty"`
}

type LibraryInfo struct {
	Version      string `json:"version" yaml:"version"`
	CpuidPresent bool   `json:"cpuid-present" yaml:"cpuid-present"`
}
