package types

type CpuInfo struct {
	Architecture string `json:"architecture" yaml:"architecture"`

	// amd64
	ManufacturerId string   `json:"manufacturer-id,omitempty" yaml:"manufacturer-id,omitempty"`
	Brand          string   `json:"brand,omitempty" yaml:"brand,omitempty"`
	Codename       string   `json:"codename,omitempty" yaml:"codename,omitempty"`
	Family         HexInt   `json:"family" yaml:"family"`
	Model          HexInt   `json:"model" yaml:"model"`
	Stepping       HexInt   `json:"stepping" yaml:"stepping"`
	ExtFamily      HexInt   `json:"ext-family" yaml:"ext-family"`
	ExtModel       HexInt   `json:"ext-model" yaml:"ext-model"`
	Flags          []string `json:"flags,omitempty" yaml:"flags,omitempty"`

	Topology CpuTopology `json:"topology" yaml:"topology"`
	Caches   []CacheInfo `json:"caches,omitempty" yaml:"caches,omitempty"`
	Sgx      *SgxInfo    `json:"sgx,omitempty" yaml:"sgx,omitempty"`
}

// CpuTopology counts are nil when they could not be determined.
type CpuTopology struct {
	Cores            *int `json:"cores,omitempty" yaml:"cores,omitempty"`
	LogicalCpus      *int `json:"logical-cpus,omitempty" yaml:"logical-cpus,omitempty"`
	TotalLogicalCpus *int `json:"total-logical-cpus,omitempty" yaml:"total-logical-cpus,omitempty"`
}

// CacheInfo describes one cache level. Size is in KB.
type CacheInfo struct {
	Level         string `json:"level" yaml:"level"`
	Size          *int   `json:"size-kb,omitempty" yaml:"size-kb,omitempty"`
	Associativity *int   `json:"associativity,omitempty" yaml:"associativity,omitempty"`
	LineSize      *int   `json:"line-size,omitempty" yaml:"line-size,omitempty"`
}

type SgxInfo struct {
	Features        []string `json:"features,omitempty" yaml:"features,omitempty"`
	MaxEnclave32Bit int      `json:"max-enclave-32bit" yaml:"max-enclave-32bit"`
	MaxEnclave64Bit int      `json:"max-enclave-64bit" yaml:"max-enclave-64bit"`
	EpcSections     int      `json:"epc-sections" yaml:"epc-sections"`
}
