package cpuid

import "github.com/jpnorenam/cpuid-snap/pkg/libcpuid"

// Vendor is libcpuid's numeric vendor id.
type Vendor int

const (
	VendorIntel     Vendor = libcpuid.VendorIntel
	VendorAMD       Vendor = libcpuid.VendorAMD
	VendorCyrix     Vendor = libcpuid.VendorCyrix
	VendorNexGen    Vendor = libcpuid.VendorNexGen
	VendorTransmeta Vendor = libcpuid.VendorTransmeta
	VendorUMC       Vendor = libcpuid.VendorUMC
	VendorCentaur   Vendor = libcpuid.VendorCentaur
	VendorRise      Vendor = libcpuid.VendorRise
	VendorSiS       Vendor = libcpuid.VendorSiS
	VendorNSC       Vendor = libcpuid.VendorNSC
	VendorHygon     Vendor = libcpuid.VendorHygon
	VendorUnknown   Vendor = libcpuid.VendorUnknown
)

var vendorNames = map[Vendor]string{
	VendorIntel:     "Intel",
	VendorAMD:       "AMD",
	VendorCyrix:     "Cyrix",
	VendorNexGen:    "NexGen",
	VendorTransmeta: "Transmeta",
	VendorUMC:       "UMC",
	VendorCentaur:   "Centaur",
	VendorRise:      "Rise",
	VendorSiS:       "SiS",
	VendorNSC:       "NSC",
	VendorHygon:     "Hygon",
}

func (v Vendor) String() string {
	if name, ok := vendorNames[v]; ok {
		return name
	}
	return "unknown"
}

// CpuInfo describes the processor. It is built once by Identify and owns all
// of its data; nothing in it points back into libcpuid's buffers.
//
// Cache sizes are in KB. A nil cache field means libcpuid could not determine
// the value, while zero means the processor has no such cache. The same rule
// applies to associativity and cache line sizes.
type CpuInfo struct {
	// Vendor string, for example "GenuineIntel".
	Vendor   string
	VendorID Vendor
	// Brand string, for example "Intel(R) Core(TM) i5-2410M CPU @ 2.30GHz".
	Brand string
	// Brief codename, for example "Sandy Bridge (Core i5)".
	Codename string

	Family    int
	Model     int
	Stepping  int
	ExtFamily int
	ExtModel  int

	// Physical cores of the current package.
	NumCores int
	// Logical processors of the current package, including hyper-threads.
	NumLogicalCpus int
	// Logical processors in the whole system.
	TotalLogicalCpus int

	// Cache sizes in KiB. Zero means the level is absent.
	L1DataCache        Optional
	L1InstructionCache Optional
	L2Cache            Optional
	L3Cache            Optional
	L4Cache            Optional

	L1Assoc Optional
	L2Assoc Optional
	L3Assoc Optional
	L4Assoc Optional

	L1Cacheline Optional
	L2Cacheline Optional
	L3Cacheline Optional
	L4Cacheline Optional

	SGX SGXInfo

	flags [libcpuid.CPUFlagsMax]uint8
}

// SGXInfo describes Intel Software Guard Extensions support.
type SGXInfo struct {
	Present bool
	// Maximum enclave sizes as powers of two, e.g. 36 means 2^36 bytes.
	MaxEnclave32Bit int
	MaxEnclave64Bit int
	NumEPCSections  int
	MiscSelect      uint32
	SecsAttributes  uint64
	SecsXfrm        uint64

	flags [libcpuid.SGXFlagsMax]uint8
}

func newCpuInfo(data *libcpuid.IDRecord) CpuInfo {
	return CpuInfo{
		Vendor:   cString("vendor", data.VendorStr[:]),
		VendorID: Vendor(data.Vendor),
		Brand:    cString("brand", data.BrandStr[:]),
		Codename: cString("codename", data.CPUCodename[:]),

		Family:    int(data.Family),
		Model:     int(data.Model),
		Stepping:  int(data.Stepping),
		ExtFamily: int(data.ExtFamily),
		ExtModel:  int(data.ExtModel),

		NumCores:         int(data.NumCores),
		NumLogicalCpus:   int(data.NumLogicalCPUs),
		TotalLogicalCpus: int(data.TotalLogicalCPUs),

		L1DataCache:        optional(data.L1DataCache),
		L1InstructionCache: optional(data.L1InstructionCache),
		L2Cache:            optional(data.L2Cache),
		L3Cache:            optional(data.L3Cache),
		L4Cache:            optional(data.L4Cache),

		L1Assoc: optional(data.L1Assoc),
		L2Assoc: optional(data.L2Assoc),
		L3Assoc: optional(data.L3Assoc),
		L4Assoc: optional(data.L4Assoc),

		L1Cacheline: optional(data.L1Cacheline),
		L2Cacheline: optional(data.L2Cacheline),
		L3Cacheline: optional(data.L3Cacheline),
		L4Cacheline: optional(data.L4Cacheline),

		SGX: SGXInfo{
			Present:         data.SGX.Present != 0,
			MaxEnclave32Bit: int(data.SGX.MaxEnclave32Bit),
			MaxEnclave64Bit: int(data.SGX.MaxEnclave64Bit),
			NumEPCSections:  int(data.SGX.NumEPCSections),
			MiscSelect:      data.SGX.MiscSelect,
			SecsAttributes:  data.SGX.SecsAttributes,
			SecsXfrm:        data.SGX.SecsXfrm,
			flags:           data.SGX.Flags,
		},

		flags: data.Flags,
	}
}

// HasFeature reports whether the processor supports f.
func (info CpuInfo) HasFeature(f Feature) bool {
	if f < 0 || f >= NumFeatures {
		return false
	}
	return info.flags[f] == 1
}

// Features returns the supported features in index order.
func (info CpuInfo) Features() []Feature {
	var present []Feature
	for _, f := range AllFeatures() {
		if info.HasFeature(f) {
			present = append(present, f)
		}
	}
	return present
}

// HasFeature reports whether the SGX sub-feature f is supported.
func (sgx SGXInfo) HasFeature(f SGXFeature) bool {
	if f < 0 || f >= NumSGXFeatures {
		return false
	}
	return sgx.flags[f] == 1
}
