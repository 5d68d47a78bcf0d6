package libcpuid

// Array extents from libcpuid.h (0.4.x).
const (
	MaxCPUIDLevel      = 32
	MaxExtCPUIDLevel   = 32
	MaxIntelFn4Level   = 8
	MaxIntelFn11Level  = 4
	MaxIntelFn12hLevel = 4
	MaxIntelFn14hLevel = 4

	CPUFlagsMax    = 128
	VendorStrMax   = 16
	BrandStrMax    = 64
	CodenameStrMax = 64
	CPUHintsMax    = 16
	SGXFlagsMax    = 14
)

// Register indexes inside one leaf entry.
const (
	EAX = iota
	EBX
	ECX
	EDX
)

// RawData mirrors struct cpu_raw_data_t. Each entry holds EAX, EBX, ECX and
// EDX as returned for one leaf or sub-leaf.
type RawData struct {
	BasicCPUID [MaxCPUIDLevel][4]uint32
	ExtCPUID   [MaxExtCPUIDLevel][4]uint32
	IntelFn4   [MaxIntelFn4Level][4]uint32
	IntelFn11  [MaxIntelFn11Level][4]uint32
	IntelFn12h [MaxIntelFn12hLevel][4]uint32
	IntelFn14h [MaxIntelFn14hLevel][4]uint32
}

// SGXRecord mirrors struct cpu_sgx_t. The compiler inserts the same four
// bytes of padding before SecsAttributes that a C compiler does on 64-bit
// targets.
type SGXRecord struct {
	Present         uint32
	MaxEnclave32Bit uint8
	MaxEnclave64Bit uint8
	Flags           [SGXFlagsMax]uint8
	NumEPCSections  int32
	MiscSelect      uint32
	SecsAttributes  uint64
	SecsXfrm        uint64
}

// IDRecord mirrors struct cpu_id_t. The char arrays are not guaranteed to be
// NUL terminated when the value fills the whole array.
type IDRecord struct {
	VendorStr [VendorStrMax]byte
	BrandStr  [BrandStrMax]byte
	Vendor    int32
	Flags     [CPUFlagsMax]uint8

	Family    int32
	Model     int32
	Stepping  int32
	ExtFamily int32
	ExtModel  int32

	NumCores         int32
	NumLogicalCPUs   int32
	TotalLogicalCPUs int32

	// Cache sizes in KB; -1 means undetermined, 0 means no such cache.
	L1DataCache        int32
	L1InstructionCache int32
	L2Cache            int32
	L3Cache            int32
	L4Cache            int32

	L1Assoc int32
	L2Assoc int32
	L3Assoc int32
	L4Assoc int32

	L1Cacheline int32
	L2Cacheline int32
	L3Cacheline int32
	L4Cacheline int32

	CPUCodename    [CodenameStrMax]byte
	SSESize        int32
	DetectionHints [CPUHintsMax]uint8
	SGX            SGXRecord
}

// Expected record sizes for 64-bit x86 builds of libcpuid 0.4.x.
const (
	RawDataSize   = 1344
	IDRecordSize  = 432
	SGXRecordSize = 48
)
