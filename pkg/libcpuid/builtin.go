package libcpuid

import (
	"bytes"
	"encoding/binary"
	"runtime"
	"sync"

	"github.com/jpnorenam/cpuid-snap/pkg/libcpuid/internal/x86"
	"github.com/klauspost/cpuid/v2"
	"github.com/shirou/gopsutil/cpu"
)

// BuiltinVersion is reported by the builtin library's Version.
const BuiltinVersion = "0.4.1+builtin"

const extendedBase = 0x80000000

type leafTable int

const (
	leafBasic leafTable = iota
	leafExtended
)

type flagBit struct {
	feature int
	table   leafTable
	leaf    int
	reg     int
	bit     uint
}

var vendorStrings = map[string]int32{
	"GenuineIntel": VendorIntel,
	"AuthenticAMD": VendorAMD,
	"CyrixInstead": VendorCyrix,
	"NexGenDriven": VendorNexGen,
	"GenuineTMx86": VendorTransmeta,
	"UMC UMC UMC ": VendorUMC,
	"CentaurHauls": VendorCentaur,
	"RiseRiseRise": VendorRise,
	"SiS SiS SiS ": VendorSiS,
	"Geode by NSC": VendorNSC,
	"HygonGenuine": VendorHygon,
}

// builtinLibrary implements Library in Go. Raw data comes from the CPUID
// instruction; topology and cache sizes come from github.com/klauspost/cpuid.
// Like the C library it keeps a single last-error string for the process.
type builtinLibrary struct {
	mu      sync.Mutex
	lastErr string

	query func(leaf, subleaf uint32) x86.Leaf
	clock func() int32
}

var builtin = &builtinLibrary{
	query: x86.Query,
	clock: measureClock,
}

// Builtin returns the pure Go library. It needs neither cgo nor libcpuid and
// works on amd64 and 386; elsewhere Present reports false and GetRawData fails
// with ErrNoCPUID.
func Builtin() Library {
	return builtin
}

func (b *builtinLibrary) fail(code ErrorCode) int32 {
	b.mu.Lock()
	b.lastErr = code.Message()
	b.mu.Unlock()
	return int32(code)
}

func (b *builtinLibrary) Present() bool {
	return x86.Supported
}

func (b *builtinLibrary) Version() []byte {
	return []byte(BuiltinVersion)
}

func (b *builtinLibrary) LastError() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return []byte(b.lastErr)
}

func (b *builtinLibrary) GetRawData(raw *RawData) int32 {
	if !x86.Supported {
		return b.fail(ErrNoCPUID)
	}

	raw.BasicCPUID[0] = b.query(0, 0)
	maxBasic := raw.BasicCPUID[0][EAX]
	for i := uint32(1); i < MaxCPUIDLevel && i <= maxBasic; i++ {
		raw.BasicCPUID[i] = b.query(i, 0)
	}

	raw.ExtCPUID[0] = b.query(extendedBase, 0)
	maxExt := raw.ExtCPUID[0][EAX]
	for i := uint32(1); i < MaxExtCPUIDLevel && extendedBase+i <= maxExt; i++ {
		raw.ExtCPUID[i] = b.query(extendedBase+i, 0)
	}

	subleaves := func(leaf uint32, dst [][4]uint32) {
		if maxBasic < leaf {
			return
		}
		for i := range dst {
			dst[i] = b.query(leaf, uint32(i))
		}
	}
	subleaves(0x4, raw.IntelFn4[:])
	subleaves(0xb, raw.IntelFn11[:])
	subleaves(0x12, raw.IntelFn12h[:])
	subleaves(0x14, raw.IntelFn14h[:])

	return int32(ErrOK)
}

func (b *builtinLibrary) Identify(raw *RawData, data *IDRecord) int32 {
	if raw.BasicCPUID[0] == [4]uint32{} {
		return b.fail(ErrCPUUnknown)
	}

	vendor := vendorString(raw)
	copy(data.VendorStr[:], vendor)
	data.Vendor = VendorUnknown
	if id, ok := vendorStrings[vendor]; ok {
		data.Vendor = id
	}
	copy(data.BrandStr[:], brandString(raw))

	signature := raw.BasicCPUID[1][EAX]
	data.Family = int32(signature>>8) & 0xf
	data.Model = int32(signature>>4) & 0xf
	data.Stepping = int32(signature) & 0xf
	data.ExtFamily = data.Family
	if data.Family == 0xf {
		data.ExtFamily += int32(signature>>20) & 0xff
	}
	data.ExtModel = data.Model
	if data.Family == 0x6 || data.Family == 0xf {
		data.ExtModel += (int32(signature>>16) & 0xf) << 4
	}

	decodeFlags(raw, data)
	decodeSGX(raw, data)

	data.SSESize = -1
	b.fillTopology(raw, data)

	return int32(ErrOK)
}

func (b *builtinLibrary) Clock() int32 {
	return b.clock()
}

func vendorString(raw *RawData) string {
	var buf [12]byte
	leaf := raw.BasicCPUID[0]
	binary.LittleEndian.PutUint32(buf[0:], leaf[EBX])
	binary.LittleEndian.PutUint32(buf[4:], leaf[EDX])
	binary.LittleEndian.PutUint32(buf[8:], leaf[ECX])
	return string(buf[:])
}

// brandString assembles leaves 0x80000002-0x80000004. Leading spaces are
// dropped; the string may fill all 48 bytes without a terminator.
func brandString(raw *RawData) []byte {
	if raw.ExtCPUID[0][EAX] < extendedBase+4 {
		return nil
	}
	var buf [48]byte
	for i := 0; i < 3; i++ {
		for reg := EAX; reg <= EDX; reg++ {
			binary.LittleEndian.PutUint32(buf[i*16+reg*4:], raw.ExtCPUID[2+i][reg])
		}
	}
	brand := bytes.TrimLeft(buf[:], " ")
	if i := bytes.IndexByte(brand, 0); i >= 0 {
		brand = brand[:i]
	}
	return brand
}

func decodeFlags(raw *RawData, data *IDRecord) {
	maxBasic := raw.BasicCPUID[0][EAX]
	maxExt := raw.ExtCPUID[0][EAX]
	for _, fb := range flagBits {
		var leaf [4]uint32
		switch fb.table {
		case leafBasic:
			if uint32(fb.leaf) > maxBasic {
				continue
			}
			leaf = raw.BasicCPUID[fb.leaf]
		case leafExtended:
			if extendedBase+uint32(fb.leaf) > maxExt {
				continue
			}
			leaf = raw.ExtCPUID[fb.leaf]
		}
		if leaf[fb.reg]&(1<<fb.bit) != 0 {
			data.Flags[fb.feature] = 1
		}
	}

	// Leaf 0x80000001 EDX bit 20 is XD on Intel and NX everywhere else.
	if data.Vendor == VendorIntel {
		data.Flags[FeatureNX] = 0
	} else {
		data.Flags[FeatureXD] = 0
	}
}

func decodeSGX(raw *RawData, data *IDRecord) {
	if data.Flags[FeatureSGX] == 0 || raw.BasicCPUID[0][EAX] < 0x12 {
		return
	}
	caps := raw.IntelFn12h[0]
	if caps[EAX]&0x3 == 0 {
		return
	}
	sgx := &data.SGX
	sgx.Present = 1
	if caps[EAX]&0x1 != 0 {
		sgx.Flags[SGXFeatureSGX1] = 1
	}
	if caps[EAX]&0x2 != 0 {
		sgx.Flags[SGXFeatureSGX2] = 1
	}
	sgx.MiscSelect = caps[EBX]
	sgx.MaxEnclave32Bit = uint8(caps[EDX])
	sgx.MaxEnclave64Bit = uint8(caps[EDX] >> 8)

	attrs := raw.IntelFn12h[1]
	sgx.SecsAttributes = uint64(attrs[EAX]) | uint64(attrs[EBX])<<32
	sgx.SecsXfrm = uint64(attrs[ECX]) | uint64(attrs[EDX])<<32

	// Sub-leaves 2 and up describe EPC sections; type 1 is a valid section.
	for _, section := range raw.IntelFn12h[2:] {
		if section[EAX]&0xf == 1 {
			sgx.NumEPCSections++
		}
	}
}

// fillTopology reports core counts and caches for the running processor. A
// buffer captured on another machine leaves them undetermined.
func (b *builtinLibrary) fillTopology(raw *RawData, data *IDRecord) {
	undetermined := []*int32{
		&data.NumCores, &data.NumLogicalCPUs, &data.TotalLogicalCPUs,
		&data.L1DataCache, &data.L1InstructionCache, &data.L2Cache, &data.L3Cache, &data.L4Cache,
		&data.L1Assoc, &data.L2Assoc, &data.L3Assoc, &data.L4Assoc,
		&data.L1Cacheline, &data.L2Cacheline, &data.L3Cacheline, &data.L4Cacheline,
	}
	for _, field := range undetermined {
		*field = -1
	}

	if !b.describesHost(raw) {
		return
	}

	host := cpuid.CPU
	if host.PhysicalCores > 0 {
		data.NumCores = int32(host.PhysicalCores)
	}
	if host.LogicalCores > 0 {
		data.NumLogicalCPUs = int32(host.LogicalCores)
	}
	data.TotalLogicalCPUs = int32(runtime.NumCPU())
	if total, err := cpu.Counts(true); err == nil && total > 0 {
		data.TotalLogicalCPUs = int32(total)
	}

	data.L1DataCache = kilobytes(host.Cache.L1D)
	data.L1InstructionCache = kilobytes(host.Cache.L1I)
	data.L2Cache = kilobytes(host.Cache.L2)
	data.L3Cache = kilobytes(host.Cache.L3)

	if host.CacheLine > 0 {
		line := int32(host.CacheLine)
		for _, level := range []struct{ size, line *int32 }{
			{&data.L1DataCache, &data.L1Cacheline},
			{&data.L2Cache, &data.L2Cacheline},
			{&data.L3Cache, &data.L3Cacheline},
		} {
			if *level.size > 0 {
				*level.line = line
			}
		}
	}
}

func (b *builtinLibrary) describesHost(raw *RawData) bool {
	if !x86.Supported {
		return false
	}
	return [4]uint32(b.query(0, 0)) == raw.BasicCPUID[0] &&
		b.query(1, 0)[EAX] == raw.BasicCPUID[1][EAX]
}

func kilobytes(size int) int32 {
	if size < 0 {
		return -1
	}
	return int32(size / 1024)
}

// measureClock prefers the frequency klauspost/cpuid derives from CPUID and
// falls back to the operating system's report.
func measureClock() int32 {
	if hz := cpuid.CPU.Hz; hz > 0 {
		return int32(hz / 1_000_000)
	}
	infos, err := cpu.Info()
	if err == nil && len(infos) > 0 && infos[0].Mhz > 0 {
		return int32(infos[0].Mhz)
	}
	return ClockUnknown
}
