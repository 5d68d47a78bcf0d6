package cpuid

import (
	"fmt"
	"strings"

	"github.com/jpnorenam/cpuid-snap/pkg/libcpuid"
)

// Feature identifies one CPU capability flag. Its value is the index of the
// flag in the identification record, pinned to libcpuid's cpu_feature_t.
type Feature int

const (
	FPU              Feature = libcpuid.FeatureFPU
	VME              Feature = libcpuid.FeatureVME
	DE               Feature = libcpuid.FeatureDE
	PSE              Feature = libcpuid.FeaturePSE
	TSC              Feature = libcpuid.FeatureTSC
	MSR              Feature = libcpuid.FeatureMSR
	PAE              Feature = libcpuid.FeaturePAE
	MCE              Feature = libcpuid.FeatureMCE
	CX8              Feature = libcpuid.FeatureCX8
	APIC             Feature = libcpuid.FeatureAPIC
	MTRR             Feature = libcpuid.FeatureMTRR
	SEP              Feature = libcpuid.FeatureSEP
	PGE              Feature = libcpuid.FeaturePGE
	MCA              Feature = libcpuid.FeatureMCA
	CMOV             Feature = libcpuid.FeatureCMOV
	PAT              Feature = libcpuid.FeaturePAT
	PSE36            Feature = libcpuid.FeaturePSE36
	PN               Feature = libcpuid.FeaturePN
	CLFLUSH          Feature = libcpuid.FeatureCLFLUSH
	DTS              Feature = libcpuid.FeatureDTS
	ACPI             Feature = libcpuid.FeatureACPI
	MMX              Feature = libcpuid.FeatureMMX
	FXSR             Feature = libcpuid.FeatureFXSR
	SSE              Feature = libcpuid.FeatureSSE
	SSE2             Feature = libcpuid.FeatureSSE2
	SS               Feature = libcpuid.FeatureSS
	HT               Feature = libcpuid.FeatureHT
	TM               Feature = libcpuid.FeatureTM
	IA64             Feature = libcpuid.FeatureIA64
	PBE              Feature = libcpuid.FeaturePBE
	PNI              Feature = libcpuid.FeaturePNI
	PCLMUL           Feature = libcpuid.FeaturePCLMUL
	DTS64            Feature = libcpuid.FeatureDTS64
	MONITOR          Feature = libcpuid.FeatureMONITOR
	DSCPL            Feature = libcpuid.FeatureDSCPL
	VMX              Feature = libcpuid.FeatureVMX
	SMX              Feature = libcpuid.FeatureSMX
	EST              Feature = libcpuid.FeatureEST
	TM2              Feature = libcpuid.FeatureTM2
	SSSE3            Feature = libcpuid.FeatureSSSE3
	CID              Feature = libcpuid.FeatureCID
	CX16             Feature = libcpuid.FeatureCX16
	XTPR             Feature = libcpuid.FeatureXTPR
	PDCM             Feature = libcpuid.FeaturePDCM
	DCA              Feature = libcpuid.FeatureDCA
	SSE41            Feature = libcpuid.FeatureSSE41
	SSE42            Feature = libcpuid.FeatureSSE42
	SYSCALL          Feature = libcpuid.FeatureSYSCALL
	XD               Feature = libcpuid.FeatureXD
	MOVBE            Feature = libcpuid.FeatureMOVBE
	POPCNT           Feature = libcpuid.FeaturePOPCNT
	AES              Feature = libcpuid.FeatureAES
	XSAVE            Feature = libcpuid.FeatureXSAVE
	OSXSAVE          Feature = libcpuid.FeatureOSXSAVE
	AVX              Feature = libcpuid.FeatureAVX
	MMXEXT           Feature = libcpuid.FeatureMMXEXT
	AMD3DNow         Feature = libcpuid.FeatureAMD3DNow
	AMD3DNowExt      Feature = libcpuid.FeatureAMD3DNowExt
	NX               Feature = libcpuid.FeatureNX
	FXSROpt          Feature = libcpuid.FeatureFXSROpt
	RDTSCP           Feature = libcpuid.FeatureRDTSCP
	LM               Feature = libcpuid.FeatureLM
	LAHFLM           Feature = libcpuid.FeatureLAHFLM
	CMPLegacy        Feature = libcpuid.FeatureCMPLegacy
	SVM              Feature = libcpuid.FeatureSVM
	ABM              Feature = libcpuid.FeatureABM
	SSE4A            Feature = libcpuid.FeatureSSE4A
	MisalignSSE      Feature = libcpuid.FeatureMisalignSSE
	AMD3DNowPrefetch Feature = libcpuid.FeatureAMD3DNowPrefetch
	OSVW             Feature = libcpuid.FeatureOSVW
	IBS              Feature = libcpuid.FeatureIBS
	SSE5             Feature = libcpuid.FeatureSSE5
	SKINIT           Feature = libcpuid.FeatureSKINIT
	WDT              Feature = libcpuid.FeatureWDT
	TS               Feature = libcpuid.FeatureTS
	FID              Feature = libcpuid.FeatureFID
	VID              Feature = libcpuid.FeatureVID
	TTP              Feature = libcpuid.FeatureTTP
	TMAMD            Feature = libcpuid.FeatureTMAMD
	STC              Feature = libcpuid.FeatureSTC
	Steps100MHz      Feature = libcpuid.FeatureSteps100MHz
	HWPState         Feature = libcpuid.FeatureHWPState
	ConstantTSC      Feature = libcpuid.FeatureConstantTSC
	XOP              Feature = libcpuid.FeatureXOP
	FMA3             Feature = libcpuid.FeatureFMA3
	FMA4             Feature = libcpuid.FeatureFMA4
	TBM              Feature = libcpuid.FeatureTBM
	F16C             Feature = libcpuid.FeatureF16C
	RDRAND           Feature = libcpuid.FeatureRDRAND
	X2APIC           Feature = libcpuid.FeatureX2APIC
	CPB              Feature = libcpuid.FeatureCPB
	APERFMPERF       Feature = libcpuid.FeatureAPERFMPERF
	PFI              Feature = libcpuid.FeaturePFI
	PA               Feature = libcpuid.FeaturePA
	AVX2             Feature = libcpuid.FeatureAVX2
	BMI1             Feature = libcpuid.FeatureBMI1
	BMI2             Feature = libcpuid.FeatureBMI2
	HLE              Feature = libcpuid.FeatureHLE
	RTM              Feature = libcpuid.FeatureRTM
	AVX512F          Feature = libcpuid.FeatureAVX512F
	AVX512DQ         Feature = libcpuid.FeatureAVX512DQ
	AVX512PF         Feature = libcpuid.FeatureAVX512PF
	AVX512ER         Feature = libcpuid.FeatureAVX512ER
	AVX512CD         Feature = libcpuid.FeatureAVX512CD
	SHANI            Feature = libcpuid.FeatureSHANI
	AVX512BW         Feature = libcpuid.FeatureAVX512BW
	AVX512VL         Feature = libcpuid.FeatureAVX512VL
	SGX              Feature = libcpuid.FeatureSGX
	RDSEED           Feature = libcpuid.FeatureRDSEED
	ADX              Feature = libcpuid.FeatureADX

	NumFeatures = libcpuid.NumFeatures
)

type featureInfo struct {
	name        string
	description string
}

var features = [NumFeatures]featureInfo{
	FPU:              {"fpu", "Floating point unit"},
	VME:              {"vme", "Virtual mode extension"},
	DE:               {"de", "Debugging extension"},
	PSE:              {"pse", "Page size extension"},
	TSC:              {"tsc", "Time-stamp counter"},
	MSR:              {"msr", "Model-specific registers, RDMSR/WRMSR supported"},
	PAE:              {"pae", "Physical address extension"},
	MCE:              {"mce", "Machine check exception"},
	CX8:              {"cx8", "CMPXCHG8B instruction supported"},
	APIC:             {"apic", "APIC support"},
	MTRR:             {"mtrr", "Memory type range registers"},
	SEP:              {"sep", "SYSENTER / SYSEXIT instructions supported"},
	PGE:              {"pge", "Page global enable"},
	MCA:              {"mca", "Machine check architecture"},
	CMOV:             {"cmov", "CMOVxx instructions supported"},
	PAT:              {"pat", "Page attribute table"},
	PSE36:            {"pse36", "36-bit page address extension"},
	PN:               {"pn", "Processor serial # implemented (Intel P3 only)"},
	CLFLUSH:          {"clflush", "CLFLUSH instruction supported"},
	DTS:              {"dts", "Debug store supported"},
	ACPI:             {"acpi", "ACPI support (power states)"},
	MMX:              {"mmx", "MMX instruction set supported"},
	FXSR:             {"fxsr", "FXSAVE / FXRSTOR supported"},
	SSE:              {"sse", "Streaming-SIMD Extensions (SSE) supported"},
	SSE2:             {"sse2", "SSE2 instructions supported"},
	SS:               {"ss", "Self-snoop"},
	HT:               {"ht", "Hyper-threading supported (but might be disabled)"},
	TM:               {"tm", "Thermal monitor"},
	IA64:             {"ia64", "IA64 supported (Itanium only)"},
	PBE:              {"pbe", "Pending-break enable"},
	PNI:              {"pni", "PNI (SSE3) instructions supported"},
	PCLMUL:           {"pclmul", "PCLMULQDQ instruction supported"},
	DTS64:            {"dts64", "64-bit Debug store supported"},
	MONITOR:          {"monitor", "MONITOR / MWAIT supported"},
	DSCPL:            {"ds_cpl", "CPL Qualified Debug Store"},
	VMX:              {"vmx", "Virtualization technology supported"},
	SMX:              {"smx", "Safer mode exceptions"},
	EST:              {"est", "Enhanced SpeedStep"},
	TM2:              {"tm2", "Thermal monitor 2"},
	SSSE3:            {"ssse3", "SSSE3 instructions supported (this is different from SSE3!)"},
	CID:              {"cid", "Context ID supported"},
	CX16:             {"cx16", "CMPXCHG16B instruction supported"},
	XTPR:             {"xtpr", "Send Task Priority Messages disable"},
	PDCM:             {"pdcm", "Performance capabilities MSR supported"},
	DCA:              {"dca", "Direct cache access supported"},
	SSE41:            {"sse4_1", "SSE 4.1 instructions supported"},
	SSE42:            {"sse4_2", "SSE 4.2 instructions supported"},
	SYSCALL:          {"syscall", "SYSCALL / SYSRET instructions supported"},
	XD:               {"xd", "Execute disable bit supported"},
	MOVBE:            {"movbe", "MOVBE instruction supported"},
	POPCNT:           {"popcnt", "POPCNT instruction supported"},
	AES:              {"aes", "AES* instructions supported"},
	XSAVE:            {"xsave", "XSAVE/XRSTOR/etc instructions supported"},
	OSXSAVE:          {"osxsave", "non-privileged copy of OSXSAVE supported"},
	AVX:              {"avx", "Advanced vector extensions supported"},
	MMXEXT:           {"mmxext", "AMD MMX-extended instructions supported"},
	AMD3DNow:         {"3dnow", "AMD 3DNow! instructions supported"},
	AMD3DNowExt:      {"3dnowext", "AMD 3DNow! extended instructions supported"},
	NX:               {"nx", "No-execute bit supported"},
	FXSROpt:          {"fxsr_opt", "FFXSR: FXSAVE and FXRSTOR optimizations"},
	RDTSCP:           {"rdtscp", "RDTSCP instruction supported (AMD-only)"},
	LM:               {"lm", "Long mode (x86_64/EM64T) supported"},
	LAHFLM:           {"lahf_lm", "LAHF/SAHF supported in 64-bit mode"},
	CMPLegacy:        {"cmp_legacy", "core multi-processing legacy mode"},
	SVM:              {"svm", "AMD Secure virtual machine"},
	ABM:              {"abm", "LZCNT instruction support"},
	SSE4A:            {"sse4a", "SSE 4a from AMD"},
	MisalignSSE:      {"misalignsse", "Misaligned SSE supported"},
	AMD3DNowPrefetch: {"3dnowprefetch", "PREFETCH/PREFETCHW support"},
	OSVW:             {"osvw", "OS Visible Workaround (AMD)"},
	IBS:              {"ibs", "Instruction-based sampling"},
	SSE5:             {"sse5", "SSE 5 instructions supported (deprecated, will never be 1)"},
	SKINIT:           {"skinit", "SKINIT / STGI supported"},
	WDT:              {"wdt", "Watchdog timer support"},
	TS:               {"ts", "Temperature sensor"},
	FID:              {"fid", "Frequency ID control"},
	VID:              {"vid", "Voltage ID control"},
	TTP:              {"ttp", "THERMTRIP"},
	TMAMD:            {"tm_amd", "AMD-specified hardware thermal control"},
	STC:              {"stc", "Software thermal control"},
	Steps100MHz:      {"100mhzsteps", "100 MHz multiplier control"},
	HWPState:         {"hwpstate", "Hardware P-state control"},
	ConstantTSC:      {"constant_tsc", "TSC ticks at constant rate"},
	XOP:              {"xop", "The XOP instruction set (same as the old CPU_FEATURE_SSE5)"},
	FMA3:             {"fma3", "The FMA3 instruction set"},
	FMA4:             {"fma4", "The FMA4 instruction set"},
	TBM:              {"tbm", "Trailing bit manipulation instruction support"},
	F16C:             {"f16c", "16-bit FP convert instruction support"},
	RDRAND:           {"rdrand", "RdRand instruction"},
	X2APIC:           {"x2apic", "x2APIC, APIC_BASE.EXTD, MSRs 0000_0800h...0000_0BFFh 64-bit ICR (+030h but not +031h), no DFR (+00Eh), SELF_IPI (+040h) also see standard level 0000_000Bh"},
	CPB:              {"cpb", "Core performance boost"},
	APERFMPERF:       {"aperfmperf", "MPERF/APERF MSRs support"},
	PFI:              {"pfi", "Processor Feedback Interface support"},
	PA:               {"pa", "Processor accumulator"},
	AVX2:             {"avx2", "AVX2 instructions"},
	BMI1:             {"bmi1", "BMI1 instructions"},
	BMI2:             {"bmi2", "BMI2 instructions"},
	HLE:              {"hle", "Hardware Lock Elision prefixes"},
	RTM:              {"rtm", "Restricted Transactional Memory instructions"},
	AVX512F:          {"avx512f", "AVX-512 Foundation"},
	AVX512DQ:         {"avx512dq", "AVX-512 Double/Quad granular insns"},
	AVX512PF:         {"avx512pf", "AVX-512 Prefetch"},
	AVX512ER:         {"avx512er", "AVX-512 Exponential/Reciprocal"},
	AVX512CD:         {"avx512cd", "AVX-512 Conflict detection"},
	SHANI:            {"sha_ni", "SHA-1/SHA-256 instructions"},
	AVX512BW:         {"avx512bw", "AVX-512 Byte/Word granular insns"},
	AVX512VL:         {"avx512vl", "AVX-512 128/256 vector length extensions"},
	SGX:              {"sgx", "SGX extensions. Non-authoritative, check cpu_id_t::sgx::present to verify presence"},
	RDSEED:           {"rdseed", "RDSEED instruction"},
	ADX:              {"adx", "ADX extensions (arbitrary precision)"},
}

// String returns libcpuid's short name for the feature, e.g. "sse4_2".
func (f Feature) String() string {
	if f < 0 || f >= NumFeatures {
		return fmt.Sprintf("Feature(%d)", int(f))
	}
	return features[f].name
}

// Description returns a human readable summary of the feature.
func (f Feature) Description() string {
	if f < 0 || f >= NumFeatures {
		return ""
	}
	return features[f].description
}

// ParseFeature looks up a feature by its short name. Matching ignores case.
func ParseFeature(name string) (Feature, error) {
	for i := range features {
		if strings.EqualFold(features[i].name, name) {
			return Feature(i), nil
		}
	}
	return 0, fmt.Errorf("unknown feature %q", name)
}

// AllFeatures returns every feature in index order.
func AllFeatures() []Feature {
	all := make([]Feature, NumFeatures)
	for i := range all {
		all[i] = Feature(i)
	}
	return all
}

// SGXFeature identifies an SGX sub-feature; it has its own index space.
type SGXFeature int

const (
	IntelSGX1 SGXFeature = libcpuid.SGXFeatureSGX1
	IntelSGX2 SGXFeature = libcpuid.SGXFeatureSGX2

	NumSGXFeatures = libcpuid.NumSGXFeatures
)

func (f SGXFeature) String() string {
	switch f {
	case IntelSGX1:
		return "sgx1"
	case IntelSGX2:
		return "sgx2"
	default:
		return fmt.Sprintf("SGXFeature(%d)", int(f))
	}
}
