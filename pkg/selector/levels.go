package selector

import (
	"github.com/jpnorenam/cpuid-snap/pkg/constants"
	"github.com/jpnorenam/cpuid-snap/pkg/selector/cpu"
)

var (
	levelV1Flags = []string{"cmov", "cx8", "fpu", "fxsr", "mmx", "syscall", "sse", "sse2"}
	levelV2Flags = append(levelV1Flags[:len(levelV1Flags):len(levelV1Flags)],
		"cx16", "lahf_lm", "popcnt", "pni", "sse4_1", "sse4_2", "ssse3")
	levelV3Flags = append(levelV2Flags[:len(levelV2Flags):len(levelV2Flags)],
		"avx", "avx2", "bmi1", "bmi2", "f16c", "fma3", "abm", "movbe", "osxsave")
	levelV4Flags = append(levelV3Flags[:len(levelV3Flags):len(levelV3Flags)],
		"avx512f", "avx512bw", "avx512cd", "avx512dq", "avx512vl")
)

// MicroarchitectureLevels returns the x86-64 psABI levels as profiles. Each
// level includes the flags of the previous one, so the compatible level with
// the highest score is the one the machine supports.
func MicroarchitectureLevels() []Profile {
	amd64 := constants.Amd64
	level := func(name, description string, flags []string) Profile {
		return Profile{
			Name:        name,
			Description: description,
			Cpu: cpu.Requirements{
				Architecture: &amd64,
				Flags:        flags,
			},
		}
	}
	return []Profile{
		level("x86-64", "Baseline AMD64", levelV1Flags),
		level("x86-64-v2", "SSE4.2 and POPCNT", levelV2Flags),
		level("x86-64-v3", "AVX2, BMI and FMA", levelV3Flags),
		level("x86-64-v4", "AVX-512", levelV4Flags),
	}
}
