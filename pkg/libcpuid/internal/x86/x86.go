// Package x86 executes the CPUID instruction.
package x86

// Leaf holds EAX, EBX, ECX and EDX for one CPUID query.
type Leaf [4]uint32

// Query runs CPUID with the given leaf in EAX and sub-leaf in ECX. It returns
// a zero Leaf when Supported is false.
func Query(leaf, subleaf uint32) Leaf {
	if !Supported {
		return Leaf{}
	}
	eax, ebx, ecx, edx := cpuid(leaf, subleaf)
	return Leaf{eax, ebx, ecx, edx}
}
