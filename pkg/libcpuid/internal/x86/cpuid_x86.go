//go:build amd64 || 386

package x86

// Supported reports whether this build can execute CPUID.
const Supported = true

// cpuid is implemented in cpuid_$GOARCH.s.
func cpuid(leaf, subleaf uint32) (eax, ebx, ecx, edx uint32)
