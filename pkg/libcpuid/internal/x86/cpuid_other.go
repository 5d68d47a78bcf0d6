//go:build !amd64 && !386

package x86

const Supported = false

func cpuid(leaf, subleaf uint32) (eax, ebx, ecx, edx uint32) {
	return 0, 0, 0, 0
}
