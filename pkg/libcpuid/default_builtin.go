//go:build !(cgo && libcpuid)

package libcpuid

// Default returns the library used by package cpuid. Build with
// -tags libcpuid (and cgo enabled) to use the system libcpuid instead.
func Default() Library {
	return Builtin()
}
