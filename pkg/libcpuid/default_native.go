//go:build cgo && libcpuid

package libcpuid

// Default returns the system libcpuid.
func Default() Library {
	return Native()
}
