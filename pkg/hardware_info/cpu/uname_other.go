//go:build !linux

package cpu

import "runtime"

// machine falls back to the Go architecture name, which DebianArchitecture
// passes through unchanged.
func machine() (string, error) {
	return runtime.GOARCH, nil
}
