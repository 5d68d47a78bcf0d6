package common

import (
	"fmt"

	"github.com/canonical/go-snapctl/env"
	"github.com/jpnorenam/cpuid-snap/pkg/libcpuid"
)

// SuggestNativeLibrary is shown when a value is missing because the builtin
// library is in use.
func SuggestNativeLibrary(version string) string {
	if version != libcpuid.BuiltinVersion {
		return ""
	}
	return "Build with \"-tags libcpuid\" against the system libcpuid for codenames and cache associativity."
}

func SuggestSnapConfig(key string) string {
	instanceName := env.SnapInstanceName()
	if instanceName == "" { // not a snap
		return fmt.Sprintf("Outside a snap, set %q in a file and pass it with --config.", key)
	}

	return fmt.Sprintf("Run \"sudo %s set %s=<value>\" to change it.", instanceName, key)
}
