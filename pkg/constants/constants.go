package constants

const (
	Amd64 = "amd64"
	Arm64 = "arm64"
	I386  = "386"

	SnapName = "cpuid"
)

// unameMachines maps `uname -m` values to Debian architecture names.
var unameMachines = map[string]string{
	"x86_64":  Amd64,
	"amd64":   Amd64,
	"aarch64": Arm64,
	"arm64":   Arm64,
	"i386":    I386,
	"i486":    I386,
	"i586":    I386,
	"i686":    I386,
}

// DebianArchitecture converts a `uname -m` machine name. Unknown names are
// returned unchanged.
func DebianArchitecture(unameMachine string) string {
	if arch, ok := unameMachines[unameMachine]; ok {
		return arch
	}
	return unameMachine
}
