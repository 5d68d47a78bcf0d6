// Package libcpuid mirrors the binary contract of libcpuid 0.4.x: the
// cpu_raw_data_t and cpu_id_t records and the six entry points that fill them.
//
// The record types in this package are laid out field for field like their C
// counterparts, so a pointer to one of them can be handed straight to the
// native library. Nothing here interprets the data; see package cpuid for the
// safe API built on top.
package libcpuid

// Library is the set of native entry points. A zero status means success,
// anything else means failure, with the reason available from LastError.
//
// Implementations share one piece of process-wide state: the text returned by
// LastError is overwritten by every failing call, from any goroutine.
type Library interface {
	// Present reports whether the CPUID instruction exists (cpuid_present).
	Present() bool
	// Version returns the library's version string (cpuid_lib_version).
	Version() []byte
	// LastError returns the message of the most recent failure (cpuid_error).
	LastError() []byte
	// GetRawData fills raw from CPUID (cpuid_get_raw_data).
	GetRawData(raw *RawData) int32
	// Identify decodes raw into data (cpu_identify).
	Identify(raw *RawData, data *IDRecord) int32
	// Clock returns the clock frequency in MHz or -1 (cpu_clock).
	Clock() int32
}

// ErrorCode mirrors cpu_error_t.
type ErrorCode int32

const (
	ErrOK         ErrorCode = 0
	ErrNoCPUID    ErrorCode = -1
	ErrNoRDTSC    ErrorCode = -2
	ErrNoMem      ErrorCode = -3
	ErrOpen       ErrorCode = -4
	ErrBadFmt     ErrorCode = -5
	ErrNotImp     ErrorCode = -6
	ErrCPUUnknown ErrorCode = -7
)

var errorMessages = map[ErrorCode]string{
	ErrOK:         "No error",
	ErrNoCPUID:    "CPUID instruction is not supported",
	ErrNoRDTSC:    "RDTSC instruction is not supported",
	ErrNoMem:      "Memory allocation failed",
	ErrOpen:       "File open operation failed",
	ErrBadFmt:     "Bad file format",
	ErrNotImp:     "Not implemented",
	ErrCPUUnknown: "Unsupported processor",
}

// Message returns libcpuid's text for the code.
func (code ErrorCode) Message() string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "Unknown error"
}

// ClockUnknown is returned by Clock when no frequency could be determined.
const ClockUnknown int32 = -1
