package cpuid

import "github.com/jpnorenam/cpuid-snap/pkg/libcpuid"

// Stage names the native call that failed.
type Stage string

const (
	StageRawData  Stage = "raw data"
	StageIdentify Stage = "identify"
)

// Error is a libcpuid failure. Its text is exactly libcpuid's message.
type Error struct {
	Stage   Stage
	Code    libcpuid.ErrorCode
	Message string
}

func (e *Error) Error() string {
	return e.Message
}
