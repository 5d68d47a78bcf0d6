package cpuid

import (
	"bytes"
	"fmt"
	"strconv"
	"unicode/utf8"
)

// undetermined is libcpuid's sentinel for values it could not detect.
const undetermined = -1

// cString returns the text in a fixed-capacity char array: everything up to
// the first NUL, or the whole array when it has none.
func cString(field string, b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return mustText(field, b)
}

// mustText panics on invalid UTF-8. Text from libcpuid is ASCII; anything else
// means the Go records do not match the library's ABI.
func mustText(field string, b []byte) string {
	if !utf8.Valid(b) {
		panic(fmt.Sprintf("cpuid: libcpuid returned invalid UTF-8 in %s: %q", field, b))
	}
	return string(b)
}

// Optional is a size or count that libcpuid may leave undetermined. Zero is a
// real value. Optional is held by value, so copies of a CpuInfo never share it.
type Optional struct {
	value int
	known bool
}

// Known returns a determined Optional.
func Known(v int) Optional {
	return Optional{value: v, known: true}
}

// Get returns the value and whether libcpuid determined it.
func (o Optional) Get() (int, bool) {
	return o.value, o.known
}

// Ptr returns a fresh pointer to the value, or nil when undetermined.
func (o Optional) Ptr() *int {
	if !o.known {
		return nil
	}
	v := o.value
	return &v
}

func (o Optional) String() string {
	if !o.known {
		return "unknown"
	}
	return strconv.Itoa(o.value)
}

// optional maps the undetermined sentinel to the zero Optional.
func optional(v int32) Optional {
	if v == undetermined {
		return Optional{}
	}
	return Known(int(v))
}
