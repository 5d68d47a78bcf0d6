//go:build cgo && libcpuid

package libcpuid

/*
#cgo pkg-config: libcpuid
#include <stddef.h>
#include <string.h>
#include <libcpuid.h>

static size_t id_offset_vendor(void)   { return offsetof(struct cpu_id_t, vendor); }
static size_t id_offset_flags(void)    { return offsetof(struct cpu_id_t, flags); }
static size_t id_offset_family(void)   { return offsetof(struct cpu_id_t, family); }
static size_t id_offset_codename(void) { return offsetof(struct cpu_id_t, cpu_codename); }
static size_t id_offset_sgx(void)      { return offsetof(struct cpu_id_t, sgx); }
static size_t sgx_offset_attributes(void) { return offsetof(struct cpu_sgx_t, secs_attributes); }
*/
import "C"

import (
	"fmt"
	"unsafe"
)

type nativeLibrary struct{}

var native = &nativeLibrary{}

// Native returns the system libcpuid, linked through cgo.
func Native() Library {
	return native
}

// The Go records are handed to C by pointer, so any disagreement with the
// header this package was compiled against is fatal.
func init() {
	var rec IDRecord
	checks := []struct {
		what   string
		goSize uintptr
		cSize  uintptr
	}{
		{"sizeof(cpu_raw_data_t)", unsafe.Sizeof(RawData{}), uintptr(C.sizeof_struct_cpu_raw_data_t)},
		{"sizeof(cpu_id_t)", unsafe.Sizeof(rec), uintptr(C.sizeof_struct_cpu_id_t)},
		{"sizeof(cpu_sgx_t)", unsafe.Sizeof(rec.SGX), uintptr(C.sizeof_struct_cpu_sgx_t)},
		{"offsetof(cpu_id_t, vendor)", unsafe.Offsetof(rec.Vendor), uintptr(C.id_offset_vendor())},
		{"offsetof(cpu_id_t, flags)", unsafe.Offsetof(rec.Flags), uintptr(C.id_offset_flags())},
		{"offsetof(cpu_id_t, family)", unsafe.Offsetof(rec.Family), uintptr(C.id_offset_family())},
		{"offsetof(cpu_id_t, cpu_codename)", unsafe.Offsetof(rec.CPUCodename), uintptr(C.id_offset_codename())},
		{"offsetof(cpu_id_t, sgx)", unsafe.Offsetof(rec.SGX), uintptr(C.id_offset_sgx())},
		{"offsetof(cpu_sgx_t, secs_attributes)", unsafe.Offsetof(rec.SGX.SecsAttributes), uintptr(C.sgx_offset_attributes())},
	}
	for _, check := range checks {
		if check.goSize != check.cSize {
			panic(fmt.Sprintf("libcpuid: %s is %d in libcpuid.h but %d in Go", check.what, check.cSize, check.goSize))
		}
	}
	if C.NUM_CPU_FEATURES != NumFeatures {
		panic(fmt.Sprintf("libcpuid: header declares %d features, expected %d", C.NUM_CPU_FEATURES, NumFeatures))
	}
}

func (*nativeLibrary) Present() bool {
	return C.cpuid_present() == 1
}

func (*nativeLibrary) Version() []byte {
	return goBytes(C.cpuid_lib_version())
}

func (*nativeLibrary) LastError() []byte {
	return goBytes(C.cpuid_error())
}

func (*nativeLibrary) GetRawData(raw *RawData) int32 {
	return int32(C.cpuid_get_raw_data((*C.struct_cpu_raw_data_t)(unsafe.Pointer(raw))))
}

func (*nativeLibrary) Identify(raw *RawData, data *IDRecord) int32 {
	return int32(C.cpu_identify(
		(*C.struct_cpu_raw_data_t)(unsafe.Pointer(raw)),
		(*C.struct_cpu_id_t)(unsafe.Pointer(data)),
	))
}

func (*nativeLibrary) Clock() int32 {
	return int32(C.cpu_clock())
}

// goBytes copies a NUL terminated C string owned by libcpuid.
func goBytes(s *C.char) []byte {
	if s == nil {
		return nil
	}
	return C.GoBytes(unsafe.Pointer(s), C.int(C.strlen(s)))
}
