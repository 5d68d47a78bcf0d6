//go:build amd64

package libcpuid

import (
	"testing"
	"unsafe"
)

func TestRecordLayout(t *testing.T) {
	var rec IDRecord
	tests := []struct {
		name string
		got  uintptr
		want uintptr
	}{
		{"sizeof(cpu_raw_data_t)", unsafe.Sizeof(RawData{}), RawDataSize},
		{"sizeof(cpu_id_t)", unsafe.Sizeof(rec), IDRecordSize},
		{"sizeof(cpu_sgx_t)", unsafe.Sizeof(rec.SGX), SGXRecordSize},
		{"offsetof(cpu_id_t, vendor)", unsafe.Offsetof(rec.Vendor), 80},
		{"offsetof(cpu_id_t, flags)", unsafe.Offsetof(rec.Flags), 84},
		{"offsetof(cpu_id_t, family)", unsafe.Offsetof(rec.Family), 212},
		{"offsetof(cpu_id_t, l1_data_cache)", unsafe.Offsetof(rec.L1DataCache), 244},
		{"offsetof(cpu_id_t, cpu_codename)", unsafe.Offsetof(rec.CPUCodename), 296},
		{"offsetof(cpu_id_t, sse_size)", unsafe.Offsetof(rec.SSESize), 360},
		{"offsetof(cpu_id_t, sgx)", unsafe.Offsetof(rec.SGX), 384},
		{"offsetof(cpu_sgx_t, num_epc_sections)", unsafe.Offsetof(rec.SGX.NumEPCSections), 20},
		{"offsetof(cpu_sgx_t, secs_attributes)", unsafe.Offsetof(rec.SGX.SecsAttributes), 32},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if test.got != test.want {
				t.Fatalf("expected %d, got %d", test.want, test.got)
			}
		})
	}
}
