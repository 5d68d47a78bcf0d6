package others

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jpnorenam/cpuid-snap/cmd/cli/common"
	"github.com/jpnorenam/cpuid-snap/pkg/cpuid"
	"github.com/jpnorenam/cpuid-snap/pkg/libcpuid"
	"github.com/jpnorenam/cpuid-snap/pkg/types"
)

// rawLibrary reports a fixed leaf 0 for every acquisition.
type rawLibrary struct{}

func (rawLibrary) Present() bool { return true }
func (rawLibrary) Version() []byte { return []byte("0.4.1") }
func (rawLibrary) LastError() []byte { return nil }
func (rawLibrary) Clock() int32 { return libcpuid.ClockUnknown }

func (rawLibrary) GetRawData(raw *libcpuid.RawData) int32 {
	raw.BasicCPUID[0] = [4]uint32{0xd, 0x756e6547, 0x6c65746e, 0x49656e69}
	return 0
}

func (rawLibrary) Identify(*libcpuid.RawData, *libcpuid.IDRecord) int32 { return 0 }

func TestDumpRaw(t *testing.T) {
	output := filepath.Join(t.TempDir(), "cpuid-raw.txt")
	cmd := dumpRawCommand{
		Context: &common.Context{Detector: cpuid.New(rawLibrary{})},
		output:  output,
	}

	if err := cmd.run(nil, nil); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(output)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	raw, err := cpuid.LoadRaw(f)
	if err != nil {
		t.Fatal(err)
	}
	if raw.BasicCPUID[0][libcpuid.EBX] != 0x756e6547 {
		t.Fatalf("unexpected leaf 0 %x", raw.BasicCPUID[0])
	}
}

func TestPrintMachine(t *testing.T) {
	cores, size := 4, 48
	clock := 2600
	hwInfo := &types.HwInfo{
		Library: &types.LibraryInfo{Version: "0.4.1", CpuidPresent: true},
		Cpus: []types.CpuInfo{{
			Architecture:   "amd64",
			ManufacturerId: "GenuineIntel",
			Brand:          "Intel(R) Core(TM) i7-10510U CPU @ 1.80GHz",
			ExtFamily:      6,
			ExtModel:       0x8e,
			Stepping:       0xc,
			Flags:          []string{"fpu", "sse2"},
			Topology:       types.CpuTopology{Cores: &cores},
			Caches:         []types.CacheInfo{{Level: "l1d", Size: &size}},
		}},
		ClockMhz: &clock,
		Memory:   &types.MemoryInfo{TotalRam: 16 * 1024 * 1024 * 1024},
	}

	var out bytes.Buffer
	printMachine(&out, hwInfo)

	for _, line := range []string{
		"libcpuid 0.4.1, cpuid present: true",
		"cpu 0: Intel(R) Core(TM) i7-10510U CPU @ 1.80GHz (amd64)",
		"  family 0x6, model 0x8e, stepping 0xc",
		"  cores: 4, logical cpus: unknown",
		"  l1d cache: 48 KiB",
		"  flags: fpu sse2",
		"clock: 2600 MHz",
		"memory: 16.0GiB ram, 0 swap",
	} {
		if !strings.Contains(out.String(), line+"\n") {
			t.Errorf("missing line %q in:\n%s", line, out.String())
		}
	}
}
