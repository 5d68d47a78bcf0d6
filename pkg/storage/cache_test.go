package storage

import (
	"os"
	"testing"

	"github.com/jpnorenam/cpuid-snap/pkg/cpuid"
	"github.com/jpnorenam/cpuid-snap/pkg/libcpuid"
)

// countingLibrary identifies a fixed processor and counts acquisitions.
type countingLibrary struct {
	rawCalls int
	clock    int32
}

func (l *countingLibrary) Present() bool { return true }
func (l *countingLibrary) Version() []byte { return []byte("0.4.1") }
func (l *countingLibrary) LastError() []byte { return nil }
func (l *countingLibrary) Clock() int32 { return l.clock }

func (l *countingLibrary) GetRawData(raw *libcpuid.RawData) int32 {
	l.rawCalls++
	return 0
}

func (l *countingLibrary) Identify(raw *libcpuid.RawData, data *libcpuid.IDRecord) int32 {
	copy(data.VendorStr[:], "GenuineIntel")
	data.NumCores = 4
	return 0
}

func TestCacheMachineInfo(t *testing.T) {
	lib := &countingLibrary{clock: 2400}
	c := &cache{
		detector:            cpuid.New(lib),
		machineInfoTempFile: t.TempDir() + "/machine-info.json",
	}

	first, err := c.GetMachineInfo(false)
	if err != nil {
		t.Fatal(err)
	}
	if first.Cpus[0].ManufacturerId != "GenuineIntel" || first.ClockMhz != nil {
		t.Fatalf("unexpected machine info %+v", first)
	}
	if _, err := os.Stat(c.machineInfoTempFile); err != nil {
		t.Fatalf("machine info was not cached: %v", err)
	}

	t.Run("hit", func(t *testing.T) {
		second, err := c.GetMachineInfo(false)
		if err != nil {
			t.Fatal(err)
		}
		if lib.rawCalls != 1 {
			t.Fatalf("expected one detection, got %d", lib.rawCalls)
		}
		if *second.Cpus[0].Topology.Cores != 4 {
			t.Fatalf("unexpected cached topology %+v", second.Cpus[0].Topology)
		}
	})

	t.Run("clock refresh", func(t *testing.T) {
		withClock, err := c.GetMachineInfo(true)
		if err != nil {
			t.Fatal(err)
		}
		if withClock.ClockMhz == nil || *withClock.ClockMhz != 2400 {
			t.Fatalf("expected a 2400 MHz clock, got %v", withClock.ClockMhz)
		}
		if lib.rawCalls != 2 {
			t.Fatalf("expected a second detection, got %d", lib.rawCalls)
		}
	})

	t.Run("corrupt", func(t *testing.T) {
		if err := os.WriteFile(c.machineInfoTempFile, []byte("{"), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := c.GetMachineInfo(false); err != nil {
			t.Fatal(err)
		}
		if lib.rawCalls != 3 {
			t.Fatalf("expected detection after a corrupt cache, got %d", lib.rawCalls)
		}
	})

	t.Run("clear", func(t *testing.T) {
		if err := c.Clear(); err != nil {
			t.Fatal(err)
		}
		if _, err := os.Stat(c.machineInfoTempFile); !os.IsNotExist(err) {
			t.Fatal("cache file should be removed")
		}
		if err := c.Clear(); err != nil {
			t.Fatalf("clearing twice should succeed: %v", err)
		}
	})
}

func TestCacheFileIncludesLibraryVersion(t *testing.T) {
	builtin := machineInfoFile("/tmp", "local", libcpuid.BuiltinVersion)
	native := machineInfoFile("/tmp", "local", "0.4.1")
	if builtin == native {
		t.Fatalf("backends share the cache file %s", builtin)
	}
	if again := machineInfoFile("/tmp", "local", "0.4.1"); again != native {
		t.Fatalf("cache file is not stable: %s != %s", again, native)
	}
	if other := machineInfoFile("/tmp", "42", "0.4.1"); other == native {
		t.Fatalf("revisions share the cache file %s", other)
	}

	t.Setenv("SNAP_REVISION", "7")
	c := NewCache(cpuid.New(&countingLibrary{})).(*cache)
	if want := machineInfoFile(os.TempDir(), "7", "0.4.1"); c.machineInfoTempFile != want {
		t.Fatalf("expected cache file %s, got %s", want, c.machineInfoTempFile)
	}
}

func TestMockCache(t *testing.T) {
	lib := &countingLibrary{clock: -1}
	c := NewMockCache(cpuid.New(lib))

	for i := 0; i < 3; i++ {
		if _, err := c.GetMachineInfo(false); err != nil {
			t.Fatal(err)
		}
	}
	if lib.rawCalls != 1 {
		t.Fatalf("expected one detection, got %d", lib.rawCalls)
	}
}
