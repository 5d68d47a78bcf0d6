package cpuid

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/go-test/deep"
	"github.com/jpnorenam/cpuid-snap/pkg/libcpuid"
)

func TestIdentifyVendorString(t *testing.T) {
	lib := newFakeLibrary()
	info, err := New(lib).Identify()
	if err != nil {
		t.Fatal(err)
	}
	if info.Vendor != "GenuineIntel" {
		t.Fatalf("expected vendor GenuineIntel, got %q", info.Vendor)
	}
	if lib.rawCalls != 1 || lib.identifyCalls != 1 {
		t.Fatalf("expected one call per step, got %d raw and %d identify", lib.rawCalls, lib.identifyCalls)
	}
	if lib.seenRaw.BasicCPUID[0][libcpuid.EAX] != 0xd {
		t.Fatal("identify did not receive the acquired raw data")
	}
}

func TestIdentifyUnterminatedStrings(t *testing.T) {
	lib := newFakeLibrary()
	for i := range lib.record.VendorStr {
		lib.record.VendorStr[i] = 'V'
	}
	for i := range lib.record.BrandStr {
		lib.record.BrandStr[i] = 'B'
	}

	info, err := New(lib).Identify()
	if err != nil {
		t.Fatal(err)
	}
	if len(info.Vendor) != libcpuid.VendorStrMax {
		t.Fatalf("expected %d byte vendor, got %q", libcpuid.VendorStrMax, info.Vendor)
	}
	if len(info.Brand) != libcpuid.BrandStrMax {
		t.Fatalf("expected %d byte brand, got %q", libcpuid.BrandStrMax, info.Brand)
	}
}

func TestIdentifyEmptyStrings(t *testing.T) {
	lib := newFakeLibrary()
	lib.record.VendorStr = [libcpuid.VendorStrMax]byte{}

	info, err := New(lib).Identify()
	if err != nil {
		t.Fatal(err)
	}
	if info.Vendor != "" || info.Codename != "" {
		t.Fatalf("expected empty strings, got vendor %q codename %q", info.Vendor, info.Codename)
	}
}

func TestIdentifyInvalidUTF8Panics(t *testing.T) {
	lib := newFakeLibrary()
	copy(lib.record.BrandStr[:], []byte{'C', 'P', 'U', 0xff, 0xfe})

	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic on invalid UTF-8")
		}
	}()
	New(lib).Identify()
}

func TestVersionInvalidUTF8Panics(t *testing.T) {
	lib := newFakeLibrary()
	lib.version = []byte{'0', '.', 0xff}

	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic on invalid UTF-8")
		}
	}()
	New(lib).Version()
}

func TestLastErrorInvalidUTF8Panics(t *testing.T) {
	lib := newFakeLibrary()
	lib.setError(string([]byte{'b', 'a', 'd', 0xff}))

	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic on invalid UTF-8")
		}
	}()
	New(lib).LastError()
}

func TestIdentifyCaches(t *testing.T) {
	lib := newFakeLibrary()
	lib.record.L1DataCache = -1
	lib.record.L1InstructionCache = 32
	lib.record.L2Cache = 0
	lib.record.L3Cache = 64
	lib.record.L4Cache = -1
	lib.record.L1Assoc = 8
	lib.record.L2Assoc = -1
	lib.record.L1Cacheline = 64

	info, err := New(lib).Identify()
	if err != nil {
		t.Fatal(err)
	}

	t.Run("undetermined", func(t *testing.T) {
		for _, o := range []Optional{info.L1DataCache, info.L4Cache, info.L2Assoc} {
			if _, ok := o.Get(); ok {
				t.Fatalf("expected -1 to be undetermined, got %v", o)
			}
			if o.Ptr() != nil {
				t.Fatal("undetermined values must have a nil pointer")
			}
		}
	})

	t.Run("zero", func(t *testing.T) {
		if v, ok := info.L2Cache.Get(); !ok || v != 0 {
			t.Fatalf("expected a present zero L2, got %v", info.L2Cache)
		}
	})

	t.Run("values", func(t *testing.T) {
		got := []int{*info.L1InstructionCache.Ptr(), *info.L3Cache.Ptr(), *info.L1Assoc.Ptr(), *info.L1Cacheline.Ptr()}
		want := []int{32, 64, 8, 64}
		if diff := deep.Equal(got, want); diff != nil {
			t.Error(diff)
		}
	})
}

func TestCpuInfoCopiesAreIndependent(t *testing.T) {
	lib := newFakeLibrary()
	lib.record.L2Cache = 256

	a, err := New(lib).Identify()
	if err != nil {
		t.Fatal(err)
	}
	b := a

	*a.L2Cache.Ptr() = 1
	a.L2Cache = Known(512)
	if v, ok := b.L2Cache.Get(); !ok || v != 256 {
		t.Fatalf("copy changed with the original: %v", b.L2Cache)
	}
}

func TestIdentifyNumbers(t *testing.T) {
	lib := newFakeLibrary()
	lib.record.Vendor = libcpuid.VendorIntel
	lib.record.Family = 6
	lib.record.Model = 10
	lib.record.Stepping = 7
	lib.record.ExtFamily = 6
	lib.record.ExtModel = 42
	lib.record.NumCores = 2
	lib.record.NumLogicalCPUs = 4
	lib.record.TotalLogicalCPUs = 4
	copy(lib.record.CPUCodename[:], "Sandy Bridge (Core i5)")

	info, err := New(lib).Identify()
	if err != nil {
		t.Fatal(err)
	}
	got := []int{info.Family, info.Model, info.Stepping, info.ExtFamily, info.ExtModel,
		info.NumCores, info.NumLogicalCpus, info.TotalLogicalCpus}
	if diff := deep.Equal(got, []int{6, 10, 7, 6, 42, 2, 4, 4}); diff != nil {
		t.Error(diff)
	}
	if info.VendorID != VendorIntel || info.VendorID.String() != "Intel" {
		t.Errorf("unexpected vendor id %v", info.VendorID)
	}
	if info.Codename != "Sandy Bridge (Core i5)" {
		t.Errorf("unexpected codename %q", info.Codename)
	}
}

func TestIdentifyRawDataFailure(t *testing.T) {
	lib := newFakeLibrary()
	lib.rawErr = &cannedFailure{status: -1, message: "CPUID instruction is not supported"}

	_, err := New(lib).Identify()
	if err == nil {
		t.Fatal("expected an error")
	}
	if err.Error() != "CPUID instruction is not supported" {
		t.Fatalf("unexpected error text %q", err.Error())
	}
	var cpuErr *Error
	if !errors.As(err, &cpuErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if cpuErr.Stage != StageRawData || cpuErr.Code != libcpuid.ErrNoCPUID {
		t.Fatalf("unexpected stage %q code %d", cpuErr.Stage, cpuErr.Code)
	}
	if lib.identifyCalls != 0 {
		t.Fatal("identify must not run after a failed acquisition")
	}
}

func TestIdentifyDecodeFailure(t *testing.T) {
	lib := newFakeLibrary()
	lib.identErr = &cannedFailure{status: -7, message: "Unsupported processor"}

	_, err := New(lib).Identify()
	var cpuErr *Error
	if !errors.As(err, &cpuErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if cpuErr.Stage != StageIdentify || cpuErr.Message != "Unsupported processor" {
		t.Fatalf("unexpected error %+v", cpuErr)
	}
	if lib.rawCalls != 1 {
		t.Fatalf("expected one acquisition, got %d", lib.rawCalls)
	}
}

func TestIdentifyRaw(t *testing.T) {
	lib := newFakeLibrary()
	var raw libcpuid.RawData
	raw.BasicCPUID[1][libcpuid.EAX] = 0x206a7

	if _, err := New(lib).IdentifyRaw(&raw); err != nil {
		t.Fatal(err)
	}
	if lib.rawCalls != 0 {
		t.Fatal("IdentifyRaw must not acquire data")
	}
	if lib.seenRaw != raw {
		t.Fatal("identify did not receive the given raw data")
	}
}

func TestConcurrentFailuresKeepTheirMessages(t *testing.T) {
	lib := newFakeLibrary()
	lib.failWith = func(call int) (int32, string) {
		return -1, fmt.Sprintf("failure %d", call)
	}
	detector := New(lib)

	const workers = 32
	messages := make(chan string, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := detector.Identify()
			if err != nil {
				messages <- err.Error()
			}
		}()
	}
	wg.Wait()
	close(messages)

	seen := map[string]bool{}
	for msg := range messages {
		if seen[msg] {
			t.Fatalf("message %q reported twice", msg)
		}
		seen[msg] = true
	}
	if len(seen) != workers {
		t.Fatalf("expected %d distinct failures, got %d", workers, len(seen))
	}
}

func TestDetectorsShareLibraryLock(t *testing.T) {
	lib := newFakeLibrary()
	lib.failWith = func(call int) (int32, string) {
		return -1, fmt.Sprintf("failure %d", call)
	}
	lib.failDelay = time.Millisecond
	detectors := []*Detector{New(lib), New(lib)}

	const workers = 32
	messages := make(chan string, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(d *Detector) {
			defer wg.Done()
			if _, err := d.Identify(); err != nil {
				messages <- err.Error()
			}
		}(detectors[i%len(detectors)])
	}
	wg.Wait()
	close(messages)

	seen := map[string]bool{}
	for msg := range messages {
		if seen[msg] {
			t.Fatalf("message %q reported twice", msg)
		}
		seen[msg] = true
	}
	if len(seen) != workers {
		t.Fatalf("expected %d distinct failures, got %d", workers, len(seen))
	}
}

func TestClockFrequency(t *testing.T) {
	lib := newFakeLibrary()
	detector := New(lib)

	if _, ok := detector.ClockFrequency(); ok {
		t.Fatal("expected no clock for -1")
	}

	lib.clock = 2400
	mhz, ok := detector.ClockFrequency()
	if !ok || mhz != 2400 {
		t.Fatalf("expected 2400 MHz, got %d (ok=%v)", mhz, ok)
	}
}

func TestPresentAndVersion(t *testing.T) {
	lib := newFakeLibrary()
	detector := New(lib)

	first := detector.IsPresent()
	for i := 0; i < 5; i++ {
		if detector.IsPresent() != first {
			t.Fatal("IsPresent must not change between calls")
		}
	}
	if detector.Version() != "0.4.1" {
		t.Fatalf("unexpected version %q", detector.Version())
	}

	lib.setError("Bad file format")
	if detector.LastError() != "Bad file format" {
		t.Fatalf("unexpected last error %q", detector.LastError())
	}
}
