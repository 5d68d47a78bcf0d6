package cpuid

import (
	"sync"
	"time"

	"github.com/jpnorenam/cpuid-snap/pkg/libcpuid"
)

// fakeLibrary records calls and returns canned results. Like libcpuid it has
// a single last-error string that every failing call overwrites.
type fakeLibrary struct {
	mu      sync.Mutex
	lastErr []byte

	version  []byte
	present  bool
	clock    int32
	record   libcpuid.IDRecord
	rawErr   *cannedFailure
	identErr *cannedFailure

	// failWith, when set, produces the status and message of each
	// GetRawData call.
	failWith func(call int) (int32, string)
	// failDelay widens the window between setting and reading the error.
	failDelay time.Duration

	rawCalls      int
	identifyCalls int
	seenRaw       libcpuid.RawData
}

type cannedFailure struct {
	status  int32
	message string
}

func newFakeLibrary() *fakeLibrary {
	f := &fakeLibrary{
		present: true,
		version: []byte("0.4.1"),
		clock:   -1,
	}
	copy(f.record.VendorStr[:], "GenuineIntel")
	return f
}

func (f *fakeLibrary) Present() bool { return f.present }

func (f *fakeLibrary) Version() []byte { return f.version }

func (f *fakeLibrary) LastError() []byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]byte(nil), f.lastErr...)
}

func (f *fakeLibrary) setError(message string) {
	f.mu.Lock()
	f.lastErr = []byte(message)
	f.mu.Unlock()
}

func (f *fakeLibrary) GetRawData(raw *libcpuid.RawData) int32 {
	f.mu.Lock()
	f.rawCalls++
	call := f.rawCalls
	f.mu.Unlock()

	if f.failWith != nil {
		status, message := f.failWith(call)
		f.setError(message)
		time.Sleep(f.failDelay)
		return status
	}
	if f.rawErr != nil {
		f.setError(f.rawErr.message)
		return f.rawErr.status
	}
	raw.BasicCPUID[0] = [4]uint32{0xd, 0x756e6547, 0x6c65746e, 0x49656e69}
	return 0
}

func (f *fakeLibrary) Identify(raw *libcpuid.RawData, data *libcpuid.IDRecord) int32 {
	f.mu.Lock()
	f.identifyCalls++
	f.seenRaw = *raw
	f.mu.Unlock()

	if f.identErr != nil {
		f.setError(f.identErr.message)
		return f.identErr.status
	}
	*data = f.record
	return 0
}

func (f *fakeLibrary) Clock() int32 { return f.clock }
