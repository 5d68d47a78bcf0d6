// Package cpuid identifies the running processor through libcpuid.
//
// Identification is a two step protocol: libcpuid first fills a raw buffer
// with CPUID leaves, then decodes that buffer into an identification record.
// Detector runs both steps and converts the record into a CpuInfo that owns
// all of its data:
//
//	info, err := cpuid.Identify()
//	if err != nil {
//		log.Fatalf("cpuid error: %v", err)
//	}
//	fmt.Println(info.Vendor, info.Codename)
//	fmt.Println("AES:", info.HasFeature(cpuid.AES))
//
// libcpuid keeps one last-error string for the whole process. Every Detector
// over the same library shares one lock, held across each native call and the
// error read that follows it, so a failing Identify always reports its own
// error.
package cpuid

import (
	"sync"

	"github.com/jpnorenam/cpuid-snap/pkg/libcpuid"
)

// Detector serialises access to one libcpuid implementation.
type Detector struct {
	mu  *sync.Mutex
	lib libcpuid.Library
}

var (
	locksMu sync.Mutex
	locks   = map[libcpuid.Library]*sync.Mutex{}
)

// lockFor returns the lock shared by all Detectors over lib. lib must be
// comparable; the libcpuid backends are pointers.
func lockFor(lib libcpuid.Library) *sync.Mutex {
	locksMu.Lock()
	defer locksMu.Unlock()

	mu, ok := locks[lib]
	if !ok {
		mu = new(sync.Mutex)
		locks[lib] = mu
	}
	return mu
}

// New returns a Detector over lib. Detectors over the same library share
// one lock.
func New(lib libcpuid.Library) *Detector {
	return &Detector{mu: lockFor(lib), lib: lib}
}

var defaultDetector = New(libcpuid.Default())

// Default returns the Detector used by the package-level functions.
func Default() *Detector {
	return defaultDetector
}

// IsPresent reports whether the CPUID instruction is available.
func (d *Detector) IsPresent() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lib.Present()
}

// Version returns the libcpuid version string.
func (d *Detector) Version() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return mustText("version", d.lib.Version())
}

// LastError returns libcpuid's last error message. It is only meaningful
// right after a failed call on the same library.
func (d *Detector) LastError() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return mustText("error", d.lib.LastError())
}

// Identify detects the processor. Failures carry libcpuid's message for the
// failing step and are never retried: they reflect the hardware or the
// process's privileges, not a transient condition.
func (d *Detector) Identify() (CpuInfo, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	var raw libcpuid.RawData
	if status := d.lib.GetRawData(&raw); status != 0 {
		return CpuInfo{}, d.failure(StageRawData, status)
	}
	return d.identify(&raw)
}

// RawData runs only the acquisition step, for saving with SaveRaw.
func (d *Detector) RawData() (*libcpuid.RawData, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	raw := new(libcpuid.RawData)
	if status := d.lib.GetRawData(raw); status != 0 {
		return nil, d.failure(StageRawData, status)
	}
	return raw, nil
}

// IdentifyRaw decodes a buffer obtained earlier, possibly on another machine.
// raw is copied and left untouched.
func (d *Detector) IdentifyRaw(raw *libcpuid.RawData) (CpuInfo, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	scratch := *raw
	return d.identify(&scratch)
}

// identify must be called with d.mu held.
func (d *Detector) identify(raw *libcpuid.RawData) (CpuInfo, error) {
	var data libcpuid.IDRecord
	if status := d.lib.Identify(raw, &data); status != 0 {
		return CpuInfo{}, d.failure(StageIdentify, status)
	}
	return newCpuInfo(&data), nil
}

// failure must be called with d.mu held, directly after the failing call.
func (d *Detector) failure(stage Stage, status int32) *Error {
	return &Error{
		Stage:   stage,
		Code:    libcpuid.ErrorCode(status),
		Message: mustText("error", d.lib.LastError()),
	}
}

// ClockFrequency returns the clock speed in MHz. ok is false when libcpuid
// could not determine it.
func (d *Detector) ClockFrequency() (mhz int, ok bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	clock := d.lib.Clock()
	if clock == libcpuid.ClockUnknown {
		return 0, false
	}
	return int(clock), true
}

// IsPresent reports whether the CPUID instruction is available.
func IsPresent() bool {
	return defaultDetector.IsPresent()
}

// Version returns the libcpuid version string.
func Version() string {
	return defaultDetector.Version()
}

// LastError returns libcpuid's last error message.
func LastError() string {
	return defaultDetector.LastError()
}

// Identify detects the processor using the default library.
func Identify() (CpuInfo, error) {
	return defaultDetector.Identify()
}

// ClockFrequency returns the clock speed in MHz using the default library.
func ClockFrequency() (int, bool) {
	return defaultDetector.ClockFrequency()
}
