package storage

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"log"
	"os"
	"path/filepath"

	"github.com/canonical/go-snapctl/env"
	"github.com/jpnorenam/cpuid-snap/pkg/cpuid"
	"github.com/jpnorenam/cpuid-snap/pkg/hardware_info"
	"github.com/jpnorenam/cpuid-snap/pkg/types"
)

type Cache interface {
	// GetMachineInfo returns the machine report, detecting it on a cache miss.
	// A cached report without a clock is refreshed when measureClock is set.
	GetMachineInfo(measureClock bool) (*types.HwInfo, error)
	Clear() error
}

type cache struct {
	detector            *cpuid.Detector
	machineInfoTempFile string
}

func NewCache(detector *cpuid.Detector) Cache {
	revision := env.SnapRevision()
	if revision == "" {
		revision = "local"
	}
	return &cache{
		detector:            detector,
		machineInfoTempFile: machineInfoFile(os.TempDir(), revision, detector.Version()),
	}
}

// machineInfoFile names the cache file after the snap revision and the
// libcpuid version, so reports from another backend are never served.
func machineInfoFile(dir, revision, libVersion string) string {
	h := fnv.New32a()
	h.Write([]byte(libVersion))
	return filepath.Join(dir, fmt.Sprintf("machine-info-%s-%08x.json", revision, h.Sum32()))
}

func (c *cache) setMachineInfo(machine types.HwInfo) error {
	b, err := json.Marshal(machine)
	if err != nil {
		return fmt.Errorf("error marshalling machine info to json: %v", err)
	}

	err = os.WriteFile(c.machineInfoTempFile, b, 0600)
	if err != nil {
		return fmt.Errorf("error writing machine info to temp file: %v", err)
	}

	return nil
}

func (c *cache) GetMachineInfo(measureClock bool) (*types.HwInfo, error) {
	b, err := os.ReadFile(c.machineInfoTempFile)
	if err != nil {
		if os.IsNotExist(err) { // cache miss
			return c.loadMachineInfo(measureClock)
		}

		return nil, fmt.Errorf("error reading machine info from temp file: %v", err)
	}

	var machine types.HwInfo
	err = json.Unmarshal(b, &machine)
	if err != nil {
		// Corrupt or from an older release, detect again
		log.Printf("Ignoring cached machine info: %v", err)
		return c.loadMachineInfo(measureClock)
	}

	if measureClock && machine.ClockMhz == nil {
		return c.loadMachineInfo(measureClock)
	}

	return &machine, nil
}

func (c *cache) Clear() error {
	err := os.Remove(c.machineInfoTempFile)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("error removing cached machine info: %v", err)
	}
	return nil
}

func (c *cache) loadMachineInfo(measureClock bool) (*types.HwInfo, error) {
	machine, err := hardware_info.Get(c.detector, measureClock)
	if err != nil {
		return nil, fmt.Errorf("error getting machine info: %w", err)
	}

	err = c.setMachineInfo(*machine)
	if err != nil {
		return nil, fmt.Errorf("error caching machine info: %v", err)
	}

	return machine, nil
}
