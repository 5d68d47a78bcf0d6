package selector

import (
	"os"
	"strings"
	"testing"

	"github.com/jpnorenam/cpuid-snap/pkg/hardware_info"
	"github.com/jpnorenam/cpuid-snap/pkg/types"
)

type machineTopProfile struct {
	machine    string
	topProfile string
}

var topLevelSets = []machineTopProfile{
	{
		// Comet Lake has AVX2 but no AVX-512
		machine:    "xps13-7390",
		topProfile: "x86-64-v3",
	},
	{
		machine:    "ryzen-5-5600x",
		topProfile: "x86-64-v3",
	},
}

func TestTopLevel(t *testing.T) {
	for _, test := range topLevelSets {
		t.Run(test.machine, func(t *testing.T) {
			hwInfo, err := hardware_info.GetFromRawData(t, test.machine, "../../test_data")
			if err != nil {
				t.Fatal(err)
			}

			scoredProfiles, err := ScoreProfiles(hwInfo, MicroarchitectureLevels())
			if err != nil {
				t.Fatal(err)
			}

			topProfile, err := TopProfile(scoredProfiles)
			if err != nil {
				t.Fatal(err)
			}
			if topProfile.Name != test.topProfile {
				t.Fatalf("top profile should be %s, but got %s", test.topProfile, topProfile.Name)
			}

			for _, scored := range scoredProfiles {
				if scored.Name == "x86-64-v4" && scored.Compatible {
					t.Fatal("x86-64-v4 should not be compatible")
				}
			}
		})
	}
}

func TestNoCompatibleProfile(t *testing.T) {
	hwInfo := &types.HwInfo{Cpus: []types.CpuInfo{{Architecture: "arm64"}}}

	scoredProfiles, err := ScoreProfiles(hwInfo, MicroarchitectureLevels())
	if err != nil {
		t.Fatal(err)
	}
	_, err = TopProfile(scoredProfiles)
	if err != ErrorNoCompatibleProfile {
		t.Fatalf("expected %v, got %v", ErrorNoCompatibleProfile, err)
	}
}

func TestProfileMemory(t *testing.T) {
	memory := "8G"
	profile := Profile{Name: "big", Memory: &memory}

	hwInfo := &types.HwInfo{
		Cpus:   []types.CpuInfo{{Architecture: "amd64"}},
		Memory: &types.MemoryInfo{TotalRam: 4 * 1024 * 1024 * 1024, TotalSwap: 2 * 1024 * 1024 * 1024},
	}
	scored, err := ScoreProfiles(hwInfo, []Profile{profile})
	if err != nil {
		t.Fatal(err)
	}
	if scored[0].Compatible {
		t.Fatal("6GiB of ram and swap should not satisfy 8G")
	}

	hwInfo.Memory.TotalSwap = 4 * 1024 * 1024 * 1024
	scored, err = ScoreProfiles(hwInfo, []Profile{profile})
	if err != nil {
		t.Fatal(err)
	}
	if !scored[0].Compatible {
		t.Fatalf("8GiB of ram and swap should satisfy 8G: %v", scored[0].CompatibilityIssues)
	}

	hwInfo.Memory = nil
	if _, err := ScoreProfiles(hwInfo, []Profile{profile}); err == nil {
		t.Fatal("expected an error without memory information")
	}
}

func TestLoadProfiles(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/profiles.yaml"
	data := `
- name: avx2-intel
  description: Intel with AVX2
  memory: 1G
  cpu:
    architecture: amd64
    manufacturer-id: GenuineIntel
    flags: [avx2, fma3]
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	profiles, err := LoadProfiles(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(profiles) != 1 || profiles[0].Name != "avx2-intel" {
		t.Fatalf("unexpected profiles %+v", profiles)
	}
	if strings.Join(profiles[0].Cpu.Flags, ",") != "avx2,fma3" || *profiles[0].Cpu.ManufacturerId != "GenuineIntel" {
		t.Fatalf("unexpected cpu requirements %+v", profiles[0].Cpu)
	}

	if err := os.WriteFile(path, []byte("- description: nameless\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadProfiles(path); err == nil {
		t.Fatal("expected an error for a profile without a name")
	}

	invalid := map[string]string{
		"unknown field": "- name: a\n  disk: 1G\n",
		"unknown flag":  "- name: a\n  cpu:\n    flags: [avx3]\n",
		"bad memory":    "- name: a\n  memory: lots\n",
		"bad arch":      "- name: a\n  cpu:\n    architecture: sparc\n",
		"empty":         "\n",
	}
	for name, data := range invalid {
		t.Run(name, func(t *testing.T) {
			if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadProfiles(path); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}
