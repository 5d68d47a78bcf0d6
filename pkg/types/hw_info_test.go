package types

import (
	"encoding/json"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/jpnorenam/cpuid-snap/pkg/utils"
	"gopkg.in/yaml.v3"
)

func TestParseHwInfo(t *testing.T) {
	machines, err := utils.SubDirectories("../../test_data/machines")
	if err != nil {
		t.Fatal(err)
	}

	for _, machine := range machines {
		hwInfoFile := "../../test_data/machines/" + machine + "/hardware-info.json"
		t.Run(machine, func(t *testing.T) {
			_, err := os.Stat(hwInfoFile)
			if err != nil {
				if os.IsNotExist(err) {
					// Device does not have hardware-info test data, skipping
					return
				} else {
					t.Fatal(err)
				}
			}

			file, err := os.Open(hwInfoFile)
			if err != nil {
				t.Fatal(err)
			}

			data, err := io.ReadAll(file)
			if err != nil {
				t.Fatal(err)
			}

			var hardwareInfo HwInfo
			err = json.Unmarshal(data, &hardwareInfo)
			if err != nil {
				t.Fatal(err)
			}
		})
	}
}

func TestHexInt(t *testing.T) {
	cpu := CpuInfo{Architecture: "amd64", Family: 0xf, ExtFamily: 0x19}

	data, err := json.Marshal(cpu)
	if err != nil {
		t.Fatal(err)
	}
	var decoded CpuInfo
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.ExtFamily != 0x19 || decoded.Family != 0xf {
		t.Fatalf("unexpected family %v/%v", decoded.Family, decoded.ExtFamily)
	}

	yamlData, err := yaml.Marshal(cpu)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(yamlData), "ext-family: \"0x19\"") && !strings.Contains(string(yamlData), "ext-family: 0x19") {
		t.Fatalf("unexpected yaml:\n%s", yamlData)
	}
	var fromYaml CpuInfo
	if err := yaml.Unmarshal(yamlData, &fromYaml); err != nil {
		t.Fatal(err)
	}
	if fromYaml.ExtFamily != 0x19 {
		t.Fatalf("unexpected family %v", fromYaml.ExtFamily)
	}

	var bad HexInt
	if err := json.Unmarshal([]byte(`"0xzz"`), &bad); err == nil {
		t.Fatal("expected an error for an invalid hex value")
	}
}
