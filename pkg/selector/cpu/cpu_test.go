package cpu

import (
	"strings"
	"testing"

	"github.com/jpnorenam/cpuid-snap/pkg/constants"
	"github.com/jpnorenam/cpuid-snap/pkg/types"
)

func TestCheckCpuVendor(t *testing.T) {
	manufacturerId := "GenuineIntel"
	architecture := constants.Amd64
	required := Requirements{
		Architecture:   &architecture,
		ManufacturerId: &manufacturerId,
	}

	hwInfoCpus := []types.CpuInfo{{
		Architecture:   constants.Amd64,
		ManufacturerId: manufacturerId,
	}}

	score, issues := Match(required, hwInfoCpus)
	if len(issues) != 0 {
		t.Fatalf("CPU vendor should match: %v", strings.Join(issues, ","))
	}

	manufacturerId = "AuthenticAMD"

	score, issues = Match(required, hwInfoCpus)
	if len(issues) == 0 || score > 0 {
		t.Fatal("CPU vendor should NOT match")
	}
}

func TestCheckCpuFlags(t *testing.T) {
	manufacturerId := "GenuineIntel"
	architecture := constants.Amd64
	required := Requirements{
		Architecture:   &architecture,
		ManufacturerId: &manufacturerId,
		Flags:          []string{"avx2"},
	}

	hwInfoCpus := []types.CpuInfo{{
		Architecture:   constants.Amd64,
		ManufacturerId: manufacturerId,
		Flags:          []string{"avx2"},
	}}

	score, issues := Match(required, hwInfoCpus)
	if len(issues) != 0 || score == 0 {
		t.Fatalf("CPU flags should match: %v", issues)
	}

	required.Flags = []string{"avx512f"}

	score, issues = Match(required, hwInfoCpus)
	if len(issues) == 0 || score > 0 {
		t.Fatal("CPU flags should NOT match")
	}
}

func TestCheckCpuFamily(t *testing.T) {
	family := 0x19
	required := Requirements{Family: &family}

	hostCpu := types.CpuInfo{Architecture: constants.Amd64, Family: 0xf, ExtFamily: 0x19}
	if score, issues := CheckCpu(required, hostCpu); len(issues) != 0 || score == 0 {
		t.Fatalf("CPU family should match: %v", issues)
	}

	hostCpu.ExtFamily = 0x17
	if _, issues := CheckCpu(required, hostCpu); len(issues) == 0 {
		t.Fatal("CPU family should NOT match")
	}
}

func TestCheckCpuSgx(t *testing.T) {
	required := Requirements{Sgx: true}

	hostCpu := types.CpuInfo{Architecture: constants.Amd64}
	if _, issues := CheckCpu(required, hostCpu); len(issues) == 0 {
		t.Fatal("SGX should be missing")
	}

	hostCpu.Sgx = &types.SgxInfo{Features: []string{"sgx1"}}
	if _, issues := CheckCpu(required, hostCpu); len(issues) != 0 {
		t.Fatalf("SGX should be present: %v", issues)
	}
}

func TestCheckCpuNotX86(t *testing.T) {
	required := Requirements{Flags: []string{"sse2"}}

	score, issues := CheckCpu(required, types.CpuInfo{Architecture: constants.Arm64})
	if len(issues) == 0 || score > 0 {
		t.Fatal("x86 flags should NOT match an arm64 cpu")
	}
}

func TestMatchNoCpus(t *testing.T) {
	score, issues := Match(Requirements{}, nil)
	if score != 0 || len(issues) != 1 {
		t.Fatalf("expected a single issue, got %v", issues)
	}
}
