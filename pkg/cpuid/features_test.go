package cpuid

import (
	"testing"

	"github.com/go-test/deep"
	"github.com/jpnorenam/cpuid-snap/pkg/libcpuid"
)

func TestFeatureIndexes(t *testing.T) {
	tests := []struct {
		feature Feature
		index   int
		name    string
	}{
		{FPU, 0, "fpu"},
		{SSE42, 46, "sse4_2"},
		{AES, 51, "aes"},
		{AVX2, 94, "avx2"},
		{SGX, 107, "sgx"},
		{ADX, 109, "adx"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if int(test.feature) != test.index {
				t.Fatalf("expected index %d, got %d", test.index, int(test.feature))
			}
			if test.feature.String() != test.name {
				t.Fatalf("expected name %q, got %q", test.name, test.feature.String())
			}
		})
	}
	if NumFeatures != 110 {
		t.Fatalf("expected 110 features, got %d", NumFeatures)
	}
}

func TestFeatureNamesUnique(t *testing.T) {
	seen := map[string]Feature{}
	for _, f := range AllFeatures() {
		name := f.String()
		if name == "" {
			t.Fatalf("feature %d has no name", int(f))
		}
		if other, ok := seen[name]; ok {
			t.Fatalf("features %d and %d share the name %q", int(other), int(f), name)
		}
		seen[name] = f

		parsed, err := ParseFeature(name)
		if err != nil || parsed != f {
			t.Fatalf("ParseFeature(%q) = %v, %v", name, parsed, err)
		}
	}
}

func TestParseFeature(t *testing.T) {
	f, err := ParseFeature("AVX2")
	if err != nil || f != AVX2 {
		t.Fatalf("expected AVX2, got %v (%v)", f, err)
	}
	if _, err := ParseFeature("avx9000"); err == nil {
		t.Fatal("expected an error for an unknown feature")
	}
}

func TestHasFeature(t *testing.T) {
	lib := newFakeLibrary()
	lib.record.Flags[libcpuid.FeatureSSE2] = 1
	lib.record.Flags[libcpuid.FeatureAES] = 1
	lib.record.Flags[libcpuid.FeatureAVX2] = 1

	info, err := New(lib).Identify()
	if err != nil {
		t.Fatal(err)
	}

	t.Run("idempotent", func(t *testing.T) {
		for _, f := range AllFeatures() {
			first := info.HasFeature(f)
			if info.HasFeature(f) != first {
				t.Fatalf("HasFeature(%s) changed between calls", f)
			}
		}
	})

	t.Run("present", func(t *testing.T) {
		if diff := deep.Equal(info.Features(), []Feature{SSE2, AES, AVX2}); diff != nil {
			t.Error(diff)
		}
	})

	t.Run("out of range", func(t *testing.T) {
		if info.HasFeature(-1) || info.HasFeature(NumFeatures) {
			t.Fatal("out of range features must be absent")
		}
	})
}

func TestSGXFeatures(t *testing.T) {
	lib := newFakeLibrary()
	lib.record.SGX.Present = 1
	lib.record.SGX.Flags[libcpuid.SGXFeatureSGX1] = 1
	lib.record.SGX.MaxEnclave64Bit = 36

	info, err := New(lib).Identify()
	if err != nil {
		t.Fatal(err)
	}
	if !info.SGX.Present || info.SGX.MaxEnclave64Bit != 36 {
		t.Fatalf("unexpected SGX info %+v", info.SGX)
	}
	if !info.SGX.HasFeature(IntelSGX1) || info.SGX.HasFeature(IntelSGX2) {
		t.Fatal("expected SGX1 only")
	}
	if IntelSGX1.String() != "sgx1" {
		t.Fatalf("unexpected name %q", IntelSGX1.String())
	}
}
