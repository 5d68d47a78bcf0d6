package common

import (
	"bytes"
	"strings"
	"testing"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"maybe\nyes\n", true},
		{"", false},
		{"maybe", false},
	}
	for _, test := range tests {
		t.Run(strings.TrimSpace(test.input), func(t *testing.T) {
			var out bytes.Buffer
			if got := confirm(strings.NewReader(test.input), &out, "Overwrite?"); got != test.want {
				t.Fatalf("expected %v, got %v", test.want, got)
			}
			if !strings.HasPrefix(out.String(), "Overwrite? [y/n] ") {
				t.Fatalf("unexpected prompt %q", out.String())
			}
		})
	}
}

func TestPrintFormatted(t *testing.T) {
	value := map[string]int{"cores": 4}

	var out bytes.Buffer
	if err := PrintFormatted(&out, value, FormatJson); err != nil {
		t.Fatal(err)
	}
	if out.String() != "{\n  \"cores\": 4\n}\n" {
		t.Fatalf("unexpected json %q", out.String())
	}

	out.Reset()
	if err := PrintFormatted(&out, value, FormatYaml); err != nil {
		t.Fatal(err)
	}
	if out.String() != "cores: 4\n" {
		t.Fatalf("unexpected yaml %q", out.String())
	}

	if err := PrintFormatted(&out, value, FormatText); err == nil {
		t.Fatal("expected an error for text")
	}
}
