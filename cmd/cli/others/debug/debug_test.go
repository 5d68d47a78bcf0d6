//go:build amd64

package debug

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrintLayout(t *testing.T) {
	var out bytes.Buffer
	printLayout(&out)

	for _, line := range []string{
		"cpu_raw_data_t: 1344 bytes",
		"cpu_id_t: 432 bytes",
		"cpu_sgx_t: 48 bytes",
		"  secs_attributes  32",
	} {
		if !strings.Contains(out.String(), line+"\n") {
			t.Errorf("missing line %q in:\n%s", line, out.String())
		}
	}
}
