package cpuid

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jpnorenam/cpuid-snap/pkg/libcpuid"
)

// Raw dumps use the text format of libcpuid's cpuid_serialize_raw_data, so
// files written by cpuid_tool --save can be loaded and vice versa:
//
//	version=0.4.1
//	basic_cpuid[0]=0000000d 756e6547 6c65746e 49656e69
//	ext_cpuid[0]=80000008 00000000 00000000 00000000

func rawTables(raw *libcpuid.RawData) []struct {
	name    string
	entries [][4]uint32
} {
	return []struct {
		name    string
		entries [][4]uint32
	}{
		{"basic_cpuid", raw.BasicCPUID[:]},
		{"ext_cpuid", raw.ExtCPUID[:]},
		{"intel_fn4", raw.IntelFn4[:]},
		{"intel_fn11", raw.IntelFn11[:]},
		{"intel_fn12h", raw.IntelFn12h[:]},
		{"intel_fn14h", raw.IntelFn14h[:]},
	}
}

// SaveRaw writes raw in libcpuid's dump format. version is recorded in the
// header line and is informational only.
func SaveRaw(w io.Writer, raw *libcpuid.RawData, version string) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "version=%s\n", version)
	for _, table := range rawTables(raw) {
		for i, e := range table.entries {
			fmt.Fprintf(bw, "%s[%d]=%08x %08x %08x %08x\n", table.name, i, e[0], e[1], e[2], e[3])
		}
	}
	return bw.Flush()
}

// LoadRaw parses a dump written by SaveRaw or by libcpuid. Entries missing
// from the dump stay zero; unknown keys are ignored.
func LoadRaw(r io.Reader) (*libcpuid.RawData, error) {
	raw := new(libcpuid.RawData)
	tables := make(map[string][][4]uint32)
	for _, table := range rawTables(raw) {
		tables[table.name] = table.entries
	}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("line %d: expected key=value, got %q", lineNo, line)
		}

		name, index, isEntry := parseEntryKey(key)
		if !isEntry {
			continue
		}
		entries, known := tables[name]
		if !known {
			continue
		}
		if index < 0 || index >= len(entries) {
			return nil, fmt.Errorf("line %d: index %d out of range for %s", lineNo, index, name)
		}

		words := strings.Fields(value)
		if len(words) != 4 {
			return nil, fmt.Errorf("line %d: expected 4 registers, got %d", lineNo, len(words))
		}
		for reg, word := range words {
			v, err := strconv.ParseUint(word, 16, 32)
			if err != nil {
				return nil, fmt.Errorf("line %d: register %d: %w", lineNo, reg, err)
			}
			entries[index][reg] = uint32(v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading raw dump: %w", err)
	}
	return raw, nil
}

// parseEntryKey splits "basic_cpuid[3]" into its table name and index.
func parseEntryKey(key string) (name string, index int, ok bool) {
	open := strings.IndexByte(key, '[')
	if open < 0 || !strings.HasSuffix(key, "]") {
		return "", 0, false
	}
	index, err := strconv.Atoi(key[open+1 : len(key)-1])
	if err != nil {
		return "", 0, false
	}
	return key[:open], index, true
}
