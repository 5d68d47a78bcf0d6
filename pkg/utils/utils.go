package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// FmtPretty converts any value to indented JSON, for verbose logging. Errors are ignored.
func FmtPretty(v any) string {
	jsonData, _ := json.MarshalIndent(v, "", "  ")
	return string(jsonData)
}

var byteUnits = []string{"KiB", "MiB", "GiB", "TiB"}

// FmtBytes converts bytes to a printable string with a binary unit
func FmtBytes(bytes uint64) string {
	if bytes <= 1024 {
		return fmt.Sprintf("%d", bytes)
	}
	value := float64(bytes) / 1024
	unit := 0
	for value > 1024 && unit < len(byteUnits)-1 {
		value /= 1024
		unit++
	}
	return fmt.Sprintf("%.1f%s", value, byteUnits[unit])
}

var sizeSuffixes = map[byte]uint64{
	'K': 1 << 10,
	'M': 1 << 20,
	'G': 1 << 30,
	'T': 1 << 40,
}

// StringToBytes parses sizes such as "512", "64M" or "16G". Suffixes are
// binary multiples and may be lower case.
func StringToBytes(sizeString string) (uint64, error) {
	sizeString = strings.TrimSpace(sizeString)
	var scaling uint64 = 1

	if n := len(sizeString); n > 0 {
		if multiple, ok := sizeSuffixes[strings.ToUpper(sizeString[n-1:])[0]]; ok {
			scaling = multiple
			sizeString = sizeString[:n-1]
		}
	}

	sizeBytes, err := strconv.ParseUint(sizeString, 10, 64)
	if err != nil {
		return 0, err
	}

	return sizeBytes * scaling, nil
}

func SubDirectories(dirPath string) ([]string, error) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var directories []string
	for _, entry := range entries {
		if entry.IsDir() {
			directories = append(directories, entry.Name())
		}
	}
	return directories, nil
}

func IsRootUser() bool {
	return os.Geteuid() == 0
}

// IsTerminalOutput reports whether stdout is a terminal.
func IsTerminalOutput() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
