package common

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

const (
	FormatYaml = "yaml"
	FormatJson = "json"
	FormatText = "text"
)

// PrintFormatted writes v as YAML or JSON.
func PrintFormatted(w io.Writer, v any, format string) error {
	switch format {
	case FormatJson:
		jsonString, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal to JSON: %s", err)
		}
		fmt.Fprintf(w, "%s\n", jsonString)
	case FormatYaml:
		yamlString, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to marshal to YAML: %s", err)
		}
		fmt.Fprintf(w, "%s", yamlString)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	return nil
}
