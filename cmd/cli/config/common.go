package config

import (
	"fmt"
	"strconv"

	"github.com/jpnorenam/cpuid-snap/cmd/cli/common"
	"github.com/jpnorenam/cpuid-snap/pkg/storage"
	"github.com/spf13/cobra"
)

const groupID = "config"

func Group(title string) *cobra.Group {
	return &cobra.Group{
		ID:    groupID,
		Title: title,
	}
}

// GetValue retrieves a single config value by key.
func GetValue(cfg storage.Config, key string) (any, error) {
	configMap, err := cfg.Get(key)
	if err != nil {
		return nil, fmt.Errorf("error getting %q: %w", key, err)
	}
	return configMap[key], nil
}

// GetString retrieves a single config value as a string.
// Non-string values (e.g. booleans from snapctl) are formatted with %v.
func GetString(cfg storage.Config, key string) (string, error) {
	val, err := GetValue(cfg, key)
	if err != nil {
		return "", err
	}
	if val == nil {
		return "", nil
	}
	if s, ok := val.(string); ok {
		return s, nil
	}
	return fmt.Sprintf("%v", val), nil
}

// GetBool retrieves a single config value as a boolean.
func GetBool(cfg storage.Config, key string) (bool, error) {
	val, err := GetString(cfg, key)
	if err != nil {
		return false, err
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid value %q for %q: %v", val, key, err)
	}
	return b, nil
}

// OutputFormat returns the format given on the command line, or the
// configured default when the flag is empty.
func OutputFormat(cfg storage.Config, flagValue string) (string, error) {
	format := flagValue
	if format == "" {
		var err error
		format, err = GetString(cfg, storage.KeyFormat)
		if err != nil {
			return "", err
		}
	}
	if err := validateValue(storage.KeyFormat, format); err != nil {
		return "", err
	}
	return format, nil
}

// validateValue checks values of known keys. Other keys are accepted as is.
func validateValue(key, value string) error {
	switch key {
	case storage.KeyFormat:
		switch value {
		case common.FormatYaml, common.FormatJson, common.FormatText:
			return nil
		}
		return fmt.Errorf("unknown format %q, expected %s, %s or %s",
			value, common.FormatYaml, common.FormatJson, common.FormatText)
	case storage.KeyClockMeasure, storage.KeyCacheEnabled:
		if _, err := strconv.ParseBool(value); err != nil {
			return fmt.Errorf("%q expects true or false", key)
		}
	}
	return nil
}
