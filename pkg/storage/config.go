package storage

import (
	"errors"
	"fmt"
	"maps"
	"strings"
)

type Config interface {
	Set(key, value string, confType configType) error
	SetDocument(key string, value any, confType configType) error
	Get(key string) (map[string]any, error)
	GetAll() (map[string]any, error)
	Unset(key string, confType configType) error
}

type config struct {
	storage storage
}

func NewConfig() Config {
	return &config{
		storage: newSnapctlStorage(),
	}
}

// NewMemoryConfig returns a Config that lives only as long as the process.
// It is used when running outside a snap, where snapctl is not available.
func NewMemoryConfig() Config {
	return &config{
		storage: newMemoryStorage(),
	}
}

const configKeyPrefix = "config"

// Configuration keys
const (
	KeyFormat       = "format"
	KeyClockMeasure = "clock.measure"
	KeyCacheEnabled = "cache.enabled"
)

// Defaults apply below all other configuration types, so every known key has
// a value even before the package sets one.
var Defaults = map[string]any{
	KeyFormat:       "text",
	KeyClockMeasure: "true",
	KeyCacheEnabled: "true",
}

type configType string

// config precedence, from lowest to highest
var confPrecedence = []configType{
	PackageConfig, // values set by the package, overriding defaults
	UserConfig,    // values set by the user, overriding all others
}

// config types
const (
	PackageConfig configType = "package"
	UserConfig    configType = "user"
)

// Set sets a configuration value
func (c *config) Set(key, value string, confType configType) error {
	// User configs are overrides, reject unknown keys
	if confType == UserConfig {
		valMap, err := c.Get(key)
		if err != nil {
			return fmt.Errorf("error checking existing keys: %s", err)
		}
		if len(valMap) == 0 {
			return fmt.Errorf("unknown key")
		}
	}

	return c.storage.Set(c.nestKeys(confType, key), value)
}

// SetDocument sets a configuration value that is primitive or an object
func (c *config) SetDocument(key string, value any, confType configType) error {
	return c.storage.SetDocument(c.nestKeys(confType, key), value)
}

// Get returns one or more configuration fields in as a flat map, after applying precedence rules
// If the value is a single primitive value, the map will have one entry with the full key
func (c *config) Get(key string) (map[string]any, error) {
	configs, err := c.loadConfigs()
	if err != nil {
		return nil, err
	}

	// Filter to needed keys
	for k := range configs {
		// Only keep exact key matches for both primitives and objects
		// e.g. model and model.source
		if k != key && !strings.HasPrefix(k, key+".") {
			delete(configs, k)
		}
	}

	return configs, nil
}

// GetAll returns all configurations as a flattened map
func (c *config) GetAll() (map[string]any, error) {
	return c.loadConfigs()
}

func (c *config) Unset(key string, confType configType) error {
	return c.storage.Unset(c.nestKeys(confType, key))
}

// loadConfigs loads all configurations as a flattened map, after applying precedence rules
func (c *config) loadConfigs() (map[string]any, error) {
	values, err := c.storage.Get(configKeyPrefix)
	if errors.Is(err, ErrorNotFound) {
		values = map[string]any{}
	} else if err != nil {
		return nil, err
	}

	// Load configurations in the order of precedence
	var finalMap = maps.Clone(Defaults)
	for _, k := range confPrecedence {
		if v, found := values[string(k)].(map[string]any); found {
			maps.Copy(finalMap, flattenMap(v))
		}
	}

	return finalMap, nil
}

// flattenMap creates a single-level map with dot-separated keys
func flattenMap(input map[string]any) map[string]any {
	flatMap := make(map[string]any)

	var recurse func(map[string]any, string)
	recurse = func(m map[string]any, prefix string) {
		for k, v := range m {
			fullKey := k
			if prefix != "" {
				fullKey = prefix + "." + k
			}
			switch val := v.(type) {
			case map[string]any:
				recurse(val, fullKey)
			default:
				flatMap[fullKey] = val
			}
		}
	}
	recurse(input, "")

	return flatMap
}

// nestKeys creates a dot-separated key with the expected prefix
func (c *config) nestKeys(confType configType, key string) string {
	if key == "." { // special case, referencing the parent
		return strings.Join([]string{configKeyPrefix, string(confType)}, ".")
	} else {
		return strings.Join([]string{configKeyPrefix, string(confType), key}, ".")
	}
}
