package storage

import (
	"bufio"
	"fmt"
	"maps"
	"os"
	"strings"
)

// fileConfig implements Config over a flat file of key=value pairs, layered
// on top of Defaults. It is read-only; Set, SetDocument, and Unset return errors.
type fileConfig struct {
	path   string
	values map[string]any
}

// NewFileConfig reads the file at path. Each line is key=value or key="value";
// blank lines, comments starting with # and lines without = are skipped.
func NewFileConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening config file: %w", err)
	}
	defer f.Close()

	values := maps.Clone(Defaults)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, val, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		val = strings.Trim(strings.TrimSpace(val), "\"")
		values[key] = val
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	return &fileConfig{path: path, values: values}, nil
}

func (c *fileConfig) Get(key string) (map[string]any, error) {
	result := make(map[string]any)
	for k, v := range c.values {
		if k == key || strings.HasPrefix(k, key+".") {
			result[k] = v
		}
	}
	return result, nil
}

func (c *fileConfig) GetAll() (map[string]any, error) {
	return maps.Clone(c.values), nil
}

func (c *fileConfig) readOnly() error {
	return fmt.Errorf("config loaded from %s is read-only", c.path)
}

func (c *fileConfig) Set(key, value string, confType configType) error {
	return c.readOnly()
}

func (c *fileConfig) SetDocument(key string, value any, confType configType) error {
	return c.readOnly()
}

func (c *fileConfig) Unset(key string, confType configType) error {
	return c.readOnly()
}
