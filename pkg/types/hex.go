package types

import (
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// HexInt is an integer that is written as a hex string, e.g. "0x19".
type HexInt int

func (h HexInt) String() string {
	return fmt.Sprintf("0x%x", int(h))
}

func parseHexInt(s string) (HexInt, error) {
	v, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid hex value %q: %v", s, err)
	}
	return HexInt(v), nil
}

func (h HexInt) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

func (h *HexInt) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := parseHexInt(s)
	if err != nil {
		return err
	}
	*h = v
	return nil
}

func (h HexInt) MarshalYAML() (interface{}, error) {
	return h.String(), nil
}

func (h *HexInt) UnmarshalYAML(value *yaml.Node) error {
	v, err := parseHexInt(value.Value)
	if err != nil {
		return err
	}
	*h = v
	return nil
}
