package storage

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/canonical/go-snapctl"
)

// snapctlStorage keeps values in the snap's configuration, the same store
// that `snap set` and `snap get` use. It only works inside a snap.
type snapctlStorage struct{}

func newSnapctlStorage() *snapctlStorage {
	return &snapctlStorage{}
}

func (s *snapctlStorage) Set(key, value string) error {
	if err := snapctl.Set(key, value).Run(); err != nil {
		return fmt.Errorf("snapctl set %s: %v", key, err)
	}
	return nil
}

func (s *snapctlStorage) SetDocument(key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("error marshalling %s: %v", key, err)
	}

	if err := snapctl.Set(key, string(b)).Document().Run(); err != nil {
		return fmt.Errorf("snapctl set %s: %v", key, err)
	}
	return nil
}

// Get returns the value of key. snapctl prints objects as JSON and every
// other value bare, so a bare value is returned under key itself.
func (s *snapctlStorage) Get(key string) (map[string]any, error) {
	out, err := snapctl.Get(key).Run()
	if err != nil {
		return nil, fmt.Errorf("snapctl get %s: %v", key, err)
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return nil, ErrorNotFound
	}

	if !strings.HasPrefix(out, "{") {
		return map[string]any{key: out}, nil
	}

	var values map[string]any
	if err := json.Unmarshal([]byte(out), &values); err != nil {
		return nil, fmt.Errorf("snapctl get %s: %v", key, err)
	}
	return values, nil
}

func (s *snapctlStorage) Unset(key string) error {
	if err := snapctl.Unset(key).Run(); err != nil {
		return fmt.Errorf("snapctl unset %s: %v", key, err)
	}
	return nil
}
