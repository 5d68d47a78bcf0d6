package storage

import (
	"encoding/json"
	"maps"
	"strings"
	"sync"
)

// memoryStorage keeps dot-separated keys in nested maps, the same shape
// snapctl uses for snap options.
type memoryStorage struct {
	mu   sync.Mutex
	root map[string]any
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{root: make(map[string]any)}
}

func (s *memoryStorage) Set(key, value string) error {
	return s.set(key, value)
}

func (s *memoryStorage) SetDocument(key string, value any) error {
	// Round trip through JSON so stored documents have the types snapctl returns
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return err
	}
	return s.set(key, doc)
}

func (s *memoryStorage) set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	parts := strings.Split(key, ".")
	m := s.root
	for _, part := range parts[:len(parts)-1] {
		child, ok := m[part].(map[string]any)
		if !ok {
			child = make(map[string]any)
			m[part] = child
		}
		m = child
	}
	m[parts[len(parts)-1]] = value
	return nil
}

func (s *memoryStorage) Get(key string) (map[string]any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var value any = s.root
	for _, part := range strings.Split(key, ".") {
		m, ok := value.(map[string]any)
		if !ok {
			return nil, ErrorNotFound
		}
		if value, ok = m[part]; !ok {
			return nil, ErrorNotFound
		}
	}

	if m, ok := value.(map[string]any); ok {
		return deepCopy(m), nil
	}
	return map[string]any{key: value}, nil
}

func (s *memoryStorage) Unset(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	parts := strings.Split(key, ".")
	m := s.root
	for _, part := range parts[:len(parts)-1] {
		child, ok := m[part].(map[string]any)
		if !ok {
			return nil
		}
		m = child
	}
	delete(m, parts[len(parts)-1])
	return nil
}

func deepCopy(m map[string]any) map[string]any {
	c := maps.Clone(m)
	for k, v := range c {
		if child, ok := v.(map[string]any); ok {
			c[k] = deepCopy(child)
		}
	}
	return c
}
