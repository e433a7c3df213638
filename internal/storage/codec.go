package storage

import (
	"encoding/json"
	"fmt"
)

// GetJSON decodes the value stored under key into v.
// It returns ErrNotFound when the key is absent.
func GetJSON(p Provider, key string, v any) error {
	raw, err := p.Get(key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return fmt.Errorf("decoding %s: %w", key, err)
	}
	return nil
}

// SetJSON encodes v and stores it under key.
func SetJSON(p Provider, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	return p.Set(key, string(data))
}
