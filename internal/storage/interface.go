package storage

import "errors"

var (
	// ErrNotFound is returned by Get when no value is stored under the key
	ErrNotFound = errors.New("key not found")
	// ErrNotLoaded is returned when a store is used before Init or Load
	ErrNotLoaded = errors.New("storage not loaded")
)

// Provider is a string key-value store. Values are JSON documents owned by
// the domain packages; the backends treat them as opaque text.
//
//go:generate mockgen -source=interface.go -destination=mocks/mock_provider.go -package=mocks
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Values
	Get(key string) (string, error)
	Set(key, value string) error
	Remove(key string) error
	Keys() ([]string, error)

	// Utils
	GetConfigPath() string
}
