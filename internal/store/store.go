// internal/store/store.go

// Package store is the only I/O boundary of the system: a durable
// key/value blob store. Keys are slash-separated relative paths; values
// are JSON documents. Saves are atomic per key, but there are no
// transactions across keys — a caller that updates the calendar and a
// member record in one logical operation writes them sequentially, and a
// crash between the two writes leaves the pair inconsistent.
package store

import (
	"errors"
	"fmt"

	"github.com/gymdesk/gymdesk/internal/config"
)

var (
	// ErrNotFound indicates no value exists at the key.
	ErrNotFound = errors.New("key not found")
	// ErrCorrupt indicates the stored value cannot be decoded into the
	// expected shape.
	ErrCorrupt = errors.New("stored value is corrupt")
)

// Store saves and loads one structured value per key.
type Store interface {
	// Save serializes v and fully replaces any prior content at key.
	Save(key string, v any) error
	// SaveText writes a plain-text document at key, same replacement
	// semantics as Save.
	SaveText(key string, text string) error
	// Load deserializes the value at key into the pointer target.
	Load(key string, into any) error
	// Exists reports whether a value is present at key.
	Exists(key string) (bool, error)
	Close() error
}

// NewFromConfig opens the backend selected by the store configuration.
func NewFromConfig(cfg *config.Config) (Store, error) {
	switch cfg.Store.Driver {
	case config.DriverFile:
		return NewFileStore(cfg.Store.DataDir)
	case config.DriverSQLite:
		return NewSQLiteStore(cfg.SQLitePath())
	default:
		return nil, fmt.Errorf("unsupported store driver: %s", cfg.Store.Driver)
	}
}
