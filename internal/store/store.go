// Package store provides the durable key-value backends that persist
// navigation preferences between runs.
package store

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
)

// ErrNotFound is returned by Get when a key has never been written.
var ErrNotFound = errors.New("store: key not found")

// Store is a flat key-value store. Writes are last-writer-wins per key.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Keys() ([]string, error)
	Close() error
}

// Backend names a Store implementation.
type Backend string

const (
	BackendDisk   Backend = "disk"
	BackendSQLite Backend = "sqlite"
	BackendMemory Backend = "memory"
)

// DefaultPath is where persistent backends live unless configured otherwise.
const DefaultPath = "~/.local/state/xmb"

// Each persistent backend owns its own entry under the store path so one
// never sees the other's files.
const (
	diskDir    = "kv"
	sqliteFile = "state.db"
)

// Open constructs the requested backend rooted at path. A leading ~ is expanded.
func Open(backend Backend, path string) (Store, error) {
	if backend == BackendMemory {
		return NewMemory(), nil
	}
	if strings.TrimSpace(path) == "" {
		path = DefaultPath
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("expand store path: %w", err)
	}
	switch backend {
	case BackendDisk, "":
		return NewDisk(filepath.Join(expanded, diskDir))
	case BackendSQLite:
		return NewSQLite(filepath.Join(expanded, sqliteFile))
	default:
		return nil, fmt.Errorf("unknown store backend %q", backend)
	}
}

func validKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("store: empty key")
	}
	if strings.ContainsAny(key, `/\`) {
		return fmt.Errorf("store: invalid key %q", key)
	}
	return nil
}
