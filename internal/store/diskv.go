package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"

	"github.com/peterbourgon/diskv/v3"
)

// Disk stores one file per key using diskv.
type Disk struct {
	d        *diskv.Diskv
	basePath string
}

// NewDisk opens (creating if needed) a Disk store under basePath.
func NewDisk(basePath string) (*Disk, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	return &Disk{
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			Transform:    func(string) []string { return []string{} },
			CacheSizeMax: 64 * 1024,
		}),
		basePath: basePath,
	}, nil
}

func (d *Disk) Get(key string) ([]byte, error) {
	if err := validKey(key); err != nil {
		return nil, err
	}
	val, err := d.d.Read(key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return val, nil
}

func (d *Disk) Set(key string, value []byte) error {
	if err := validKey(key); err != nil {
		return err
	}
	return d.d.Write(key, value)
}

func (d *Disk) Delete(key string) error {
	if err := validKey(key); err != nil {
		return err
	}
	if err := d.d.Erase(key); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func (d *Disk) Keys() ([]string, error) {
	cancel := make(chan struct{})
	defer close(cancel)
	keys := make([]string, 0)
	for key := range d.d.Keys(cancel) {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys, nil
}

func (d *Disk) Close() error { return nil }
