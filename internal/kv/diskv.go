package kv

import (
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"
)

// Diskv is a Store keeping one file per key under a base directory.
type Diskv struct {
	d        *diskv.Diskv
	maxValue int
}

// OpenDiskv opens (or creates) a diskv-backed store rooted at
// basePath. maxValueBytes <= 0 uses DefaultMaxValueBytes.
func OpenDiskv(basePath string, maxValueBytes int) (*Diskv, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory %s: %w", basePath, err)
	}

	if maxValueBytes <= 0 {
		maxValueBytes = DefaultMaxValueBytes
	}

	return &Diskv{
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			Transform:    func(string) []string { return nil }, // flat layout, keys are safe filenames
			CacheSizeMax: 1024 * 1024,
		}),
		maxValue: maxValueBytes,
	}, nil
}

// Get returns the value stored under key.
func (s *Diskv) Get(key string) ([]byte, bool, error) {
	if !s.d.Has(key) {
		return nil, false, nil
	}
	value, err := s.d.Read(key)
	if err != nil {
		return nil, false, fmt.Errorf("reading key %s: %w", key, err)
	}
	return value, true, nil
}

// Put replaces the value stored under key.
func (s *Diskv) Put(key string, value []byte) error {
	if len(value) > s.maxValue {
		return fmt.Errorf("writing key %s (%d bytes): %w", key, len(value), ErrValueTooLarge)
	}
	if err := s.d.Write(key, value); err != nil {
		return fmt.Errorf("writing key %s: %w", key, err)
	}
	return nil
}

// Close is a no-op; diskv holds no long-lived handles.
func (s *Diskv) Close() error {
	return nil
}
