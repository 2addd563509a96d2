// Package kv provides the local key-value snapshot storage the visit
// store persists to. Two interchangeable backends exist: SQLite and
// diskv. Both hold whole-value snapshots under a handful of fixed keys
// and enforce a per-value size limit, mirroring a browser
// localStorage quota.
package kv

import "errors"

// DefaultMaxValueBytes caps snapshot size. Image payloads are embedded
// in the snapshot as data URIs, so this is the limit users actually
// hit.
const DefaultMaxValueBytes = 5 << 20

// ErrValueTooLarge is returned by Put when a value exceeds the
// backend's size limit. The write is not performed.
var ErrValueTooLarge = errors.New("value exceeds size limit")

// Store is a minimal key-value snapshot store.
type Store interface {
	// Get returns the value for key. The second result is false when
	// the key has never been written.
	Get(key string) ([]byte, bool, error)
	// Put replaces the value for key in full.
	Put(key string, value []byte) error
	Close() error
}
