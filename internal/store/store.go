// Package store provides the key-value persistence used for ledger snapshots.
package store

import "errors"

// ErrNotFound is returned by Get when no value is stored under the key.
var ErrNotFound = errors.New("key not found")
