// Package journal couples a ledger to its persistence. Every successful
// mutation is followed by exactly one snapshot write.
package journal

import (
	"context"
	"errors"
	"fmt"

	"github.com/theirongolddev/atelier/internal/ledger"
	"github.com/theirongolddev/atelier/internal/log"
	"github.com/theirongolddev/atelier/internal/model"
	"github.com/theirongolddev/atelier/internal/store"
)

// SnapshotKey is the store key the ledger snapshot lives under.
const SnapshotKey = "ledger/entries"

// Store is the key-value persistence the journal writes through to.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}

// Journal owns the ledger for the lifetime of a command or dashboard.
// It is not safe for concurrent use; callers handle one event at a time.
type Journal struct {
	ledger *ledger.Ledger
	store  Store
	log    *log.Logger
}

// Open loads the persisted snapshot. Read or parse failures are logged and
// the journal starts empty.
func Open(ctx context.Context, st Store, logger *log.Logger) *Journal {
	if logger == nil {
		logger = log.Discard()
	}
	logger = logger.WithComponent("journal")

	j := &Journal{ledger: ledger.New(), store: st, log: logger}

	raw, err := st.Get(ctx, SnapshotKey)
	switch {
	case errors.Is(err, store.ErrNotFound):
		logger.Debug("no snapshot stored, starting empty")
		return j
	case err != nil:
		logger.Warn("reading snapshot failed, starting empty", "err", err)
		return j
	}

	entries, err := ledger.Parse(raw)
	if err == nil {
		err = j.ledger.Replace(entries)
	}
	if err != nil {
		logger.Warn("discarding unreadable snapshot", "err", err, "bytes", len(raw))
		return j
	}
	logger.Debug("snapshot loaded", "entries", j.ledger.Len())
	return j
}

// Add validates and records a new entry, then persists.
func (j *Journal) Add(ctx context.Context, description string, amount float64, category model.Category) (model.Entry, error) {
	e, err := j.ledger.Add(description, amount, category)
	if err != nil {
		j.log.Debug("entry rejected", "err", err)
		return model.Entry{}, err
	}
	return e, j.persist(ctx, "add")
}

// AddRaw records an entry from raw form input, then persists.
func (j *Journal) AddRaw(ctx context.Context, description, amount, category string) (model.Entry, error) {
	e, err := j.ledger.AddRaw(description, amount, category)
	if err != nil {
		j.log.Debug("entry rejected", "err", err)
		return model.Entry{}, err
	}
	return e, j.persist(ctx, "add")
}

// RemoveAt deletes the entry at index i and persists. An out-of-range index
// writes nothing and reports false.
func (j *Journal) RemoveAt(ctx context.Context, i int) (model.Entry, bool, error) {
	e, ok := j.ledger.RemoveAt(i)
	if !ok {
		j.log.Debug("remove ignored, index out of range", "index", i, "len", j.ledger.Len())
		return model.Entry{}, false, nil
	}
	return e, true, j.persist(ctx, "remove")
}

// Clear empties the ledger and persists. Confirmation is the caller's job.
func (j *Journal) Clear(ctx context.Context) error {
	j.ledger.Clear()
	return j.persist(ctx, "clear")
}

// Import replaces the ledger with a snapshot payload. Unlike Open it is
// strict: a malformed payload is reported and nothing changes.
func (j *Journal) Import(ctx context.Context, raw []byte) (int, error) {
	entries, err := ledger.Parse(raw)
	if err != nil {
		return 0, fmt.Errorf("import: %w", err)
	}
	if err := j.ledger.Replace(entries); err != nil {
		return 0, fmt.Errorf("import: %w", err)
	}
	return len(entries), j.persist(ctx, "import")
}

// Entries returns a copy of the current entries, newest first.
func (j *Journal) Entries() []model.Entry {
	return j.ledger.Entries()
}

// Rows returns the presentation view of the entries.
func (j *Journal) Rows() []ledger.Row {
	return j.ledger.Rows()
}

// Aggregate recomputes the totals from the current entries.
func (j *Journal) Aggregate() model.Aggregate {
	return j.ledger.Aggregate()
}

// Len returns the number of entries.
func (j *Journal) Len() int {
	return j.ledger.Len()
}

// persist writes the current snapshot. On failure the in-memory ledger keeps
// the mutation; the next successful write brings the store back in line.
func (j *Journal) persist(ctx context.Context, op string) error {
	raw, err := j.ledger.Snapshot()
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := j.store.Put(ctx, SnapshotKey, raw); err != nil {
		j.log.Error("persisting snapshot failed", "op", op, "err", err)
		return fmt.Errorf("persisting snapshot: %w", err)
	}
	j.log.Debug("snapshot written", "op", op, "entries", j.ledger.Len())
	return nil
}

// Snapshot returns the ledger's current persisted form.
func (j *Journal) Snapshot() ([]byte, error) {
	return j.ledger.Snapshot()
}
