package ledger

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/theirongolddev/atelier/internal/model"
)

// ErrNoData is returned by Parse for an empty payload.
var ErrNoData = errors.New("no snapshot data")

// record is the persisted shape of one entry. Pointers distinguish a missing
// field from a zero value.
type record struct {
	Desc     *string  `json:"desc"`
	Amount   *float64 `json:"amount"`
	Category *string  `json:"category"`
}

type outRecord struct {
	Desc     string  `json:"desc"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
}

// RecordError reports which record of a snapshot was rejected.
type RecordError struct {
	Index int
	Err   error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record %d: %v", e.Index, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

// Snapshot serializes the ledger in display order as a JSON array of
// {"desc","amount","category"} records. An empty ledger yields "[]".
func (l *Ledger) Snapshot() ([]byte, error) {
	out := make([]outRecord, len(l.entries))
	for i, e := range l.entries {
		out[i] = outRecord{
			Desc:     e.Description,
			Amount:   e.Amount,
			Category: e.Category.String(),
		}
	}
	return json.Marshal(out)
}

// Parse decodes a snapshot strictly, returning why it was rejected. A JSON
// null decodes to no entries.
func Parse(raw []byte) ([]model.Entry, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, ErrNoData
	}

	var recs []record
	if err := json.Unmarshal(raw, &recs); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}

	entries := make([]model.Entry, 0, len(recs))
	for i, r := range recs {
		if r.Desc == nil || r.Amount == nil || r.Category == nil {
			return nil, &RecordError{Index: i, Err: errors.New("missing desc, amount or category")}
		}
		c, err := model.ParseCategory(*r.Category)
		if err != nil {
			return nil, &RecordError{Index: i, Err: ErrUnknownCategory}
		}
		e, err := newEntry(*r.Desc, *r.Amount, c)
		if err != nil {
			return nil, &RecordError{Index: i, Err: err}
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Load builds a ledger from a persisted snapshot. Missing, unparsable or
// malformed data yields an empty ledger; nothing is partially recovered.
func Load(raw []byte) *Ledger {
	entries, err := Parse(raw)
	if err != nil {
		return New()
	}
	return &Ledger{entries: entries}
}
