// Package store keeps a local history of decoded and rebuilt payloads
// in a pebble key-value database. It exists so an operator can answer
// "what did this tool scan and emit" without re-scanning images.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cockroachdb/pebble"

	"github.com/mkadit/qris"
)

// Record source values.
const (
	SourceDecoded = "decoded"
	SourceBuilt   = "built"
)

var recordPrefix = []byte("record/")

// Record is one remembered payload. Checksum doubles as the identity:
// the same payload seen twice collapses into one record.
type Record struct {
	Checksum     string    `json:"checksum"`
	Payload      string    `json:"payload"`
	MerchantName string    `json:"merchant_name,omitempty"`
	MerchantCity string    `json:"merchant_city,omitempty"`
	Source       string    `json:"source"`
	SavedAt      time.Time `json:"saved_at"`
}

// NewRecord builds a record from a payload string.
func NewRecord(raw, source string, now time.Time) Record {
	p := qris.NewPayload(raw)
	return Record{
		Checksum:     p.Checksum(),
		Payload:      p.Raw(),
		MerchantName: p.MerchantName(),
		MerchantCity: p.MerchantCity(),
		Source:       source,
		SavedAt:      now,
	}
}

// Store wraps one pebble database holding history records.
type Store struct {
	db *pebble.DB
}

// Open opens (or creates) the history database at path.
func Open(path string) (*Store, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("failed to open history db at %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// Close flushes and closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put saves or overwrites a record under its checksum.
func (s *Store) Put(rec Record) error {
	if rec.Checksum == "" {
		return qris.ErrEmptyPayload
	}

	value, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}

	if err := s.db.Set(key(rec.Checksum), value, pebble.Sync); err != nil {
		return fmt.Errorf("failed to write record %s: %w", rec.Checksum, err)
	}
	return nil
}

// Get returns the record stored under checksum.
// Returns qris.ErrRecordNotFound when absent.
func (s *Store) Get(checksum string) (Record, error) {
	value, closer, err := s.db.Get(key(checksum))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return Record{}, qris.ErrRecordNotFound
		}
		return Record{}, fmt.Errorf("failed to read record %s: %w", checksum, err)
	}
	defer closer.Close()

	var rec Record
	if err := json.Unmarshal(value, &rec); err != nil {
		return Record{}, fmt.Errorf("failed to decode record %s: %w", checksum, err)
	}
	return rec, nil
}

// List returns every stored record in key order.
func (s *Store) List() ([]Record, error) {
	iter, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: recordPrefix,
		UpperBound: append(append([]byte{}, recordPrefix...), 0xFF),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate history: %w", err)
	}
	defer iter.Close()

	var records []Record
	for iter.First(); iter.Valid(); iter.Next() {
		var rec Record
		if err := json.Unmarshal(iter.Value(), &rec); err != nil {
			return nil, fmt.Errorf("failed to decode record %s: %w", iter.Key(), err)
		}
		records = append(records, rec)
	}
	if err := iter.Error(); err != nil {
		return nil, err
	}
	return records, nil
}

func key(checksum string) []byte {
	return append(append([]byte{}, recordPrefix...), checksum...)
}
