// Package history persists the rolling deal history across runs.
package history

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"macdealtracker/internal/deal"
	"macdealtracker/pkg/errors"
)

// Store persists the deal history as a JSON array of deal records. The file
// is loaded fully at run start and overwritten wholesale at run end; there is
// no incremental update.
type Store struct {
	path string
}

// NewStore creates a store backed by the given file path
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the persisted history. A load never fails: a missing, unreadable
// or corrupt file yields an empty history. The returned error is advisory so
// the caller can log the recovery at warn level; the history slice is always
// usable.
func (s *Store) Load() ([]deal.Deal, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []deal.Deal{}, nil
		}
		return []deal.Deal{}, errors.NewStorage("history", "failed to read history file", err)
	}

	var deals []deal.Deal
	if err := json.Unmarshal(data, &deals); err != nil {
		// Lossy recovery: invalid state is discarded rather than propagated
		return []deal.Deal{}, errors.NewStorage("history", "corrupt history file, starting empty", err)
	}
	if deals == nil {
		deals = []deal.Deal{}
	}

	return deals, nil
}

// Save overwrites the persisted history. The write goes to a temp file in the
// same directory and is renamed into place, so a crash mid-write leaves either
// the old state or the new one, not a torn file.
func (s *Store) Save(deals []deal.Deal) error {
	data, err := json.MarshalIndent(deals, "", "  ")
	if err != nil {
		return errors.NewStorage("history", "failed to encode history", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return errors.NewStorage("history", "failed to create temp file", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return errors.NewStorage("history", "failed to write history", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return errors.NewStorage("history", "failed to close temp file", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return errors.NewStorage("history", "failed to replace history file", err)
	}

	return nil
}

// AppendAndPrune concatenates fresh deals onto the existing history and drops
// every deal found strictly before now minus the retention window. The prune
// is a pure filter over found dates, so concatenation order does not affect
// the final set.
//
// Cross-run duplicates are kept on purpose: the same listing resurfacing on a
// later day records when it was seen at what price. Only the intra-run dedup
// collapses repeats.
func AppendAndPrune(existing, fresh []deal.Deal, now time.Time, retentionDays int) []deal.Deal {
	cutoff := now.AddDate(0, 0, -retentionDays)

	merged := make([]deal.Deal, 0, len(existing)+len(fresh))
	merged = append(merged, existing...)
	merged = append(merged, fresh...)

	kept := merged[:0]
	for _, d := range merged {
		if !d.FoundDate.Before(cutoff) {
			kept = append(kept, d)
		}
	}
	return kept
}
