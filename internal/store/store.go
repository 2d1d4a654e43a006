// Package store implements generic CRUD over named record collections.
// Each collection is persisted as a single JSON blob through a pluggable
// Backend; every mutation decodes, edits, and rewrites the whole blob.
package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"contactflow/internal/model"
)

// Store provides keyed-collection CRUD on top of a Backend.
//
// Clock and NewID are injectable for tests; they default to time.Now and
// prefixed UUIDs.
type Store struct {
	backend Backend

	Clock func() time.Time
	NewID func(collection string) string
}

// New creates a Store on the given backend.
func New(backend Backend) *Store {
	return &Store{
		backend: backend,
		Clock:   time.Now,
		NewID: func(collection string) string {
			return IDPrefix(collection) + "-" + uuid.NewString()
		},
	}
}

// idProbe decodes just enough of a raw record to identify it.
type idProbe struct {
	ID string `json:"id"`
}

// readRaw loads a collection as a list of raw records. A collection that
// has never been written decodes to an empty list.
func (s *Store) readRaw(collection string) ([]json.RawMessage, error) {
	blob, err := s.backend.ReadBlob(collection)
	if err != nil {
		return nil, err
	}
	if len(blob) == 0 {
		return nil, nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(blob, &items); err != nil {
		return nil, fmt.Errorf("decoding collection %s: %w", collection, err)
	}
	return items, nil
}

// writeRaw rewrites a collection from a list of raw records.
func (s *Store) writeRaw(collection string, items []json.RawMessage) error {
	if items == nil {
		items = []json.RawMessage{}
	}
	blob, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encoding collection %s: %w", collection, err)
	}
	return s.backend.WriteBlob(collection, blob)
}

// SaveRecord saves a record into a collection. A record without an id gets
// a fresh generated id and its creation timestamp; every save refreshes the
// updated timestamp. An existing id is replaced in place, preserving the
// record's position; a new id is appended.
func (s *Store) SaveRecord(collection string, rec model.Mutable) error {
	if rec.RecordID() == "" {
		rec.SetRecordID(s.NewID(collection))
	}
	rec.Stamp(s.Clock().UTC())

	items, err := s.readRaw(collection)
	if err != nil {
		return err
	}

	encoded, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encoding record %s: %w", rec.RecordID(), err)
	}

	replaced := false
	for i, item := range items {
		var probe idProbe
		if err := json.Unmarshal(item, &probe); err != nil {
			return fmt.Errorf("decoding record in %s: %w", collection, err)
		}
		if probe.ID == rec.RecordID() {
			items[i] = encoded
			replaced = true
			break
		}
	}
	if !replaced {
		items = append(items, encoded)
	}

	return s.writeRaw(collection, items)
}

// DeleteRecord removes the first record with the given id from a collection.
// Deleting an id that is not present is a no-op. No cascading.
func (s *Store) DeleteRecord(collection, id string) error {
	items, err := s.readRaw(collection)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}

	for i, item := range items {
		var probe idProbe
		if err := json.Unmarshal(item, &probe); err != nil {
			return fmt.Errorf("decoding record in %s: %w", collection, err)
		}
		if probe.ID == id {
			items = append(items[:i], items[i+1:]...)
			return s.writeRaw(collection, items)
		}
	}

	return nil
}

// GetAll returns every record in a collection, in stored order. A
// collection that has never been written yields an empty slice.
func GetAll[T any](s *Store, collection string) ([]T, error) {
	blob, err := s.backend.ReadBlob(collection)
	if err != nil {
		return nil, err
	}
	if len(blob) == 0 {
		return nil, nil
	}

	var items []T
	if err := json.Unmarshal(blob, &items); err != nil {
		return nil, fmt.Errorf("decoding collection %s: %w", collection, err)
	}
	return items, nil
}

// GetByID returns the record with the given id, or ok=false when absent.
// Absence is not an error.
func GetByID[T any, PT interface {
	*T
	model.Record
}](s *Store, collection, id string) (*T, bool, error) {
	items, err := GetAll[T](s, collection)
	if err != nil {
		return nil, false, err
	}
	for i := range items {
		if PT(&items[i]).RecordID() == id {
			return &items[i], true, nil
		}
	}
	return nil, false, nil
}

// ReplaceAll rewrites a collection from the given records in one write,
// without touching ids or timestamps. Used for batch updates such as
// marking every notification read.
func ReplaceAll[T any](s *Store, collection string, items []T) error {
	if items == nil {
		items = []T{}
	}
	blob, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encoding collection %s: %w", collection, err)
	}
	return s.backend.WriteBlob(collection, blob)
}

// GetValue reads a non-collection slot value, with ok=false when the slot
// has never been written.
func GetValue[T any](s *Store, slot string) (T, bool, error) {
	var zero T
	blob, err := s.backend.ReadBlob(slot)
	if err != nil {
		return zero, false, err
	}
	if len(blob) == 0 {
		return zero, false, nil
	}

	var value T
	if err := json.Unmarshal(blob, &value); err != nil {
		return zero, false, fmt.Errorf("decoding slot %s: %w", slot, err)
	}
	return value, true, nil
}

// PutValue writes a non-collection slot value.
func PutValue[T any](s *Store, slot string, value T) error {
	blob, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding slot %s: %w", slot, err)
	}
	return s.backend.WriteBlob(slot, blob)
}

// DeleteValue removes a slot value.
func (s *Store) DeleteValue(slot string) error {
	return s.backend.DeleteBlob(slot)
}

// Reset deletes every known collection and slot.
func (s *Store) Reset() error {
	names := []string{
		CollectionUsers,
		CollectionRequests,
		CollectionTasks,
		CollectionComments,
		CollectionNotifications,
		CollectionActivities,
		SlotDashboardWidgets,
		SlotSettings,
		SlotDarkMode,
	}
	for _, name := range names {
		if err := s.backend.DeleteBlob(name); err != nil {
			return err
		}
	}
	return nil
}
