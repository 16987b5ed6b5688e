// Package store holds the working set of enrollment records between import
// and delivery.
package store

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"macenroll/internal/domain"
)

// MachineList is an ordered, in-memory list of enrollment records. Records
// enter via bulk import or manual entry and leave individually, by
// selection, in bulk, or automatically on successful delivery. The list is
// safe for the single aggregator goroutine plus callers on the main
// goroutine.
type MachineList struct {
	mu      sync.Mutex
	records []domain.EnrollmentRecord
}

// NewMachineList creates an empty list.
func NewMachineList() *MachineList {
	return &MachineList{}
}

// Add appends one record, assigning an id if it has none, and returns the
// stored record.
func (l *MachineList) Add(rec domain.EnrollmentRecord) domain.EnrollmentRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	l.records = append(l.records, rec)
	return rec
}

// AddAll appends records in order.
func (l *MachineList) AddAll(recs []domain.EnrollmentRecord) {
	for _, rec := range recs {
		l.Add(rec)
	}
}

// Records returns a copy of the list in insertion order.
func (l *MachineList) Records() []domain.EnrollmentRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]domain.EnrollmentRecord, len(l.records))
	copy(out, l.records)
	return out
}

// Len returns the number of records held.
func (l *MachineList) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.records)
}

// Remove deletes the record with the given id and reports whether it was
// present.
func (l *MachineList) Remove(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, rec := range l.records {
		if rec.ID == id {
			l.records = append(l.records[:i], l.records[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveSelected deletes every record whose id is in ids.
func (l *MachineList) RemoveSelected(ids []string) {
	selected := make(map[string]bool, len(ids))
	for _, id := range ids {
		selected[id] = true
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	kept := l.records[:0]
	for _, rec := range l.records {
		if !selected[rec.ID] {
			kept = append(kept, rec)
		}
	}
	l.records = kept
}

// RemoveAll empties the list.
func (l *MachineList) RemoveAll() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = nil
}

// SaveFile writes the list to a JSON working file so a later invocation can
// pick it up. This is internal persistence; ids are included, unlike the
// wire payloads.
func (l *MachineList) SaveFile(path string) error {
	data, err := json.MarshalIndent(l.Records(), "", "  ")
	if err != nil {
		return errors.Wrap(err, "could not encode machine list")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "could not write machine list %s", path)
	}
	return nil
}

// LoadFile reads a working file into a new list. A missing file yields an
// empty list, not an error.
func LoadFile(path string) (*MachineList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewMachineList(), nil
		}
		return nil, errors.Wrapf(err, "could not read machine list %s", path)
	}

	var records []domain.EnrollmentRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, errors.Wrapf(err, "could not decode machine list %s", path)
	}

	list := NewMachineList()
	list.AddAll(records)
	return list, nil
}
