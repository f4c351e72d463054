package visitor

import (
	"fmt"
	"strings"
	"time"
)

// Service is the only component that mutates visitor records. It owns the
// in-memory record set shown to callers and keeps it consistent with the
// store: every operation writes to the store first and updates memory only
// after the store confirms success, so a failed write never leaks into the
// view.
type Service struct {
	store   Store
	records []*Visitor
	now     func() time.Time
}

// NewService creates a service over the given store. Call Load to populate
// the in-memory set from existing records.
func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// Load populates the in-memory set from the store.
func (s *Service) Load() error {
	records, err := s.store.ListAll()
	if err != nil {
		return fmt.Errorf("loading visitors: %w", err)
	}
	s.records = records
	return nil
}

// CheckIn validates the input, persists a new record with the current time
// and no checkout time, and adds it to the in-memory set. The returned
// record carries its assigned id.
func (s *Service) CheckIn(name string, purpose Purpose, contact string) (*Visitor, error) {
	name = strings.TrimSpace(name)
	contact = strings.TrimSpace(contact)

	if err := Validate(name, purpose, contact); err != nil {
		return nil, err
	}

	saved, err := s.store.Insert(&Visitor{
		Name:        name,
		Purpose:     purpose,
		Contact:     contact,
		CheckInTime: s.now(),
	})
	if err != nil {
		return nil, err
	}

	s.records = append(s.records, saved)
	return saved, nil
}

// CheckOut stamps the checkout time on a currently checked-in record and
// replaces the in-memory entry. Checking out twice fails with
// ErrAlreadyCheckedOut and leaves the original timestamp intact.
func (s *Service) CheckOut(id int64) (*Visitor, error) {
	current, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	if current.CheckOutTime != nil {
		return nil, fmt.Errorf("visitor %d: %w", id, ErrAlreadyCheckedOut)
	}

	t := s.now()
	// The wall clock can step backwards; checkout never precedes check-in.
	if t.Before(current.CheckInTime) {
		t = current.CheckInTime
	}
	current.CheckOutTime = &t

	if err := s.store.Update(current); err != nil {
		return nil, err
	}

	for i, rec := range s.records {
		if rec.ID == id {
			s.records[i] = current
			break
		}
	}

	return current, nil
}

// Reset deletes every record from the store, then empties the in-memory
// set. Not reversible.
func (s *Service) Reset() error {
	if err := s.store.Clear(); err != nil {
		return err
	}
	s.records = nil
	return nil
}

// View returns the filtered, sorted sequence for display.
func (s *Service) View(nameFilter string, order SortOrder) []*Visitor {
	return View(s.records, nameFilter, order)
}

// Records returns the full in-memory set in check-in order.
func (s *Service) Records() []*Visitor {
	return s.records
}
