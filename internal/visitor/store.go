package visitor

import "fmt"

// Store is the durable persistence contract for visitor records. Insert
// assigns a fresh id and returns the record as persisted; Update replaces
// the whole row atomically. ListAll makes no ordering promise — callers
// sort explicitly.
type Store interface {
	Insert(v *Visitor) (*Visitor, error)
	Get(id int64) (*Visitor, error)
	Update(v *Visitor) error
	ListAll() ([]*Visitor, error)
	Clear() error
}

// MemStore is an in-memory Store. It backs the degraded mode used when the
// SQLite database cannot be opened; records do not survive a restart.
// Like the SQLite store, Clear resets the id sequence to 1.
type MemStore struct {
	records map[int64]Visitor
	nextID  int64
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{records: make(map[int64]Visitor), nextID: 1}
}

// Insert stores a copy of v under a fresh id.
func (s *MemStore) Insert(v *Visitor) (*Visitor, error) {
	rec := *v
	rec.ID = s.nextID
	s.nextID++
	s.records[rec.ID] = rec

	out := rec
	return &out, nil
}

// Get returns a copy of the record with the given id.
func (s *MemStore) Get(id int64) (*Visitor, error) {
	rec, ok := s.records[id]
	if !ok {
		return nil, fmt.Errorf("visitor %d: %w", id, ErrNotFound)
	}
	out := rec
	return &out, nil
}

// Update replaces the stored record with the same id.
func (s *MemStore) Update(v *Visitor) error {
	if _, ok := s.records[v.ID]; !ok {
		return fmt.Errorf("visitor %d: %w", v.ID, ErrNotFound)
	}
	s.records[v.ID] = *v
	return nil
}

// ListAll returns every stored record in unspecified order.
func (s *MemStore) ListAll() ([]*Visitor, error) {
	out := make([]*Visitor, 0, len(s.records))
	for _, rec := range s.records {
		r := rec
		out = append(out, &r)
	}
	return out, nil
}

// Clear deletes every record and restarts the id sequence at 1.
func (s *MemStore) Clear() error {
	s.records = make(map[int64]Visitor)
	s.nextID = 1
	return nil
}
