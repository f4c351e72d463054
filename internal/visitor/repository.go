package visitor

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/evcraddock/visitor-log/internal/db"
)

// Repository is the SQLite-backed Store.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a visitor repository over an open database.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Open opens (or creates) the SQLite database at path and returns a
// repository over it. A failure to open is reported as ErrStoreUnavailable;
// callers are expected to fall back to NewMemStore and keep going.
func Open(path string) (*Repository, error) {
	database, err := db.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return NewRepository(database), nil
}

// Close closes the underlying database.
func (r *Repository) Close() error {
	return r.db.Close()
}

const selectColumns = `id, name, purpose, contact, check_in_time, check_out_time`

// Insert persists a new record and returns it with its assigned id. Ids
// increase monotonically for the lifetime of the database (but see Clear).
func (r *Repository) Insert(v *Visitor) (*Visitor, error) {
	result, err := r.db.Exec(
		"INSERT INTO visitors (name, purpose, contact, check_in_time, check_out_time) VALUES (?, ?, ?, ?, ?)",
		v.Name, string(v.Purpose), v.Contact, v.CheckInTime, nullTime(v.CheckOutTime),
	)
	if err != nil {
		return nil, fmt.Errorf("inserting visitor: %w: %w", ErrWriteFailure, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting insert id: %w", err)
	}

	return r.Get(id)
}

// Get returns a visitor by its id.
func (r *Repository) Get(id int64) (*Visitor, error) {
	row := r.db.QueryRow("SELECT "+selectColumns+" FROM visitors WHERE id = ?", id)

	v, err := scanVisitor(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("visitor %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying visitor %d: %w", id, err)
	}

	return v, nil
}

// Update replaces the stored row for v.ID with v's fields.
func (r *Repository) Update(v *Visitor) error {
	result, err := r.db.Exec(
		"UPDATE visitors SET name = ?, purpose = ?, contact = ?, check_in_time = ?, check_out_time = ? WHERE id = ?",
		v.Name, string(v.Purpose), v.Contact, v.CheckInTime, nullTime(v.CheckOutTime), v.ID,
	)
	if err != nil {
		return fmt.Errorf("updating visitor %d: %w: %w", v.ID, ErrWriteFailure, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("visitor %d: %w", v.ID, ErrNotFound)
	}

	return nil
}

// ListAll returns every stored record. Order is unspecified — callers sort
// explicitly.
func (r *Repository) ListAll() ([]*Visitor, error) {
	rows, err := r.db.Query("SELECT " + selectColumns + " FROM visitors")
	if err != nil {
		return nil, fmt.Errorf("listing visitors: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = fmt.Errorf("closing rows: %w", closeErr)
		}
	}()

	var visitors []*Visitor
	for rows.Next() {
		v, err := scanVisitor(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning visitor: %w", err)
		}
		visitors = append(visitors, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating visitors: %w", err)
	}

	return visitors, nil
}

// Clear deletes every record and resets the id sequence: the first Insert
// after Clear is assigned id 1.
func (r *Repository) Clear() error {
	if _, err := r.db.Exec("DELETE FROM visitors"); err != nil {
		return fmt.Errorf("clearing visitors: %w: %w", ErrWriteFailure, err)
	}

	// sqlite_sequence is created lazily on the first AUTOINCREMENT insert;
	// a fresh database has nothing to reset.
	if _, err := r.db.Exec("DELETE FROM sqlite_sequence WHERE name = 'visitors'"); err != nil {
		if !strings.Contains(err.Error(), "no such table") {
			return fmt.Errorf("resetting id sequence: %w", err)
		}
	}

	return nil
}

// nullTime converts an optional timestamp for driver binding.
func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
