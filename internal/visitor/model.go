// Package visitor provides the visitor record domain model, persistence,
// and lifecycle rules.
package visitor

import (
	"database/sql"
	"time"
)

// Purpose is the declared reason for a visit.
type Purpose string

const (
	Meeting     Purpose = "Meeting"
	Delivery    Purpose = "Delivery"
	Interview   Purpose = "Interview"
	Maintenance Purpose = "Maintenance"
	Other       Purpose = "Other"
)

// ValidPurposes is the set of allowed visit purposes.
var ValidPurposes = []Purpose{Meeting, Delivery, Interview, Maintenance, Other}

// IsValid checks if a purpose is recognized.
func (p Purpose) IsValid() bool {
	for _, v := range ValidPurposes {
		if p == v {
			return true
		}
	}
	return false
}

// Visitor represents one visit to the premises. A nil CheckOutTime means
// the visitor is currently on premises.
type Visitor struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	Purpose      Purpose    `json:"purpose"`
	Contact      string     `json:"contact"`
	CheckInTime  time.Time  `json:"check_in_time"`
	CheckOutTime *time.Time `json:"check_out_time,omitempty"`
}

// CheckedOut reports whether the visitor has left the premises.
func (v *Visitor) CheckedOut() bool {
	return v.CheckOutTime != nil
}

// scanVisitor scans a visitor from a database row.
func scanVisitor(row interface{ Scan(...interface{}) error }) (*Visitor, error) {
	var v Visitor
	var purpose string
	var checkOut sql.NullTime

	err := row.Scan(&v.ID, &v.Name, &purpose, &v.Contact, &v.CheckInTime, &checkOut)
	if err != nil {
		return nil, err
	}

	v.Purpose = Purpose(purpose)
	if checkOut.Valid {
		t := checkOut.Time
		v.CheckOutTime = &t
	}

	return &v, nil
}
