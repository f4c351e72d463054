package visitor

import (
	"testing"
	"time"
)

func TestPurposeIsValid(t *testing.T) {
	tests := []struct {
		p    Purpose
		want bool
	}{
		{Meeting, true},
		{Delivery, true},
		{Interview, true},
		{Maintenance, true},
		{Other, true},
		{"meeting", false},
		{"Vacation", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := tt.p.IsValid(); got != tt.want {
			t.Errorf("Purpose(%q).IsValid() = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestCheckedOut(t *testing.T) {
	v := &Visitor{Name: "Jane Doe", CheckInTime: time.Now()}
	if v.CheckedOut() {
		t.Error("expected visitor with nil CheckOutTime to be on premises")
	}

	out := v.CheckInTime.Add(time.Hour)
	v.CheckOutTime = &out
	if !v.CheckedOut() {
		t.Error("expected visitor with CheckOutTime to be checked out")
	}
}
