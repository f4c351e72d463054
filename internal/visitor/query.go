package visitor

import (
	"sort"
	"strings"
)

// SortOrder selects how View orders records.
type SortOrder string

const (
	SortLatest SortOrder = "latest"
	SortOldest SortOrder = "oldest"
	SortNone   SortOrder = "none"
)

// IsValid checks if a sort order is recognized.
func (o SortOrder) IsValid() bool {
	switch o {
	case SortLatest, SortOldest, SortNone:
		return true
	}
	return false
}

// View returns the subset of records whose name contains nameFilter
// (case-insensitive; empty matches all), ordered by order: SortLatest is
// check-in time descending, SortOldest ascending, SortNone keeps input
// order. The sort is stable, so records with equal check-in times keep
// their relative input order. The input slice is never modified.
func View(records []*Visitor, nameFilter string, order SortOrder) []*Visitor {
	needle := strings.ToLower(strings.TrimSpace(nameFilter))

	out := make([]*Visitor, 0, len(records))
	for _, v := range records {
		if needle == "" || strings.Contains(strings.ToLower(v.Name), needle) {
			out = append(out, v)
		}
	}

	switch order {
	case SortLatest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CheckInTime.After(out[j].CheckInTime)
		})
	case SortOldest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CheckInTime.Before(out[j].CheckInTime)
		})
	}

	return out
}
