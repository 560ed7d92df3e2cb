package component

import (
	"sort"
	"strings"

	"tripdesk/internal/tui/themes"
)

// SortDirection is the ordering applied to a sorted column
type SortDirection int

const (
	// SortNone means the column is not sorted
	SortNone SortDirection = iota
	// SortAsc sorts the column in ascending order
	SortAsc
	// SortDesc sorts the column in descending order
	SortDesc
)

// String returns the query-parameter form of the direction
func (d SortDirection) String() string {
	switch d {
	case SortAsc:
		return "asc"
	case SortDesc:
		return "desc"
	default:
		return ""
	}
}

// Icon returns the glyph rendered next to a sortable column header
func (d SortDirection) Icon() string {
	switch d {
	case SortAsc:
		return themes.IconSortAsc
	case SortDesc:
		return themes.IconSortDesc
	default:
		return themes.IconSortNone
	}
}

// SortEntry is one sorted column and its direction
type SortEntry struct {
	Column    string
	Direction SortDirection
}

// SortState is the ordered sequence of column sorts applied to a
// table. Each column appears at most once. The zero value means
// unsorted. The grid keeps at most one entry via ToggleSingle, but the
// state composes to multi-column when a caller toggles without
// clearing.
type SortState struct {
	Entries []SortEntry
}

// SortBy builds a single-column sort state
func SortBy(column string, direction SortDirection) SortState {
	if column == "" || direction == SortNone {
		return SortState{}
	}
	return SortState{Entries: []SortEntry{{Column: column, Direction: direction}}}
}

// Active reports whether any column is currently sorted
func (s SortState) Active() bool {
	return len(s.Entries) > 0
}

// Primary returns the first sort entry, the zero entry when unsorted
func (s SortState) Primary() SortEntry {
	if len(s.Entries) == 0 {
		return SortEntry{}
	}
	return s.Entries[0]
}

// DirectionFor returns the direction applied to the given column,
// SortNone when the column is not sorted
func (s SortState) DirectionFor(column string) SortDirection {
	for _, e := range s.Entries {
		if e.Column == column {
			return e.Direction
		}
	}
	return SortNone
}

// Toggle advances the sort cycle for one column and returns the new
// state: an absent column is appended ascending, an ascending entry
// flips to descending, and a descending entry is removed. Other
// entries are kept, so repeated toggles on different columns build a
// multi-column sort. The receiver is never mutated.
func (s SortState) Toggle(column string) SortState {
	out := make([]SortEntry, 0, len(s.Entries)+1)
	found := false
	for _, e := range s.Entries {
		if e.Column != column {
			out = append(out, e)
			continue
		}
		found = true
		if e.Direction == SortAsc {
			out = append(out, SortEntry{Column: column, Direction: SortDesc})
		}
		// descending entries drop out of the sequence
	}
	if !found {
		out = append(out, SortEntry{Column: column, Direction: SortAsc})
	}
	if len(out) == 0 {
		return SortState{}
	}
	return SortState{Entries: out}
}

// ToggleSingle advances the sort cycle for one column while keeping at
// most one entry: toggling a different column replaces the current
// sort and starts ascending.
func (s SortState) ToggleSingle(column string) SortState {
	if dir := s.DirectionFor(column); dir != SortNone {
		return SortState{Entries: []SortEntry{{Column: column, Direction: dir}}}.Toggle(column)
	}
	return SortBy(column, SortAsc)
}

// SortRows orders rows client-side by the value the primary sorted
// column extracts. Removing the sort restores the original row order,
// so the input slice is never mutated.
func SortRows[T any](rows []T, state SortState, value func(T) string) []T {
	if !state.Active() || value == nil {
		return rows
	}
	desc := state.Primary().Direction == SortDesc
	out := make([]T, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool {
		a := strings.ToLower(value(out[i]))
		b := strings.ToLower(value(out[j]))
		if desc {
			return a > b
		}
		return a < b
	})
	return out
}
