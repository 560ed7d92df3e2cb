package component

import (
	"reflect"
	"testing"
)

func TestSortStateToggleCycle(t *testing.T) {
	var s SortState

	s = s.Toggle("name")
	if got := s.Primary(); got.Column != "name" || got.Direction != SortAsc {
		t.Fatalf("first toggle = %+v, want name asc", got)
	}

	s = s.Toggle("name")
	if got := s.Primary(); got.Column != "name" || got.Direction != SortDesc {
		t.Fatalf("second toggle = %+v, want name desc", got)
	}

	s = s.Toggle("name")
	if s.Active() {
		t.Fatalf("third toggle = %+v, want cleared", s)
	}
}

func TestSortStateToggleComposesColumns(t *testing.T) {
	var s SortState
	s = s.Toggle("name")
	s = s.Toggle("city")

	if len(s.Entries) != 2 {
		t.Fatalf("entries = %+v, want two", s.Entries)
	}
	if s.Entries[0].Column != "name" || s.Entries[1].Column != "city" {
		t.Errorf("entry order = %+v, want name then city", s.Entries)
	}

	// cycling name out leaves city as the primary sort
	s = s.Toggle("name")
	s = s.Toggle("name")
	if got := s.Primary(); got.Column != "city" || got.Direction != SortAsc {
		t.Errorf("primary after removing name = %+v, want city asc", got)
	}
}

func TestSortStateToggleSingleSwitchesColumn(t *testing.T) {
	s := SortBy("name", SortDesc)
	s = s.ToggleSingle("city")
	if len(s.Entries) != 1 {
		t.Fatalf("entries = %+v, want one", s.Entries)
	}
	if got := s.Primary(); got.Column != "city" || got.Direction != SortAsc {
		t.Fatalf("toggle other column = %+v, want city asc", got)
	}

	s = s.ToggleSingle("city")
	if got := s.Primary(); got.Direction != SortDesc {
		t.Errorf("repeat toggle = %+v, want city desc", got)
	}
	s = s.ToggleSingle("city")
	if s.Active() {
		t.Errorf("third toggle = %+v, want cleared", s)
	}
}

func TestSortStateDirectionFor(t *testing.T) {
	s := SortBy("name", SortAsc)
	if got := s.DirectionFor("name"); got != SortAsc {
		t.Errorf("DirectionFor(name) = %v, want asc", got)
	}
	if got := s.DirectionFor("city"); got != SortNone {
		t.Errorf("DirectionFor(city) = %v, want none", got)
	}
}

func TestSortRows(t *testing.T) {
	rows := []string{"Berlin", "amsterdam", "Chicago"}

	asc := SortRows(rows, SortBy("name", SortAsc), func(s string) string { return s })
	if !reflect.DeepEqual(asc, []string{"amsterdam", "Berlin", "Chicago"}) {
		t.Errorf("ascending sort = %v", asc)
	}

	desc := SortRows(rows, SortBy("name", SortDesc), func(s string) string { return s })
	if !reflect.DeepEqual(desc, []string{"Chicago", "Berlin", "amsterdam"}) {
		t.Errorf("descending sort = %v", desc)
	}

	// the input keeps its order so clearing the sort restores it
	if !reflect.DeepEqual(rows, []string{"Berlin", "amsterdam", "Chicago"}) {
		t.Errorf("input mutated: %v", rows)
	}

	cleared := SortRows(rows, SortState{}, func(s string) string { return s })
	if !reflect.DeepEqual(cleared, rows) {
		t.Errorf("cleared sort = %v, want original order", cleared)
	}
}

func TestSortRowsStable(t *testing.T) {
	type row struct {
		key string
		seq int
	}
	rows := []row{{"a", 0}, {"b", 1}, {"a", 2}, {"b", 3}}
	sorted := SortRows(rows, SortBy("key", SortAsc), func(r row) string { return r.key })
	want := []row{{"a", 0}, {"a", 2}, {"b", 1}, {"b", 3}}
	if !reflect.DeepEqual(sorted, want) {
		t.Errorf("stable sort = %v, want %v", sorted, want)
	}
}

func TestSortDirectionString(t *testing.T) {
	if SortAsc.String() != "asc" || SortDesc.String() != "desc" || SortNone.String() != "" {
		t.Errorf("unexpected direction strings: %q %q %q",
			SortAsc.String(), SortDesc.String(), SortNone.String())
	}
}
