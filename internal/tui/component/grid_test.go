package component

import (
	"strings"
	"testing"
)

type testCity struct {
	Name    string
	Country string
	Airport *testAirport
}

type testAirport struct {
	Code string
}

func testColumns() []Column[testCity] {
	return []Column[testCity]{
		{Key: "Name", Title: "Name", Sortable: true},
		{Key: "Country", Title: "Country"},
		{Key: "Airport.Code", Title: "Airport"},
		{ID: "summary", Title: "Summary", Value: func(c testCity, _ int) string {
			return c.Name + ", " + c.Country
		}},
	}
}

func testRows() []testCity {
	return []testCity{
		{Name: "Berlin", Country: "Germany", Airport: &testAirport{Code: "BER"}},
		{Name: "Lyon", Country: "France"},
	}
}

func TestColumnIdentity(t *testing.T) {
	if got := (Column[testCity]{Key: "Name"}).Identity(); got != "Name" {
		t.Errorf("key column identity = %q", got)
	}
	if got := (Column[testCity]{ID: "summary", Key: "Name"}).Identity(); got != "summary" {
		t.Errorf("explicit ID not preferred: %q", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("column without ID or Key did not panic")
		}
	}()
	_ = Column[testCity]{Title: "Broken"}.Identity()
}

func TestNewGridRejectsDuplicateIdentities(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("duplicate column identities did not panic")
		}
	}()
	NewGrid("cities", []Column[testCity]{
		{Key: "Name", Title: "Name"},
		{ID: "Name", Title: "Also name", Value: func(testCity, int) string { return "" }},
	})
}

func TestFieldByPath(t *testing.T) {
	row := testRows()[0]
	cols := testColumns()

	if got := cols[0].cell(row, 0); got != "Berlin" {
		t.Errorf("simple field = %q", got)
	}
	if got := cols[2].cell(row, 0); got != "BER" {
		t.Errorf("nested pointer field = %q", got)
	}
	if got := cols[2].cell(testRows()[1], 1); got != "" {
		t.Errorf("nil pointer field = %q, want empty", got)
	}
	if got := cols[3].cell(row, 0); got != "Berlin, Germany" {
		t.Errorf("derived cell = %q", got)
	}
	if got := (Column[testCity]{Key: "Missing"}).cell(row, 0); got != "" {
		t.Errorf("missing field = %q, want empty", got)
	}
}

func TestGridToggleReordersLoadedRows(t *testing.T) {
	g := NewGrid("cities", testColumns())
	rows := []testCity{{Name: "Zeta"}, {Name: "Alpha"}}
	byName := func(c testCity) string { return c.Name }

	g.ToggleSort("Name")
	asc := SortRows(rows, g.Sort(), byName)
	if asc[0].Name != "Alpha" || asc[1].Name != "Zeta" {
		t.Errorf("ascending order = %v", asc)
	}

	g.ToggleSort("Name")
	desc := SortRows(rows, g.Sort(), byName)
	if desc[0].Name != "Zeta" || desc[1].Name != "Alpha" {
		t.Errorf("descending order = %v", desc)
	}

	// third toggle clears the sort and restores input order
	g.ToggleSort("Name")
	orig := SortRows(rows, g.Sort(), byName)
	if orig[0].Name != "Zeta" || orig[1].Name != "Alpha" {
		t.Errorf("cleared order = %v, want input order", orig)
	}
}

func TestColumnRenderOverride(t *testing.T) {
	col := Column[testCity]{
		Key: "Name",
		Render: func(value string, _ testCity, _ int) string {
			return strings.ToUpper(value)
		},
	}
	if got := col.cell(testRows()[0], 0); got != "BERLIN" {
		t.Errorf("rendered cell = %q, want BERLIN", got)
	}
}

func TestGridEmptyPlaceholder(t *testing.T) {
	g := NewGrid("cities", testColumns()).WithEmptyText("No cities yet")
	view := g.ViewWidth(80)
	if !strings.Contains(view, "No cities yet") {
		t.Errorf("empty view missing placeholder: %q", view)
	}
}

func TestGridLoadingSuppressesRows(t *testing.T) {
	g := NewGrid("cities", testColumns())
	g.SetRows(testRows())
	g.SetLoading(true)

	view := g.ViewWidth(80)
	if strings.Contains(view, "Berlin") {
		t.Errorf("loading view still renders rows: %q", view)
	}
	if !strings.Contains(view, "Loading") {
		t.Errorf("loading view missing indicator: %q", view)
	}

	g.SetLoading(false)
	if view := g.ViewWidth(80); !strings.Contains(view, "Berlin") {
		t.Errorf("rows missing after load: %q", view)
	}
}

func TestGridSortGlyphs(t *testing.T) {
	g := NewGrid("cities", testColumns())
	g.SetRows(testRows())

	if view := g.ViewWidth(80); !strings.Contains(view, "↕") {
		t.Errorf("unsorted sortable header missing neutral glyph: %q", view)
	}

	g.SetSort(SortBy("Name", SortAsc))
	if view := g.ViewWidth(80); !strings.Contains(view, "▲") {
		t.Errorf("ascending header missing glyph: %q", view)
	}

	g.SetSort(SortBy("Name", SortDesc))
	if view := g.ViewWidth(80); !strings.Contains(view, "▼") {
		t.Errorf("descending header missing glyph: %q", view)
	}
}

func TestGridToggleSort(t *testing.T) {
	g := NewGrid("cities", testColumns())

	cmd := g.ToggleSort("Name")
	if cmd == nil {
		t.Fatal("sortable toggle returned nil")
	}
	msg, ok := cmd().(SortRequestMsg)
	if !ok {
		t.Fatalf("toggle emitted %T", cmd())
	}
	if msg.Source != "cities" || msg.State.Primary().Column != "Name" || msg.State.Primary().Direction != SortAsc {
		t.Errorf("SortRequestMsg = %+v", msg)
	}

	if cmd := g.ToggleSort("Country"); cmd != nil {
		t.Error("non-sortable toggle emitted a command")
	}
	if g.Sort().Primary().Column != "Name" {
		t.Errorf("non-sortable toggle changed state: %+v", g.Sort())
	}

	if cmd := g.ToggleSort("nope"); cmd != nil {
		t.Error("unknown column toggle emitted a command")
	}
}

func TestGridCursorClamping(t *testing.T) {
	g := NewGrid("cities", testColumns())
	g.SetRows(testRows())
	g.cursor = 5
	g.SetRows(testRows())
	if g.Cursor() != 1 {
		t.Errorf("cursor = %d after reset, want 1", g.Cursor())
	}

	g.SetRows(nil)
	if g.Cursor() != 0 {
		t.Errorf("cursor = %d on empty rows, want 0", g.Cursor())
	}
	if _, ok := g.CursorRow(); ok {
		t.Error("CursorRow ok on empty rows")
	}
}
