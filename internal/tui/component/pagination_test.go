package component

import (
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestPageWindow(t *testing.T) {
	tests := []struct {
		name    string
		current int
		total   int
		radius  int
		want    []int
	}{
		{
			name:    "middle of a long range",
			current: 7, total: 20, radius: 2,
			want: []int{1, PageEllipsis, 5, 6, 7, 8, 9, PageEllipsis, 20},
		},
		{
			name:    "first page",
			current: 1, total: 20, radius: 2,
			want: []int{1, 2, 3, PageEllipsis, 20},
		},
		{
			name:    "last page",
			current: 20, total: 20, radius: 2,
			want: []int{1, PageEllipsis, 18, 19, 20},
		},
		{
			name:    "no gap collapses",
			current: 3, total: 5, radius: 2,
			want: []int{1, 2, 3, 4, 5},
		},
		{
			name:    "adjacent edge keeps no ellipsis",
			current: 4, total: 8, radius: 2,
			want: []int{1, 2, 3, 4, 5, 6, PageEllipsis, 8},
		},
		{
			name:    "single page",
			current: 1, total: 1, radius: 2,
			want: []int{1},
		},
		{
			name:    "current clamped into range",
			current: 99, total: 4, radius: 1,
			want: []int{1, PageEllipsis, 3, 4},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PageWindow(tt.current, tt.total, tt.radius)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("PageWindow(%d, %d, %d) = %v, want %v",
					tt.current, tt.total, tt.radius, got, tt.want)
			}
		})
	}
}

func TestPageWindowDeterministic(t *testing.T) {
	first := PageWindow(7, 20, 2)
	for i := 0; i < 10; i++ {
		if got := PageWindow(7, 20, 2); !reflect.DeepEqual(got, first) {
			t.Fatalf("window changed between calls: %v vs %v", got, first)
		}
	}
}

func TestPageMetaBounds(t *testing.T) {
	meta := PageMeta{CurrentPage: 1, LastPage: 5}
	if meta.CanPrev() {
		t.Error("CanPrev on first page")
	}
	if !meta.CanNext() {
		t.Error("!CanNext with pages remaining")
	}

	meta.CurrentPage = 5
	if !meta.CanPrev() {
		t.Error("!CanPrev on last page")
	}
	if meta.CanNext() {
		t.Error("CanNext on last page")
	}
}

func TestPageMetaLinkFallback(t *testing.T) {
	// without page counts the pager links decide navigability
	meta := PageMeta{NextURL: "http://x/api/hotels?page=2"}
	if !meta.CanNext() {
		t.Error("!CanNext with a next link and no page counts")
	}
	if meta.CanPrev() {
		t.Error("CanPrev without a prev link")
	}

	meta = PageMeta{PrevURL: "http://x/api/hotels?page=1"}
	if !meta.CanPrev() {
		t.Error("!CanPrev with a prev link and no page counts")
	}
	if meta.CanNext() {
		t.Error("CanNext without a next link")
	}

	// known page counts win over the links
	meta = PageMeta{CurrentPage: 5, LastPage: 5, NextURL: "http://stale"}
	if meta.CanNext() {
		t.Error("CanNext on the last page despite a stale link")
	}
}

func TestPageMetaValid(t *testing.T) {
	meta := PageMeta{CurrentPage: 3, LastPage: 5}
	for page, want := range map[int]bool{
		0: false, 1: true, 3: false, 5: true, 6: false, -1: false,
	} {
		if got := meta.Valid(page); got != want {
			t.Errorf("Valid(%d) = %v, want %v", page, got, want)
		}
	}
}

func TestPaginationNextToLastPage(t *testing.T) {
	p := NewPagination("cities")
	p.FocusState.Focus()
	p.SetMeta(PageMeta{CurrentPage: 1, LastPage: 5})

	for want := 2; want <= 5; want++ {
		_, cmd := p.Update(tea.KeyMsg{Type: tea.KeyRight})
		if cmd == nil {
			t.Fatalf("next from page %d returned nil", want-1)
		}
		msg := cmd().(PageRequestMsg)
		if msg.Page != want {
			t.Fatalf("next requested page %d, want %d", msg.Page, want)
		}
		// the page applies the fetched meta before the next click
		p.SetMeta(PageMeta{CurrentPage: want, LastPage: 5})
	}

	if _, cmd := p.Update(tea.KeyMsg{Type: tea.KeyRight}); cmd != nil {
		t.Error("next on the last page emitted a request")
	}
}

func TestPaginationRequestIgnoresInvalidPages(t *testing.T) {
	p := NewPagination("cities")
	p.SetMeta(PageMeta{CurrentPage: 3, LastPage: 5, PerPage: 10, Total: 42})

	if cmd := p.Request(0); cmd != nil {
		t.Error("Request(0) emitted a command")
	}
	if cmd := p.Request(6); cmd != nil {
		t.Error("Request beyond last page emitted a command")
	}
	if cmd := p.Request(3); cmd != nil {
		t.Error("Request for the current page emitted a command")
	}

	cmd := p.Request(4)
	if cmd == nil {
		t.Fatal("valid Request returned nil")
	}
	msg, ok := cmd().(PageRequestMsg)
	if !ok {
		t.Fatalf("Request emitted %T, want PageRequestMsg", cmd())
	}
	if msg.Source != "cities" || msg.Page != 4 {
		t.Errorf("PageRequestMsg = %+v", msg)
	}
}

func TestPaginationIgnoresNavigationWhileLoading(t *testing.T) {
	p := NewPagination("cities")
	p.SetMeta(PageMeta{CurrentPage: 2, LastPage: 5})
	p.SetLoading(true)
	if cmd := p.Request(3); cmd != nil {
		t.Error("Request emitted a command while loading")
	}
}

func TestPaginationHiddenForSinglePage(t *testing.T) {
	p := NewPagination("cities")
	p.SetMeta(PageMeta{CurrentPage: 1, LastPage: 1, Total: 3, From: 1, To: 3})
	if p.Visible() {
		t.Error("Visible with a single page")
	}
	if view := p.ViewWidth(80); view != "" {
		t.Errorf("single-page view = %q, want empty", view)
	}
}

func TestPaginationCaptionSuppressedWithoutTotals(t *testing.T) {
	p := NewPagination("cities")
	p.SetMeta(PageMeta{CurrentPage: 2, LastPage: 4})
	if view := p.ViewWidth(120); strings.Contains(view, "showing") {
		t.Errorf("caption rendered without totals: %q", view)
	}

	p.SetMeta(PageMeta{CurrentPage: 2, LastPage: 4, PerPage: 10, Total: 35, From: 11, To: 20})
	if view := p.ViewWidth(120); !strings.Contains(view, "showing 11 to 20 of 35") {
		t.Errorf("caption missing: %q", view)
	}
}
