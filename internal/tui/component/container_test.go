package component

import (
	"strings"
	"testing"
)

func testContainer() *Container[testCity] {
	grid := NewGrid("cities", testColumns())
	return NewContainer("cities", "Cities", grid)
}

func TestContainerWithoutPaginationNeverRendersBar(t *testing.T) {
	c := testContainer()
	c.SetPage(testRows(), PageMeta{CurrentPage: 1, LastPage: 9, Total: 90, From: 1, To: 10})

	if c.PaginationVisible() {
		t.Error("pagination visible without an attached bar")
	}
	if view := c.ViewWidth(80); strings.Contains(view, "«") || strings.Contains(view, "»") {
		t.Errorf("paging glyphs rendered without a bar: %q", view)
	}
}

func TestContainerPaginationVisibility(t *testing.T) {
	c := testContainer().WithPagination(NewPagination("cities"))

	c.SetPage(testRows(), PageMeta{CurrentPage: 1, LastPage: 1, Total: 2, From: 1, To: 2})
	if c.PaginationVisible() {
		t.Error("pagination visible for a single page")
	}

	c.SetPage(testRows(), PageMeta{CurrentPage: 1, LastPage: 3, Total: 25, From: 1, To: 10})
	if !c.PaginationVisible() {
		t.Error("pagination hidden with multiple pages")
	}
	if view := c.ViewWidth(80); !strings.Contains(view, "showing 1 to 10 of 25") {
		t.Errorf("caption missing from container view: %q", view)
	}
}

func TestContainerSetLoadingPropagates(t *testing.T) {
	c := testContainer().WithPagination(NewPagination("cities"))
	c.SetPage(testRows(), PageMeta{CurrentPage: 1, LastPage: 3})

	c.SetLoading(true)
	if !c.Grid().Loading() {
		t.Error("grid not loading")
	}
	if !c.Pagination().Loading() {
		t.Error("pagination not loading")
	}
	if cmd := c.Pagination().Request(2); cmd != nil {
		t.Error("navigation allowed while loading")
	}

	c.SetLoading(false)
	if cmd := c.Pagination().Request(2); cmd == nil {
		t.Error("navigation blocked after load finished")
	}
}

func TestContainerFocusCycle(t *testing.T) {
	menu := NewActionMenu("cities", ViewAction(), EditAction())
	c := testContainer().WithActions(menu).WithPagination(NewPagination("cities"))
	c.SetPage(testRows(), PageMeta{CurrentPage: 1, LastPage: 3})

	c.Focus()
	if !c.Grid().Focused() {
		t.Fatal("focus did not land on the grid")
	}

	c.cycleFocus()
	if !menu.Focused() || c.Grid().Focused() {
		t.Error("focus did not move to the actions")
	}

	c.cycleFocus()
	if !c.Pagination().Focused() {
		t.Error("focus did not move to the pagination")
	}

	c.cycleFocus()
	if !c.Grid().Focused() {
		t.Error("focus did not cycle back to the grid")
	}

	c.Blur()
	if c.Grid().Focused() || menu.Focused() || c.Pagination().Focused() {
		t.Error("blur left a region focused")
	}
}

func TestContainerFocusSkipsHiddenPagination(t *testing.T) {
	c := testContainer().WithPagination(NewPagination("cities"))
	c.SetPage(testRows(), PageMeta{CurrentPage: 1, LastPage: 1})

	c.Focus()
	c.cycleFocus()
	if !c.Grid().Focused() {
		t.Error("focus moved off the grid with no other visible region")
	}
}

func TestContainerViewContainsTitleAndRows(t *testing.T) {
	c := testContainer()
	c.SetPage(testRows(), PageMeta{CurrentPage: 1, LastPage: 1})
	view := c.ViewWidth(80)
	if !strings.Contains(view, "Cities") {
		t.Errorf("title missing: %q", view)
	}
	if !strings.Contains(view, "Berlin") {
		t.Errorf("rows missing: %q", view)
	}
}
