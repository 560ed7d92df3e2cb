package pages

import (
	"context"
	"errors"
	"testing"

	"tripdesk/internal/api"
	"tripdesk/internal/tui/component"
)

func testList(t *testing.T) (*listState[api.City], *[]api.ListQuery) {
	t.Helper()
	grid := component.NewGrid("test", []component.Column[api.City]{
		{ID: "name", Key: "Name", Title: "Name", Sortable: true},
	})
	container := component.NewContainer("test", "Test", grid).
		WithPagination(component.NewPagination("test"))

	var queries []api.ListQuery
	list := newListState("test", container, 10,
		func(_ context.Context, q api.ListQuery) (*api.Page[api.City], error) {
			queries = append(queries, q)
			return &api.Page[api.City]{
				Data:        []api.City{{ID: 1, Name: "Berlin"}},
				CurrentPage: q.Page,
				LastPage:    3,
				PerPage:     10,
				Total:       25,
				From:        1,
				To:          10,
			}, nil
		})
	return list, &queries
}

func TestListStateLoadAndResult(t *testing.T) {
	list, _ := testList(t)

	cmd := list.Load()
	if !list.Loading() {
		t.Fatal("not loading after Load")
	}

	msg := cmd().(PageResultMsg[api.City])
	if _, handled := list.Update(msg); !handled {
		t.Fatal("result not handled")
	}
	if list.Loading() {
		t.Error("still loading after result")
	}
	if got := list.container.Grid().Rows(); len(got) != 1 || got[0].Name != "Berlin" {
		t.Errorf("rows = %v", got)
	}
	if meta := list.container.Pagination().Meta(); meta.LastPage != 3 || meta.Total != 25 {
		t.Errorf("meta = %+v", meta)
	}
}

func TestListStateDropsStaleResponses(t *testing.T) {
	list, _ := testList(t)

	first := list.Load()()
	_ = list.Load() // supersedes the first fetch

	if _, handled := list.Update(first); !handled {
		t.Fatal("stale result not consumed")
	}
	if !list.Loading() {
		t.Error("stale result cleared the loading state")
	}
	if rows := list.container.Grid().Rows(); len(rows) != 0 {
		t.Errorf("stale result installed rows: %v", rows)
	}
}

func TestListStatePageRequest(t *testing.T) {
	list, queries := testList(t)
	list.Update(list.Load()().(PageResultMsg[api.City]))

	cmd, handled := list.Update(component.PageRequestMsg{Source: "test", Page: 2})
	if !handled || cmd == nil {
		t.Fatal("page request not handled")
	}
	cmd() // run the fetch
	last := (*queries)[len(*queries)-1]
	if last.Page != 2 {
		t.Errorf("fetched page %d, want 2", last.Page)
	}
}

func TestListStateSortResetsToFirstPage(t *testing.T) {
	list, queries := testList(t)
	list.query.Page = 3

	state := component.SortBy("name", component.SortDesc)
	cmd, handled := list.Update(component.SortRequestMsg{Source: "test", State: state})
	if !handled || cmd == nil {
		t.Fatal("sort request not handled")
	}
	cmd()
	last := (*queries)[len(*queries)-1]
	if last.Page != 1 {
		t.Errorf("sorted fetch used page %d, want 1", last.Page)
	}
	if got := last.Filters.Get("sort"); got != "name" {
		t.Errorf("sort filter = %q", got)
	}
	if got := last.Filters.Get("direction"); got != "desc" {
		t.Errorf("direction filter = %q", got)
	}
}

func TestListStateIgnoresOtherSources(t *testing.T) {
	list, _ := testList(t)
	if _, handled := list.Update(component.PageRequestMsg{Source: "other", Page: 2}); handled {
		t.Error("consumed a message for another list")
	}
	if _, handled := list.Update(PageResultMsg[api.City]{Source: "other", Gen: 1}); handled {
		t.Error("consumed a result for another list")
	}
}

func TestListStateError(t *testing.T) {
	grid := component.NewGrid("err", []component.Column[api.City]{
		{ID: "name", Key: "Name", Title: "Name"},
	})
	container := component.NewContainer("err", "Err", grid)
	wantErr := errors.New("backend down")
	list := newListState("err", container, 10,
		func(context.Context, api.ListQuery) (*api.Page[api.City], error) {
			return nil, wantErr
		})

	msg := list.Load()().(PageResultMsg[api.City])
	list.Update(msg)
	if !errors.Is(list.Err(), wantErr) {
		t.Errorf("Err() = %v, want %v", list.Err(), wantErr)
	}
	if list.Loading() {
		t.Error("still loading after failed load")
	}
}

func TestListStateFilterResetsPage(t *testing.T) {
	list, queries := testList(t)
	list.query.Page = 3
	list.SetFilter("name", "ber")

	list.Load()()
	last := (*queries)[len(*queries)-1]
	if last.Page != 1 {
		t.Errorf("filtered fetch used page %d, want 1", last.Page)
	}
	if got := last.Filters.Get("name"); got != "ber" {
		t.Errorf("name filter = %q", got)
	}
}
