package pages

import (
	"context"
	"net/url"
	"time"

	"tripdesk/internal/api"
	"tripdesk/internal/tui/component"

	tea "github.com/charmbracelet/bubbletea"
)

// fetchTimeout bounds a single page load
const fetchTimeout = 15 * time.Second

// PageResultMsg carries a loaded page back to its list
type PageResultMsg[T any] struct {
	// Source identifies the list that issued the fetch
	Source string
	// Gen is the fetch generation, used to drop stale responses
	Gen int
	// Page is the loaded page, nil on error
	Page *api.Page[T]
	// Err is the load failure, nil on success
	Err error
}

// listState drives one paginated resource table. It owns the query
// (page, per-page, sort, filters), the in-flight generation counter,
// and the container rendering the rows.
type listState[T any] struct {
	id        string
	container *component.Container[T]
	fetch     func(ctx context.Context, q api.ListQuery) (*api.Page[T], error)

	query   api.ListQuery
	filters url.Values
	sort    component.SortState

	// gen counts issued fetches; responses from older generations are
	// dropped so a slow page 2 can never overwrite page 3
	gen int
	err error
}

// newListState wires a container to a fetch function
func newListState[T any](
	id string,
	container *component.Container[T],
	perPage int,
	fetch func(ctx context.Context, q api.ListQuery) (*api.Page[T], error),
) *listState[T] {
	if perPage <= 0 {
		perPage = 10
	}
	return &listState[T]{
		id:        id,
		container: container,
		fetch:     fetch,
		query:     api.ListQuery{Page: 1, PerPage: perPage},
		filters:   url.Values{},
	}
}

// SetFilter updates one filter value; empty removes it. The next Load
// starts over at page 1.
func (l *listState[T]) SetFilter(key, value string) {
	if value == "" {
		l.filters.Del(key)
	} else {
		l.filters.Set(key, value)
	}
	l.query.Page = 1
}

// Load issues a fetch for the current query. Any in-flight response
// from an earlier Load is dropped when it arrives.
func (l *listState[T]) Load() tea.Cmd {
	l.gen++
	gen := l.gen
	l.err = nil
	l.container.SetLoading(true)

	query := l.query
	query.Filters = url.Values{}
	for k, v := range l.filters {
		query.Filters[k] = v
	}
	if primary := l.sort.Primary(); primary.Direction != component.SortNone {
		query.Filters.Set("sort", primary.Column)
		query.Filters.Set("direction", primary.Direction.String())
	}

	id := l.id
	fetch := l.fetch
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		page, err := fetch(ctx, query)
		return PageResultMsg[T]{Source: id, Gen: gen, Page: page, Err: err}
	}
}

// Reload refetches the current page
func (l *listState[T]) Reload() tea.Cmd {
	return l.Load()
}

// Update routes the list messages. The second return value reports
// whether the message was consumed.
func (l *listState[T]) Update(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case PageResultMsg[T]:
		if msg.Source != l.id {
			return nil, false
		}
		if msg.Gen != l.gen {
			// a newer fetch superseded this response
			return nil, true
		}
		l.container.SetLoading(false)
		if msg.Err != nil {
			l.err = msg.Err
			l.container.SetPage(nil, component.PageMeta{})
			return nil, true
		}
		l.err = nil
		l.query.Page = msg.Page.CurrentPage
		l.container.SetPage(msg.Page.Data, component.PageMeta{
			CurrentPage: msg.Page.CurrentPage,
			LastPage:    msg.Page.LastPage,
			PerPage:     msg.Page.PerPage,
			Total:       msg.Page.Total,
			From:        msg.Page.From,
			To:          msg.Page.To,
			NextURL:     msg.Page.NextURL(),
			PrevURL:     msg.Page.PrevURL(),
		})
		return nil, true
	case component.PageRequestMsg:
		if msg.Source != l.id {
			return nil, false
		}
		l.query.Page = msg.Page
		return l.Load(), true
	case component.SortRequestMsg:
		if msg.Source != l.id {
			return nil, false
		}
		l.sort = msg.State
		l.query.Page = 1
		return l.Load(), true
	}
	return nil, false
}

// Err returns the last load failure, nil when the last load succeeded
func (l *listState[T]) Err() error {
	return l.err
}

// Loading reports whether a fetch is in flight
func (l *listState[T]) Loading() bool {
	return l.container.Grid().Loading()
}
