package component

import (
	"fmt"
	"strconv"
	"strings"

	"tripdesk/internal/tui/themes"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PageEllipsis marks a gap in a page window
const PageEllipsis = -1

// PageMeta describes one page of a server-paginated collection. It
// mirrors the pager envelope the API wraps around every list response.
type PageMeta struct {
	CurrentPage int
	LastPage    int
	PerPage     int
	Total       int
	From        int
	To          int
	// NextURL and PrevURL are the pager links from the envelope. They
	// back CanNext/CanPrev when the page counts are absent.
	NextURL string
	PrevURL string
}

// CanPrev reports whether a previous page exists
func (m PageMeta) CanPrev() bool {
	if m.CurrentPage > 0 {
		return m.CurrentPage > 1
	}
	return m.PrevURL != ""
}

// CanNext reports whether a next page exists
func (m PageMeta) CanNext() bool {
	if m.LastPage > 0 {
		return m.CurrentPage < m.LastPage
	}
	return m.NextURL != ""
}

// HasTotals reports whether the meta carries enough information to
// render a "showing X to Y of Z" caption
func (m PageMeta) HasTotals() bool {
	return m.Total > 0 && m.From > 0 && m.To >= m.From
}

// Valid reports whether a page number is an acceptable navigation
// target. Out-of-range pages and the current page are not.
func (m PageMeta) Valid(page int) bool {
	return page >= 1 && page <= m.LastPage && page != m.CurrentPage
}

// PageWindow returns the page numbers to render for the given current
// page, with PageEllipsis marking collapsed gaps. The first and last
// page are always present, plus radius pages either side of current.
// The same inputs always produce the same window.
func PageWindow(current, total, radius int) []int {
	if total <= 0 {
		return nil
	}
	if radius < 0 {
		radius = 0
	}
	current = clamp(current, 1, total)

	lo := current - radius
	hi := current + radius
	if lo < 1 {
		lo = 1
	}
	if hi > total {
		hi = total
	}

	window := make([]int, 0, hi-lo+5)
	if lo > 1 {
		window = append(window, 1)
		if lo > 2 {
			window = append(window, PageEllipsis)
		}
	}
	for p := lo; p <= hi; p++ {
		window = append(window, p)
	}
	if hi < total {
		if hi < total-1 {
			window = append(window, PageEllipsis)
		}
		window = append(window, total)
	}
	return window
}

// PageRequestMsg asks the owning page to load a different page
type PageRequestMsg struct {
	// Source identifies the pagination component that emitted the request
	Source string
	// Page is the requested page number, already validated
	Page int
}

// paginationKeyMap holds the navigation bindings
type paginationKeyMap struct {
	Prev  key.Binding
	Next  key.Binding
	First key.Binding
	Last  key.Binding
}

func defaultPaginationKeys() paginationKeyMap {
	return paginationKeyMap{
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev page"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next page"),
		),
		First: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "first page"),
		),
		Last: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "last page"),
		),
	}
}

// Pagination renders a page window with prev/next controls and a
// range caption. It hides itself when only one page exists and
// ignores navigation while a load is in flight.
type Pagination struct {
	BaseComponent
	FocusState

	id      string
	meta    PageMeta
	radius  int
	loading bool
	keys    paginationKeyMap
}

// NewPagination creates a pagination component. The id tags every
// PageRequestMsg the component emits.
func NewPagination(id string) *Pagination {
	return &Pagination{
		BaseComponent: NewBaseComponent(),
		id:            id,
		radius:        2,
		keys:          defaultPaginationKeys(),
	}
}

// WithRadius sets how many pages show either side of the current page
func (p *Pagination) WithRadius(radius int) *Pagination {
	if radius >= 0 {
		p.radius = radius
	}
	return p
}

// SetMeta updates the pager state after a page load
func (p *Pagination) SetMeta(meta PageMeta) {
	p.meta = meta
}

// Meta returns the current pager state
func (p *Pagination) Meta() PageMeta {
	return p.meta
}

// SetLoading toggles the in-flight state. While loading all
// navigation is ignored.
func (p *Pagination) SetLoading(loading bool) {
	p.loading = loading
}

// Loading returns whether a page load is in flight
func (p *Pagination) Loading() bool {
	return p.loading
}

// Visible reports whether the component renders at all
func (p *Pagination) Visible() bool {
	return p.meta.LastPage > 1
}

// Request validates a page change and returns the command emitting it.
// Invalid targets, including the current page, return nil.
func (p *Pagination) Request(page int) tea.Cmd {
	if p.loading || !p.meta.Valid(page) {
		return nil
	}
	msg := PageRequestMsg{Source: p.id, Page: page}
	return func() tea.Msg { return msg }
}

// Init implements tea.Model
func (p *Pagination) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (p *Pagination) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !p.Focused() {
		return p, nil
	}
	switch {
	case key.Matches(keyMsg, p.keys.Prev):
		return p, p.Request(p.meta.CurrentPage - 1)
	case key.Matches(keyMsg, p.keys.Next):
		return p, p.Request(p.meta.CurrentPage + 1)
	case key.Matches(keyMsg, p.keys.First):
		return p, p.Request(1)
	case key.Matches(keyMsg, p.keys.Last):
		return p, p.Request(p.meta.LastPage)
	}
	return p, nil
}

// View implements tea.Model
func (p *Pagination) View() string {
	return p.ViewWidth(p.GetWidth())
}

// ViewWidth renders the pagination bar at the given width
func (p *Pagination) ViewWidth(width int) string {
	if !p.Visible() {
		return ""
	}
	theme := p.Theme()

	var cells []string

	prevStyle := theme.PageInactive
	if !p.meta.CanPrev() || p.loading {
		prevStyle = theme.PageDisabled
	}
	cells = append(cells, prevStyle.Render(themes.IconChevronLeft))

	for _, page := range PageWindow(p.meta.CurrentPage, p.meta.LastPage, p.radius) {
		if page == PageEllipsis {
			cells = append(cells, theme.PageDisabled.Render(themes.IconEllipsis))
			continue
		}
		style := theme.PageInactive
		if page == p.meta.CurrentPage {
			style = theme.PageActive
		} else if p.loading {
			style = theme.PageDisabled
		}
		cells = append(cells, style.Render(strconv.Itoa(page)))
	}

	nextStyle := theme.PageInactive
	if !p.meta.CanNext() || p.loading {
		nextStyle = theme.PageDisabled
	}
	cells = append(cells, nextStyle.Render(themes.IconChevronRight))

	bar := strings.Join(cells, " ")
	if !p.meta.HasTotals() {
		return bar
	}

	caption := theme.PageCaption.Render(fmt.Sprintf(
		"showing %d to %d of %d", p.meta.From, p.meta.To, p.meta.Total,
	))
	if width <= 0 || lipgloss.Width(bar)+lipgloss.Width(caption)+2 <= width {
		gap := "  "
		if width > 0 {
			pad := width - lipgloss.Width(bar) - lipgloss.Width(caption)
			if pad > 2 {
				gap = strings.Repeat(" ", pad)
			}
		}
		return bar + gap + caption
	}
	return bar
}
