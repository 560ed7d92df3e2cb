package component

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// containerFocus names the focusable regions of a container
type containerFocus int

const (
	focusGrid containerFocus = iota
	focusActions
	focusPagination
)

// Container combines a titled grid with row actions and an optional
// pagination bar. The bar appears only when the container was built
// with pagination and the current page metadata spans more than one
// page.
type Container[T any] struct {
	BaseComponent
	FocusState

	id         string
	title      string
	grid       *Grid[T]
	actions    *ActionMenu
	pagination *Pagination
	focus      containerFocus

	cycleKey key.Binding
}

// NewContainer wraps a grid with a title
func NewContainer[T any](id, title string, grid *Grid[T]) *Container[T] {
	return &Container[T]{
		BaseComponent: NewBaseComponent(),
		id:            id,
		title:         title,
		grid:          grid,
		focus:         focusGrid,
		cycleKey: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next region"),
		),
	}
}

// WithActions attaches a row action menu
func (c *Container[T]) WithActions(menu *ActionMenu) *Container[T] {
	c.actions = menu
	return c
}

// WithPagination attaches a pagination bar. Without one the container
// never renders paging controls, whatever metadata the page carries.
func (c *Container[T]) WithPagination(p *Pagination) *Container[T] {
	c.pagination = p
	return c
}

// Grid returns the wrapped grid
func (c *Container[T]) Grid() *Grid[T] {
	return c.grid
}

// Actions returns the attached action menu, nil when none
func (c *Container[T]) Actions() *ActionMenu {
	return c.actions
}

// Pagination returns the attached pagination bar, nil when none
func (c *Container[T]) Pagination() *Pagination {
	return c.pagination
}

// SetLoading propagates the in-flight state to grid and pagination
func (c *Container[T]) SetLoading(loading bool) {
	c.grid.SetLoading(loading)
	if c.pagination != nil {
		c.pagination.SetLoading(loading)
	}
}

// SetPage installs a loaded page of rows with its pager metadata
func (c *Container[T]) SetPage(rows []T, meta PageMeta) {
	c.grid.SetRows(rows)
	if c.pagination != nil {
		c.pagination.SetMeta(meta)
	}
}

// PaginationVisible reports whether the paging bar renders
func (c *Container[T]) PaginationVisible() bool {
	return c.pagination != nil && c.pagination.Visible()
}

// regions returns the focusable regions in cycle order
func (c *Container[T]) regions() []containerFocus {
	regions := []containerFocus{focusGrid}
	if c.actions != nil {
		regions = append(regions, focusActions)
	}
	if c.PaginationVisible() {
		regions = append(regions, focusPagination)
	}
	return regions
}

// applyFocus pushes the container focus down to the active region
func (c *Container[T]) applyFocus() {
	c.grid.FocusState.Blur()
	if c.actions != nil {
		c.actions.Blur()
	}
	if c.pagination != nil {
		c.pagination.FocusState.Blur()
	}
	if !c.Focused() {
		return
	}
	switch c.focus {
	case focusGrid:
		c.grid.FocusState.Focus()
	case focusActions:
		c.actions.FocusState.Focus()
	case focusPagination:
		c.pagination.FocusState.Focus()
	}
}

// Focus gives the container focus, landing on the grid
func (c *Container[T]) Focus() tea.Cmd {
	c.FocusState.Focus()
	c.focus = focusGrid
	c.applyFocus()
	return nil
}

// Blur removes focus from the container and every region
func (c *Container[T]) Blur() {
	c.FocusState.Blur()
	c.applyFocus()
}

// cycleFocus moves focus to the next available region
func (c *Container[T]) cycleFocus() {
	regions := c.regions()
	for i, region := range regions {
		if region == c.focus {
			c.focus = regions[(i+1)%len(regions)]
			c.applyFocus()
			return
		}
	}
	c.focus = focusGrid
	c.applyFocus()
}

// Init implements tea.Model
func (c *Container[T]) Init() tea.Cmd {
	return c.grid.Init()
}

// Update implements tea.Model
func (c *Container[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && c.Focused() {
		if key.Matches(keyMsg, c.cycleKey) {
			// an open dropdown captures tab like any other key
			if c.actions == nil || !c.actions.Open() {
				c.cycleFocus()
				return c, nil
			}
		}
	}

	var cmds []tea.Cmd
	model, cmd := c.grid.Update(msg)
	if grid, ok := model.(*Grid[T]); ok {
		c.grid = grid
	}
	cmds = append(cmds, cmd)
	if c.actions != nil {
		model, cmd := c.actions.Update(msg)
		if menu, ok := model.(*ActionMenu); ok {
			c.actions = menu
		}
		cmds = append(cmds, cmd)
	}
	if c.pagination != nil {
		model, cmd := c.pagination.Update(msg)
		if p, ok := model.(*Pagination); ok {
			c.pagination = p
		}
		cmds = append(cmds, cmd)
	}
	return c, tea.Batch(cmds...)
}

// View implements tea.Model
func (c *Container[T]) View() string {
	return c.ViewWidth(c.GetWidth())
}

// ViewWidth renders title, actions, grid and pagination top to bottom
func (c *Container[T]) ViewWidth(width int) string {
	if width <= 0 {
		width = 80
	}
	theme := c.Theme()

	var sections []string
	header := theme.Title.Render(c.title)
	if c.actions != nil {
		strip := c.actions.ViewWidth(width)
		gap := width - lipgloss.Width(header) - lipgloss.Width(strip)
		if gap > 1 && !c.actions.Open() {
			header = header + strings.Repeat(" ", gap) + strip
		} else {
			header = lipgloss.JoinVertical(lipgloss.Left, header, strip)
		}
	}
	sections = append(sections, header)
	sections = append(sections, c.grid.ViewWidth(width))
	if c.PaginationVisible() {
		sections = append(sections, c.pagination.ViewWidth(width))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
