package component

import (
	"fmt"
	"reflect"
	"strings"

	"tripdesk/internal/tui/themes"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Column describes one grid column. A column reads its cell value
// either from a dotted field path into the row struct or from a
// derived Value function. Derived columns must carry an explicit ID.
type Column[T any] struct {
	// Key is a dotted field path into the row type, e.g. "City.Name".
	// Doubles as the column identity when ID is empty.
	Key string
	// ID overrides the column identity. Required for derived columns.
	ID string
	// Title is the header label
	Title string
	// Value derives the cell value from the row. When set, Key is
	// ignored for cell rendering.
	Value func(row T, index int) string
	// Render optionally reformats the extracted value for display
	Render func(value string, row T, index int) string
	// Sortable marks the column as sortable
	Sortable bool
	// Width is a fixed column width in cells. Zero means flex.
	Width int
}

// Identity returns the column's identifier and panics when the column
// carries neither an ID nor a Key. A derived column without identity
// is a programming error caught at construction time.
func (c Column[T]) Identity() string {
	if c.ID != "" {
		return c.ID
	}
	if c.Key != "" {
		return c.Key
	}
	panic(fmt.Sprintf("grid: column %q has neither ID nor Key", c.Title))
}

// cell returns the rendered value for a row
func (c Column[T]) cell(row T, index int) string {
	var value string
	if c.Value != nil {
		value = c.Value(row, index)
	} else {
		value = fieldByPath(reflect.ValueOf(row), c.Key)
	}
	if c.Render != nil {
		return c.Render(value, row, index)
	}
	return value
}

// fieldByPath walks a dotted path through struct fields, matching
// segment names case-insensitively and dereferencing pointers along
// the way. Missing fields and nil pointers render as empty.
func fieldByPath(v reflect.Value, path string) string {
	for _, segment := range strings.Split(path, ".") {
		for v.Kind() == reflect.Pointer {
			if v.IsNil() {
				return ""
			}
			v = v.Elem()
		}
		if v.Kind() != reflect.Struct {
			return ""
		}
		v = v.FieldByNameFunc(func(name string) bool {
			return strings.EqualFold(name, segment)
		})
		if !v.IsValid() {
			return ""
		}
	}
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return ""
		}
		v = v.Elem()
	}
	if !v.IsValid() {
		return ""
	}
	return fmt.Sprintf("%v", v.Interface())
}

// SortRequestMsg reports that the user toggled a column sort
type SortRequestMsg struct {
	// Source identifies the grid that emitted the request
	Source string
	// State is the sort state after the toggle
	State SortState
}

// RowSelectedMsg reports that the user activated the cursor row
type RowSelectedMsg struct {
	// Source identifies the grid that emitted the selection
	Source string
	// Index is the row index within the current page
	Index int
}

// gridKeyMap holds the grid navigation bindings
type gridKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Sort   key.Binding
}

func defaultGridKeys() gridKeyMap {
	return gridKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "row up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "row down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select row"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "cycle sort"),
		),
	}
}

// Grid renders rows of T under a sortable header. While loading it
// shows a spinner in place of the rows, and an empty result shows a
// single placeholder row.
type Grid[T any] struct {
	BaseComponent
	FocusState

	id      string
	columns []Column[T]
	rows    []T
	cursor  int
	sort    SortState
	loading bool
	empty   string
	spin    spinner.Model
	keys    gridKeyMap

	// sortCursor walks the sortable columns for the "s" key
	sortCursor int
}

// NewGrid creates a grid. Column identities are validated eagerly so
// a misconfigured column set fails at construction, not first render.
func NewGrid[T any](id string, columns []Column[T]) *Grid[T] {
	seen := make(map[string]struct{}, len(columns))
	for _, col := range columns {
		identity := col.Identity()
		if _, dup := seen[identity]; dup {
			panic(fmt.Sprintf("grid: duplicate column identity %q", identity))
		}
		seen[identity] = struct{}{}
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = themes.Global().Active().Spinner
	return &Grid[T]{
		BaseComponent: NewBaseComponent(),
		id:            id,
		columns:       columns,
		empty:         "No records found",
		spin:          sp,
		keys:          defaultGridKeys(),
	}
}

// WithEmptyText sets the placeholder shown when no rows exist
func (g *Grid[T]) WithEmptyText(text string) *Grid[T] {
	g.empty = text
	return g
}

// WithSort sets the initial sort state
func (g *Grid[T]) WithSort(state SortState) *Grid[T] {
	g.sort = state
	return g
}

// SetRows replaces the grid rows and clamps the cursor
func (g *Grid[T]) SetRows(rows []T) {
	g.rows = rows
	if len(rows) == 0 {
		g.cursor = 0
	} else {
		g.cursor = clamp(g.cursor, 0, len(rows)-1)
	}
}

// Rows returns the current rows
func (g *Grid[T]) Rows() []T {
	return g.rows
}

// SetLoading toggles the in-flight state
func (g *Grid[T]) SetLoading(loading bool) {
	g.loading = loading
}

// Loading returns whether a load is in flight
func (g *Grid[T]) Loading() bool {
	return g.loading
}

// Sort returns the current sort state
func (g *Grid[T]) Sort() SortState {
	return g.sort
}

// SetSort replaces the sort state
func (g *Grid[T]) SetSort(state SortState) {
	g.sort = state
}

// Cursor returns the cursor row index
func (g *Grid[T]) Cursor() int {
	return g.cursor
}

// CursorRow returns the row under the cursor
func (g *Grid[T]) CursorRow() (T, bool) {
	var zero T
	if g.loading || g.cursor < 0 || g.cursor >= len(g.rows) {
		return zero, false
	}
	return g.rows[g.cursor], true
}

// ToggleSort advances the sort cycle for a column and returns the
// command announcing the new state. Non-sortable and unknown columns
// are a no-op.
func (g *Grid[T]) ToggleSort(identity string) tea.Cmd {
	var target *Column[T]
	for i := range g.columns {
		if g.columns[i].Identity() == identity {
			target = &g.columns[i]
			break
		}
	}
	if target == nil || !target.Sortable {
		return nil
	}
	g.sort = g.sort.ToggleSingle(identity)
	msg := SortRequestMsg{Source: g.id, State: g.sort}
	return func() tea.Msg { return msg }
}

// sortableColumns returns the identities of all sortable columns
func (g *Grid[T]) sortableColumns() []string {
	var ids []string
	for _, col := range g.columns {
		if col.Sortable {
			ids = append(ids, col.Identity())
		}
	}
	return ids
}

// cycleSort toggles the current sortable column, moving to the next
// sortable column once the active one cycles back to unsorted
func (g *Grid[T]) cycleSort() tea.Cmd {
	ids := g.sortableColumns()
	if len(ids) == 0 {
		return nil
	}
	g.sortCursor = clamp(g.sortCursor, 0, len(ids)-1)
	id := ids[g.sortCursor]
	cmd := g.ToggleSort(id)
	if !g.sort.Active() {
		g.sortCursor = (g.sortCursor + 1) % len(ids)
	}
	return cmd
}

// Init implements tea.Model
func (g *Grid[T]) Init() tea.Cmd {
	return g.spin.Tick
}

// Update implements tea.Model
func (g *Grid[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !g.loading {
			return g, nil
		}
		var cmd tea.Cmd
		g.spin, cmd = g.spin.Update(msg)
		return g, cmd
	case tea.KeyMsg:
		if !g.Focused() || g.loading {
			return g, nil
		}
		switch {
		case key.Matches(msg, g.keys.Up):
			g.cursor = clamp(g.cursor-1, 0, max(len(g.rows)-1, 0))
		case key.Matches(msg, g.keys.Down):
			g.cursor = clamp(g.cursor+1, 0, max(len(g.rows)-1, 0))
		case key.Matches(msg, g.keys.Select):
			if len(g.rows) > 0 {
				selected := RowSelectedMsg{Source: g.id, Index: g.cursor}
				return g, func() tea.Msg { return selected }
			}
		case key.Matches(msg, g.keys.Sort):
			return g, g.cycleSort()
		}
	}
	return g, nil
}

// View implements tea.Model
func (g *Grid[T]) View() string {
	return g.ViewWidth(g.GetWidth())
}

// columnWidths distributes the render width across columns. Fixed
// widths are honored first, the rest flexes evenly.
func (g *Grid[T]) columnWidths(width int) []int {
	const gap = 2
	widths := make([]int, len(g.columns))
	if len(g.columns) == 0 {
		return widths
	}
	avail := width - gap*(len(g.columns)-1)
	flex := 0
	for i, col := range g.columns {
		if col.Width > 0 {
			widths[i] = col.Width
			avail -= col.Width
		} else {
			flex++
		}
	}
	if flex > 0 {
		share := max(avail/flex, 4)
		for i := range widths {
			if widths[i] == 0 {
				widths[i] = share
			}
		}
	}
	return widths
}

// ViewWidth renders the grid at the given width
func (g *Grid[T]) ViewWidth(width int) string {
	if width <= 0 {
		width = 80
	}
	theme := g.Theme()
	widths := g.columnWidths(width)

	headers := make([]string, len(g.columns))
	for i, col := range g.columns {
		label := col.Title
		style := theme.TableHeader
		if col.Sortable {
			dir := g.sort.DirectionFor(col.Identity())
			label = label + " " + dir.Icon()
			if dir != SortNone {
				style = theme.TableHeaderSorted
			}
		}
		headers[i] = style.Render(pad(label, widths[i]))
	}

	var b strings.Builder
	b.WriteString(strings.Join(headers, "  "))
	b.WriteString("\n")
	b.WriteString(theme.TableBorder.Render(strings.Repeat("─", width)))
	b.WriteString("\n")

	switch {
	case g.loading:
		b.WriteString(theme.TableEmpty.Render(g.spin.View() + " Loading…"))
	case len(g.rows) == 0:
		b.WriteString(theme.TableEmpty.Render(g.empty))
	default:
		lines := make([]string, 0, len(g.rows))
		for i, row := range g.rows {
			cells := make([]string, len(g.columns))
			for c, col := range g.columns {
				cells[c] = pad(col.cell(row, i), widths[c])
			}
			line := strings.Join(cells, "  ")
			style := theme.TableRow
			if i%2 == 1 {
				style = theme.TableRowAlt
			}
			if g.Focused() && i == g.cursor {
				style = theme.TableRowSelected
			}
			lines = append(lines, style.Render(line))
		}
		b.WriteString(strings.Join(lines, "\n"))
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(b.String())
}
