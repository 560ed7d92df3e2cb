package component

import (
	"strings"

	"tripdesk/internal/tui/themes"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// compactThreshold is the largest action count still rendered fully
// inline. Above it the menu collapses into two inline actions plus an
// overflow dropdown.
const compactThreshold = 3

// ActionVariant selects the visual weight of an action
type ActionVariant int

const (
	VariantPrimary ActionVariant = iota
	VariantSecondary
	VariantDanger
	VariantSuccess
)

// Action describes one row action
type Action struct {
	// ID identifies the action in ActionInvokedMsg
	ID string
	// Label is the visible name
	Label string
	// Icon is the glyph rendered next to the label
	Icon string
	// Variant selects the styling
	Variant ActionVariant
	// Disabled actions render but never fire
	Disabled bool
}

// Danger reports whether the action is destructive
func (a Action) Danger() bool {
	return a.Variant == VariantDanger
}

// WithDisabled returns a copy of the action with the disabled flag set
func (a Action) WithDisabled(disabled bool) Action {
	a.Disabled = disabled
	return a
}

// ViewAction is the standard "open details" action
func ViewAction() Action {
	return Action{ID: "view", Label: "View", Icon: themes.IconEye, Variant: VariantPrimary}
}

// EditAction is the standard "edit record" action
func EditAction() Action {
	return Action{ID: "edit", Label: "Edit", Icon: themes.IconPencil, Variant: VariantSecondary}
}

// DeleteAction is the standard "delete record" action
func DeleteAction() Action {
	return Action{ID: "delete", Label: "Delete", Icon: themes.IconTrash, Variant: VariantDanger}
}

// CustomAction builds an action with an arbitrary id and label
func CustomAction(id, label, icon string) Action {
	return Action{ID: id, Label: label, Icon: icon, Variant: VariantSecondary}
}

// ActionInvokedMsg reports that the user picked a row action
type ActionInvokedMsg struct {
	// Source identifies the menu that emitted the action
	Source string
	// Action is the picked action's ID
	Action string
}

// actionMenuKeyMap holds the menu bindings
type actionMenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Pick   key.Binding
	Toggle key.Binding
	Close  key.Binding
}

func defaultActionMenuKeys() actionMenuKeyMap {
	return actionMenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous action"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next action"),
		),
		Pick: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run action"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "more actions"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close menu"),
		),
	}
}

// ActionMenu renders the per-row action strip. Up to three actions
// show inline. With more, the first two stay inline and the rest move
// behind an overflow dropdown.
type ActionMenu struct {
	BaseComponent
	FocusState

	id      string
	actions []Action
	keys    actionMenuKeyMap

	// cursor indexes the focused inline slot, overflow trigger included
	cursor int
	// open tracks the overflow dropdown
	open bool
	// overflowCursor indexes the focused overflow item
	overflowCursor int
}

// NewActionMenu creates an action menu
func NewActionMenu(id string, actions ...Action) *ActionMenu {
	return &ActionMenu{
		BaseComponent: NewBaseComponent(),
		id:            id,
		actions:       actions,
		keys:          defaultActionMenuKeys(),
	}
}

// Compact reports whether the menu collapses into an overflow dropdown
func (m *ActionMenu) Compact() bool {
	return len(m.actions) > compactThreshold
}

// Inline returns the actions rendered directly in the strip
func (m *ActionMenu) Inline() []Action {
	if m.Compact() {
		return m.actions[:2]
	}
	return m.actions
}

// Overflow returns the actions hidden behind the dropdown
func (m *ActionMenu) Overflow() []Action {
	if m.Compact() {
		return m.actions[2:]
	}
	return nil
}

// Open reports whether the overflow dropdown is showing
func (m *ActionMenu) Open() bool {
	return m.open
}

// Blur closes the dropdown along with removing focus
func (m *ActionMenu) Blur() {
	m.FocusState.Blur()
	m.open = false
}

// invoke emits the action at the given index. Disabled actions render
// in the strip but never fire.
func (m *ActionMenu) invoke(action Action) tea.Cmd {
	if action.Disabled {
		return nil
	}
	m.open = false
	msg := ActionInvokedMsg{Source: m.id, Action: action.ID}
	return func() tea.Msg { return msg }
}

// Init implements tea.Model
func (m *ActionMenu) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *ActionMenu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.Focused() || len(m.actions) == 0 {
		return m, nil
	}

	if m.open {
		overflow := m.Overflow()
		switch {
		case key.Matches(keyMsg, m.keys.Up):
			m.overflowCursor = clamp(m.overflowCursor-1, 0, len(overflow)-1)
		case key.Matches(keyMsg, m.keys.Down):
			m.overflowCursor = clamp(m.overflowCursor+1, 0, len(overflow)-1)
		case key.Matches(keyMsg, m.keys.Pick):
			return m, m.invoke(overflow[m.overflowCursor])
		case key.Matches(keyMsg, m.keys.Close), key.Matches(keyMsg, m.keys.Toggle):
			m.open = false
		}
		return m, nil
	}

	inline := m.Inline()
	slots := len(inline)
	if m.Compact() {
		slots++ // the overflow trigger
	}
	switch {
	case key.Matches(keyMsg, m.keys.Up):
		m.cursor = clamp(m.cursor-1, 0, slots-1)
	case key.Matches(keyMsg, m.keys.Down):
		m.cursor = clamp(m.cursor+1, 0, slots-1)
	case key.Matches(keyMsg, m.keys.Pick):
		if m.cursor < len(inline) {
			return m, m.invoke(inline[m.cursor])
		}
		m.open = true
		m.overflowCursor = 0
	case key.Matches(keyMsg, m.keys.Toggle):
		if m.Compact() {
			m.open = true
			m.overflowCursor = 0
		}
	}
	return m, nil
}

// View implements tea.Model
func (m *ActionMenu) View() string {
	return m.ViewWidth(m.GetWidth())
}

// ViewWidth renders the action strip, with the dropdown below it when
// open
func (m *ActionMenu) ViewWidth(width int) string {
	if len(m.actions) == 0 {
		return ""
	}
	theme := m.Theme()

	renderItem := func(a Action, focused bool) string {
		label := a.Label
		if a.Icon != "" {
			label = a.Icon + " " + label
		}
		style := theme.MenuItem
		switch a.Variant {
		case VariantDanger:
			style = style.Foreground(theme.ButtonDanger.GetBackground())
		case VariantSuccess:
			style = style.Foreground(theme.ButtonSuccess.GetBackground())
		}
		if a.Disabled {
			style = theme.PageDisabled
		} else if m.Focused() && focused {
			style = theme.MenuItemSelected
		}
		return style.Render(label)
	}

	var cells []string
	inline := m.Inline()
	for i, a := range inline {
		cells = append(cells, renderItem(a, !m.open && i == m.cursor))
	}
	if m.Compact() {
		trigger := theme.MenuItem
		if m.Focused() && (m.open || m.cursor == len(inline)) {
			trigger = theme.MenuItemSelected
		}
		cells = append(cells, trigger.Render(themes.IconDots))
	}
	strip := strings.Join(cells, theme.PageCaption.Render(" "+themes.IconPipe+" "))

	if !m.open {
		return strip
	}

	overflow := m.Overflow()
	lines := make([]string, len(overflow))
	for i, a := range overflow {
		lines[i] = renderItem(a, i == m.overflowCursor)
	}
	dropdown := theme.MenuContainer.Render(strings.Join(lines, "\n"))
	return lipgloss.JoinVertical(lipgloss.Left, strip, dropdown)
}
