package component

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmResultMsg reports the outcome of a confirm dialog
type ConfirmResultMsg struct {
	// Source identifies the dialog that emitted the result
	Source string
	// Confirmed is true when the user accepted
	Confirmed bool
}

// confirmKeyMap holds the dialog bindings
type confirmKeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Pick    key.Binding
	Dismiss key.Binding
}

func defaultConfirmKeys() confirmKeyMap {
	return confirmKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous choice"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next choice"),
		),
		Pick: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "choose"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// Confirm is a modal yes/no dialog. Destructive dialogs default the
// cursor to the safe choice.
type Confirm struct {
	BaseComponent
	FocusState

	id      string
	title   string
	message string
	yes     string
	no      string
	danger  bool
	cursor  int // 0 = confirm, 1 = cancel
	keys    confirmKeyMap
}

// NewConfirm creates a confirm dialog
func NewConfirm(id, title, message string) *Confirm {
	return &Confirm{
		BaseComponent: NewBaseComponent(),
		id:            id,
		title:         title,
		message:       message,
		yes:           "Confirm",
		no:            "Cancel",
		keys:          defaultConfirmKeys(),
	}
}

// WithLabels overrides the button labels
func (c *Confirm) WithLabels(yes, no string) *Confirm {
	c.yes = yes
	c.no = no
	return c
}

// WithDanger styles the confirm button destructively and starts the
// cursor on cancel
func (c *Confirm) WithDanger() *Confirm {
	c.danger = true
	c.cursor = 1
	return c
}

// result emits the dialog outcome
func (c *Confirm) result(confirmed bool) tea.Cmd {
	msg := ConfirmResultMsg{Source: c.id, Confirmed: confirmed}
	return func() tea.Msg { return msg }
}

// Init implements tea.Model
func (c *Confirm) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (c *Confirm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !c.Focused() {
		return c, nil
	}
	switch {
	case key.Matches(keyMsg, c.keys.Left):
		c.cursor = 0
	case key.Matches(keyMsg, c.keys.Right):
		c.cursor = 1
	case key.Matches(keyMsg, c.keys.Pick):
		return c, c.result(c.cursor == 0)
	case key.Matches(keyMsg, c.keys.Dismiss):
		return c, c.result(false)
	}
	return c, nil
}

// View implements tea.Model
func (c *Confirm) View() string {
	return c.ViewWidth(c.GetWidth())
}

// ViewWidth renders the dialog box
func (c *Confirm) ViewWidth(width int) string {
	theme := c.Theme()

	yesStyle := theme.ButtonPrimary
	if c.danger {
		yesStyle = theme.ButtonDanger
	}
	noStyle := theme.ButtonSecondary
	if c.cursor == 0 {
		noStyle = noStyle.Faint(true)
	} else {
		yesStyle = yesStyle.Faint(true)
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		yesStyle.Render(c.yes),
		"  ",
		noStyle.Render(c.no),
	)
	body := lipgloss.JoinVertical(lipgloss.Left,
		theme.ModalTitle.Render(c.title),
		"",
		c.message,
		"",
		buttons,
	)
	box := theme.ModalContainer.Render(body)
	if width > 0 {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, box)
	}
	return box
}
