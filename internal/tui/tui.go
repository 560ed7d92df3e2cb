// Package tui hosts the terminal UI shell: a sidebar of pages, the
// active page, and a status bar.
package tui

import (
	"fmt"
	"strings"
	"time"

	"tripdesk/internal/tui/pages"
	"tripdesk/internal/tui/themes"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// sidebarWidth is the fixed width of the navigation column
const sidebarWidth = 22

// statusClearAfter is how long a status flash stays visible
const statusClearAfter = 5 * time.Second

// keyMap holds the shell-level bindings
type keyMap struct {
	NextPage key.Binding
	PrevPage key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		NextPage: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "previous page"),
		),
		Help: key.NewBinding(
			key.WithKeys("ctrl+h"),
			key.WithHelp("ctrl+h", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextPage, k.PrevPage, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextPage, k.PrevPage},
		{k.Help, k.Quit},
	}
}

// statusClearMsg clears an expired status flash
type statusClearMsg struct{ seq int }

// Model is the root TUI model
type Model struct {
	app   *pages.App
	pages []pages.Page
	keys  keyMap
	help  help.Model

	active    int
	width     int
	height    int
	ready     bool
	status    string
	statusErr bool
	statusSeq int
}

// New builds the shell with every page registered
func New(app *pages.App) *Model {
	return &Model{
		app:   app,
		pages: pages.All(app),
		keys:  defaultKeys(),
		help:  help.New(),
	}
}

// Run starts the program on the alternate screen and blocks until it
// exits
func Run(app *pages.App) error {
	program := tea.NewProgram(New(app), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.pages)+1)
	for _, page := range m.pages {
		cmds = append(cmds, page.Init())
	}
	cmds = append(cmds, m.pages[m.active].Focus())
	return tea.Batch(cmds...)
}

// switchPage blurs the active page and focuses the one at index
func (m *Model) switchPage(index int) tea.Cmd {
	if index < 0 {
		index = len(m.pages) - 1
	}
	if index >= len(m.pages) {
		index = 0
	}
	if index == m.active {
		return nil
	}
	m.pages[m.active].Blur()
	m.active = index
	m.resizeActive()
	return m.pages[m.active].Focus()
}

// resizeActive pushes the content area size to the active page
func (m *Model) resizeActive() {
	contentWidth := m.width - sidebarWidth - 3
	contentHeight := m.height - 2
	if contentWidth < 20 {
		contentWidth = 20
	}
	if contentHeight < 5 {
		contentHeight = 5
	}
	m.pages[m.active].SetSize(contentWidth, contentHeight)
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		for _, page := range m.pages {
			page.SetSize(msg.Width-sidebarWidth-3, msg.Height-2)
		}
		m.resizeActive()
		return m, nil
	case pages.StatusMsg:
		m.status = msg.Text
		m.statusErr = msg.Err
		m.statusSeq++
		seq := m.statusSeq
		return m, tea.Tick(statusClearAfter, func(time.Time) tea.Msg {
			return statusClearMsg{seq: seq}
		})
	case statusClearMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
			m.statusErr = false
		}
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.NextPage):
			return m, m.switchPage(m.active + 1)
		case key.Matches(msg, m.keys.PrevPage):
			return m, m.switchPage(m.active - 1)
		}
	}

	// everything else belongs to the active page; background pages
	// still receive their own fetch results
	var cmds []tea.Cmd
	for i, page := range m.pages {
		if _, isKey := msg.(tea.KeyMsg); isKey && i != m.active {
			continue
		}
		model, cmd := page.Update(msg)
		if updated, ok := model.(pages.Page); ok {
			m.pages[i] = updated
		}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, tea.Batch(cmds...)
}

// sidebar renders the page list
func (m *Model) sidebar() string {
	theme := themes.Global().Active()
	lines := make([]string, 0, len(m.pages)+2)
	lines = append(lines, theme.Title.Render("tripdesk"), "")
	for i, page := range m.pages {
		style := theme.SidebarItem
		marker := "  "
		if i == m.active {
			style = theme.SidebarItemActive
			marker = themes.IconChevronRight + " "
		}
		lines = append(lines, style.Render(marker+page.Title()))
	}
	return lipgloss.NewStyle().
		Width(sidebarWidth).
		Height(m.height - 2).
		Render(strings.Join(lines, "\n"))
}

// statusBar renders the bottom line: status flash or key help
func (m *Model) statusBar() string {
	theme := themes.Global().Active()
	if m.status != "" {
		style := theme.StatusBar
		if m.statusErr {
			style = theme.Error
		}
		return style.Render(truncateLine(m.status, m.width))
	}
	return m.help.View(m.keys)
}

// truncateLine cuts a status line to the terminal width
func truncateLine(s string, width int) string {
	if width <= 0 || lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}

// View implements tea.Model
func (m *Model) View() string {
	if !m.ready {
		return "Starting…"
	}
	theme := themes.Global().Active()

	divider := lipgloss.NewStyle().
		Height(m.height - 2).
		Render(theme.TableBorder.Render(strings.Repeat("│\n", max(m.height-3, 1)) + "│"))

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.sidebar(),
		divider,
		lipgloss.NewStyle().Padding(0, 1).Render(m.pages[m.active].View()),
	)
	return lipgloss.JoinVertical(lipgloss.Left, body, m.statusBar())
}
