// Package pages holds the screens of the admin TUI. Every resource
// screen is a paginated table over one backend collection, built from
// the shared component kit.
package pages

import (
	"log/slog"

	"tripdesk/internal/api"
	"tripdesk/internal/config"
	"tripdesk/internal/tui/themes"

	tea "github.com/charmbracelet/bubbletea"
)

// App carries the dependencies every page shares
type App struct {
	Client *api.Client
	Config *config.Config
	Log    *slog.Logger
}

// Page is a screen reachable from the sidebar
type Page interface {
	tea.Model
	// ID is the stable identifier used for navigation
	ID() string
	// Title is the human name shown in the sidebar and header
	Title() string
	// SetSize informs the page of its render area
	SetSize(width, height int)
	// Focus activates the page when it becomes the visible screen
	Focus() tea.Cmd
	// Blur deactivates the page
	Blur()
}

// StatusMsg surfaces a transient message in the shell's status bar
type StatusMsg struct {
	// Text is the message to show
	Text string
	// Err marks the message as an error
	Err bool
}

// Status builds a command that flashes a status-bar message
func Status(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

// StatusError builds a command that flashes an error in the status bar
func StatusError(err error) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: err.Error(), Err: true} }
}

// BasePage provides the shared page plumbing
type BasePage struct {
	app    *App
	id     string
	title  string
	width  int
	height int
	active bool
}

// NewBasePage creates the shared page state
func NewBasePage(app *App, id, title string) BasePage {
	return BasePage{app: app, id: id, title: title}
}

// App returns the shared dependencies
func (p *BasePage) App() *App {
	return p.app
}

// ID returns the page identifier
func (p *BasePage) ID() string {
	return p.id
}

// Title returns the page title
func (p *BasePage) Title() string {
	return p.title
}

// SetSize stores the page render area
func (p *BasePage) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// Width returns the page render width
func (p *BasePage) Width() int {
	return p.width
}

// Height returns the page render height
func (p *BasePage) Height() int {
	return p.height
}

// Active reports whether the page is the visible screen
func (p *BasePage) Active() bool {
	return p.active
}

// Focus marks the page active
func (p *BasePage) Focus() tea.Cmd {
	p.active = true
	return nil
}

// Blur marks the page inactive
func (p *BasePage) Blur() {
	p.active = false
}

// Theme returns the active theme
func (p *BasePage) Theme() *themes.Theme {
	return themes.Global().Active()
}
