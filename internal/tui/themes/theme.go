package themes

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Theme contains all the styles for the TUI components
type Theme struct {
	// Name is the theme identifier
	Name string

	// Palette is the color palette for this theme
	Palette ColorPalette

	// Base styles
	Base     lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style

	// Status styles
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	// Interactive styles
	Focused  lipgloss.Style
	Blurred  lipgloss.Style
	Selected lipgloss.Style
	Disabled lipgloss.Style

	// Button styles
	ButtonPrimary   lipgloss.Style
	ButtonSecondary lipgloss.Style
	ButtonDanger    lipgloss.Style
	ButtonSuccess   lipgloss.Style

	// Table styles
	TableHeader       lipgloss.Style
	TableHeaderSorted lipgloss.Style
	TableRow          lipgloss.Style
	TableRowAlt       lipgloss.Style
	TableRowSelected  lipgloss.Style
	TableBorder       lipgloss.Style
	TableEmpty        lipgloss.Style

	// Pagination styles
	PageActive   lipgloss.Style
	PageInactive lipgloss.Style
	PageDisabled lipgloss.Style
	PageCaption  lipgloss.Style

	// Action menu styles
	MenuItem         lipgloss.Style
	MenuItemSelected lipgloss.Style
	MenuContainer    lipgloss.Style

	// Modal styles
	ModalContainer lipgloss.Style
	ModalTitle     lipgloss.Style

	// Shell styles
	SidebarItem       lipgloss.Style
	SidebarItemActive lipgloss.Style
	StatusBar         lipgloss.Style

	// Help styles
	Help     lipgloss.Style
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	// Spinner style
	Spinner lipgloss.Style
}

// Clone returns a copy of the theme
func (t *Theme) Clone() *Theme {
	clone := *t
	return &clone
}

// WithPalette returns a copy of the theme rebuilt from the given palette
func (t *Theme) WithPalette(p ColorPalette) *Theme {
	clone := t.Clone()
	clone.Palette = p
	clone.rebuildStyles()
	return clone
}

func (t *Theme) rebuildStyles() {
	p := t.Palette

	t.Base = lipgloss.NewStyle().Foreground(p.Text)
	t.Title = lipgloss.NewStyle().Foreground(p.Primary).Bold(true)
	t.Subtitle = lipgloss.NewStyle().Foreground(p.Secondary).Bold(true)

	t.Success = lipgloss.NewStyle().Foreground(p.Success).Bold(true)
	t.Error = lipgloss.NewStyle().Foreground(p.Error).Bold(true)
	t.Warning = lipgloss.NewStyle().Foreground(p.Warning).Bold(true)
	t.Info = lipgloss.NewStyle().Foreground(p.Info)

	t.Focused = lipgloss.NewStyle().Foreground(p.Primary).Bold(true)
	t.Blurred = lipgloss.NewStyle().Foreground(p.TextMuted)
	t.Selected = lipgloss.NewStyle().Foreground(p.Primary).Background(p.Selection)
	t.Disabled = lipgloss.NewStyle().Foreground(p.TextMuted).Faint(true)

	t.ButtonPrimary = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(p.Primary).
		Padding(0, 2).
		Bold(true)
	t.ButtonSecondary = lipgloss.NewStyle().
		Foreground(p.Text).
		Background(p.BackgroundAlt).
		Padding(0, 2)
	t.ButtonDanger = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(p.Error).
		Padding(0, 2).
		Bold(true)
	t.ButtonSuccess = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(p.Success).
		Padding(0, 2).
		Bold(true)

	t.TableHeader = lipgloss.NewStyle().Foreground(p.Secondary).Bold(true)
	t.TableHeaderSorted = lipgloss.NewStyle().Foreground(p.Primary).Bold(true)
	t.TableRow = lipgloss.NewStyle().Foreground(p.Text)
	t.TableRowAlt = lipgloss.NewStyle().Foreground(p.Text).Background(p.BackgroundAlt)
	t.TableRowSelected = lipgloss.NewStyle().Foreground(p.Primary).Background(p.Selection).Bold(true)
	t.TableBorder = lipgloss.NewStyle().Foreground(p.Border)
	t.TableEmpty = lipgloss.NewStyle().Foreground(p.TextMuted).Italic(true)

	t.PageActive = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(p.Primary).Padding(0, 1).Bold(true)
	t.PageInactive = lipgloss.NewStyle().Foreground(p.Text).Padding(0, 1)
	t.PageDisabled = lipgloss.NewStyle().Foreground(p.TextMuted).Faint(true).Padding(0, 1)
	t.PageCaption = lipgloss.NewStyle().Foreground(p.TextMuted)

	t.MenuItem = lipgloss.NewStyle().Foreground(p.Text).Padding(0, 1)
	t.MenuItemSelected = lipgloss.NewStyle().Foreground(p.Primary).Background(p.Selection).Padding(0, 1)
	t.MenuContainer = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 1)

	t.ModalContainer = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.BorderFocus).
		Padding(1, 2)
	t.ModalTitle = lipgloss.NewStyle().Foreground(p.Primary).Bold(true)

	t.SidebarItem = lipgloss.NewStyle().Foreground(p.TextMuted).Padding(0, 1)
	t.SidebarItemActive = lipgloss.NewStyle().Foreground(p.Primary).Background(p.Selection).Padding(0, 1).Bold(true)
	t.StatusBar = lipgloss.NewStyle().Foreground(p.TextMuted).Background(p.BackgroundAlt)

	t.Help = lipgloss.NewStyle().Foreground(p.TextMuted)
	t.HelpKey = lipgloss.NewStyle().Foreground(p.Primary).Bold(true)
	t.HelpDesc = lipgloss.NewStyle().Foreground(p.TextMuted)

	t.Spinner = lipgloss.NewStyle().Foreground(p.Primary)
}

// HuhTheme returns a huh.Theme based on this theme
func (t *Theme) HuhTheme() *huh.Theme {
	ht := huh.ThemeBase()
	p := t.Palette

	ht.Focused.Title = ht.Focused.Title.Foreground(p.Primary).Bold(true)
	ht.Focused.Description = ht.Focused.Description.Foreground(p.TextMuted)
	ht.Focused.Base = ht.Focused.Base.BorderForeground(p.Primary)
	ht.Focused.SelectedOption = ht.Focused.SelectedOption.Foreground(p.Primary)
	ht.Focused.SelectSelector = ht.Focused.SelectSelector.Foreground(p.Primary)
	ht.Focused.TextInput.Cursor = ht.Focused.TextInput.Cursor.Foreground(p.Primary)
	ht.Focused.TextInput.Placeholder = ht.Focused.TextInput.Placeholder.Foreground(p.TextMuted)
	ht.Focused.ErrorMessage = ht.Focused.ErrorMessage.Foreground(p.Error)

	ht.Blurred.Title = ht.Blurred.Title.Foreground(p.TextMuted)
	ht.Blurred.Description = ht.Blurred.Description.Foreground(p.TextMuted)

	return ht
}

// buildTheme creates a Theme from a palette
func buildTheme(name string, palette ColorPalette) *Theme {
	t := &Theme{
		Name:    name,
		Palette: palette,
	}
	t.rebuildStyles()
	return t
}

// DarkTheme returns the default dark theme
func DarkTheme() *Theme {
	return buildTheme("dark", DarkPalette())
}

// LightTheme returns the default light theme
func LightTheme() *Theme {
	return buildTheme("light", LightPalette())
}
