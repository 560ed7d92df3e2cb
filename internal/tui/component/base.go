// Package component provides the reusable table, pagination, and
// action-menu building blocks shared by every resource page.
package component

import (
	"tripdesk/internal/tui/themes"

	tea "github.com/charmbracelet/bubbletea"
)

// Renderer is the base interface for components that can render with width
type Renderer interface {
	// ViewWidth renders the component at the given width
	ViewWidth(width int) string
}

// StatefulComponent is a component that manages its own state.
// It implements tea.Model and can also render at specific widths.
type StatefulComponent interface {
	tea.Model
	Renderer
}

// FocusableComponent can receive and lose focus
type FocusableComponent interface {
	StatefulComponent
	// Focus gives focus to the component
	Focus() tea.Cmd
	// Blur removes focus from the component
	Blur()
	// Focused returns whether the component has focus
	Focused() bool
}

// BaseComponent provides common functionality for components
type BaseComponent struct {
	theme  *themes.Theme
	width  int
	height int
}

// NewBaseComponent creates a new base component
func NewBaseComponent() BaseComponent {
	return BaseComponent{
		theme: themes.Global().Active(),
	}
}

// Theme returns the component's theme
func (b *BaseComponent) Theme() *themes.Theme {
	if b.theme == nil {
		b.theme = themes.Global().Active()
	}
	return b.theme
}

// SetTheme sets the component's theme
func (b *BaseComponent) SetTheme(theme *themes.Theme) {
	b.theme = theme
}

// SetSize sets the component dimensions
func (b *BaseComponent) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// GetWidth returns the component width
func (b *BaseComponent) GetWidth() int {
	return b.width
}

// GetHeight returns the component height
func (b *BaseComponent) GetHeight() int {
	return b.height
}

// FocusState tracks focus for focusable components
type FocusState struct {
	focused bool
}

// Focus sets the focus state to true
func (f *FocusState) Focus() {
	f.focused = true
}

// Blur sets the focus state to false
func (f *FocusState) Blur() {
	f.focused = false
}

// Focused returns whether the component has focus
func (f *FocusState) Focused() bool {
	return f.focused
}

// ScrollState tracks scroll position
type ScrollState struct {
	offset    int
	maxOffset int
}

// SetOffset sets the scroll offset
func (s *ScrollState) SetOffset(offset int) {
	s.offset = clamp(offset, 0, s.maxOffset)
}

// SetMaxOffset sets the maximum scroll offset
func (s *ScrollState) SetMaxOffset(maxOffset int) {
	s.maxOffset = maxOffset
	if s.offset > maxOffset {
		s.offset = maxOffset
	}
}

// Offset returns the current scroll offset
func (s *ScrollState) Offset() int {
	return s.offset
}

// MaxOffset returns the maximum scroll offset
func (s *ScrollState) MaxOffset() int {
	return s.maxOffset
}
