package themes

import "github.com/charmbracelet/lipgloss"

// ColorPalette defines a complete color palette for a theme
type ColorPalette struct {
	// Primary brand colors
	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Accent    lipgloss.AdaptiveColor

	// Semantic colors
	Success lipgloss.AdaptiveColor
	Warning lipgloss.AdaptiveColor
	Error   lipgloss.AdaptiveColor
	Info    lipgloss.AdaptiveColor

	// Text colors
	Text      lipgloss.AdaptiveColor
	TextMuted lipgloss.AdaptiveColor

	// Background colors
	Background    lipgloss.AdaptiveColor
	BackgroundAlt lipgloss.AdaptiveColor
	Surface       lipgloss.AdaptiveColor

	// Border colors
	Border      lipgloss.AdaptiveColor
	BorderFocus lipgloss.AdaptiveColor

	// Special colors
	Selection lipgloss.AdaptiveColor
}

// DarkPalette returns the default dark color palette
func DarkPalette() ColorPalette {
	return ColorPalette{
		Primary:       lipgloss.AdaptiveColor{Light: "#0E7490", Dark: "#22D3EE"},
		Secondary:     lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#60A5FA"},
		Accent:        lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#FBBF24"},
		Success:       lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"},
		Warning:       lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"},
		Error:         lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#F87171"},
		Info:          lipgloss.AdaptiveColor{Light: "#0891B2", Dark: "#22D3EE"},
		Text:          lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#F9FAFB"},
		TextMuted:     lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"},
		Background:    lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#0F172A"},
		BackgroundAlt: lipgloss.AdaptiveColor{Light: "#F3F4F6", Dark: "#1E293B"},
		Surface:       lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1E293B"},
		Border:        lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#334155"},
		BorderFocus:   lipgloss.AdaptiveColor{Light: "#0E7490", Dark: "#22D3EE"},
		Selection:     lipgloss.AdaptiveColor{Light: "#CFFAFE", Dark: "#155E75"},
	}
}

// LightPalette returns the default light color palette
func LightPalette() ColorPalette {
	return ColorPalette{
		Primary:       lipgloss.AdaptiveColor{Light: "#0E7490", Dark: "#0E7490"},
		Secondary:     lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#2563EB"},
		Accent:        lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#B45309"},
		Success:       lipgloss.AdaptiveColor{Light: "#059669", Dark: "#059669"},
		Warning:       lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#D97706"},
		Error:         lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#DC2626"},
		Info:          lipgloss.AdaptiveColor{Light: "#0891B2", Dark: "#0891B2"},
		Text:          lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#1F2937"},
		TextMuted:     lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"},
		Background:    lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"},
		BackgroundAlt: lipgloss.AdaptiveColor{Light: "#F3F4F6", Dark: "#F3F4F6"},
		Surface:       lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"},
		Border:        lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#E5E7EB"},
		BorderFocus:   lipgloss.AdaptiveColor{Light: "#0E7490", Dark: "#0E7490"},
		Selection:     lipgloss.AdaptiveColor{Light: "#CFFAFE", Dark: "#CFFAFE"},
	}
}
