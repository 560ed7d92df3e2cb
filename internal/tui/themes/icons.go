package themes

// Icons for consistent UI elements across all components
var (
	// Status icons
	IconCheck   = "✓"
	IconCross   = "✗"
	IconWarning = "⚠"
	IconInfo    = "ℹ"

	// Sort indicators
	IconSortNone = "↕"
	IconSortAsc  = "▲"
	IconSortDesc = "▼"

	// Arrow icons
	IconArrowRight   = "→"
	IconArrowLeft    = "←"
	IconChevronRight = "›"
	IconChevronLeft  = "‹"

	// Pagination
	IconPageFirst = "«"
	IconPageLast  = "»"
	IconEllipsis  = "…"

	// Action icons
	IconEye    = "👁"
	IconPencil = "✎"
	IconTrash  = "🗑"
	IconDots   = "⋯"
	IconPlus   = "+"

	// Misc icons
	IconBullet = "•"
	IconStar   = "★"
	IconPipe   = "|"
)
