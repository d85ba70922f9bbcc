package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconRecord   = "⏺"
	IconStop     = "⏹"
	IconPlay     = "▶"
	IconFolder   = "📁"
	IconFile     = "📄"
	IconDelete   = "🗑"
	IconClose    = "×"
	IconError    = "❌"
	IconLanguage = "🌐"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
)

// Layout sizing (entry rows / lists)
const (
	NameLabelWidth float32 = 280
	SizeLabelWidth float32 = 80

	RowMinWidth  float32 = 420
	RowMinHeight float32 = 36

	TextContentMinHeight float32 = 120
)

// Window sizing
const (
	WindowWidth  float32 = 900
	WindowHeight float32 = 640

	SettingsDialogWidth  float32 = 520
	SettingsDialogHeight float32 = 440
)

// Debounce durations
const (
	ListRefreshDebounce = 100 * time.Millisecond
)
