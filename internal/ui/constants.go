package ui

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
	IconMusic    = "🎵"
	IconVideo    = "🎬"
	IconSuccess  = "✅"
	IconError    = "❌"
	IconWarning  = "⚠"
	IconLanguage = "🌐"
)

// Text fragments
const (
	MiddleDotSeparator  = " · "
	ProgressLabelFormat = "%.1f%%"
	SizeSuffixFormat    = " (%s)"
)

// Layout sizing
const (
	LogoSize float32 = 32

	HistoryDialogWidth  float32 = 560
	HistoryDialogHeight float32 = 400
	HistoryLimit                = 50

	SettingsDialogWidth  float32 = 420
	SettingsDialogHeight float32 = 220
)
