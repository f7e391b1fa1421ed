package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha palette.
var (
	ColorText     = lipgloss.Color("#cdd6f4")
	ColorSubtext  = lipgloss.Color("#a6adc8")
	ColorOverlay  = lipgloss.Color("#6c7086")
	ColorBlue     = lipgloss.Color("#89b4fa")
	ColorGreen    = lipgloss.Color("#a6e3a1")
	ColorYellow   = lipgloss.Color("#f9e2af")
	ColorRed      = lipgloss.Color("#f38ba8")
	ColorMauve    = lipgloss.Color("#cba6f7")
	ColorTeal     = lipgloss.Color("#94e2d5")
	ColorPeach    = lipgloss.Color("#fab387")
	ColorLavender = lipgloss.Color("#b4befe")
)

// ClassStyles maps the CSS classes used in shell markup to terminal styles.
var ClassStyles = map[string]lipgloss.Style{
	"error":            lipgloss.NewStyle().Foreground(ColorRed),
	"info":             lipgloss.NewStyle().Foreground(ColorBlue),
	"success":          lipgloss.NewStyle().Foreground(ColorGreen),
	"warning":          lipgloss.NewStyle().Foreground(ColorYellow),
	"directory":        lipgloss.NewStyle().Foreground(ColorBlue).Bold(true),
	"file-md":          lipgloss.NewStyle().Foreground(ColorGreen),
	"file":             lipgloss.NewStyle().Foreground(ColorText),
	"prompt-user":      lipgloss.NewStyle().Foreground(ColorGreen),
	"prompt-at":        lipgloss.NewStyle().Foreground(ColorSubtext),
	"prompt-host":      lipgloss.NewStyle().Foreground(ColorMauve),
	"prompt-separator": lipgloss.NewStyle().Foreground(ColorSubtext),
	"prompt-path":      lipgloss.NewStyle().Foreground(ColorBlue),
	"prompt-symbol":    lipgloss.NewStyle().Foreground(ColorSubtext),
	"welcome-banner":   lipgloss.NewStyle().Foreground(ColorMauve),
	"ascii-art":        lipgloss.NewStyle().Foreground(ColorTeal),
	"neofetch-label":   lipgloss.NewStyle().Foreground(ColorPeach).Bold(true),
	"neofetch-value":   lipgloss.NewStyle().Foreground(ColorText),
}

// Element styles for rendered Markdown.
var (
	HeadingStyle = lipgloss.NewStyle().Foreground(ColorLavender).Bold(true)
	StrongStyle  = lipgloss.NewStyle().Bold(true)
	EmStyle      = lipgloss.NewStyle().Italic(true)
	StrikeStyle  = lipgloss.NewStyle().Strikethrough(true)
	CodeStyle    = lipgloss.NewStyle().Foreground(ColorPeach)
	LinkStyle    = lipgloss.NewStyle().Foreground(ColorBlue).Underline(true)
	QuoteStyle   = lipgloss.NewStyle().Foreground(ColorOverlay).Italic(true)
	HelpStyle    = lipgloss.NewStyle().Foreground(ColorOverlay)
)

// Symbols used when flattening markup.
const (
	SymbolBullet    = "•"
	SymbolChecked   = "[x]"
	SymbolUnchecked = "[ ]"
	SymbolRule      = "────────────────────────"
)
