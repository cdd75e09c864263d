// Package ui provides the visual styling and the interactive model for the
// codemaster terminal app.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"

	"codemaster/internal/types"
)

// Color palette
var (
	// Light Mode Colors (Default)
	LightPrimary = lipgloss.Color("#4f46e5") // indigo-600
	LightAccent  = lipgloss.Color("#0ea5e9") // sky-500
	LightMuted   = lipgloss.Color("#94a3b8") // slate-400
	LightBorder  = lipgloss.Color("#e2e8f0") // slate-200

	// Dark Mode Colors
	DarkPrimary = lipgloss.Color("#818cf8") // indigo-400
	DarkAccent  = lipgloss.Color("#38bdf8") // sky-400
	DarkMuted   = lipgloss.Color("#64748b")
	DarkBorder  = lipgloss.Color("#334155")

	// Semantic Colors (same in both modes)
	Destructive = lipgloss.Color("#ef4444")
	Success     = lipgloss.Color("#22c55e")
	Warning     = lipgloss.Color("#f59e0b")
	Info        = lipgloss.Color("#3b82f6")
)

// Theme holds the current color scheme
type Theme struct {
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Muted   lipgloss.Color
	Border  lipgloss.Color
	IsDark  bool
}

// LightTheme returns the light mode theme
func LightTheme() Theme {
	return Theme{
		Primary: LightPrimary,
		Accent:  LightAccent,
		Muted:   LightMuted,
		Border:  LightBorder,
	}
}

// DarkTheme returns the dark mode theme
func DarkTheme() Theme {
	return Theme{
		Primary: DarkPrimary,
		Accent:  DarkAccent,
		Muted:   DarkMuted,
		Border:  DarkBorder,
		IsDark:  true,
	}
}

// MarkdownStyle names the glamour style for t.
func (t Theme) MarkdownStyle() string {
	if t.IsDark {
		return styles.DarkStyle
	}
	return styles.LightStyle
}

// DetectTheme picks dark mode from COLORFGBG or CODEMASTER_DARK_MODE=1,
// otherwise light.
func DetectTheme() Theme {
	// Format is usually "foreground;background"
	if parts := strings.Split(os.Getenv("COLORFGBG"), ";"); len(parts) == 2 {
		if bgIdx, err := strconv.Atoi(parts[1]); err == nil {
			if (bgIdx >= 0 && bgIdx <= 6) || bgIdx == 8 {
				return DarkTheme()
			}
		}
	}
	if os.Getenv("CODEMASTER_DARK_MODE") == "1" {
		return DarkTheme()
	}
	return LightTheme()
}

// Styles holds all the styled components
type Styles struct {
	Theme Theme

	// Layout
	Header    lipgloss.Style
	Footer    lipgloss.Style
	Content   lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style

	// Text
	Title lipgloss.Style
	Muted lipgloss.Style

	// Interactive
	Prompt lipgloss.Style
	Cursor lipgloss.Style

	// Status
	Error lipgloss.Style

	// Components
	Spinner lipgloss.Style
	Divider lipgloss.Style
	Badge   lipgloss.Style
}

// NewStyles creates a new Styles instance with the given theme
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		Header: lipgloss.NewStyle().
			Background(theme.Primary).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 2).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 2),

		Content: lipgloss.NewStyle().
			Padding(0, 1),

		Tab: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 2),

		ActiveTab: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Underline(true).
			Padding(0, 2),

		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Prompt: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true),

		Cursor: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(Destructive).
			Bold(true),

		Spinner: lipgloss.NewStyle().
			Foreground(theme.Accent),

		Divider: lipgloss.NewStyle().
			Foreground(theme.Border),

		Badge: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 1).
			Bold(true),
	}
}

// DefaultStyles returns styles for the detected theme
func DefaultStyles() Styles {
	return NewStyles(DetectTheme())
}

// DifficultyBadge renders a difficulty as a colored badge.
func (s Styles) DifficultyBadge(d types.Difficulty, loc types.Locale) string {
	color := Info
	switch d {
	case types.DifficultyBeginner:
		color = Success
	case types.DifficultyAdvanced:
		color = Destructive
	case types.DifficultyIntermediate:
		color = Warning
	}
	return s.Badge.Background(color).Render(DifficultyLabel(d, loc))
}

// EntityName renders an entity's icon and name in its own brand color.
func (s Styles) EntityName(e *types.LanguageEntity) string {
	style := s.Title
	if e.Color != "" {
		style = style.Foreground(lipgloss.Color(e.Color))
	}
	return style.Render(strings.TrimSpace(e.Icon + " " + e.Name))
}

// RenderDivider returns a horizontal divider
func (s Styles) RenderDivider(width int) string {
	if width <= 0 {
		return ""
	}
	return s.Divider.Render(strings.Repeat("─", width))
}
