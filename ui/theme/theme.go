package theme

// Centralized theming for the chart digitizer UI. Provides palette constants
// and InitStyles to activate a base theme and configure semantic widget
// styles.

import (
	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Palette defines core semantic colors used across widgets.
const (
	ColorBg        = "#f7f9fb" // app background
	ColorSurface   = "#ffffff" // panels, result table
	ColorBorder    = "#d0d7de"
	ColorPrimary   = "#2563eb" // buttons, accents
	ColorDanger    = "#dc2626" // error status
	ColorAccent    = "#10b981"
	ColorText      = "#1e293b"
	ColorTextMuted = "#64748b"
)

// style names used with Style("primary.TButton") etc.
const (
	StylePrimaryButton = "primary.TButton"
	StyleStatusLabel   = "status.TLabel"
)

// internal flag for current mode
var darkMode bool

// InitStyles (re)applies styles for the current darkMode value.
func InitStyles() { applyStyles(darkMode) }

// SetDark toggles dark mode and reapplies styles. Returns new mode value.
func SetDark(dark bool) bool {
	darkMode = dark
	applyStyles(darkMode)
	return darkMode
}

// ToggleDark flips dark mode and reapplies styles. Returns new mode value.
func ToggleDark() bool { return SetDark(!darkMode) }

// IsDark reports current mode.
func IsDark() bool { return darkMode }

// applyStyles encapsulates palette & style configuration for light/dark.
func applyStyles(dark bool) {
	_ = ActivateTheme("azure light") // baseline metrics
	if dark {
		App.Configure(Background("#0f172a"))
	} else {
		App.Configure(Background(ColorBg))
	}

	StyleConfigure(StylePrimaryButton,
		Background(func() string {
			if dark {
				return "#3b82f6"
			}
			return ColorPrimary
		}()),
		Foreground("white"),
		Padding("4p 3p"),
		Borderwidth(1),
		Relief("ridge"),
	)
	StyleConfigure(StyleStatusLabel,
		Foreground(func() string {
			if dark {
				return "#f1f5f9"
			}
			return ColorText
		}()),
		Background(func() string {
			if dark {
				return "#1e293b"
			}
			return ColorSurface
		}()),
		Padding("4p 2p"),
		Borderwidth(1),
		Relief("groove"),
	)
}
