package theme

// Styling for the overlay surface. The overlay is a dark chrome-less
// panel meant to sit on top of recordings, so the palette leans dark
// with high-contrast placeholder text.

import (
	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Palette defines the overlay colors.
const (
	ColorBg          = "#111318" // overlay background
	ColorBorder      = "#2a2e38"
	ColorText        = "#e7e9ee" // placeholder text
	ColorTextMuted   = "#8b90a0"
	ColorDanger      = "#ef4444" // permission-denied placeholder
	ColorAccent      = "#10b981"
	ColorMenuAccent  = "#3b82f6"
	ColorSettingsBg  = "#f7f9fb"
	ColorSettingsTxt = "#1e293b"
)

// Style names used with Style("placeholder.TLabel") etc.
const (
	StylePlaceholderLabel = "placeholder.TLabel"
	StyleDeniedLabel      = "denied.TLabel"
	StyleStatsLabel       = "stats.TLabel"
	StyleApplyButton      = "apply.TButton"
)

// InitStyles applies the overlay palette and semantic widget styles.
func InitStyles() {
	_ = ActivateTheme("azure dark") // baseline metrics
	App.Configure(Background(ColorBg))

	StyleConfigure(StylePlaceholderLabel,
		Foreground(ColorText),
		Background(ColorBg),
		Padding("4p 2p"),
	)
	StyleConfigure(StyleDeniedLabel,
		Foreground(ColorDanger),
		Background(ColorBg),
		Padding("4p 2p"),
	)
	StyleConfigure(StyleStatsLabel,
		Foreground(ColorSettingsTxt),
		Background(ColorSettingsBg),
		Padding("2p 1p"),
	)
	StyleConfigure(StyleApplyButton,
		Background(ColorMenuAccent),
		Foreground("white"),
		Padding("4p 3p"),
		Borderwidth(1),
		Relief("ridge"),
	)
}
