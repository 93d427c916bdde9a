package styles

// NewCampusTheme creates the default theme in university blue and gold
func NewCampusTheme() *Theme {
	return &Theme{
		Name:   "campus",
		IsDark: true,

		Primary:   ParseHex("#0055A2"), // Spartan blue
		Secondary: ParseHex("#E5A823"), // Spartan gold
		Accent:    ParseHex("#F2C14E"), // Light gold

		BgBase:      ParseHex("#101820"),
		BgSubtle:    ParseHex("#1F2A36"),
		BgHighlight: ParseHex("#2E4057"),

		FgBase:     ParseHex("#F5F6FA"),
		FgMuted:    ParseHex("#A9B4C2"),
		FgSubtle:   ParseHex("#6B7785"),
		FgInverted: ParseHex("#101820"),

		Border:      ParseHex("#3A4756"),
		BorderFocus: ParseHex("#E5A823"),

		Success: ParseHex("#27AE60"),
		Error:   ParseHex("#E74C3C"),
		Warning: ParseHex("#F39C12"),
		Info:    ParseHex("#5EB3F6"),
	}
}

// NewDarkTheme creates a professional dark theme
func NewDarkTheme() *Theme {
	return &Theme{
		Name:   "dark",
		IsDark: true,

		Primary:   ParseHex("#60a5fa"), // Sky blue
		Secondary: ParseHex("#a78bfa"), // Violet
		Accent:    ParseHex("#34d399"), // Emerald

		BgBase:      ParseHex("#0f172a"), // Slate 900
		BgSubtle:    ParseHex("#334155"), // Slate 700
		BgHighlight: ParseHex("#475569"), // Slate 600

		FgBase:     ParseHex("#f8fafc"), // Slate 50
		FgMuted:    ParseHex("#cbd5e1"), // Slate 300
		FgSubtle:   ParseHex("#94a3b8"), // Slate 400
		FgInverted: ParseHex("#0f172a"), // Slate 900

		Border:      ParseHex("#334155"),
		BorderFocus: ParseHex("#60a5fa"),

		Success: ParseHex("#34d399"),
		Error:   ParseHex("#f87171"),
		Warning: ParseHex("#fbbf24"),
		Info:    ParseHex("#60a5fa"),
	}
}

// NewFireTheme creates a red to yellow theme
func NewFireTheme() *Theme {
	return &Theme{
		Name:   "fire",
		IsDark: true,

		Primary:   ParseHex("#C0392B"), // Deep red
		Secondary: ParseHex("#F4D03F"), // Bright yellow
		Accent:    ParseHex("#F39C12"), // Orange

		BgBase:      ParseHex("#2C3E50"),
		BgSubtle:    ParseHex("#3D566E"),
		BgHighlight: ParseHex("#5D6D7E"),

		FgBase:     ParseHex("#FFFFFF"),
		FgMuted:    ParseHex("#DCDCDC"),
		FgSubtle:   ParseHex("#A9A9A9"),
		FgInverted: ParseHex("#000000"),

		Border:      ParseHex("#5D6D7E"),
		BorderFocus: ParseHex("#F39C12"),

		Success: ParseHex("#2ECC71"),
		Error:   ParseHex("#E74C3C"),
		Warning: ParseHex("#F1C40F"),
		Info:    ParseHex("#3498DB"),
	}
}
