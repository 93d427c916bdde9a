package styles

// RenderThemeGradient renders bold text blending the theme's primary into its secondary color
func RenderThemeGradient(text string) string {
	theme := CurrentTheme()
	return ApplyBoldGradient(text, theme.Primary, theme.Secondary)
}
