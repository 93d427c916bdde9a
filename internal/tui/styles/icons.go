package styles

const (
	CheckIcon   string = "✓"
	ErrorIcon   string = "✗"
	WarningIcon string = "⚠"
	InfoIcon    string = "ℹ"

	BuildingIcon string = "🏛"
	PinIcon      string = "📍"
	GripIcon     string = "⠿"
)
