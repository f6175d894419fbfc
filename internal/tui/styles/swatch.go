package styles

import "github.com/charmbracelet/lipgloss"

// SwatchWidth is the number of cells a rendered swatch occupies.
const SwatchWidth = 2

// swatches maps legend background tokens to their fill color.
var swatches = map[string]lipgloss.Color{
	"bg-map-aggregate":         MapAggregate,
	"bg-map-asserted":          MapAsserted,
	"bg-map-georeference":      MapGeoreference,
	"bg-map-collection-object": MapCollectionObject,
	"bg-map-type-material":     MapTypeMaterial,
}

// Swatch returns the fill style for a legend background token.
// The second result is false for tokens with no color assigned.
func Swatch(background string) (lipgloss.Style, bool) {
	color, ok := swatches[background]
	if !ok {
		return lipgloss.Style{}, false
	}
	return lipgloss.NewStyle().Background(color).Width(SwatchWidth), true
}

// SwatchBlock renders the swatch for a background token. Unknown tokens
// render as "??" so a missing color is visible rather than blank.
func SwatchBlock(background string) string {
	style, ok := Swatch(background)
	if !ok {
		return ErrorText.Render("??")
	}
	return style.Render("  ")
}
