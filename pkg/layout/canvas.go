package layout

// Color is an RGB color with components in [0, 1].
type Color struct {
	R, G, B float64
}

// Badge text colors.
var (
	Ink     = Color{R: 0.4, G: 0.1, B: 0.1}
	Shadow  = Color{R: 0.25, G: 0.25, B: 0.25}
	Outline = Color{}
)

// Measurer reports text metrics for the badge font.
type Measurer interface {
	// TextWidth returns the width of text at size, in points.
	TextWidth(text string, size float64) float64
	// LineHeight returns the height of one line of text at size, in points.
	LineHeight(size float64) float64
}

// Canvas is a paged drawing surface in page coordinates with the origin at
// the bottom-left. Text is positioned by its baseline.
type Canvas interface {
	Measurer

	AddPage()
	DrawImage(name string, x, y, w, h float64)
	DrawText(text string, x, y, size float64, c Color)
}
