package layout

import "math"

// DefaultMinFontSize is the smallest size Fit will return unless told otherwise.
const DefaultMinFontSize = 1.0

// MeasureFunc returns the rendered width of text at the given font size.
type MeasureFunc func(text string, size float64) float64

// Fit returns the largest whole font size at or below start at which text
// measures no wider than maxWidth, together with the width at that size.
//
// The search steps down one point at a time from floor(start) and stops at
// minSize; a minSize <= 0 means [DefaultMinFontSize]. Text that is still too
// wide at minSize is returned at minSize. Empty text fits at any size.
func Fit(text string, start, maxWidth, minSize float64, measure MeasureFunc) (size, width float64) {
	if minSize <= 0 {
		minSize = DefaultMinFontSize
	}
	size = math.Max(math.Floor(start), minSize)
	if text == "" {
		return size, 0
	}
	for {
		width = measure(text, size)
		if width <= maxWidth || size-1 < minSize {
			return size, width
		}
		size--
	}
}
