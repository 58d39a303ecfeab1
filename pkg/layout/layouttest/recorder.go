// Package layouttest provides a recording canvas for layout tests.
package layouttest

import (
	"unicode/utf8"

	"github.com/larktraditionalarts/badge-pdf-creator/pkg/layout"
)

// Default metrics of a Recorder.
const (
	CharWidth   = 0.5 // em per character
	LineSpacing = 1.2 // line height per point of size
)

// Op kinds recorded by a Recorder.
const (
	OpPage  = "page"
	OpImage = "image"
	OpText  = "text"
)

// Op is one recorded canvas call.
type Op struct {
	Kind  string
	Page  int
	Name  string // image name or text
	X, Y  float64
	W, H  float64
	Size  float64
	Color layout.Color
}

// Recorder is a [layout.Canvas] that records every call. Text is measured
// as a monospace font: each rune is CharWidth*size wide.
type Recorder struct {
	Ops   []Op
	Pages int
}

var _ layout.Canvas = (*Recorder)(nil)

// TextWidth implements layout.Measurer.
func (r *Recorder) TextWidth(text string, size float64) float64 {
	return float64(utf8.RuneCountInString(text)) * size * CharWidth
}

// LineHeight implements layout.Measurer.
func (r *Recorder) LineHeight(size float64) float64 {
	return size * LineSpacing
}

// AddPage implements layout.Canvas.
func (r *Recorder) AddPage() {
	r.Pages++
	r.Ops = append(r.Ops, Op{Kind: OpPage, Page: r.Pages})
}

// DrawImage implements layout.Canvas.
func (r *Recorder) DrawImage(name string, x, y, w, h float64) {
	r.Ops = append(r.Ops, Op{Kind: OpImage, Page: r.Pages, Name: name, X: x, Y: y, W: w, H: h})
}

// DrawText implements layout.Canvas.
func (r *Recorder) DrawText(text string, x, y, size float64, c layout.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpText, Page: r.Pages, Name: text, X: x, Y: y, Size: size, Color: c})
}

// Filter returns the recorded ops of the given kind.
func (r *Recorder) Filter(kind string) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}
