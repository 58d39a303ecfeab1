// Package sink renders badge sheets to PDF.
//
// [PDF] implements [layout.Canvas] on top of github.com/go-pdf/fpdf. Callers
// draw in page points with the origin at the bottom-left, the convention
// the badge grid is specified in; PDF converts to fpdf's top-left origin.
//
// Typical use:
//
//	doc, err := sink.NewPDF(font, sink.WithTitle("Badges"))
//	for id, t := range templates {
//	    doc.RegisterImage(id, t.PNG)
//	}
//	// ... draw through the layout.Canvas methods ...
//	err = doc.WriteFile("badges.pdf")
//
// [PDF.WriteFile] writes to a uniquely named temporary file next to the
// target and renames it into place, so a failed run never leaves a
// truncated PDF behind.
//
// [layout.Canvas]: github.com/larktraditionalarts/badge-pdf-creator/pkg/layout.Canvas
package sink
