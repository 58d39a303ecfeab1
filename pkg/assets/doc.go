// Package assets loads the images and font a badge run needs.
//
// Everything is loaded once, before the first page is produced. A missing
// or unreadable template image stops the run; there is no partial output.
//
// # Templates
//
// [Loader.Templates] reads every template image in parallel. Images may be
// PNG, JPEG, GIF, BMP or TIFF; they are oriented from EXIF data, downscaled
// so the long side is at most MaxPixels, and re-encoded as PNG for
// embedding.
//
// # Fonts
//
// [Loader.Font] classifies a font identifier explicitly instead of trying
// to embed it and recovering from failure:
//
//   - a readable file is parsed as an OpenType/TrueType font and named by
//     its PostScript name
//   - one of the 14 standard PDF font names is used as a built-in font
//   - an embedded font name (Go-Bold, ...) is parsed like a file
//   - anything else falls back to the configured fallback font, which must
//     be a standard or embedded name
package assets

import "github.com/charmbracelet/log"

// DefaultMaxPixels bounds the long side of an embedded template image.
// 1200 pixels is about 450 dpi at badge size.
const DefaultMaxPixels = 1200

// Loader loads badge assets.
type Loader struct {
	// MaxPixels bounds the long side of template images; 0 keeps the
	// original size.
	MaxPixels int
	Logger    *log.Logger
}

// NewLoader returns a Loader. A nil logger uses log.Default().
func NewLoader(maxPixels int, logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.Default()
	}
	return &Loader{MaxPixels: maxPixels, Logger: logger}
}
