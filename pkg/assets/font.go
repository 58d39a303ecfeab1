package assets

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font/sfnt"

	"github.com/larktraditionalarts/badge-pdf-creator/pkg/errors"
	"github.com/larktraditionalarts/badge-pdf-creator/pkg/fonts"
)

// FontKind tells a font file apart from a built-in PDF font.
type FontKind int

const (
	FontBuiltin FontKind = iota
	FontFile
)

func (k FontKind) String() string {
	if k == FontFile {
		return "file"
	}
	return "builtin"
}

// Font is a resolved badge font.
type Font struct {
	Kind FontKind
	// Name is the PostScript name of a font file or the standard name of a
	// built-in font. It keys per-font line spacing.
	Name string
	// Family and Style select a built-in font in the PDF writer.
	Family string
	Style  string
	// Ascent and Descent are a built-in font's vertical metrics in
	// thousandths of an em.
	Ascent  int
	Descent int
	// Path and Data hold a font file.
	Path string
	Data []byte
}

type builtin struct {
	family, style   string
	ascent, descent int // AFM Ascender and Descender, or the FontBBox for symbol fonts
}

// builtins maps the 14 standard PDF font names to family, style and
// vertical metrics.
var builtins = map[string]builtin{
	"Courier":               {"Courier", "", 629, -157},
	"Courier-Bold":          {"Courier", "B", 629, -157},
	"Courier-Oblique":       {"Courier", "I", 629, -157},
	"Courier-BoldOblique":   {"Courier", "BI", 629, -157},
	"Helvetica":             {"Helvetica", "", 718, -207},
	"Helvetica-Bold":        {"Helvetica", "B", 718, -207},
	"Helvetica-Oblique":     {"Helvetica", "I", 718, -207},
	"Helvetica-BoldOblique": {"Helvetica", "BI", 718, -207},
	"Times-Roman":           {"Times", "", 683, -217},
	"Times-Bold":            {"Times", "B", 676, -205},
	"Times-Italic":          {"Times", "I", 683, -205},
	"Times-BoldItalic":      {"Times", "BI", 699, -205},
	"Symbol":                {"Symbol", "", 1010, -293},
	"ZapfDingbats":          {"ZapfDingbats", "", 820, -143},
}

// Builtin returns the built-in font with the given standard name.
func Builtin(name string) (*Font, bool) {
	b, ok := builtins[name]
	if !ok {
		return nil, false
	}
	return &Font{
		Kind:    FontBuiltin,
		Name:    name,
		Family:  b.family,
		Style:   b.style,
		Ascent:  b.ascent,
		Descent: b.descent,
	}, true
}

// LineRatio returns the ascent to descent distance per point of size, or 0
// when the metrics are unknown.
func (f *Font) LineRatio() float64 {
	return float64(f.Ascent-f.Descent) / 1000
}

// Font resolves id to a font. A path to a readable file is loaded as a font
// file; a standard PDF font name or an embedded font name is used as is;
// anything else resolves to fallback, which must be one of those names. A
// file that is not a valid font is an error.
func (l *Loader) Font(id, fallback string) (*Font, error) {
	if info, err := os.Stat(id); err == nil && !info.IsDir() {
		data, err := os.ReadFile(id)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeFont, err, "read font %s", id)
		}
		return l.parseFont(id, data)
	}
	if f, ok, err := l.named(id); ok || err != nil {
		return f, err
	}

	f, ok, err := l.named(fallback)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.New(errors.ErrCodeFont, "fallback font %q is neither a standard PDF font nor one of %v", fallback, fonts.Names())
	}
	l.Logger.Warn("font not found, using fallback", "font", id, "fallback", fallback)
	return f, nil
}

// named resolves a standard PDF font or an embedded font by name.
func (l *Loader) named(name string) (*Font, bool, error) {
	if f, ok := Builtin(name); ok {
		l.Logger.Debug("using built-in font", "font", name)
		return f, true, nil
	}
	if data, ok := fonts.TTF(name); ok {
		f, err := l.parseFont(name, data)
		return f, err == nil, err
	}
	return nil, false, nil
}

// parseFont reads the PostScript name of TrueType data loaded from path.
func (l *Loader) parseFont(path string, data []byte) (*Font, error) {
	parsed, err := sfnt.Parse(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFont, err, "parse font %s", path)
	}

	name, err := parsed.Name(nil, sfnt.NameIDPostScript)
	if err != nil {
		if !stderrors.Is(err, sfnt.ErrNotFound) {
			return nil, errors.Wrap(errors.ErrCodeFont, err, "read name of font %s", path)
		}
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	l.Logger.Debug("loaded font", "font", name, "path", path, "glyphs", parsed.NumGlyphs())
	return &Font{Kind: FontFile, Name: name, Path: path, Data: data}, nil
}
