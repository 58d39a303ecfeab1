package sink

import (
	"bytes"
	"io"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/google/uuid"

	"github.com/larktraditionalarts/badge-pdf-creator/pkg/assets"
	"github.com/larktraditionalarts/badge-pdf-creator/pkg/errors"
	"github.com/larktraditionalarts/badge-pdf-creator/pkg/layout"
)

const (
	fontFileFamily = "badge"

	// defaultLineHeight is used when a font reports no vertical metrics.
	defaultLineHeight = 1.15
)

// PDFOption configures PDF rendering.
type PDFOption func(*pdfOptions)

type pdfOptions struct {
	title   string
	creator string
	created time.Time
}

// WithTitle sets the document title.
func WithTitle(s string) PDFOption {
	return func(o *pdfOptions) { o.title = s }
}

// WithCreator sets the creating application recorded in the document.
func WithCreator(s string) PDFOption {
	return func(o *pdfOptions) { o.creator = s }
}

// WithCreationDate fixes the creation and modification dates and sorts the
// document catalog. A document with at most one image then renders to the
// same bytes every time; fpdf may still order several equally wide images
// differently between runs.
func WithCreationDate(t time.Time) PDFOption {
	return func(o *pdfOptions) { o.created = t }
}

// PDF is a Letter-size PDF document drawn through [layout.Canvas].
type PDF struct {
	pdf       *fpdf.Fpdf
	family    string
	style     string
	translate func(string) string
	lineRatio float64
}

var _ layout.Canvas = (*PDF)(nil)

// NewPDF creates an empty document that sets all text in font.
func NewPDF(font *assets.Font, opts ...PDFOption) (*PDF, error) {
	var o pdfOptions
	for _, opt := range opts {
		opt(&o)
	}

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: layout.PageWidth, Ht: layout.PageHeight},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	if o.title != "" {
		pdf.SetTitle(o.title, true)
	}
	if o.creator != "" {
		pdf.SetCreator(o.creator, true)
	}
	if !o.created.IsZero() {
		pdf.SetCreationDate(o.created)
		pdf.SetModificationDate(o.created)
		pdf.SetCatalogSort(true)
	}

	d := &PDF{pdf: pdf, translate: func(s string) string { return s }}
	switch font.Kind {
	case assets.FontFile:
		pdf.AddUTF8FontFromBytes(fontFileFamily, "", font.Data)
		d.family = fontFileFamily
	default:
		d.family, d.style = font.Family, font.Style
		// Built-in fonts use the cp1252 encoding.
		d.translate = pdf.UnicodeTranslatorFromDescriptor("")
	}
	pdf.SetFont(d.family, d.style, layout.DefaultNameStartSize)
	if err := pdf.Error(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeFont, err, "set font %s", font.Name)
	}

	// fpdf has no descriptors for the standard fonts.
	d.lineRatio = font.LineRatio()
	if d.lineRatio <= 0 {
		desc := pdf.GetFontDesc("", "")
		d.lineRatio = float64(desc.Ascent-desc.Descent) / 1000
	}
	if d.lineRatio <= 0 {
		d.lineRatio = defaultLineHeight
	}
	return d, nil
}

// RegisterImage adds a PNG image that DrawImage can place by name.
func (d *PDF) RegisterImage(name string, png []byte) error {
	d.pdf.RegisterImageOptionsReader(name, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(png))
	if err := d.pdf.Error(); err != nil {
		return errors.Wrap(errors.ErrCodeAssetLoad, err, "embed image %s", name)
	}
	return nil
}

// TextWidth implements layout.Measurer.
func (d *PDF) TextWidth(text string, size float64) float64 {
	d.pdf.SetFontSize(size)
	return d.pdf.GetStringWidth(d.translate(text))
}

// LineHeight implements layout.Measurer. It is the ascent to descent
// distance of the font at size.
func (d *PDF) LineHeight(size float64) float64 {
	return d.lineRatio * size
}

// AddPage implements layout.Canvas.
func (d *PDF) AddPage() {
	d.pdf.AddPage()
}

// DrawImage implements layout.Canvas. (x, y) is the bottom-left corner.
func (d *PDF) DrawImage(name string, x, y, w, h float64) {
	d.pdf.ImageOptions(name, x, layout.PageHeight-y-h, w, h, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
}

// DrawText implements layout.Canvas. (x, y) is the start of the baseline.
func (d *PDF) DrawText(text string, x, y, size float64, c layout.Color) {
	d.pdf.SetFontSize(size)
	d.pdf.SetTextColor(channel(c.R), channel(c.G), channel(c.B))
	d.pdf.Text(x, layout.PageHeight-y, d.translate(text))
}

// Pages returns the number of pages added so far.
func (d *PDF) Pages() int {
	return d.pdf.PageCount()
}

// Err returns the first drawing error, if any.
func (d *PDF) Err() error {
	if err := d.pdf.Error(); err != nil {
		return errors.Wrap(errors.ErrCodeRender, err, "render")
	}
	return nil
}

// Write serializes the document to w. The document cannot be drawn on
// afterwards.
func (d *PDF) Write(w io.Writer) error {
	if err := d.Err(); err != nil {
		return err
	}
	if err := d.pdf.Output(w); err != nil {
		return errors.Wrap(errors.ErrCodeRender, err, "serialize")
	}
	return nil
}

// WriteFile serializes the document to path, replacing it atomically.
func (d *PDF) WriteFile(path string) (err error) {
	if err := errors.ValidateOutputName(path); err != nil {
		return err
	}
	dir, base := filepath.Split(path)
	tmp := filepath.Join(dir, "."+base+"."+uuid.NewString()+".tmp")

	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return errors.Wrap(errors.ErrCodeWrite, err, "create %s", path)
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmp)
		}
	}()

	if err = d.Write(f); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeWrite, err, "write %s", path)
	}
	if err = os.Rename(tmp, path); err != nil {
		return errors.Wrap(errors.ErrCodeWrite, err, "write %s", path)
	}
	return nil
}

func channel(v float64) int {
	return int(math.Round(math.Max(0, math.Min(1, v)) * 255))
}
