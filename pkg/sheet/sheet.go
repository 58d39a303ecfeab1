// Package sheet lays badges out page by page.
//
// A [Composer] walks the records in order and fills the 4×3 grid of each
// page from the bottom-left cell, adding pages until every record has a
// badge. Each badge gets the background its title selects, the holder's
// name and, when present, pronouns. Cells left over on the last page get
// the default background with no text, or stay empty when FillTrailing is
// off.
//
// [Tile] fills whole pages with a single template and no text, for blank
// and help badge stock.
//
// Every layout decision is also returned as a [Placement], so two runs over
// the same input can be compared without looking at PDF bytes.
package sheet

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/larktraditionalarts/badge-pdf-creator/pkg/errors"
	"github.com/larktraditionalarts/badge-pdf-creator/pkg/layout"
	"github.com/larktraditionalarts/badge-pdf-creator/pkg/roster"
	"github.com/larktraditionalarts/badge-pdf-creator/pkg/template"
)

// NoRecord marks a placement that holds no badge holder.
const NoRecord = -1

// Placement is the layout decision for one cell.
type Placement struct {
	Page   int // 1-based
	Cell   layout.Cell
	Origin layout.Point
	// Record is the index of the badge holder, or NoRecord.
	Record int
	// Template is the background drawn, empty when the cell is left blank.
	Template string
	// Rule is the 1-based rule that chose Template, 0 for the default.
	Rule     int
	Name     layout.NameLayout
	Pronouns *layout.Line
}

// Result summarizes a composed document.
type Result struct {
	Pages      int
	Badges     int
	Placements []Placement
}

// Composer places badge records on pages.
type Composer struct {
	Rules  *template.RuleSet
	Placer *layout.Placer
	// FillTrailing stamps unused cells of the last page with the default
	// template.
	FillTrailing bool
	Logger       *log.Logger
}

// NewComposer returns a Composer. A nil logger uses log.Default().
func NewComposer(rules *template.RuleSet, placer *layout.Placer, fillTrailing bool, logger *log.Logger) *Composer {
	if logger == nil {
		logger = log.Default()
	}
	return &Composer{Rules: rules, Placer: placer, FillTrailing: fillTrailing, Logger: logger}
}

// Compose draws one badge per record on c. There is always at least one
// page. A record with a blank name is an error. ctx is checked before each
// page.
func (c *Composer) Compose(ctx context.Context, canvas layout.Canvas, records []roster.Record) (*Result, error) {
	for i, rec := range records {
		if first, _ := layout.SplitName(rec.Name); first == "" {
			return nil, errors.New(errors.ErrCodeInvalidInput, "record %d (line %d): name is empty", i, rec.Line)
		}
	}

	res := &Result{Placements: make([]Placement, 0, layout.PageCount(len(records))*layout.CellsPerPage)}
	next := 0
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		canvas.AddPage()
		res.Pages++

		for _, cell := range layout.Cells() {
			origin := layout.CellOrigin(cell)
			pl := Placement{Page: res.Pages, Cell: cell, Origin: origin, Record: NoRecord}

			if next >= len(records) {
				if c.FillTrailing {
					pl.Template = c.Rules.Default()
					canvas.DrawImage(pl.Template, origin.X, origin.Y, layout.BadgeSize, layout.BadgeSize)
				}
				res.Placements = append(res.Placements, pl)
				continue
			}

			rec := records[next]
			pl.Record = next
			pl.Template, pl.Rule = c.Rules.Resolve(rec.Title)
			c.Logger.Info("badge", "record", next, "name", rec.Name, "template", pl.Template)

			canvas.DrawImage(pl.Template, origin.X, origin.Y, layout.BadgeSize, layout.BadgeSize)
			pl.Name = c.Placer.PlaceName(canvas, rec.Name, origin)
			if l, ok := c.Placer.PlacePronouns(canvas, rec.Pronouns, origin, pl.Name.LastBaseline()); ok {
				pl.Pronouns = &l
			}

			res.Placements = append(res.Placements, pl)
			res.Badges++
			next++
		}

		if next >= len(records) {
			break
		}
	}
	return res, nil
}

// Tile draws pages of cells that all carry template id and no text.
// pages below one draws a single page.
func Tile(ctx context.Context, c layout.Canvas, id string, pages int) (*Result, error) {
	pages = max(pages, 1)
	res := &Result{Placements: make([]Placement, 0, pages*layout.CellsPerPage)}
	for page := 1; page <= pages; page++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		c.AddPage()
		res.Pages++
		for _, cell := range layout.Cells() {
			origin := layout.CellOrigin(cell)
			c.DrawImage(id, origin.X, origin.Y, layout.BadgeSize, layout.BadgeSize)
			res.Placements = append(res.Placements, Placement{
				Page: page, Cell: cell, Origin: origin, Record: NoRecord, Template: id,
			})
		}
	}
	return res, nil
}
