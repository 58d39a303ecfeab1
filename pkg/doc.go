// Package pkg provides the libraries behind the badges command.
//
// # Overview
//
// A badge run turns a roster CSV into a PDF of name badges, twelve to a US
// Letter page. The pkg directory is organized into three areas:
//
//  1. Layout - pure geometry and text fitting ([layout], [template], [sheet])
//  2. Input/Output - roster, assets, fonts and the PDF writer ([roster],
//     [assets], [fonts], [sink])
//  3. Orchestration - settings and the end-to-end run ([config], [pipeline])
//
// # Architecture
//
// The typical data flow:
//
//	data.csv + badges.toml
//	         ↓
//	    [roster] + [config] (records, rules, layout knobs)
//	         ↓
//	    [assets] (template images, font classification)
//	         ↓
//	    [sheet] → [layout] (pages, cells, fitted names)
//	         ↓
//	    [sink] (PDF canvas)
//	         ↓
//	    badges.pdf
//
// # Quick Start
//
//	cfg, err := config.Load("badges.toml", false)
//	if err != nil {
//	    return err
//	}
//	res, err := pipeline.NewRunner(logger).Badges(ctx, cfg, "", "")
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d badges on %d pages\n", res.Badges, res.Pages)
//
// # Main Packages
//
// [layout] - The 4×3 grid on a Letter page, the text fitter and name and
// pronoun placement. Coordinates are PDF points with the origin at the
// bottom-left of the page. Drawing goes through the [layout.Canvas]
// interface, so layout can be tested without a PDF.
//
// [template] - Ordered, case-insensitive regex rules mapping a holder's
// title to a badge template id, with a required default.
//
// [sheet] - Walks records in input order and fills pages cell by cell.
// Returns a placement per cell for comparison between runs.
//
// [roster] - Reads badge records from CSV with configurable column names.
//
// [assets] - Preloads template images in parallel and resolves the badge
// font to a font file, an embedded font or a standard PDF font.
//
// [sink] - A [layout.Canvas] backed by a PDF document, written atomically.
//
// [config] - badges.toml with defaults for every setting.
//
// [pipeline] - Load, compose and write in one call, used by the CLI.
//
// [errors] - Structured error codes shared by every package.
//
// # Testing
//
//	go test ./...
//
// Layout tests draw on [layouttest.Recorder], which records every canvas
// call and measures text as a monospace font.
//
// [layouttest.Recorder]: https://pkg.go.dev/github.com/larktraditionalarts/badge-pdf-creator/pkg/layout/layouttest#Recorder
// [layout]: https://pkg.go.dev/github.com/larktraditionalarts/badge-pdf-creator/pkg/layout
// [layout.Canvas]: https://pkg.go.dev/github.com/larktraditionalarts/badge-pdf-creator/pkg/layout#Canvas
// [template]: https://pkg.go.dev/github.com/larktraditionalarts/badge-pdf-creator/pkg/template
// [sheet]: https://pkg.go.dev/github.com/larktraditionalarts/badge-pdf-creator/pkg/sheet
// [roster]: https://pkg.go.dev/github.com/larktraditionalarts/badge-pdf-creator/pkg/roster
// [assets]: https://pkg.go.dev/github.com/larktraditionalarts/badge-pdf-creator/pkg/assets
// [fonts]: https://pkg.go.dev/github.com/larktraditionalarts/badge-pdf-creator/pkg/fonts
// [sink]: https://pkg.go.dev/github.com/larktraditionalarts/badge-pdf-creator/pkg/sink
// [config]: https://pkg.go.dev/github.com/larktraditionalarts/badge-pdf-creator/pkg/config
// [pipeline]: https://pkg.go.dev/github.com/larktraditionalarts/badge-pdf-creator/pkg/pipeline
// [errors]: https://pkg.go.dev/github.com/larktraditionalarts/badge-pdf-creator/pkg/errors
package pkg
