// Package pipeline runs badge generation end to end.
//
// A run has three stages:
//
//  1. Load: read the roster, compile the rules, preload every template image
//     and resolve the font
//  2. Compose: place badges page by page on a PDF canvas
//  3. Write: serialize the document and move it into place
//
// Every asset is loaded before the first page is drawn, so a missing
// template or bad font fails the run without leaving an output file.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	cfg, err := config.Load("badges.toml", false)
//	if err != nil {
//	    return err
//	}
//	result, err := runner.Badges(ctx, cfg, "", "")
//
// Blank and help stock use the same runner:
//
//	result, err := runner.Sheet(ctx, cfg, cfg.DefaultTemplate, 1, "blank-badges.pdf")
package pipeline

import (
	"time"

	"github.com/larktraditionalarts/badge-pdf-creator/pkg/assets"
	"github.com/larktraditionalarts/badge-pdf-creator/pkg/roster"
	"github.com/larktraditionalarts/badge-pdf-creator/pkg/sheet"
)

// DeterministicDate is the creation and modification date recorded when a
// config sets deterministic.
var DeterministicDate = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// Document titles.
const (
	TitleBadges = "Badges"
	TitleBlank  = "Blank badges"
	TitleHelp   = "Help badges"
)

// Result is the output of a run.
type Result struct {
	// Output is the written PDF file.
	Output     string
	Pages      int
	Badges     int
	Font       *assets.Font
	Placements []sheet.Placement
	Stats      Stats
}

// Stats contains timing and count information.
type Stats struct {
	LoadTime    time.Duration
	ComposeTime time.Duration
	WriteTime   time.Duration
	Records     int
	Templates   int
}

// Assignment is the template chosen for one roster record.
type Assignment struct {
	Record   roster.Record
	Template string
	// Rule is the 1-based rule that matched, 0 for the default.
	Rule int
	Path string
}
