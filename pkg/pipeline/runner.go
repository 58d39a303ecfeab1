package pipeline

import (
	"cmp"
	"context"
	"maps"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/larktraditionalarts/badge-pdf-creator/pkg/assets"
	"github.com/larktraditionalarts/badge-pdf-creator/pkg/buildinfo"
	"github.com/larktraditionalarts/badge-pdf-creator/pkg/config"
	"github.com/larktraditionalarts/badge-pdf-creator/pkg/errors"
	"github.com/larktraditionalarts/badge-pdf-creator/pkg/layout"
	"github.com/larktraditionalarts/badge-pdf-creator/pkg/roster"
	"github.com/larktraditionalarts/badge-pdf-creator/pkg/sheet"
	"github.com/larktraditionalarts/badge-pdf-creator/pkg/sink"
)

// Runner executes badge runs. It holds no state besides the logger, so one
// Runner can serve several runs.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Badges renders one badge per roster record. Empty input and output fall
// back to the paths in cfg.
func (r *Runner) Badges(ctx context.Context, cfg *config.Config, input, output string) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	input = cmp.Or(input, cfg.Input)
	output = cmp.Or(output, cfg.Output)
	if err := errors.ValidateOutputName(output); err != nil {
		return nil, err
	}

	result := &Result{Output: output}

	// Stage 1: Load
	loadStart := time.Now()
	records, err := roster.ReadFile(input, cfg.RosterColumns())
	if err != nil {
		return nil, err
	}
	rules, err := cfg.RuleSet()
	if err != nil {
		return nil, err
	}
	doc, font, err := r.open(ctx, cfg, rules.Templates(), TitleBadges)
	if err != nil {
		return nil, err
	}
	result.Font = font
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.Records = len(records)
	result.Stats.Templates = len(rules.Templates())

	r.Logger.Info("loaded roster",
		"records", len(records),
		"templates", result.Stats.Templates,
		"font", font.Name,
		"duration", result.Stats.LoadTime)

	// Stage 2: Compose
	composeStart := time.Now()
	placer := layout.NewPlacer(cfg.PlacerOptions(font.Name))
	composer := sheet.NewComposer(rules, placer, cfg.Layout.FillTrailing, r.Logger)
	res, err := composer.Compose(ctx, doc, records)
	if err != nil {
		return nil, err
	}
	result.Pages = res.Pages
	result.Badges = res.Badges
	result.Placements = res.Placements
	result.Stats.ComposeTime = time.Since(composeStart)

	r.Logger.Info("composed badges",
		"badges", res.Badges,
		"pages", res.Pages,
		"duration", result.Stats.ComposeTime)

	// Stage 3: Write
	if err := r.write(ctx, doc, result); err != nil {
		return nil, err
	}
	return result, nil
}

// Sheet renders pages of badge stock that all carry template id and no
// text. pages below one renders a single page.
func (r *Runner) Sheet(ctx context.Context, cfg *config.Config, id string, pages int, output string) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := errors.ValidateTemplateID(id); err != nil {
		return nil, err
	}
	if err := errors.ValidateOutputName(output); err != nil {
		return nil, err
	}

	result := &Result{Output: output}

	loadStart := time.Now()
	title := TitleBlank
	if id == cfg.HelpTemplate {
		title = TitleHelp
	}
	doc, font, err := r.open(ctx, cfg, []string{id}, title)
	if err != nil {
		return nil, err
	}
	result.Font = font
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.Templates = 1

	composeStart := time.Now()
	res, err := sheet.Tile(ctx, doc, id, pages)
	if err != nil {
		return nil, err
	}
	result.Pages = res.Pages
	result.Placements = res.Placements
	result.Stats.ComposeTime = time.Since(composeStart)

	r.Logger.Info("tiled template",
		"template", id,
		"pages", res.Pages,
		"duration", result.Stats.ComposeTime)

	if err := r.write(ctx, doc, result); err != nil {
		return nil, err
	}
	return result, nil
}

// Rules reports the template each roster record resolves to, without
// loading any asset.
func (r *Runner) Rules(cfg *config.Config, input string) ([]Assignment, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	records, err := roster.ReadFile(cmp.Or(input, cfg.Input), cfg.RosterColumns())
	if err != nil {
		return nil, err
	}
	rules, err := cfg.RuleSet()
	if err != nil {
		return nil, err
	}

	out := make([]Assignment, len(records))
	for i, rec := range records {
		id, rule := rules.Resolve(rec.Title)
		out[i] = Assignment{Record: rec, Template: id, Rule: rule, Path: cfg.TemplatePath(id)}
	}
	return out, nil
}

// open preloads templates ids and the font, and returns a document with the
// images registered under their ids.
func (r *Runner) open(ctx context.Context, cfg *config.Config, ids []string, title string) (*sink.PDF, *assets.Font, error) {
	loader := assets.NewLoader(cfg.MaxTemplatePixels, r.Logger)

	paths := make(map[string]string, len(ids))
	for _, id := range ids {
		paths[id] = cfg.TemplatePath(id)
	}
	templates, err := loader.Templates(ctx, paths)
	if err != nil {
		return nil, nil, err
	}

	font, err := loader.Font(cfg.Font, cfg.FallbackFont)
	if err != nil {
		return nil, nil, err
	}

	opts := []sink.PDFOption{
		sink.WithTitle(title),
		sink.WithCreator(buildinfo.Creator()),
	}
	if cfg.Deterministic {
		opts = append(opts, sink.WithCreationDate(DeterministicDate))
	}
	doc, err := sink.NewPDF(font, opts...)
	if err != nil {
		return nil, nil, err
	}

	for _, id := range slices.Sorted(maps.Keys(templates)) {
		if err := doc.RegisterImage(id, templates[id].PNG); err != nil {
			return nil, nil, err
		}
		r.Logger.Debug("registered template", "id", id, "path", templates[id].Path)
	}
	return doc, font, nil
}

func (r *Runner) write(ctx context.Context, doc *sink.PDF, result *Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	start := time.Now()
	if err := doc.WriteFile(result.Output); err != nil {
		return err
	}
	result.Stats.WriteTime = time.Since(start)
	r.Logger.Debug("wrote document", "path", result.Output, "duration", result.Stats.WriteTime)
	return nil
}
