// Package config loads badge generation settings from a TOML file.
//
// Every setting has a default, so the file is optional; keys present in the
// file override the defaults and everything else is left alone. A minimal
// file that only changes the rule list looks like:
//
//	default_template = "Plain"
//
//	[[rules]]
//	pattern = "board"
//	template = "LTA"
//
//	[[rules]]
//	pattern = "committee"
//	template = "Comm"
//
// Rules are evaluated in file order and the first match wins. Template
// images default to template_dir/template-<ID>.png; the [templates] table
// points individual ids elsewhere.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/larktraditionalarts/badge-pdf-creator/pkg/errors"
	"github.com/larktraditionalarts/badge-pdf-creator/pkg/layout"
	"github.com/larktraditionalarts/badge-pdf-creator/pkg/roster"
	"github.com/larktraditionalarts/badge-pdf-creator/pkg/template"
)

// DefaultPath is the config file looked up when none is given.
const DefaultPath = "badges.toml"

// Layout presets.
const (
	PresetStandard = "standard" // names start at 30pt
	PresetPlain    = "plain"    // names start at 24pt
)

// Config holds every setting of a badge run.
type Config struct {
	Input             string             `toml:"input"`
	Output            string             `toml:"output"`
	BlankOutput       string             `toml:"blank_output"`
	HelpOutput        string             `toml:"help_output"`
	Font              string             `toml:"font"`
	FallbackFont      string             `toml:"fallback_font"`
	TemplateDir       string             `toml:"template_dir"`
	DefaultTemplate   string             `toml:"default_template"`
	HelpTemplate      string             `toml:"help_template"`
	MaxTemplatePixels int                `toml:"max_template_pixels"`
	Deterministic     bool               `toml:"deterministic"`
	Columns           Columns            `toml:"columns"`
	Layout            Layout             `toml:"layout"`
	FontSpacing       map[string]float64 `toml:"font_spacing"`
	Templates         map[string]string  `toml:"templates"`
	Rules             []Rule             `toml:"rules"`
}

// Columns names the input CSV columns.
type Columns struct {
	Name     string `toml:"name"`
	Title    string `toml:"title"`
	Pronouns string `toml:"pronouns"`
}

// Layout tunes text placement. Zero sizes fall back to the preset.
type Layout struct {
	Preset             string  `toml:"preset"`
	NameStartSize      float64 `toml:"name_start_size"`
	NameMaxWidth       float64 `toml:"name_max_width"`
	NameBaselineOffset float64 `toml:"name_baseline_offset"`
	MinFontSize        float64 `toml:"min_font_size"`
	PronounSize        float64 `toml:"pronoun_size"`
	PronounOffset      float64 `toml:"pronoun_offset"`
	FillTrailing       bool    `toml:"fill_trailing"`
}

// Rule maps a role pattern to a template id.
type Rule struct {
	Pattern  string `toml:"pattern"`
	Template string `toml:"template"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Input:             "data.csv",
		Output:            "badges.pdf",
		BlankOutput:       "blank-badges.pdf",
		HelpOutput:        "help-badges.pdf",
		Font:              "fonts/Arial-Bold.ttf",
		FallbackFont:      "Helvetica-Bold",
		TemplateDir:       "img",
		DefaultTemplate:   "Plain",
		HelpTemplate:      "Help",
		MaxTemplatePixels: 1200,
		Columns: Columns{
			Name:     roster.DefaultNameColumn,
			Title:    roster.DefaultTitleColumn,
			Pronouns: roster.DefaultPronounsColumn,
		},
		Layout: Layout{
			Preset:             PresetStandard,
			NameMaxWidth:       layout.DefaultNameMaxWidth,
			NameBaselineOffset: layout.DefaultNameBaselineOffset,
			MinFontSize:        layout.DefaultMinFontSize,
			PronounSize:        layout.DefaultPronounSize,
			PronounOffset:      layout.DefaultPronounOffset,
			FillTrailing:       true,
		},
		FontSpacing: map[string]float64{
			"EagleLake-Regular": 0.8,
		},
		Templates: map[string]string{},
		Rules: []Rule{
			{Pattern: "board", Template: "LTA"},
			{Pattern: "committee", Template: "Comm"},
			{Pattern: `staff|crew|manager`, Template: "Staff"},
			{Pattern: `teacher|instructor|faculty|caller`, Template: "Teacher"},
		},
	}
}

// Load reads the config file at path on top of the defaults and validates
// the result. A missing file is an error only when required is set.
func Load(path string, required bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			cfg := Default()
			return cfg, cfg.Validate()
		}
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config %s", path)
	}
	return cfg, nil
}

// Parse decodes TOML data on top of the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	// A rules array replaces the default list instead of being merged into it.
	defaults := cfg.Rules
	cfg.Rules = nil
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode")
	}
	if !md.IsDefined("rules") {
		cfg.Rules = defaults
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown key %q", undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks paths, sizes and rules.
func (c *Config) Validate() error {
	for _, p := range []string{c.Input, c.Font, c.TemplateDir} {
		if err := errors.ValidatePath(p); err != nil {
			return err
		}
	}
	for _, p := range []string{c.Output, c.BlankOutput, c.HelpOutput} {
		if err := errors.ValidateOutputName(p); err != nil {
			return err
		}
	}
	if c.Columns.Name == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "columns.name cannot be empty")
	}
	if c.MaxTemplatePixels < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "max_template_pixels must not be negative")
	}

	l := c.Layout
	switch l.Preset {
	case PresetStandard, PresetPlain:
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "layout.preset must be %q or %q, got %q", PresetStandard, PresetPlain, l.Preset)
	}
	if l.NameStartSize < 0 || l.NameMaxWidth <= 0 || l.MinFontSize <= 0 || l.PronounSize <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "layout sizes must be positive")
	}
	if l.MinFontSize > c.nameStartSize() || l.MinFontSize > l.PronounSize {
		return errors.New(errors.ErrCodeInvalidConfig, "layout.min_font_size %v exceeds a start size", l.MinFontSize)
	}
	if l.NameMaxWidth > layout.BadgeSize {
		return errors.New(errors.ErrCodeInvalidConfig, "layout.name_max_width %v is wider than a badge", l.NameMaxWidth)
	}
	if l.NameBaselineOffset < 0 || l.NameBaselineOffset > layout.BadgeSize {
		return errors.New(errors.ErrCodeInvalidConfig, "layout.name_baseline_offset must lie inside the badge")
	}
	for name, s := range c.FontSpacing {
		if s <= 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "font_spacing %q must be positive", name)
		}
	}
	for id, p := range c.Templates {
		if err := errors.ValidateTemplateID(id); err != nil {
			return err
		}
		if err := errors.ValidatePath(p); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "templates.%s", id)
		}
	}
	if err := errors.ValidateTemplateID(c.HelpTemplate); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "help_template")
	}
	_, err := c.RuleSet()
	return err
}

// RuleSet compiles the configured rules.
func (c *Config) RuleSet() (*template.RuleSet, error) {
	specs := make([]template.Spec, len(c.Rules))
	for i, r := range c.Rules {
		specs[i] = template.Spec{Pattern: r.Pattern, Template: r.Template}
	}
	return template.NewRuleSet(specs, c.DefaultTemplate)
}

// TemplatePath returns the image file of template id.
func (c *Config) TemplatePath(id string) string {
	if p, ok := c.Templates[id]; ok {
		return p
	}
	return filepath.Join(c.TemplateDir, "template-"+id+".png")
}

// RosterColumns returns the CSV column names.
func (c *Config) RosterColumns() roster.Columns {
	return roster.Columns{
		Name:     c.Columns.Name,
		Title:    c.Columns.Title,
		Pronouns: c.Columns.Pronouns,
	}
}

// Spacing returns the line spacing multiplier for the named font.
func (c *Config) Spacing(fontName string) float64 {
	if s, ok := c.FontSpacing[fontName]; ok {
		return s
	}
	return 1
}

// PlacerOptions returns placement options for text set in fontName.
func (c *Config) PlacerOptions(fontName string) layout.Options {
	opts := layout.DefaultOptions()
	opts.NameStartSize = c.nameStartSize()
	opts.NameMaxWidth = c.Layout.NameMaxWidth
	opts.NameBaselineOffset = c.Layout.NameBaselineOffset
	opts.MinFontSize = c.Layout.MinFontSize
	opts.PronounSize = c.Layout.PronounSize
	opts.PronounOffset = c.Layout.PronounOffset
	opts.LineSpacing = c.Spacing(fontName)
	return opts
}

func (c *Config) nameStartSize() float64 {
	if c.Layout.NameStartSize > 0 {
		return c.Layout.NameStartSize
	}
	if c.Layout.Preset == PresetPlain {
		return layout.PlainNameStartSize
	}
	return layout.DefaultNameStartSize
}
