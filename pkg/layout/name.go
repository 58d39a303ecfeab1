package layout

import "strings"

// Default placement parameters.
const (
	DefaultNameStartSize      = 30.0
	PlainNameStartSize        = 24.0
	DefaultNameMaxWidth       = 100.0
	DefaultNameBaselineOffset = 115.0
	DefaultLineShrink         = 0.8
	DefaultPronounSize        = 14.0
	DefaultPronounOffset      = 24.0
	DefaultPronounMaxWidth    = BadgeSize - 20
)

// Options tunes name and pronoun placement.
type Options struct {
	NameStartSize      float64 // font size the first name line starts fitting from
	NameMaxWidth       float64 // widest a name line may be
	NameBaselineOffset float64 // first baseline, measured up from the badge bottom
	LineShrink         float64 // next line starts at this fraction of the previous size
	LineSpacing        float64 // line height multiplier for the badge font
	MinFontSize        float64 // fitting never goes below this size
	PronounSize        float64
	PronounOffset      float64 // distance below the last name baseline
	PronounMaxWidth    float64
}

// DefaultOptions returns the standard badge placement.
func DefaultOptions() Options {
	return Options{
		NameStartSize:      DefaultNameStartSize,
		NameMaxWidth:       DefaultNameMaxWidth,
		NameBaselineOffset: DefaultNameBaselineOffset,
		LineShrink:         DefaultLineShrink,
		LineSpacing:        1,
		MinFontSize:        DefaultMinFontSize,
		PronounSize:        DefaultPronounSize,
		PronounOffset:      DefaultPronounOffset,
		PronounMaxWidth:    DefaultPronounMaxWidth,
	}
}

// Line is one positioned line of badge text.
type Line struct {
	Text     string
	Size     float64
	Width    float64
	X        float64
	Baseline float64
}

// NameLayout is the computed placement of a badge name.
type NameLayout struct {
	Lines []Line
	// Top is the baseline the first line starts from.
	Top float64
}

// LastBaseline returns the baseline of the lowest drawn line, or Top when
// there are no lines.
func (n NameLayout) LastBaseline() float64 {
	if len(n.Lines) == 0 {
		return n.Top
	}
	return n.Lines[len(n.Lines)-1].Baseline
}

// SplitName normalizes whitespace in name and splits it into a first line
// holding the first word and a second line holding the rest. The second
// line is empty for single-word names; both are empty for a blank name.
func SplitName(name string) (first, rest string) {
	words := strings.Fields(name)
	if len(words) == 0 {
		return "", ""
	}
	return words[0], strings.Join(words[1:], " ")
}

// Placer lays out and draws badge names and pronouns.
type Placer struct {
	Options Options
}

// NewPlacer returns a Placer using opts.
func NewPlacer(opts Options) *Placer {
	return &Placer{Options: opts}
}

// LayoutName computes the lines for name on the badge at origin.
//
// Each line is fitted against NameMaxWidth and centered on the badge. Line i
// sits LineHeight(size) * LineSpacing * i below the previous baseline, and
// the next line starts fitting at LineShrink times this line's size. An
// empty second line is left out.
func (p *Placer) LayoutName(m Measurer, name string, origin Point) NameLayout {
	o := p.Options
	first, rest := SplitName(name)

	nl := NameLayout{Top: origin.Y + o.NameBaselineOffset}
	if first == "" {
		return nl
	}
	parts := []string{first}
	if rest != "" {
		parts = append(parts, rest)
	}

	center := CenterX(origin)
	baseline := nl.Top
	start := o.NameStartSize
	for i, text := range parts {
		size, width := Fit(text, start, o.NameMaxWidth, o.MinFontSize, m.TextWidth)
		baseline -= m.LineHeight(size) * o.LineSpacing * float64(i)
		nl.Lines = append(nl.Lines, Line{
			Text:     text,
			Size:     size,
			Width:    width,
			X:        center - width/2,
			Baseline: baseline,
		})
		start = size * o.LineShrink
	}
	return nl
}

// DrawName draws every line of nl with the engraved effect: a gray copy
// offset (+1, -1), a black copy offset (+0.5, -0.5) and the ink copy on top.
func (p *Placer) DrawName(c Canvas, nl NameLayout) {
	for _, l := range nl.Lines {
		c.DrawText(l.Text, l.X+1, l.Baseline-1, l.Size, Shadow)
		c.DrawText(l.Text, l.X+0.5, l.Baseline-0.5, l.Size, Outline)
		c.DrawText(l.Text, l.X, l.Baseline, l.Size, Ink)
	}
}

// PlaceName lays out and draws name on the badge at origin.
func (p *Placer) PlaceName(c Canvas, name string, origin Point) NameLayout {
	nl := p.LayoutName(c, name, origin)
	p.DrawName(c, nl)
	return nl
}

// LayoutPronouns computes the pronoun line for the badge at origin, placed
// PronounOffset below nameBaseline. It reports false when pronouns is blank.
func (p *Placer) LayoutPronouns(m Measurer, pronouns string, origin Point, nameBaseline float64) (Line, bool) {
	pronouns = strings.Join(strings.Fields(pronouns), " ")
	if pronouns == "" {
		return Line{}, false
	}
	o := p.Options
	text := "(" + pronouns + ")"
	size, width := Fit(text, o.PronounSize, o.PronounMaxWidth, o.MinFontSize, m.TextWidth)
	return Line{
		Text:     text,
		Size:     size,
		Width:    width,
		X:        CenterX(origin) - width/2,
		Baseline: nameBaseline - o.PronounOffset,
	}, true
}

// PlacePronouns draws pronouns below the name block. Blank pronouns draw
// nothing.
func (p *Placer) PlacePronouns(c Canvas, pronouns string, origin Point, nameBaseline float64) (Line, bool) {
	l, ok := p.LayoutPronouns(c, pronouns, origin, nameBaseline)
	if ok {
		c.DrawText(l.Text, l.X, l.Baseline, l.Size, Ink)
	}
	return l, ok
}
