package layout_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/larktraditionalarts/badge-pdf-creator/pkg/layout"
	"github.com/larktraditionalarts/badge-pdf-creator/pkg/layout/layouttest"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestSplitName(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantFirst string
		wantRest  string
	}{
		{"three words", "Jane Jordan Smith", "Jane", "Jordan Smith"},
		{"single word", "Cher", "Cher", ""},
		{"extra whitespace", "  Jane \t Jordan   Smith ", "Jane", "Jordan Smith"},
		{"blank", "   ", "", ""},
		{"empty", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, rest := layout.SplitName(tt.input)
			if first != tt.wantFirst || rest != tt.wantRest {
				t.Errorf("SplitName(%q) = (%q, %q), want (%q, %q)",
					tt.input, first, rest, tt.wantFirst, tt.wantRest)
			}
		})
	}
}

func TestLayoutName(t *testing.T) {
	p := layout.NewPlacer(layout.DefaultOptions())
	rec := &layouttest.Recorder{}
	origin := layout.CellOrigin(layout.Cell{})

	got := p.LayoutName(rec, "Jane Jordan Smith", origin)

	want := layout.NameLayout{
		Top: 125,
		Lines: []layout.Line{
			{Text: "Jane", Size: 30, Width: 60, X: 78.68, Baseline: 125},
			{Text: "Jordan Smith", Size: 16, Width: 96, X: 60.68, Baseline: 125 - 16*1.2},
		},
	}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("LayoutName() mismatch (-want +got):\n%s", diff)
	}
	if len(rec.Ops) != 0 {
		t.Errorf("LayoutName drew %d ops, want none", len(rec.Ops))
	}
}

func TestLayoutNameSingleWord(t *testing.T) {
	p := layout.NewPlacer(layout.DefaultOptions())
	got := p.LayoutName(&layouttest.Recorder{}, "Cher", layout.Point{})

	if len(got.Lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(got.Lines))
	}
	if got.LastBaseline() != got.Lines[0].Baseline {
		t.Errorf("LastBaseline() = %v, want first line baseline %v", got.LastBaseline(), got.Lines[0].Baseline)
	}
}

func TestLayoutNameBlank(t *testing.T) {
	p := layout.NewPlacer(layout.DefaultOptions())
	got := p.LayoutName(&layouttest.Recorder{}, "  ", layout.Point{Y: 10})

	if len(got.Lines) != 0 {
		t.Errorf("got %d lines, want 0", len(got.Lines))
	}
	if got.LastBaseline() != 125 {
		t.Errorf("LastBaseline() = %v, want 125", got.LastBaseline())
	}
}

func TestLayoutNameStaysInsideWidth(t *testing.T) {
	opts := layout.DefaultOptions()
	p := layout.NewPlacer(opts)
	rec := &layouttest.Recorder{}
	origin := layout.CellOrigin(layout.Cell{Row: 2, Col: 1})

	names := []string{
		"Al",
		"Maximiliana Featherstonehaugh-Cholmondeley",
		"Wolfeschlegelsteinhausenbergerdorff",
		"Mary Ann de la Cruz",
	}
	for _, name := range names {
		nl := p.LayoutName(rec, name, origin)
		for i, l := range nl.Lines {
			if l.Width > opts.NameMaxWidth && l.Size != opts.MinFontSize {
				t.Errorf("%q line %d width %v exceeds %v", name, i, l.Width, opts.NameMaxWidth)
			}
			center := l.X + l.Width/2
			if math.Abs(center-layout.CenterX(origin)) > 1e-9 {
				t.Errorf("%q line %d not centered: %v", name, i, center)
			}
			if i > 0 && l.Size > nl.Lines[i-1].Size*opts.LineShrink {
				t.Errorf("%q line %d size %v above shrink of %v", name, i, l.Size, nl.Lines[i-1].Size)
			}
		}
	}
}

func TestLayoutNameLineSpacing(t *testing.T) {
	opts := layout.DefaultOptions()
	opts.LineSpacing = 0.8
	p := layout.NewPlacer(opts)

	got := p.LayoutName(&layouttest.Recorder{}, "Ada Lovelace", layout.Point{})
	// "Lovelace" starts at 24 and fits at 24: 8 chars * 24 * 0.5 = 96.
	want := 115 - 24*1.2*0.8
	if math.Abs(got.LastBaseline()-want) > 1e-9 {
		t.Errorf("LastBaseline() = %v, want %v", got.LastBaseline(), want)
	}
}

func TestPlaceNameDrawsLayers(t *testing.T) {
	p := layout.NewPlacer(layout.DefaultOptions())
	rec := &layouttest.Recorder{}

	nl := p.PlaceName(rec, "Cher", layout.Point{})
	l := nl.Lines[0]

	want := []layouttest.Op{
		{Kind: layouttest.OpText, Name: "Cher", X: l.X + 1, Y: l.Baseline - 1, Size: l.Size, Color: layout.Shadow},
		{Kind: layouttest.OpText, Name: "Cher", X: l.X + 0.5, Y: l.Baseline - 0.5, Size: l.Size, Color: layout.Outline},
		{Kind: layouttest.OpText, Name: "Cher", X: l.X, Y: l.Baseline, Size: l.Size, Color: layout.Ink},
	}
	if diff := cmp.Diff(want, rec.Ops, approx); diff != "" {
		t.Errorf("PlaceName() ops mismatch (-want +got):\n%s", diff)
	}
}

func TestPlacePronouns(t *testing.T) {
	p := layout.NewPlacer(layout.DefaultOptions())
	origin := layout.CellOrigin(layout.Cell{})

	rec := &layouttest.Recorder{}
	l, ok := p.PlacePronouns(rec, "she/her", origin, 105.8)
	if !ok {
		t.Fatal("PlacePronouns() reported nothing placed")
	}
	want := layout.Line{Text: "(she/her)", Size: 14, Width: 63, X: 77.18, Baseline: 81.8}
	if diff := cmp.Diff(want, l, approx); diff != "" {
		t.Errorf("PlacePronouns() mismatch (-want +got):\n%s", diff)
	}
	if n := len(rec.Ops); n != 1 {
		t.Fatalf("got %d draw calls, want 1", n)
	}
	if rec.Ops[0].Color != layout.Ink {
		t.Errorf("pronoun color = %v, want %v", rec.Ops[0].Color, layout.Ink)
	}
}

func TestPlacePronounsEmpty(t *testing.T) {
	p := layout.NewPlacer(layout.DefaultOptions())
	for _, pn := range []string{"", "   ", "\t"} {
		rec := &layouttest.Recorder{}
		if _, ok := p.PlacePronouns(rec, pn, layout.Point{}, 100); ok {
			t.Errorf("PlacePronouns(%q) reported a placement", pn)
		}
		if len(rec.Ops) != 0 {
			t.Errorf("PlacePronouns(%q) made %d draw calls, want 0", pn, len(rec.Ops))
		}
	}
}
