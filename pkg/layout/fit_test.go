package layout

import (
	"fmt"
	"testing"
)

func monospace(text string, size float64) float64 {
	return float64(len([]rune(text))) * size * 0.5
}

func TestFit(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		start     float64
		maxWidth  float64
		minSize   float64
		wantSize  float64
		wantWidth float64
	}{
		{"fits at start", "Ann", 30, 100, 1, 30, 45},
		{"steps down to fit", "Janet", 30, 70, 1, 28, 70},
		{"long name shrinks", "Bartholomew", 30, 100, 1, 18, 99},
		{"fractional start floors", "Jordan Smith", 19.2, 100, 1, 16, 96},
		{"clamped at minimum", "Wolfeschlegelsteinhausenbergerdorff", 30, 10, 4, 4, 70},
		{"zero minimum uses default", "abcdefghij", 30, 1, 0, 1, 5},
		{"empty always fits", "", 30, 0, 1, 30, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			size, width := Fit(tt.text, tt.start, tt.maxWidth, tt.minSize, monospace)
			if size != tt.wantSize || width != tt.wantWidth {
				t.Errorf("Fit(%q, %v, %v) = (%v, %v), want (%v, %v)",
					tt.text, tt.start, tt.maxWidth, size, width, tt.wantSize, tt.wantWidth)
			}
		})
	}
}

func TestFitProperty(t *testing.T) {
	texts := []string{"A", "Jo", "Jane", "Maximilian", "Jordan Smith", "de la Cruz-Hernandez"}
	for _, text := range texts {
		for _, limit := range []float64{20, 50, 100, 150} {
			t.Run(fmt.Sprintf("%s/%v", text, limit), func(t *testing.T) {
				size, _ := Fit(text, 30, limit, 1, monospace)
				fits := monospace(text, size) <= limit
				if !fits && size != 1 {
					t.Errorf("size %v does not fit and is not the minimum", size)
				}
				if size < 30 && monospace(text, size+1) <= limit {
					t.Errorf("size %v is not the largest fitting size", size)
				}
			})
		}
	}
}

func TestFitStopsAtMinimum(t *testing.T) {
	calls := 0
	measure := func(string, float64) float64 {
		calls++
		return 1e9
	}
	size, _ := Fit("never fits", 30, 100, 1, measure)
	if size != 1 {
		t.Errorf("size = %v, want 1", size)
	}
	if calls != 30 {
		t.Errorf("measure called %d times, want 30", calls)
	}
}
