// Package fonts provides font files compiled into the binary.
//
// The Go font family covers Latin, Greek and Cyrillic, so names outside
// the WinAnsi range of the standard PDF fonts still render when no font
// file is installed next to the config.
package fonts

import (
	"slices"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/goregular"
)

// Embedded font names.
const (
	GoRegular = "Go-Regular"
	GoMedium  = "Go-Medium"
	GoBold    = "Go-Bold"
)

var embedded = map[string][]byte{
	GoRegular: goregular.TTF,
	GoMedium:  gomedium.TTF,
	GoBold:    gobold.TTF,
}

// TTF returns the TrueType data of the embedded font name.
func TTF(name string) ([]byte, bool) {
	data, ok := embedded[name]
	return data, ok
}

// Names returns the embedded font names in sorted order.
func Names() []string {
	names := make([]string, 0, len(embedded))
	for name := range embedded {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
