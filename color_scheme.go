package histsearch

import (
	"fmt"
	"strings"
)

// ColorScheme defines the styling for the search prompt.
type ColorScheme struct {
	Name  string `json:"name"`
	Label Color  `json:"label"` // the "bck-i-search: " label
	Input Color  `json:"input"` // the user's query text
	Match Color  `json:"match"` // highlighted occurrences inside the entry
}

// Color represents an RGB color with optional formatting.
type Color struct {
	R      uint8 `json:"r"`
	G      uint8 `json:"g"`
	B      uint8 `json:"b"`
	Bold   bool  `json:"bold"`
	Invert bool  `json:"invert"`
}

// ThemeDefault highlights matches in red, inverted and bold.
var ThemeDefault = &ColorScheme{
	Name:  "default",
	Label: Color{R: 0, G: 255, B: 0, Bold: true},
	Input: Color{R: 255, G: 255, B: 255, Bold: true},
	Match: Color{R: 255, G: 0, B: 0, Bold: true, Invert: true},
}

// ThemeMono highlights matches with inversion only, for terminals where
// true color output is undesirable.
var ThemeMono = &ColorScheme{
	Name:  "mono",
	Label: Color{R: 255, G: 255, B: 255, Bold: true},
	Input: Color{R: 255, G: 255, B: 255, Bold: false},
	Match: Color{R: 255, G: 255, B: 255, Invert: true},
}

// ToANSI converts a Color to an ANSI escape sequence.
func (c Color) ToANSI() string {
	var codes []string

	// Attribute codes come first
	if c.Bold {
		codes = append(codes, "1")
	}
	if c.Invert {
		codes = append(codes, "7")
	}

	// RGB color (true color support)
	codes = append(codes, fmt.Sprintf("38;2;%d;%d;%d", c.R, c.G, c.B))

	return fmt.Sprintf("\x1b[%sm", strings.Join(codes, ";"))
}

// Reset returns the ANSI reset sequence.
func Reset() string {
	return "\x1b[0m"
}
