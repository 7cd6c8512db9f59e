// Package colour provides true-colour palette handling and text colouring.
package colour

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Sentinel errors returned by palette construction and colour parsing.
// Callers should match them with errors.Is.
var (
	// ErrColourParse indicates a malformed hex colour string.
	ErrColourParse = errors.New("invalid colour")

	// ErrEmptyPalette indicates an attempt to build a palette with no colours.
	ErrEmptyPalette = errors.New("palette must contain at least one colour")
)

// RGB represents a colour in 24-bit RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// ParseHex parses a hex colour string in the form "#RRGGBB".
// The leading hash is optional and hex digits are case-insensitive.
// The returned error wraps ErrColourParse and names the offending input.
func ParseHex(hex string) (RGB, error) {
	trimmed := strings.TrimPrefix(hex, "#")
	if len(trimmed) != 6 {
		return RGB{}, fmt.Errorf("%w: %q (expected #RRGGBB)", ErrColourParse, hex)
	}

	r, err := parseHexByte(trimmed[0:2])
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q: %v", ErrColourParse, hex, err)
	}
	g, err := parseHexByte(trimmed[2:4])
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q: %v", ErrColourParse, hex, err)
	}
	b, err := parseHexByte(trimmed[4:6])
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q: %v", ErrColourParse, hex, err)
	}

	return RGB{R: r, G: g, B: b}, nil
}

// MustParseHex is like ParseHex but panics on malformed input.
// Intended for compile-time colour literals such as the preset tables.
func MustParseHex(hex string) RGB {
	rgb, err := ParseHex(hex)
	if err != nil {
		panic(err)
	}
	return rgb
}

// parseHexByte converts a two-character hex string to a byte.
func parseHexByte(s string) (uint8, error) {
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid hex byte %q", s)
	}
	return uint8(v), nil
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// Lighten scales the colour's HSL lightness by the given multiplier,
// clamped to [0, 1]. Values above 1 lighten, below 1 darken.
func (rgb RGB) Lighten(multiplier float64) RGB {
	h, s, l := rgbToHSL(rgb)
	return HSLToRGB(h, s, clamp01(l*multiplier))
}

// SetLightness returns the colour with its HSL lightness replaced by
// the given level, clamped to [0, 1].
func (rgb RGB) SetLightness(level float64) RGB {
	h, s, _ := rgbToHSL(rgb)
	return HSLToRGB(h, s, clamp01(level))
}

// ToRGB converts a color.Color to RGB.
func ToRGB(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	// RGBA returns values in the range [0, 65535], convert to [0, 255]
	return RGB{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
	}
}

// Spacing selects how a palette spreads its colours across a span of text.
type Spacing int

const (
	// SpacingEqual gives every colour an equal share of the span, with
	// remainder positions absorbed by the centre and outer stripes.
	SpacingEqual Spacing = iota

	// SpacingWeighted is reserved for per-stripe weighting. Palettes
	// using it fail fast until the mode is implemented.
	SpacingWeighted
)

// String returns the spacing mode name.
func (s Spacing) String() string {
	switch s {
	case SpacingEqual:
		return "equal"
	case SpacingWeighted:
		return "weighted"
	default:
		return fmt.Sprintf("spacing(%d)", int(s))
	}
}

// Palette is an ordered, immutable sequence of stripe colours.
// A palette always contains at least one colour; all methods are safe
// for concurrent use.
type Palette struct {
	colours []RGB
	spacing Spacing
}

// NewPalette creates a palette from hex colour strings, preserving order.
// Returns ErrEmptyPalette when no colours are given and ErrColourParse
// when any entry is malformed.
func NewPalette(hexes ...string) (*Palette, error) {
	if len(hexes) == 0 {
		return nil, ErrEmptyPalette
	}

	colours := make([]RGB, len(hexes))
	for i, hex := range hexes {
		rgb, err := ParseHex(hex)
		if err != nil {
			return nil, err
		}
		colours[i] = rgb
	}

	return &Palette{colours: colours}, nil
}

// NewPaletteRGB creates a palette from RGB values, preserving order.
// Returns ErrEmptyPalette when no colours are given.
func NewPaletteRGB(colours []RGB) (*Palette, error) {
	if len(colours) == 0 {
		return nil, ErrEmptyPalette
	}

	// Copy so later mutation of the caller's slice cannot reach us.
	own := make([]RGB, len(colours))
	copy(own, colours)

	return &Palette{colours: own}, nil
}

// Len returns the number of colours in the palette.
func (p *Palette) Len() int {
	return len(p.colours)
}

// Spacing returns the palette's spacing mode.
func (p *Palette) Spacing() Spacing {
	return p.spacing
}

// WithSpacing returns a copy of the palette with the given spacing mode.
func (p *Palette) WithSpacing(s Spacing) *Palette {
	return &Palette{colours: p.colours, spacing: s}
}

// Colours returns a copy of the palette's colours in order.
func (p *Palette) Colours() []RGB {
	out := make([]RGB, len(p.colours))
	copy(out, p.colours)
	return out
}

// Get returns the colour at the specified index.
// Returns an error if the index is out of bounds.
func (p *Palette) Get(index int) (RGB, error) {
	if index < 0 || index >= len(p.colours) {
		return RGB{}, fmt.Errorf("index out of bounds: %d (palette has %d colours)", index, len(p.colours))
	}
	return p.colours[index], nil
}

// All returns an iterator over the palette's colours in order.
func (p *Palette) All() func(func(int, RGB) bool) {
	return func(yield func(int, RGB) bool) {
		for i, c := range p.colours {
			if !yield(i, c) {
				return
			}
		}
	}
}

// Expand repeats each colour weights[i] times in palette order. The
// output length equals the sum of the weights; zero weights drop their
// colour from the result. The weights slice must have exactly one entry
// per palette colour; a mismatch is a programming error and panics.
func (p *Palette) Expand(weights []int) []RGB {
	if len(weights) != len(p.colours) {
		panic(fmt.Sprintf("colour: %d weights for palette of %d colours", len(weights), len(p.colours)))
	}

	total := 0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}

	out := make([]RGB, 0, total)
	for i, w := range weights {
		for range w {
			out = append(out, p.colours[i])
		}
	}
	return out
}

// Distribute spreads the palette across a span of the given length and
// returns one colour per position. Every colour gets length/N positions;
// remainder positions go to the centre stripe first (when the remainder
// is odd) and then to symmetric outer stripe pairs, so the weight vector
// of a palindromic palette stays palindromic.
//
// A length shorter than the palette leaves interior colours with zero
// positions. Distribute(0) returns an empty slice; a negative length is
// an error.
func (p *Palette) Distribute(length int) ([]RGB, error) {
	if len(p.colours) == 0 {
		return nil, ErrEmptyPalette
	}
	if length < 0 {
		return nil, fmt.Errorf("length must be non-negative, got %d", length)
	}
	if p.spacing == SpacingWeighted {
		return nil, fmt.Errorf("weighted spacing is not implemented")
	}

	n := len(p.colours)

	// Minimum copies of every colour.
	weights := make([]int, n)
	for i := range weights {
		weights[i] = length / n
	}

	// Leftover positions after the even split.
	extras := length % n

	// An odd leftover extends the centre stripe by one.
	if extras%2 == 1 {
		extras--
		weights[n/2]++
	}

	// Remaining leftovers grow symmetric stripe pairs from the outside in.
	for border := 0; extras > 0; border++ {
		weights[border]++
		weights[n-1-border]++
		extras -= 2
	}

	return p.Expand(weights), nil
}

// Lighten returns a new palette with every colour's lightness scaled by
// the given multiplier.
func (p *Palette) Lighten(multiplier float64) *Palette {
	out := make([]RGB, len(p.colours))
	for i, c := range p.colours {
		out[i] = c.Lighten(multiplier)
	}
	return &Palette{colours: out, spacing: p.spacing}
}

// SetLightness returns a new palette with every colour's lightness set
// to the given level. Useful for adapting a palette to dark or light
// terminal backgrounds.
func (p *Palette) SetLightness(level float64) *Palette {
	out := make([]RGB, len(p.colours))
	for i, c := range p.colours {
		out[i] = c.SetLightness(level)
	}
	return &Palette{colours: out, spacing: p.spacing}
}

// ToHex converts the palette colours to hex strings.
// Returns a slice of hex colour codes (e.g., ["#1a2b3c", "#4d5e6f"]).
func (p *Palette) ToHex() []string {
	hexColours := make([]string, len(p.colours))
	for i, c := range p.colours {
		hexColours[i] = c.Hex()
	}
	return hexColours
}

// ColorJSON represents a colour in JSON output format.
type ColorJSON struct {
	Hex string `json:"hex"`
	RGB RGB    `json:"rgb"`
}

// PaletteJSON represents the palette in JSON format.
type PaletteJSON struct {
	Count  int         `json:"count"`
	Colors []ColorJSON `json:"colors"`
}

// ToJSON converts the palette to JSON format.
func (p *Palette) ToJSON() ([]byte, error) {
	colors := make([]ColorJSON, len(p.colours))
	for i, c := range p.colours {
		colors[i] = ColorJSON{
			Hex: c.Hex(),
			RGB: c,
		}
	}

	paletteJSON := PaletteJSON{
		Count:  len(p.colours),
		Colors: colors,
	}

	return json.MarshalIndent(paletteJSON, "", "  ")
}

// String returns a human-readable string representation of the palette.
func (p *Palette) String() string {
	result := fmt.Sprintf("Palette with %d colours:\n", len(p.colours))
	for i, c := range p.colours {
		result += fmt.Sprintf("  %2d: %s (%s)\n", i+1, c.Hex(), c.String())
	}
	return result
}

// clamp01 clamps v to the closed interval [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
