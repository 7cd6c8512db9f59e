// Package colour provides true-colour palette handling and text colouring.
package colour

import (
	"fmt"
	"strings"
)

// ANSI escape codes for terminal colours.
const (
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// Reset is the ANSI sequence that clears all colour attributes.
const Reset = "\033[0m"

// Layer selects whether a colour applies to the text itself or to the
// cell behind it.
type Layer int

const (
	// Foreground colours the glyphs.
	Foreground Layer = iota

	// Background colours the cells behind the glyphs.
	Background
)

// String returns the layer name.
func (l Layer) String() string {
	switch l {
	case Foreground:
		return "fg"
	case Background:
		return "bg"
	default:
		return fmt.Sprintf("layer(%d)", int(l))
	}
}

// ParseLayer parses a layer name. Accepts "fg"/"foreground" and
// "bg"/"background", case-insensitive.
func ParseLayer(s string) (Layer, error) {
	switch strings.ToLower(s) {
	case "fg", "foreground":
		return Foreground, nil
	case "bg", "background":
		return Background, nil
	default:
		return Foreground, fmt.Errorf("invalid layer %q (valid: fg, bg)", s)
	}
}

// Sequence returns the ANSI 24-bit SGR escape sequence that selects
// this colour on the given layer.
func (rgb RGB) Sequence(layer Layer) string {
	prefix := ansiFgPrefix
	if layer == Background {
		prefix = ansiBgPrefix
	}
	return fmt.Sprintf("%s%d;%d;%d%s", prefix, rgb.R, rgb.G, rgb.B, ansiSuffix)
}

// ColourPreview returns an ANSI-coloured preview string for a colour.
// Width specifies how many characters wide the colour block should be.
// Uses background colour with spaces for a solid block.
func ColourPreview(c RGB, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	block := strings.Repeat(" ", width)

	return c.Sequence(Background) + block + Reset
}

// ColourPreviewWithText returns a colour preview with text overlay.
// The text colour is chosen to have good contrast with the background.
func ColourPreviewWithText(c RGB, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	fg := ContrastingText(c)

	// Pad or truncate text to fit width.
	displayText := text
	if len(text) > width {
		displayText = text[:width]
	} else if len(text) < width {
		padding := (width - len(text)) / 2
		displayText = strings.Repeat(" ", padding) + text + strings.Repeat(" ", width-len(text)-padding)
	}

	return c.Sequence(Background) + fg.Sequence(Foreground) + displayText + Reset
}

// ContrastingText returns black or white, whichever reads better
// against the given background colour.
func ContrastingText(background RGB) RGB {
	black := RGB{R: 0, G: 0, B: 0}
	white := RGB{R: 255, G: 255, B: 255}

	if ContrastRatio(background, black) >= ContrastRatio(background, white) {
		return black
	}
	return white
}

// FormatColourWithPreview formats a colour with its preview and hex code.
func FormatColourWithPreview(rgb RGB, width int) string {
	preview := ColourPreview(rgb, width)
	return fmt.Sprintf("%s %s", preview, rgb.Hex())
}

// FormatColourWithLabel formats a colour with a label and preview.
func FormatColourWithLabel(rgb RGB, label string, width int) string {
	preview := ColourPreview(rgb, width)
	return fmt.Sprintf("%s  %-20s %s", preview, label, rgb.Hex())
}
