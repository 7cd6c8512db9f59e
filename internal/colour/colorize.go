package colour

import "strings"

// Colorize paints the text with the palette spread across its length
// and appends a reset so the colouring never leaks past the output.
// Positions are rune positions; combining marks and double-width glyphs
// count as ordinary runes.
//
// With spaceOnly set, only spaces receive colour. That mode is meant
// for block art drawn with background-coloured spaces: glyphs pass
// through unstyled, and a reset is emitted at every space-to-glyph
// boundary so the glyph is not painted with the preceding stripe.
//
// Empty text yields just the reset sequence.
func (p *Palette) Colorize(text string, layer Layer, spaceOnly bool) (string, error) {
	runes := []rune(text)

	colours, err := p.Distribute(len(runes))
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for i, r := range runes {
		if spaceOnly && r != ' ' {
			if i > 0 && runes[i-1] == ' ' {
				b.WriteString(Reset)
			}
			b.WriteRune(r)
			continue
		}
		b.WriteString(colours[i].Sequence(layer))
		b.WriteRune(r)
	}
	b.WriteString(Reset)

	return b.String(), nil
}
