package colour

import (
	"image"
	"image/color"
	"math"
	"testing"
)

// stripeImage builds a test image of equal-width vertical stripes.
func stripeImage(stripes []color.RGBA, width, height int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	stripeWidth := width / len(stripes)
	for x := 0; x < width; x++ {
		idx := min(x/stripeWidth, len(stripes)-1)
		for y := 0; y < height; y++ {
			img.Set(x, y, stripes[idx])
		}
	}
	return img
}

func TestKMeansExtract(t *testing.T) {
	img := stripeImage([]color.RGBA{
		{R: 255, A: 255},
		{G: 255, A: 255},
		{B: 255, A: 255},
	}, 90, 30)

	extractor := NewKMeansExtractor()
	colours, err := extractor.Extract(img, 3)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	if len(colours) != 3 {
		t.Fatalf("Extract() returned %d colours, want 3", len(colours))
	}

	total := 0.0
	for _, wc := range colours {
		total += wc.Weight
	}
	if math.Abs(total-1.0) > 0.001 {
		t.Errorf("weights sum to %f, want 1", total)
	}

	// Every dominant channel should be represented.
	var sawRed, sawGreen, sawBlue bool
	for _, wc := range colours {
		c := wc.Colour
		switch {
		case c.R > c.G && c.R > c.B:
			sawRed = true
		case c.G > c.R && c.G > c.B:
			sawGreen = true
		case c.B > c.R && c.B > c.G:
			sawBlue = true
		}
	}
	if !sawRed || !sawGreen || !sawBlue {
		t.Errorf("Extract() missed a stripe: red=%v green=%v blue=%v (%v)", sawRed, sawGreen, sawBlue, colours)
	}
}

func TestKMeansExtractFewUniqueColours(t *testing.T) {
	// Asking for more colours than the image has returns each unique
	// colour once, dominant first.
	img := stripeImage([]color.RGBA{
		{R: 255, A: 255},
		{R: 255, A: 255},
		{R: 255, A: 255},
		{B: 255, A: 255},
	}, 80, 20)

	extractor := NewKMeansExtractor()
	colours, err := extractor.Extract(img, 16)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	if len(colours) != 2 {
		t.Fatalf("Extract() returned %d colours, want 2", len(colours))
	}
	if colours[0].Colour != (RGB{R: 255}) {
		t.Errorf("dominant colour = %s, want #ff0000", colours[0].Colour.Hex())
	}
	if colours[0].Weight <= colours[1].Weight {
		t.Errorf("weights not dominant-first: %f <= %f", colours[0].Weight, colours[1].Weight)
	}
}

func TestKMeansExtractErrors(t *testing.T) {
	extractor := NewKMeansExtractor()
	img := stripeImage([]color.RGBA{{R: 255, A: 255}}, 10, 10)

	if _, err := extractor.Extract(nil, 4); err == nil {
		t.Error("Extract(nil) did not return an error")
	}
	if _, err := extractor.Extract(img, 0); err == nil {
		t.Error("Extract() with zero count did not return an error")
	}
	if _, err := extractor.Extract(img, 300); err == nil {
		t.Error("Extract() with oversized count did not return an error")
	}
}

func TestNewExtractor(t *testing.T) {
	if _, err := NewExtractor(AlgorithmKMeans); err != nil {
		t.Errorf("NewExtractor(kmeans) error = %v", err)
	}
	if _, err := NewExtractor("voronoi"); err == nil {
		t.Error("NewExtractor() with unknown algorithm did not return an error")
	}
}

func TestExtractorConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  ExtractorConfig
		wantErr bool
	}{
		{
			name:   "default config is valid",
			config: DefaultExtractorConfig(),
		},
		{
			name:    "unknown algorithm",
			config:  ExtractorConfig{Algorithm: "bogus", ColourCount: 8},
			wantErr: true,
		},
		{
			name:    "zero colours",
			config:  ExtractorConfig{Algorithm: AlgorithmKMeans, ColourCount: 0},
			wantErr: true,
		},
		{
			name:    "too many colours",
			config:  ExtractorConfig{Algorithm: AlgorithmKMeans, ColourCount: 300},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSortWeighted(t *testing.T) {
	colours := func() []WeightedColour {
		return []WeightedColour{
			{Colour: RGB{R: 255, G: 255, B: 255}, Weight: 0.2}, // lum 1.0
			{Colour: RGB{R: 0, G: 0, B: 0}, Weight: 0.5},       // lum 0.0
			{Colour: RGB{R: 0, G: 0, B: 255}, Weight: 0.3},     // hue 240
		}
	}

	byWeight := colours()
	if err := SortWeighted(byWeight, SortWeight); err != nil {
		t.Fatalf("SortWeighted(weight) error = %v", err)
	}
	if byWeight[0].Weight != 0.5 || byWeight[2].Weight != 0.2 {
		t.Errorf("weight sort order wrong: %v", byWeight)
	}

	byLum := colours()
	if err := SortWeighted(byLum, SortLuminance); err != nil {
		t.Fatalf("SortWeighted(luminance) error = %v", err)
	}
	if byLum[0].Colour != (RGB{}) || byLum[2].Colour != (RGB{R: 255, G: 255, B: 255}) {
		t.Errorf("luminance sort order wrong: %v", byLum)
	}

	if err := SortWeighted(colours(), "sideways"); err == nil {
		t.Error("SortWeighted() with unknown mode did not return an error")
	}
}

func TestPaletteFromWeighted(t *testing.T) {
	p, err := PaletteFromWeighted([]WeightedColour{
		{Colour: RGB{R: 255}, Weight: 0.7},
		{Colour: RGB{B: 255}, Weight: 0.3},
	})
	if err != nil {
		t.Fatalf("PaletteFromWeighted() error = %v", err)
	}
	if p.Len() != 2 {
		t.Errorf("Len() = %d, want 2", p.Len())
	}
	if first, _ := p.Get(0); first != (RGB{R: 255}) {
		t.Errorf("first colour = %s, want #ff0000", first.Hex())
	}

	if _, err := PaletteFromWeighted(nil); err == nil {
		t.Error("PaletteFromWeighted(nil) did not return an error")
	}
}
