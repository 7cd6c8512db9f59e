// Package colour provides true-colour palette handling and text colouring.
package colour

import (
	"fmt"
	"image"
	"sort"
)

// WeightedColour is a colour with its relative share of the source
// image, in the range (0, 1].
type WeightedColour struct {
	Colour RGB
	Weight float64
}

// Extractor defines the interface for colour extraction algorithms.
type Extractor interface {
	// Extract extracts colours from an image together with their
	// relative weights. The count parameter specifies the number of
	// colours to extract.
	Extract(img image.Image, count int) ([]WeightedColour, error)
}

// Algorithm represents the colour extraction algorithm type.
type Algorithm string

const (
	// AlgorithmKMeans uses k-means clustering for colour extraction.
	AlgorithmKMeans Algorithm = "kmeans"
)

// ValidAlgorithms returns a list of valid algorithm names.
func ValidAlgorithms() []Algorithm {
	return []Algorithm{
		AlgorithmKMeans,
	}
}

// IsValidAlgorithm checks if the given algorithm name is valid.
func IsValidAlgorithm(alg Algorithm) bool {
	for _, valid := range ValidAlgorithms() {
		if alg == valid {
			return true
		}
	}
	return false
}

// NewExtractor creates a new Extractor based on the specified algorithm.
// Returns an error if the algorithm is not recognized.
func NewExtractor(alg Algorithm) (Extractor, error) {
	switch alg {
	case AlgorithmKMeans:
		return NewKMeansExtractor(), nil
	default:
		return nil, fmt.Errorf("unknown algorithm: %s (valid algorithms: %v)", alg, ValidAlgorithms())
	}
}

// ExtractorConfig holds configuration for colour extraction.
type ExtractorConfig struct {
	Algorithm   Algorithm
	ColourCount int
}

// DefaultExtractorConfig returns the default extractor configuration.
func DefaultExtractorConfig() ExtractorConfig {
	return ExtractorConfig{
		Algorithm:   AlgorithmKMeans,
		ColourCount: 6,
	}
}

// Validate validates the extractor configuration.
func (c ExtractorConfig) Validate() error {
	if !IsValidAlgorithm(c.Algorithm) {
		return fmt.Errorf("invalid algorithm: %s", c.Algorithm)
	}
	if c.ColourCount < 1 {
		return fmt.Errorf("colour count must be at least 1, got %d", c.ColourCount)
	}
	if c.ColourCount > 256 {
		return fmt.Errorf("colour count too large: %d (maximum: 256)", c.ColourCount)
	}
	return nil
}

// SortMode selects how extracted colours are ordered before they become
// palette stripes.
type SortMode string

const (
	// SortWeight orders by cluster weight, dominant colour first.
	SortWeight SortMode = "weight"

	// SortLuminance orders dark to light.
	SortLuminance SortMode = "luminance"

	// SortHue orders around the colour wheel.
	SortHue SortMode = "hue"
)

// ValidSortModes returns a list of valid sort mode names.
func ValidSortModes() []SortMode {
	return []SortMode{SortWeight, SortLuminance, SortHue}
}

// SortWeighted sorts extracted colours in place according to the mode.
func SortWeighted(colours []WeightedColour, mode SortMode) error {
	switch mode {
	case SortWeight:
		sort.SliceStable(colours, func(i, j int) bool {
			return colours[i].Weight > colours[j].Weight
		})
	case SortLuminance:
		sort.SliceStable(colours, func(i, j int) bool {
			return Luminance(colours[i].Colour) < Luminance(colours[j].Colour)
		})
	case SortHue:
		sort.SliceStable(colours, func(i, j int) bool {
			hi, _, _ := rgbToHSL(colours[i].Colour)
			hj, _, _ := rgbToHSL(colours[j].Colour)
			return hi < hj
		})
	default:
		return fmt.Errorf("unknown sort mode: %s (valid modes: %v)", mode, ValidSortModes())
	}
	return nil
}

// PaletteFromWeighted builds a palette from extracted colours,
// preserving their current order.
func PaletteFromWeighted(colours []WeightedColour) (*Palette, error) {
	rgbs := make([]RGB, len(colours))
	for i, wc := range colours {
		rgbs[i] = wc.Colour
	}
	return NewPaletteRGB(rgbs)
}
