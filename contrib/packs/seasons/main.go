// seasons - Seasonal Palette Pack (Vexil Palette Pack)
//
// Serves four five-stripe palettes named after the seasons. Mostly
// useful as a worked example of the pack API: implement pack.Provider,
// answer --pack-info with JSON metadata, and hand the provider to
// pack.Serve.
//
// Build:
//   go build -o seasons
//
// Usage:
//   vexil presets --pack ./seasons
//   vexil paint --pack ./seasons -p autumn "harvest moon"
//
// Author: Vexil Contributors
// License: MIT

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/jmylchreest/vexil/pkg/pack"
)

// SeasonsPack implements the pack.Provider interface.
type SeasonsPack struct{}

// palettes holds the pack's palettes keyed by name.
var palettes = map[string]pack.PaletteData{
	"spring": {
		Name:        "spring",
		Description: "Fresh greens, blossom and a clear sky",
		Colours: []pack.RGBColour{
			{R: 168, G: 224, B: 99},  // #a8e063 new leaf
			{R: 86, G: 171, B: 47},   // #56ab2f grass
			{R: 255, G: 183, B: 197}, // #ffb7c5 cherry blossom
			{R: 135, G: 206, B: 235}, // #87ceeb sky
			{R: 255, G: 224, B: 102}, // #ffe066 daffodil
		},
	},
	"summer": {
		Name:        "summer",
		Description: "Sun, sea and sand",
		Colours: []pack.RGBColour{
			{R: 0, G: 191, B: 255},   // #00bfff open sky
			{R: 255, G: 215, B: 0},   // #ffd700 sun
			{R: 255, G: 127, B: 80},  // #ff7f50 coral
			{R: 32, G: 178, B: 170},  // #20b2aa shallow sea
			{R: 240, G: 230, B: 140}, // #f0e68c sand
		},
	},
	"autumn": {
		Name:        "autumn",
		Description: "Turning leaves and harvest fields",
		Colours: []pack.RGBColour{
			{R: 218, G: 165, B: 32}, // #daa520 goldenrod
			{R: 255, G: 140, B: 0},  // #ff8c00 maple
			{R: 210, G: 105, B: 30}, // #d2691e chestnut
			{R: 178, G: 34, B: 34},  // #b22222 late leaves
			{R: 139, G: 69, B: 19},  // #8b4513 bare earth
		},
	},
	"winter": {
		Name:        "winter",
		Description: "Snow, ice and long nights",
		Colours: []pack.RGBColour{
			{R: 240, G: 248, B: 255}, // #f0f8ff fresh snow
			{R: 176, G: 224, B: 230}, // #b0e0e6 hoarfrost
			{R: 135, G: 206, B: 250}, // #87cefa ice
			{R: 70, G: 130, B: 180},  // #4682b4 dusk
			{R: 47, G: 79, B: 79},    // #2f4f4f pine
		},
	},
}

// Info returns pack metadata.
func (p *SeasonsPack) Info() pack.PackInfo {
	return pack.PackInfo{
		Name:            "seasons",
		Version:         "0.0.1",
		ProtocolVersion: pack.ProtocolVersion,
		Description:     "Five-stripe palettes for the four seasons",
	}
}

// Names returns the palette names this pack provides.
func (p *SeasonsPack) Names() ([]string, error) {
	names := make([]string, 0, len(palettes))
	for name := range palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Get returns the named palette.
func (p *SeasonsPack) Get(name string) (pack.PaletteData, error) {
	palette, ok := palettes[name]
	if !ok {
		return pack.PaletteData{}, fmt.Errorf("unknown palette %q", name)
	}
	return palette, nil
}

func main() {
	// Handle --pack-info flag
	if len(os.Args) > 1 && os.Args[1] == "--pack-info" {
		p := &SeasonsPack{}
		info := p.Info()

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(info); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding pack info: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	// Serve the pack over go-plugin RPC
	pack.Serve(&SeasonsPack{})
}
