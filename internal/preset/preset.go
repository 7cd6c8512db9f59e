// Package preset holds the built-in library of named flag palettes.
package preset

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jmylchreest/vexil/internal/colour"
)

// presets maps flag names to their stripe colours, top to bottom.
// Sourced from https://www.flagcolorcodes.com/flags/pride; repeated
// entries encode stripes wider than one unit.
var presets = map[string][]string{
	"rainbow": {
		"#E50000",
		"#FF8D00",
		"#FFEE00",
		"#028121",
		"#004CFF",
		"#770088",
	},
	"transgender": {
		"#55CDFD",
		"#F6AAB7",
		"#FFFFFF",
		"#F6AAB7",
		"#55CDFD",
	},
	"nonbinary": {
		"#FCF431",
		"#FCFCFC",
		"#9D59D2",
		"#282828",
	},
	"agender": {
		"#000000",
		"#BABABA",
		"#FFFFFF",
		"#BAF484",
		"#FFFFFF",
		"#BABABA",
		"#000000",
	},
	"queer": {
		"#B57FDD",
		"#FFFFFF",
		"#49821E",
	},
	"genderfluid": {
		"#FE76A2",
		"#FFFFFF",
		"#BF12D7",
		"#000000",
		"#303CBE",
	},
	"bisexual": {
		"#D60270",
		"#9B4F96",
		"#0038A8",
	},
	"pansexual": {
		"#FF1C8D",
		"#FFD700",
		"#1AB3FF",
	},
	"lesbian": {
		"#D62800",
		"#FF9B56",
		"#FFFFFF",
		"#D462A6",
		"#A40062",
	},
	"asexual": {
		"#000000",
		"#A4A4A4",
		"#FFFFFF",
		"#810081",
	},
	"aromantic": {
		"#3BA740",
		"#A8D47A",
		"#FFFFFF",
		"#ABABAB",
		"#000000",
	},
	"autosexual": {
		"#99D9EA",
		"#7F7F7F",
	},
	"intergender": {
		"#900DC2",
		"#900DC2",
		"#FFE54F",
		"#900DC2",
		"#900DC2",
	},
	"greygender": {
		"#B3B3B3",
		"#B3B3B3",
		"#FFFFFF",
		"#062383",
		"#062383",
		"#FFFFFF",
		"#535353",
		"#535353",
	},
	"akiosexual": {
		"#F9485E",
		"#FEA06A",
		"#FEF44C",
		"#FFFFFF",
		"#000000",
	},
	"transmasculine": {
		"#FF8ABD",
		"#CDF5FE",
		"#9AEBFF",
		"#74DFFF",
		"#9AEBFF",
		"#CDF5FE",
		"#FF8ABD",
	},
	"demifaun": {
		"#7F7F7F",
		"#7F7F7F",
		"#C6C6C6",
		"#C6C6C6",
		"#FCC688",
		"#FFF19C",
		"#FFFFFF",
		"#8DE0D5",
		"#9682EC",
		"#C6C6C6",
		"#C6C6C6",
		"#7F7F7F",
		"#7F7F7F",
	},
	"neutrois": {
		"#FFFFFF",
		"#1F9F00",
		"#000000",
	},
	"biromantic alt 2": {
		"#740194",
		"#AEB1AA",
		"#FFFFFF",
		"#AEB1AA",
		"#740194",
	},
	"autoromantic": {
		"#99D9EA",
		"#99D9EA",
		"#99D9EA",
		"#99D9EA",
		"#99D9EA",
		"#000000",
		"#3DA542",
		"#3DA542",
		"#000000",
		"#7F7F7F",
		"#7F7F7F",
		"#7F7F7F",
		"#7F7F7F",
		"#7F7F7F",
	},
	"boyflux alt 2": {
		"#E48AE4",
		"#9A81B4",
		"#55BFAB",
		"#FFFFFF",
		"#A8A8A8",
		"#81D5EF",
		"#81D5EF",
		"#81D5EF",
		"#81D5EF",
		"#81D5EF",
		"#69ABE5",
		"#69ABE5",
		"#69ABE5",
		"#69ABE5",
		"#69ABE5",
		"#69ABE5",
		"#69ABE5",
		"#69ABE5",
		"#69ABE5",
		"#69ABE5",
		"#5276D4",
		"#5276D4",
		"#5276D4",
		"#5276D4",
		"#5276D4",
		"#5276D4",
		"#5276D4",
		"#5276D4",
		"#5276D4",
		"#5276D4",
	},
	"neopronoun": {
		"#BCEC64",
		"#BCEC64",
		"#BCEC64",
		"#FFFFFF",
		"#FFFFFF",
		"#38077A",
		"#38077A",
		"#38077A",
	},
	"gynesexual": {
		"#F5A9B8",
		"#8F3F2B",
		"#5B943A",
	},
	"spectrasexual": {
		"#F079FF",
		"#8879FF",
		"#FFFFFF",
		"#79FFF0",
		"#79B5FF",
	},
	"black transgender": {
		"#5BCEFA",
		"#F5A9B8",
		"#000000",
		"#F5A9B8",
		"#5BCEFA",
	},
	"aftgender": {
		"#6B30D5",
		"#6B30D5",
		"#6B30D5",
		"#6B30D5",
		"#FEEDAE",
		"#FDACE5",
	},
	"paragirl": {
		"#9D9D9D",
		"#9D9D9D",
		"#9D9D9D",
		"#FFFFFF",
		"#FFFFFF",
		"#FFFFFF",
		"#FDCDBA",
		"#FDCDBA",
		"#FDCDBA",
		"#FE8C5d",
		"#FE8C5d",
		"#FE8C5d",
		"#F42D45",
		"#FE8C5d",
		"#FE8C5d",
		"#FE8C5d",
		"#FDCDBA",
		"#FDCDBA",
		"#FDCDBA",
		"#FFFFFF",
		"#FFFFFF",
		"#FFFFFF",
		"#9D9D9D",
		"#9D9D9D",
		"#9D9D9D",
	},
	"demiandrogyne": {
		"#7E7E7E",
		"#C5C5C5",
		"#F92E8E",
		"#5721AB",
		"#09C3ED",
		"#C5C5C5",
		"#7E7E7E",
	},
	"gay male": {
		"#078D70",
		"#26CEAA",
		"#98E8C1",
		"#FFFFFF",
		"#7BADE2",
		"#5049CC",
		"#3D1A78",
	},
	"bicurious": {
		"#F347F8",
		"#F347F8",
		"#F787FA",
		"#FDC6FD",
		"#FFFFFF",
		"#FFFFFF",
		"#C6E0FD",
		"#76B5fA",
		"#2D8CF7",
		"#2D8CF7",
	},
	"paraboy": {
		"#9D9D9D",
		"#9D9D9D",
		"#9D9D9D",
		"#FFFFFF",
		"#FFFFFF",
		"#FFFFFF",
		"#E9CFEE",
		"#E9CFEE",
		"#E9CFEE",
		"#C78BD8",
		"#C78BD8",
		"#C78BD8",
		"#1104AF",
		"#C78BD8",
		"#C78BD8",
		"#C78BD8",
		"#E9CFEE",
		"#E9CFEE",
		"#E9CFEE",
		"#FFFFFF",
		"#FFFFFF",
		"#FFFFFF",
		"#9D9D9D",
		"#9D9D9D",
		"#9D9D9D",
	},
	"faunflux": {
		"#C1DEEB",
		"#29669C",
		"#97CEFF",
		"#FFFFFF",
		"#C6C2C2",
		"#5D5D5D",
		"#989898",
	},
	"bear brotherhood": {
		"#613704",
		"#613704",
		"#D46300",
		"#D46300",
		"#000000",
		"#FDDC62",
		"#FDDC62",
		"#FDDC62",
		"#FDE5B7",
		"#FDE5B7",
		"#FFFFFF",
		"#FFFFFF",
		"#545454",
		"#545454",
		"#000000",
		"#000000",
	},
	"hijra": {
		"#FECCE7",
		"#FECCE7",
		"#FECCE7",
		"#FFFFFF",
		"#C00100",
		"#FFFFFF",
		"#B9E1FB",
		"#B9E1FB",
		"#B9E1FB",
	},
	"trigender": {
		"#FF95C5",
		"#9581FF",
		"#67D966",
		"#9581FF",
		"#FF95C5",
	},
	"demiromantic": {
		"#56A644",
		"#56A644",
		"#A8D242",
		"#A8D242",
		"#000000",
		"#FDF979",
		"#FDF979",
		"#A9A8A8",
		"#A9A8A8",
	},
	"cupiosexual": {
		"#A0A0A0",
		"#C8BFE6",
		"#FFFFFF",
		"#FFB3DA",
	},
	"aliagender": {
		"#8DC73F",
		"#8BAD5A",
		"#899374",
		"#877A8E",
		"#8560A9",
		"#A4678C",
		"#C26E70",
		"#E07654",
		"#FF7D37",
	},
	"paragirl alt": {
		"#BCBCBC",
		"#BCBCBC",
		"#BCBCBC",
		"#BCBCBC",
		"#FFFFFF",
		"#FFFFFF",
		"#EED0F3",
		"#EED0F3",
		"#EED0F3",
		"#EED0F3",
		"#F32DEA",
		"#000000",
		"#F32DEA",
		"#EED0F3",
		"#EED0F3",
		"#EED0F3",
		"#EED0F3",
		"#FFFFFF",
		"#FFFFFF",
		"#BCBCBC",
		"#BCBCBC",
		"#BCBCBC",
		"#BCBCBC",
	},
	"genderfaun": {
		"#FCD689",
		"#FFF09B",
		"#FAF9CD",
		"#FFFFFF",
		"#8EDED9",
		"#8CACDE",
		"#9782EC",
	},
	"polygender": {
		"#000000",
		"#939393",
		"#ED94C5",
		"#F5ED81",
		"#64BBE6",
	},
	"biromantic alt": {
		"#D60270",
		"#D60270",
		"#D60270",
		"#D60270",
		"#D60270",
		"#D60270",
		"#D60270",
		"#FFFFFF",
		"#FFFFFF",
		"#FFFFFF",
		"#9B4F96",
		"#9B4F96",
		"#FFFFFF",
		"#000000",
		"#FFFFFF",
		"#9B4F96",
		"#9B4F96",
		"#FFFFFF",
		"#FFFFFF",
		"#FFFFFF",
		"#0038A8",
		"#0038A8",
		"#0038A8",
		"#0038A8",
		"#0038A8",
		"#0038A8",
		"#0038A8",
	},
}

// DefaultName is the preset used when nothing else is configured.
const DefaultName = "rainbow"

// registry holds the parsed palettes, built once at init.
var registry = make(map[string]*colour.Palette, len(presets))

func init() {
	for name, hexes := range presets {
		p, err := colour.NewPalette(hexes...)
		if err != nil {
			panic(fmt.Sprintf("preset %q: %v", name, err))
		}
		registry[name] = p
	}
}

// Normalise maps user input to registry form: lower case, trimmed,
// with hyphens treated as spaces so "gay-male" finds "gay male".
func Normalise(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.ReplaceAll(name, "-", " ")
}

// Lookup returns the palette for a preset name.
func Lookup(name string) (*colour.Palette, bool) {
	p, ok := registry[Normalise(name)]
	return p, ok
}

// Names returns all preset names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of built-in presets.
func Count() int {
	return len(registry)
}
