// Package pack provides the public API for vexil palette packs.
package pack

// PackInfo contains metadata about a pack.
type PackInfo struct {
	Name            string `json:"name"`
	Version         string `json:"version"`
	ProtocolVersion string `json:"protocol_version"`
	Description     string `json:"description"`
}

// PaletteData is a palette as transferred over RPC.
// Colours are stripes in display order, first to last.
type PaletteData struct {
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Colours     []RGBColour `json:"colours"`
}

// RGBColour represents an RGB colour.
type RGBColour struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}
