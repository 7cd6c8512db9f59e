// Package pack provides the public API for vexil palette packs.
package pack

// Provider is the interface that palette packs must implement for go-plugin RPC.
type Provider interface {
	// Info returns pack metadata.
	Info() PackInfo

	// Names returns the palette names this pack provides.
	Names() ([]string, error)

	// Get returns the named palette.
	Get(name string) (PaletteData, error)
}
