package cli

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/jmylchreest/vexil/internal/colour"
	"github.com/jmylchreest/vexil/internal/pack"
	"github.com/jmylchreest/vexil/internal/preset"
)

// layerValue adapts colour.Layer to the pflag.Value interface so
// --layer is validated at parse time instead of inside the command.
type layerValue struct {
	layer *colour.Layer
}

// newLayerValue wires a --layer flag to the given Layer variable and
// sets its default.
func newLayerValue(p *colour.Layer, def colour.Layer) pflag.Value {
	*p = def
	return &layerValue{layer: p}
}

func (v *layerValue) String() string {
	return v.layer.String()
}

func (v *layerValue) Set(s string) error {
	layer, err := colour.ParseLayer(s)
	if err != nil {
		return err
	}
	*v.layer = layer
	return nil
}

func (v *layerValue) Type() string {
	return "layer"
}

// loadPacks builds a pack manager from the global --pack flags plus the
// default pack directory. Callers must Close the returned manager.
func loadPacks(verbose bool) (*pack.Manager, error) {
	manager := pack.NewManager(verbose)

	for _, path := range packPaths {
		if err := manager.Load(context.Background(), path); err != nil {
			manager.Close()
			return nil, err
		}
	}

	if dir, err := pack.DefaultDir(); err == nil {
		if err := manager.LoadDir(context.Background(), dir); err != nil {
			manager.Close()
			return nil, err
		}
	}

	return manager, nil
}

// resolvePalette finds a palette by name: built-in presets first, then
// loaded packs in load order.
func resolvePalette(name string, packs *pack.Manager) (*colour.Palette, error) {
	if palette, ok := preset.Lookup(name); ok {
		return palette, nil
	}
	if packs != nil {
		if palette, ok := packs.Lookup(name); ok {
			return palette, nil
		}
	}
	return nil, fmt.Errorf("unknown preset %q (run 'vexil presets' for the list)", name)
}

// paletteFromFlags builds the requested palette. Explicit --colour
// values win over the preset name.
func paletteFromFlags(colours []string, presetName string, packs *pack.Manager) (*colour.Palette, error) {
	if len(colours) > 0 {
		return colour.NewPalette(colours...)
	}
	return resolvePalette(presetName, packs)
}
