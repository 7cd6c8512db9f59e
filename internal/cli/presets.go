package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/vexil/internal/colour"
	"github.com/jmylchreest/vexil/internal/pack"
	"github.com/jmylchreest/vexil/internal/preset"
	"github.com/jmylchreest/vexil/internal/terminal"
)

var (
	// Presets command flags
	presetsFormat  string
	presetsPreview bool

	presetsCmd = &cobra.Command{
		Use:   "presets",
		Short: "List the available palette presets",
		Long: `List the built-in palette presets plus any palettes provided by
loaded packs.

Examples:
  # List all presets as a table
  vexil presets

  # Show colour swatches next to each preset
  vexil presets --preview

  # List presets with their hex values
  vexil presets --format hex

  # Include palettes from a pack binary
  vexil --pack ./seasons presets`,
		RunE: runPresets,
	}
)

func init() {
	presetsCmd.Flags().StringVarP(&presetsFormat, "format", "f", "table", "output format (table, hex, json)")
	presetsCmd.Flags().BoolVar(&presetsPreview, "preview", false, "show colour swatches for each preset")
}

// presetEntry is one listed palette, builtin or pack-provided.
type presetEntry struct {
	Name    string
	Source  string
	Palette *colour.Palette
}

func runPresets(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")

	packs, err := loadPacks(verbose)
	if err != nil {
		return err
	}
	defer packs.Close()

	entries := collectPresets(packs, verbose)

	if presetsPreview {
		printPresetSwatches(entries)
		return nil
	}

	switch presetsFormat {
	case "table":
		table := NewTable([]string{"NAME", "STRIPES", "SOURCE"})
		for _, entry := range entries {
			table.AddRow([]string{
				entry.Name,
				strings.Join(entry.Palette.ToHex(), " "),
				entry.Source,
			})
		}
		fmt.Print(table.Render())
		fmt.Printf("\n%d presets available\n", len(entries))
	case "hex":
		for _, entry := range entries {
			fmt.Printf("%s: %s\n", entry.Name, strings.Join(entry.Palette.ToHex(), " "))
		}
	case "json":
		type presetJSON struct {
			Name    string   `json:"name"`
			Source  string   `json:"source"`
			Colours []string `json:"colours"`
		}
		out := make([]presetJSON, 0, len(entries))
		for _, entry := range entries {
			out = append(out, presetJSON{
				Name:    entry.Name,
				Source:  entry.Source,
				Colours: entry.Palette.ToHex(),
			})
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal presets: %w", err)
		}
		fmt.Println(string(data))
	default:
		return fmt.Errorf("unsupported format: %s (supported: table, hex, json)", presetsFormat)
	}

	return nil
}

// collectPresets gathers builtin presets followed by pack palettes, each
// group sorted by name.
func collectPresets(packs *pack.Manager, verbose bool) []presetEntry {
	var entries []presetEntry

	for _, name := range preset.Names() {
		if palette, ok := preset.Lookup(name); ok {
			entries = append(entries, presetEntry{Name: name, Source: "builtin", Palette: palette})
		}
	}

	for _, p := range packs.Packs() {
		names, err := p.Names()
		if err != nil {
			if verbose {
				fmt.Fprintf(os.Stderr, "Warning: pack %s: %v\n", p.Info.Name, err)
			}
			continue
		}
		sort.Strings(names)
		for _, name := range names {
			palette, err := p.Palette(name)
			if err != nil {
				continue
			}
			entries = append(entries, presetEntry{Name: name, Source: p.Info.Name, Palette: palette})
		}
	}

	return entries
}

// printPresetSwatches prints each preset with a colour block per stripe.
// Falls back to the hex listing when colour output is unavailable.
func printPresetSwatches(entries []presetEntry) {
	useColour := terminal.ShouldColour(terminal.Detect(), false)

	for _, entry := range entries {
		if !useColour {
			fmt.Printf("%-24s %s\n", entry.Name, strings.Join(entry.Palette.ToHex(), " "))
			continue
		}
		var swatches strings.Builder
		for _, c := range entry.Palette.Colours() {
			swatches.WriteString(colour.ColourPreview(c, 2))
		}
		fmt.Printf("%-24s %s\n", entry.Name, swatches.String())
	}
}
