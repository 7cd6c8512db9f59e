package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/vexil/internal/colour"
	"github.com/jmylchreest/vexil/internal/config"
	"github.com/jmylchreest/vexil/internal/terminal"
)

var (
	// Preview command flags
	previewWidth       int
	previewHeight      int
	previewColours     []string
	previewBrightness  float64
	previewForceColour bool

	previewCmd = &cobra.Command{
		Use:   "preview [preset]",
		Short: "Preview a palette as horizontal colour bands",
		Long: `Preview a palette as full-width horizontal colour bands, distributed
the same way paint distributes stripes across text.

Examples:
  # Preview the default preset
  vexil preview

  # Preview a named preset at a fixed size
  vexil preview transgender --width 40 --height 10

  # Preview explicit colours
  vexil preview -c "#ff0000" -c "#ffffff"`,
		Args: cobra.MaximumNArgs(1),
		RunE: runPreview,
	}
)

func init() {
	previewCmd.Flags().IntVarP(&previewWidth, "width", "w", 0, "band width in columns (default: terminal width)")
	previewCmd.Flags().IntVar(&previewHeight, "height", 0, "total band rows (default: two per stripe)")
	previewCmd.Flags().StringArrayVarP(&previewColours, "colour", "c", nil, "explicit palette colour, overrides the preset (repeatable)")
	previewCmd.Flags().Float64Var(&previewBrightness, "brightness", 1.0, "lightness multiplier applied to the palette")
	previewCmd.Flags().BoolVar(&previewForceColour, "force-colour", false, "emit colour even when stdout is not a terminal")
}

func runPreview(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")

	cfg, err := config.Load("")
	if err != nil {
		return err
	}

	name := cfg.Preset
	if len(args) > 0 {
		name = args[0]
	}
	if !cmd.Flags().Changed("brightness") {
		previewBrightness = cfg.Brightness
	}

	packs, err := loadPacks(verbose)
	if err != nil {
		return err
	}
	defer packs.Close()

	palette, err := paletteFromFlags(previewColours, name, packs)
	if err != nil {
		return err
	}
	if previewBrightness != 1.0 {
		palette = palette.Lighten(previewBrightness)
	}

	// Without colour support there is nothing to preview, list the
	// stripes instead.
	if !terminal.ShouldColour(terminal.Detect(), previewForceColour) {
		if len(previewColours) > 0 {
			fmt.Println(strings.Join(palette.ToHex(), " "))
		} else {
			fmt.Printf("%s: %s\n", name, strings.Join(palette.ToHex(), " "))
		}
		return nil
	}

	width := previewWidth
	if width <= 0 {
		width = terminal.Width(80)
	}
	height := previewHeight
	if height <= 0 {
		height = palette.Len() * 2
	}

	rows, err := palette.Distribute(height)
	if err != nil {
		return err
	}

	blank := strings.Repeat(" ", width)
	var b strings.Builder
	for _, c := range rows {
		b.WriteString(c.Sequence(colour.Background))
		b.WriteString(blank)
		b.WriteString(colour.Reset)
		b.WriteString("\n")
	}
	fmt.Print(b.String())

	return nil
}
