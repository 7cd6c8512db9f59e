package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/vexil/internal/colour"
	"github.com/jmylchreest/vexil/internal/config"
	"github.com/jmylchreest/vexil/internal/terminal"
)

var (
	// Paint command flags
	paintPreset      string
	paintColours     []string
	paintLayer       colour.Layer
	paintSpaceOnly   bool
	paintPerLine     bool
	paintBrightness  float64
	paintInput       string
	paintOutput      string
	paintForceColour bool

	paintCmd = &cobra.Command{
		Use:   "paint [text...]",
		Short: "Paint text with a colour palette",
		Long: `Paint text with the stripes of a colour palette.

The palette is distributed evenly across the text and rendered with
24-bit ANSI escape sequences. Text is taken from the arguments, from
--input, or from stdin when neither is given.

Examples:
  # Paint text with the default preset
  vexil paint "hello world"

  # Paint with a named preset on the background layer
  vexil paint --preset nonbinary --layer bg "hello world"

  # Paint each line independently
  echo -e "one\ntwo" | vexil paint --per-line

  # Paint with explicit colours
  vexil paint -c "#ff0000" -c "#00ff00" -c "#0000ff" "hello"`,
		RunE: runPaint,
	}
)

func init() {
	paintCmd.Flags().StringVarP(&paintPreset, "preset", "p", "", "palette preset name")
	paintCmd.Flags().StringArrayVarP(&paintColours, "colour", "c", nil, "explicit palette colour, overrides --preset (repeatable)")
	paintCmd.Flags().VarP(newLayerValue(&paintLayer, colour.Foreground), "layer", "l", "colour layer (fg, bg)")
	paintCmd.Flags().BoolVarP(&paintSpaceOnly, "space-only", "s", false, "colour only the spaces (use with --layer bg)")
	paintCmd.Flags().BoolVar(&paintPerLine, "per-line", false, "restart the palette on every line")
	paintCmd.Flags().Float64Var(&paintBrightness, "brightness", 1.0, "lightness multiplier applied to the palette")
	paintCmd.Flags().StringVar(&paintInput, "input", "", "read text from file instead of arguments")
	paintCmd.Flags().StringVarP(&paintOutput, "output", "o", "", "output file (default: stdout)")
	paintCmd.Flags().BoolVar(&paintForceColour, "force-colour", false, "emit colour even when stdout is not a terminal")
}

func runPaint(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")

	cfg, err := config.Load("")
	if err != nil {
		return err
	}
	applyPaintDefaults(cmd, cfg)

	text, err := paintText(args)
	if err != nil {
		return err
	}

	packs, err := loadPacks(verbose)
	if err != nil {
		return err
	}
	defer packs.Close()

	palette, err := paletteFromFlags(paintColours, paintPreset, packs)
	if err != nil {
		return err
	}
	if paintBrightness != 1.0 {
		palette = palette.Lighten(paintBrightness)
	}

	useColour := paintOutput != "" || terminal.ShouldColour(terminal.Detect(), paintForceColour)
	if !useColour && verbose {
		fmt.Fprintf(os.Stderr, "Colour output disabled, printing plain text\n")
	}

	output, err := paintString(palette, text, useColour)
	if err != nil {
		return err
	}

	if paintOutput != "" {
		if err := os.WriteFile(paintOutput, []byte(output+"\n"), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "Painted text written to: %s\n", paintOutput)
		}
		return nil
	}

	fmt.Println(output)
	return nil
}

// applyPaintDefaults fills flag values from the config file for flags
// the user did not set on the command line.
func applyPaintDefaults(cmd *cobra.Command, cfg *config.Config) {
	if !cmd.Flags().Changed("preset") {
		paintPreset = cfg.Preset
	}
	if !cmd.Flags().Changed("layer") {
		if layer, err := colour.ParseLayer(cfg.Layer); err == nil {
			paintLayer = layer
		}
	}
	if !cmd.Flags().Changed("space-only") {
		paintSpaceOnly = cfg.SpaceOnly
	}
	if !cmd.Flags().Changed("brightness") {
		paintBrightness = cfg.Brightness
	}
}

// paintText resolves the input text: --input file, then arguments, then
// stdin. A single trailing newline is dropped so painted output does
// not end with an uncoloured blank line.
func paintText(args []string) (string, error) {
	if paintInput != "" {
		data, err := os.ReadFile(paintInput) // #nosec G304 -- Path comes from the user's --input flag
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
		return strings.TrimSuffix(string(data), "\n"), nil
	}

	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}

// paintString renders text with the palette. In per-line mode every
// line gets the full palette; otherwise the palette spans the whole
// text, newlines included.
func paintString(palette *colour.Palette, text string, useColour bool) (string, error) {
	if !useColour {
		return text, nil
	}

	if paintPerLine {
		lines := strings.Split(text, "\n")
		for i, line := range lines {
			painted, err := palette.Colorize(line, paintLayer, paintSpaceOnly)
			if err != nil {
				return "", err
			}
			lines[i] = painted
		}
		return strings.Join(lines, "\n"), nil
	}

	return palette.Colorize(text, paintLayer, paintSpaceOnly)
}
