package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/vexil/internal/colour"
	"github.com/jmylchreest/vexil/internal/image"
	"github.com/jmylchreest/vexil/internal/util"
)

var (
	// Extract command flags
	extractColours     int
	extractAlgorithm   string
	extractFormat      string
	extractSort        string
	extractOutput      string
	extractShowPreview bool
	extractBare        bool
	extractPaint       string
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract <image>",
	Short: "Extract a colour palette from an image",
	Long: `Extract a colour palette from an image and use it like any preset.

The extract command clusters the image's colours into palette stripes.
The image argument can be a file, a directory (a random image is
picked), or an HTTP(S) URL.

Supported image formats: JPEG, PNG, GIF, WebP

Examples:
  # Extract 6 colours (default) from an image
  vexil extract wallpaper.jpg

  # Extract 4 colours with preview swatches
  vexil extract --preview --colours 4 wallpaper.png

  # Order stripes dark to light and output as JSON
  vexil extract --sort luminance --format json wallpaper.jpg

  # Save the palette to a file
  vexil extract --output palette.txt wallpaper.jpg

  # Paint text directly with the extracted palette
  vexil extract --paint "hello world" wallpaper.jpg`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	// Define flags for the extract command
	extractCmd.Flags().IntVarP(&extractColours, "colours", "c", 6, "number of colours to extract (1-256)")
	extractCmd.Flags().StringVarP(&extractAlgorithm, "algorithm", "a", "kmeans", "extraction algorithm (kmeans)")
	extractCmd.Flags().StringVarP(&extractFormat, "format", "f", "hex", "output format (hex, rgb, json)")
	extractCmd.Flags().StringVar(&extractSort, "sort", "weight", "stripe order (weight, luminance, hue)")
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "output file (default: stdout)")
	extractCmd.Flags().BoolVar(&extractShowPreview, "preview", false, "show colour previews in terminal")
	extractCmd.Flags().BoolVar(&extractBare, "bare", false, "print hex values without the leading #")
	extractCmd.Flags().StringVar(&extractPaint, "paint", "", "paint the given text with the extracted palette")
}

// runExtract executes the extract command.
func runExtract(cmd *cobra.Command, args []string) error {
	imagePath := args[0]

	// Validate the image path
	if err := image.ValidateImagePath(imagePath); err != nil {
		return fmt.Errorf("invalid image path: %w", err)
	}

	// Validate configuration
	config := colour.ExtractorConfig{
		Algorithm:   colour.Algorithm(extractAlgorithm),
		ColourCount: extractColours,
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Resolve directories and URLs to a loadable source
	resolved, err := image.ResolveImagePath(imagePath)
	if err != nil {
		return fmt.Errorf("failed to resolve image path: %w", err)
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		if resolved != imagePath {
			fmt.Fprintf(os.Stderr, "Resolved image: %s\n", resolved)
		}
		fmt.Fprintf(os.Stderr, "Loading image: %s\n", resolved)
	}

	loader := image.NewSmartLoader()
	img, err := loader.Load(resolved)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}

	if verbose {
		bounds := img.Bounds()
		fmt.Fprintf(os.Stderr, "Image loaded: %dx%d\n", bounds.Dx(), bounds.Dy())
	}

	// Create the colour extractor
	if verbose {
		fmt.Fprintf(os.Stderr, "Extracting %d colours using %s algorithm...\n", extractColours, extractAlgorithm)
	}

	extractor, err := colour.NewExtractor(config.Algorithm)
	if err != nil {
		return fmt.Errorf("failed to create extractor: %w", err)
	}

	weighted, err := extractor.Extract(img, extractColours)
	if err != nil {
		return fmt.Errorf("failed to extract colours: %w", err)
	}

	if err := colour.SortWeighted(weighted, colour.SortMode(extractSort)); err != nil {
		return err
	}

	palette, err := colour.PaletteFromWeighted(weighted)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Successfully extracted %d colours\n", palette.Len())
	}

	var output string
	if extractPaint != "" {
		output, err = palette.Colorize(extractPaint, colour.Foreground, false)
		if err != nil {
			return err
		}
		output += "\n"
	} else {
		output, err = formatPalette(palette, extractFormat, extractShowPreview)
		if err != nil {
			return fmt.Errorf("failed to format output: %w", err)
		}
	}

	// Write output to file or stdout
	if extractOutput != "" {
		if verbose {
			fmt.Fprintf(os.Stderr, "Writing output to: %s\n", extractOutput)
		}
		if err := os.WriteFile(extractOutput, []byte(output), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "Successfully wrote palette to %s\n", extractOutput)
		}
	} else {
		fmt.Print(output)
	}

	return nil
}

// formatPalette formats the palette according to the specified format.
func formatPalette(palette *colour.Palette, format string, showPreview bool) (string, error) {
	switch format {
	case "hex":
		return formatHex(palette, showPreview), nil
	case "rgb":
		return formatRGB(palette, showPreview), nil
	case "json":
		jsonBytes, err := palette.ToJSON()
		if err != nil {
			return "", fmt.Errorf("failed to convert to JSON: %w", err)
		}
		return string(jsonBytes) + "\n", nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: hex, rgb, json)", format)
	}
}

// formatHex formats the palette as hex colour codes.
func formatHex(palette *colour.Palette, showPreview bool) string {
	var b strings.Builder
	for _, rgb := range palette.Colours() {
		hex := rgb.Hex()
		if extractBare {
			hex = util.StripHash(hex)
		}
		if showPreview {
			b.WriteString(colour.ColourPreview(rgb, 8) + "  " + hex + "\n")
		} else {
			b.WriteString(hex + "\n")
		}
	}
	return b.String()
}

// formatRGB formats the palette as RGB values.
func formatRGB(palette *colour.Palette, showPreview bool) string {
	var b strings.Builder
	for _, rgb := range palette.Colours() {
		if showPreview {
			b.WriteString(colour.ColourPreview(rgb, 8) + "  " + rgb.String() + "\n")
		} else {
			b.WriteString(rgb.String() + "\n")
		}
	}
	return b.String()
}
