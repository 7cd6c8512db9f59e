package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/vexil/internal/colour"
	"github.com/jmylchreest/vexil/internal/suggest"
)

var (
	// Suggest command flags
	suggestCount   int
	suggestModel   string
	suggestBackend string
	suggestPreview bool
	suggestPaint   string

	suggestCmd = &cobra.Command{
		Use:   "suggest <theme...>",
		Short: "Suggest a palette for a theme using Google Gen AI",
		Long: `Ask a Google Gen AI text model to design a palette matching a theme
description, and use it like any preset.

The gemini-api backend requires the GOOGLE_API_KEY environment
variable. Get a key at https://aistudio.google.com/api-keys.

Examples:
  # Suggest a palette for a theme
  vexil suggest ocean sunset

  # Request more stripes from a specific model
  vexil suggest --count 7 --model gemini-2.5-pro northern lights

  # Show the suggestion with colour swatches
  vexil suggest --preview autumn forest

  # Paint text directly with the suggested palette
  vexil suggest --paint "hello world" cyberpunk city`,
		Args: cobra.MinimumNArgs(1),
		RunE: runSuggest,
	}
)

func init() {
	suggestCmd.Flags().IntVarP(&suggestCount, "count", "n", suggest.DefaultCount, "number of stripes to request")
	suggestCmd.Flags().StringVar(&suggestModel, "model", suggest.DefaultModel, "text model to query")
	suggestCmd.Flags().StringVar(&suggestBackend, "backend", suggest.DefaultBackend, "Gen AI backend (gemini-api, vertex-ai)")
	suggestCmd.Flags().BoolVar(&suggestPreview, "preview", false, "show colour previews in terminal")
	suggestCmd.Flags().StringVar(&suggestPaint, "paint", "", "paint the given text with the suggested palette")
}

func runSuggest(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	theme := strings.Join(args, " ")
	ctx := cmd.Context()

	client, err := suggest.NewClient(ctx, suggest.Options{
		Model:   suggestModel,
		Backend: suggestBackend,
	})
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Requesting %d stripes for %q from %s...\n", suggestCount, theme, client.Model())
	}

	palette, err := client.Suggest(ctx, theme, suggestCount)
	if err != nil {
		return err
	}

	if suggestPaint != "" {
		painted, err := palette.Colorize(suggestPaint, colour.Foreground, false)
		if err != nil {
			return err
		}
		fmt.Println(painted)
		return nil
	}

	for _, rgb := range palette.Colours() {
		if suggestPreview {
			fmt.Println(colour.FormatColourWithPreview(rgb, 8))
		} else {
			fmt.Println(rgb.Hex())
		}
	}

	return nil
}
