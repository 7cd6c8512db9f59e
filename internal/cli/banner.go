package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/vexil/internal/asset"
	"github.com/jmylchreest/vexil/internal/colour"
	"github.com/jmylchreest/vexil/internal/config"
	"github.com/jmylchreest/vexil/internal/terminal"
)

var (
	// Banner command flags
	bannerList        bool
	bannerPreset      string
	bannerColours     []string
	bannerLayer       colour.Layer
	bannerSpaceOnly   bool
	bannerBrightness  float64
	bannerForceColour bool

	bannerCmd = &cobra.Command{
		Use:   "banner [name]",
		Short: "Paint a built-in ASCII-art banner",
		Long: `Paint one of the built-in ASCII-art banners with a colour palette.

The palette spans the whole banner so the stripes form horizontal
flag-like bands across the art.

Examples:
  # Paint the default banner with the default preset
  vexil banner

  # Paint a banner with a named preset
  vexil banner pride --preset transgender

  # Fill the banner cells instead of the glyphs
  vexil banner --layer bg --space-only

  # List the available banners
  vexil banner --list`,
		Args: cobra.MaximumNArgs(1),
		RunE: runBanner,
	}
)

func init() {
	bannerCmd.Flags().BoolVar(&bannerList, "list", false, "list the available banners")
	bannerCmd.Flags().StringVarP(&bannerPreset, "preset", "p", "", "palette preset name")
	bannerCmd.Flags().StringArrayVarP(&bannerColours, "colour", "c", nil, "explicit palette colour, overrides --preset (repeatable)")
	bannerCmd.Flags().VarP(newLayerValue(&bannerLayer, colour.Foreground), "layer", "l", "colour layer (fg, bg)")
	bannerCmd.Flags().BoolVarP(&bannerSpaceOnly, "space-only", "s", false, "colour only the spaces (use with --layer bg)")
	bannerCmd.Flags().Float64Var(&bannerBrightness, "brightness", 1.0, "lightness multiplier applied to the palette")
	bannerCmd.Flags().BoolVar(&bannerForceColour, "force-colour", false, "emit colour even when stdout is not a terminal")
}

func runBanner(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")

	if bannerList {
		for _, name := range asset.Names() {
			fmt.Println(name)
		}
		return nil
	}

	cfg, err := config.Load("")
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("preset") {
		bannerPreset = cfg.Preset
	}
	if !cmd.Flags().Changed("brightness") {
		bannerBrightness = cfg.Brightness
	}

	name := asset.DefaultBanner
	if len(args) > 0 {
		name = args[0]
	}

	art, err := asset.Load(name)
	if err != nil {
		return err
	}

	packs, err := loadPacks(verbose)
	if err != nil {
		return err
	}
	defer packs.Close()

	palette, err := paletteFromFlags(bannerColours, bannerPreset, packs)
	if err != nil {
		return err
	}
	if bannerBrightness != 1.0 {
		palette = palette.Lighten(bannerBrightness)
	}

	if !terminal.ShouldColour(terminal.Detect(), bannerForceColour) {
		fmt.Println(art)
		return nil
	}

	painted, err := palette.Colorize(art, bannerLayer, bannerSpaceOnly)
	if err != nil {
		return err
	}
	fmt.Println(painted)

	return nil
}
