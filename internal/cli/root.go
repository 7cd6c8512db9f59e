// Package cli provides the command-line interface for Vexil.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/vexil/internal/version"
)

var (
	// Pack binaries named on the command line, loaded before the
	// default pack directory
	packPaths []string

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "vexil",
		Short: "Paint terminal text with flag-striped colour palettes",
		Long: `Vexil distributes the stripes of a colour palette across a span of text
and renders it with 24-bit ANSI escapes.

Paint arbitrary text or ASCII-art banners with one of the built-in
palettes, extract palettes from images, or load extra palettes from
external pack binaries.`,
		Version:      version.Short(),
		SilenceUsage: true,
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringArrayVar(&packPaths, "pack", nil, "palette pack binary to load (repeatable)")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(paintCmd)
	rootCmd.AddCommand(bannerCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(termCmd)
	rootCmd.AddCommand(configCmd)
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}
