package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/vexil/internal/colour"
	"github.com/jmylchreest/vexil/internal/preset"
	"github.com/jmylchreest/vexil/internal/terminal"
)

// termCmd reports what the running terminal is capable of.
var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Show detected terminal capabilities",
	Long: `Show what vexil detected about the running terminal: colour support,
whether stdout is a TTY, window size, and the terminal emulator.

A rainbow sample strip is printed when colour output is possible, so a
glance tells you whether 24-bit colour actually renders.`,
	RunE: runTerm,
}

func runTerm(cmd *cobra.Command, args []string) error {
	info := terminal.Detect()

	fmt.Printf("Colour support: %s\n", info.Support)
	fmt.Printf("TTY:            %t\n", info.IsTTY)
	if info.Width > 0 {
		fmt.Printf("Size:           %dx%d\n", info.Width, info.Height)
	} else {
		fmt.Printf("Size:           unknown\n")
	}
	if info.Emulator != "" {
		fmt.Printf("Emulator:       %s\n", info.Emulator)
	}
	fmt.Printf("NO_COLOR:       %t\n", info.NoColour)

	if terminal.ShouldColour(info, false) {
		palette, ok := preset.Lookup(preset.DefaultName)
		if !ok {
			return nil
		}
		sample, err := palette.Colorize("██████████████████████████████", colour.Foreground, false)
		if err != nil {
			return err
		}
		fmt.Printf("\nSample:         %s\n", sample)
	}

	return nil
}
