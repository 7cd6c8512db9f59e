// Vexil - paint terminal text with flag-striped colour palettes
//
// Vexil spreads ordered stripe palettes across text, banners and
// terminal output using 24-bit ANSI colour.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"github.com/jmylchreest/vexil/internal/cli"
)

func main() {
	cli.Execute()
}
