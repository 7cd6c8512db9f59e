// Package terminal probes the running terminal for colour capability,
// window size, and the emulator in use.
package terminal

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// SupportLevel describes how much colour a terminal can render.
type SupportLevel int

const (
	// SupportNone means no colour output at all.
	SupportNone SupportLevel = iota

	// SupportBasic means the classic 16 ANSI colours.
	SupportBasic

	// Support256 means the xterm 256-colour palette.
	Support256

	// SupportTrueColour means full 24-bit colour.
	SupportTrueColour
)

// String returns the support level name.
func (s SupportLevel) String() string {
	switch s {
	case SupportNone:
		return "none"
	case SupportBasic:
		return "basic"
	case Support256:
		return "256-colour"
	case SupportTrueColour:
		return "truecolour"
	default:
		return "unknown"
	}
}

// Info is a snapshot of everything we can learn about the terminal.
type Info struct {
	Support  SupportLevel
	IsTTY    bool
	Width    int
	Height   int
	Emulator string
	NoColour bool
}

// Detect gathers terminal information for stdout.
func Detect() Info {
	info := Info{
		Support:  DetectSupport(os.Getenv),
		IsTTY:    IsTerminal(os.Stdout),
		NoColour: os.Getenv("NO_COLOR") != "",
	}

	if info.IsTTY {
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			info.Width = w
			info.Height = h
		}
	}

	if emulator, err := DetectEmulator(); err == nil {
		info.Emulator = emulator
	}

	return info
}

// DetectSupport derives the colour support level from the environment.
// The env function is injectable so tests can supply their own
// environment; callers normally pass os.Getenv.
//
// NO_COLOR wins over everything, per https://no-color.org.
func DetectSupport(env func(string) string) SupportLevel {
	if env("NO_COLOR") != "" {
		return SupportNone
	}

	colorterm := strings.ToLower(env("COLORTERM"))
	if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") {
		return SupportTrueColour
	}

	termName := strings.ToLower(env("TERM"))
	switch {
	case termName == "":
		return SupportNone
	case termName == "dumb":
		return SupportNone
	case strings.Contains(termName, "direct"):
		return SupportTrueColour
	case strings.Contains(termName, "256color"):
		return Support256
	default:
		return SupportBasic
	}
}

// IsTerminal reports whether the file is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Width returns the terminal width for stdout, or the fallback when
// the size cannot be determined (e.g. output is piped).
func Width(fallback int) int {
	if !IsTerminal(os.Stdout) {
		return fallback
	}
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return fallback
	}
	return w
}

// ShouldColour decides whether escape sequences should be emitted.
// force skips every check; otherwise output must be a terminal with
// some colour support and NO_COLOR unset.
func ShouldColour(info Info, force bool) bool {
	if force {
		return true
	}
	if info.NoColour || !info.IsTTY {
		return false
	}
	return info.Support != SupportNone
}
