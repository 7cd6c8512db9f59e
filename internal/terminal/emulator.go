package terminal

import (
	"fmt"
	"os"
	"strings"

	ps "github.com/mitchellh/go-ps"
)

// emulators maps known terminal emulator executable names to their
// display names.
var emulators = map[string]string{
	"kitty":                 "kitty",
	"alacritty":             "Alacritty",
	"wezterm":               "WezTerm",
	"wezterm-gui":           "WezTerm",
	"foot":                  "foot",
	"ghostty":               "Ghostty",
	"konsole":               "Konsole",
	"gnome-terminal":        "GNOME Terminal",
	"gnome-terminal-server": "GNOME Terminal",
	"xfce4-terminal":        "Xfce Terminal",
	"xterm":                 "xterm",
	"urxvt":                 "rxvt-unicode",
	"rxvt":                  "rxvt",
	"st":                    "st",
	"tilix":                 "Tilix",
	"terminator":            "Terminator",
	"iterm2":                "iTerm2",
	"terminal":              "Apple Terminal",
	"windowsterminal":       "Windows Terminal",
	"conhost":               "Windows Console",
}

// shells and multiplexers sit between us and the emulator in the
// process tree; the walk skips straight past them.
var passthrough = map[string]bool{
	"sh":     true,
	"bash":   true,
	"zsh":    true,
	"fish":   true,
	"dash":   true,
	"ksh":    true,
	"nu":     true,
	"tmux":   true,
	"screen": true,
	"script": true,
	"sshd":   true,
	"login":  true,
	"sudo":   true,
	"doas":   true,
}

// maxAncestors bounds the process tree walk.
const maxAncestors = 16

// DetectEmulator walks up the process tree looking for a known
// terminal emulator. Returns an empty string when none of the
// ancestors match.
func DetectEmulator() (string, error) {
	return detectEmulatorFrom(os.Getppid())
}

// detectEmulatorFrom starts the ancestor walk at the given PID.
// Shells and multiplexers are skipped; the first foreign ancestor is
// taken to be the emulator, with known names mapped to display names.
func detectEmulatorFrom(pid int) (string, error) {
	for i := 0; i < maxAncestors && pid > 1; i++ {
		proc, err := ps.FindProcess(pid)
		if err != nil {
			return "", fmt.Errorf("failed to inspect process %d: %w", pid, err)
		}
		if proc == nil {
			return "", nil
		}

		name := normaliseExecutable(proc.Executable())
		if passthrough[name] || name == "" {
			pid = proc.PPid()
			continue
		}

		if display, ok := emulators[name]; ok {
			return display, nil
		}
		return proc.Executable(), nil
	}

	return "", nil
}

// normaliseExecutable lowercases an executable name and strips the
// Windows suffix so lookups work across platforms.
func normaliseExecutable(name string) string {
	name = strings.ToLower(name)
	return strings.TrimSuffix(name, ".exe")
}
