// Package asset provides banner art embedded in the binary.
//
// Banners are stored xz-compressed and inflated on demand.
package asset

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/jmylchreest/vexil/internal/compression"
)

//go:embed banners/*.xz
var bannerFS embed.FS

const (
	bannerDir = "banners"
	bannerExt = ".xz"

	// DefaultBanner is the banner used when none is named.
	DefaultBanner = "vexil"
)

// Names returns the names of all embedded banners, sorted alphabetically.
func Names() []string {
	entries, err := bannerFS.ReadDir(bannerDir)
	if err != nil {
		// The directory is embedded at build time; absence is a packaging bug.
		panic(fmt.Sprintf("asset: embedded banner directory missing: %v", err))
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := strings.TrimSuffix(entry.Name(), bannerExt)
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load returns the text of the named banner.
// A single trailing newline is trimmed so callers can split cleanly on "\n".
func Load(name string) (string, error) {
	data, err := bannerFS.ReadFile(bannerDir + "/" + name + bannerExt)
	if err != nil {
		return "", fmt.Errorf("unknown banner %q (available: %s)", name, strings.Join(Names(), ", "))
	}

	text, err := compression.Inflate(data, 0)
	if err != nil {
		return "", fmt.Errorf("failed to inflate banner %q: %w", name, err)
	}

	return strings.TrimSuffix(string(text), "\n"), nil
}
