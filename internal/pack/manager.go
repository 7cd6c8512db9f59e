package pack

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/jmylchreest/vexil/internal/colour"
	vexilpack "github.com/jmylchreest/vexil/pkg/pack"
)

// infoTimeout bounds how long a pack may take to answer --pack-info.
const infoTimeout = 5 * time.Second

// DefaultDir returns the default pack directory. Packs placed there are
// loaded automatically on startup.
func DefaultDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, "vexil", "packs"), nil
}

// Discover returns the executable files in dir, sorted by name.
// A missing directory is not an error and yields no packs.
func Discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read pack directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.Mode()&0o111 == 0 {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}

	sort.Strings(paths)
	return paths, nil
}

// Pack is a loaded palette pack.
type Pack struct {
	Path string
	Info vexilpack.PackInfo

	executor *Executor
}

// Names lists the palette names this pack provides.
func (p *Pack) Names() ([]string, error) {
	return p.executor.Names()
}

// Palette fetches the named palette from this pack.
func (p *Pack) Palette(name string) (*colour.Palette, error) {
	data, err := p.executor.Get(name)
	if err != nil {
		return nil, err
	}
	return toPalette(data)
}

// Manager loads palette packs and resolves palette names against them.
// Packs are consulted in load order.
type Manager struct {
	verbose bool
	runner  ProcessRunner
	packs   []*Pack
}

// NewManager creates a pack manager.
func NewManager(verbose bool) *Manager {
	return NewManagerWithRunner(verbose, NewRealProcessRunner())
}

// NewManagerWithRunner creates a pack manager with a custom process
// runner. Used by tests to avoid spawning real pack binaries.
func NewManagerWithRunner(verbose bool, runner ProcessRunner) *Manager {
	return &Manager{verbose: verbose, runner: runner}
}

// Load probes the pack binary at path and adds it to the manager. The
// pack must answer --pack-info with its metadata as JSON and speak a
// compatible protocol version.
func (m *Manager) Load(ctx context.Context, path string) error {
	info, err := m.probe(ctx, path)
	if err != nil {
		return err
	}

	name := info.Name
	if name == "" {
		name = filepath.Base(path)
	}

	// Check protocol version compatibility.
	if info.ProtocolVersion == "" {
		// Packs that omit protocol_version are allowed (backward compatibility).
		if m.verbose {
			fmt.Fprintf(os.Stderr, "Warning: pack %q does not report a protocol version\n", name)
		}
	} else {
		compatible, err := vexilpack.IsCompatible(info.ProtocolVersion)
		if err != nil || !compatible {
			errMsg := "unknown error"
			if err != nil {
				errMsg = err.Error()
			}
			return fmt.Errorf(
				"pack %q protocol version %s is incompatible with vexil %s: %s",
				name,
				info.ProtocolVersion,
				vexilpack.ProtocolVersion,
				errMsg,
			)
		}
	}

	m.packs = append(m.packs, &Pack{
		Path:     path,
		Info:     info,
		executor: NewExecutor(path, m.verbose),
	})

	return nil
}

// LoadDir loads every pack discovered in dir. A pack that fails to load
// is skipped with a warning so one broken binary cannot take down the
// rest; a missing directory loads nothing.
func (m *Manager) LoadDir(ctx context.Context, dir string) error {
	paths, err := Discover(dir)
	if err != nil {
		return err
	}

	for _, path := range paths {
		if err := m.Load(ctx, path); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: skipping pack %s: %v\n", path, err)
		}
	}

	return nil
}

// Packs returns the loaded packs in load order.
func (m *Manager) Packs() []*Pack {
	return m.packs
}

// Lookup resolves a palette name against the loaded packs in order.
// It mirrors the builtin preset registry's lookup shape so callers can
// chain the two.
func (m *Manager) Lookup(name string) (*colour.Palette, bool) {
	for _, p := range m.packs {
		palette, err := p.Palette(name)
		if err != nil {
			if m.verbose {
				fmt.Fprintf(os.Stderr, "   Pack %s: %v\n", p.Info.Name, err)
			}
			continue
		}
		return palette, true
	}
	return nil, false
}

// Names returns the palette names provided by all loaded packs, sorted
// and de-duplicated.
func (m *Manager) Names() []string {
	seen := make(map[string]bool)
	names := []string{}
	for _, p := range m.packs {
		packNames, err := p.Names()
		if err != nil {
			if m.verbose {
				fmt.Fprintf(os.Stderr, "   Pack %s: %v\n", p.Info.Name, err)
			}
			continue
		}
		for _, name := range packNames {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}

	sort.Strings(names)
	return names
}

// Close stops every running pack process.
func (m *Manager) Close() {
	for _, p := range m.packs {
		p.executor.Close()
	}
}

// probe runs the pack binary with --pack-info and parses the JSON reply.
func (m *Manager) probe(ctx context.Context, path string) (vexilpack.PackInfo, error) {
	probeCtx, cancel := context.WithTimeout(ctx, infoTimeout)
	defer cancel()

	stdout, stderr, err := m.runner.Run(probeCtx, path, []string{"--pack-info"}, nil)
	if err != nil {
		if msg := strings.TrimSpace(string(stderr)); msg != "" {
			return vexilpack.PackInfo{}, fmt.Errorf("failed to execute pack: %w: %s", err, msg)
		}
		return vexilpack.PackInfo{}, fmt.Errorf("failed to execute pack: %w", err)
	}

	var info vexilpack.PackInfo
	if err := json.Unmarshal(stdout, &info); err != nil {
		return vexilpack.PackInfo{}, fmt.Errorf("failed to parse pack info: %w", err)
	}

	return info, nil
}

// toPalette converts wire palette data to a colour.Palette.
func toPalette(data vexilpack.PaletteData) (*colour.Palette, error) {
	colours := make([]colour.RGB, len(data.Colours))
	for i, c := range data.Colours {
		colours[i] = colour.RGB{R: c.R, G: c.G, B: c.B}
	}
	return colour.NewPaletteRGB(colours)
}
