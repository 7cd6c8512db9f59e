// Package pack loads external palette packs and resolves palette names
// against them. Packs are standalone executables speaking the go-plugin
// RPC protocol defined in pkg/pack.
package pack

import (
	"fmt"
	"io"
	"log"
	"os/exec"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"

	vexilpack "github.com/jmylchreest/vexil/pkg/pack"
)

// Executor owns the process and RPC connection for a single pack
// binary. The pack process is started lazily on first use and stopped
// by Close.
type Executor struct {
	path     string
	verbose  bool
	client   *plugin.Client
	provider *vexilpack.ProviderRPCClient
}

// NewExecutor creates an executor for the pack binary at path.
func NewExecutor(path string, verbose bool) *Executor {
	return &Executor{path: path, verbose: verbose}
}

// Path returns the pack binary path.
func (e *Executor) Path() string {
	return e.path
}

func (e *Executor) getProvider() (*vexilpack.ProviderRPCClient, error) {
	if e.provider != nil {
		return e.provider, nil
	}

	// Configure logger based on verbose flag.
	var logger hclog.Logger
	if e.verbose {
		logger = hclog.New(&hclog.LoggerOptions{
			Name:   "pack",
			Output: log.Writer(),
			Level:  hclog.Debug,
		})
	} else {
		logger = hclog.New(&hclog.LoggerOptions{
			Name:   "pack",
			Output: io.Discard,
			Level:  hclog.Off,
		})
	}

	// Initialize go-plugin client.
	// #nosec G204 -- Path comes from the user's --pack flag or their pack directory
	e.client = plugin.NewClient(&plugin.ClientConfig{
		HandshakeConfig: vexilpack.Handshake,
		Plugins: map[string]plugin.Plugin{
			vexilpack.ProviderName: &vexilpack.ProviderRPC{},
		},
		Cmd:              exec.Command(e.path),
		AllowedProtocols: []plugin.Protocol{plugin.ProtocolNetRPC},
		Logger:           logger,
	})

	// Connect via RPC.
	rpcClient, err := e.client.Client()
	if err != nil {
		e.client.Kill()
		e.client = nil
		return nil, fmt.Errorf("failed to get RPC client: %w", err)
	}

	// Request the provider.
	raw, err := rpcClient.Dispense(vexilpack.ProviderName)
	if err != nil {
		e.client.Kill()
		e.client = nil
		return nil, fmt.Errorf("failed to dispense pack provider: %w", err)
	}

	provider := raw.(*vexilpack.ProviderRPCClient)
	e.provider = provider

	return provider, nil
}

// Info fetches pack metadata over RPC.
func (e *Executor) Info() (vexilpack.PackInfo, error) {
	provider, err := e.getProvider()
	if err != nil {
		return vexilpack.PackInfo{}, err
	}
	return provider.Info()
}

// Names lists the palette names the pack provides.
func (e *Executor) Names() ([]string, error) {
	provider, err := e.getProvider()
	if err != nil {
		return nil, err
	}
	return provider.Names()
}

// Get fetches the named palette from the pack.
func (e *Executor) Get(name string) (vexilpack.PaletteData, error) {
	provider, err := e.getProvider()
	if err != nil {
		return vexilpack.PaletteData{}, err
	}
	return provider.Get(name)
}

// Close stops the pack process if it was started.
func (e *Executor) Close() {
	if e.client != nil {
		e.client.Kill()
		e.client = nil
		e.provider = nil
	}
}
