// Package pack provides the public API for vexil palette packs.
package pack

import (
	"encoding/json"
	"net/rpc"

	"github.com/hashicorp/go-plugin"
)

// ProviderRPC implements the go-plugin Plugin interface for palette packs.
type ProviderRPC struct {
	plugin.Plugin
	Impl Provider
}

// Server returns an RPC server for this pack.
func (p *ProviderRPC) Server(*plugin.MuxBroker) (any, error) {
	return &ProviderRPCServer{Impl: p.Impl}, nil
}

// Client returns an RPC client for this pack.
func (p *ProviderRPC) Client(_ *plugin.MuxBroker, c *rpc.Client) (any, error) {
	return &ProviderRPCClient{client: c}, nil
}

// ProviderRPCServer is the RPC server implementation for palette packs.
type ProviderRPCServer struct {
	Impl Provider
}

// Info implements the RPC method for fetching pack metadata.
func (s *ProviderRPCServer) Info(_ any, resp *PackInfo) error {
	*resp = s.Impl.Info()
	return nil
}

// Names implements the RPC method for listing palette names.
func (s *ProviderRPCServer) Names(_ any, resp *[]string) error {
	names, err := s.Impl.Names()
	if err != nil {
		return err
	}
	*resp = names
	return nil
}

// Get implements the RPC method for fetching a palette.
func (s *ProviderRPCServer) Get(name string, resp *[]byte) error {
	palette, err := s.Impl.Get(name)
	if err != nil {
		return err
	}

	data, err := json.Marshal(palette)
	if err != nil {
		return err
	}

	*resp = data
	return nil
}

// ProviderRPCClient is the RPC client implementation for palette packs.
type ProviderRPCClient struct {
	client *rpc.Client
}

// Info calls the remote Info method.
func (c *ProviderRPCClient) Info() (PackInfo, error) {
	var info PackInfo
	err := c.client.Call("Plugin.Info", new(any), &info)
	return info, err
}

// Names calls the remote Names method.
func (c *ProviderRPCClient) Names() ([]string, error) {
	var names []string
	err := c.client.Call("Plugin.Names", new(any), &names)
	return names, err
}

// Get calls the remote Get method.
func (c *ProviderRPCClient) Get(name string) (PaletteData, error) {
	var respBytes []byte
	if err := c.client.Call("Plugin.Get", name, &respBytes); err != nil {
		return PaletteData{}, err
	}

	var palette PaletteData
	if err := json.Unmarshal(respBytes, &palette); err != nil {
		return PaletteData{}, err
	}

	return palette, nil
}
