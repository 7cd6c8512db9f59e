// Package pack provides the public API for vexil palette packs.
package pack

import (
	"github.com/hashicorp/go-plugin"
)

// Serve exposes the provider over go-plugin RPC. It is intended to be
// called from a pack binary's main function and blocks until the host
// disconnects.
func Serve(p Provider) {
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: Handshake,
		Plugins: map[string]plugin.Plugin{
			ProviderName: &ProviderRPC{Impl: p},
		},
	})
}
