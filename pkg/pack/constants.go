// Package pack provides the public API for vexil palette packs.
package pack

import (
	"github.com/hashicorp/go-plugin"
)

const (
	// ProtocolVersion defines the current pack API version.
	// Format: MAJOR.MINOR.PATCH.
	// - Increment MAJOR for breaking changes (incompatible API changes).
	// - Increment MINOR for backward-compatible additions.
	// - Increment PATCH for backward-compatible bug fixes.
	ProtocolVersion = "0.0.1"

	// MinCompatibleVersion is the oldest protocol version this vexil version can work with.
	MinCompatibleVersion = "0.0.1"

	// ProviderName is the name packs register under in the go-plugin plugin map.
	ProviderName = "provider"
)

// Handshake is the handshake configuration for the go-plugin protocol.
// This ensures that packs using go-plugin can only connect to compatible hosts.
var Handshake = plugin.HandshakeConfig{
	ProtocolVersion:  0, // Major version from ProtocolVersion
	MagicCookieKey:   "VEXIL_PACK",
	MagicCookieValue: "vexil_palette_pack",
}
