package pack

import (
	"encoding/json"
	"errors"
	"testing"
)

// Mock implementation for testing.
type mockProvider struct {
	info     PackInfo
	names    []string
	palettes map[string]PaletteData
	namesErr error
}

func (m *mockProvider) Info() PackInfo {
	return m.info
}

func (m *mockProvider) Names() ([]string, error) {
	if m.namesErr != nil {
		return nil, m.namesErr
	}
	return m.names, nil
}

func (m *mockProvider) Get(name string) (PaletteData, error) {
	palette, ok := m.palettes[name]
	if !ok {
		return PaletteData{}, errors.New("unknown palette: " + name)
	}
	return palette, nil
}

func newMockProvider() *mockProvider {
	return &mockProvider{
		info: PackInfo{
			Name:            "test-pack",
			Version:         "1.0.0",
			ProtocolVersion: ProtocolVersion,
			Description:     "Test palette pack",
		},
		names: []string{"dawn", "dusk"},
		palettes: map[string]PaletteData{
			"dawn": {
				Name: "dawn",
				Colours: []RGBColour{
					{R: 255, G: 94, B: 77},
					{R: 255, G: 166, B: 77},
					{R: 255, G: 219, B: 128},
				},
			},
			"dusk": {
				Name: "dusk",
				Colours: []RGBColour{
					{R: 46, G: 26, B: 71},
					{R: 120, G: 28, B: 109},
				},
			},
		},
	}
}

// TestProviderRPC tests the pack RPC wrapper.
func TestProviderRPC(t *testing.T) {
	mock := newMockProvider()
	rpc := &ProviderRPC{Impl: mock}

	t.Run("Server", func(t *testing.T) {
		server, err := rpc.Server(nil)
		if err != nil {
			t.Fatalf("Server() error = %v", err)
		}
		if server == nil {
			t.Fatal("Server() returned nil server")
		}

		rpcServer, ok := server.(*ProviderRPCServer)
		if !ok {
			t.Fatal("Server() returned wrong type")
		}
		if rpcServer.Impl != mock {
			t.Fatal("Server() impl not set correctly")
		}
	})

	t.Run("Client", func(t *testing.T) {
		client, err := rpc.Client(nil, nil)
		if err != nil {
			t.Fatalf("Client() error = %v", err)
		}
		if client == nil {
			t.Fatal("Client() returned nil client")
		}
	})
}

// TestProviderRPCServer tests the RPC server methods.
func TestProviderRPCServer(t *testing.T) {
	mock := newMockProvider()
	server := &ProviderRPCServer{Impl: mock}

	t.Run("Info", func(t *testing.T) {
		var resp PackInfo
		if err := server.Info(nil, &resp); err != nil {
			t.Fatalf("Info() error = %v", err)
		}
		if resp.Name != "test-pack" {
			t.Errorf("Info() name = %q, want %q", resp.Name, "test-pack")
		}
		if resp.ProtocolVersion != ProtocolVersion {
			t.Errorf("Info() protocol version = %q, want %q", resp.ProtocolVersion, ProtocolVersion)
		}
	})

	t.Run("Names", func(t *testing.T) {
		var resp []string
		if err := server.Names(nil, &resp); err != nil {
			t.Fatalf("Names() error = %v", err)
		}
		if len(resp) != 2 {
			t.Fatalf("Names() returned %d names, want 2", len(resp))
		}
		if resp[0] != "dawn" || resp[1] != "dusk" {
			t.Errorf("Names() = %v, want [dawn dusk]", resp)
		}
	})

	t.Run("NamesError", func(t *testing.T) {
		failing := &ProviderRPCServer{Impl: &mockProvider{namesErr: errors.New("boom")}}
		var resp []string
		if err := failing.Names(nil, &resp); err == nil {
			t.Fatal("Names() expected error, got nil")
		}
	})

	t.Run("Get", func(t *testing.T) {
		var resp []byte
		if err := server.Get("dawn", &resp); err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if len(resp) == 0 {
			t.Fatal("Get() returned empty response")
		}

		var palette PaletteData
		if err := json.Unmarshal(resp, &palette); err != nil {
			t.Fatalf("Get() response not valid JSON: %v", err)
		}
		if palette.Name != "dawn" {
			t.Errorf("Get() palette name = %q, want %q", palette.Name, "dawn")
		}
		if len(palette.Colours) != 3 {
			t.Errorf("Get() returned %d colours, want 3", len(palette.Colours))
		}
		if (palette.Colours[0] != RGBColour{R: 255, G: 94, B: 77}) {
			t.Errorf("Get() first stripe = %+v, want {255 94 77}", palette.Colours[0])
		}
	})

	t.Run("GetUnknown", func(t *testing.T) {
		var resp []byte
		if err := server.Get("no-such-palette", &resp); err == nil {
			t.Fatal("Get() expected error for unknown palette, got nil")
		}
	})
}

// TestPackInfo tests PackInfo structure round trips through JSON.
func TestPackInfoJSON(t *testing.T) {
	info := PackInfo{
		Name:            "seasons",
		Version:         "0.0.1",
		ProtocolVersion: "0.0.1",
		Description:     "Seasonal palettes",
	}

	data, err := json.Marshal(info)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var got PackInfo
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got != info {
		t.Errorf("round trip = %+v, want %+v", got, info)
	}
}
