package suggest

import (
	"testing"
)

func TestParseResponse(t *testing.T) {
	text := "Here is your palette:\n#1a2b3c\n#4d5e6f\n#708192\nEnjoy!"

	palette, err := ParseResponse(text)
	if err != nil {
		t.Fatalf("ParseResponse() error: %v", err)
	}
	if palette.Len() != 3 {
		t.Fatalf("ParseResponse() palette length = %d, want 3", palette.Len())
	}

	want := []string{"#1a2b3c", "#4d5e6f", "#708192"}
	for i, hex := range palette.ToHex() {
		if hex != want[i] {
			t.Errorf("stripe %d = %s, want %s", i, hex, want[i])
		}
	}
}

func TestParseResponseFencedOutput(t *testing.T) {
	text := "```\n#FF0000\n#00FF00\n#0000FF\n```"

	palette, err := ParseResponse(text)
	if err != nil {
		t.Fatalf("ParseResponse() error: %v", err)
	}
	if palette.Len() != 3 {
		t.Errorf("ParseResponse() palette length = %d, want 3", palette.Len())
	}
}

func TestParseResponseRejectsShortHex(t *testing.T) {
	// Three and seven digit sequences are not valid stripes.
	tests := []struct {
		name string
		text string
	}{
		{"three digit", "#fff and #abc"},
		{"seven digit", "#1234567"},
		{"no colours", "I cannot help with that."},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseResponse(tt.text); err == nil {
				t.Error("ParseResponse() expected error, got nil")
			}
		})
	}
}

func TestParseResponseOrderPreserved(t *testing.T) {
	text := "#000000 first, then #ffffff last"

	palette, err := ParseResponse(text)
	if err != nil {
		t.Fatalf("ParseResponse() error: %v", err)
	}

	hexes := palette.ToHex()
	if hexes[0] != "#000000" || hexes[1] != "#ffffff" {
		t.Errorf("ParseResponse() order = %v, want [#000000 #ffffff]", hexes)
	}
}
