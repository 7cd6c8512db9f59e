package colour

import (
	"strings"
	"testing"
)

func TestColorize(t *testing.T) {
	tests := []struct {
		name      string
		hexes     []string
		text      string
		layer     Layer
		spaceOnly bool
		want      string
	}{
		{
			name:  "empty text returns just reset",
			hexes: []string{"#ff0000"},
			text:  "",
			layer: Foreground,
			want:  "\033[0m",
		},
		{
			name:  "single colour foreground",
			hexes: []string{"#ff0000"},
			text:  "hi",
			layer: Foreground,
			want:  "\033[38;2;255;0;0mh\033[38;2;255;0;0mi\033[0m",
		},
		{
			name:  "single colour background",
			hexes: []string{"#ff0000"},
			text:  "hi",
			layer: Background,
			want:  "\033[48;2;255;0;0mh\033[48;2;255;0;0mi\033[0m",
		},
		{
			name:  "two colours split evenly",
			hexes: []string{"#ff0000", "#0000ff"},
			text:  "abcd",
			layer: Foreground,
			want: "\033[38;2;255;0;0ma\033[38;2;255;0;0mb" +
				"\033[38;2;0;0;255mc\033[38;2;0;0;255md\033[0m",
		},
		{
			name:  "plain mode colours spaces too",
			hexes: []string{"#ff0000"},
			text:  "a b",
			layer: Foreground,
			want:  "\033[38;2;255;0;0ma\033[38;2;255;0;0m \033[38;2;255;0;0mb\033[0m",
		},
		{
			name:      "space only colours just the space",
			hexes:     []string{"#ff0000"},
			text:      "a b",
			layer:     Foreground,
			spaceOnly: true,
			want:      "a\033[38;2;255;0;0m \033[0mb\033[0m",
		},
		{
			name:      "space only resets once per space run",
			hexes:     []string{"#ff0000"},
			text:      "ab  cd",
			layer:     Background,
			spaceOnly: true,
			want: "ab\033[48;2;255;0;0m \033[48;2;255;0;0m " +
				"\033[0mcd\033[0m",
		},
		{
			name:      "space only with leading space",
			hexes:     []string{"#ff0000"},
			text:      " x",
			layer:     Background,
			spaceOnly: true,
			want:      "\033[48;2;255;0;0m \033[0mx\033[0m",
		},
		{
			name:      "space only without any spaces emits no colour",
			hexes:     []string{"#ff0000"},
			text:      "abc",
			layer:     Foreground,
			spaceOnly: true,
			want:      "abc\033[0m",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPalette(tt.hexes...)
			if err != nil {
				t.Fatalf("NewPalette() error = %v", err)
			}

			got, err := p.Colorize(tt.text, tt.layer, tt.spaceOnly)
			if err != nil {
				t.Fatalf("Colorize() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Colorize() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestColorizeMultibyte(t *testing.T) {
	// Colours attach per rune, so multi-byte text never gets an escape
	// spliced into the middle of a UTF-8 sequence.
	p, err := NewPalette("#ff0000", "#0000ff")
	if err != nil {
		t.Fatalf("NewPalette() error = %v", err)
	}

	got, err := p.Colorize("éü", Foreground, false)
	if err != nil {
		t.Fatalf("Colorize() error = %v", err)
	}

	want := "\033[38;2;255;0;0mé\033[38;2;0;0;255mü\033[0m"
	if got != want {
		t.Errorf("Colorize() = %q, want %q", got, want)
	}
}

func TestColorizeAlwaysEndsWithReset(t *testing.T) {
	p, err := NewPalette("#E50000", "#FF8D00", "#FFEE00", "#028121", "#004CFF", "#770088")
	if err != nil {
		t.Fatalf("NewPalette() error = %v", err)
	}

	texts := []string{"", "x", "hello world", "  ", strings.Repeat("block ", 20)}
	for _, text := range texts {
		for _, spaceOnly := range []bool{false, true} {
			got, err := p.Colorize(text, Foreground, spaceOnly)
			if err != nil {
				t.Fatalf("Colorize(%q) error = %v", text, err)
			}
			if !strings.HasSuffix(got, Reset) {
				t.Errorf("Colorize(%q, spaceOnly=%v) does not end with reset: %q", text, spaceOnly, got)
			}
		}
	}
}

func TestColorizeWeightedSpacingFails(t *testing.T) {
	p, err := NewPalette("#ff0000", "#0000ff")
	if err != nil {
		t.Fatalf("NewPalette() error = %v", err)
	}

	if _, err := p.WithSpacing(SpacingWeighted).Colorize("hello", Foreground, false); err == nil {
		t.Error("Colorize() with weighted spacing did not return an error")
	}
}
