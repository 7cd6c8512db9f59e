package colour

import (
	"strings"
	"testing"
)

func TestRGBSequence(t *testing.T) {
	tests := []struct {
		name  string
		rgb   RGB
		layer Layer
		want  string
	}{
		{
			name:  "foreground red",
			rgb:   RGB{R: 255, G: 0, B: 0},
			layer: Foreground,
			want:  "\033[38;2;255;0;0m",
		},
		{
			name:  "background red",
			rgb:   RGB{R: 255, G: 0, B: 0},
			layer: Background,
			want:  "\033[48;2;255;0;0m",
		},
		{
			name:  "foreground mixed",
			rgb:   RGB{R: 85, G: 205, B: 253},
			layer: Foreground,
			want:  "\033[38;2;85;205;253m",
		},
		{
			name:  "background black",
			rgb:   RGB{R: 0, G: 0, B: 0},
			layer: Background,
			want:  "\033[48;2;0;0;0m",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.rgb.Sequence(tt.layer)
			if got != tt.want {
				t.Errorf("Sequence(%v) = %q, want %q", tt.layer, got, tt.want)
			}
		})
	}
}

func TestParseLayer(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Layer
		wantErr bool
	}{
		{name: "fg", input: "fg", want: Foreground},
		{name: "foreground", input: "foreground", want: Foreground},
		{name: "bg", input: "bg", want: Background},
		{name: "background uppercase", input: "BACKGROUND", want: Background},
		{name: "unknown", input: "sideways", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLayer(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLayer(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseLayer(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLayerString(t *testing.T) {
	if got := Foreground.String(); got != "fg" {
		t.Errorf("Foreground.String() = %s, want fg", got)
	}
	if got := Background.String(); got != "bg" {
		t.Errorf("Background.String() = %s, want bg", got)
	}
}

func TestColourPreview(t *testing.T) {
	rgb := RGB{R: 255, G: 0, B: 0}

	preview := ColourPreview(rgb, 4)
	want := "\033[48;2;255;0;0m    \033[0m"
	if preview != want {
		t.Errorf("ColourPreview() = %q, want %q", preview, want)
	}

	// Zero or negative width falls back to the default.
	fallback := ColourPreview(rgb, 0)
	if !strings.Contains(fallback, strings.Repeat(" ", defaultWidth)) {
		t.Errorf("ColourPreview() with zero width = %q, want %d-space block", fallback, defaultWidth)
	}
}

func TestColourPreviewWithText(t *testing.T) {
	dark := RGB{R: 10, G: 10, B: 10}
	light := RGB{R: 245, G: 245, B: 245}

	onDark := ColourPreviewWithText(dark, "ok", 8)
	if !strings.Contains(onDark, RGB{R: 255, G: 255, B: 255}.Sequence(Foreground)) {
		t.Errorf("dark background preview %q does not use white text", onDark)
	}

	onLight := ColourPreviewWithText(light, "ok", 8)
	if !strings.Contains(onLight, RGB{}.Sequence(Foreground)) {
		t.Errorf("light background preview %q does not use black text", onLight)
	}

	// Long labels are truncated to the block width.
	truncated := ColourPreviewWithText(dark, "overlong label", 4)
	if strings.Contains(truncated, "overlong") {
		t.Errorf("preview %q was not truncated to width", truncated)
	}
}

func TestContrastingText(t *testing.T) {
	if got := ContrastingText(RGB{R: 0, G: 0, B: 0}); got != (RGB{R: 255, G: 255, B: 255}) {
		t.Errorf("ContrastingText(black) = %s, want white", got.Hex())
	}
	if got := ContrastingText(RGB{R: 255, G: 255, B: 255}); got != (RGB{}) {
		t.Errorf("ContrastingText(white) = %s, want black", got.Hex())
	}
}

func TestFormatColourWithLabel(t *testing.T) {
	rgb := RGB{R: 229, G: 0, B: 0}

	got := FormatColourWithLabel(rgb, "rainbow", 2)
	if !strings.Contains(got, "rainbow") {
		t.Errorf("FormatColourWithLabel() = %q, missing label", got)
	}
	if !strings.Contains(got, "#e50000") {
		t.Errorf("FormatColourWithLabel() = %q, missing hex", got)
	}
	if !strings.Contains(got, rgb.Sequence(Background)) {
		t.Errorf("FormatColourWithLabel() = %q, missing colour block", got)
	}
}
