package compression

import (
	"bytes"
	"compress/gzip"
	"strings"
	"testing"

	"github.com/ulikunitz/xz"
)

// bzip2 payload of "vexil banner data\n", pre-compressed because the
// standard library only ships a bzip2 reader.
var bzip2Fixture = []byte{
	0x42, 0x5a, 0x68, 0x39, 0x31, 0x41, 0x59, 0x26, 0x53, 0x59, 0x33, 0xde,
	0x02, 0x7d, 0x00, 0x00, 0x08, 0x51, 0x80, 0x00, 0x10, 0x40, 0x00, 0x36,
	0x25, 0x15, 0x40, 0x20, 0x00, 0x22, 0x98, 0x27, 0xa3, 0x4d, 0x42, 0x01,
	0xa0, 0x07, 0x18, 0x7c, 0x07, 0x0e, 0xa5, 0x05, 0x32, 0x7f, 0x8b, 0xb9,
	0x22, 0x9c, 0x28, 0x48, 0x19, 0xef, 0x01, 0x3e, 0x80,
}

func gzipCompress(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}
	return buf.Bytes()
}

func xzCompress(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	xw, err := xz.NewWriter(&buf)
	if err != nil {
		t.Fatalf("xz writer: %v", err)
	}
	if _, err := xw.Write(data); err != nil {
		t.Fatalf("xz write: %v", err)
	}
	if err := xw.Close(); err != nil {
		t.Fatalf("xz close: %v", err)
	}
	return buf.Bytes()
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Format
	}{
		{"xz", []byte{0xfd, '7', 'z', 'X', 'Z', 0x00, 0xff}, FormatXz},
		{"gzip", []byte{0x1f, 0x8b, 0x08}, FormatGzip},
		{"bzip2", bzip2Fixture, FormatBzip2},
		{"plain text", []byte("just some text"), FormatNone},
		{"empty", nil, FormatNone},
		{"short", []byte{0x1f}, FormatNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFormat(tt.data); got != tt.want {
				t.Errorf("DetectFormat() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInflateXz(t *testing.T) {
	want := strings.Repeat("striped flag art\n", 50)
	got, err := Inflate(xzCompress(t, []byte(want)), 0)
	if err != nil {
		t.Fatalf("Inflate() error: %v", err)
	}
	if string(got) != want {
		t.Errorf("Inflate() round trip mismatch: got %d bytes, want %d", len(got), len(want))
	}
}

func TestInflateGzip(t *testing.T) {
	want := "banner payload"
	got, err := Inflate(gzipCompress(t, []byte(want)), 0)
	if err != nil {
		t.Fatalf("Inflate() error: %v", err)
	}
	if string(got) != want {
		t.Errorf("Inflate() = %q, want %q", got, want)
	}
}

func TestInflateBzip2(t *testing.T) {
	got, err := Inflate(bzip2Fixture, 0)
	if err != nil {
		t.Fatalf("Inflate() error: %v", err)
	}
	if want := "vexil banner data\n"; string(got) != want {
		t.Errorf("Inflate() = %q, want %q", got, want)
	}
}

func TestInflatePassthrough(t *testing.T) {
	want := []byte("uncompressed banner text")
	got, err := Inflate(want, 0)
	if err != nil {
		t.Fatalf("Inflate() error: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("Inflate() = %q, want unchanged input", got)
	}
}

func TestInflateSizeLimit(t *testing.T) {
	big := bytes.Repeat([]byte("a"), 4096)
	if _, err := Inflate(gzipCompress(t, big), 1024); err == nil {
		t.Fatal("Inflate() expected size limit error, got nil")
	}
}

func TestInflateCorruptXz(t *testing.T) {
	corrupt := append([]byte{0xfd, '7', 'z', 'X', 'Z', 0x00}, []byte("garbage")...)
	if _, err := Inflate(corrupt, 0); err == nil {
		t.Fatal("Inflate() expected error for corrupt stream, got nil")
	}
}
