package cli

import (
	"strings"
	"testing"
)

func TestNewTable(t *testing.T) {
	table := NewTable([]string{"NAME", "STRIPES", "SOURCE"})

	if table == nil {
		t.Fatal("NewTable returned nil")
	}
	if len(table.headers) != 3 {
		t.Errorf("Expected 3 headers, got %d", len(table.headers))
	}
	if table.padding != 2 {
		t.Errorf("Expected padding of 2, got %d", table.padding)
	}
}

func TestTableAddRow(t *testing.T) {
	table := NewTable([]string{"NAME", "SOURCE"})

	// Matching row
	table.AddRow([]string{"rainbow", "builtin"})
	if len(table.rows) != 1 {
		t.Errorf("Expected 1 row, got %d", len(table.rows))
	}

	// Short row is padded with empty cells
	table.AddRow([]string{"spring"})
	if len(table.rows[1]) != 2 {
		t.Errorf("Expected row padded to 2 columns, got %d", len(table.rows[1]))
	}
	if table.rows[1][1] != "" {
		t.Errorf("Expected empty string for padded column, got %q", table.rows[1][1])
	}

	// Long row is truncated
	table.AddRow([]string{"winter", "seasons", "extra"})
	if len(table.rows[2]) != 2 {
		t.Errorf("Expected row truncated to 2 columns, got %d", len(table.rows[2]))
	}
}

func TestTableRender(t *testing.T) {
	table := NewTable([]string{"NAME", "STRIPES", "SOURCE"})
	table.AddRow([]string{"rainbow", "#e40303 #ff8c00", "builtin"})
	table.AddRow([]string{"spring", "#a8e063 #56ab2f", "seasons"})

	output := table.Render()

	for _, want := range []string{"NAME", "STRIPES", "SOURCE", "rainbow", "spring", "#e40303", "seasons"} {
		if !strings.Contains(output, want) {
			t.Errorf("Output should contain %q", want)
		}
	}

	lines := strings.Split(output, "\n")
	if len(lines) < 4 {
		t.Fatalf("Expected at least 4 lines, got %d", len(lines))
	}
	// Second line is the separator
	if !strings.Contains(lines[1], "---") {
		t.Errorf("Expected separator line with dashes, got: %q", lines[1])
	}
}

func TestTableRenderEmpty(t *testing.T) {
	table := NewTable([]string{})

	if output := table.Render(); output != "" {
		t.Errorf("Expected empty string for headerless table, got: %q", output)
	}
}

func TestTableRenderNoRows(t *testing.T) {
	table := NewTable([]string{"NAME", "SOURCE"})

	output := table.Render()

	if !strings.Contains(output, "NAME") {
		t.Error("Output should contain headers even without rows")
	}
	if lines := strings.Split(output, "\n"); len(lines) < 2 {
		t.Error("Expected at least header and separator lines")
	}
}

func TestTableColumnAlignment(t *testing.T) {
	table := NewTable([]string{"N", "A Much Longer Header", "MID"})
	table.AddRow([]string{"rainbow", "x", "y"})

	output := table.Render()
	lines := strings.Split(output, "\n")

	if len(lines) < 3 {
		t.Fatalf("Expected at least 3 lines, got %d", len(lines))
	}

	// Separator width tracks the widest cell per column
	if len(lines[1]) != len(lines[0]) {
		t.Errorf("Separator length (%d) should match header length (%d)", len(lines[1]), len(lines[0]))
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		input    string
		width    int
		expected string
	}{
		{"test", 10, "test      "},
		{"hello", 5, "hello"},
		{"world", 3, "world"},
		{"", 5, "     "},
		{"x", 1, "x"},
	}

	for _, tt := range tests {
		if got := padRight(tt.input, tt.width); got != tt.expected {
			t.Errorf("padRight(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.expected)
		}
	}
}
