package asset

import (
	"sort"
	"strings"
	"testing"
)

func TestNames(t *testing.T) {
	names := Names()
	if len(names) == 0 {
		t.Fatal("Names() returned no banners")
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("Names() = %v, want sorted order", names)
	}

	found := false
	for _, name := range names {
		if name == DefaultBanner {
			found = true
		}
		if strings.HasSuffix(name, ".xz") {
			t.Errorf("Names() contains %q, want extension stripped", name)
		}
	}
	if !found {
		t.Errorf("Names() = %v, want to include default banner %q", names, DefaultBanner)
	}
}

func TestLoad(t *testing.T) {
	for _, name := range Names() {
		text, err := Load(name)
		if err != nil {
			t.Errorf("Load(%q) error: %v", name, err)
			continue
		}
		if text == "" {
			t.Errorf("Load(%q) returned empty banner", name)
		}
		if strings.HasSuffix(text, "\n") {
			t.Errorf("Load(%q) has trailing newline", name)
		}
	}
}

func TestLoadDefaultBanner(t *testing.T) {
	text, err := Load(DefaultBanner)
	if err != nil {
		t.Fatalf("Load(%q) error: %v", DefaultBanner, err)
	}

	lines := strings.Split(text, "\n")
	if len(lines) != 5 {
		t.Errorf("default banner has %d lines, want 5", len(lines))
	}
	if !strings.Contains(text, "█") {
		t.Error("default banner missing block glyphs")
	}
}

func TestLoadUnknown(t *testing.T) {
	_, err := Load("no-such-banner")
	if err == nil {
		t.Fatal("Load() expected error for unknown banner, got nil")
	}
	if !strings.Contains(err.Error(), "no-such-banner") {
		t.Errorf("error %q should name the missing banner", err)
	}
}
