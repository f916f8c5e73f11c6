package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadOffsets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tzoffsets.json")
	if err := os.WriteFile(path, []byte(`{"PH": 8, "US": -5}`), 0o644); err != nil {
		t.Fatal(err)
	}

	o := LoadOffsets(path)
	if got := o.Get("PH"); got != 8 {
		t.Errorf("PH = %d, want 8", got)
	}
	if got := o.Get("ph"); got != 8 {
		t.Errorf("lookup should be case-insensitive, got %d", got)
	}
	if got := o.Get("US"); got != -5 {
		t.Errorf("US = %d, want -5", got)
	}
	if got := o.Get("ZZ"); got != 0 {
		t.Errorf("unknown country = %d, want 0", got)
	}
}

// A missing file degrades to an all-zero table; surrounding formatting code
// treats that as UTC.
func TestLoadOffsetsMissingFile(t *testing.T) {
	o := LoadOffsets(filepath.Join(t.TempDir(), "nope.json"))
	if got := o.Get("PH"); got != 0 {
		t.Errorf("PH = %d, want 0", got)
	}
	if o := LoadOffsets(""); o.Get("US") != 0 {
		t.Error("empty path should yield empty table")
	}
}
