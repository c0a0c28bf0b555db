package renamer

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"Already clean", "red-alfa-romeo", "red-alfa-romeo"},
		{"Uppercase and spaces", "Red Alfa Romeo", "red-alfa-romeo"},
		{"Punctuation collapses to hyphens", "café, at night!", "caf-at-night"},
		{"Leading and trailing separators trimmed", "--mountain--", "mountain"},
		{"Empty becomes unnamed", "", "unnamed"},
		{"Only invalid characters becomes unnamed", "!!!", "unnamed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.in); got != tt.want {
				t.Errorf("Sanitize(%q) = %q; want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestUniqueName(t *testing.T) {
	dir := t.TempDir()
	for _, f := range []string{"sunset.jpg", "sunset-2.jpg"} {
		if err := os.WriteFile(filepath.Join(dir, f), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	if got := UniqueName(dir, "beach", ".jpg"); got != "beach.jpg" {
		t.Errorf("UniqueName = %q; want beach.jpg", got)
	}
	if got := UniqueName(dir, "sunset", ".jpg"); got != "sunset-3.jpg" {
		t.Errorf("UniqueName = %q; want sunset-3.jpg", got)
	}
}

func TestLogRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rename-log.json")

	entries := []LogEntry{{
		Album:      "70s",
		Original:   "IMG_1234.jpg",
		Renamed:    "red-alfa-romeo.jpg",
		Suggestion: "red-alfa-romeo",
	}}
	if err := SaveLog(path, entries); err != nil {
		t.Fatalf("SaveLog: %v", err)
	}

	got, err := LoadLog(path)
	if err != nil {
		t.Fatalf("LoadLog: %v", err)
	}
	if len(got) != 1 || got[0] != entries[0] {
		t.Errorf("LoadLog = %+v; want %+v", got, entries)
	}
}

func TestLoadLogMissing(t *testing.T) {
	got, err := LoadLog(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("LoadLog: %v", err)
	}
	if got != nil {
		t.Errorf("Expected an empty log, got %+v", got)
	}
}
