package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	if cfg.HTMLFile != "portfolio.html" {
		t.Errorf("HTMLFile = %q", cfg.HTMLFile)
	}
	if cfg.MarkerStart != "// ASSETS:START" || cfg.MarkerEnd != "// ASSETS:END" {
		t.Errorf("Markers = %q / %q", cfg.MarkerStart, cfg.MarkerEnd)
	}
	if cfg.Scan.PosterSuffix != "_poster" {
		t.Errorf("PosterSuffix = %q", cfg.Scan.PosterSuffix)
	}
	if len(cfg.Scan.PhotoExts) == 0 || len(cfg.Scan.VideoExts) == 0 {
		t.Error("Extension sets must not be empty")
	}
	// poster.jpg has to be preferred over cover.jpg
	if cfg.Scan.PosterNames[0] != "poster.jpg" {
		t.Errorf("PosterNames[0] = %q", cfg.Scan.PosterNames[0])
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(cfg, Defaults()) {
		t.Error("Missing portfolio.yml must yield the defaults")
	}
}

func TestLoadOverrides(t *testing.T) {
	root := t.TempDir()
	doc := "html_file: index.html\nscan:\n  photo_exts: [.jpg]\nthumbs:\n  time: 5\n"
	if err := os.WriteFile(filepath.Join(root, FileName), []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(root)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTMLFile != "index.html" {
		t.Errorf("HTMLFile = %q", cfg.HTMLFile)
	}
	if want := []string{".jpg"}; !reflect.DeepEqual(cfg.Scan.PhotoExts, want) {
		t.Errorf("PhotoExts = %v; want %v", cfg.Scan.PhotoExts, want)
	}
	if cfg.Thumbs.Time != 5 {
		t.Errorf("Thumbs.Time = %v", cfg.Thumbs.Time)
	}
	// Untouched fields keep their defaults.
	if cfg.TagsFile != "tags.json" {
		t.Errorf("TagsFile = %q", cfg.TagsFile)
	}
	if cfg.Scan.PosterSuffix != "_poster" {
		t.Errorf("PosterSuffix = %q", cfg.Scan.PosterSuffix)
	}
}

func TestLoadMalformed(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, FileName), []byte("scan: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(root); err == nil {
		t.Fatal("Expected an error for malformed YAML")
	}
}
