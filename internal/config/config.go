// Package config loads the portfolio configuration, merging portfolio.yml
// overrides on top of built-in defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nanosep/portfolio/internal/types"
	"gopkg.in/yaml.v3"
)

// FileName is the per-portfolio configuration file looked up in the root.
const FileName = "portfolio.yml"

// Defaults returns the built-in configuration.
func Defaults() *types.Config {
	return &types.Config{
		Scan: types.ScanConfig{
			PhotoExts:    []string{".jpg", ".jpeg", ".png", ".webp", ".gif", ".avif"},
			VideoExts:    []string{".mp4", ".mov", ".webm", ".avi"},
			PosterNames:  []string{"poster.jpg", "poster.jpeg", "poster.png", "cover.jpg", "cover.jpeg", "cover.png"},
			PosterSuffix: "_poster",
			IgnoreDirs:   []string{"__pycache__", ".DS_Store", ".git", "thumbs", "node_modules"},
		},
		GenericPrefixes: []string{
			"gemini generated image",
			"grok video",
			"magnifics mystic",
			"download",
			"image",
			"photo",
			"img",
			"file",
			"untitled",
			"screenshot",
			"captura de pantalla",
		},
		HTMLFile:    "portfolio.html",
		MarkerStart: "// ASSETS:START",
		MarkerEnd:   "// ASSETS:END",
		TagsFile:    "tags.json",
		ThemesFile:  "proposed_themes.json",
		RenameLog:   "rename-log.json",
		MetaFile:    "meta.json",
		Thumbs: types.ThumbsConfig{
			Time:        2,
			JPEGQuality: 3,
			ScaleWidth:  960,
		},
		AI: types.AIConfig{
			Model:     "claude-haiku-4-5-20251001",
			BatchSize: 40,
			Sleep:     0.3,
			MaxBytes:  4_800_000, // stay under the API's 5 MB image limit
		},
	}
}

// Load returns the configuration for a portfolio root. A missing
// portfolio.yml is not an error; the defaults are returned as-is.
func Load(root string) (*types.Config, error) {
	cfg := Defaults()

	path := filepath.Join(root, FileName)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}
