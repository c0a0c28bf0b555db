// Package scanner walks a portfolio root and partitions album files into
// photos and videos.
package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/nanosep/portfolio/internal/types"
)

// Album is one top-level portfolio directory with its media files in
// name-sorted order, photos and videos partitioned.
type Album struct {
	Name   string
	Dir    string
	Photos []string
	Videos []string
}

// Albums lists the album directories under root in sorted order, skipping
// the configured ignore-set and hidden directories. A missing root is fatal
// to the caller: the error is returned as-is.
func Albums(root string, cfg types.ScanConfig) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read portfolio root: %w", err)
	}

	var albums []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasPrefix(name, ".") || slices.Contains(cfg.IgnoreDirs, name) {
			continue
		}
		albums = append(albums, name)
	}
	slices.Sort(albums)
	return albums, nil
}

// Scan reads every album under root. os.ReadDir returns entries sorted by
// name, so file order within an album is stable across runs.
func Scan(root string, cfg types.ScanConfig) ([]Album, error) {
	names, err := Albums(root, cfg)
	if err != nil {
		return nil, err
	}

	albums := make([]Album, 0, len(names))
	for _, name := range names {
		dir := filepath.Join(root, name)
		entries, err := os.ReadDir(dir)
		if err != nil {
			// Unreadable album: skip, keep scanning the rest.
			continue
		}

		album := Album{Name: name, Dir: dir}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			f := e.Name()
			if Skip(f, cfg) {
				continue
			}
			switch {
			case IsPhoto(f, cfg):
				album.Photos = append(album.Photos, f)
			case IsVideo(f, cfg):
				album.Videos = append(album.Videos, f)
			}
		}
		albums = append(albums, album)
	}
	return albums, nil
}

// Skip reports whether a filename is a reserved poster/cover file or a
// generated poster (stem ending in the poster suffix). Case-insensitive.
func Skip(filename string, cfg types.ScanConfig) bool {
	fl := strings.ToLower(filename)
	for _, p := range cfg.PosterNames {
		if fl == strings.ToLower(p) {
			return true
		}
	}
	stem := strings.TrimSuffix(fl, filepath.Ext(fl))
	return strings.HasSuffix(stem, cfg.PosterSuffix)
}

// IsPhoto reports whether the filename has a configured photo extension.
func IsPhoto(filename string, cfg types.ScanConfig) bool {
	return hasExt(filename, cfg.PhotoExts)
}

// IsVideo reports whether the filename has a configured video extension.
func IsVideo(filename string, cfg types.ScanConfig) bool {
	return hasExt(filename, cfg.VideoExts)
}

func hasExt(filename string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return slices.Contains(exts, ext)
}

// MediaItems flattens the scan into the list consumed by theme proposal and
// tag assignment: photos then videos per album, album-major order.
func MediaItems(albums []Album) []types.MediaItem {
	var items []types.MediaItem
	for _, a := range albums {
		for _, f := range append(append([]string(nil), a.Photos...), a.Videos...) {
			stem := strings.TrimSuffix(f, filepath.Ext(f))
			items = append(items, types.MediaItem{
				Album:    a.Name,
				Filename: f,
				Stem:     stem,
				Path:     a.Name + "/" + f,
			})
		}
	}
	return items
}
