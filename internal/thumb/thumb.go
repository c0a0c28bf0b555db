// Package thumb resolves the poster image shown for a video.
package thumb

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nanosep/portfolio/internal/scanner"
	"github.com/nanosep/portfolio/internal/types"
)

var posterExts = []string{".jpg", ".jpeg", ".png"}

// Resolve picks the thumbnail for a video, in priority order:
//
//  1. {video-stem}_poster.{jpg,jpeg,png} generated by the thumbs command
//  2. a reserved album poster/cover name, in configured preference order
//  3. the first photo in sorted order that is not itself a poster
//
// The returned path is relative (album/filename). ok is false when no
// candidate exists; the caller then falls back to the video's own path.
func Resolve(albumDir, albumName, videoFilename string, cfg types.ScanConfig) (path string, ok bool) {
	entries, err := os.ReadDir(albumDir)
	if err != nil {
		return "", false
	}

	// Case-insensitive lookup preserving on-disk spelling.
	byLower := make(map[string]string, len(entries))
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		byLower[strings.ToLower(e.Name())] = e.Name()
		names = append(names, e.Name())
	}
	sort.Strings(names)

	// 1. Per-video extracted poster.
	stem := strings.TrimSuffix(videoFilename, filepath.Ext(videoFilename))
	for _, ext := range posterExts {
		candidate := strings.ToLower(stem + cfg.PosterSuffix + ext)
		if f, found := byLower[candidate]; found {
			return albumName + "/" + f, true
		}
	}

	// 2. Album-level poster/cover.
	for _, name := range cfg.PosterNames {
		if f, found := byLower[strings.ToLower(name)]; found {
			return albumName + "/" + f, true
		}
	}

	// 3. First non-poster photo.
	for _, f := range names {
		if scanner.Skip(f, cfg) {
			continue
		}
		if scanner.IsPhoto(f, cfg) {
			return albumName + "/" + f, true
		}
	}

	return "", false
}
