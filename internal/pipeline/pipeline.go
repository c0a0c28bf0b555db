// Package pipeline runs the scan → title → thumbnail → metadata merge
// sequence and produces the asset list the renderer consumes.
package pipeline

import (
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/nanosep/portfolio/internal/meta"
	"github.com/nanosep/portfolio/internal/scanner"
	"github.com/nanosep/portfolio/internal/thumb"
	"github.com/nanosep/portfolio/internal/title"
	"github.com/nanosep/portfolio/internal/types"
)

// Result is a full portfolio snapshot, recomputed from scratch on each run.
type Result struct {
	Assets []*types.Asset
	Albums []string
}

// Summary counts for the dry-run report.
type Summary struct {
	Albums    int
	Photos    int
	Videos    int
	WithMeta  int
	WithTitle int
	WithTags  int
}

// Run scans the portfolio root and returns the merged asset list in album-
// major order, photos before videos. Malformed sidecar documents degrade to
// warnings; only a missing root aborts.
func Run(root string, cfg *types.Config, logger *log.Logger) (*Result, error) {
	albums, err := scanner.Scan(root, cfg.Scan)
	if err != nil {
		return nil, err
	}

	tags, err := meta.LoadTags(filepath.Join(root, cfg.TagsFile))
	if err != nil {
		logger.Warn("Ignoring malformed tags file", "file", cfg.TagsFile, "error", err)
		tags = meta.TagMap{}
	}

	deriver := title.Deriver{GenericPrefixes: cfg.GenericPrefixes}

	res := &Result{}
	for _, album := range albums {
		res.Albums = append(res.Albums, album.Name)

		am, err := meta.LoadAlbum(filepath.Join(album.Dir, cfg.MetaFile))
		if err != nil {
			logger.Warn("Ignoring malformed album metadata", "album", album.Name, "error", err)
			am = meta.AlbumMeta{}
		}

		for i, f := range album.Photos {
			src := album.Name + "/" + f
			a := &types.Asset{
				Type:  "photo",
				Src:   src,
				Thumb: src,
				Title: deriver.Derive(album.Name, f, i+1, len(album.Photos)),
				Album: album.Name,
				Date:  scanner.PhotoDate(filepath.Join(album.Dir, f)),
			}
			if am.AlbumTitle != "" && i == 0 {
				a.AlbumTitle = am.AlbumTitle
			}
			if fm, ok := am.Assets[f]; ok {
				meta.Merge(a, fm)
			}
			meta.ApplyTags(a, tags)
			res.Assets = append(res.Assets, a)
		}

		for i, f := range album.Videos {
			src := album.Name + "/" + f
			t, ok := thumb.Resolve(album.Dir, album.Name, f, cfg.Scan)
			if !ok {
				// Degraded but non-fatal: the video poses as its own poster.
				t = src
			}
			a := &types.Asset{
				Type:  "video",
				Src:   src,
				Thumb: t,
				Title: deriver.Derive(album.Name, f, i+1, len(album.Videos)),
				Album: album.Name,
				Date:  scanner.FileDate(filepath.Join(album.Dir, f)),
			}
			// The album title renders once per album: on the first photo,
			// or on the first video when the album has no photos.
			if am.AlbumTitle != "" && i == 0 && len(album.Photos) == 0 {
				a.AlbumTitle = am.AlbumTitle
			}
			if fm, ok := am.Assets[f]; ok {
				meta.Merge(a, fm)
			}
			meta.ApplyTags(a, tags)
			res.Assets = append(res.Assets, a)
		}
	}
	return res, nil
}

// Summarize tallies the result for reporting.
func (r *Result) Summarize() Summary {
	s := Summary{Albums: len(r.Albums)}
	for _, a := range r.Assets {
		switch a.Type {
		case "photo":
			s.Photos++
		case "video":
			s.Videos++
		}
		if a.HasMeta() {
			s.WithMeta++
		}
		if a.AlbumTitle != "" {
			s.WithTitle++
		}
		if a.Tagged {
			s.WithTags++
		}
	}
	return s
}
