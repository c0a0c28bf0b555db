// Package meta reads the externally authored sidecar documents: per-album
// meta.json and the global tags.json.
package meta

import (
	"encoding/json"
	"os"

	"github.com/nanosep/portfolio/internal/types"
)

// AlbumMeta is the optional per-album metadata document.
type AlbumMeta struct {
	AlbumTitle string               `json:"albumTitle"`
	Assets     map[string]AssetMeta `json:"assets"`
}

// AssetMeta are the optional per-file fields meta.json may carry. Keys are
// matched against filenames exactly: no case folding, no Unicode
// normalization.
type AssetMeta struct {
	Caption  string   `json:"caption"`
	Credit   string   `json:"credit"`
	Featured bool     `json:"featured"`
	Order    *float64 `json:"order"`
	Layout   string   `json:"layout"`
}

// TagMap maps "album/filename" to an ordered tag list.
type TagMap map[string][]string

// LoadAlbum reads an album's meta.json. A missing file is not an error; the
// zero AlbumMeta is returned. A malformed file is an error so the caller can
// warn and continue with no metadata for that album only.
func LoadAlbum(path string) (AlbumMeta, error) {
	var m AlbumMeta
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return m, nil
	}
	if err != nil {
		return m, err
	}
	if err := json.Unmarshal(data, &m); err != nil {
		return AlbumMeta{}, err
	}
	return m, nil
}

// LoadTags reads the global tags.json. Missing file: empty map, no error.
// Malformed file: error, so the caller can warn and continue untagged.
func LoadTags(path string) (TagMap, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return TagMap{}, nil
	}
	if err != nil {
		return TagMap{}, err
	}
	var tags TagMap
	if err := json.Unmarshal(data, &tags); err != nil {
		return TagMap{}, err
	}
	return tags, nil
}

// Merge copies the fields present for the asset's filename onto the asset.
// Fields not set in meta.json stay at their zero value.
func Merge(asset *types.Asset, m AssetMeta) {
	if m.Caption != "" {
		asset.Caption = m.Caption
	}
	if m.Credit != "" {
		asset.Credit = m.Credit
	}
	if m.Featured {
		asset.Featured = true
	}
	if m.Order != nil {
		asset.Order = m.Order
	}
	if m.Layout != "" {
		asset.Layout = m.Layout
	}
}

// ApplyTags attaches the tag list when the asset's path appears as a key,
// even if the list is empty.
func ApplyTags(asset *types.Asset, tags TagMap) {
	if list, ok := tags[asset.Src]; ok {
		asset.Tags = list
		asset.Tagged = true
	}
}

// Save writes a tag map as pretty-printed JSON.
func (t TagMap) Save(path string) error {
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
