package types

// Asset is one indexed photo or video with its derived display metadata.
// Identity is Src (album/filename), unique across the collection.
type Asset struct {
	Type  string // "photo" or "video"
	Src   string // relative path: album/filename
	Thumb string // relative path of the display thumbnail
	Title string
	Album string
	Date  string // YYYY-MM-DD

	// Optional fields. Absent fields render nothing; see render.Entry.
	AlbumTitle string
	Caption    string
	Credit     string
	Featured   bool
	Order      *float64
	Layout     string
	Tags       []string
	Tagged     bool // Src appears as a key in tags.json, even with an empty list
}

// HasMeta reports whether any per-file metadata field was set on the asset.
func (a *Asset) HasMeta() bool {
	return a.Caption != "" || a.Credit != "" || a.Featured || a.Order != nil || a.Layout != ""
}

// Theme is a named tag category with the keywords that select it.
type Theme struct {
	Tag      string   `json:"tag"`
	Label    string   `json:"label"`
	Keywords []string `json:"keywords"`
}

// MediaItem is one scanned media file, as consumed by theme proposal and
// tag assignment.
type MediaItem struct {
	Album    string
	Filename string
	Stem     string
	Path     string // album/filename
}
