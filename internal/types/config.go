package types

// Config represents the portfolio configuration file (portfolio.yml in the
// portfolio root). Every field has a default; the file only lists overrides.
type Config struct {
	// Scan holds everything the filesystem scanner needs to classify files.
	Scan ScanConfig `yaml:"scan"`

	// GenericPrefixes are lowercase phrases that disqualify a cleaned
	// filename stem as a title (tool/export names like "download").
	GenericPrefixes []string `yaml:"generic_prefixes,flow"`

	// HTMLFile is the host document carrying the ASSETS block markers.
	HTMLFile    string `yaml:"html_file"`
	MarkerStart string `yaml:"marker_start"`
	MarkerEnd   string `yaml:"marker_end"`

	// Sidecar documents, relative to the portfolio root.
	TagsFile   string `yaml:"tags_file"`
	ThemesFile string `yaml:"themes_file"`
	RenameLog  string `yaml:"rename_log"`
	MetaFile   string `yaml:"meta_file"` // per-album, relative to the album dir

	Thumbs ThumbsConfig `yaml:"thumbs"`
	AI     AIConfig     `yaml:"ai"`
}

// ScanConfig holds the extension sets and reserved names used to partition
// album files. Passed around explicitly so tests can vary them.
type ScanConfig struct {
	PhotoExts    []string `yaml:"photo_exts,flow"`
	VideoExts    []string `yaml:"video_exts,flow"`
	PosterNames  []string `yaml:"poster_names,flow"` // checked in preference order
	PosterSuffix string   `yaml:"poster_suffix"`
	IgnoreDirs   []string `yaml:"ignore_dirs,flow"`
}

// ThumbsConfig controls video poster frame extraction.
type ThumbsConfig struct {
	Time        float64 `yaml:"time"`         // extraction timestamp in seconds
	JPEGQuality int     `yaml:"jpeg_quality"` // ffmpeg -q:v, 1-31, lower is better
	ScaleWidth  int     `yaml:"scale_width"`  // max poster width in pixels
}

// AIConfig controls the Anthropic API collaborators.
type AIConfig struct {
	Model     string  `yaml:"model"`
	BatchSize int     `yaml:"batch_size"` // files per tag-assignment request
	Sleep     float64 `yaml:"sleep"`      // seconds between requests
	MaxBytes  int64   `yaml:"max_bytes"`  // image payload ceiling before downscaling
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	res := *c
	res.Scan = c.Scan.Clone()
	res.GenericPrefixes = append([]string(nil), c.GenericPrefixes...)
	return &res
}

// Clone returns a deep copy of the scan configuration.
func (s ScanConfig) Clone() ScanConfig {
	res := s
	res.PhotoExts = append([]string(nil), s.PhotoExts...)
	res.VideoExts = append([]string(nil), s.VideoExts...)
	res.PosterNames = append([]string(nil), s.PosterNames...)
	res.IgnoreDirs = append([]string(nil), s.IgnoreDirs...)
	return res
}
