// Package renamer applies AI-suggested descriptive filenames to photos and
// keeps a revert log of every change.
package renamer

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

var (
	invalidRe = regexp.MustCompile(`[^a-z0-9-]`)
	dashRunRe = regexp.MustCompile(`-+`)
)

// Sanitize reduces a suggested name to lowercase letters, digits, and
// single hyphens. An empty result becomes "unnamed".
func Sanitize(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = invalidRe.ReplaceAllString(name, "-")
	name = dashRunRe.ReplaceAllString(name, "-")
	name = strings.Trim(name, "-")
	if name == "" {
		return "unnamed"
	}
	return name
}

// UniqueName returns stem+ext, appending a numeric suffix while the
// candidate already exists in dir.
func UniqueName(dir, stem, ext string) string {
	candidate := stem + ext
	if _, err := os.Stat(filepath.Join(dir, candidate)); os.IsNotExist(err) {
		return candidate
	}
	for i := 2; ; i++ {
		candidate = stem + "-" + strconv.Itoa(i) + ext
		if _, err := os.Stat(filepath.Join(dir, candidate)); os.IsNotExist(err) {
			return candidate
		}
	}
}

// LogEntry records one rename for later revert.
type LogEntry struct {
	Album      string `json:"album"`
	Original   string `json:"original"`
	Renamed    string `json:"renamed"`
	Suggestion string `json:"suggestion"`
	DryRun     bool   `json:"dry_run"`
}

// LoadLog reads the rename log, returning an empty log when the file does
// not exist yet.
func LoadLog(path string) ([]LogEntry, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var log []LogEntry
	if err := json.Unmarshal(data, &log); err != nil {
		return nil, err
	}
	return log, nil
}

// SaveLog writes the rename log as pretty-printed JSON.
func SaveLog(path string, log []LogEntry) error {
	data, err := json.MarshalIndent(log, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
