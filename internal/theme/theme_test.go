package theme

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/nanosep/portfolio/internal/types"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		stem string
		want []string
	}{
		{"red-alfa-romeo", []string{"red", "alfa", "romeo"}},
		{"City_Night Walk", []string{"city", "night", "walk"}},
		{"", nil},
		{"--solo--", []string{"solo"}},
	}
	for _, tt := range tests {
		got := Tokenize(tt.stem)
		for _, w := range tt.want {
			if !got[w] {
				t.Errorf("Tokenize(%q) missing %q", tt.stem, w)
			}
		}
		if len(got) != len(tt.want) {
			t.Errorf("Tokenize(%q) = %v; want %v", tt.stem, got, tt.want)
		}
	}
}

func TestVocabulary(t *testing.T) {
	items := []types.MediaItem{
		{Stem: "street-market-photo"},     // "photo" is a stopword
		{Stem: "street-ca-12"},            // short and numeric tokens dropped
		{Stem: "deadbeef01-street-night"}, // hex-looking token dropped
	}
	vocab := Vocabulary(items)

	if len(vocab) == 0 || vocab[0].Word != "street" || vocab[0].Count != 3 {
		t.Fatalf("Expected street(3) first, got %v", vocab)
	}
	for _, wc := range vocab {
		switch wc.Word {
		case "photo", "12", "ca", "deadbeef01":
			t.Errorf("Word %q must be filtered out", wc.Word)
		}
	}
}

func TestAssignByKeywords(t *testing.T) {
	themes := []types.Theme{
		{Tag: "urban", Label: "Urban & City", Keywords: []string{"street", "city"}},
		{Tag: "night", Label: "Night", Keywords: []string{"night", "dark"}},
	}
	items := []types.MediaItem{
		{Path: "70s/street-night-walk.jpg", Stem: "street-night-walk"},
		{Path: "70s/mountain-sunrise.jpg", Stem: "mountain-sunrise"},
	}

	got := AssignByKeywords(items, themes)

	// Match order follows theme order, one tag per matching theme.
	if want := []string{"urban", "night"}; !reflect.DeepEqual(got["70s/street-night-walk.jpg"], want) {
		t.Errorf("tags = %v; want %v", got["70s/street-night-walk.jpg"], want)
	}
	// No match still yields an (empty) entry.
	tags, ok := got["70s/mountain-sunrise.jpg"]
	if !ok || len(tags) != 0 {
		t.Errorf("Unmatched file must map to an empty list, got %v (present=%v)", tags, ok)
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "proposed_themes.json")
	themes := []types.Theme{{Tag: "urban", Label: "Urban & City", Keywords: []string{"street"}}}

	if err := Save(path, themes); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, themes) {
		t.Errorf("Load() = %v; want %v", got, themes)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("Expected an error for a missing theme document")
	}
}
