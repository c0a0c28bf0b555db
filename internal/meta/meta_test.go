package meta

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/nanosep/portfolio/internal/types"
)

func writeJSON(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadAlbum(t *testing.T) {
	dir := t.TempDir()

	t.Run("Missing file is empty metadata", func(t *testing.T) {
		m, err := LoadAlbum(filepath.Join(dir, "absent.json"))
		if err != nil {
			t.Fatalf("LoadAlbum: %v", err)
		}
		if m.AlbumTitle != "" || len(m.Assets) != 0 {
			t.Errorf("Expected zero metadata, got %+v", m)
		}
	})

	t.Run("Valid document", func(t *testing.T) {
		path := writeJSON(t, dir, "meta.json", `{
			"albumTitle": "The Seventies",
			"assets": {
				"b.jpg": {"featured": true, "caption": "Main street", "order": 2}
			}
		}`)
		m, err := LoadAlbum(path)
		if err != nil {
			t.Fatalf("LoadAlbum: %v", err)
		}
		if m.AlbumTitle != "The Seventies" {
			t.Errorf("AlbumTitle = %q", m.AlbumTitle)
		}
		am, ok := m.Assets["b.jpg"]
		if !ok {
			t.Fatal("Missing entry for b.jpg")
		}
		if !am.Featured || am.Caption != "Main street" {
			t.Errorf("Unexpected asset meta: %+v", am)
		}
		if am.Order == nil || *am.Order != 2 {
			t.Errorf("Order = %v; want 2", am.Order)
		}
	})

	t.Run("Malformed document returns an error", func(t *testing.T) {
		path := writeJSON(t, dir, "broken.json", `{"assets": [}`)
		if _, err := LoadAlbum(path); err == nil {
			t.Fatal("Expected an error for malformed JSON")
		}
	})
}

func TestLoadTags(t *testing.T) {
	dir := t.TempDir()

	t.Run("Missing file is an empty map", func(t *testing.T) {
		tags, err := LoadTags(filepath.Join(dir, "nope.json"))
		if err != nil {
			t.Fatalf("LoadTags: %v", err)
		}
		if len(tags) != 0 {
			t.Errorf("Expected empty map, got %v", tags)
		}
	})

	t.Run("Valid document preserves tag order", func(t *testing.T) {
		path := writeJSON(t, dir, "tags.json", `{"70s/x.jpg": ["urban", "night"], "70s/y.jpg": []}`)
		tags, err := LoadTags(path)
		if err != nil {
			t.Fatalf("LoadTags: %v", err)
		}
		if want := []string{"urban", "night"}; !reflect.DeepEqual(tags["70s/x.jpg"], want) {
			t.Errorf("tags = %v; want %v", tags["70s/x.jpg"], want)
		}
	})

	t.Run("Malformed document returns an error", func(t *testing.T) {
		path := writeJSON(t, dir, "bad.json", `["not", "a", "map"]`)
		if _, err := LoadTags(path); err == nil {
			t.Fatal("Expected an error for malformed JSON")
		}
	})
}

func TestMergeCopiesOnlyPresentFields(t *testing.T) {
	order := 3.0
	a := &types.Asset{Src: "70s/b.jpg"}
	Merge(a, AssetMeta{Featured: true, Order: &order})

	if !a.Featured {
		t.Error("Featured not merged")
	}
	if a.Order == nil || *a.Order != 3 {
		t.Errorf("Order = %v; want 3", a.Order)
	}
	if a.Caption != "" || a.Credit != "" || a.Layout != "" {
		t.Errorf("Absent fields must stay unset: %+v", a)
	}
}

func TestApplyTags(t *testing.T) {
	tags := TagMap{
		"70s/x.jpg": {"urban"},
		"70s/z.jpg": {},
	}

	x := &types.Asset{Src: "70s/x.jpg"}
	ApplyTags(x, tags)
	if !x.Tagged || !reflect.DeepEqual(x.Tags, []string{"urban"}) {
		t.Errorf("x = %+v; want tagged [urban]", x)
	}

	// Present key with an empty list still marks the asset as tagged.
	z := &types.Asset{Src: "70s/z.jpg"}
	ApplyTags(z, tags)
	if !z.Tagged || len(z.Tags) != 0 {
		t.Errorf("z = %+v; want tagged with no tags", z)
	}

	// Key matching is exact: no case folding.
	y := &types.Asset{Src: "70s/X.jpg"}
	ApplyTags(y, tags)
	if y.Tagged {
		t.Error("Key lookup must be case-sensitive")
	}
}
