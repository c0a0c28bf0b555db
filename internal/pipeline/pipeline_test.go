package pipeline

import (
	"io"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/nanosep/portfolio/internal/config"
	"github.com/nanosep/portfolio/internal/render"
	"github.com/nanosep/portfolio/internal/types"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

// buildPortfolio lays out a small two-album portfolio.
func buildPortfolio(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	seventies := filepath.Join(root, "70s")
	if err := os.Mkdir(seventies, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, f := range []string{"a.jpg", "b.jpg", "poster.jpg", "c_poster.jpg"} {
		if err := os.WriteFile(filepath.Join(seventies, f), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	metaDoc := `{
		"albumTitle": "The Seventies",
		"assets": {"b.jpg": {"featured": true}}
	}`
	if err := os.WriteFile(filepath.Join(seventies, "meta.json"), []byte(metaDoc), 0o644); err != nil {
		t.Fatal(err)
	}

	clips := filepath.Join(root, "clips")
	if err := os.Mkdir(clips, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(clips, "ride.mp4"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	tagsDoc := `{"70s/a.jpg": ["urban"]}`
	if err := os.WriteFile(filepath.Join(root, "tags.json"), []byte(tagsDoc), 0o644); err != nil {
		t.Fatal(err)
	}

	return root
}

func findAsset(t *testing.T, res *Result, src string) *types.Asset {
	t.Helper()
	for _, a := range res.Assets {
		if a.Src == src {
			return a
		}
	}
	t.Fatalf("Asset %q not found", src)
	return nil
}

func TestRun(t *testing.T) {
	root := buildPortfolio(t)
	cfg := config.Defaults()

	res, err := Run(root, cfg, quietLogger())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if want := []string{"70s", "clips"}; !reflect.DeepEqual(res.Albums, want) {
		t.Errorf("Albums = %v; want %v", res.Albums, want)
	}

	a := findAsset(t, res, "70s/a.jpg")
	b := findAsset(t, res, "70s/b.jpg")
	ride := findAsset(t, res, "clips/ride.mp4")

	// Album title only on the first asset of the group.
	if a.AlbumTitle != "The Seventies" {
		t.Errorf("a.AlbumTitle = %q", a.AlbumTitle)
	}
	if b.AlbumTitle != "" {
		t.Errorf("b.AlbumTitle = %q; want empty", b.AlbumTitle)
	}

	// Featured only where meta.json says so.
	if a.Featured {
		t.Error("a.jpg must not be featured")
	}
	if !b.Featured {
		t.Error("b.jpg must be featured")
	}

	// Tags only where tags.json has a key.
	if !a.Tagged || !reflect.DeepEqual(a.Tags, []string{"urban"}) {
		t.Errorf("a = %+v; want tags [urban]", a)
	}
	if b.Tagged {
		t.Error("b.jpg must carry no tags field")
	}

	// Video with no poster candidate poses as its own thumbnail.
	if ride.Thumb != "clips/ride.mp4" {
		t.Errorf("ride.Thumb = %q; want the video's own path", ride.Thumb)
	}
	if ride.Type != "video" {
		t.Errorf("ride.Type = %q", ride.Type)
	}
}

func TestRunIdempotent(t *testing.T) {
	root := buildPortfolio(t)
	cfg := config.Defaults()

	first, err := Run(root, cfg, quietLogger())
	if err != nil {
		t.Fatalf("First run failed: %v", err)
	}
	second, err := Run(root, cfg, quietLogger())
	if err != nil {
		t.Fatalf("Second run failed: %v", err)
	}

	b1 := render.Block(first.Assets, cfg.MarkerStart, cfg.MarkerEnd)
	b2 := render.Block(second.Assets, cfg.MarkerStart, cfg.MarkerEnd)
	if b1 != b2 {
		t.Error("Rendered blocks differ across identical runs")
	}
}

func TestRunMalformedAlbumMeta(t *testing.T) {
	root := buildPortfolio(t)
	cfg := config.Defaults()

	// Break one album's metadata; the other album keeps its own.
	broken := filepath.Join(root, "clips", "meta.json")
	if err := os.WriteFile(broken, []byte(`{"albumTitle": `), 0o644); err != nil {
		t.Fatal(err)
	}

	res, err := Run(root, cfg, quietLogger())
	if err != nil {
		t.Fatalf("Run must not abort on malformed metadata: %v", err)
	}

	if ride := findAsset(t, res, "clips/ride.mp4"); ride.AlbumTitle != "" {
		t.Error("Malformed meta.json must yield no album title")
	}
	if a := findAsset(t, res, "70s/a.jpg"); a.AlbumTitle != "The Seventies" {
		t.Error("Other albums must keep their metadata")
	}
}

func TestRunMalformedTags(t *testing.T) {
	root := buildPortfolio(t)
	cfg := config.Defaults()

	if err := os.WriteFile(filepath.Join(root, "tags.json"), []byte(`[`), 0o644); err != nil {
		t.Fatal(err)
	}

	res, err := Run(root, cfg, quietLogger())
	if err != nil {
		t.Fatalf("Run must not abort on a malformed tag document: %v", err)
	}
	for _, a := range res.Assets {
		if a.Tagged {
			t.Errorf("%s must carry no tags after a malformed tags.json", a.Src)
		}
	}
}

func TestSummarize(t *testing.T) {
	root := buildPortfolio(t)
	cfg := config.Defaults()

	res, err := Run(root, cfg, quietLogger())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	s := res.Summarize()

	want := Summary{Albums: 2, Photos: 2, Videos: 1, WithMeta: 1, WithTitle: 1, WithTags: 1}
	if s != want {
		t.Errorf("Summarize() = %+v; want %+v", s, want)
	}
}
