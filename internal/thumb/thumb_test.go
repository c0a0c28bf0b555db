package thumb

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nanosep/portfolio/internal/config"
)

func albumWith(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestResolvePriority(t *testing.T) {
	cfg := config.Defaults().Scan

	tests := []struct {
		name   string
		files  []string
		want   string
		wantOK bool
	}{
		{
			name:   "Per-video poster wins",
			files:  []string{"clip_poster.jpg", "poster.jpg", "a.jpg"},
			want:   "70s/clip_poster.jpg",
			wantOK: true,
		},
		{
			name:   "Per-video poster is found case-insensitively",
			files:  []string{"CLIP_POSTER.PNG", "a.jpg"},
			want:   "70s/CLIP_POSTER.PNG",
			wantOK: true,
		},
		{
			name:   "Album poster preference order",
			files:  []string{"cover.jpg", "poster.png", "a.jpg"},
			want:   "70s/poster.png",
			wantOK: true,
		},
		{
			name:   "First photo as last resort",
			files:  []string{"b.jpg", "a.jpg", "other_poster.jpg"},
			want:   "70s/a.jpg",
			wantOK: true,
		},
		{
			name:   "No candidate at all",
			files:  []string{"clip.mp4", "readme.txt"},
			want:   "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := albumWith(t, tt.files...)
			got, ok := Resolve(dir, "70s", "clip.mp4", cfg)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Resolve() = (%q, %v); want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
