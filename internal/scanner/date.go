package scanner

import (
	"os"

	"github.com/rwcarlsen/goexif/exif"
)

const dateLayout = "2006-01-02"

// PhotoDate returns the capture date of a photo as YYYY-MM-DD. EXIF
// DateTimeOriginal wins when present; otherwise the file mtime is used.
func PhotoDate(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return FileDate(path)
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return FileDate(path)
	}
	t, err := x.DateTime()
	if err != nil {
		return FileDate(path)
	}
	return t.Format(dateLayout)
}

// FileDate returns the file's last-modified date as YYYY-MM-DD. An
// unstattable file yields an empty string.
func FileDate(path string) string {
	info, err := os.Stat(path)
	if err != nil {
		return ""
	}
	return info.ModTime().Format(dateLayout)
}
