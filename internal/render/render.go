// Package render serializes merged assets into the JS ASSETS block and
// splices it into the host HTML document.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nanosep/portfolio/internal/types"
)

// albumRule is the visual separator emitted at album boundaries.
const albumRule = "─────────────────────────────────────────────"

// Entry formats one asset as a JS object literal. Core fields always appear
// in fixed order; optional fields follow only when set.
func Entry(a *types.Asset) string {
	lines := []string{
		"  {",
		fmt.Sprintf("    type:  '%s',", a.Type),
		fmt.Sprintf("    src:   '%s',", a.Src),
		fmt.Sprintf("    thumb: '%s',", a.Thumb),
		fmt.Sprintf("    title: '%s',", a.Title),
		fmt.Sprintf("    album: '%s',", a.Album),
		fmt.Sprintf("    date:  '%s'", a.Date),
	}

	var trailing []string
	if a.AlbumTitle != "" {
		trailing = append(trailing, fmt.Sprintf("    albumTitle: '%s'", escape(a.AlbumTitle)))
	}
	if a.Caption != "" {
		trailing = append(trailing, fmt.Sprintf("    caption:  '%s'", escape(a.Caption)))
	}
	if a.Credit != "" {
		trailing = append(trailing, fmt.Sprintf("    credit:   '%s'", escape(a.Credit)))
	}
	if a.Featured {
		trailing = append(trailing, "    featured: true")
	}
	if a.Order != nil {
		trailing = append(trailing, fmt.Sprintf("    order:    %s", strconv.FormatFloat(*a.Order, 'g', -1, 64)))
	}
	if a.Layout != "" {
		trailing = append(trailing, fmt.Sprintf("    layout:   '%s'", a.Layout))
	}
	if len(a.Tags) > 0 {
		quoted := make([]string, len(a.Tags))
		for i, t := range a.Tags {
			quoted[i] = "'" + t + "'"
		}
		trailing = append(trailing, fmt.Sprintf("    tags:     [%s]", strings.Join(quoted, ", ")))
	}

	for _, t := range trailing {
		lines[len(lines)-1] += ","
		lines = append(lines, t)
	}

	lines = append(lines, "  }")
	return strings.Join(lines, "\n")
}

// Block renders the complete ASSETS block, markers included. Assets must
// arrive in scanner order (album-major); an album separator comment is
// emitted whenever the album changes between consecutive records. Output is
// byte-for-byte deterministic for identical input.
func Block(assets []*types.Asset, markerStart, markerEnd string) string {
	var b strings.Builder
	b.WriteString(markerStart)
	b.WriteString("\nconst ASSETS = [")

	current := ""
	for _, a := range assets {
		if a.Album != current {
			current = a.Album
			fmt.Fprintf(&b, "\n\n  // ── Album: %s %s", current, albumRule)
		}
		b.WriteString("\n")
		b.WriteString(Entry(a))
		b.WriteString(",")
	}

	b.WriteString("\n];\n")
	b.WriteString(markerEnd)
	return b.String()
}

// Splice replaces the region between the marker lines (inclusive) with
// block. If either marker is missing the document is returned unchanged
// along with an error.
func Splice(doc, block, markerStart, markerEnd string) (string, error) {
	start := strings.Index(doc, markerStart)
	if start < 0 {
		return doc, fmt.Errorf("marker %q not found", markerStart)
	}
	end := strings.Index(doc[start+len(markerStart):], markerEnd)
	if end < 0 {
		return doc, fmt.Errorf("marker %q not found", markerEnd)
	}
	end += start + len(markerStart) + len(markerEnd)

	return doc[:start] + block + doc[end:], nil
}

// escape backslash-escapes single quotes for embedding in JS string
// literals.
func escape(s string) string {
	return strings.ReplaceAll(s, "'", `\'`)
}
