package ai

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"strings"

	_ "image/gif"
	_ "image/png"

	"github.com/nfnt/resize"
)

const namePrompt = "Look at this photo and give it a concise, descriptive filename in English. " +
	"Use 2-4 words, lowercase, separated by hyphens. No extension. " +
	"Examples: red-alfa-romeo, woman-reading-cafe, mountain-sunset-snow. " +
	"Reply with ONLY the filename, nothing else."

var mimeByExt = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
	".gif":  "image/gif",
}

// SuggestName sends a photo to the model and returns the suggested stem.
// Oversized images are downscaled before upload.
func (c *Client) SuggestName(ctx context.Context, imagePath string, maxBytes int64) (string, error) {
	data, mime, err := encodeImage(imagePath, maxBytes)
	if err != nil {
		return "", err
	}

	reply, err := c.Complete(ctx, 60, []ContentBlock{
		ImageBlock(mime, data),
		TextBlock(namePrompt),
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(reply), nil
}

// encodeImage returns the base64 payload and media type for an image,
// shrinking it with progressively smaller scales until it fits maxBytes.
func encodeImage(path string, maxBytes int64) (string, string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", "", err
	}

	// Small enough: send as-is.
	if info.Size() <= maxBytes {
		raw, err := os.ReadFile(path)
		if err != nil {
			return "", "", err
		}
		mime, ok := mimeByExt[strings.ToLower(filepath.Ext(path))]
		if !ok {
			mime = "image/jpeg"
		}
		return base64.StdEncoding.EncodeToString(raw), mime, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return "", "", err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return "", "", fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}

	width := img.Bounds().Dx()
	for _, scale := range []float64{1.0, 0.75, 0.5, 0.35, 0.25} {
		resized := resize.Resize(uint(float64(width)*scale), 0, img, resize.Lanczos3)
		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: 85}); err != nil {
			return "", "", err
		}
		if int64(buf.Len()) <= maxBytes {
			return base64.StdEncoding.EncodeToString(buf.Bytes()), "image/jpeg", nil
		}
	}

	// Last resort: very small.
	resized := resize.Resize(800, 0, img, resize.Lanczos3)
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: 70}); err != nil {
		return "", "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), "image/jpeg", nil
}
