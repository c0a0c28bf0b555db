// Package ffmpeg extracts video poster frames using the ffmpeg and ffprobe
// binaries.
package ffmpeg

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/nanosep/portfolio/internal/types"
)

const (
	probeTimeout   = 10 * time.Second
	extractTimeout = 30 * time.Second
)

// IsAvailable returns true if ffmpeg is found in $PATH.
func IsAvailable() bool {
	_, err := exec.LookPath("ffmpeg")
	return err == nil
}

// Duration probes a video and returns its duration in seconds, or -1 when
// the probe fails. A failed probe is not fatal: the caller falls back to a
// conservative timestamp.
func Duration(ctx context.Context, path string) float64 {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "ffprobe",
		"-v", "error",
		"-print_format", "json",
		"-show_format",
		path,
	)
	out, err := cmd.Output()
	if err != nil {
		return -1
	}
	d, err := ParseDuration(out)
	if err != nil {
		return -1
	}
	return d
}

// ParseDuration extracts the container duration from ffprobe JSON output.
// Exported for testing without a real ffprobe binary.
func ParseDuration(data []byte) (float64, error) {
	var raw struct {
		Format struct {
			Duration string `json:"duration"`
		} `json:"format"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return 0, fmt.Errorf("parse ffprobe JSON: %w", err)
	}
	d, err := strconv.ParseFloat(strings.TrimSpace(raw.Format.Duration), 64)
	if err != nil {
		return 0, fmt.Errorf("parse duration %q: %w", raw.Format.Duration, err)
	}
	return d, nil
}

// ChooseTimestamp picks the frame extraction timestamp. An unknown duration
// caps the request at 2s; sub-second clips use 0; a request past the end
// lands at 10% of the duration.
func ChooseTimestamp(duration, requested float64) float64 {
	switch {
	case duration <= 0:
		return min(requested, 2)
	case duration < 1:
		return 0
	case requested >= duration:
		return max(0, duration*0.1)
	default:
		return requested
	}
}

// ExtractFrame writes a single frame from videoPath at atSecond to
// outputPath as a JPEG, scaled to the configured width.
func ExtractFrame(ctx context.Context, videoPath, outputPath string, atSecond float64, cfg types.ThumbsConfig) error {
	ctx, cancel := context.WithTimeout(ctx, extractTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "ffmpeg", "-y",
		"-ss", strconv.FormatFloat(atSecond, 'f', -1, 64),
		"-i", videoPath,
		"-frames:v", "1",
		"-q:v", strconv.Itoa(cfg.JPEGQuality),
		"-vf", fmt.Sprintf("scale=%d:-1", cfg.ScaleWidth),
		outputPath,
	)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("ffmpeg failed: %w\noutput: %s", err, strings.TrimSpace(string(out)))
	}
	if _, err := os.Stat(outputPath); err != nil {
		return fmt.Errorf("ffmpeg produced no output: %w", err)
	}
	return nil
}
