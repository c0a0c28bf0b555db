package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nanosep/portfolio/internal/ffmpeg"
	"github.com/nanosep/portfolio/internal/scanner"
	"github.com/spf13/cobra"
)

var (
	flagThumbsAlbum  string
	flagThumbsForce  bool
	flagThumbsTime   float64
	flagThumbsDryRun bool
)

var thumbsCmd = &cobra.Command{
	Use:   "thumbs",
	Short: "Extract a poster frame for each video",
	Long: "Extracts a representative frame from every video and saves it as\n" +
		"{video-stem}_poster.jpg next to the video, so each clip gets its own\n" +
		"thumbnail. Requires ffmpeg in $PATH.",
	Run: func(cmd *cobra.Command, args []string) {
		root, cfg := portfolioRoot()

		if !ffmpeg.IsAvailable() {
			logger.Error("ffmpeg not found in $PATH")
			os.Exit(1)
		}
		if cmd.Flags().Changed("time") {
			cfg.Thumbs.Time = flagThumbsTime
		}

		albums, err := scanner.Scan(root, cfg.Scan)
		if err != nil {
			logger.Error(fmt.Sprintf("Scan failed: %v", err))
			os.Exit(1)
		}
		if flagThumbsAlbum != "" {
			albums = filterAlbums(albums, flagThumbsAlbum)
			if len(albums) == 0 {
				logger.Error(fmt.Sprintf("No album matches %q", flagThumbsAlbum))
				os.Exit(1)
			}
		}

		ctx := cmd.Context()
		generated, skipped := 0, 0

		for _, album := range albums {
			if len(album.Videos) == 0 {
				continue
			}
			fmt.Printf("\n%s %s\n", StyleHeader.Render("Album:"), StylePath.Render(album.Name))

			for _, video := range album.Videos {
				stem := strings.TrimSuffix(video, filepath.Ext(video))
				posterName := stem + cfg.Scan.PosterSuffix + ".jpg"
				posterPath := filepath.Join(album.Dir, posterName)
				videoPath := filepath.Join(album.Dir, video)

				if _, err := os.Stat(posterPath); err == nil && !flagThumbsForce {
					fmt.Printf("  %s %s\n", StyleDim.Render("skip"), StyleDim.Render(video+" already has a poster"))
					skipped++
					continue
				}

				at := ffmpeg.ChooseTimestamp(ffmpeg.Duration(ctx, videoPath), cfg.Thumbs.Time)
				fmt.Printf("  %s %s %s\n", StyleCommand.Render(video),
					StyleDim.Render("frame at"), StyleDim.Render(fmt.Sprintf("%.1fs", at)))

				if flagThumbsDryRun {
					fmt.Printf("    %s would create %s\n", styleFlag.Render("[DRY RUN]"), posterName)
					skipped++
					continue
				}

				err := ffmpeg.ExtractFrame(ctx, videoPath, posterPath, at, cfg.Thumbs)
				if err != nil {
					// Retry at the very first frame before giving up.
					logger.Debug("Retrying at 0s", "video", video, "error", err)
					err = ffmpeg.ExtractFrame(ctx, videoPath, posterPath, 0, cfg.Thumbs)
				}
				if err != nil {
					logger.Error(fmt.Sprintf("Could not extract frame from %s: %v", video, err))
					continue
				}

				info, _ := os.Stat(posterPath)
				var sizeKB int64
				if info != nil {
					sizeKB = info.Size() / 1024
				}
				fmt.Printf("    %s %s (%d KB)\n", StyleHeader.Render("created"), posterName, sizeKB)
				generated++
			}
		}

		fmt.Printf("\n%s %d generated, %d skipped\n", StyleHeader.Render("Posters:"), generated, skipped)

		if flagThumbsDryRun {
			fmt.Println(styleFlag.Render("  [DRY RUN]") + StyleDim.Render(" nothing written"))
			return
		}
		if generated > 0 {
			// New posters change video thumbnails; refresh the HTML.
			runUpdateCmd(root, cfg, false)
		}
	},
}

func init() {
	thumbsCmd.Flags().StringVar(&flagThumbsAlbum, "album", "", "process only this album")
	thumbsCmd.Flags().BoolVar(&flagThumbsForce, "force", false, "regenerate posters that already exist")
	thumbsCmd.Flags().Float64Var(&flagThumbsTime, "time", 2, "second to extract the frame at")
	thumbsCmd.Flags().BoolVar(&flagThumbsDryRun, "dry-run", false, "show what would be done without creating files")
	RootCmd.AddCommand(thumbsCmd)
}

func filterAlbums(albums []scanner.Album, name string) []scanner.Album {
	var out []scanner.Album
	for _, a := range albums {
		if a.Name == name {
			out = append(out, a)
		}
	}
	return out
}
