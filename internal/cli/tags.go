package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nanosep/portfolio/internal/meta"
	"github.com/nanosep/portfolio/internal/scanner"
	"github.com/nanosep/portfolio/internal/theme"
	"github.com/nanosep/portfolio/internal/types"
	"github.com/spf13/cobra"
)

var (
	flagTagsAlbum  string
	flagTagsUseAI  bool
	flagTagsDryRun bool
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Assign thematic tags to every photo and video",
	Long: "Matches filename words against the keywords of the approved themes (or asks\n" +
		"Claude with --use-ai) and writes the result to tags.json. Files with no\n" +
		"matching theme get an empty tag list.",
	Run: func(cmd *cobra.Command, args []string) {
		root, cfg := portfolioRoot()

		themesPath := filepath.Join(root, cfg.ThemesFile)
		themes, err := theme.Load(themesPath)
		if err != nil {
			logger.Error(fmt.Sprintf("Failed to load themes: %v", err))
			fmt.Println(StyleDim.Render("  Run first: portfolio themes"))
			os.Exit(1)
		}
		logger.Info(fmt.Sprintf("%d themes loaded", len(themes)), "file", cfg.ThemesFile)

		albums, err := scanner.Scan(root, cfg.Scan)
		if err != nil {
			logger.Error(fmt.Sprintf("Scan failed: %v", err))
			os.Exit(1)
		}
		items := scanner.MediaItems(albums)
		if flagTagsAlbum != "" {
			items = filterItems(items, flagTagsAlbum)
			if len(items) == 0 {
				logger.Error(fmt.Sprintf("No files found in album %q", flagTagsAlbum))
				os.Exit(1)
			}
		}
		logger.Info(fmt.Sprintf("%d files to process", len(items)))

		var results map[string][]string
		if flagTagsUseAI {
			client := newAIClient(cfg)
			results, err = client.AssignTags(cmd.Context(), items, themes, cfg.AI.BatchSize,
				func(batch, batches, tagged int, err error) {
					if err != nil {
						logger.Warn(fmt.Sprintf("Batch %d/%d failed", batch, batches), "error", err)
						return
					}
					fmt.Printf("  %s %d/%d: %d files tagged\n", StyleDim.Render("batch"), batch, batches, tagged)
				})
			if err != nil {
				logger.Error(fmt.Sprintf("Tag assignment failed: %v", err))
				os.Exit(1)
			}
		} else {
			results = theme.AssignByKeywords(items, themes)
		}

		tagsPath := filepath.Join(root, cfg.TagsFile)

		// A single-album run only replaces that album's entries.
		if flagTagsAlbum != "" {
			existing, err := meta.LoadTags(tagsPath)
			if err != nil {
				logger.Warn("Ignoring malformed tags file", "error", err)
				existing = meta.TagMap{}
			}
			for path, tags := range results {
				existing[path] = tags
			}
			results = existing
		}

		printTagSummary(themes, results)

		if flagTagsDryRun {
			fmt.Println(styleFlag.Render("  [DRY RUN]") + StyleDim.Render(" tags.json not written"))
			return
		}

		if err := meta.TagMap(results).Save(tagsPath); err != nil {
			logger.Error(fmt.Sprintf("Failed to write tags: %v", err))
			os.Exit(1)
		}
		logger.Info(fmt.Sprintf("%s: %s", StyleHeader.Render("Saved"), StylePath.Render(tagsPath)))
	},
}

func init() {
	tagsCmd.Flags().StringVar(&flagTagsAlbum, "album", "", "process only this album")
	tagsCmd.Flags().BoolVar(&flagTagsUseAI, "use-ai", false, "assign tags with Claude instead of keyword matching")
	tagsCmd.Flags().BoolVar(&flagTagsDryRun, "dry-run", false, "preview without writing tags.json")
	RootCmd.AddCommand(tagsCmd)
}

func filterItems(items []types.MediaItem, album string) []types.MediaItem {
	var out []types.MediaItem
	for _, it := range items {
		if it.Album == album {
			out = append(out, it)
		}
	}
	return out
}

// printTagSummary renders a per-tag histogram with a few example files.
func printTagSummary(themes []types.Theme, results map[string][]string) {
	counts := make(map[string]int)
	examples := make(map[string][]string)
	untagged := 0
	for path, tags := range results {
		if len(tags) == 0 {
			untagged++
		}
		for _, t := range tags {
			counts[t]++
			if len(examples[t]) < 3 {
				examples[t] = append(examples[t], filepath.Base(path))
			}
		}
	}

	fmt.Printf("\n%s\n", StyleHeader.Render("Tag summary"))
	for _, th := range themes {
		bar := strings.Repeat("█", min(counts[th.Tag]/3, 25))
		fmt.Printf("  [%-20s] %4d  %s\n", th.Tag, counts[th.Tag], StyleTag.Render(bar))
		for _, ex := range examples[th.Tag] {
			fmt.Printf("    %s %s\n", StyleDim.Render("·"), StyleDim.Render(ex))
		}
	}

	tagged := 0
	for _, tags := range results {
		if len(tags) > 0 {
			tagged++
		}
	}
	fmt.Printf("\n%s %d files, %d with tags, %d without\n",
		StyleHeader.Render("Total:"), len(results), tagged, untagged)
}
