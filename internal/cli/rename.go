package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nanosep/portfolio/internal/renamer"
	"github.com/nanosep/portfolio/internal/scanner"
	"github.com/spf13/cobra"
)

var (
	flagRenameAlbum  string
	flagRenameDryRun bool
	flagRenameMinMB  float64
	flagRenameMaxMB  float64
	flagRenameLimit  int
)

var renameCmd = &cobra.Command{
	Use:   "rename",
	Short: "Rename photos with AI-suggested descriptive names",
	Long: "Sends each photo to Claude Vision and renames it to the suggested\n" +
		"descriptive stem (lowercase, hyphen-separated). Every change is appended\n" +
		"to rename-log.json so it can be reverted.",
	Run: func(cmd *cobra.Command, args []string) {
		root, cfg := portfolioRoot()
		client := newAIClient(cfg)

		albums, err := scanner.Scan(root, cfg.Scan)
		if err != nil {
			logger.Error(fmt.Sprintf("Scan failed: %v", err))
			os.Exit(1)
		}
		if flagRenameAlbum != "" {
			albums = filterAlbums(albums, flagRenameAlbum)
			if len(albums) == 0 {
				logger.Error(fmt.Sprintf("No album matches %q", flagRenameAlbum))
				os.Exit(1)
			}
		}

		minBytes := int64(flagRenameMinMB * 1024 * 1024)
		maxBytes := int64(flagRenameMaxMB * 1024 * 1024)
		sleep := time.Duration(cfg.AI.Sleep * float64(time.Second))

		if flagRenameDryRun {
			fmt.Println(styleFlag.Render("  [DRY RUN]"))
		}

		log, err := renamer.LoadLog(filepath.Join(root, cfg.RenameLog))
		if err != nil {
			logger.Warn("Ignoring malformed rename log", "error", err)
		}

		total := 0
		for _, album := range albums {
			fmt.Printf("\n%s %s\n", StyleHeader.Render("Album:"), StylePath.Render(album.Name))

			photos := album.Photos
			if minBytes > 0 || maxBytes > 0 {
				photos = filterBySize(album.Dir, photos, minBytes, maxBytes)
			}
			if flagRenameLimit > 0 && len(photos) > flagRenameLimit {
				photos = photos[:flagRenameLimit]
			}
			if len(photos) == 0 {
				fmt.Println(StyleDim.Render("  no photos in range"))
				continue
			}

			renamed := 0
			for _, fname := range photos {
				fpath := filepath.Join(album.Dir, fname)
				ext := strings.ToLower(filepath.Ext(fname))

				suggestion, err := client.SuggestName(cmd.Context(), fpath, cfg.AI.MaxBytes)
				if err != nil {
					logger.Warn(fmt.Sprintf("API error for %s", fname), "error", err)
					time.Sleep(sleep)
					continue
				}

				newName := renamer.UniqueName(album.Dir, renamer.Sanitize(suggestion), ext)
				if newName == fname {
					fmt.Printf("  %s %s\n", StyleDim.Render("·"), StyleDim.Render(fname+" unchanged"))
					time.Sleep(sleep)
					continue
				}

				if !flagRenameDryRun {
					if err := os.Rename(fpath, filepath.Join(album.Dir, newName)); err != nil {
						logger.Warn(fmt.Sprintf("Rename failed for %s", fname), "error", err)
						time.Sleep(sleep)
						continue
					}
				}
				fmt.Printf("  %s %s %s\n", StyleDim.Render(fname), StyleDim.Render("→"), StyleCommand.Render(newName))

				log = append(log, renamer.LogEntry{
					Album:      album.Name,
					Original:   fname,
					Renamed:    newName,
					Suggestion: suggestion,
					DryRun:     flagRenameDryRun,
				})
				renamed++
				time.Sleep(sleep)
			}

			total += renamed
			if renamed > 0 && !flagRenameDryRun {
				runUpdateCmd(root, cfg, false)
			}
		}

		logPath := filepath.Join(root, cfg.RenameLog)
		if err := renamer.SaveLog(logPath, log); err != nil {
			logger.Error(fmt.Sprintf("Failed to write rename log: %v", err))
			os.Exit(1)
		}
		fmt.Printf("\n%s %d file(s), log in %s\n",
			StyleHeader.Render("Renamed:"), total, StylePath.Render(cfg.RenameLog))
	},
}

func init() {
	renameCmd.Flags().StringVar(&flagRenameAlbum, "album", "", "process only this album")
	renameCmd.Flags().BoolVar(&flagRenameDryRun, "dry-run", false, "preview suggestions without renaming")
	renameCmd.Flags().Float64Var(&flagRenameMinMB, "min-mb", 0, "skip photos smaller than this many MB")
	renameCmd.Flags().Float64Var(&flagRenameMaxMB, "max-mb", 0, "skip photos larger than this many MB")
	renameCmd.Flags().IntVar(&flagRenameLimit, "limit", 0, "maximum files per album")
	RootCmd.AddCommand(renameCmd)
}

func filterBySize(dir string, files []string, minBytes, maxBytes int64) []string {
	var out []string
	for _, f := range files {
		info, err := os.Stat(filepath.Join(dir, f))
		if err != nil {
			continue
		}
		if info.Size() < minBytes {
			continue
		}
		if maxBytes > 0 && info.Size() > maxBytes {
			continue
		}
		out = append(out, f)
	}
	return out
}
