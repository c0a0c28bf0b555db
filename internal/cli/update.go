package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nanosep/portfolio/internal/pipeline"
	"github.com/nanosep/portfolio/internal/render"
	"github.com/nanosep/portfolio/internal/types"
	"github.com/spf13/cobra"
	"golang.org/x/net/html"
)

var flagUpdateDryRun bool

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Rescan albums and regenerate the ASSETS block",
	Long: "Scans every album under the portfolio root, derives titles and thumbnails,\n" +
		"merges meta.json and tags.json, and rewrites the ASSETS block between the\n" +
		"markers in the portfolio HTML file.",
	Run: func(cmd *cobra.Command, args []string) {
		root, cfg := portfolioRoot()
		runUpdateCmd(root, cfg, flagUpdateDryRun)
	},
}

func init() {
	updateCmd.Flags().BoolVar(&flagUpdateDryRun, "dry-run", false, "print the summary without writing the HTML file")
	RootCmd.AddCommand(updateCmd)
}

func runUpdateCmd(root string, cfg *types.Config, dryRun bool) {
	logger.Info("Scanning portfolio", "root", StylePath.Render(root))

	res, err := pipeline.Run(root, cfg, logger)
	if err != nil {
		logger.Error(fmt.Sprintf("Scan failed: %v", err))
		os.Exit(1)
	}

	s := res.Summarize()
	fmt.Printf("%s %s\n", StyleHeader.Render("Albums:"), strings.Join(res.Albums, ", "))
	fmt.Printf("%s %d photos, %d videos, %d total\n",
		StyleHeader.Render("Assets:"), s.Photos, s.Videos, len(res.Assets))
	if s.WithMeta > 0 {
		fmt.Printf("%s %d\n", StyleHeader.Render("With metadata:"), s.WithMeta)
	}
	if s.WithTitle > 0 {
		fmt.Printf("%s %d\n", StyleHeader.Render("Custom album titles:"), s.WithTitle)
	}
	if s.WithTags > 0 {
		fmt.Printf("%s %d\n", StyleHeader.Render("With tags:"), s.WithTags)
	}

	if len(res.Assets) == 0 {
		logger.Warn("No media files found")
		os.Exit(1)
	}

	if dryRun {
		fmt.Println(styleFlag.Render("  [DRY RUN]") + StyleDim.Render(" nothing written"))
		return
	}

	if err := writeAssets(root, cfg, res); err != nil {
		logger.Error(fmt.Sprintf("Update failed: %v", err))
		os.Exit(1)
	}
	logger.Info(fmt.Sprintf("%s: %s", StyleHeader.Render("Updated"), StylePath.Render(cfg.HTMLFile)))
}

// writeAssets renders the asset block and splices it into the host HTML
// document. The document is only rewritten when both markers are present.
func writeAssets(root string, cfg *types.Config, res *pipeline.Result) error {
	htmlPath := filepath.Join(root, cfg.HTMLFile)
	doc, err := os.ReadFile(htmlPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", cfg.HTMLFile, err)
	}

	block := render.Block(res.Assets, cfg.MarkerStart, cfg.MarkerEnd)
	updated, err := render.Splice(string(doc), block, cfg.MarkerStart, cfg.MarkerEnd)
	if err != nil {
		return err
	}

	// The splice is textual; make sure the result still parses as HTML.
	if _, perr := html.Parse(strings.NewReader(updated)); perr != nil {
		logger.Warn("Updated document no longer parses as HTML", "error", perr)
	}

	// Write-to-temp-then-rename so an interrupted run never leaves a
	// half-written document.
	tmp := htmlPath + ".tmp"
	if err := os.WriteFile(tmp, []byte(updated), 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, htmlPath); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
