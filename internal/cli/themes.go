package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/nanosep/portfolio/internal/ai"
	"github.com/nanosep/portfolio/internal/scanner"
	"github.com/nanosep/portfolio/internal/theme"
	"github.com/nanosep/portfolio/internal/types"
	"github.com/spf13/cobra"
)

var flagThemesDryRun bool

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "Propose thematic tag categories from filenames",
	Long: "Builds a vocabulary from the portfolio's filename stems and asks Claude to\n" +
		"propose 8-12 thematic categories. Proposals are reviewed interactively\n" +
		"before being written to proposed_themes.json.",
	Run: func(cmd *cobra.Command, args []string) {
		root, cfg := portfolioRoot()

		albums, err := scanner.Scan(root, cfg.Scan)
		if err != nil {
			logger.Error(fmt.Sprintf("Scan failed: %v", err))
			os.Exit(1)
		}
		items := scanner.MediaItems(albums)
		if len(items) == 0 {
			logger.Error("No media files found")
			os.Exit(1)
		}

		names := make([]string, len(albums))
		for i, a := range albums {
			names[i] = a.Name
		}
		fmt.Printf("%s %d albums, %d files\n\n", StyleHeader.Render("Scanned:"), len(albums), len(items))

		vocab := theme.Vocabulary(items)
		printVocabulary(vocab, 30)

		if flagThemesDryRun {
			fmt.Printf("\n%s %d\n", StyleHeader.Render("Unique words:"), len(vocab))
			fmt.Println(styleFlag.Render("  [DRY RUN]") + StyleDim.Render(" no API call made"))
			return
		}

		client := newAIClient(cfg)

		var themes []types.Theme
		var proposeErr error
		err = spinner.New().
			Title(StyleDim.Render("Asking Claude for theme proposals")).
			Action(func() {
				themes, proposeErr = client.ProposeThemes(cmd.Context(), vocab, len(items), names)
			}).
			Run()
		if err != nil {
			logger.Error(fmt.Sprintf("Spinner failed: %v", err))
			os.Exit(1)
		}
		if proposeErr != nil {
			logger.Error(fmt.Sprintf("Theme proposal failed: %v", proposeErr))
			os.Exit(1)
		}

		kept, err := reviewThemes(themes)
		if err != nil {
			logger.Error(fmt.Sprintf("Review failed: %v", err))
			os.Exit(1)
		}
		if len(kept) == 0 {
			logger.Info(StyleDim.Render("No themes kept, nothing written"))
			return
		}

		path := filepath.Join(root, cfg.ThemesFile)
		if err := theme.Save(path, kept); err != nil {
			logger.Error(fmt.Sprintf("Failed to write themes: %v", err))
			os.Exit(1)
		}
		logger.Info(fmt.Sprintf("%s: %s", StyleHeader.Render("Saved"), StylePath.Render(path)))
		fmt.Println(StyleDim.Render("Edit the file to adjust keywords, then run: portfolio tags"))
	},
}

func init() {
	themesCmd.Flags().BoolVar(&flagThemesDryRun, "dry-run", false, "show the vocabulary without calling the API")
	RootCmd.AddCommand(themesCmd)
}

// newAIClient loads the API key (environment, then .env in the working
// directory) and builds the client. A missing key is fatal.
func newAIClient(cfg *types.Config) *ai.Client {
	key := apiKey()
	if key == "" {
		logger.Error("ANTHROPIC_API_KEY is not set")
		fmt.Println(StyleDim.Render(`  export ANTHROPIC_API_KEY="sk-ant-..." or add it to .env`))
		os.Exit(1)
	}
	return ai.New(key, cfg.AI.Model)
}

// printVocabulary renders the top-n words with a frequency bar.
func printVocabulary(vocab []theme.WordCount, n int) {
	fmt.Println(StyleHeader.Render(fmt.Sprintf("Top %d words", n)))
	for i, wc := range vocab {
		if i >= n {
			break
		}
		bar := strings.Repeat("█", min(wc.Count/2, 30))
		fmt.Printf("  %-20s %4d  %s\n", wc.Word, wc.Count, StyleTag.Render(bar))
	}
}

// reviewThemes lets the user uncheck unwanted proposals before saving.
func reviewThemes(themes []types.Theme) ([]types.Theme, error) {
	opts := make([]huh.Option[string], len(themes))
	selected := make([]string, len(themes))
	for i, t := range themes {
		label := fmt.Sprintf("%-15s %s  (%s)", t.Tag, t.Label, strings.Join(t.Keywords, ", "))
		opts[i] = huh.NewOption(label, t.Tag).Selected(true)
		selected[i] = t.Tag
	}

	err := RunForm(huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title(fmt.Sprintf("%d themes proposed", len(themes))).
				Description("Uncheck themes you don't want").
				Options(opts...).
				Value(&selected),
		),
	).WithTheme(portfolioTheme()).WithKeyMap(portfolioKeyMap()))
	if err != nil {
		if errors.Is(handleAbort(err), ErrUserBack) {
			return nil, nil
		}
		return nil, err
	}

	// Preserve proposal order.
	kept := make([]types.Theme, 0, len(selected))
	for _, t := range themes {
		for _, tag := range selected {
			if t.Tag == tag {
				kept = append(kept, t)
				break
			}
		}
	}
	return kept, nil
}
