// Package cli wires the portfolio maintenance commands together.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/nanosep/portfolio/internal/config"
	"github.com/nanosep/portfolio/internal/types"
	"github.com/spf13/cobra"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
})

var (
	flagRoot    string
	flagVerbose bool
)

// RootCmd is the base command all subcommands hang off.
var RootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Maintain a static photo/video portfolio",
	Long: "Portfolio scans a directory tree of photo and video albums, derives display\n" +
		"titles, resolves video posters, merges optional metadata and tags, and keeps\n" +
		"the ASSETS block of the portfolio HTML page up to date.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}
		configureStyles()
	},
}

func init() {
	RootCmd.PersistentFlags().StringVar(&flagRoot, "root", ".", "portfolio root directory")
	RootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// portfolioRoot resolves the --root flag to an absolute path and loads the
// configuration found there. Any failure here is fatal.
func portfolioRoot() (string, *types.Config) {
	root, err := filepath.Abs(flagRoot)
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to resolve root: %v", err))
		os.Exit(1)
	}
	cfg, err := config.Load(root)
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to load config: %v", err))
		os.Exit(1)
	}
	return root, cfg
}
