// Package app contains the Cobra command tree for assetpath.
package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kilnworks/assetpath/internal/output"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagVerbose bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "assetpath",
	Short: "Canonicalize game-project asset paths",
	Long: `assetpath rewrites asset folder paths into a canonical form: separators
unified, the path anchored at a well-known root (Assets, Resources,
StreamingAssets, or the plain file system), and leading/trailing slashes
forced per policy. It is meant for build scripts, CI checks, and editor
tooling pipelines that need stable asset paths across platforms.

Run 'assetpath' with no arguments to see this summary.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("assetpath", appVersion)
		fmt.Println()
		fmt.Println("Use a subcommand:")
		fmt.Println("  normalize  Canonicalize paths from arguments, a file, or stdin")
		fmt.Println("  check      Fail when paths are not already canonical")
		fmt.Println("  scan       Walk a project tree and list canonical asset folders")
		fmt.Println("  history    Show recorded normalization runs")
		fmt.Println("  profiles   List configured option profiles")
		return nil
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// setupColor applies the color flag and TTY detection before rendering.
func setupColor() {
	if flagNoColor {
		output.SetNoColor(true)
		return
	}
	output.AutoDetect()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/assetpath/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose output")
}
