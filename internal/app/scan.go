package app

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kilnworks/assetpath/internal/config"
	"github.com/kilnworks/assetpath/internal/output"
	"github.com/kilnworks/assetpath/internal/scanner"
)

var (
	scanFlags       optionFlags
	scanChangedOnly bool
	scanJSON        bool
)

var scanCmd = &cobra.Command{
	Use:   "scan <dir>",
	Short: "Walk a project tree and list canonical asset folders",
	Long: `Scan walks the given project directory, finds every folder anchored at
the configured root marker, and prints its canonical path. Directories
named in the config's scan.ignore list are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	scanFlags.register(scanCmd)
	scanCmd.Flags().BoolVar(&scanChangedOnly, "changed-only", false, "Only list folders whose path is not canonical")
	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "Output as JSON")

	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	setupColor()

	opts, err := scanFlags.resolve(cfg)
	if err != nil {
		return err
	}

	dirs, err := scanner.Discover(args[0], opts, cfg.Scan.Ignore)
	if err != nil {
		return fmt.Errorf("scanning %s: %w", args[0], err)
	}

	if scanChangedOnly {
		filtered := dirs[:0]
		for _, d := range dirs {
			if d.Changed {
				filtered = append(filtered, d)
			}
		}
		dirs = filtered
	}

	if scanJSON || flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(dirs)
	}

	if len(dirs) == 0 {
		fmt.Println(output.StyleMuted.Render("no asset folders found"))
		return nil
	}

	tbl := output.NewTable("CANONICAL", "FILES", "ON DISK")
	for _, d := range dirs {
		tbl.AddRow(d.Canonical, strconv.Itoa(d.Files), d.Rel)
	}
	tbl.Print()

	if flagVerbose {
		fmt.Fprintf(os.Stderr, "%d folders\n", len(dirs))
	}
	return nil
}
