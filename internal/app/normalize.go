package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kilnworks/assetpath/internal/batch"
	"github.com/kilnworks/assetpath/internal/config"
	"github.com/kilnworks/assetpath/internal/output"
	"github.com/kilnworks/assetpath/internal/pathnorm"
	"github.com/kilnworks/assetpath/internal/store"
)

var (
	normalizeFlags   optionFlags
	normalizeFile    string
	normalizeDiff    bool
	normalizeRecord  bool
	normalizeWorkers int
	normalizeJSON    bool
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize [path...]",
	Short: "Canonicalize paths from arguments, a file, or stdin",
	Long: `Normalize rewrites each path into its canonical form under the configured
root. Paths come from arguments, from a list file (--file, one path per
line, '#' comments allowed), or from stdin (--file -).`,
	RunE: runNormalize,
}

func init() {
	normalizeFlags.register(normalizeCmd)
	normalizeCmd.Flags().StringVar(&normalizeFile, "file", "", "Read paths from a file ('-' for stdin)")
	normalizeCmd.Flags().BoolVar(&normalizeDiff, "diff", false, "Show original and canonical forms side by side")
	normalizeCmd.Flags().BoolVar(&normalizeRecord, "record", false, "Record this run in the history database")
	normalizeCmd.Flags().IntVar(&normalizeWorkers, "workers", 0, "Worker pool size (default from config)")
	normalizeCmd.Flags().BoolVar(&normalizeJSON, "json", false, "Output as JSON")

	rootCmd.AddCommand(normalizeCmd)
}

// collectPaths merges positional arguments with the --file list.
func collectPaths(args []string, file string) ([]string, error) {
	paths := append([]string(nil), args...)
	if file != "" {
		fromFile, err := batch.ReadPathsFile(file)
		if err != nil {
			return nil, fmt.Errorf("reading path list: %w", err)
		}
		paths = append(paths, fromFile...)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no paths given (pass arguments or --file)")
	}
	return paths, nil
}

func runNormalize(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	setupColor()

	opts, err := normalizeFlags.resolve(cfg)
	if err != nil {
		return err
	}

	paths, err := collectPaths(args, normalizeFile)
	if err != nil {
		return err
	}

	workers := normalizeWorkers
	if workers <= 0 {
		workers = cfg.Workers
	}

	results, summary, err := batch.Run(cmd.Context(), paths, opts, workers)
	if err != nil {
		return err
	}

	if normalizeRecord || cfg.History.Enabled {
		if err := recordRun(opts, results, summary); err != nil {
			return fmt.Errorf("recording run: %w", err)
		}
	}

	if normalizeJSON || flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Results []batch.Result `json:"results"`
			Summary batch.Summary  `json:"summary"`
		}{results, summary})
	}

	if normalizeDiff {
		tbl := output.NewTable("INPUT", "CANONICAL", "STATUS")
		for _, r := range results {
			mark := ""
			if r.Changed {
				mark = "rewritten"
			}
			tbl.AddRow(r.Input, r.Output, mark)
		}
		tbl.Print()
	} else {
		for _, r := range results {
			fmt.Println(r.Output)
		}
	}

	if flagVerbose {
		fmt.Fprintf(os.Stderr, "%d paths, %d rewritten\n", summary.Total, summary.Changed)
	}
	return nil
}

// recordRun persists a normalization run to the history database.
func recordRun(opts pathnorm.Options, results []batch.Result, summary batch.Summary) error {
	db, err := store.Open(config.DBPath())
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	paths := make([]store.RunPath, len(results))
	for i, r := range results {
		paths[i] = store.RunPath{Input: r.Input, Output: r.Output, Changed: r.Changed}
	}

	_, err = db.InsertRun(&store.Run{
		Command:    "normalize",
		Version:    appVersion,
		Root:       opts.Root.String(),
		SlashStyle: opts.Style.String(),
		Total:      summary.Total,
		Changed:    summary.Changed,
	}, paths)
	return err
}
