package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kilnworks/assetpath/internal/batch"
	"github.com/kilnworks/assetpath/internal/config"
	"github.com/kilnworks/assetpath/internal/output"
)

var (
	checkFlags optionFlags
	checkFile  string
	checkJSON  bool
)

var checkCmd = &cobra.Command{
	Use:   "check [path...]",
	Short: "Fail when paths are not already canonical",
	Long: `Check normalizes each path and reports the ones that would change.
It exits non-zero when any path is not already in canonical form, which
makes it usable as a CI gate on asset lists.`,
	RunE: runCheck,
}

func init() {
	checkFlags.register(checkCmd)
	checkCmd.Flags().StringVar(&checkFile, "file", "", "Read paths from a file ('-' for stdin)")
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "Output as JSON")

	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	setupColor()

	opts, err := checkFlags.resolve(cfg)
	if err != nil {
		return err
	}

	paths, err := collectPaths(args, checkFile)
	if err != nil {
		return err
	}

	results, summary, err := batch.Run(cmd.Context(), paths, opts, cfg.Workers)
	if err != nil {
		return err
	}

	var failing []batch.Result
	for _, r := range results {
		if r.Changed {
			failing = append(failing, r)
		}
	}

	if checkJSON || flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(struct {
			Failing []batch.Result `json:"failing"`
			Summary batch.Summary  `json:"summary"`
		}{failing, summary}); err != nil {
			return err
		}
	} else if len(failing) > 0 {
		tbl := output.NewTable("PATH", "CANONICAL")
		for _, r := range failing {
			tbl.AddRow(r.Input, r.Output)
		}
		tbl.Print()
	} else {
		fmt.Println(output.StyleSuccess.Render(fmt.Sprintf("all %d paths canonical", summary.Total)))
	}

	if len(failing) > 0 {
		return fmt.Errorf("%d of %d paths are not canonical", len(failing), summary.Total)
	}
	return nil
}
