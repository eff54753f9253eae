package app

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/kilnworks/assetpath/internal/config"
	"github.com/kilnworks/assetpath/internal/output"
	"github.com/kilnworks/assetpath/internal/store"
)

var (
	historyLimit   int
	historyCompare bool
	historyJSON    bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded normalization runs",
	Long: `History lists runs recorded with 'normalize --record' (or with
history.enabled set in the config), newest first. With --compare it shows
the delta between the two most recent runs.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 10, "Number of runs to show")
	historyCmd.Flags().BoolVar(&historyCompare, "compare", false, "Compare the two most recent runs")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "Output as JSON")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	setupColor()

	db, err := store.Open(config.DBPath())
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() { _ = db.Close() }()

	if historyCompare {
		return showRunDelta(db)
	}

	runs, err := db.RecentRuns(historyLimit)
	if err != nil {
		return err
	}

	if historyJSON || flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(runs)
	}

	if len(runs) == 0 {
		fmt.Println(output.StyleMuted.Render("no recorded runs (use 'normalize --record')"))
		return nil
	}

	tbl := output.NewTable("WHEN", "ROOT", "STYLE", "TOTAL", "REWRITTEN")
	for _, r := range runs {
		tbl.AddRow(
			r.RunAt.Local().Format(time.DateTime),
			r.Root,
			r.SlashStyle,
			strconv.Itoa(r.Total),
			strconv.Itoa(r.Changed),
		)
	}
	tbl.Print()
	return nil
}

func showRunDelta(db *store.DB) error {
	delta, err := db.DiffRuns()
	if err != nil {
		return err
	}

	if historyJSON || flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(delta)
	}

	fmt.Println(output.StyleHeader.Render("run comparison"))
	fmt.Printf("previous: %s (%d paths, %d rewritten)\n",
		delta.Previous.RunAt.Local().Format(time.DateTime), delta.Previous.Total, delta.Previous.Changed)
	fmt.Printf("current:  %s (%d paths, %d rewritten)\n",
		delta.Current.RunAt.Local().Format(time.DateTime), delta.Current.Total, delta.Current.Changed)

	trend := output.StyleMuted.Render("no change")
	switch {
	case delta.ChangedDelta < 0:
		trend = output.StyleSuccess.Render(fmt.Sprintf("%d fewer rewrites", -delta.ChangedDelta))
	case delta.ChangedDelta > 0:
		trend = output.StyleError.Render(fmt.Sprintf("%d more rewrites", delta.ChangedDelta))
	}
	fmt.Println(trend)
	return nil
}
