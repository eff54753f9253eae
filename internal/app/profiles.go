package app

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/kilnworks/assetpath/internal/config"
	"github.com/kilnworks/assetpath/internal/output"
)

var profilesJSON bool

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List configured option profiles",
	Long: `Profiles lists the named option sets from the config file. Fields a
profile leaves empty fall back to the top-level defaults.`,
	RunE: runProfiles,
}

func init() {
	profilesCmd.Flags().BoolVar(&profilesJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(profilesCmd)
}

func runProfiles(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	setupColor()

	names := make([]string, 0, len(cfg.Profiles))
	for name := range cfg.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)

	if profilesJSON || flagJSON {
		resolved := make(map[string]config.Profile, len(names))
		for _, name := range names {
			p, _ := cfg.Resolve(name)
			resolved[name] = p
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(resolved)
	}

	tbl := output.NewTable("PROFILE", "ROOT", "SLASH", "LEADING", "TRAILING")
	for _, name := range names {
		p, _ := cfg.Resolve(name)
		tbl.AddRow(name, p.Root, p.Slash, p.Leading, p.Trailing)
	}
	tbl.Print()
	return nil
}
