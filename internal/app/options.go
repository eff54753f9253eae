package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilnworks/assetpath/internal/config"
	"github.com/kilnworks/assetpath/internal/pathnorm"
)

// optionFlags holds the per-command normalization flag values. Empty
// strings mean "not set on the command line".
type optionFlags struct {
	profile  string
	root     string
	slash    string
	leading  string
	trailing string
}

// register adds the shared normalization flags to a command.
func (f *optionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.profile, "profile", "", "Named option profile from the config file")
	cmd.Flags().StringVar(&f.root, "root", "", "Root kind: filesystem, assets, resources, streamingassets")
	cmd.Flags().StringVar(&f.slash, "slash", "", "Separator style: system, forward, backward")
	cmd.Flags().StringVar(&f.leading, "leading", "", "Leading slash policy: optional, include, omit")
	cmd.Flags().StringVar(&f.trailing, "trailing", "", "Trailing slash policy: optional, include, omit")
}

// resolve merges config defaults, the selected profile, and explicit
// flags (highest precedence) into normalization options.
func (f *optionFlags) resolve(cfg *config.Config) (pathnorm.Options, error) {
	p, ok := cfg.Resolve(f.profile)
	if !ok {
		return pathnorm.Options{}, fmt.Errorf("unknown profile %q", f.profile)
	}

	if f.root != "" {
		p.Root = f.root
	}
	if f.slash != "" {
		p.Slash = f.slash
	}
	if f.leading != "" {
		p.Leading = f.leading
	}
	if f.trailing != "" {
		p.Trailing = f.trailing
	}

	root, err := pathnorm.ParseRoot(p.Root)
	if err != nil {
		return pathnorm.Options{}, err
	}
	style, err := pathnorm.ParseSlashStyle(p.Slash)
	if err != nil {
		return pathnorm.Options{}, err
	}
	leading, err := pathnorm.ParseSlashPolicy(p.Leading)
	if err != nil {
		return pathnorm.Options{}, err
	}
	trailing, err := pathnorm.ParseSlashPolicy(p.Trailing)
	if err != nil {
		return pathnorm.Options{}, err
	}

	return pathnorm.Options{
		Root:     root,
		Style:    style,
		Leading:  leading,
		Trailing: trailing,
	}, nil
}
