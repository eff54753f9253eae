package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the top-level assetpath configuration.
type Config struct {
	Root     string             `mapstructure:"root"`
	Slash    string             `mapstructure:"slash"`
	Leading  string             `mapstructure:"leading"`
	Trailing string             `mapstructure:"trailing"`
	Workers  int                `mapstructure:"workers"`
	Output   Output             `mapstructure:"output"`
	History  History            `mapstructure:"history"`
	Scan     Scan               `mapstructure:"scan"`
	Profiles map[string]Profile `mapstructure:"profiles"`
}

// Profile is a named set of normalization options selectable with --profile.
// Empty fields fall back to the top-level defaults.
type Profile struct {
	Root     string `mapstructure:"root"`
	Slash    string `mapstructure:"slash"`
	Leading  string `mapstructure:"leading"`
	Trailing string `mapstructure:"trailing"`
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
	Width int  `mapstructure:"width"`
}

// History defines run-history preferences.
type History struct {
	Enabled bool `mapstructure:"enabled"`
}

// Scan defines directory-scan preferences.
type Scan struct {
	Ignore []string `mapstructure:"ignore"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location)
// and returns a Config with all defaults applied.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	// Set defaults.
	v.SetDefault("root", DefaultRoot)
	v.SetDefault("slash", DefaultSlash)
	v.SetDefault("leading", DefaultLeading)
	v.SetDefault("trailing", DefaultTrailing)
	v.SetDefault("workers", DefaultWorkers)
	v.SetDefault("output.color", DefaultOutput.Color)
	v.SetDefault("output.width", DefaultOutput.Width)
	v.SetDefault("history.enabled", DefaultHistory.Enabled)
	v.SetDefault("scan.ignore", DefaultScanIgnore)

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		configDir := expandPath(DefaultConfigDir)
		v.AddConfigPath(configDir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Read config file if it exists; missing file is not an error.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// Apply preset profiles if none configured.
	if len(cfg.Profiles) == 0 {
		cfg.Profiles = DefaultProfiles
	}

	return &cfg, nil
}

// Resolve merges a named profile over the top-level defaults. An empty
// name returns the defaults; an unknown name returns false.
func (c *Config) Resolve(profile string) (Profile, bool) {
	base := Profile{
		Root:     c.Root,
		Slash:    c.Slash,
		Leading:  c.Leading,
		Trailing: c.Trailing,
	}
	if profile == "" {
		return base, true
	}
	p, ok := c.Profiles[profile]
	if !ok {
		return Profile{}, false
	}
	if p.Root != "" {
		base.Root = p.Root
	}
	if p.Slash != "" {
		base.Slash = p.Slash
	}
	if p.Leading != "" {
		base.Leading = p.Leading
	}
	if p.Trailing != "" {
		base.Trailing = p.Trailing
	}
	return base, true
}

// DBPath returns the full path to the SQLite history database.
func DBPath() string {
	return filepath.Join(expandPath(DefaultConfigDir), DefaultDBName)
}

// ConfigDir returns the expanded configuration directory.
func ConfigDir() string {
	return expandPath(DefaultConfigDir)
}
