// Package config provides configuration loading and defaults for assetpath.
package config

// DefaultConfigDir is the default location for assetpath configuration.
const DefaultConfigDir = "~/.config/assetpath"

// DefaultDBName is the filename for the SQLite history database.
const DefaultDBName = "assetpath.db"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// DefaultRoot is the root kind used when neither config nor flags choose one.
const DefaultRoot = "assets"

// DefaultSlash is the default separator style.
const DefaultSlash = "forward"

// DefaultLeading is the default leading-slash policy.
const DefaultLeading = "omit"

// DefaultTrailing is the default trailing-slash policy.
const DefaultTrailing = "include"

// DefaultWorkers bounds the batch normalization pool.
const DefaultWorkers = 8

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}

// DefaultHistory holds the default run-history preferences.
var DefaultHistory = History{
	Enabled: false,
}

// DefaultScanIgnore lists directory names skipped by scan.
var DefaultScanIgnore = []string{".git", "Library", "Temp", "obj"}

// DefaultProfiles provides the preset option profiles.
var DefaultProfiles = map[string]Profile{
	"assets": {
		Root:     "assets",
		Slash:    "forward",
		Leading:  "omit",
		Trailing: "include",
	},
	"resources": {
		Root:  "resources",
		Slash: "forward",
	},
	"streaming": {
		Root:  "streamingassets",
		Slash: "forward",
	},
	"builds": {
		Root:     "filesystem",
		Slash:    "system",
		Trailing: "omit",
	},
}
