// Package store provides SQLite persistence for assetpath run history.
package store

import "time"

// Run represents one recorded normalization run.
type Run struct {
	ID         int64     `json:"id"`
	RunAt      time.Time `json:"run_at"`
	Command    string    `json:"command"`
	Version    string    `json:"version"`
	Root       string    `json:"root"`
	SlashStyle string    `json:"slash_style"`
	Total      int       `json:"total"`
	Changed    int       `json:"changed"`
}

// RunPath is a single normalized path within a run.
type RunPath struct {
	ID      int64  `json:"id"`
	RunID   int64  `json:"run_id"`
	Input   string `json:"input"`
	Output  string `json:"output"`
	Changed bool   `json:"changed"`
}

// RunDelta represents the change between two recorded runs.
type RunDelta struct {
	Previous *Run `json:"previous"`
	Current  *Run `json:"current"`

	// TotalDelta and ChangedDelta are current minus previous.
	TotalDelta   int `json:"total_delta"`
	ChangedDelta int `json:"changed_delta"`
}
