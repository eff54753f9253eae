package store

import (
	"database/sql"
	"fmt"
	"time"
)

// InsertRun records a run and its per-path results in one transaction,
// returning the new run ID.
func (db *DB) InsertRun(run *Run, paths []RunPath) (int64, error) {
	tx, err := db.conn.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	result, err := tx.Exec(
		`INSERT INTO runs (run_at, command, version, root, slash_style, total, changed)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339), run.Command, run.Version,
		run.Root, run.SlashStyle, run.Total, run.Changed,
	)
	if err != nil {
		return 0, err
	}
	runID, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}

	for _, p := range paths {
		if _, err := tx.Exec(
			"INSERT INTO run_paths (run_id, input, output, changed) VALUES (?, ?, ?, ?)",
			runID, p.Input, p.Output, p.Changed,
		); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return runID, nil
}

// LatestRun returns the most recent run, or nil if none exist.
func (db *DB) LatestRun() (*Run, error) {
	return db.RunN(1)
}

// RunN returns the Nth most recent run (1 = latest, 2 = previous, etc.),
// or nil if there are fewer than N runs.
func (db *DB) RunN(n int) (*Run, error) {
	row := db.conn.QueryRow(
		`SELECT id, run_at, command, version, root, slash_style, total, changed
		 FROM runs ORDER BY id DESC LIMIT 1 OFFSET ?`,
		n-1,
	)
	return scanRun(row)
}

// RecentRuns returns up to limit runs, newest first.
func (db *DB) RecentRuns(limit int) ([]Run, error) {
	rows, err := db.conn.Query(
		`SELECT id, run_at, command, version, root, slash_style, total, changed
		 FROM runs ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var runAt string
		if err := rows.Scan(&r.ID, &runAt, &r.Command, &r.Version, &r.Root,
			&r.SlashStyle, &r.Total, &r.Changed); err != nil {
			return nil, err
		}
		r.RunAt, _ = time.Parse(time.RFC3339, runAt)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// RunPaths returns the per-path results recorded for a run.
func (db *DB) RunPaths(runID int64) ([]RunPath, error) {
	rows, err := db.conn.Query(
		"SELECT id, run_id, input, output, changed FROM run_paths WHERE run_id = ? ORDER BY id",
		runID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var paths []RunPath
	for rows.Next() {
		var p RunPath
		if err := rows.Scan(&p.ID, &p.RunID, &p.Input, &p.Output, &p.Changed); err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, rows.Err()
}

// DiffRuns compares the two most recent runs. It fails when fewer than
// two runs have been recorded.
func (db *DB) DiffRuns() (*RunDelta, error) {
	current, err := db.RunN(1)
	if err != nil {
		return nil, err
	}
	previous, err := db.RunN(2)
	if err != nil {
		return nil, err
	}
	if current == nil || previous == nil {
		return nil, fmt.Errorf("need at least two recorded runs to compare")
	}

	return &RunDelta{
		Previous:     previous,
		Current:      current,
		TotalDelta:   current.Total - previous.Total,
		ChangedDelta: current.Changed - previous.Changed,
	}, nil
}

func scanRun(row *sql.Row) (*Run, error) {
	var r Run
	var runAt string
	err := row.Scan(&r.ID, &runAt, &r.Command, &r.Version, &r.Root,
		&r.SlashStyle, &r.Total, &r.Changed)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	r.RunAt, _ = time.Parse(time.RFC3339, runAt)
	return &r, nil
}
