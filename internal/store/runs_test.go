package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestInsertRunAndReadBack(t *testing.T) {
	db := newTestDB(t)

	runID, err := db.InsertRun(&Run{
		Command:    "normalize",
		Version:    "test",
		Root:       "assets",
		SlashStyle: "forward",
		Total:      2,
		Changed:    1,
	}, []RunPath{
		{Input: "C:/Game/Assets/A", Output: "Assets/A/", Changed: true},
		{Input: "Assets/B/", Output: "Assets/B/", Changed: false},
	})
	require.NoError(t, err)
	assert.Greater(t, runID, int64(0))

	latest, err := db.LatestRun()
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, runID, latest.ID)
	assert.Equal(t, "normalize", latest.Command)
	assert.Equal(t, "assets", latest.Root)
	assert.Equal(t, 2, latest.Total)
	assert.Equal(t, 1, latest.Changed)
	assert.False(t, latest.RunAt.IsZero())

	paths, err := db.RunPaths(runID)
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.Equal(t, "Assets/A/", paths[0].Output)
	assert.True(t, paths[0].Changed)
	assert.False(t, paths[1].Changed)
}

func TestLatestRun_Empty(t *testing.T) {
	db := newTestDB(t)

	run, err := db.LatestRun()
	require.NoError(t, err)
	assert.Nil(t, run)
}

func TestRecentRuns_Order(t *testing.T) {
	db := newTestDB(t)

	for i := 0; i < 3; i++ {
		_, err := db.InsertRun(&Run{
			Command:    "normalize",
			Version:    "test",
			Root:       "assets",
			SlashStyle: "forward",
			Total:      i,
		}, nil)
		require.NoError(t, err)
	}

	runs, err := db.RecentRuns(2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	// Newest first.
	assert.Equal(t, 2, runs[0].Total)
	assert.Equal(t, 1, runs[1].Total)
}

func TestDiffRuns(t *testing.T) {
	db := newTestDB(t)

	_, err := db.DiffRuns()
	assert.Error(t, err)

	_, err = db.InsertRun(&Run{Command: "normalize", Version: "test", Root: "assets", SlashStyle: "forward", Total: 10, Changed: 6}, nil)
	require.NoError(t, err)
	_, err = db.InsertRun(&Run{Command: "normalize", Version: "test", Root: "assets", SlashStyle: "forward", Total: 10, Changed: 2}, nil)
	require.NoError(t, err)

	delta, err := db.DiffRuns()
	require.NoError(t, err)
	assert.Equal(t, 0, delta.TotalDelta)
	assert.Equal(t, -4, delta.ChangedDelta)
	assert.Equal(t, int64(2), delta.Current.ID)
	assert.Equal(t, int64(1), delta.Previous.ID)
}
