package history

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/skilllint/internal/models"
)

func corpusWithTotals(errors, warnings, infos int) *models.CorpusReport {
	return &models.CorpusReport{
		TotalFiles:          3,
		FilesWithViolations: 2,
		Totals:              models.SeverityCounts{Errors: errors, Warnings: warnings, Infos: infos},
		PairedExampleRatio:  0.5,
		AntiPatternRatio:    0.25,
	}
}

func TestRecordAndListRuns(t *testing.T) {
	store, err := NewStore(":memory:")
	require.NoError(t, err)
	defer store.Close()

	id, err := store.RecordRun("corpus", corpusWithTotals(2, 1, 0))
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	runs, err := store.RecentRuns(10)
	require.NoError(t, err)
	require.Len(t, runs, 1)

	run := runs[0]
	assert.Equal(t, id, run.ID)
	assert.Equal(t, "corpus", run.Root)
	assert.Equal(t, 3, run.TotalFiles)
	assert.Equal(t, 2, run.Errors)
	assert.Equal(t, 1, run.Warnings)
	assert.Equal(t, 3, run.Total())
	assert.InDelta(t, 0.5, run.PairedExampleRatio, 1e-9)
	assert.False(t, run.CreatedAt.IsZero())
}

func TestRecentRunsNewestFirst(t *testing.T) {
	store, err := NewStore(":memory:")
	require.NoError(t, err)
	defer store.Close()

	_, err = store.RecordRun("corpus", corpusWithTotals(5, 0, 0))
	require.NoError(t, err)
	newest, err := store.RecordRun("corpus", corpusWithTotals(1, 0, 0))
	require.NoError(t, err)

	runs, err := store.RecentRuns(1)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, newest, runs[0].ID)
}

func TestDelta(t *testing.T) {
	store, err := NewStore(":memory:")
	require.NoError(t, err)
	defer store.Close()

	_, ok, err := store.Delta()
	require.NoError(t, err)
	assert.False(t, ok, "delta needs two runs")

	_, err = store.RecordRun("corpus", corpusWithTotals(5, 2, 1))
	require.NoError(t, err)
	_, err = store.RecordRun("corpus", corpusWithTotals(3, 1, 0))
	require.NoError(t, err)

	delta, ok, err := store.Delta()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, -4, delta, "violations dropped from 8 to 4")
}

func TestStoreCreatesParentDirectory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "history.db")
	store, err := NewStore(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = store.RecordRun("corpus", corpusWithTotals(0, 0, 0))
	require.NoError(t, err)
}
