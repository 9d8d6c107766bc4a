package persistence

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/ant-world/internal/config"
	"github.com/talgya/ant-world/internal/engine"
)

func openTemp(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestWritesNeedARun(t *testing.T) {
	db := openTemp(t)
	assert.ErrorIs(t, db.SaveTick(1, engine.SimStats{}), ErrNoRun)
	assert.ErrorIs(t, db.SaveEvents([]engine.Event{{Tick: 1}}), ErrNoRun)
}

func TestStartRun(t *testing.T) {
	db := openTemp(t)
	id, err := db.StartRun(42, config.Defaults())
	require.NoError(t, err)

	_, err = uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, id, db.RunID())

	runs, err := db.Runs()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, id, runs[0].ID)
	assert.Equal(t, int64(42), runs[0].Seed)
	assert.Contains(t, runs[0].Config, "Colonies")
}

func TestSaveTickRoundTrip(t *testing.T) {
	db := openTemp(t)
	_, err := db.StartRun(1, nil)
	require.NoError(t, err)

	stats := engine.SimStats{
		Ants:          20,
		Carrying:      3,
		Markers:       41,
		Pheromone:     87.5,
		FoodSources:   4,
		FoodRemaining: 180,
		FoodCollected: 20,
		FoodDelivered: 17,
		PathsCharted:  64,
		PathsFailed:   2,
	}
	require.NoError(t, db.SaveTick(100, stats))
	stats.FoodDelivered = 18
	require.NoError(t, db.SaveTick(200, stats))
	require.NoError(t, db.SaveTick(200, stats), "rewriting a tick replaces it")

	rows, err := db.TickHistory()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, uint64(100), rows[0].Tick)
	assert.Equal(t, uint64(17), rows[0].FoodDelivered)
	assert.Equal(t, uint64(200), rows[1].Tick)
	assert.Equal(t, stats, rows[1].SimStats)
}

func TestSaveAndReadEvents(t *testing.T) {
	db := openTemp(t)
	_, err := db.StartRun(1, nil)
	require.NoError(t, err)

	require.NoError(t, db.SaveEvents(nil))
	require.NoError(t, db.SaveEvents([]engine.Event{
		{Tick: 1, Description: "20 forager ants hatched", Category: "colony"},
		{Tick: 9, Description: "ant 3 picked up food", Category: "forage"},
		{Tick: 30, Description: "ant 3 delivered food", Category: "forage"},
	}))

	events, err := db.RecentEvents(2)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, uint64(30), events[0].Tick)
	assert.Equal(t, "ant 3 picked up food", events[1].Description)
}

func TestEventsAreScopedToRun(t *testing.T) {
	db := openTemp(t)
	_, err := db.StartRun(1, nil)
	require.NoError(t, err)
	require.NoError(t, db.SaveEvents([]engine.Event{{Tick: 1, Description: "old", Category: "food"}}))

	_, err = db.StartRun(2, nil)
	require.NoError(t, err)
	events, err := db.RecentEvents(10)
	require.NoError(t, err)
	assert.Empty(t, events)

	runs, err := db.Runs()
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}
