package database

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Connect(filepath.Join(t.TempDir(), "blockfall_test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.CreateTables())
	return db
}

func TestRebind(t *testing.T) {
	sqlite := &DB{dbType: "sqlite3"}
	pg := &DB{dbType: "postgres"}

	query := "SELECT * FROM users WHERE username = ? AND id = ?"
	assert.Equal(t, query, sqlite.rebind(query))
	assert.Equal(t, "SELECT * FROM users WHERE username = $1 AND id = $2", pg.rebind(query))
}

func TestCreateUserAndLookup(t *testing.T) {
	db := openTestDB(t)

	user, err := db.CreateUser("stacker", "stacker@example.com", "hash123")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)

	found, hash, err := db.GetUserByUsername("stacker")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, "stacker@example.com", found.Email)
	assert.Equal(t, "hash123", hash)
}

func TestLeaderboardOrdering(t *testing.T) {
	db := openTestDB(t)

	alice, err := db.CreateUser("alice", "alice@example.com", "h")
	require.NoError(t, err)
	bob, err := db.CreateUser("bob", "bob@example.com", "h")
	require.NoError(t, err)

	require.NoError(t, db.SaveGameScore(alice.ID, "blockfall", 12, map[string]interface{}{"rows_cleared": 12}))
	require.NoError(t, db.SaveGameScore(alice.ID, "blockfall", 4, nil))
	require.NoError(t, db.SaveGameScore(bob.ID, "blockfall", 30, nil))
	require.NoError(t, db.SaveGameScore(bob.ID, "othergame", 99, nil))

	entries, err := db.GetLeaderboard("blockfall", 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "bob", entries[0].Username)
	assert.Equal(t, 30, entries[0].BestScore)
	assert.Equal(t, 1, entries[0].GamesPlayed)

	assert.Equal(t, "alice", entries[1].Username)
	assert.Equal(t, 12, entries[1].BestScore)
	assert.Equal(t, 2, entries[1].GamesPlayed)
}

func TestGetUserStats(t *testing.T) {
	db := openTestDB(t)

	user, err := db.CreateUser("solo", "solo@example.com", "h")
	require.NoError(t, err)
	require.NoError(t, db.SaveGameScore(user.ID, "blockfall", 7, nil))
	require.NoError(t, db.SaveGameScore(user.ID, "blockfall", 3, nil))

	stats, err := db.GetUserStats(user.ID, "blockfall")
	require.NoError(t, err)
	assert.Equal(t, 7, stats.BestScore)
	assert.Equal(t, 2, stats.GamesPlayed)
	assert.InDelta(t, 5.0, stats.AvgScore, 0.001)
}

func TestGetUserStatsNoGames(t *testing.T) {
	db := openTestDB(t)

	user, err := db.CreateUser("fresh", "fresh@example.com", "h")
	require.NoError(t, err)

	stats, err := db.GetUserStats(user.ID, "blockfall")
	require.NoError(t, err)
	assert.Equal(t, 0, stats.BestScore)
	assert.Equal(t, 0, stats.GamesPlayed)
}

func TestCreateSampleDataIdempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, db.CreateSampleData())
	entries, err := db.GetLeaderboard("blockfall", 50)
	require.NoError(t, err)
	assert.NotEmpty(t, entries)

	// a second run must not duplicate anything
	require.NoError(t, db.CreateSampleData())
	again, err := db.GetLeaderboard("blockfall", 50)
	require.NoError(t, err)
	assert.Equal(t, len(entries), len(again))
}

func TestParsePlayedAt(t *testing.T) {
	ts := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	assert.Equal(t, ts, parsePlayedAt(ts))
	assert.Equal(t, ts, parsePlayedAt("2026-03-14 09:30:00"))
	assert.Equal(t, ts, parsePlayedAt([]byte("2026-03-14T09:30:00Z")))
}
