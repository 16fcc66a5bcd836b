package journal

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCSV(t *testing.T) (*CSVJournal, string, string) {
	t.Helper()

	dir := t.TempDir()
	roundsPath := filepath.Join(dir, "rounds.csv")
	sessionsPath := filepath.Join(dir, "sessions.csv")

	j, err := NewCSV(roundsPath, sessionsPath)
	require.NoError(t, err)

	return j, roundsPath, sessionsPath
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return records
}

func TestCSVWritesHeaders(t *testing.T) {
	t.Parallel()

	j, roundsPath, sessionsPath := newTestCSV(t)
	assert.NoError(t, j.Close())

	rounds := readCSV(t, roundsPath)
	require.Len(t, rounds, 1)
	assert.Equal(t, "round_id", rounds[0][0])
	assert.Equal(t, "created_at", rounds[0][len(rounds[0])-1])

	sessions := readCSV(t, sessionsPath)
	require.Len(t, sessions, 1)
	assert.Equal(t, "session_id", sessions[0][0])
}

func TestCSVRecordRound(t *testing.T) {
	t.Parallel()

	j, roundsPath, _ := newTestCSV(t)

	rec := testRound("S1", 3, 2100)
	assert.NoError(t, j.RecordRound(rec))
	assert.NoError(t, j.Close())

	rows := readCSV(t, roundsPath)
	require.Len(t, rows, 2)
	assert.Equal(t, rec.RoundID, rows[1][0])
	assert.Equal(t, "S1", rows[1][1])
	assert.Equal(t, "3", rows[1][4])
	assert.Equal(t, "2026-01-02T03:04:05Z", rows[1][15])
}

func TestCSVRecordSession(t *testing.T) {
	t.Parallel()

	j, _, sessionsPath := newTestCSV(t)

	rec := SessionRecord{
		SessionID:     "S1",
		Scenario:      "broke_graduate",
		Seed:          7,
		StartedAt:     time.Date(2026, 1, 2, 3, 0, 0, 0, time.UTC),
		EndedAt:       time.Date(2026, 1, 2, 4, 0, 0, 0, time.UTC),
		Rounds:        35,
		FinalNetWorth: 120000.5,
		Badges:        "Safety Net Shield",
		Warnings:      0,
	}
	assert.NoError(t, j.RecordSession(rec))
	assert.NoError(t, j.Close())

	rows := readCSV(t, sessionsPath)
	require.Len(t, rows, 2)
	assert.Equal(t, "S1", rows[1][0])
	assert.Equal(t, "broke_graduate", rows[1][1])
	assert.Equal(t, "7", rows[1][2])
	assert.Equal(t, "Safety Net Shield", rows[1][7])
}
