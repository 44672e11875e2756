package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/gabrielcapilla/triplay/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestBboltStore_History(t *testing.T) {
	tempDir := t.TempDir()
	dbPath := filepath.Join(tempDir, "test.db")

	store, err := NewBboltStore(dbPath)
	require.NoError(t, err, "Failed to create new bbolt store")
	defer store.Close()

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	entry1 := domain.HistoryEntry{Track: domain.Track{Title: "Song 1", File: "songs/one.mp3"}, PlayedAt: base}
	require.NoError(t, store.AddToHistory(entry1))

	entry2 := domain.HistoryEntry{Track: domain.Track{Title: "Song 2", File: "songs/two.mp3"}, PlayedAt: base.Add(time.Second)}
	require.NoError(t, store.AddToHistory(entry2))

	entry3 := domain.HistoryEntry{Track: domain.Track{Title: "Song 3", File: "songs/three.mp3"}, PlayedAt: base.Add(2 * time.Second)}
	require.NoError(t, store.AddToHistory(entry3))

	history, err := store.GetHistory(10)

	require.NoError(t, err, "GetHistory should not return an error")
	require.Len(t, history, 3, "History should contain 3 entries")
	require.Equal(t, "songs/three.mp3", history[0].Track.File, "The most recently played track should be first")
	require.Equal(t, "songs/two.mp3", history[1].Track.File)
	require.Equal(t, "songs/one.mp3", history[2].Track.File)

	replay := domain.HistoryEntry{Track: domain.Track{Title: "Song 1 (remaster)", File: "songs/one.mp3"}, PlayedAt: base.Add(3 * time.Second)}
	require.NoError(t, store.AddToHistory(replay))

	historyAfterUpdate, err := store.GetHistory(10)

	require.NoError(t, err)
	require.Len(t, historyAfterUpdate, 3, "History should still contain only 3 unique entries")
	require.Equal(t, "Song 1 (remaster)", historyAfterUpdate[0].Track.Title, "The replayed track should now be first")
	require.Equal(t, "songs/three.mp3", historyAfterUpdate[1].Track.File)
	require.Equal(t, "songs/two.mp3", historyAfterUpdate[2].Track.File)

	limitedHistory, err := store.GetHistory(2)

	require.NoError(t, err)
	require.Len(t, limitedHistory, 2, "History should be truncated to the limit")
	require.Equal(t, "songs/one.mp3", limitedHistory[0].Track.File)
	require.Equal(t, "songs/three.mp3", limitedHistory[1].Track.File)
}

func TestBboltStore_StampsMissingPlayTime(t *testing.T) {
	store, err := NewBboltStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.AddToHistory(domain.HistoryEntry{Track: domain.Track{Title: "A", File: "a.mp3"}}))

	history, err := store.GetHistory(5)
	require.NoError(t, err)
	require.Len(t, history, 1)
	require.False(t, history[0].PlayedAt.IsZero())
}
