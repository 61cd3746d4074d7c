package web

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/justinabrahms/hotseat/internal/chess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameStoreLifecycle(t *testing.T) {
	store := NewGameStore(2, nil)

	first, err := store.Create()
	require.NoError(t, err)
	_, err = uuid.Parse(first.ID)
	assert.NoError(t, err)

	second, err := store.Create()
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	_, err = store.Create()
	assert.ErrorIs(t, err, ErrTooManySessions)

	got, err := store.Get(first.ID)
	require.NoError(t, err)
	assert.Same(t, first, got)

	list := store.List()
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)

	require.NoError(t, store.Delete(first.ID))
	assert.ErrorIs(t, store.Delete(first.ID), ErrGameNotFound)
	_, err = store.Get(first.ID)
	assert.ErrorIs(t, err, ErrGameNotFound)
	assert.Equal(t, 1, store.Len())
}

func TestGameStoreGetRejectsMalformedIDs(t *testing.T) {
	store := NewGameStore(1, nil)
	for _, id := range []string{"", "e2", "../etc/passwd"} {
		_, err := store.Get(id)
		assert.ErrorIs(t, err, ErrGameNotFound, id)
	}
}

func TestGameStoreNotifierGetsGameID(t *testing.T) {
	var ids []string
	store := NewGameStore(1, func(gameID string) chess.Notifier {
		ids = append(ids, gameID)
		return chess.NopNotifier{}
	})

	session, err := store.Create()
	require.NoError(t, err)
	assert.Equal(t, []string{session.ID}, ids)
}

func TestSessionDoTracksActivity(t *testing.T) {
	store := NewGameStore(1, nil)
	session, err := store.Create()
	require.NoError(t, err)

	created := session.LastActive()
	session.View(func(e *chess.Engine) {})
	assert.Equal(t, created, session.LastActive())

	time.Sleep(time.Millisecond)
	err = session.Do(func(e *chess.Engine) error {
		_, err := e.Select(chess.At(4, 1))
		return err
	})
	require.NoError(t, err)
	assert.True(t, session.LastActive().After(created))

	snap := session.Snapshot()
	assert.Equal(t, "e2", snap.Selected)
}

func TestGameStorePrune(t *testing.T) {
	store := NewGameStore(4, nil)
	stale, err := store.Create()
	require.NoError(t, err)

	time.Sleep(2 * time.Millisecond)
	cutoff := time.Now()
	time.Sleep(2 * time.Millisecond)

	fresh, err := store.Create()
	require.NoError(t, err)

	assert.Equal(t, []string{stale.ID}, store.Prune(cutoff))
	assert.Equal(t, 1, store.Len())
	_, err = store.Get(fresh.ID)
	assert.NoError(t, err)

	assert.Empty(t, store.Prune(cutoff))
}
