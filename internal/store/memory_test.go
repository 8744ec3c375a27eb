package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-wordle/internal/game"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/words"
)

type fixedPicker string

func (p fixedPicker) Pick() string { return string(p) }

func newSession() *game.Session {
	dict := words.NewDictionary([]string{"crane", "slate"})
	return game.New(dict, fixedPicker("crane"), "")
}

func TestMemory_SaveUpdate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	m := NewMemoryStore()
	s := newSession()
	require.NoError(t, m.Save(ctx, s))
	assert.Equal(t, 1, m.Len())

	err := m.Update(ctx, s.ID, func(g *game.Session) error {
		_, err := g.ApplyGuess("slate")
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 1, s.Row())

	err = m.Update(ctx, "missing", func(*game.Session) error { return nil })
	assert.ErrorIs(t, err, ErrNotFound)

	boom := errors.New("boom")
	err = m.Update(ctx, s.ID, func(*game.Session) error { return boom })
	assert.ErrorIs(t, err, boom)
}

func TestMemory_UpdateHonoursCancelledContext(t *testing.T) {
	t.Parallel()
	m := NewMemoryStore()
	s := newSession()
	require.NoError(t, m.Save(context.Background(), s))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	called := false
	err := m.Update(ctx, s.ID, func(*game.Session) error { called = true; return nil })
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestMemory_ConcurrentUpdatesAreSerialised(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	m := NewMemoryStore()
	s := newSession()
	require.NoError(t, m.Save(ctx, s))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = m.Update(ctx, s.ID, func(g *game.Session) error {
				g.EnterLetter('a')
				g.DeleteLetter()
				return nil
			})
		}()
	}
	wg.Wait()
	assert.Equal(t, 0, s.Col())
}

func TestMemory_DeleteAndSweep(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m := newMemory(func() time.Time { return now })

	old, fresh := newSession(), newSession()
	require.NoError(t, m.Save(ctx, old))
	now = now.Add(time.Hour)
	require.NoError(t, m.Save(ctx, fresh))

	assert.Equal(t, 1, m.Sweep(ctx, now.Add(-30*time.Minute)))
	assert.Equal(t, 1, m.Len())
	assert.ErrorIs(t, m.Update(ctx, old.ID, func(*game.Session) error { return nil }), ErrNotFound)

	require.NoError(t, m.Delete(ctx, fresh.ID))
	require.NoError(t, m.Delete(ctx, fresh.ID))
	assert.Equal(t, 0, m.Len())
}
