package system_test

import (
	"context"
	"errors"
	"testing"

	"github.com/polywars/arena/internal/system"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSaver struct {
	saved []int64
	err   error
}

func (f *fakeSaver) Save(_ context.Context, score int64) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, score)
	return nil
}

func TestScoreSystemTracksMaximum(t *testing.T) {
	s := newTestState(t)
	sc := system.NewScoreSystem(s)

	s.Score = 300
	sc.Update(0)
	assert.Equal(t, int64(300), s.HighScore)

	s.Score = 0
	sc.Update(0)
	assert.Equal(t, int64(300), s.HighScore)

	s.Score = 900
	sc.Update(0)
	assert.Equal(t, int64(900), s.HighScore)
}

func TestPersistenceSavesOnIntervalWhenChanged(t *testing.T) {
	s := newTestState(t)
	store := &fakeSaver{}
	ps := system.NewPersistenceSystem(s, store, 3, 100)

	s.HighScore = 100
	for range 3 {
		ps.Update(0)
	}
	assert.Empty(t, store.saved, "unchanged score is not rewritten")

	s.HighScore = 400
	ps.Update(0)
	ps.Update(0)
	assert.Empty(t, store.saved)
	ps.Update(0)
	assert.Equal(t, []int64{400}, store.saved)

	for range 3 {
		ps.Update(0)
	}
	assert.Equal(t, []int64{400}, store.saved)
}

func TestPersistenceSaveOnShutdown(t *testing.T) {
	s := newTestState(t)
	store := &fakeSaver{}
	ps := system.NewPersistenceSystem(s, store, 0, 0)

	s.HighScore = 1200
	for range 10 {
		ps.Update(0)
	}
	assert.Empty(t, store.saved, "zero interval disables periodic saves")

	require.NoError(t, ps.Save())
	assert.Equal(t, []int64{1200}, store.saved)
	require.NoError(t, ps.Save())
	assert.Len(t, store.saved, 1)
}

func TestPersistenceRetriesAfterError(t *testing.T) {
	s := newTestState(t)
	boom := errors.New("disk full")
	store := &fakeSaver{err: boom}
	ps := system.NewPersistenceSystem(s, store, 1, 0)

	s.HighScore = 50
	ps.Update(0)
	assert.ErrorIs(t, ps.Save(), boom)

	store.err = nil
	ps.Update(0)
	assert.Equal(t, []int64{50}, store.saved)
}
