package system_test

import (
	"testing"

	coresys "github.com/polywars/arena/internal/core/system"
	"github.com/polywars/arena/internal/system"
	"github.com/polywars/arena/internal/world"
	"github.com/stretchr/testify/assert"
)

func TestSpawnerWaitsForInterval(t *testing.T) {
	s := newTestState(t)
	s.SetSpawnInterval(10)
	sp := system.NewSpawnerSystem(s, nil)

	for f := 0; f < 10; f++ {
		s.Frame = f
		sp.Update(0)
	}
	assert.Empty(t, s.Entities.Tagged(world.TagEnemy))

	s.Frame = 10
	sp.Update(0)
	assert.Len(t, s.Entities.Tagged(world.TagEnemy), 1)
	assert.Equal(t, 10, s.LastSpawnFrame)

	s.Frame = 11
	sp.Update(0)
	assert.Len(t, s.Entities.Tagged(world.TagEnemy), 1, "timer restarts after a spawn")

	s.Frame = 20
	sp.Update(0)
	assert.Len(t, s.Entities.Tagged(world.TagEnemy), 2)
}

func TestSpawnerZeroIntervalSpawnsEveryFrame(t *testing.T) {
	s := newTestState(t)
	s.SetSpawnInterval(0)
	sp := system.NewSpawnerSystem(s, nil)
	for f := 0; f < 4; f++ {
		s.Frame = f
		sp.Update(0)
	}
	assert.Len(t, s.Entities.Tagged(world.TagEnemy), 4)
}

func TestManualSpawnRestartsTimer(t *testing.T) {
	s := newTestState(t)
	s.SetSpawnInterval(10)
	sp := system.NewSpawnerSystem(s, nil)

	s.Frame = 8
	s.SpawnEnemy(true)
	s.Frame = 12
	sp.Update(0)
	assert.Len(t, s.Entities.Tagged(world.TagEnemy), 1)

	s.Frame = 18
	sp.Update(0)
	assert.Len(t, s.Entities.Tagged(world.TagEnemy), 2)
}

func TestSpawnerUsesIntervalFunc(t *testing.T) {
	s := newTestState(t)
	s.SetSpawnInterval(60)
	s.Score = 7

	var gotScore int64
	var gotBase int
	sp := system.NewSpawnerSystem(s, func(frame int, score int64, base int) int {
		gotScore, gotBase = score, base
		return 2
	})

	s.Frame = 2
	sp.Update(0)
	assert.Len(t, s.Entities.Tagged(world.TagEnemy), 1)
	assert.Equal(t, int64(7), gotScore)
	assert.Equal(t, 60, gotBase)
}

func TestSpawnerToggle(t *testing.T) {
	s := newTestState(t)
	s.SetSpawnInterval(0)
	r := coresys.NewRunner()
	r.Register(system.NewSpawnerSystem(s, nil))

	s.Systems.Spawning = false
	r.Tick(0)
	assert.Empty(t, s.Entities.Tagged(world.TagEnemy))
	assert.Equal(t, int64(1), r.Stats()[0].Skipped)

	s.Systems.Spawning = true
	r.Tick(0)
	assert.Len(t, s.Entities.Tagged(world.TagEnemy), 1)
}
