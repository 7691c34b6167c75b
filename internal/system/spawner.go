package system

import (
	"time"

	coresys "github.com/polywars/arena/internal/core/system"
	"github.com/polywars/arena/internal/world"
)

// IntervalFunc picks the number of frames between timed spawns. base is the
// configured interval.
type IntervalFunc func(frame int, score int64, base int) int

// SpawnerSystem spawns one enemy whenever the spawn interval has elapsed since
// the last spawn. Phase 2 (Spawn).
type SpawnerSystem struct {
	world    *world.State
	interval IntervalFunc
}

// NewSpawnerSystem creates the spawner. A nil interval uses the configured one.
func NewSpawnerSystem(ws *world.State, interval IntervalFunc) *SpawnerSystem {
	return &SpawnerSystem{world: ws, interval: interval}
}

func (s *SpawnerSystem) Phase() coresys.Phase { return coresys.PhaseSpawn }
func (s *SpawnerSystem) Enabled() bool        { return s.world.Systems.Spawning }

func (s *SpawnerSystem) Update(_ time.Duration) {
	ws := s.world
	interval := ws.SpawnInterval
	if s.interval != nil {
		interval = s.interval(ws.Frame, ws.Score, ws.SpawnInterval)
	}
	if ws.Frame-ws.LastSpawnFrame >= interval {
		ws.SpawnEnemy(false)
	}
}
