package world

import (
	"math/rand/v2"
	"time"

	"github.com/polywars/arena/internal/config"
	"github.com/polywars/arena/internal/core/ecs"
	"github.com/polywars/arena/internal/core/event"
	"github.com/polywars/arena/internal/geom"
	"go.uber.org/zap"
)

// Entity tags.
const (
	TagPlayer     = "player"
	TagEnemy      = "enemy"
	TagSmallEnemy = "sEnemy"
	TagBullet     = "bullet"
)

// Toggles switch individual systems on and off at runtime. Rendering and GUI
// are only read by the presentation layer.
type Toggles struct {
	Movement  bool
	Lifespan  bool
	Collision bool
	Spawning  bool
	Rendering bool
	GUI       bool
}

// State is everything the systems share. Accessed only from the game loop
// goroutine, so no locks are needed.
type State struct {
	Entities *ecs.Manager
	Cfg      *config.Config
	Bus      *event.Bus
	Log      *zap.Logger

	Frame          int // frames simulated so far; does not advance while paused
	LastSpawnFrame int
	SpawnInterval  int // live-tunable copy of Cfg.Enemy.SpawnInterval

	Score     int64
	HighScore int64
	Paused    bool
	Systems   Toggles

	rng *rand.Rand
}

// NewState builds an empty world. A zero seed picks one from the clock.
func NewState(cfg *config.Config, bus *event.Bus, log *zap.Logger) *State {
	if log == nil {
		log = zap.NewNop()
	}
	seed := cfg.Simulation.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	sc := cfg.Systems
	return &State{
		Entities:      ecs.NewManager(),
		Cfg:           cfg,
		Bus:           bus,
		Log:           log,
		SpawnInterval: cfg.Enemy.SpawnInterval,
		Systems: Toggles{
			Movement:  sc.Movement,
			Lifespan:  sc.Lifespan,
			Collision: sc.Collision,
			Spawning:  sc.Spawning,
			Rendering: sc.Rendering,
			GUI:       sc.GUI,
		},
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Bounds returns the window size.
func (s *State) Bounds() geom.Vec2 {
	return geom.V(s.Cfg.Window.Width, s.Cfg.Window.Height)
}

// Center returns the middle of the window, where the player (re)spawns.
func (s *State) Center() geom.Vec2 {
	return s.Bounds().Div(2)
}

// SetSpawnInterval changes the number of frames between timed enemy spawns.
func (s *State) SetSpawnInterval(frames int) {
	if frames < 0 {
		frames = 0
	}
	s.SpawnInterval = frames
}

// AddScore credits points to the running score.
func (s *State) AddScore(points int64) {
	s.Score += points
}

// UpdateHighScore raises the high score to the running score if it is larger.
func (s *State) UpdateHighScore() bool {
	if s.Score > s.HighScore {
		s.HighScore = s.Score
		return true
	}
	return false
}

// uniform returns a float in [lo, hi].
func (s *State) uniform(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Float64()*(hi-lo)
}

// intn returns an int in [lo, hi].
func (s *State) intn(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.IntN(hi-lo+1)
}
