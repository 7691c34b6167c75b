// Package game drives the simulation one frame at a time and is the only
// surface the presentation layer talks to.
package game

import (
	"time"

	"github.com/polywars/arena/internal/component"
	"github.com/polywars/arena/internal/core/ecs"
	"github.com/polywars/arena/internal/core/event"
	coresys "github.com/polywars/arena/internal/core/system"
	"github.com/polywars/arena/internal/geom"
	"github.com/polywars/arena/internal/system"
	"github.com/polywars/arena/internal/world"
	"go.uber.org/zap"
)

// maxCommandsPerFrame bounds how many queued commands one Step applies.
const maxCommandsPerFrame = 64

// Options configures the optional collaborators of a Game.
type Options struct {
	// Interval overrides the spawn interval each frame, e.g. from a script.
	Interval system.IntervalFunc
	// Store persists the high score. Nil disables saving.
	Store system.HighScoreSaver
	// HighScore is the value loaded at startup.
	HighScore int64
}

// Counters tallies the events delivered so far.
type Counters struct {
	Spawned       int
	ManualSpawned int
	Kills         int
	FragmentKills int
	PlayerHits    int
}

// Game owns the world state and the ordered system pipeline. Every method
// except Post must be called from the goroutine that calls Step.
type Game struct {
	world    *world.State
	runner   *coresys.Runner
	persist  *system.PersistenceSystem
	player   *ecs.Entity
	commands chan func(*Game)
	counters Counters
	dt       time.Duration
	log      *zap.Logger
}

// New wires the systems in phase order and spawns the player.
func New(ws *world.State, opts Options) *Game {
	if ws.Bus == nil {
		ws.Bus = event.NewBus()
	}
	ws.HighScore = opts.HighScore

	g := &Game{
		world:    ws,
		runner:   coresys.NewRunner(),
		commands: make(chan func(*Game), maxCommandsPerFrame),
		dt:       ws.Cfg.Simulation.TickRate,
		log:      ws.Log.Named("game"),
	}

	g.runner.Register(system.NewFlushSystem(ws))
	g.runner.Register(system.NewDispatchSystem(ws))
	g.runner.Register(system.NewSpawnerSystem(ws, opts.Interval))
	g.runner.Register(system.NewMovementSystem(ws))
	g.runner.Register(system.NewCollisionSystem(ws))
	g.runner.Register(system.NewLifespanSystem(ws))
	g.runner.Register(system.NewScoreSystem(ws))
	if opts.Store != nil {
		g.persist = system.NewPersistenceSystem(ws, opts.Store, ws.Cfg.HighScore.SaveInterval, opts.HighScore)
		g.runner.Register(g.persist)
	}

	g.subscribe()
	g.player = ws.Player()
	return g
}

func (g *Game) subscribe() {
	bus := g.world.Bus
	event.Subscribe(bus, func(e event.EnemySpawned) {
		g.counters.Spawned++
		if e.Manual {
			g.counters.ManualSpawned++
		}
		g.log.Debug("enemy spawned",
			zap.Uint64("id", uint64(e.EntityID)),
			zap.Int("vertices", e.Vertices),
			zap.Bool("manual", e.Manual),
		)
	})
	event.Subscribe(bus, func(e event.EnemyKilled) {
		g.counters.Kills++
		g.log.Debug("enemy killed",
			zap.Uint64("id", uint64(e.EntityID)),
			zap.Int64("points", e.Points),
			zap.Int("fragments", e.Fragments),
		)
	})
	event.Subscribe(bus, func(e event.SmallEnemyKilled) {
		g.counters.FragmentKills++
	})
	event.Subscribe(bus, func(e event.PlayerHit) {
		g.counters.PlayerHits++
	})
}

// Step advances one frame: queued commands are applied, then, unless paused,
// every system runs in phase order, the frame counter advances and the player
// handle is refreshed.
func (g *Game) Step() {
	g.drainCommands()
	if g.world.Paused {
		return
	}
	g.runner.Tick(g.dt)
	g.world.Frame++
	g.player = g.world.Player()
}

// Post queues fn to run at the start of the next Step. Safe for concurrent
// use. Returns false if the queue is full.
func (g *Game) Post(fn func(*Game)) bool {
	select {
	case g.commands <- fn:
		return true
	default:
		return false
	}
}

func (g *Game) drainCommands() {
	for range maxCommandsPerFrame {
		select {
		case fn := <-g.commands:
			fn(g)
		default:
			return
		}
	}
}

// World exposes the shared state, mainly for tests and tooling.
func (g *Game) World() *world.State { return g.world }

// Player returns the player handle, re-resolving it if the old one was
// destroyed.
func (g *Game) Player() *ecs.Entity {
	if g.player == nil || !g.player.IsActive() {
		g.player = g.world.Player()
	}
	return g.player
}

// SetInput replaces the player's held movement and fire flags.
func (g *Game) SetInput(in component.Input) {
	ecs.Add(g.Player(), in)
}

// Shoot fires a bullet from the player toward target. Returns nil while paused.
func (g *Game) Shoot(target geom.Vec2) *ecs.Entity {
	return g.world.SpawnBullet(g.Player(), target)
}

func (g *Game) SetPaused(paused bool) { g.world.Paused = paused }
func (g *Game) TogglePause()          { g.world.Paused = !g.world.Paused }
func (g *Game) Paused() bool          { return g.world.Paused }

// Toggles returns the current system switches.
func (g *Game) Toggles() world.Toggles { return g.world.Systems }

// SetToggles replaces the system switches.
func (g *Game) SetToggles(t world.Toggles) { g.world.Systems = t }

// ManualSpawn places one enemy now and restarts the spawn timer.
func (g *Game) ManualSpawn() *ecs.Entity {
	return g.world.SpawnEnemy(true)
}

// SpawnInterval returns the base number of frames between timed spawns.
func (g *Game) SpawnInterval() int { return g.world.SpawnInterval }

// SetSpawnInterval changes the base spawn interval. Negative values clamp to 0.
func (g *Game) SetSpawnInterval(frames int) { g.world.SetSpawnInterval(frames) }

// Destroy marks the entity with the given id for removal at the next flush.
// Unknown or already-removed ids are ignored.
func (g *Game) Destroy(id ecs.EntityID) bool {
	e, ok := g.world.Entities.Get(id)
	if !ok || !e.IsActive() {
		return false
	}
	e.Destroy()
	g.log.Debug("entity destroyed", zap.Uint64("id", uint64(id)), zap.String("tag", e.Tag()))
	return true
}

// Counters returns the event tallies so far.
func (g *Game) Counters() Counters { return g.counters }

// Stats returns per-system execution statistics in run order.
func (g *Game) Stats() []coresys.Stats { return g.runner.Stats() }

// SaveHighScore writes the high score now if it changed since the last save.
// A no-op without a store.
func (g *Game) SaveHighScore() error {
	if g.persist == nil {
		return nil
	}
	return g.persist.Save()
}
