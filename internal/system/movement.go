package system

import (
	"math"
	"time"

	"github.com/polywars/arena/internal/component"
	"github.com/polywars/arena/internal/core/ecs"
	coresys "github.com/polywars/arena/internal/core/system"
	"github.com/polywars/arena/internal/world"
)

const (
	playerStep = 10.0 // pixels per frame along each held axis
	enemySpin  = 2.5  // degrees per frame
	playerSpin = 3.0  // degrees per frame
)

var diagonalScale = math.Sqrt2 / 2

// MovementSystem integrates velocities. Bullets fly straight, enemies bounce
// off the window edges, fragments drift, and the player follows input and is
// clamped inside the window. Phase 3 (Movement).
type MovementSystem struct {
	world *world.State
}

func NewMovementSystem(ws *world.State) *MovementSystem {
	return &MovementSystem{world: ws}
}

func (s *MovementSystem) Phase() coresys.Phase { return coresys.PhaseMovement }
func (s *MovementSystem) Enabled() bool        { return s.world.Systems.Movement }

func (s *MovementSystem) Update(_ time.Duration) {
	ents := s.world.Entities
	w, h := s.world.Cfg.Window.Width, s.world.Cfg.Window.Height

	ecs.EachActive(ents.Tagged(world.TagBullet), func(e *ecs.Entity) {
		tr := ecs.Get[component.Transform](e)
		tr.Pos = tr.Pos.Add(tr.Velocity)
	})

	ecs.EachActive(ents.Tagged(world.TagEnemy), func(e *ecs.Entity) {
		tr := ecs.Get[component.Transform](e)
		r := ecs.Get[component.Collision](e).Radius
		tr.Pos = tr.Pos.Add(tr.Velocity)
		bounce(tr, r, w, h)
		tr.Angle += enemySpin
	})

	ecs.EachActive(ents.Tagged(world.TagSmallEnemy), func(e *ecs.Entity) {
		tr := ecs.Get[component.Transform](e)
		tr.Pos = tr.Pos.Add(tr.Velocity)
		tr.Angle += enemySpin
	})

	s.movePlayer(w, h)
}

// bounce reflects velocity on each axis where the circle touches or crosses
// a window edge. Both axes may flip in the same frame.
func bounce(tr *component.Transform, r, w, h float64) {
	if tr.Pos.X+r >= w || tr.Pos.X-r <= 0 {
		tr.Velocity.X = -tr.Velocity.X
	}
	if tr.Pos.Y+r >= h || tr.Pos.Y-r <= 0 {
		tr.Velocity.Y = -tr.Velocity.Y
	}
}

func (s *MovementSystem) movePlayer(w, h float64) {
	p := s.world.Player()
	tr := ecs.Get[component.Transform](p)
	in := ecs.Get[component.Input](p)
	r := ecs.Get[component.Collision](p).Radius

	tr.Velocity.X = playerStep*b2f(in.Right) - playerStep*b2f(in.Left)
	tr.Velocity.Y = playerStep*b2f(in.Down) - playerStep*b2f(in.Up)
	if tr.Velocity.X != 0 && tr.Velocity.Y != 0 {
		tr.Velocity = tr.Velocity.Scale(diagonalScale)
	}

	tr.Pos = tr.Pos.Add(tr.Velocity)
	tr.Pos.X = clamp(tr.Pos.X, r, w-r)
	tr.Pos.Y = clamp(tr.Pos.Y, r, h-r)

	tr.Angle += playerSpin
}

func clamp(v, lo, hi float64) float64 {
	if v > hi {
		return hi
	}
	if v < lo {
		return lo
	}
	return v
}

func b2f(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
