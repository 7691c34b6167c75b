package world

import (
	"math"

	"github.com/polywars/arena/internal/component"
	"github.com/polywars/arena/internal/config"
	"github.com/polywars/arena/internal/core/ecs"
	"github.com/polywars/arena/internal/core/event"
	"github.com/polywars/arena/internal/geom"
	"go.uber.org/zap"
)

func rgb(c config.RGB) component.Color { return component.RGB(c[0], c[1], c[2]) }

// Player returns the active player, spawning a new one if none exists.
// This is the only self-healing query in the simulation.
func (s *State) Player() *ecs.Entity {
	for _, p := range s.Entities.Tagged(TagPlayer) {
		if p.IsActive() {
			return p
		}
	}
	return s.SpawnPlayer()
}

// SpawnPlayer creates the player at the window center.
func (s *State) SpawnPlayer() *ecs.Entity {
	pc := s.Cfg.Player
	e := s.Entities.Create(TagPlayer)
	ecs.Add(e, component.Transform{Pos: s.Center()})
	ecs.Add(e, component.Shape{
		Radius:           pc.ShapeRadius,
		Vertices:         pc.Vertices,
		Fill:             rgb(pc.Fill),
		Outline:          rgb(pc.Outline),
		OutlineThickness: pc.OutlineThickness,
	})
	ecs.Add(e, component.Input{})
	ecs.Add(e, component.Collision{Radius: pc.CollisionRadius})
	s.Log.Info("player spawned", zap.Uint64("id", uint64(e.ID())))
	return e
}

// ResetPlayer moves the player back to the center and wipes the running score.
func (s *State) ResetPlayer(p *ecs.Entity) {
	ecs.Get[component.Transform](p).Pos = s.Center()
	s.Score = 0
}

// SpawnEnemy places an enemy fully inside the window with a random heading,
// speed, vertex count and fill color, and restarts the spawn timer.
func (s *State) SpawnEnemy(manual bool) *ecs.Entity {
	ec := s.Cfg.Enemy
	w, h := s.Cfg.Window.Width, s.Cfg.Window.Height
	r := ec.ShapeRadius

	pos := geom.V(s.uniform(r, w-r), s.uniform(r, h-r))
	speed := s.uniform(ec.SpeedMin, ec.SpeedMax)
	heading := s.uniform(0, s.Cfg.Simulation.HeadingMax)
	vertices := s.intn(ec.VerticesMin, ec.VerticesMax)
	fill := component.RGB(uint8(s.intn(0, 255)), uint8(s.intn(0, 255)), uint8(s.intn(0, 255)))

	e := s.Entities.Create(TagEnemy)
	ecs.Add(e, component.Transform{Pos: pos, Velocity: geom.FromAngle(heading, speed)})
	ecs.Add(e, component.Shape{
		Radius:           r,
		Vertices:         vertices,
		Fill:             fill,
		Outline:          rgb(ec.Outline),
		OutlineThickness: ec.OutlineThickness,
	})
	ecs.Add(e, component.Score{Points: 100 * int64(vertices)})
	ecs.Add(e, component.Collision{Radius: ec.CollisionRadius})

	s.LastSpawnFrame = s.Frame
	event.Emit(s.Bus, event.EnemySpawned{EntityID: e.ID(), Vertices: vertices, Pos: pos, Manual: manual})
	return e
}

// SpawnSmallEnemies breaks parent into one fragment per vertex, fanned out
// evenly from the parent's current angle. Fragments are half size, keep the
// parent's colors and speed, are worth double its score, and expire.
// Fragments never fragment again.
func (s *State) SpawnSmallEnemies(parent *ecs.Entity) int {
	tr := ecs.Get[component.Transform](parent)
	sh := ecs.Get[component.Shape](parent)
	n := sh.Vertices
	if n <= 0 {
		return 0
	}
	radius := ecs.Get[component.Collision](parent).Radius
	points := ecs.Get[component.Score](parent).Points
	speed := tr.Velocity.Len()

	angle := tr.Angle * math.Pi / 180
	step := 2 * math.Pi / float64(n)
	for range n {
		dir := geom.FromAngle(angle, 1)

		e := s.Entities.Create(TagSmallEnemy)
		ecs.Add(e, component.Transform{Pos: tr.Pos.Add(dir.Scale(sh.Radius)), Velocity: dir.Scale(speed)})
		ecs.Add(e, component.Shape{
			Radius:           sh.Radius / 2,
			Vertices:         n,
			Fill:             sh.Fill,
			Outline:          sh.Outline,
			OutlineThickness: s.Cfg.Enemy.OutlineThickness,
		})
		ecs.Add(e, component.NewLifespan(s.Cfg.Enemy.SmallLifespan))
		ecs.Add(e, component.Collision{Radius: radius / 2})
		ecs.Add(e, component.Score{Points: points * 2})

		angle += step
	}
	return n
}

// SpawnBullet fires a bullet from src toward target. The bullet starts just
// outside src's shape. It is a no-op while the simulation is paused.
func (s *State) SpawnBullet(src *ecs.Entity, target geom.Vec2) *ecs.Entity {
	if s.Paused {
		return nil
	}
	bc := s.Cfg.Bullet
	from := ecs.Get[component.Transform](src).Pos
	theta := from.AngleTo(target)
	offset := ecs.Get[component.Shape](src).Radius + 1.5*bc.ShapeRadius

	e := s.Entities.Create(TagBullet)
	ecs.Add(e, component.Transform{
		Pos:      from.Add(geom.FromAngle(theta, offset)),
		Velocity: geom.FromAngle(theta, bc.Speed),
	})
	ecs.Add(e, component.Shape{
		Radius:           bc.ShapeRadius,
		Vertices:         bc.Vertices,
		Fill:             rgb(bc.Fill),
		Outline:          rgb(bc.Outline),
		OutlineThickness: bc.OutlineThickness,
	})
	ecs.Add(e, component.Collision{Radius: bc.CollisionRadius})
	ecs.Add(e, component.NewLifespan(bc.Lifespan))
	return e
}
