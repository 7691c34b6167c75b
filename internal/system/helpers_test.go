package system_test

import (
	"testing"

	"github.com/polywars/arena/internal/component"
	"github.com/polywars/arena/internal/config"
	"github.com/polywars/arena/internal/core/ecs"
	"github.com/polywars/arena/internal/core/event"
	"github.com/polywars/arena/internal/geom"
	"github.com/polywars/arena/internal/world"
)

func newTestState(t *testing.T) *world.State {
	t.Helper()
	cfg := config.Defaults()
	cfg.Window.Width, cfg.Window.Height = 800, 600
	cfg.Simulation.Seed = 1
	return world.NewState(cfg, event.NewBus(), nil)
}

func spawnAt(s *world.State, tag string, pos, vel geom.Vec2, radius float64) *ecs.Entity {
	e := s.Entities.Create(tag)
	ecs.Add(e, component.Transform{Pos: pos, Velocity: vel})
	ecs.Add(e, component.Collision{Radius: radius})
	return e
}

func spawnEnemyAt(s *world.State, pos geom.Vec2, radius float64, vertices int) *ecs.Entity {
	e := spawnAt(s, world.TagEnemy, pos, geom.V(3, 0), radius)
	ecs.Add(e, component.Shape{Radius: radius, Vertices: vertices, Fill: component.RGB(200, 10, 10)})
	ecs.Add(e, component.Score{Points: 100 * int64(vertices)})
	return e
}

func pos(e *ecs.Entity) geom.Vec2 { return ecs.Get[component.Transform](e).Pos }
func vel(e *ecs.Entity) geom.Vec2 { return ecs.Get[component.Transform](e).Velocity }
