package ecs_test

import (
	"testing"

	"github.com/polywars/arena/internal/component"
	"github.com/polywars/arena/internal/core/ecs"
	"github.com/polywars/arena/internal/geom"
	"github.com/stretchr/testify/assert"
)

func TestComponentSlots(t *testing.T) {
	m := ecs.NewManager()
	e := m.Create("player")

	assert.False(t, ecs.Has[component.Transform](e))
	assert.False(t, ecs.Has[component.Input](e))

	tr := ecs.Add(e, component.Transform{Pos: geom.V(10, 20)})
	assert.True(t, ecs.Has[component.Transform](e))
	assert.False(t, ecs.Has[component.Shape](e), "adding one slot must not mark others")

	tr.Velocity = geom.V(1, 1)
	assert.Equal(t, geom.V(1, 1), ecs.Get[component.Transform](e).Velocity, "Add returns the stored slot")

	ecs.Add(e, component.Transform{Pos: geom.V(5, 5)})
	assert.Equal(t, component.Transform{Pos: geom.V(5, 5)}, *ecs.Get[component.Transform](e), "Add replaces the whole slot")

	ecs.Remove[component.Transform](e)
	assert.False(t, ecs.Has[component.Transform](e))
	assert.Equal(t, component.Transform{}, *ecs.Get[component.Transform](e))
}

func TestAbsentSlotReadsZero(t *testing.T) {
	e := ecs.NewManager().Create("enemy")

	assert.Equal(t, component.Collision{}, *ecs.Get[component.Collision](e))
	assert.Equal(t, component.Score{}, *ecs.Get[component.Score](e))
	assert.Equal(t, component.Lifespan{}, *ecs.Get[component.Lifespan](e))
	assert.False(t, ecs.Has[component.Score](e))
}

func TestAllSlotsIndependent(t *testing.T) {
	e := ecs.NewManager().Create("enemy")

	ecs.Add(e, component.Transform{Angle: 1})
	ecs.Add(e, component.Shape{Radius: 2, Vertices: 3})
	ecs.Add(e, component.Collision{Radius: 4})
	ecs.Add(e, component.Score{Points: 500})
	ecs.Add(e, component.NewLifespan(60))
	ecs.Add(e, component.Input{Shoot: true})

	assert.True(t, ecs.Has[component.Transform](e))
	assert.True(t, ecs.Has[component.Shape](e))
	assert.True(t, ecs.Has[component.Collision](e))
	assert.True(t, ecs.Has[component.Score](e))
	assert.True(t, ecs.Has[component.Lifespan](e))
	assert.True(t, ecs.Has[component.Input](e))

	ecs.Remove[component.Score](e)
	assert.False(t, ecs.Has[component.Score](e))
	assert.True(t, ecs.Has[component.Lifespan](e))
	assert.Equal(t, 4.0, ecs.Get[component.Collision](e).Radius)
	assert.Equal(t, 60, ecs.Get[component.Lifespan](e).Remaining)
}
