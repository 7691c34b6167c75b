package game

import (
	"github.com/polywars/arena/internal/component"
	"github.com/polywars/arena/internal/core/ecs"
)

// EntityView is what the presentation layer needs to draw one entity.
type EntityView struct {
	ID        ecs.EntityID
	Tag       string
	Transform component.Transform
	Shape     component.Shape
}

// Snapshot is the per-frame outbound state.
type Snapshot struct {
	Frame     int
	Score     int64
	HighScore int64
	Paused    bool
	Entities  []EntityView
}

// Snapshot copies the drawable state of every active live entity, in
// creation order.
func (g *Game) Snapshot() Snapshot {
	ws := g.world
	snap := Snapshot{
		Frame:     ws.Frame,
		Score:     ws.Score,
		HighScore: ws.HighScore,
		Paused:    ws.Paused,
		Entities:  make([]EntityView, 0, ws.Entities.Len()),
	}
	ecs.EachActive(ws.Entities.Entities(), func(e *ecs.Entity) {
		snap.Entities = append(snap.Entities, EntityView{
			ID:        e.ID(),
			Tag:       e.Tag(),
			Transform: *ecs.Get[component.Transform](e),
			Shape:     *ecs.Get[component.Shape](e),
		})
	})
	return snap
}
