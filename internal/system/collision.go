package system

import (
	"time"

	"github.com/polywars/arena/internal/component"
	"github.com/polywars/arena/internal/core/ecs"
	"github.com/polywars/arena/internal/core/event"
	coresys "github.com/polywars/arena/internal/core/system"
	"github.com/polywars/arena/internal/geom"
	"github.com/polywars/arena/internal/world"
	"go.uber.org/zap"
)

// Collides reports whether the collision circles of a and b touch or overlap.
func Collides(a, b *ecs.Entity) bool {
	return geom.CirclesOverlap(
		ecs.Get[component.Transform](a).Pos, ecs.Get[component.Collision](a).Radius,
		ecs.Get[component.Transform](b).Pos, ecs.Get[component.Collision](b).Radius,
	)
}

// CollisionSystem resolves bullet hits and player hits. Phase 4 (Collision).
//
// A bullet stops at the first enemy it hits, but is checked against every
// fragment in the same pass, so one bullet can score several overlapping
// fragments in a single frame.
type CollisionSystem struct {
	world *world.State
	log   *zap.Logger
}

func NewCollisionSystem(ws *world.State) *CollisionSystem {
	return &CollisionSystem{world: ws, log: ws.Log.Named("collision")}
}

func (s *CollisionSystem) Phase() coresys.Phase { return coresys.PhaseCollision }
func (s *CollisionSystem) Enabled() bool        { return s.world.Systems.Collision }

func (s *CollisionSystem) Update(_ time.Duration) {
	ws := s.world
	ents := ws.Entities

	for _, b := range ents.Tagged(world.TagBullet) {
		if !b.IsActive() {
			continue
		}
		for _, e := range ents.Tagged(world.TagEnemy) {
			if !e.IsActive() || !Collides(b, e) {
				continue
			}
			points := ecs.Get[component.Score](e).Points
			n := ws.SpawnSmallEnemies(e)
			ws.AddScore(points)
			e.Destroy()
			b.Destroy()
			event.Emit(ws.Bus, event.EnemyKilled{EntityID: e.ID(), Points: points, Fragments: n})
			break
		}
		if !b.IsActive() {
			continue
		}
		for _, e := range ents.Tagged(world.TagSmallEnemy) {
			if !e.IsActive() || !Collides(b, e) {
				continue
			}
			points := ecs.Get[component.Score](e).Points
			ws.AddScore(points)
			e.Destroy()
			b.Destroy()
			event.Emit(ws.Bus, event.SmallEnemyKilled{EntityID: e.ID(), Points: points})
		}
	}

	for _, e := range ents.Tagged(world.TagEnemy) {
		if !e.IsActive() {
			continue
		}
		p := ws.Player()
		if !Collides(e, p) {
			continue
		}
		ws.SpawnSmallEnemies(e)
		e.Destroy()
		s.hitPlayer(p, e)
	}

	for _, e := range ents.Tagged(world.TagSmallEnemy) {
		if !e.IsActive() {
			continue
		}
		p := ws.Player()
		if !Collides(e, p) {
			continue
		}
		e.Destroy()
		s.hitPlayer(p, e)
	}
}

func (s *CollisionSystem) hitPlayer(p, by *ecs.Entity) {
	lost := s.world.Score
	s.world.ResetPlayer(p)
	event.Emit(s.world.Bus, event.PlayerHit{By: by.ID(), ByTag: by.Tag(), LostScore: lost})
	s.log.Debug("player hit",
		zap.String("by", by.Tag()),
		zap.Int64("lost_score", lost),
		zap.Int("frame", s.world.Frame),
	)
}
