package game

import (
	"math"

	"github.com/polywars/arena/internal/component"
	"github.com/polywars/arena/internal/core/ecs"
	"github.com/polywars/arena/internal/world"
)

// Autopilot plays headless runs: it fires at the nearest full-size enemy on
// a fixed cadence and steps away from whatever threat is closest.
type Autopilot struct {
	FireEvery  int     // frames between shots
	DodgeRange float64 // threats closer than this trigger evasion
}

// Drive sets the player's input and fires for the coming frame.
func (a Autopilot) Drive(g *Game) {
	p := g.Player()
	at := ecs.Get[component.Transform](p).Pos

	ents := g.world.Entities
	target := nearest(ents.Tagged(world.TagEnemy), p)
	threat := nearest(ents.Tagged(world.TagSmallEnemy), p)
	if target != nil && (threat == nil || dist(target, p) < dist(threat, p)) {
		threat = target
	}

	var in component.Input
	if threat != nil && dist(threat, p) < a.DodgeRange {
		from := ecs.Get[component.Transform](threat).Pos
		in.Left = from.X > at.X
		in.Right = from.X < at.X
		in.Up = from.Y > at.Y
		in.Down = from.Y < at.Y
	}

	if target != nil && a.FireEvery > 0 && g.world.Frame%a.FireEvery == 0 {
		in.Shoot = true
		g.Shoot(ecs.Get[component.Transform](target).Pos)
	}
	g.SetInput(in)
}

func nearest(list []*ecs.Entity, p *ecs.Entity) *ecs.Entity {
	var best *ecs.Entity
	bestDist := math.Inf(1)
	ecs.EachActive(list, func(e *ecs.Entity) {
		if d := dist(e, p); d < bestDist {
			best, bestDist = e, d
		}
	})
	return best
}

func dist(a, b *ecs.Entity) float64 {
	return ecs.Get[component.Transform](a).Pos.Dist(ecs.Get[component.Transform](b).Pos)
}
