package system

import (
	"time"

	"github.com/polywars/arena/internal/component"
	"github.com/polywars/arena/internal/core/ecs"
	coresys "github.com/polywars/arena/internal/core/system"
	"github.com/polywars/arena/internal/world"
)

// LifespanSystem counts down every entity with a Lifespan, fading its colors
// in proportion to the time left and destroying it when time runs out.
// Phase 5 (Lifespan).
type LifespanSystem struct {
	world *world.State
}

func NewLifespanSystem(ws *world.State) *LifespanSystem {
	return &LifespanSystem{world: ws}
}

func (s *LifespanSystem) Phase() coresys.Phase { return coresys.PhaseLifespan }
func (s *LifespanSystem) Enabled() bool        { return s.world.Systems.Lifespan }

func (s *LifespanSystem) Update(_ time.Duration) {
	ecs.EachWith(s.world.Entities.Entities(), func(e *ecs.Entity, l *component.Lifespan) {
		if l.Remaining <= 1 {
			e.Destroy()
			return
		}
		l.Remaining--
		alpha := uint8(float64(l.Remaining) / float64(l.Total) * 255)
		sh := ecs.Get[component.Shape](e)
		sh.Fill = sh.Fill.WithAlpha(alpha)
		sh.Outline = sh.Outline.WithAlpha(alpha)
	})
}
