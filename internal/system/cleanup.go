package system

import (
	"time"

	coresys "github.com/polywars/arena/internal/core/system"
	"github.com/polywars/arena/internal/world"
)

// FlushSystem admits last frame's new entities and purges the ones destroyed
// last frame. Phase 0 (Flush). Always runs first and cannot be toggled off.
type FlushSystem struct {
	world *world.State
}

func NewFlushSystem(ws *world.State) *FlushSystem {
	return &FlushSystem{world: ws}
}

func (s *FlushSystem) Phase() coresys.Phase { return coresys.PhaseFlush }

func (s *FlushSystem) Update(_ time.Duration) {
	s.world.Entities.Flush()
}

// DispatchSystem delivers the events emitted during the previous frame.
// Phase 1 (Dispatch).
type DispatchSystem struct {
	world *world.State
}

func NewDispatchSystem(ws *world.State) *DispatchSystem {
	return &DispatchSystem{world: ws}
}

func (s *DispatchSystem) Phase() coresys.Phase { return coresys.PhaseDispatch }

func (s *DispatchSystem) Update(_ time.Duration) {
	if s.world.Bus == nil {
		return
	}
	s.world.Bus.SwapBuffers()
	s.world.Bus.DispatchAll()
}
