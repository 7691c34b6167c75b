package system

import "time"

// Phase defines execution ordering within a single frame.
type Phase int

const (
	PhaseFlush     Phase = iota // 0: admit created entities, purge destroyed ones
	PhaseDispatch               // 1: deliver last frame's events
	PhaseSpawn                  // 2: timed enemy spawns
	PhaseMovement               // 3: integrate velocities, bounce, clamp
	PhaseCollision              // 4: hits, fragmentation, score
	PhaseLifespan               // 5: fade and expire
	PhaseScore                  // 6: high-score bookkeeping
	PhasePersist                // 7: periodic high-score save
)

var phaseNames = [...]string{"flush", "dispatch", "spawn", "movement", "collision", "lifespan", "score", "persist"}

func (p Phase) String() string {
	if p >= 0 && int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}

// System is the interface every simulation system implements.
type System interface {
	Phase() Phase
	Update(dt time.Duration)
}

// Toggleable is implemented by systems that can be switched off at runtime.
// The Runner skips a system whose Enabled reports false.
type Toggleable interface {
	Enabled() bool
}
