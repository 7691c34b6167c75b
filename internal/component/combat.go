package component

// Collision is the hit-test circle of an entity, independent of Shape.Radius.
type Collision struct {
	Radius float64
}

// Score is the number of points awarded when the entity is destroyed by the player.
type Score struct {
	Points int64
}

// Lifespan counts down once per frame; the entity fades and is destroyed at the end.
type Lifespan struct {
	Total     int
	Remaining int
}

// NewLifespan returns a full lifespan of the given number of frames.
func NewLifespan(total int) Lifespan {
	return Lifespan{Total: total, Remaining: total}
}

// Input holds the player's directional and fire flags, set from outside the core.
type Input struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
	Shoot bool
}
