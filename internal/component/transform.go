package component

import "github.com/polywars/arena/internal/geom"

// Transform stores where an entity is and how it moves each frame.
// Pure data. Systems do all the mutation.
type Transform struct {
	Pos      geom.Vec2
	Velocity geom.Vec2
	Angle    float64 // degrees, visual spin only
}
