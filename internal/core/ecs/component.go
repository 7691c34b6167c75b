package ecs

import "github.com/polywars/arena/internal/component"

// Component is the closed set of component types an Entity can carry.
type Component interface {
	component.Transform | component.Shape | component.Collision |
		component.Score | component.Lifespan | component.Input
}

// mask has one presence bit per component type.
type mask uint8

const (
	hasTransform mask = 1 << iota
	hasShape
	hasCollision
	hasScore
	hasLifespan
	hasInput
)

// slot resolves T to its storage on e. The switch is over a closed type set,
// so there is no runtime registry and no reflection.
func slot[T Component](e *Entity) (*T, mask) {
	var p any
	var bit mask
	switch any((*T)(nil)).(type) {
	case *component.Transform:
		p, bit = &e.transform, hasTransform
	case *component.Shape:
		p, bit = &e.shape, hasShape
	case *component.Collision:
		p, bit = &e.collision, hasCollision
	case *component.Score:
		p, bit = &e.score, hasScore
	case *component.Lifespan:
		p, bit = &e.lifespan, hasLifespan
	case *component.Input:
		p, bit = &e.input, hasInput
	}
	return p.(*T), bit
}

// Has reports whether component T has been added to e.
func Has[T Component](e *Entity) bool {
	_, bit := slot[T](e)
	return e.mask&bit != 0
}

// Add replaces the T slot with c, marks it present and returns a pointer to
// the stored value. The pointer stays valid for the life of the entity.
func Add[T Component](e *Entity, c T) *T {
	p, bit := slot[T](e)
	*p = c
	e.mask |= bit
	return p
}

// Get returns the T slot whether or not it is present. An absent slot holds
// the zero value, so callers that care must check Has first.
func Get[T Component](e *Entity) *T {
	p, _ := slot[T](e)
	return p
}

// Remove resets the T slot to its zero value and clears its presence bit.
func Remove[T Component](e *Entity) {
	p, bit := slot[T](e)
	var zero T
	*p = zero
	e.mask &^= bit
}
