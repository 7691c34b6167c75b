package ecs

import "github.com/polywars/arena/internal/component"

// EntityID is a stable handle to an entity. IDs are handed out in strictly
// increasing order and never reused during the lifetime of a Manager.
type EntityID uint64

// NoEntity is never assigned to a real entity.
const NoEntity EntityID = 0

func (id EntityID) IsZero() bool { return id == NoEntity }

// Entity is an identity plus one slot for each of the fixed component types.
// Every slot always has storage; the presence mask says which ones are set.
type Entity struct {
	id     EntityID
	tag    string
	active bool
	mask   mask

	transform component.Transform
	shape     component.Shape
	collision component.Collision
	score     component.Score
	lifespan  component.Lifespan
	input     component.Input
}

func newEntity(id EntityID, tag string) *Entity {
	return &Entity{id: id, tag: tag, active: true}
}

func (e *Entity) ID() EntityID   { return e.id }
func (e *Entity) Tag() string    { return e.tag }
func (e *Entity) IsActive() bool { return e.active }

// Destroy marks the entity dead. It stays reachable through every index
// until the next Manager.Flush.
func (e *Entity) Destroy() {
	e.active = false
}
