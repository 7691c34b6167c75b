package ecs

import (
	"slices"

	"github.com/kamstrup/intmap"
)

// Manager owns every entity. Creation is buffered until the next Flush;
// destruction is a mark on the entity that Flush turns into removal from
// every index.
type Manager struct {
	entities []*Entity
	pending  []*Entity
	tags     *tagIndex
	byID     *intmap.Map[EntityID, *Entity]
	nextID   EntityID
}

func NewManager() *Manager {
	return &Manager{
		entities: make([]*Entity, 0, 256),
		pending:  make([]*Entity, 0, 64),
		tags:     newTagIndex(),
		byID:     intmap.New[EntityID, *Entity](256),
		nextID:   NoEntity + 1,
	}
}

// Create allocates a new active entity with no components. It is visible
// through Tagged and Get immediately, and through Entities after the next Flush.
func (m *Manager) Create(tag string) *Entity {
	e := newEntity(m.nextID, tag)
	m.nextID++
	m.pending = append(m.pending, e)
	m.tags.add(e)
	m.byID.Put(e.id, e)
	return e
}

// Flush admits pending entities to the live set and removes every inactive
// entity from all indexes. Call it once per frame before any system runs.
func (m *Manager) Flush() {
	if len(m.pending) > 0 {
		m.entities = append(m.entities, m.pending...)
		clear(m.pending)
		m.pending = m.pending[:0]
	}

	for _, e := range m.entities {
		if !e.active {
			m.byID.Del(e.id)
		}
	}
	m.entities = removeInactive(m.entities)
	m.tags.purge()
}

// Get resolves an id to its entity. It fails once the entity has been
// destroyed and flushed.
func (m *Manager) Get(id EntityID) (*Entity, bool) {
	return m.byID.Get(id)
}

// Entities returns every live entity in creation order. The slice is owned
// by the Manager and must not be modified; it is valid until the next Flush.
func (m *Manager) Entities() []*Entity {
	return m.entities
}

// Tagged returns the entities carrying tag, including ones created since the
// last Flush. Unknown tags yield an empty list. Same ownership rules as Entities.
func (m *Manager) Tagged(tag string) []*Entity {
	return m.tags.get(tag)
}

// Tags returns every tag that has been created or queried, sorted.
func (m *Manager) Tags() []string {
	return m.tags.tags()
}

func (m *Manager) Len() int        { return len(m.entities) }
func (m *Manager) PendingLen() int { return len(m.pending) }

func removeInactive(list []*Entity) []*Entity {
	return slices.DeleteFunc(list, func(e *Entity) bool { return !e.active })
}
