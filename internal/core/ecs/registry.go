package ecs

import "sort"

// tagIndex groups entities by tag. Each list keeps insertion order and may
// hold entities that are still pending admission to the live set.
type tagIndex struct {
	lists map[string][]*Entity
}

func newTagIndex() *tagIndex {
	return &tagIndex{lists: make(map[string][]*Entity, 8)}
}

func (t *tagIndex) add(e *Entity) {
	t.lists[e.tag] = append(t.lists[e.tag], e)
}

// get returns the list for tag, creating an empty one for unknown tags.
func (t *tagIndex) get(tag string) []*Entity {
	list, ok := t.lists[tag]
	if !ok {
		list = make([]*Entity, 0)
		t.lists[tag] = list
	}
	return list
}

// purge drops inactive entities from every list.
func (t *tagIndex) purge() {
	for tag, list := range t.lists {
		t.lists[tag] = removeInactive(list)
	}
}

func (t *tagIndex) tags() []string {
	out := make([]string, 0, len(t.lists))
	for tag := range t.lists {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}
