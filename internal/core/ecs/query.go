package ecs

// EachActive calls fn for every entity in list that is still active when it
// is reached. Entities destroyed earlier in the same pass are skipped.
func EachActive(list []*Entity, fn func(*Entity)) {
	for _, e := range list {
		if e.active {
			fn(e)
		}
	}
}

// EachWith calls fn for every active entity in list that carries T.
func EachWith[T Component](list []*Entity, fn func(*Entity, *T)) {
	for _, e := range list {
		if !e.active {
			continue
		}
		if c, bit := slot[T](e); e.mask&bit != 0 {
			fn(e, c)
		}
	}
}

// Count returns how many entities in list are active.
func Count(list []*Entity) int {
	n := 0
	for _, e := range list {
		if e.active {
			n++
		}
	}
	return n
}
