package dropdown

// NavKey is a list navigation command.
type NavKey int

const (
	NavNone NavKey = iota
	NavNext
	NavPrev
	NavFirst
	NavLast
)

// ListNavigation computes roving-focus moves over a registry. Disabled items
// and tombstones are skipped.
type ListNavigation struct {
	Loop bool // wrap past either end
}

// Next returns the index reached from current by key, or current when no
// navigable item exists in that direction.
func (l ListNavigation) Next(r *Registry, current int, key NavKey) int {
	n := r.Len()
	if n == 0 {
		return NoIndex
	}

	switch key {
	case NavFirst:
		return l.first(r)
	case NavLast:
		return l.last(r)
	case NavNext:
		if !r.Contains(current) {
			return l.first(r)
		}
		for i := current + 1; i < n; i++ {
			if r.Navigable(i) {
				return i
			}
		}
		if l.Loop {
			return l.first(r)
		}
		return current
	case NavPrev:
		if !r.Contains(current) {
			return l.last(r)
		}
		for i := current - 1; i >= 0; i-- {
			if r.Navigable(i) {
				return i
			}
		}
		if l.Loop {
			return l.last(r)
		}
		return current
	}
	return current
}

func (l ListNavigation) first(r *Registry) int {
	for i := 0; i < r.Len(); i++ {
		if r.Navigable(i) {
			return i
		}
	}
	return NoIndex
}

func (l ListNavigation) last(r *Registry) int {
	for i := r.Len() - 1; i >= 0; i-- {
		if r.Navigable(i) {
			return i
		}
	}
	return NoIndex
}
