package control

// Group updates a list of controllers in a fixed order.
type Group struct {
	updaters []Updater
}

// NewGroup creates a group of updaters.
func NewGroup(updaters ...Updater) *Group {
	return &Group{updaters: append([]Updater(nil), updaters...)}
}

// Add appends u to the group. Part of builder functionality.
func (g *Group) Add(u Updater) *Group {
	g.updaters = append(g.updaters, u)
	return g
}

// Len is the count of updaters in the group.
func (g *Group) Len() int {
	return len(g.updaters)
}

// Update updates every member of the group and reports if any of them
// wrote to its channel. A member panicking is traced and counts as not
// dirty; the remaining members are updated regardless.
func (g *Group) Update(global float64) bool {
	dirty := false
	for i, u := range g.updaters {
		if g.update(i, u, global) {
			dirty = true
		}
	}
	return dirty
}

func (g *Group) update(i int, u Updater, global float64) (dirty bool) {
	defer func() {
		if r := recover(); r != nil {
			tracer().Errorf("update #%d failed at t=%g: %v", i, global, r)
			dirty = false
		}
	}()
	return u.Update(global)
}
