package compgraph

// Invalidate marks the node and every transitive dependent stale. The walk
// uses an explicit stack and a visited set so diamond-shaped fan-in is
// visited once per node, keeping the operation linear in edge count.
func (g *Graph[T]) Invalidate(id NodeID) error {
	if !g.valid(id) {
		return &InvalidReferenceError{ID: id, Reason: "no such node in this graph"}
	}

	var zero T
	visited := make([]bool, len(g.nodes))
	stack := []NodeID{id}
	for len(stack) > 0 {
		next := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[next] {
			continue
		}
		visited[next] = true

		n := &g.nodes[next]
		n.cached = false
		n.value = zero
		stack = append(stack, n.dependents...)
	}
	return nil
}

// SetInput stores a new value for the named input. Dependents are
// invalidated before the value lands, unconditionally: setting an input to
// its current value still forces recomputation downstream. Value equality is
// not something the graph can judge for arbitrary T, and callers who want
// the short-circuit can compare before calling.
func (g *Graph[T]) SetInput(name string, value T) error {
	id, ok := g.inputs[name]
	if !ok {
		return &UnknownInputError{Name: name}
	}
	g.setInput(id, value)
	return nil
}

// SetInputByID is SetInput for callers that kept the handle instead of
// registering a name.
func (g *Graph[T]) SetInputByID(id NodeID, value T) error {
	if !g.valid(id) {
		return &InvalidReferenceError{ID: id, Reason: "no such node in this graph"}
	}
	if !g.isInput(id) {
		return &InvalidReferenceError{ID: id, Reason: "not an input node"}
	}
	g.setInput(id, value)
	return nil
}

func (g *Graph[T]) setInput(id NodeID, value T) {
	// The id is known valid here, so Invalidate cannot fail.
	_ = g.Invalidate(id)
	n := &g.nodes[id]
	n.value = value
	n.cached = true
}
