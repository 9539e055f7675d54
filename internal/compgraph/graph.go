package compgraph

// NodeID is an opaque handle to a node inside one Graph's arena. Ids are
// only meaningful for the graph that returned them.
type NodeID int

// Op is the pure function held by an operation node. It receives the values
// of the node's inputs in declared order. Returning an error aborts the
// Compute call that invoked it without caching a result for the node.
type Op[T any] func(args []T) (T, error)

// node is a single arena slot. It is un-exported to enforce interaction with
// the graph via the public API (using NodeIDs), not by direct struct access.
type node[T any] struct {
	// value together with cached forms the cache slot. cached == false means
	// "stale, needs recomputation".
	value  T
	cached bool
	// inputs holds the ordered upstream ids. Positional: order binds the
	// op's arguments. Always empty for input nodes.
	inputs []NodeID
	// dependents holds the reverse edges, appended to when a downstream
	// operation node is constructed and never mutated afterwards.
	dependents []NodeID
	// op is nil exactly for input nodes.
	op Op[T]
}

// Graph owns the node arena and the input registry. The zero value is not
// usable; construct with New.
type Graph[T any] struct {
	// nodes is the arena, indexed by construction order.
	nodes []node[T]
	// inputs maps registered external names to leaf node ids.
	inputs map[string]NodeID
}

// New creates an empty graph.
func New[T any]() *Graph[T] {
	return &Graph[T]{
		inputs: make(map[string]NodeID),
	}
}

// Len returns the number of nodes in the arena.
func (g *Graph[T]) Len() int {
	return len(g.nodes)
}

// valid reports whether id refers to a node in this graph's arena.
func (g *Graph[T]) valid(id NodeID) bool {
	return id >= 0 && int(id) < len(g.nodes)
}

// isInput reports whether id is a leaf node. Callers must have checked valid.
func (g *Graph[T]) isInput(id NodeID) bool {
	return g.nodes[id].op == nil
}

// InputID returns the node id registered under name, if any.
func (g *Graph[T]) InputID(name string) (NodeID, bool) {
	id, ok := g.inputs[name]
	return id, ok
}

// Cached returns the node's cached value without triggering evaluation. The
// second return is false when the cache slot is stale or was never filled.
func (g *Graph[T]) Cached(id NodeID) (T, bool) {
	var zero T
	if !g.valid(id) || !g.nodes[id].cached {
		return zero, false
	}
	return g.nodes[id].value, true
}

// Dependencies returns the ordered input ids of the given node.
func (g *Graph[T]) Dependencies(id NodeID) ([]NodeID, error) {
	if !g.valid(id) {
		return nil, &InvalidReferenceError{ID: id, Reason: "no such node in this graph"}
	}
	deps := make([]NodeID, len(g.nodes[id].inputs))
	copy(deps, g.nodes[id].inputs)
	return deps, nil
}

// Dependents returns the ids of the nodes that read this node as an input,
// in the order they were constructed.
func (g *Graph[T]) Dependents(id NodeID) ([]NodeID, error) {
	if !g.valid(id) {
		return nil, &InvalidReferenceError{ID: id, Reason: "no such node in this graph"}
	}
	dependents := make([]NodeID, len(g.nodes[id].dependents))
	copy(dependents, g.nodes[id].dependents)
	return dependents, nil
}

// inputName finds the registered name for a leaf id, if one exists.
func (g *Graph[T]) inputName(id NodeID) string {
	for name, inputID := range g.inputs {
		if inputID == id {
			return name
		}
	}
	return ""
}
