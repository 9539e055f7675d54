package compgraph

import "errors"

// AddInputNode appends a leaf node with an unset cache slot and returns its
// id. The value is supplied later through RegisterInput + SetInput, or
// directly via SetInputByID.
func (g *Graph[T]) AddInputNode() NodeID {
	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, node[T]{})
	return id
}

// AddNode appends an operation node computing op over the values of inputs,
// in the given order, and wires the reverse edges. Every id in inputs must
// have been returned by this graph already; because a node can only reference
// lower ids, the topology stays acyclic by construction.
func (g *Graph[T]) AddNode(inputs []NodeID, op Op[T]) (NodeID, error) {
	if op == nil {
		return 0, errors.New("operation node requires a non-nil op")
	}
	for _, in := range inputs {
		if !g.valid(in) {
			return 0, &InvalidReferenceError{ID: in, Reason: "no such node in this graph"}
		}
	}

	id := NodeID(len(g.nodes))
	ins := make([]NodeID, len(inputs))
	copy(ins, inputs)
	for _, in := range ins {
		g.nodes[in].dependents = append(g.nodes[in].dependents, id)
	}
	g.nodes = append(g.nodes, node[T]{inputs: ins, op: op})
	return id, nil
}

// RegisterInput binds a symbolic name to a leaf node so external mutators
// can address it by name. Registering the same name twice is an error, and
// only input nodes may be bound: allowing an operation node here would let
// SetInput clobber a computed cache slot.
func (g *Graph[T]) RegisterInput(name string, id NodeID) error {
	if !g.valid(id) {
		return &InvalidReferenceError{ID: id, Reason: "no such node in this graph"}
	}
	if !g.isInput(id) {
		return &InvalidReferenceError{ID: id, Reason: "not an input node"}
	}
	if _, exists := g.inputs[name]; exists {
		return &DuplicateInputError{Name: name}
	}
	g.inputs[name] = id
	return nil
}
