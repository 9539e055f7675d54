package compgraph

import "fmt"

// frame is one entry of the explicit evaluation stack. expanded records
// whether the node's stale inputs have already been pushed above it.
type frame struct {
	id       NodeID
	expanded bool
}

// Compute returns the up-to-date value of the node, recomputing only the
// stale portion of its ancestry and caching every intermediate result. A
// cached node is returned as-is without re-invoking its op.
//
// Evaluation walks an explicit work stack instead of recursing, so memory
// use is bounded by the longest dependency chain on the heap rather than by
// goroutine stack growth on deep, programmatically built graphs.
//
// On error (an unset input, or an op failing) the call aborts without
// touching the failing node's cache slot; ancestors that finished before the
// failure keep their freshly cached values and the graph remains usable.
func (g *Graph[T]) Compute(id NodeID) (T, error) {
	var zero T
	if !g.valid(id) {
		return zero, &InvalidReferenceError{ID: id, Reason: "no such node in this graph"}
	}

	stack := []frame{{id: id}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		n := &g.nodes[top.id]

		if n.cached {
			stack = stack[:len(stack)-1]
			continue
		}

		if n.op == nil {
			// A stale leaf means the caller queried a value that was
			// never supplied.
			return zero, &UnsetInputError{ID: top.id, Name: g.inputName(top.id)}
		}

		if !top.expanded {
			top.expanded = true
			// Push stale inputs in reverse so they evaluate in declared
			// order. Inputs cached by an earlier branch of this same call
			// are skipped, which is what makes shared ancestors in diamond
			// topologies evaluate exactly once per query.
			for i := len(n.inputs) - 1; i >= 0; i-- {
				if in := n.inputs[i]; !g.nodes[in].cached {
					stack = append(stack, frame{id: in})
				}
			}
			continue
		}

		// All inputs are cached once the frame comes back expanded: edges
		// point at strictly lower ids, so the pushed sub-frames completed.
		args := make([]T, len(n.inputs))
		for i, in := range n.inputs {
			args[i] = g.nodes[in].value
		}
		result, err := n.op(args)
		if err != nil {
			return zero, fmt.Errorf("computing node %d: %w", top.id, err)
		}
		n.value = result
		n.cached = true
		stack = stack[:len(stack)-1]
	}

	return g.nodes[id].value, nil
}
