// Package compgraph implements an incremental, memoized computation graph:
// a directed acyclic graph in which leaf nodes hold externally supplied
// input values and every other node holds a pure function of its upstream
// nodes' values.
//
// All nodes live in a single arena owned by the Graph and are addressed by
// NodeID handles. The topology is append-only: an operation node can only
// reference ids that the same graph already minted, so edges always point
// at strictly lower indices and cycles cannot be constructed.
//
// Setting an input marks its transitive dependents stale; querying a node
// recomputes only the stale part of its ancestry and caches the results.
// A Graph is not safe for concurrent use.
package compgraph
