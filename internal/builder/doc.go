// Package builder compiles a formula model into an executable computation
// graph. Inputs become registered leaf nodes; each `node` block becomes an
// operation node whose dependencies are discovered implicitly from the
// variables its expression references.
//
// Nodes are created in declaration order and may only reference names
// declared before them, which keeps graph construction append-only and the
// resulting topology acyclic by construction.
package builder
