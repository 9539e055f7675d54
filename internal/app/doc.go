// Package app wires the loader, builder and computation graph into the
// runnable application: load a formula definition, apply input values,
// compute the requested outputs and print them.
package app
