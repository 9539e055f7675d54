// Package config holds the format-agnostic representation of a formula
// definition, decoupling the graph builder from the concrete file format.
package config
