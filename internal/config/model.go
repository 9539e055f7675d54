package config

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// Model is the unified, format-agnostic representation of a formula
// definition. Slices preserve declaration order; the builder relies on it
// to keep graph construction append-only.
type Model struct {
	Inputs  []*Input
	Nodes   []*Node
	Outputs []*Output
}

// Input is the format-agnostic representation of an `input` block.
type Input struct {
	Name    string
	Default *cty.Value
}

// Node is the format-agnostic representation of a `node` block. Expr stays
// unevaluated; the builder compiles it into the node's operation.
type Node struct {
	Name      string
	Expr      hcl.Expression
	DeclRange hcl.Range
}

// Output is the format-agnostic representation of an `output` block.
type Output struct {
	Name string
	Node string
}
