// Package schema defines the HCL shapes of formula files. These structs
// mirror the file format exactly; the loader translates them into the
// format-agnostic model in the config package.
package schema

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// Input represents an `input` block: an externally supplied leaf value,
// optionally with a default.
type Input struct {
	Name    string     `hcl:"name,label"`
	Default *cty.Value `hcl:"default,optional"`
}

// Node represents a `node` block: a derived value computed by an expression
// over previously declared inputs and nodes.
type Node struct {
	Name string         `hcl:"name,label"`
	Expr hcl.Expression `hcl:"expr"`
}

// Output represents an `output` block: a named result the host prints after
// evaluation.
type Output struct {
	Name string `hcl:"name,label"`
	Node string `hcl:"node"`
}

// FormulaConfig represents the top-level structure of a formula file,
// containing all declared inputs, nodes and outputs.
type FormulaConfig struct {
	Inputs  []*Input  `hcl:"input,block"`
	Nodes   []*Node   `hcl:"node,block"`
	Outputs []*Output `hcl:"output,block"`
}
