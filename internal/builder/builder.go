package builder

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"

	"github.com/vk/calcgrid/internal/compgraph"
	"github.com/vk/calcgrid/internal/config"
	"github.com/vk/calcgrid/internal/ctxlog"
	"github.com/vk/calcgrid/internal/hclloader"
)

// Result holds the compiled graph together with the name resolution tables
// the host needs to address nodes.
type Result struct {
	Graph *compgraph.Graph[cty.Value]
	// IDs maps every declared name (inputs and nodes) to its graph id.
	IDs map[string]compgraph.NodeID
	// Outputs maps output names to the ids of the nodes they expose, in
	// the order given by the model's Outputs slice.
	Outputs map[string]compgraph.NodeID
}

// Build compiles the model into a computation graph.
func Build(ctx context.Context, model *config.Model) (*Result, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Building computation graph from formula model.")

	g := compgraph.New[cty.Value]()
	ids := make(map[string]compgraph.NodeID)
	funcs := hclloader.Functions()

	for _, in := range model.Inputs {
		if _, exists := ids[in.Name]; exists {
			return nil, fmt.Errorf("duplicate declaration of %q", in.Name)
		}
		id := g.AddInputNode()
		if err := g.RegisterInput(in.Name, id); err != nil {
			return nil, fmt.Errorf("input %q: %w", in.Name, err)
		}
		ids[in.Name] = id
		if in.Default != nil {
			if err := g.SetInput(in.Name, *in.Default); err != nil {
				return nil, fmt.Errorf("default for input %q: %w", in.Name, err)
			}
		}
	}

	for _, n := range model.Nodes {
		if _, exists := ids[n.Name]; exists {
			return nil, fmt.Errorf("duplicate declaration of %q", n.Name)
		}
		depNames, err := referencedNames(n, ids)
		if err != nil {
			return nil, err
		}
		inputs := make([]compgraph.NodeID, len(depNames))
		for i, name := range depNames {
			inputs[i] = ids[name]
		}

		id, err := g.AddNode(inputs, exprOp(n.Expr, depNames, funcs))
		if err != nil {
			return nil, fmt.Errorf("node %q: %w", n.Name, err)
		}
		ids[n.Name] = id
		logger.Debug("Added operation node.", "name", n.Name, "deps", depNames)
	}

	outputs := make(map[string]compgraph.NodeID, len(model.Outputs))
	for _, out := range model.Outputs {
		id, exists := ids[out.Node]
		if !exists {
			return nil, fmt.Errorf("output %q refers to undeclared node %q", out.Name, out.Node)
		}
		outputs[out.Name] = id
	}

	logger.Debug("Computation graph built.", "node_count", g.Len())
	return &Result{Graph: g, IDs: ids, Outputs: outputs}, nil
}

// referencedNames extracts the node names an expression depends on, in
// first-reference order without duplicates. Referencing a name that has not
// been declared yet (including the node itself) is an error; this restriction
// is what makes cycles impossible to express.
func referencedNames(n *config.Node, ids map[string]compgraph.NodeID) ([]string, error) {
	var names []string
	seen := make(map[string]struct{})
	for _, traversal := range n.Expr.Variables() {
		name := traversal.RootName()
		if _, exists := ids[name]; !exists {
			if name == n.Name {
				return nil, fmt.Errorf("%s: node %q cannot reference itself", traversal.SourceRange(), n.Name)
			}
			return nil, fmt.Errorf("%s: reference to undeclared node %q (nodes may only reference names declared before them)", traversal.SourceRange(), name)
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names, nil
}

// exprOp compiles an HCL expression into the graph operation evaluating it.
// The positional arguments are bound back to their names in the expression's
// evaluation context.
func exprOp(expr hcl.Expression, depNames []string, funcs map[string]function.Function) compgraph.Op[cty.Value] {
	return func(args []cty.Value) (cty.Value, error) {
		vars := make(map[string]cty.Value, len(args))
		for i, name := range depNames {
			vars[name] = args[i]
		}
		v, diags := expr.Value(&hcl.EvalContext{
			Variables: vars,
			Functions: funcs,
		})
		if diags.HasErrors() {
			return cty.NilVal, fmt.Errorf("evaluating expression: %s", diags.Error())
		}
		return v, nil
	}
}
