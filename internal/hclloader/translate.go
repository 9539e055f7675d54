package hclloader

import (
	"fmt"

	"github.com/vk/calcgrid/internal/config"
	"github.com/vk/calcgrid/internal/schema"
)

// translate converts decoded formula files into the agnostic model, merging
// them in file order. Inputs and nodes share one namespace, since node
// expressions reference both kinds by bare name; any duplicate is an error
// rather than a silent overwrite.
func translate(configs []*schema.FormulaConfig) (*config.Model, error) {
	model := &config.Model{}
	declared := make(map[string]string) // name -> block kind, for error messages

	for _, cfg := range configs {
		for _, in := range cfg.Inputs {
			if kind, exists := declared[in.Name]; exists {
				return nil, fmt.Errorf("input %q already declared as %s", in.Name, kind)
			}
			declared[in.Name] = "input"
			model.Inputs = append(model.Inputs, &config.Input{
				Name:    in.Name,
				Default: in.Default,
			})
		}
		for _, n := range cfg.Nodes {
			if kind, exists := declared[n.Name]; exists {
				return nil, fmt.Errorf("node %q already declared as %s", n.Name, kind)
			}
			declared[n.Name] = "node"
			model.Nodes = append(model.Nodes, &config.Node{
				Name:      n.Name,
				Expr:      n.Expr,
				DeclRange: n.Expr.Range(),
			})
		}
	}

	outputs := make(map[string]struct{})
	for _, cfg := range configs {
		for _, out := range cfg.Outputs {
			if _, exists := outputs[out.Name]; exists {
				return nil, fmt.Errorf("output %q declared twice", out.Name)
			}
			outputs[out.Name] = struct{}{}
			if _, exists := declared[out.Node]; !exists {
				return nil, fmt.Errorf("output %q refers to undeclared node %q", out.Name, out.Node)
			}
			model.Outputs = append(model.Outputs, &config.Output{
				Name: out.Name,
				Node: out.Node,
			})
		}
	}

	return model, nil
}
