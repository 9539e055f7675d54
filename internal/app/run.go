package app

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/calcgrid/internal/builder"
	"github.com/vk/calcgrid/internal/compgraph"
	"github.com/vk/calcgrid/internal/ctxlog"
)

// Run executes the main application logic: load the formula, build the
// graph, apply input assignments, compute and print results.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	model, err := a.loader.Load(ctx, a.config.FormulaPath)
	if err != nil {
		return fmt.Errorf("failed to load formula: %w", err)
	}

	result, err := builder.Build(ctx, model)
	if err != nil {
		return fmt.Errorf("failed to build computation graph: %w", err)
	}
	a.logger.Debug("Computation graph ready.", "node_count", result.Graph.Len())

	for _, set := range a.config.Sets {
		name, value, err := parseAssignment(set)
		if err != nil {
			return err
		}
		if err := result.Graph.SetInput(name, value); err != nil {
			return fmt.Errorf("cannot set input: %w", err)
		}
		a.logger.Debug("Input value set.", "name", name)
	}

	if a.config.Target != "" {
		id, ok := result.IDs[a.config.Target]
		if !ok {
			return fmt.Errorf("no node named %q in the formula", a.config.Target)
		}
		return a.computeAndPrint(result.Graph, a.config.Target, id)
	}

	if len(model.Outputs) == 0 {
		a.logger.Warn("Formula declares no outputs and no -target was given; nothing to compute.")
		return nil
	}
	for _, out := range model.Outputs {
		if err := a.computeAndPrint(result.Graph, out.Name, result.Outputs[out.Name]); err != nil {
			return err
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// computeAndPrint evaluates one node and writes `name = value` to the
// result writer.
func (a *App) computeAndPrint(g *compgraph.Graph[cty.Value], name string, id compgraph.NodeID) error {
	v, err := g.Compute(id)
	if err != nil {
		if errors.Is(err, compgraph.ErrUnsetInput) {
			return fmt.Errorf("cannot compute %q: %w (provide a value with -set name=value)", name, err)
		}
		return fmt.Errorf("cannot compute %q: %w", name, err)
	}
	fmt.Fprintf(a.outW, "%s = %s\n", name, formatValue(v))
	return nil
}

// parseAssignment splits a raw `name=value` flag into an input name and a
// cty value. Values are numeric; the formula surface is numbers end to end.
func parseAssignment(raw string) (string, cty.Value, error) {
	name, valueStr, found := strings.Cut(raw, "=")
	if !found || name == "" {
		return "", cty.NilVal, fmt.Errorf("invalid -set %q: expected name=value", raw)
	}
	f, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return "", cty.NilVal, fmt.Errorf("invalid -set %q: %q is not a number", raw, valueStr)
	}
	return name, cty.NumberFloatVal(f), nil
}

// formatValue renders a computed value for display.
func formatValue(v cty.Value) string {
	if v.IsNull() {
		return "null"
	}
	switch v.Type() {
	case cty.Number:
		f, _ := v.AsBigFloat().Float64()
		return strconv.FormatFloat(f, 'g', -1, 64)
	case cty.Bool:
		return strconv.FormatBool(v.True())
	case cty.String:
		return strconv.Quote(v.AsString())
	default:
		return v.GoString()
	}
}
