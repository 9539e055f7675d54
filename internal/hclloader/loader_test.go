package hclloader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/calcgrid/internal/config"
)

// writeFiles lays the given name->contents map out in a temp dir and returns it.
func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, contents := range files {
		err := os.WriteFile(filepath.Join(dir, name), []byte(contents), 0600)
		require.NoError(t, err)
	}
	return dir
}

// declSummary projects a model into comparable shape (expressions carry
// unexported state, so they are compared by presence only).
type declSummary struct {
	Inputs  []string
	Nodes   []string
	Outputs map[string]string
}

func summarize(m *config.Model) declSummary {
	s := declSummary{Outputs: map[string]string{}}
	for _, in := range m.Inputs {
		s.Inputs = append(s.Inputs, in.Name)
	}
	for _, n := range m.Nodes {
		s.Nodes = append(s.Nodes, n.Name)
	}
	for _, out := range m.Outputs {
		s.Outputs[out.Name] = out.Node
	}
	return s
}

func TestLoad_SingleFile(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"formula.hcl": `
			input "x1" {}
			input "x2" {
				default = 2.5
			}

			node "total" {
				expr = x1 + x2
			}

			output "total" {
				node = "total"
			}
		`,
	})

	model, err := NewLoader().Load(context.Background(), dir)
	require.NoError(t, err)

	want := declSummary{
		Inputs:  []string{"x1", "x2"},
		Nodes:   []string{"total"},
		Outputs: map[string]string{"total": "total"},
	}
	if diff := cmp.Diff(want, summarize(model)); diff != "" {
		t.Fatalf("model mismatch (-want +got):\n%s", diff)
	}

	require.Nil(t, model.Inputs[0].Default)
	require.NotNil(t, model.Inputs[1].Default)
	assert.True(t, model.Inputs[1].Default.RawEquals(cty.NumberFloatVal(2.5)))

	require.NotNil(t, model.Nodes[0].Expr)
}

func TestLoad_DirectFilePath(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"formula.hcl": `input "x" {}`,
	})

	model, err := NewLoader().Load(context.Background(), filepath.Join(dir, "formula.hcl"))
	require.NoError(t, err)
	require.Len(t, model.Inputs, 1)
}

func TestLoad_MergesFilesInOrder(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a_inputs.hcl": `
			input "x" {}
		`,
		"b_nodes.hcl": `
			node "doubled" {
				expr = x * 2
			}
		`,
	})

	model, err := NewLoader().Load(context.Background(), dir)
	require.NoError(t, err)
	assert.Len(t, model.Inputs, 1)
	assert.Len(t, model.Nodes, 1)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		hcl     string
		wantErr string
	}{
		{
			name: "duplicate input",
			hcl: `
				input "x" {}
				input "x" {}
			`,
			wantErr: `input "x" already declared`,
		},
		{
			name: "node shadowing an input",
			hcl: `
				input "x" {}
				node "x" {
					expr = 1
				}
			`,
			wantErr: `node "x" already declared as input`,
		},
		{
			name: "duplicate output",
			hcl: `
				input "x" {}
				output "x_out" { node = "x" }
				output "x_out" { node = "x" }
			`,
			wantErr: `output "x_out" declared twice`,
		},
		{
			name: "output referencing unknown node",
			hcl: `
				input "x" {}
				output "y" { node = "y" }
			`,
			wantErr: `undeclared node "y"`,
		},
		{
			name:    "syntax error",
			hcl:     `input "x" {`,
			wantErr: "failed to parse",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir := writeFiles(t, map[string]string{"formula.hcl": tc.hcl})

			_, err := NewLoader().Load(context.Background(), dir)
			require.Error(t, err)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestLoad_NoFiles(t *testing.T) {
	_, err := NewLoader().Load(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.ErrorContains(t, err, "no .hcl formula files")
}
