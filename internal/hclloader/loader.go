package hclloader

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/calcgrid/internal/config"
	"github.com/vk/calcgrid/internal/ctxlog"
	"github.com/vk/calcgrid/internal/fsutil"
	"github.com/vk/calcgrid/internal/schema"
)

// Loader is the HCL implementation of config.Loader.
type Loader struct{}

// NewLoader creates a new HCL formula loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load finds and parses all .hcl files under path into a single Model.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading formula definition.", "path", path)

	files, err := fsutil.FindFilesByExtension(path, ".hcl")
	if err != nil {
		return nil, fmt.Errorf("failed to find formula files in %s: %w", path, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl formula files found in %s", path)
	}

	parser := hclparse.NewParser()
	var configs []*schema.FormulaConfig
	for _, file := range files {
		cfg, err := decodeFormulaFile(ctx, parser, file)
		if err != nil {
			return nil, err
		}
		configs = append(configs, cfg)
	}

	model, err := translate(configs)
	if err != nil {
		return nil, err
	}

	logger.Debug("Formula definition loaded.",
		"files", len(files),
		"inputs", len(model.Inputs),
		"nodes", len(model.Nodes),
		"outputs", len(model.Outputs))
	return model, nil
}

// decodeFormulaFile parses and decodes a single HCL formula file.
func decodeFormulaFile(ctx context.Context, parser *hclparse.Parser, filePath string) (*schema.FormulaConfig, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Decoding formula file.", "path", filePath)

	file, diags := parser.ParseHCLFile(filePath)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %s", filePath, diags.Error())
	}

	var cfg schema.FormulaConfig
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %s", filePath, diags.Error())
	}

	return &cfg, nil
}
