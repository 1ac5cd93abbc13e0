package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/tensorsched/internal/config"
	"github.com/vk/tensorsched/internal/ctxlog"
	"github.com/vk/tensorsched/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load orchestrates the entire HCL loading process. It is agnostic to the
// origin of the paths and parses any valid block from any file.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	model := &config.Model{
		Targets: make(map[string]*config.TargetDef),
	}

	hclFiles, err := fsutil.FindFilesByExtension(paths, ".hcl")
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(hclFiles))

	parser := hclparse.NewParser()

	for _, file := range hclFiles {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		// Translate and merge all discovered blocks into the model.
		for _, tgt := range root.Targets {
			def, err := l.translateTarget(tgt)
			if err != nil {
				return nil, fmt.Errorf("in %s: %w", file, err)
			}
			if _, dup := model.Targets[def.Name]; dup {
				return nil, fmt.Errorf("in %s: target %q defined more than once", file, def.Name)
			}
			model.Targets[def.Name] = def
		}
		for _, m := range root.Models {
			def, err := l.translateModel(m)
			if err != nil {
				return nil, fmt.Errorf("in %s: %w", file, err)
			}
			model.Models = append(model.Models, def)
		}
	}

	logger.Debug("HCL loading complete.", "targets", len(model.Targets), "models", len(model.Models))
	return model, nil
}
