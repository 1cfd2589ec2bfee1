// Package engine runs one generation pass over a program snapshot:
// binding, marker resolution and synthesis. A run keeps no state, so running
// twice over the same snapshot yields the same files and diagnostics.
package engine

import (
	"context"
	"fmt"

	"companion-generator/internal/analyze"
	"companion-generator/internal/diagnostic"
	"companion-generator/internal/gen"
	"companion-generator/internal/logger"
	"companion-generator/internal/plan"
	"companion-generator/internal/snapshot"
)

// Config holds the settings of every stage.
type Config struct {
	Resolution plan.ResolutionConfig
	Generator  gen.GeneratorConfig
}

// DefaultConfig returns the default stage settings.
func DefaultConfig() Config {
	return Config{
		Resolution: plan.DefaultConfig(),
		Generator:  gen.DefaultGeneratorConfig(),
	}
}

// Result is the outcome of a run.
type Result struct {
	// Files are the emitted units in declaration order.
	Files []gen.GeneratedFile
	// Diagnostics from every stage, merged.
	Diagnostics diagnostic.Diagnostics
	// Graph is the bound symbol graph.
	Graph *analyze.TypeGraph
	// Plan is the resolved plan the files were generated from.
	Plan *plan.Plan
}

// Run binds prog, resolves markers and generates every entry. Domain problems
// end up in Result.Diagnostics; the returned error is reserved for
// cancellation and internal failures.
func Run(ctx context.Context, prog *snapshot.Program, cfg Config) (*Result, error) {
	log := logger.FromContext(ctx)

	graph, diags := analyze.Bind(prog)
	log.Debug("bound snapshot", "declarations", graph.Len(), "diagnostics", diags.Count())

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p, err := plan.NewResolver(graph, cfg.Resolution).Resolve()
	if err != nil {
		return nil, fmt.Errorf("resolving markers: %w", err)
	}

	log.Debug("resolved markers", "entries", len(p.Entries), "diagnostics", p.Diagnostics.Count())

	diags.Merge(p.Diagnostics)

	files, err := gen.NewGenerator(cfg.Generator).Generate(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("generating: %w", err)
	}

	log.Debug("generated", "files", len(files))

	return &Result{
		Files:       files,
		Diagnostics: diags,
		Graph:       graph,
		Plan:        p,
	}, nil
}
