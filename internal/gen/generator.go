package gen

import (
	"context"
	"fmt"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"

	"companion-generator/internal/analyze"
	"companion-generator/internal/logger"
	"companion-generator/internal/plan"
)

// DefaultHeader marks emitted units as tool output.
const DefaultHeader = "// <auto-generated/>"

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// Header lines are written verbatim at the top of every unit.
	Header []string
	// Usings are the namespaces imported by every unit.
	Usings []string
	// Jobs bounds the number of entries processed at once. Zero means GOMAXPROCS.
	Jobs int
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Header: []string{DefaultHeader},
		Usings: []string{"System"},
	}
}

// Generator renders plan entries into source files.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents one emitted source file.
type GeneratedFile struct {
	// Filename is the output key (e.g., "Point_Partial.cs").
	Filename string
	// Content is the printed compilation unit.
	Content []byte
}

// Generate renders every entry of p. Files come back in plan order. When ctx
// is cancelled no further entries are started and ctx.Err() is returned.
func (g *Generator) Generate(ctx context.Context, p *plan.Plan) ([]GeneratedFile, error) {
	log := logger.FromContext(ctx)

	files := make([]GeneratedFile, len(p.Entries))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(g.jobs())

	for i := range p.Entries {
		if egCtx.Err() != nil {
			break
		}

		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}

			e := &p.Entries[i]

			file, err := g.GenerateEntry(e)
			if err != nil {
				return fmt.Errorf("generating %s for %s: %w", e.Key, e.Decl.ID, err)
			}

			log.Debug("generated", "file", file.Filename, "members", len(e.Members))

			files[i] = file

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return files, nil
}

// GenerateEntry synthesizes, wraps and prints a single entry.
func (g *Generator) GenerateEntry(e *plan.Entry) (GeneratedFile, error) {
	members, err := Synthesize(e)
	if err != nil {
		return GeneratedFile{}, err
	}

	content, err := Emit(&Unit{
		Header: g.config.Header,
		Usings: UnitUsings(g.config.Usings, e.Members),
		Root:   Wrap(e.Decl, members),
	})
	if err != nil {
		return GeneratedFile{}, err
	}

	return GeneratedFile{Filename: e.Key, Content: content}, nil
}

// UnitUsings returns the configured usings followed by the sorted usings of
// the files declaring members whose type names an external type. Declared
// types and keywords print fully qualified, so only external names need them.
func UnitUsings(configured []string, members []analyze.Member) []string {
	var extra []string

	for _, m := range members {
		if !m.Type.HasExternal() {
			continue
		}

		for _, u := range m.Usings {
			if !slices.Contains(configured, u) {
				extra = append(extra, u)
			}
		}
	}

	slices.Sort(extra)

	return append(slices.Clone(configured), slices.Compact(extra)...)
}

func (g *Generator) jobs() int {
	if g.config.Jobs > 0 {
		return g.config.Jobs
	}

	return runtime.GOMAXPROCS(0)
}
