// Package generator drives binding generation over directory trees: it
// discovers shader pairs, introspects each through a reflection.Reflector,
// emits the binding next to the vertex shader and formats it.
package generator

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fosdem/glslbind/lib/codegen"
	"github.com/fosdem/glslbind/lib/discovery"
	"github.com/fosdem/glslbind/lib/format"
	"github.com/fosdem/glslbind/lib/log"
	"github.com/fosdem/glslbind/lib/metrics"
	"github.com/fosdem/glslbind/lib/reflection"
	"github.com/fosdem/glslbind/lib/stats"
)

type Options struct {
	// Package forces the package clause of every binding.
	Package       string
	RuntimeImport string
	// ContinueOnError processes the remaining pairs after a failure and
	// returns all failures joined. By default the first failure stops
	// the run.
	ContinueOnError bool
	FormatConfig    format.Config
}

type Generator struct {
	reflector reflection.Reflector
	formatter format.Formatter
	emitter   *codegen.Emitter
	opts      Options
	log       *slog.Logger
	stats     *stats.Stats
}

// New builds a generator. A nil formatter leaves the output unformatted.
func New(r reflection.Reflector, f format.Formatter, opts Options, logger *slog.Logger) (*Generator, error) {
	emitter, err := codegen.New(opts.RuntimeImport)
	if err != nil {
		return nil, err
	}
	return &Generator{
		reflector: r,
		formatter: f,
		emitter:   emitter,
		opts:      opts,
		log:       log.Module(logger, "generator"),
		stats:     stats.New(),
	}, nil
}

// Stats returns the counters accumulated over every Run so far.
func (g *Generator) Stats() *stats.Stats {
	return g.stats
}

// OutputPath is where the binding of p is written.
func OutputPath(p *discovery.ShaderPair) string {
	dir := p.Dir
	if p.VertPath != "" {
		dir = filepath.Dir(p.VertPath)
	}
	return filepath.Join(dir, p.Stem+".go")
}

// Run generates bindings for every pair found under roots. Pairs are
// processed one at a time.
func (g *Generator) Run(roots ...string) error {
	var pairs []discovery.ShaderPair
	for _, root := range roots {
		found, err := discovery.Discover(root)
		if err != nil {
			pe := &PairError{Pair: root, Kind: DiscoveryError, Err: err}
			metrics.PairsFailed.WithLabelValues(DiscoveryError.String()).Inc()
			g.stats.FailedWith(DiscoveryError.String())
			g.report(pe)
			return pe
		}
		pairs = append(pairs, found...)
	}
	g.stats.Discovered(len(pairs))

	g.log.Debug(fmt.Sprintf("found %d shader pairs", len(pairs)))
	for i := range pairs {
		g.log.Debug(pairs[i].String())
	}

	clashes := prefixClashes(pairs)

	var errs []error
	for i := range pairs {
		err := clashes[i]
		if err != nil {
			err = g.fail(&pairs[i], IdentifierError, err)
		} else {
			err = g.ProcessPair(&pairs[i])
		}
		if err == nil {
			continue
		}
		g.report(err)
		if !g.opts.ContinueOnError {
			return err
		}
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// prefixClashes finds pairs whose bindings would land in the same package
// with the same identifier prefix as an earlier pair, e.g. post-fx and
// post_fx. The earlier pair wins.
func prefixClashes(pairs []discovery.ShaderPair) map[int]error {
	clashes := make(map[int]error)
	type key struct{ dir, prefix string }
	seen := make(map[key]string)
	for i := range pairs {
		p := &pairs[i]
		prefix, err := codegen.StemPrefix(p.Stem)
		if err != nil {
			// reported by the emitter
			continue
		}
		k := key{dir: filepath.Dir(OutputPath(p)), prefix: prefix}
		if other, ok := seen[k]; ok {
			clashes[i] = &codegen.IdentifierError{
				Name:   p.Stem,
				Reason: fmt.Sprintf("gives prefix %s, already used by %s in the same directory", prefix, other),
			}
			continue
		}
		seen[k] = p.Stem
	}
	return clashes
}

func (g *Generator) report(err error) {
	var pe *PairError
	if errors.As(err, &pe) {
		g.log.Error("could not generate binding", "pair", pe.Pair, "kind", pe.Kind.String(), "err", pe.Err)
		return
	}
	g.log.Error("could not generate binding", "err", err)
}

func (g *Generator) fail(p *discovery.ShaderPair, kind Kind, err error) error {
	metrics.PairsFailed.WithLabelValues(kind.String()).Inc()
	g.stats.FailedWith(kind.String())
	return &PairError{Pair: p.Name(), Kind: kind, Err: err}
}

// ProcessPair generates the binding of a single pair. Every failure is a
// *PairError.
func (g *Generator) ProcessPair(p *discovery.ShaderPair) error {
	start := time.Now()
	defer func() {
		metrics.PairDuration.Observe(time.Since(start).Seconds())
	}()

	switch {
	case p.VertPath == "" && p.FragPath == "":
		return g.fail(p, PairingError, fmt.Errorf("no shader files for %s", p.Name()))
	case p.FragPath == "":
		return g.fail(p, PairingError, fmt.Errorf("missing fragment shader for %s", p.VertPath))
	case p.VertPath == "":
		return g.fail(p, PairingError, fmt.Errorf("missing vertex shader for %s", p.FragPath))
	}

	vertPath, err := filepath.Abs(p.VertPath)
	if err != nil {
		return g.fail(p, DiscoveryError, fmt.Errorf("somehow, %s is malformed: %w", p.VertPath, err))
	}
	fragPath, err := filepath.Abs(p.FragPath)
	if err != nil {
		return g.fail(p, DiscoveryError, fmt.Errorf("somehow, %s is malformed: %w", p.FragPath, err))
	}

	vertSource, err := os.ReadFile(vertPath)
	if err != nil {
		return g.fail(p, DiscoveryError, fmt.Errorf("could not read vertex shader: %w", err))
	}
	fragSource, err := os.ReadFile(fragPath)
	if err != nil {
		return g.fail(p, DiscoveryError, fmt.Errorf("could not read fragment shader: %w", err))
	}

	program, err := g.reflector.Compile(string(vertSource), string(fragSource))
	if err != nil {
		return g.fail(p, CompileError, err)
	}
	defer program.Delete()

	uniforms, err := program.Uniforms()
	if err != nil {
		return g.fail(p, CompileError, fmt.Errorf("could not list uniforms: %w", err))
	}
	attribs, err := program.AttributesSorted()
	if err != nil {
		return g.fail(p, CompileError, fmt.Errorf("could not list attributes: %w", err))
	}

	outPath := OutputPath(p)
	pkg := g.opts.Package
	if pkg == "" {
		pkg, err = codegen.PackageName(filepath.Dir(outPath))
		if err != nil {
			return g.fail(p, EmitIOError, fmt.Errorf("could not determine package name: %w", err))
		}
	}

	src, err := g.emitter.Emit(&codegen.Binding{
		Package:       pkg,
		Stem:          p.Stem,
		VertPath:      vertPath,
		FragPath:      fragPath,
		VertSource:    string(vertSource),
		FragSource:    string(fragSource),
		Uniforms:      uniforms,
		AttribsSorted: attribs,
	})
	if err != nil {
		return g.fail(p, emitKind(err), err)
	}

	g.log.Info(fmt.Sprintf("writing %s", outPath), "pair", p.Name())
	if err := os.WriteFile(outPath, src, 0o644); err != nil {
		return g.fail(p, EmitIOError, fmt.Errorf("could not write %s: %w", outPath, err))
	}

	if g.formatter != nil {
		summary, err := g.formatter.Format(outPath, g.opts.FormatConfig)
		if err != nil {
			return g.fail(p, FormatterError, err)
		}
		if !summary.HasNoErrors() {
			return g.fail(p, FormatterError, fmt.Errorf("gofmt failed: %s", strings.Join(summary.Errors, "; ")))
		}
		for _, w := range summary.Warnings {
			g.log.Warn(fmt.Sprintf("%s: %s", outPath, w), "pair", p.Name())
		}
	}

	metrics.PairsGenerated.Inc()
	metrics.UniformsEmitted.Add(float64(len(uniforms)))
	metrics.AttributesEmitted.Add(float64(len(attribs)))
	g.stats.Succeeded(len(uniforms), len(attribs))
	return nil
}
