// Command glslbind generates Go bindings for every .vert/.frag pair under
// the given directories.
//
// Usage:
//
//	glslbind [-config glslbind.yaml] [-keep-going] [-v] [dir...]
//
// Directories on the command line replace the roots from the config file.
// When neither names a root, the current directory is used.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/fosdem/glslbind/lib/config"
	"github.com/fosdem/glslbind/lib/format"
	"github.com/fosdem/glslbind/lib/generator"
	"github.com/fosdem/glslbind/lib/glcontext"
	"github.com/fosdem/glslbind/lib/log"
	"github.com/fosdem/glslbind/lib/metrics"
	"github.com/fosdem/glslbind/lib/reflection/glreflect"
)

func init() {
	// The OpenGL stuff must be in one thread
	runtime.LockOSThread()
}

var (
	configPath = flag.String("config", "", "config file (default: built-in defaults)")
	keepGoing  = flag.Bool("keep-going", false, "keep processing shader pairs after a failure")
	verbose    = flag.Bool("v", false, "log every discovered shader pair")
	noColor    = flag.Bool("no-color", false, "disable coloured log output")
)

func main() {
	flag.Parse()
	os.Exit(run())
}

func run() int {
	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Parse(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Config invalid: %s\n", err)
			return 2
		}
	}

	level, _ := cfg.Level()
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(log.NewHandler(os.Stderr, &log.Options{
		HandlerOptions: slog.HandlerOptions{Level: level},
		NoColor:        *noColor,
	}))
	slog.SetDefault(logger)

	roots := flag.Args()
	if len(roots) == 0 {
		roots = cfg.RootPaths()
	}
	if len(roots) == 0 {
		roots = []string{"."}
	}

	kinds := make([]string, 0, len(generator.Kinds))
	for _, k := range generator.Kinds {
		kinds = append(kinds, k.String())
	}
	metrics.Init(kinds)

	ctx, err := glcontext.Create(glcontext.Cfg{
		Major: cfg.Context.GLMajor,
		Minor: cfg.Context.GLMinor,
		Debug: cfg.Context.DebugContext(),
	}, log.Module(logger, "glcontext"))
	if err != nil {
		logger.Error("could not create OpenGL context", "err", err)
		return 1
	}
	defer ctx.Close()

	var formatter format.Formatter
	if cfg.Formatter.IsEnabled() {
		formatter = format.New()
	}

	gen, err := generator.New(glreflect.New(), formatter, generator.Options{
		Package:         cfg.Package,
		RuntimeImport:   cfg.RuntimeImport,
		ContinueOnError: cfg.ContinueOnError || *keepGoing,
		FormatConfig:    cfg.Formatter.FormatConfig(),
	}, logger)
	if err != nil {
		logger.Error("could not set up generator", "err", err)
		return 1
	}

	status := 0
	if err := gen.Run(roots...); err != nil {
		status = 1
	}
	st := gen.Stats()
	logger.Info(st.String(), "elapsed", st.Uptime().Round(time.Millisecond).String())

	if cfg.Metrics.Textfile != "" {
		if err := metrics.WriteTextfile(string(cfg.Metrics.Textfile)); err != nil {
			logger.Warn("could not write metrics", "err", err)
		}
	}
	return status
}
