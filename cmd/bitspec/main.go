package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"github.com/wippyai/bitspec/compiler"
	"github.com/wippyai/bitspec/field"
	"github.com/wippyai/bitspec/random"
	"github.com/wippyai/bitspec/spec"
)

func main() {
	var (
		template    = flag.Bool("template", false, "Write the spec template and exit")
		dir         = flag.String("dir", "specs", "Directory holding spec files")
		specName    = flag.String("spec", "", "Name of the spec to compile (without .yaml)")
		format      = flag.String("format", "rust", "Output format: rust, c, struct, csrc, wit, json")
		seed        = flag.Int64("seed", 0, "Seed for the record key (0 uses crypto/rand)")
		precision   = flag.String("precision", "f32", "Precision of quantized fields: f32 or f64")
		verbose     = flag.Bool("v", false, "Verbose logging")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	kind, ok := field.ParseKind(*precision)
	if !ok || !kind.IsReal() {
		fmt.Fprintf(os.Stderr, "Error: unknown precision %q\n", *precision)
		os.Exit(1)
	}
	opts := []compiler.Option{compiler.WithPrecision(kind)}
	if *seed != 0 {
		opts = append(opts, compiler.WithKeySource(random.NewSeeded(*seed)))
	}

	tui := *interactive || (*specName == "" && !*template && term.IsTerminal(int(os.Stdin.Fd())))

	logger, err := newLogger(*verbose, tui)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	compiler.SetLogger(logger.Named("compiler"))
	spec.SetLogger(logger.Named("spec"))

	if *template {
		path, err := spec.WriteTemplate(*dir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("template created at %s\n", path)
		return
	}

	if tui {
		if err := runInteractive(*dir, compiler.New(opts...)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *specName == "" {
		fmt.Fprintln(os.Stderr, "Usage: bitspec -spec <name> [-dir specs] [-format rust|c|struct|csrc|wit|json] [-seed N]")
		fmt.Fprintln(os.Stderr, "       bitspec -template [-dir specs]")
		fmt.Fprintln(os.Stderr, "       bitspec -i  (interactive mode)")
		os.Exit(1)
	}

	if err := run(logger, compiler.New(opts...), *dir, *specName, *format); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger logs warnings to stderr, everything with -v. The TUI owns the
// terminal, so it only gets a logger when -v is given.
func newLogger(verbose, tui bool) (*zap.Logger, error) {
	if tui && !verbose {
		return zap.NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

func run(logger *zap.Logger, c *compiler.Compiler, dir, name, format string) error {
	l, warn, err := compileSpec(c, dir, name)
	if err != nil {
		return err
	}
	if warn != nil {
		logger.Warn("layout truncated", zap.Error(warn))
	}

	out, err := render(l, format)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}
