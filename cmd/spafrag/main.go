package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/spafrag"
	"github.com/fwojciec/spafrag/convert"
	"github.com/fwojciec/spafrag/fs"
	"github.com/fwojciec/spafrag/goquery"
	"github.com/fwojciec/spafrag/regexp"
	spaslog "github.com/fwojciec/spafrag/slog"
	"github.com/fwojciec/spafrag/yaml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// ConfigPath is used when no --config flag is given.
	// Ignored when the file does not exist.
	ConfigPath string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigPath: defaultConfigPath(),
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("spafrag"),
		kong.Description("Convert standalone HTML pages into SPA fragments"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'spafrag --help' to see available commands")
	}

	if len(args) == 1 && (args[0] == "help" || args[0] == "--help" || args[0] == "-h") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := m.loadConfig(cli.Config)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", spafrag.ErrorMessage(err))
		return err
	}

	logger := newLogger(stderr, cli.Verbose)
	deps.Config = cfg

	cmd := kongCtx.Command()
	switch {
	case strings.HasPrefix(cmd, "convert"):
		if cli.Convert.Root != "" {
			cfg.Root = cli.Convert.Root
		}

		var sink spafrag.PageSink = fs.NewInPlaceSink()
		switch {
		case cli.Convert.DryRun:
			sink = fs.NewDryRunSink()
		case cli.Convert.Out != "":
			sink = fs.NewMirrorSink(cfg.Root, cli.Convert.Out)
		}

		converter := &convert.Converter{
			Config: cfg,
			Markup: regexp.NewMarkup(),
			Pages:  fs.NewReader(),
			Sink:   sink,
		}
		deps.Runner = &convert.Runner{
			Finder:    spaslog.NewLoggingPageFinder(fs.NewFinder(cfg), logger),
			Converter: spaslog.NewLoggingPageConverter(converter, logger),
		}

	case strings.HasPrefix(cmd, "audit"):
		if cli.Audit.Root != "" {
			cfg.Root = cli.Audit.Root
		}

		deps.Finder = spaslog.NewLoggingPageFinder(fs.NewFinder(cfg), logger)
		deps.Pages = fs.NewReader()
		deps.Auditor = spaslog.NewLoggingAuditor(goquery.NewAuditor(cfg), logger)
	}

	return kongCtx.Run(deps)
}

// loadConfig reads the configuration from path, falling back to the
// default config file and then to the built-in defaults.
func (m *Main) loadConfig(path string) (*spafrag.Config, error) {
	if path != "" {
		return yaml.LoadConfig(path)
	}
	if m.ConfigPath != "" {
		if _, err := os.Stat(m.ConfigPath); err == nil {
			return yaml.LoadConfig(m.ConfigPath)
		}
	}
	return spafrag.DefaultConfig(), nil
}

func defaultConfigPath() string {
	if path := os.Getenv("SPAFRAG_CONFIG"); path != "" {
		return path
	}
	return "spafrag.yaml"
}

// newLogger logs to stderr when verbose and discards output otherwise.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
