package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/grader"
	"github.com/fwojciec/grader/fs"
	graderhttp "github.com/fwojciec/grader/http"
	"github.com/fwojciec/grader/rod"
	graderslog "github.com/fwojciec/grader/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	// Run reports its own errors on stderr.
	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Fetcher used for --url. When nil, one is built from the flags.
	Fetcher grader.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
// Any returned error has already been written to stderr.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	err := m.run(ctx, args, stdout, stderr)
	if err != nil {
		fmt.Fprintln(stderr, diagnostic(err))
	}
	return err
}

func (m *Main) run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("grader"),
		kong.Description("Check an HTML page for the elements listed in a checklist"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	cmd := &CheckCmd{
		Checks: cli.Checks,
		File:   cli.File,
		URL:    cli.URL,
	}

	// Missing inputs end the run before anything is launched or parsed.
	if err := cmd.Validate(); err != nil {
		return err
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Logger: newLogger(stderr, cli.Debug),
	}
	deps.Results = graderslog.NewLoggingResultWriter(fs.NewResultFile(cli.Results), deps.Logger)

	if cmd.Source().Remote() {
		fetcher := m.Fetcher
		if fetcher == nil {
			if fetcher, err = newFetcher(cli); err != nil {
				return err
			}
		}
		defer fetcher.Close()

		deps.Fetcher = graderslog.NewLoggingFetcher(fetcher, deps.Logger)
	}

	return cmd.Run(deps)
}

func newFetcher(cli *CLI) (grader.Fetcher, error) {
	if !cli.Render {
		return graderhttp.NewFetcher(graderhttp.WithTimeout(cli.Timeout)), nil
	}

	fetcher, err := rod.NewFetcher(rod.WithFetchTimeout(cli.Timeout))
	if err != nil {
		return nil, fmt.Errorf("failed to start browser (Chrome or Chromium must be installed): %w", err)
	}
	return fetcher, nil
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	if !debug {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// diagnostic formats err for the terminal.
func diagnostic(err error) string {
	switch grader.ErrorCode(err) {
	case grader.ENOTFOUND:
		return grader.ErrorMessage(err) + ". Exiting."
	case grader.EINTERNAL:
		return "error: " + err.Error()
	default:
		return "error: " + grader.ErrorMessage(err)
	}
}
