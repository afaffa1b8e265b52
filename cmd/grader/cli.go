package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/grader"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Logger  *slog.Logger
	Fetcher grader.Fetcher
	Results grader.ResultWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Checks  string        `short:"c" default:"checks.json" help:"Path to checks.json"`
	File    string        `short:"f" default:"index.html" help:"Path to index.html"`
	URL     string        `short:"u" help:"URL of the page to check; takes precedence over --file"`
	Results string        `short:"o" default:"results.txt" help:"File the results are written to when checking a URL"`
	Render  bool          `help:"Render the page in headless Chrome before checking"`
	Timeout time.Duration `short:"t" default:"30s" help:"Fetch timeout (0 disables)"`
	Debug   bool          `help:"Log fetches and selector queries to stderr"`
}

// CheckCmd grades one page against one checklist.
type CheckCmd struct {
	Checks string
	File   string
	URL    string
}
