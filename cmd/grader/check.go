package main

import (
	"fmt"

	"github.com/fwojciec/grader"
	"github.com/fwojciec/grader/fs"
	"github.com/fwojciec/grader/goquery"
	graderslog "github.com/fwojciec/grader/slog"
)

// Source returns where the page under test comes from.
func (c *CheckCmd) Source() grader.Source {
	return grader.Source{Path: c.File, URL: c.URL}
}

// Validate checks that the local inputs exist.
// The page file is only required when no URL is given.
func (c *CheckCmd) Validate() error {
	if err := fs.RequireFile(c.Checks); err != nil {
		return err
	}
	if src := c.Source(); !src.Remote() {
		return fs.RequireFile(src.Path)
	}
	return nil
}

// Run executes the check command.
func (c *CheckCmd) Run(deps *Dependencies) error {
	if err := c.Validate(); err != nil {
		return err
	}

	src := c.Source()
	doc, err := c.openDocument(deps, src)
	if err != nil {
		return err
	}

	checklist, err := fs.ReadChecklist(c.Checks)
	if err != nil {
		return err
	}

	if deps.Logger != nil {
		doc = graderslog.NewLoggingDocument(doc, deps.Logger)
	}

	report, err := grader.Evaluate(doc, checklist)
	if err != nil {
		return err
	}
	if deps.Logger != nil {
		deps.Logger.Info("evaluated",
			"source", src.String(),
			"selectors", report.Len(),
			"passed", report.Passed(),
		)
	}

	data, err := grader.Serialize(report)
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "%s\n", data)

	// Only URL runs leave an artifact behind.
	if src.Remote() {
		if err := deps.Results.WriteResults(deps.Ctx, data); err != nil {
			return fmt.Errorf("writing results: %w", err)
		}
	}

	return nil
}

func (c *CheckCmd) openDocument(deps *Dependencies, src grader.Source) (grader.Document, error) {
	var doc *goquery.Document
	var err error
	if src.Remote() {
		doc, err = goquery.FromRemote(deps.Ctx, deps.Fetcher, src.URL)
	} else {
		doc, err = goquery.FromFile(src.Path)
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}
