package main

import (
	"fmt"

	"github.com/fwojciec/siteinfo"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	if err := validateURL(c.URL); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", siteinfo.ErrorMessage(err))
		return err
	}

	// Scrape first so the agent can ground its answer in the site's own
	// about text before reaching for web search.
	result, err := deps.Analyzer.Analyze(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", siteinfo.ErrorMessage(err))
		return err
	}

	name := siteinfo.CompanyName(result.Title, result.URL)
	fmt.Fprintf(deps.Stdout, "Asking about: %s\n\n", name)

	answer, err := deps.Asker.Ask(deps.Ctx, siteinfo.AskRequest{
		URL:      c.URL,
		Question: c.Question,
		Context:  result.AboutText,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", siteinfo.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, answer)
	return nil
}
