package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/siteinfo"
)

// aboutPreviewLimit caps the about text echoed to the terminal.
const aboutPreviewLimit = 3000

// Run executes the analyze command.
func (c *AnalyzeCmd) Run(deps *Dependencies) error {
	if err := validateURL(c.URL); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", siteinfo.ErrorMessage(err))
		return err
	}

	result, err := deps.Analyzer.Analyze(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", siteinfo.ErrorMessage(err))
		return err
	}

	name := siteinfo.CompanyName(result.Title, result.URL)
	fmt.Fprintf(deps.Stdout, "Results for: %s\n", name)
	fmt.Fprintf(deps.Stdout, "Source: %s (%.2fs)\n", result.URL, result.Elapsed.Seconds())

	if result.AboutSummary != "" {
		if strings.HasPrefix(result.AboutSummary, "Error:") {
			fmt.Fprintf(deps.Stdout, "\nAI Summary unavailable. %s\n", result.AboutSummary)
		} else {
			fmt.Fprintf(deps.Stdout, "\nAI Summary:\n%s\n", result.AboutSummary)
		}
	}

	fmt.Fprintf(deps.Stdout, "\nEmails (%d):\n", len(result.Emails))
	if len(result.Emails) == 0 {
		fmt.Fprintln(deps.Stdout, "  none found")
	}
	for _, email := range result.Emails {
		fmt.Fprintf(deps.Stdout, "  %s\n", email)
	}

	fmt.Fprintf(deps.Stdout, "\nSocial links (%d):\n", len(result.SocialLinks))
	if len(result.SocialLinks) == 0 {
		fmt.Fprintln(deps.Stdout, "  none found")
	}
	for _, link := range result.SocialLinks {
		fmt.Fprintf(deps.Stdout, "  %s\n", link)
	}

	if result.AboutText != "" {
		fmt.Fprintf(deps.Stdout, "\nAbout:\n%s\n", preview(result.AboutText, aboutPreviewLimit))
	}

	return nil
}

func preview(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	return text[:limit] + "..."
}
