package main

import (
	"context"
	"io"
	"strings"

	"github.com/fwojciec/siteinfo"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Analyzer siteinfo.Analyzer
	Asker    siteinfo.Asker
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Analyze AnalyzeCmd `cmd:"" help:"Analyze a company website"`
	Ask     AskCmd     `cmd:"" help:"Ask a question about a company"`
}

// AnalyzeCmd is the "analyze" subcommand.
type AnalyzeCmd struct {
	URL       string `arg:"" help:"Website URL (must start with http:// or https://)"`
	Engine    string `default:"selectors" enum:"selectors,trafilatura" help:"Content extraction engine (selectors, trafilatura)"`
	NoSummary bool   `help:"Skip AI summarization"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	URL      string `arg:"" help:"Website URL (must start with http:// or https://)"`
	Question string `arg:"" help:"Question to ask about the company"`
	Engine   string `default:"selectors" enum:"selectors,trafilatura" help:"Content extraction engine (selectors, trafilatura)"`
}

// validateURL rejects URLs without an explicit scheme before any network work.
func validateURL(url string) error {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return siteinfo.Errorf(siteinfo.EINVALID, "URL must start with http:// or https://")
	}
	return nil
}
