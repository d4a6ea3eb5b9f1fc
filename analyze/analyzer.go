// Package analyze orchestrates the site analysis pipeline: the
// homepage, then the discovered About and Contact pages, strictly in
// sequence. Failures on any page degrade only that page's
// contribution to the result.
package analyze

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/fwojciec/siteinfo"
)

// Ensure Analyzer implements siteinfo.Analyzer at compile time.
var _ siteinfo.Analyzer = (*Analyzer)(nil)

// Analyzer drives fetch, classification and extraction for one site.
// All collaborators are injected; Summarizer may be nil to disable
// summarization. Each call builds fresh containers, so one Analyzer
// can serve many analyses.
type Analyzer struct {
	Fetcher    siteinfo.Fetcher
	Emails     siteinfo.EmailScanner
	Links      siteinfo.LinkClassifier
	Extractor  siteinfo.Extractor
	Summarizer siteinfo.Summarizer
	Logger     *slog.Logger
}

// Analyze runs the full pipeline for url. A homepage failure yields a
// default-filled result with the elapsed time recorded; an error is
// returned only for an empty url.
func (a *Analyzer) Analyze(ctx context.Context, url string) (*siteinfo.Analysis, error) {
	if url == "" {
		return nil, siteinfo.Errorf(siteinfo.EINVALID, "url required")
	}

	begin := time.Now()
	result := &siteinfo.Analysis{
		URL:   url,
		Title: siteinfo.TitleMissing,
	}
	emails := make(map[string]bool)

	home, err := a.Fetcher.Fetch(ctx, url)
	if err != nil {
		a.logger().Warn("homepage fetch failed", "url", url, "error", siteinfo.ErrorMessage(err))
		result.Elapsed = time.Since(begin)
		return result, nil
	}

	extracted, err := a.Extractor.Extract(home.HTML)
	if err != nil {
		a.logger().Warn("homepage parse failed", "url", url, "error", siteinfo.ErrorMessage(err))
		result.Elapsed = time.Since(begin)
		return result, nil
	}
	if title := strings.TrimSpace(extracted.Title); title != "" {
		result.Title = title
	}

	a.mergeEmails(emails, home.HTML, url)

	links := a.classify(home.HTML, home.FinalURL)
	result.SocialLinks = append([]string(nil), links.Social...)
	sort.Strings(result.SocialLinks)

	if links.About != "" {
		a.processAbout(ctx, links.About, result, emails)
	} else {
		a.logger().Debug("no about link found", "url", url)
	}

	if links.Contact != "" {
		a.processContact(ctx, links.Contact, emails)
	} else {
		a.logger().Debug("no contact link found", "url", url)
	}

	result.Emails = sortedKeys(emails)
	result.Elapsed = time.Since(begin)
	return result, nil
}

// processAbout fetches the About page, extracts and summarizes its
// content, and merges its emails. Every failure is page-local.
func (a *Analyzer) processAbout(ctx context.Context, url string, result *siteinfo.Analysis, emails map[string]bool) {
	page, err := a.Fetcher.Fetch(ctx, url)
	if err != nil {
		a.logger().Warn("about page fetch failed", "url", url, "error", siteinfo.ErrorMessage(err))
		return
	}

	extracted, err := a.Extractor.Extract(page.HTML)
	switch {
	case err != nil:
		a.logger().Warn("about page parse failed", "url", url, "error", siteinfo.ErrorMessage(err))
	case extracted.Text == "":
		a.logger().Debug("no main content on about page", "url", url)
	default:
		result.AboutText = extracted.Text
		result.AboutSummary = a.summarize(ctx, extracted.Text)
	}

	a.mergeEmails(emails, page.HTML, url)
}

// processContact fetches the Contact page and merges its emails only.
func (a *Analyzer) processContact(ctx context.Context, url string, emails map[string]bool) {
	page, err := a.Fetcher.Fetch(ctx, url)
	if err != nil {
		a.logger().Warn("contact page fetch failed", "url", url, "error", siteinfo.ErrorMessage(err))
		return
	}
	a.mergeEmails(emails, page.HTML, url)
}

// summarize runs the optional summarizer on text of at least
// MinSummaryInput characters. A failed attempt is recorded as an
// "Error:"-prefixed marker so the presentation layer can render it
// distinctly from a real summary.
func (a *Analyzer) summarize(ctx context.Context, text string) string {
	if a.Summarizer == nil || len(text) < siteinfo.MinSummaryInput {
		return ""
	}
	summary, err := a.Summarizer.Summarize(ctx, text)
	if err != nil {
		a.logger().Warn("summarization failed", "error", siteinfo.ErrorMessage(err))
		return "Error: " + siteinfo.ErrorMessage(err)
	}
	return summary
}

// classify runs link classification, treating any failure as an empty
// link set.
func (a *Analyzer) classify(html, baseURL string) *siteinfo.LinkSet {
	links, err := a.Links.Classify(html, baseURL)
	if err != nil {
		a.logger().Warn("link classification failed", "url", baseURL, "error", siteinfo.ErrorMessage(err))
		return &siteinfo.LinkSet{}
	}
	return links
}

// mergeEmails scans html and merges the findings into set.
func (a *Analyzer) mergeEmails(set map[string]bool, html, url string) {
	found, err := a.Emails.ScanEmails(html)
	if err != nil {
		a.logger().Warn("email scan failed", "url", url, "error", siteinfo.ErrorMessage(err))
		return
	}
	for _, e := range found {
		set[e] = true
	}
}

func (a *Analyzer) logger() *slog.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return slog.Default()
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
