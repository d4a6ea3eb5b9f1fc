package mock

import "github.com/fwojciec/siteinfo"

var _ siteinfo.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of siteinfo.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*siteinfo.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*siteinfo.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ siteinfo.EmailScanner = (*EmailScanner)(nil)

// EmailScanner is a mock implementation of siteinfo.EmailScanner.
type EmailScanner struct {
	ScanEmailsFn func(html string) ([]string, error)
}

func (s *EmailScanner) ScanEmails(html string) ([]string, error) {
	return s.ScanEmailsFn(html)
}

var _ siteinfo.LinkClassifier = (*LinkClassifier)(nil)

// LinkClassifier is a mock implementation of siteinfo.LinkClassifier.
type LinkClassifier struct {
	ClassifyFn func(html, baseURL string) (*siteinfo.LinkSet, error)
}

func (c *LinkClassifier) Classify(html, baseURL string) (*siteinfo.LinkSet, error) {
	return c.ClassifyFn(html, baseURL)
}
