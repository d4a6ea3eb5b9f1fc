// Package trafilatura provides a siteinfo.Extractor backed by the
// go-trafilatura content extraction library. It is an alternative to
// the selector-based goquery extractor for pages whose markup defeats
// the fixed selector list.
package trafilatura

import (
	"strings"

	"github.com/fwojciec/siteinfo"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements siteinfo.Extractor at compile time.
var _ siteinfo.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the page title and its main
// content as normalized plain text.
func (e *Extractor) Extract(rawHTML string) (*siteinfo.ExtractResult, error) {
	if rawHTML == "" {
		return &siteinfo.ExtractResult{}, nil
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, siteinfo.Errorf(siteinfo.EINVALID, "content extraction failed: %v", err)
	}

	return &siteinfo.ExtractResult{
		Title: result.Metadata.Title,
		Text:  siteinfo.NormalizeText(result.ContentText),
	}, nil
}
