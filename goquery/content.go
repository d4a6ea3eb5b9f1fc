package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/siteinfo"
)

// contentSelectors is tried in order, most specific first. The first
// selector whose text exceeds minContentLength wins, even when a later
// selector would yield more text.
var contentSelectors = []string{
	"main",
	"article",
	`section[role="main"]`,
	`div[role="main"]`,
	".main-content",
	"#main-content",
	".content",
	"#content",
}

// noiseSelectors are removed from <body> before fallback extraction.
var noiseSelectors = []string{
	"nav", "header", "footer", "script", "style", "aside",
	"form", "noscript", "iframe", "button", ".sidebar", "#sidebar",
}

// minContentLength is the minimum text length for a selector-tier
// match to be accepted as main content.
const minContentLength = 200

// Ensure Extractor implements siteinfo.Extractor at compile time.
var _ siteinfo.Extractor = (*Extractor)(nil)

// Extractor selects the main content region of a page using a fixed
// selector priority list, falling back to a noise-stripped <body>.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the page title and its main content as normalized
// text. Text is empty only when the document has no body at all.
func (e *Extractor) Extract(rawHTML string) (*siteinfo.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, siteinfo.Errorf(siteinfo.EINVALID, "failed to parse HTML: %v", err)
	}

	result := &siteinfo.ExtractResult{
		Title: strings.TrimSpace(doc.Find("title").First().Text()),
	}

	for _, selector := range contentSelectors {
		area := doc.Find(selector).First()
		if area.Length() == 0 {
			continue
		}
		if text := selectionText(area); len(text) > minContentLength {
			result.Text = text
			return result, nil
		}
	}

	body := doc.Find("body").First()
	if body.Length() == 0 {
		return result, nil
	}
	body.Find(strings.Join(noiseSelectors, ", ")).Remove()
	result.Text = selectionText(body)

	return result, nil
}

// selectionText collects the text nodes of a selection, separated by
// single spaces, normalized per siteinfo.NormalizeText.
func selectionText(sel *goquery.Selection) string {
	var sb strings.Builder
	for _, n := range sel.Nodes {
		walkText(n, func(text string) {
			sb.WriteString(text)
			sb.WriteByte(' ')
		})
	}
	return siteinfo.NormalizeText(sb.String())
}
