package siteinfo

// ExtractResult holds the extracted content of an HTML page.
type ExtractResult struct {
	// Title is the first non-empty <title> text, or "" when absent.
	Title string

	// Text is the main content as normalized plain text: boilerplate
	// (nav, footer, sidebar) removed, whitespace runs collapsed to
	// single spaces, ends trimmed. Empty when no suitable content
	// region exists.
	Text string
}

// Extractor selects the main content of an HTML page, removing
// boilerplate. Finding no content is not an error; Text is simply
// empty.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}

// EmailScanner finds email addresses in HTML.
type EmailScanner interface {
	// ScanEmails returns the unique addresses found in text nodes and
	// mailto: anchors, sorted lexicographically. Every returned value
	// is a complete address; no partial matches.
	ScanEmails(html string) ([]string, error)
}

// LinkClassifier classifies a page's anchors into About, Contact and
// social profile links.
type LinkClassifier interface {
	// Classify resolves every anchor against baseURL and applies the
	// classification rules. Errors on individual anchors never abort
	// the scan of the remaining anchors.
	Classify(html string, baseURL string) (*LinkSet, error)
}
