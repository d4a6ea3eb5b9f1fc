// Package goquery implements the HTML-processing interfaces of the
// siteinfo domain (email scanning, link classification, content
// extraction) on top of goquery document traversal.
package goquery

import (
	"regexp"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/siteinfo"
	"golang.org/x/net/html"
)

// emailPattern matches a local part, @, hostname labels and a 2+
// letter top-level suffix.
var emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)

// emailExact requires the entire candidate string to be an address.
var emailExact = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Ensure EmailScanner implements siteinfo.EmailScanner at compile time.
var _ siteinfo.EmailScanner = (*EmailScanner)(nil)

// EmailScanner finds email addresses in a page. It runs two
// complementary passes: text-node scanning catches addresses written
// as plain text or in obfuscated markup, mailto scanning catches
// anchors whose visible text differs from the actual address.
type EmailScanner struct{}

// NewEmailScanner creates a new EmailScanner.
func NewEmailScanner() *EmailScanner {
	return &EmailScanner{}
}

// ScanEmails returns the unique addresses found in rawHTML, sorted.
func (s *EmailScanner) ScanEmails(rawHTML string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, siteinfo.Errorf(siteinfo.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]bool)

	for _, root := range doc.Nodes {
		walkText(root, func(text string) {
			for _, m := range emailPattern.FindAllString(text, -1) {
				seen[m] = true
			}
		})
	}

	doc.Find(`a[href^="mailto:"]`).Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		addr := strings.TrimPrefix(href, "mailto:")
		// Strip any trailing query component (?subject=...).
		if i := strings.Index(addr, "?"); i >= 0 {
			addr = addr[:i]
		}
		if emailExact.MatchString(addr) {
			seen[addr] = true
		}
	})

	emails := make([]string, 0, len(seen))
	for e := range seen {
		emails = append(emails, e)
	}
	sort.Strings(emails)
	return emails, nil
}

// walkText visits every text node under n in document order.
func walkText(n *html.Node, visit func(string)) {
	if n.Type == html.TextNode {
		visit(n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkText(c, visit)
	}
}
