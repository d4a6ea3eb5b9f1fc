package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/siteinfo"
)

// linkRule classifies an anchor by substring patterns. textTerms match
// against the anchor's visible text, hrefTerms against its href, both
// lowercased. The rule never matches when the href contains one of its
// exclude terms.
type linkRule struct {
	textTerms []string
	hrefTerms []string
	exclude   []string
}

func (r linkRule) matches(text, href string) bool {
	for _, kw := range r.exclude {
		if strings.Contains(href, kw) {
			return false
		}
	}
	for _, t := range r.textTerms {
		if strings.Contains(text, t) {
			return true
		}
	}
	for _, h := range r.hrefTerms {
		if strings.Contains(href, h) {
			return true
		}
	}
	return false
}

// socialRule classifies an anchor by its resolved host and path shape
// rather than by anchor text. A match requires a known platform
// domain, none of the action/legal path terms, and a profile-like path
// (at most two segments, or a segment naming a profile kind).
type socialRule struct {
	domains         []string
	pathExclude     []string
	profileSegments []string
}

func (r socialRule) matches(resolved string) bool {
	u, err := url.Parse(resolved)
	if err != nil {
		return false
	}
	host := strings.TrimPrefix(u.Host, "www.")
	known := false
	for _, d := range r.domains {
		if strings.Contains(host, d) {
			known = true
			break
		}
	}
	if !known {
		return false
	}
	path := strings.ToLower(u.Path)
	for _, kw := range r.pathExclude {
		if strings.Contains(path, kw) {
			return false
		}
	}
	var segments []string
	for _, seg := range strings.Split(path, "/") {
		if seg != "" {
			segments = append(segments, seg)
		}
	}
	if len(segments) <= 2 {
		return true
	}
	for _, seg := range segments {
		for _, p := range r.profileSegments {
			if seg == p {
				return true
			}
		}
	}
	return false
}

// Default classification rules. aboutRule and contactRule are
// evaluated in this order for every anchor; the first anchor matching
// a rule claims that rule's slot for the whole page.
var (
	aboutRule = linkRule{
		textTerms: []string{"about", "company", "who we are"},
		hrefTerms: []string{"/about", "who-we-are"},
		exclude:   []string{"blog", "news", "press", "careers", "jobs", "events"},
	}
	contactRule = linkRule{
		textTerms: []string{"contact", "get in touch", "support"},
		hrefTerms: []string{"/contact", "get-in-touch"},
	}
	profileRule = socialRule{
		domains: []string{
			"linkedin.com", "facebook.com", "twitter.com",
			"instagram.com", "youtube.com",
		},
		pathExclude: []string{
			"/share", "/intent", "/addtoany", "/login", "/post",
			"/status", "/jobs", "/careers", "/legal", "/privacy",
		},
		profileSegments: []string{"company", "in", "user", "channel"},
	}
)

// nonPagePrefixes mark hrefs that never lead to a fetchable page.
var nonPagePrefixes = []string{"javascript:", "#", "tel:", "mailto:"}

// Ensure LinkClassifier implements siteinfo.LinkClassifier at compile time.
var _ siteinfo.LinkClassifier = (*LinkClassifier)(nil)

// LinkClassifier classifies a page's anchors into About, Contact and
// social profile links using the default rule set. A single anchor may
// satisfy more than one rule; the rules are evaluated independently.
type LinkClassifier struct {
	about   linkRule
	contact linkRule
	social  socialRule
}

// NewLinkClassifier creates a LinkClassifier with the default rules.
func NewLinkClassifier() *LinkClassifier {
	return &LinkClassifier{
		about:   aboutRule,
		contact: contactRule,
		social:  profileRule,
	}
}

// Classify scans every anchor of rawHTML in document order, resolving
// hrefs against baseURL. About and Contact keep the first match;
// social links accumulate with exact-URL deduplication. Anchors that
// fail URL parsing are skipped without aborting the scan.
func (c *LinkClassifier) Classify(rawHTML string, baseURL string) (*siteinfo.LinkSet, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, siteinfo.Errorf(siteinfo.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, siteinfo.Errorf(siteinfo.EINVALID, "failed to parse HTML: %v", err)
	}

	links := &siteinfo.LinkSet{}
	seenSocial := make(map[string]bool)

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if href == "" || isNonPageLink(href) {
			return
		}

		resolved := resolveURL(base, href)
		if resolved == "" {
			return
		}

		text := strings.ToLower(strings.TrimSpace(sel.Text()))
		hrefLower := strings.ToLower(href)

		if links.About == "" && c.about.matches(text, hrefLower) {
			links.About = resolved
		}
		if links.Contact == "" && c.contact.matches(text, hrefLower) {
			links.Contact = resolved
		}
		if !seenSocial[resolved] && c.social.matches(resolved) {
			seenSocial[resolved] = true
			links.Social = append(links.Social, resolved)
		}
	})

	return links, nil
}

// isNonPageLink reports whether href cannot lead to a fetchable page.
func isNonPageLink(href string) bool {
	for _, prefix := range nonPagePrefixes {
		if strings.HasPrefix(href, prefix) {
			return true
		}
	}
	return false
}

// resolveURL resolves a relative URL against a base URL. It returns
// "" for hrefs that fail URL parsing.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}
