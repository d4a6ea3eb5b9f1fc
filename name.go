package siteinfo

import (
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// titleSeparators splits a page title into its name/slogan parts.
// The pipe usually separates the company name from a slogan, so it
// is listed alongside the dash variants and the colon.
var titleSeparators = regexp.MustCompile(` \| | – | - | : `)

// genericTitleTerms are title parts that never name a company.
var genericTitleTerms = map[string]bool{
	"home":          true,
	"welcome":       true,
	"official site": true,
	"website":       true,
	"log in":        true,
	"login":         true,
}

// legalSuffixes are stripped from a candidate company name.
var legalSuffixes = []string{
	" Inc.", " LLC", " Ltd.", " Corp.", " Corporation",
	" Limited", " GmbH", " PLC", ".com", ".org", ".net",
}

var titleCaser = cases.Title(language.English)

// CompanyName derives a display name for a company from its page
// title. When the title is missing or yields nothing significant, it
// falls back to a title-cased stem of the URL's domain, and as a last
// resort to rawURL itself.
func CompanyName(title, rawURL string) string {
	if title != "" && title != TitleMissing {
		for _, part := range titleSeparators.Split(title, -1) {
			part = strings.TrimSpace(part)
			if len(part) <= 3 || genericTitleTerms[strings.ToLower(part)] {
				continue
			}
			for _, suffix := range legalSuffixes {
				part = strings.ReplaceAll(part, suffix, "")
			}
			return strings.TrimSpace(part)
		}
	}

	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	host := strings.TrimPrefix(u.Host, "www.")
	stem, _, _ := strings.Cut(host, ".")
	return titleCaser.String(strings.ReplaceAll(stem, "-", " "))
}
