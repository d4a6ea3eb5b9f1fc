package analyze_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/siteinfo"
	"github.com/fwojciec/siteinfo/analyze"
	sitegoquery "github.com/fwojciec/siteinfo/goquery"
	"github.com/fwojciec/siteinfo/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newAnalyzer builds an Analyzer with real goquery adapters and a mock
// fetcher serving pages from the given URL -> HTML map.
func newAnalyzer(pages map[string]string) *analyze.Analyzer {
	return &analyze.Analyzer{
		Fetcher: &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (*siteinfo.FetchResult, error) {
				html, ok := pages[url]
				if !ok {
					return nil, siteinfo.Errorf(siteinfo.EUNREACHABLE, "network error fetching %s", url)
				}
				return &siteinfo.FetchResult{URL: url, FinalURL: url, HTML: html}, nil
			},
		},
		Emails:    sitegoquery.NewEmailScanner(),
		Links:     sitegoquery.NewLinkClassifier(),
		Extractor: sitegoquery.NewExtractor(),
	}
}

func TestAnalyzer_Analyze(t *testing.T) {
	t.Parallel()

	t.Run("homepage failure degrades to a default result", func(t *testing.T) {
		t.Parallel()

		a := newAnalyzer(nil) // every fetch fails

		result, err := a.Analyze(context.Background(), "https://down.example")
		require.NoError(t, err)
		assert.Equal(t, siteinfo.TitleMissing, result.Title)
		assert.Empty(t, result.Emails)
		assert.Empty(t, result.SocialLinks)
		assert.Empty(t, result.AboutText)
		assert.Empty(t, result.AboutSummary)
		assert.Greater(t, result.Elapsed, time.Duration(0))
	})

	t.Run("merges mailto and plain text emails from the homepage", func(t *testing.T) {
		t.Parallel()

		a := newAnalyzer(map[string]string{
			"https://acme.example": `<html><head><title>Acme</title></head><body>
				<a href="mailto:info@example.com?subject=hi">Email us</a>
				<p>reach us at sales@example.com</p>
			</body></html>`,
		})

		result, err := a.Analyze(context.Background(), "https://acme.example")
		require.NoError(t, err)
		assert.Equal(t, "Acme", result.Title)
		assert.Equal(t, []string{"info@example.com", "sales@example.com"}, result.Emails)
	})

	t.Run("about page contributes text and emails", func(t *testing.T) {
		t.Parallel()

		aboutBody := strings.Repeat("Acme builds robots for warehouses. ", 10)
		a := newAnalyzer(map[string]string{
			"https://acme.example": `<html><head><title>Acme</title></head><body>
				<a href="/about">About</a>
			</body></html>`,
			"https://acme.example/about": `<html><body>
				<main>` + aboutBody + `</main>
				<p>press@example.com</p>
			</body></html>`,
		})

		result, err := a.Analyze(context.Background(), "https://acme.example")
		require.NoError(t, err)
		assert.Equal(t, strings.TrimSpace(aboutBody), result.AboutText)
		assert.Equal(t, []string{"press@example.com"}, result.Emails)
	})

	t.Run("short about text yields no summary", func(t *testing.T) {
		t.Parallel()

		a := newAnalyzer(map[string]string{
			"https://acme.example":       `<html><body><a href="/about">About</a></body></html>`,
			"https://acme.example/about": `<html><body><p>Sixty characters of about text, just enough to keep.</p></body></html>`,
		})
		a.Summarizer = &mock.Summarizer{
			SummarizeFn: func(context.Context, string) (string, error) {
				t.Fatal("summarizer must not be called for short text")
				return "", nil
			},
		}

		result, err := a.Analyze(context.Background(), "https://acme.example")
		require.NoError(t, err)
		assert.NotEmpty(t, result.AboutText)
		assert.Less(t, len(result.AboutText), siteinfo.MinSummaryInput)
		assert.Empty(t, result.AboutSummary)
	})

	t.Run("long about text is summarized", func(t *testing.T) {
		t.Parallel()

		aboutBody := strings.Repeat("Acme builds robots. ", 10)
		a := newAnalyzer(map[string]string{
			"https://acme.example":       `<html><body><a href="/about">About</a></body></html>`,
			"https://acme.example/about": `<html><body><p>` + aboutBody + `</p></body></html>`,
		})
		a.Summarizer = &mock.Summarizer{
			SummarizeFn: func(_ context.Context, text string) (string, error) {
				assert.Contains(t, text, "Acme builds robots.")
				return "Acme is a robotics company.", nil
			},
		}

		result, err := a.Analyze(context.Background(), "https://acme.example")
		require.NoError(t, err)
		assert.Equal(t, "Acme is a robotics company.", result.AboutSummary)
	})

	t.Run("summarizer failure is recorded as an error marker", func(t *testing.T) {
		t.Parallel()

		aboutBody := strings.Repeat("Acme builds robots. ", 10)
		a := newAnalyzer(map[string]string{
			"https://acme.example":       `<html><body><a href="/about">About</a></body></html>`,
			"https://acme.example/about": `<html><body><p>` + aboutBody + `</p></body></html>`,
		})
		a.Summarizer = &mock.Summarizer{
			SummarizeFn: func(context.Context, string) (string, error) {
				return "", siteinfo.Errorf(siteinfo.EUNAVAILABLE, "summarization request failed")
			},
		}

		result, err := a.Analyze(context.Background(), "https://acme.example")
		require.NoError(t, err)
		assert.Equal(t, "Error: summarization request failed", result.AboutSummary)
	})

	t.Run("no about link means no about text and no summary", func(t *testing.T) {
		t.Parallel()

		a := newAnalyzer(map[string]string{
			"https://acme.example": `<html><body>
				<a href="/contact">Contact</a>
			</body></html>`,
			"https://acme.example/contact": `<html><body><p>support@example.com</p></body></html>`,
		})

		result, err := a.Analyze(context.Background(), "https://acme.example")
		require.NoError(t, err)
		assert.Empty(t, result.AboutText)
		assert.Empty(t, result.AboutSummary)
		assert.Equal(t, []string{"support@example.com"}, result.Emails)
	})

	t.Run("about page failure is page-local", func(t *testing.T) {
		t.Parallel()

		a := newAnalyzer(map[string]string{
			"https://acme.example": `<html><head><title>Acme</title></head><body>
				<a href="/about">About</a>
				<a href="/contact">Contact</a>
				<p>hello@example.com</p>
			</body></html>`,
			// /about missing: its fetch fails
			"https://acme.example/contact": `<html><body><p>support@example.com</p></body></html>`,
		})

		result, err := a.Analyze(context.Background(), "https://acme.example")
		require.NoError(t, err)
		assert.Equal(t, "Acme", result.Title)
		assert.Empty(t, result.AboutText)
		assert.Equal(t, []string{"hello@example.com", "support@example.com"}, result.Emails)
	})

	t.Run("collects social links from the homepage", func(t *testing.T) {
		t.Parallel()

		a := newAnalyzer(map[string]string{
			"https://acme.example": `<html><body>
				<a href="https://twitter.com/acme">Twitter</a>
				<a href="https://linkedin.com/company/acme">LinkedIn</a>
				<a href="https://facebook.com/share?u=1">Share</a>
			</body></html>`,
		})

		result, err := a.Analyze(context.Background(), "https://acme.example")
		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://linkedin.com/company/acme",
			"https://twitter.com/acme",
		}, result.SocialLinks)
	})

	t.Run("empty url is invalid", func(t *testing.T) {
		t.Parallel()

		a := newAnalyzer(nil)

		_, err := a.Analyze(context.Background(), "")
		require.Error(t, err)
		assert.Equal(t, siteinfo.EINVALID, siteinfo.ErrorCode(err))
	})
}
