// Package gemini implements the AI collaborators of the siteinfo
// domain (summarization and search-augmented question answering)
// using Google Gemini.
package gemini

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/siteinfo"
	"google.golang.org/genai"
)

// DefaultModel is used for summarization and question answering when
// no model is specified.
const DefaultModel = "gemini-2.5-flash"

// maxSummaryInput caps the text submitted for summarization.
const maxSummaryInput = 4000

// Ensure Summarizer implements siteinfo.Summarizer at compile time.
var _ siteinfo.Summarizer = (*Summarizer)(nil)

// Summarizer produces short company synopses using Google Gemini.
type Summarizer struct {
	client *genai.Client
	model  string
}

// NewSummarizer creates a new Summarizer. An empty model selects
// DefaultModel.
func NewSummarizer(client *genai.Client, model string) *Summarizer {
	if model == "" {
		model = DefaultModel
	}
	return &Summarizer{client: client, model: model}
}

// Summarize returns a 1-3 sentence synopsis of text. Text shorter
// than siteinfo.MinSummaryInput returns "" without calling the model.
// A response blocked by content safety also returns "".
func (s *Summarizer) Summarize(ctx context.Context, text string) (string, error) {
	if len(text) < siteinfo.MinSummaryInput {
		return "", nil
	}

	result, err := s.client.Models.GenerateContent(ctx, s.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: BuildSummaryPrompt(text)}},
		}},
		SummaryConfig(),
	)
	if err != nil {
		return "", siteinfo.Errorf(siteinfo.EUNAVAILABLE, "summarization request failed: %v", err)
	}
	if result == nil {
		return "", siteinfo.Errorf(siteinfo.EINTERNAL, "gemini returned nil result")
	}

	return strings.TrimSpace(result.Text()), nil
}

// SummaryConfig returns the GenerateContentConfig for summarization.
func SummaryConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		Temperature: &temp,
	}
}

// BuildSummaryPrompt builds the summarization prompt. Input beyond
// maxSummaryInput bytes is truncated.
func BuildSummaryPrompt(text string) string {
	return "Concisely summarize the following text about a company in 1-3 short sentences, focusing on its core business or purpose:\n\nTEXT:\n" + truncate(text, maxSummaryInput) + "\n\nSUMMARY:"
}

// truncate shortens s to at most n bytes without splitting a
// multibyte rune at the cut.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
