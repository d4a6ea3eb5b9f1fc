package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/siteinfo"
	"google.golang.org/genai"
)

const (
	// maxAgentIterations caps the tool-calling loop. An exhausted
	// loop is reported in the agent's own answer text.
	maxAgentIterations = 8

	// maxContextChars caps the scraped context embedded in the prompt.
	maxContextChars = 3000

	// minContextChars is the minimum context length worth embedding;
	// anything shorter sends the agent straight to web search.
	minContextChars = 50

	// searchToolName is the function name exposed to the model.
	searchToolName = "web_search"
)

// Ensure Agent implements siteinfo.Asker at compile time.
var _ siteinfo.Asker = (*Agent)(nil)

// Agent answers free-form questions about a company using Gemini with
// a live web-search tool. The agent is constructed explicitly and
// injected by the caller; the genai client is the single long-lived
// session object shared across questions.
type Agent struct {
	client   *genai.Client
	searcher siteinfo.Searcher
	model    string
}

// NewAgent creates a new Agent. An empty model selects DefaultModel.
func NewAgent(client *genai.Client, searcher siteinfo.Searcher, model string) *Agent {
	if model == "" {
		model = DefaultModel
	}
	return &Agent{client: client, searcher: searcher, model: model}
}

// Ask runs the question through the model, dispatching web_search tool
// calls to the configured Searcher until the model produces a final
// answer or the iteration cap is reached.
func (a *Agent) Ask(ctx context.Context, req siteinfo.AskRequest) (string, error) {
	if req.Question == "" {
		return "", siteinfo.Errorf(siteinfo.EINVALID, "question required")
	}

	contents := []*genai.Content{{
		Role:  genai.RoleUser,
		Parts: []*genai.Part{{Text: BuildAgentPrompt(req)}},
	}}
	config := AgentConfig()

	for range maxAgentIterations {
		result, err := a.client.Models.GenerateContent(ctx, a.model, contents, config)
		if err != nil {
			return "", siteinfo.Errorf(siteinfo.EUNAVAILABLE, "agent request failed: %v", err)
		}
		if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
			return "", siteinfo.Errorf(siteinfo.EINTERNAL, "gemini returned empty response")
		}

		calls := result.FunctionCalls()
		if len(calls) == 0 {
			return strings.TrimSpace(result.Text()), nil
		}

		contents = append(contents, result.Candidates[0].Content)
		for _, call := range calls {
			contents = append(contents, &genai.Content{
				Role: genai.RoleUser,
				Parts: []*genai.Part{{
					FunctionResponse: &genai.FunctionResponse{
						Name:     call.Name,
						Response: a.dispatch(ctx, call),
					},
				}},
			})
		}
	}

	return "The agent stopped after reaching its iteration limit without a final answer. Try a more specific question.", nil
}

// dispatch executes one tool call. Tool failures are reported back to
// the model as a response payload rather than aborting the loop.
func (a *Agent) dispatch(ctx context.Context, call *genai.FunctionCall) map[string]any {
	if call.Name != searchToolName {
		return map[string]any{"error": "unknown tool: " + call.Name}
	}

	query, _ := call.Args["query"].(string)
	results, err := a.searcher.Search(ctx, query)
	if err != nil {
		return map[string]any{"error": err.Error()}
	}

	hits := make([]map[string]any, 0, len(results))
	for _, r := range results {
		hits = append(hits, map[string]any{
			"title":   r.Title,
			"url":     r.URL,
			"content": r.Content,
		})
	}
	return map[string]any{"results": hits}
}

// AgentConfig returns the GenerateContentConfig for agent calls,
// declaring the web_search tool.
func AgentConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		Temperature: &temp,
		Tools: []*genai.Tool{{
			FunctionDeclarations: []*genai.FunctionDeclaration{{
				Name:        searchToolName,
				Description: "A search engine useful for finding current information about companies, news, competitors, funding, AUM, people, etc.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"query": {
							Type:        genai.TypeString,
							Description: "The search query.",
						},
					},
					Required: []string{"query"},
				},
			}},
		}},
	}
}

// BuildAgentPrompt builds the user prompt. Context longer than
// minContextChars is embedded (truncated to maxContextChars) with
// instructions to prefer it and to disclose whether the answer came
// from context or search; otherwise the agent is told to rely on
// search alone.
func BuildAgentPrompt(req siteinfo.AskRequest) string {
	if len(req.Context) > minContextChars {
		contextText := truncate(req.Context, maxContextChars)
		return fmt.Sprintf(`You have the following CONTEXT scraped from %s. Answer the user's QUESTION comprehensively. Use your search tool if needed for information not in the CONTEXT or for recent details (like news, filings, personnel changes). If standard reports (like 10-Q) are requested for a private entity, check for alternative filings (like 13F) via search. After answering, state clearly if the answer came primarily from CONTEXT or web search. If search was used, try to cite 1-2 main source URLs. If answer not found, say so.

CONTEXT: %s

QUESTION: %s`, req.URL, contextText, req.Question)
	}

	return fmt.Sprintf("Answer the following question using web search regarding the company associated with %s: %s. After answering, state that web search was used and try to cite 1-2 main source URLs.", req.URL, req.Question)
}
