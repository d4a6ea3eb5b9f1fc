package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/siteinfo"
	"github.com/fwojciec/siteinfo/analyze"
	"github.com/fwojciec/siteinfo/gemini"
	"github.com/fwojciec/siteinfo/goquery"
	sitehttp "github.com/fwojciec/siteinfo/http"
	siteslog "github.com/fwojciec/siteinfo/slog"
	"github.com/fwojciec/siteinfo/tavily"
	"github.com/fwojciec/siteinfo/trafilatura"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("siteinfo"),
		kong.Description("Analyze company websites and answer questions about them."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'siteinfo --help' to see available commands")
	}

	if first := args[0]; first == "help" || first == "--help" || first == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// The selected command comes from the parse result, not args[0],
	// so flags like -v may precede the subcommand.
	cmd, _, _ := strings.Cut(kongCtx.Command(), " ")

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	fetcher := siteslog.NewLoggingFetcher(
		sitehttp.NewFetcher(sitehttp.WithRateLimit(requestsPerSecond)),
		logger,
	)
	defer fetcher.Close()

	engine := cli.Analyze.Engine
	if cmd == "ask" {
		engine = cli.Ask.Engine
	}
	var extractor siteinfo.Extractor = goquery.NewExtractor()
	if engine == "trafilatura" {
		extractor = trafilatura.NewExtractor()
	}

	analyzer := &analyze.Analyzer{
		Fetcher:   fetcher,
		Emails:    goquery.NewEmailScanner(),
		Links:     goquery.NewLinkClassifier(),
		Extractor: extractor,
		Logger:    logger,
	}
	deps.Analyzer = analyzer

	// The Gemini client is only needed when an AI call will actually be made.
	needsGemini := cmd == "ask" || (cmd == "analyze" && !cli.Analyze.NoSummary)
	var client *genai.Client
	if needsGemini {
		apiKey := geminiAPIKey()
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return siteinfo.Errorf(siteinfo.EUNAUTHORIZED, "credential not set: GEMINI_API_KEY")
		}

		client, err = genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
	}

	if cmd == "analyze" && !cli.Analyze.NoSummary {
		analyzer.Summarizer = gemini.NewSummarizer(client, gemini.DefaultModel)
	}

	if cmd == "ask" {
		tavilyKey := os.Getenv("TAVILY_API_KEY")
		if tavilyKey == "" {
			fmt.Fprintln(stderr, "TAVILY_API_KEY environment variable not set. Get an API key at https://tavily.com")
			return siteinfo.Errorf(siteinfo.EUNAUTHORIZED, "credential not set: TAVILY_API_KEY")
		}

		deps.Asker = gemini.NewAgent(client, tavily.NewClient(tavilyKey), gemini.DefaultModel)
	}

	return kongCtx.Run(deps)
}

// requestsPerSecond limits outbound page fetches to keep the analyzer polite.
const requestsPerSecond = 2.0

// geminiAPIKey returns the Gemini credential, accepting the GOOGLE_API_KEY
// name used by other Google SDKs as a fallback.
func geminiAPIKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return os.Getenv("GOOGLE_API_KEY")
}
