package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/tanawatp/newslingo"
	"github.com/tanawatp/newslingo/gemini"
	"github.com/tanawatp/newslingo/goquery"
	nlhttp "github.com/tanawatp/newslingo/http"
	"github.com/tanawatp/newslingo/lingua"
	"github.com/tanawatp/newslingo/pipeline"
	nlslog "github.com/tanawatp/newslingo/slog"
	"github.com/tanawatp/newslingo/trafilatura"
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
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("newslingo"),
		kong.Description("Turn an English news article into a Thai summary and vocabulary lesson."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'newslingo --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if cmd == "read" {
		// .env is a convenience for local use; the environment wins.
		_ = godotenv.Load()
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set")
		}

		level := slog.LevelWarn
		if cli.Read.Verbose {
			level = slog.LevelInfo
		}
		logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		opts := []gemini.Option{gemini.WithModel(cli.Read.Model)}
		if cli.Read.RPS > 0 {
			opts = append(opts, gemini.WithRateLimit(cli.Read.RPS))
		}
		generator := gemini.NewClient(client, opts...)

		var fetcher newslingo.ArticleFetcher
		if cli.Read.Delegate {
			fetcher = gemini.NewFetcher(generator)
		} else {
			httpFetcher := nlhttp.NewFetcher(nlhttp.WithTimeout(cli.Read.Timeout))
			defer httpFetcher.Close()

			var extractor newslingo.Extractor
			switch cli.Read.Extractor {
			case "tags":
				extractor = goquery.NewExtractor()
			default:
				extractor = trafilatura.NewExtractor()
			}
			fetcher = &pipeline.ScrapeFetcher{Fetcher: httpFetcher, Extractor: extractor}
		}

		deps.Pipeline = &pipeline.Pipeline{
			Fetcher:   nlslog.NewLoggingArticleFetcher(fetcher, logger),
			Generator: nlslog.NewLoggingGenerator(generator, logger),
			Detector:  lingua.NewDetector(),
			Logger:    logger,
		}
	}

	return kongCtx.Run(deps)
}
