package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/proddesc"
	"github.com/fwojciec/proddesc/duckduckgo"
	"github.com/fwojciec/proddesc/enrich"
	"github.com/fwojciec/proddesc/gemini"
	"github.com/fwojciec/proddesc/goquery"
	pdhttp "github.com/fwojciec/proddesc/http"
	"github.com/fwojciec/proddesc/ollama"
	"github.com/fwojciec/proddesc/readability"
	pdslog "github.com/fwojciec/proddesc/slog"
	"github.com/fwojciec/proddesc/trafilatura"
	"github.com/fwojciec/proddesc/yaml"
	"github.com/google/uuid"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Model overrides the configured backend. Set before calling Run().
	Model proddesc.Model

	// SearchProvider overrides DuckDuckGo. Set before calling Run().
	SearchProvider proddesc.SearchProvider

	stores *stores
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.stores != nil {
		return m.stores.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("proddesc"),
		kong.Description("Add web-sourced descriptions to a product catalog"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})).
		With("run", uuid.NewString())

	output := cli.Output
	if output == "" {
		output = defaultOutput(cli.Input)
	}

	columns := proddesc.Columns{
		Name:        cli.Column,
		Description: cli.DescriptionColumn,
		Comment:     cli.CommentColumn,
		Category:    cli.CategoryColumn,
	}
	category := proddesc.Category{Value: cli.CategoryValue, Stamp: cli.CategoryStamp}

	gate := proddesc.DefaultQualityGate()
	denylist := enrich.DefaultDenylist
	language := cli.Language
	if cli.Policy != "" {
		policy, err := yaml.LoadPolicy(cli.Policy)
		if err != nil {
			return fmt.Errorf("load policy: %w", err)
		}
		gate = policy.QualityGate()
		denylist = policy.Denylist(denylist)
		if language == "" {
			language = policy.Language
		}
	}

	m.stores = newStores(storeOptions{Sheet: cli.Sheet, Table: cli.Table})
	defer m.Close()

	// Resolve the source before opening the sink, which may create the file.
	sourcePath, err := resumeSource(cli.Input, output, cli.Resume)
	if err != nil {
		return err
	}
	if sourcePath != cli.Input {
		logger.Info("resuming from existing output", "path", sourcePath)
	}
	source, err := m.stores.Source(sourcePath)
	if err != nil {
		return err
	}
	sink, err := m.stores.Sink(output)
	if err != nil {
		return err
	}

	model := m.Model
	if model == nil {
		model, err = newModel(ctx, cli, stderr)
		if err != nil {
			return err
		}
	}

	provider := m.SearchProvider
	if provider == nil {
		provider = duckduckgo.NewProvider()
	}

	textExtractor, err := newTextExtractor(cli.Extractor)
	if err != nil {
		return err
	}

	fetcher := pdhttp.NewFetcher(pdhttp.WithTimeout(cli.Timeout))
	defer fetcher.Close()

	collector := &enrich.Collector{
		Searcher: &enrich.Searcher{
			Provider:  pdslog.NewLoggingSearchProvider(provider, logger),
			Region:    cli.Region,
			Overfetch: cli.Overfetch,
			Denylist:  denylist,
			Logger:    logger,
		},
		Extractor: &enrich.ContentExtractor{
			Fetcher:   pdslog.NewLoggingFetcher(fetcher, logger),
			Extractor: textExtractor,
			Logger:    logger,
		},
		Pacer:  enrich.NewPacer(cli.PageDelay),
		Logger: logger,
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
		Source: source,
		Processor: &enrich.Processor{
			Collector: collector,
			Describer: &enrich.Describer{
				Model:    pdslog.NewLoggingModel(model, logger),
				Policy:   gate,
				Language: language,
				Logger:   logger,
			},
			Sink:      pdslog.NewLoggingTableSink(sink, logger),
			Columns:   columns,
			Category:  category,
			Overwrite: cli.Overwrite,
			MaxPages:  cli.MaxPages,
			Pacer:     enrich.NewPacer(cli.RowDelay),
			Logger:    logger,
		},
	}

	cmd := &DescribeCmd{Input: sourcePath, Output: output}
	return cmd.Run(deps)
}

// newModel builds the model client for the configured backend.
func newModel(ctx context.Context, cli *CLI, stderr io.Writer) (proddesc.Model, error) {
	switch cli.Backend {
	case "gemini":
		client, err := gemini.NewClient(ctx, os.Getenv("GEMINI_API_KEY"))
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Set GEMINI_API_KEY. Get a key at https://aistudio.google.com/apikey")
			return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		return gemini.NewModel(client, cli.GeminiModel), nil
	default:
		model, err := ollama.New(ollamaURL(cli.OllamaHost), cli.OllamaModel)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check that Ollama is installed and OLLAMA_HOST is correct")
			return nil, err
		}
		return model, nil
	}
}

// newTextExtractor returns the page text extractor with the given name.
func newTextExtractor(name string) (proddesc.TextExtractor, error) {
	switch name {
	case "", "goquery":
		return goquery.NewTextExtractor(), nil
	case "trafilatura":
		return trafilatura.NewTextExtractor(), nil
	case "readability":
		return readability.NewTextExtractor(), nil
	default:
		return nil, proddesc.Errorf(proddesc.EINVALID, "unknown extractor %q", name)
	}
}

// ollamaURL accepts OLLAMA_HOST in the bare host:port form the Ollama CLI uses.
func ollamaURL(host string) string {
	if host == "" || strings.Contains(host, "://") {
		return host
	}
	return "http://" + host
}
