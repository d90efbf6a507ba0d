package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/proddesc"
	"github.com/fwojciec/proddesc/enrich"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Source    proddesc.TableSource
	Processor *enrich.Processor
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Input  string `short:"i" default:"Номенклатура полная.xlsx" help:"Input catalog (.xlsx, .csv, .db, .sqlite)"`
	Output string `short:"o" help:"Output catalog (default: input name with \" с описаниями\" suffix)"`
	Sheet  string `help:"Worksheet to read from .xlsx input (default: first sheet)"`
	Table  string `default:"catalog" help:"Table name in .db/.sqlite catalogs"`

	Column            string `default:"Полное наименование" help:"Column holding item names"`
	DescriptionColumn string `default:"Расшифровка" help:"Column receiving descriptions (created if absent)"`
	CommentColumn     string `default:"Комментарий" help:"Optional column with hints for the model"`
	CategoryColumn    string `default:"Вид производства" help:"Optional column routing rows to a fixed description"`
	CategoryValue     string `default:"Производство" help:"Category value that bypasses generation"`
	CategoryStamp     string `default:"ПРОИЗВОДСТВО" help:"Description written for category rows"`

	Backend     string `enum:"ollama,gemini" default:"ollama" help:"Language model backend (ollama, gemini)"`
	OllamaHost  string `env:"OLLAMA_HOST" default:"http://localhost:11434" help:"Ollama server URL"`
	OllamaModel string `default:"llama3.2" help:"Ollama model"`
	GeminiModel string `default:"gemini-2.5-flash" help:"Gemini model"`
	Language    string `help:"Language of generated descriptions, overriding the policy file (default Russian)"`

	Extractor string        `enum:"goquery,trafilatura,readability" default:"goquery" help:"Page text extractor (goquery, trafilatura, readability)"`
	MaxPages  int           `default:"5" help:"Pages collected per item"`
	Region    string        `default:"ru-ru" help:"Search region"`
	Overfetch int           `default:"3" help:"Search results requested per wanted page"`
	PageDelay time.Duration `default:"1s" help:"Pause after each page fetch before the next one"`
	RowDelay  time.Duration `default:"2s" help:"Pause after each described row before the next one"`
	Timeout   time.Duration `short:"t" default:"10s" help:"Fetch timeout per page"`

	Policy    string `env:"PRODDESC_POLICY" help:"YAML file overriding quality gate and link denylist"`
	Overwrite bool   `aliases:"no-skip-existing" help:"Regenerate descriptions that already exist"`
	Resume    bool   `default:"true" negatable:"" help:"Continue from the output file when it exists"`
	Verbose   bool   `short:"v" help:"Log every search, fetch and model call"`
}

// DescribeCmd reads the catalog, enriches it and reports the tallies.
type DescribeCmd struct {
	Input  string
	Output string
}

// Run executes the describe command.
func (c *DescribeCmd) Run(deps *Dependencies) error {
	table, err := deps.Source.ReadTable(deps.Ctx)
	if err != nil {
		return fmt.Errorf("read %s: %w", c.Input, err)
	}
	deps.Logger.Info("catalog loaded", "path", c.Input, "rows", len(table.Rows), "columns", len(table.Columns))

	res, err := deps.Processor.Run(deps.Ctx, table)
	if res != nil {
		fmt.Fprintf(deps.Stdout, "Described: %d\n", res.Processed)
		fmt.Fprintf(deps.Stdout, "Skipped:   %d (category: %d)\n", res.Skipped, res.Stamped)
		fmt.Fprintf(deps.Stdout, "Errors:    %d\n", res.Errored)
		fmt.Fprintf(deps.Stdout, "Saved to:  %s\n", c.Output)
	}
	if errors.Is(err, context.Canceled) {
		fmt.Fprintln(deps.Stdout, "Interrupted. Run again to continue.")
		return nil
	}
	return err
}
