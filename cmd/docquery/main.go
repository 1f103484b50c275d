// Command docquery queries third-party documentation sources through the
// aggregation engine and prints the assembled response as JSON. It is a
// thin transport adapter: validation, wiring, and exit-status mapping
// live here; everything else belongs to the engine packages.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docquery"
	"github.com/fwojciec/docquery/aggregate"
	"github.com/fwojciec/docquery/docsite"
	"github.com/fwojciec/docquery/github"
	dqgoquery "github.com/fwojciec/docquery/goquery"
	dqhttp "github.com/fwojciec/docquery/http"
	"github.com/fwojciec/docquery/htmltomarkdown"
	"github.com/fwojciec/docquery/pypi"
	dqslog "github.com/fwojciec/docquery/slog"
	"github.com/fwojciec/docquery/trafilatura"
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
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docquery"),
		kong.Description("Query documentation sources through the aggregation engine"),
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

	query, err := cli.Query()
	if err != nil {
		return err
	}

	logLevel := slog.LevelWarn
	if cli.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: logLevel}))

	agg := dqslog.NewLoggingAggregator(buildAggregator(cli.Config(), logger), logger)

	result, err := agg.Aggregate(ctx, query)
	if err != nil {
		return err
	}

	asm := &aggregate.Assembler{}
	response := asm.Assemble(query, result)

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(response); err != nil {
		return err
	}

	// Mirror the transport status contract: partial success still
	// succeeds, total upstream failure does not.
	if result.TotalFailure() {
		return fmt.Errorf("all sources failed for kind %q", query.Kind)
	}
	if result.Partial() {
		logger.Warn("partial result", "outcomes", len(result.Outcomes))
	}
	return nil
}

// buildAggregator wires the engine from an explicit configuration.
func buildAggregator(cfg docquery.Config, logger *slog.Logger) *aggregate.Aggregator {
	client := dqhttp.NewClient(
		dqhttp.WithTimeout(cfg.SourceTimeout),
		dqhttp.WithRequestsPerSec(cfg.RequestsPerSec),
	)
	repoClient := dqhttp.NewClient(
		dqhttp.WithTimeout(cfg.SourceTimeout),
		dqhttp.WithRequestsPerSec(cfg.RequestsPerSec),
		dqhttp.WithToken(cfg.RepoToken),
	)

	sources := []docquery.Source{
		docsite.New(client, cfg.DocsBaseURL,
			docsite.WithSectionFinder(dqhttp.NewSitemapFinder(client)),
			docsite.WithExtractor(trafilatura.NewExtractor()),
			docsite.WithConverter(htmltomarkdown.NewConverter()),
		),
		github.New(repoClient, cfg.RepoAPIBaseURL),
		pypi.New(client, cfg.IndexBaseURL, cfg.PackageName),
	}
	for i, src := range sources {
		sources[i] = dqslog.NewLoggingSource(src, logger)
	}

	return &aggregate.Aggregator{
		Sources:       sources,
		Normalizer:    dqgoquery.NewNormalizer(),
		SourceTimeout: cfg.SourceTimeout,
		QueryDeadline: cfg.QueryDeadline,
	}
}
