package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/alecthomas/kong"
	"github.com/fwojciec/justext"
	"github.com/fwojciec/justext/batch"
	"github.com/fwojciec/justext/extract"
	"github.com/fwojciec/justext/fs"
	"github.com/fwojciec/justext/goquery"
	"github.com/fwojciec/justext/htmlquery"
	"github.com/fwojciec/justext/htmltomarkdown"
	justexthttp "github.com/fwojciec/justext/http"
	"github.com/fwojciec/justext/lingua"
	"github.com/fwojciec/justext/readability"
	"github.com/fwojciec/justext/rod"
	jslog "github.com/fwojciec/justext/slog"
	"github.com/fwojciec/justext/sqlite"
	"github.com/fwojciec/justext/stopwords"
	"github.com/fwojciec/justext/trafilatura"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
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
	// Database path used when neither --db nor JUSTEXT_DB is set.
	DBPath string

	// Stdin is read by extract and batch when no input is named.
	Stdin io.Reader

	// Fetcher overrides the HTTP and browser fetchers. Set before calling Run().
	Fetcher justext.Fetcher

	// Sitemaps overrides sitemap discovery for batch --sitemap.
	Sitemaps justext.SitemapService

	// Baselines overrides the reference extractors used by compare.
	Baselines map[string]justext.BaselineExtractor

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
		Stdin:  os.Stdin,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("justext"),
		kong.Description("Remove boilerplate from HTML pages and keep the main text"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'justext --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	provider := stopwords.NewProvider()
	deps.Languages = provider
	deps.Locator = htmlquery.NewLocator()
	deps.Converter = htmltomarkdown.NewConverter()

	fetcher, err := m.fetcher(cli, deps.Logger)
	if err != nil {
		fmt.Fprintln(stderr, "Hint: --render needs Chrome or Chromium installed")
		return err
	}
	deps.Fetcher = jslog.NewLoggingFetcher(fetcher, deps.Logger)
	defer fetcher.Close()

	switch cmd {
	case "extract":
		deps.Extractor = m.extractor(deps.Logger, provider, cli.Extract.PruneFlags, cli.Extract.Detect)
		return kongCtx.Run(deps)

	case "compare":
		deps.Extractor = m.extractor(deps.Logger, provider, cli.Compare.PruneFlags, cli.Compare.Detect)
		deps.Baselines = m.Baselines
		if deps.Baselines == nil {
			deps.Baselines = map[string]justext.BaselineExtractor{
				"trafilatura": trafilatura.NewExtractor(),
				"readability": readability.NewExtractor(),
			}
		}
		return kongCtx.Run(deps)

	case "batch":
		deps.Extractor = m.extractor(deps.Logger, provider, cli.Batch.PruneFlags, cli.Batch.Detect)
		deps.RateLimiter = batch.NewDomainLimiter(cli.Batch.RPS)
		var sitemaps justext.SitemapService = justexthttp.NewSitemapService(nil)
		if m.Sitemaps != nil {
			sitemaps = m.Sitemaps
		}
		deps.Sitemaps = jslog.NewLoggingSitemapService(sitemaps, deps.Logger)
		if cli.Batch.Out != "" {
			deps.Writer = jslog.NewLoggingDocumentWriter(fs.NewWriter(cli.Batch.Out), deps.Logger)
			return kongCtx.Run(deps)
		}

	case "serve":
		deps.Extractor = m.extractor(deps.Logger, provider, cli.Serve.PruneFlags, cli.Serve.Detect)

	case "languages":
		return kongCtx.Run(deps)
	}

	dbPath := cli.DB
	if dbPath == "" {
		dbPath = m.DBPath
	}
	m.DB = sqlite.NewDB(dbPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set JUSTEXT_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", dbPath, err)
	}
	defer m.Close()

	documents := sqlite.NewDocumentService(m.DB)
	deps.Documents = documents
	deps.Writer = jslog.NewLoggingDocumentWriter(documents, deps.Logger)

	return kongCtx.Run(deps)
}

// fetcher returns m.Fetcher when set, a headless browser for --render,
// or a plain HTTP fetcher.
func (m *Main) fetcher(cli *CLI, logger *slog.Logger) (justext.Fetcher, error) {
	if m.Fetcher != nil {
		return m.Fetcher, nil
	}
	if cli.Extract.Render || cli.Batch.Render || cli.Compare.Render {
		return rod.NewFetcher(rod.WithLogger(logger))
	}
	return justexthttp.NewFetcher(), nil
}

// extractor wires the cleaner, stop words and, when asked for, the
// language detector into a logging extract.Service.
func (m *Main) extractor(logger *slog.Logger, provider *stopwords.Provider, prune PruneFlags, detect bool) justext.Extractor {
	opts := []goquery.Option{
		goquery.WithPrunedSelectors(prune.Prune...),
		goquery.WithLogger(logger),
	}
	if prune.PruneChrome {
		opts = append(opts, goquery.WithGeneratorChrome())
	}
	cleaner := goquery.NewCleaner(opts...)

	// The detector loads language models, so build it only when used.
	var detector justext.LanguageDetector
	if detect {
		detector = lingua.NewDetector(provider.Languages()...)
	}

	return jslog.NewLoggingExtractor(extract.NewService(cleaner, provider, detector), logger)
}

// defaultDBPath returns $XDG_DATA_HOME/justext/justext.db, creating the
// directory.
func defaultDBPath() string {
	path, err := xdg.DataFile(filepath.Join("justext", "justext.db"))
	if err != nil {
		return "justext.db"
	}
	return path
}
