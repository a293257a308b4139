package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/justext"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Extractor   justext.Extractor
	Fetcher     justext.Fetcher
	Documents   justext.DocumentService
	Writer      justext.DocumentWriter
	RateLimiter justext.DomainLimiter
	Sitemaps    justext.SitemapService
	Languages   justext.StopWordsProvider
	Locator     justext.Locator
	Converter   justext.Converter
	Baselines   map[string]justext.BaselineExtractor
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool   `short:"v" help:"Log progress and timings to stderr"`
	DB      string `env:"JUSTEXT_DB" type:"path" help:"SQLite database path (default: $XDG_DATA_HOME/justext/justext.db)"`

	Extract   ExtractCmd   `cmd:"" help:"Extract the main content of an HTML document"`
	Batch     BatchCmd     `cmd:"" help:"Extract and store documents for a list of URLs"`
	List      ListCmd      `cmd:"" help:"List stored documents"`
	Show      ShowCmd      `cmd:"" help:"Show a stored document"`
	Delete    DeleteCmd    `cmd:"" help:"Delete a stored document"`
	Languages LanguagesCmd `cmd:"" help:"List supported stop-word languages"`
	Compare   CompareCmd   `cmd:"" help:"Score extraction against another extractor's output"`
	Serve     ServeCmd     `cmd:"" help:"Serve extraction and stored documents over HTTP"`
}

// ClassifierFlags override the classifier thresholds. Negative values keep
// the value from --profile, or the default.
type ClassifierFlags struct {
	Profile            string  `type:"path" help:"YAML file with classifier thresholds"`
	LengthLow          int     `default:"-1" help:"Blocks shorter than this are short"`
	LengthHigh         int     `default:"-1" help:"Blocks longer than this may be good"`
	StopWordsLow       float64 `name:"stopwords-low" default:"-1" help:"Stop-word density below which a block is bad"`
	StopWordsHigh      float64 `name:"stopwords-high" default:"-1" help:"Stop-word density above which a long block is good"`
	MaxLinkDensity     float64 `default:"-1" help:"Link density above which a block is bad"`
	MaxHeadingDistance int     `default:"-1" help:"Characters a heading may precede good content"`
	NoHeadings         bool    `help:"Disable heading promotion"`
}

// PruneFlags select markup removed before segmentation.
type PruneFlags struct {
	Prune       []string `help:"Extra CSS selectors to remove before extraction (repeatable)"`
	PruneChrome bool     `help:"Detect documentation site generators and remove their navigation"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Source          string `arg:"" optional:"" help:"HTML file or http(s) URL; reads stdin when omitted or '-'"`
	SourceURL       string `name:"source-url" help:"Source URL recorded for file and stdin input"`
	Format          string `short:"f" enum:"text,json,markdown,html" default:"text" help:"Output format (text, json, markdown, html)"`
	KeepBoilerplate bool   `short:"k" help:"Include boilerplate paragraphs"`
	Language        string `short:"l" env:"JUSTEXT_LANGUAGE" help:"Stop-word language (ISO 639-1 code)"`
	Detect          bool   `short:"d" help:"Detect the language when --language is not set"`
	Render          bool   `help:"Render URLs in headless Chrome before extraction"`

	PruneFlags      `embed:""`
	ClassifierFlags `embed:""`
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	Input           string   `arg:"" optional:"" help:"File with one URL per line; reads stdin when omitted or '-'"`
	Sitemap         string   `help:"Discover URLs from the sitemaps of this site, or from this sitemap XML URL"`
	Include         []string `sep:"none" help:"With --sitemap, keep URLs matching this regexp (repeatable)"`
	Exclude         []string `sep:"none" help:"With --sitemap, drop URLs matching this regexp (repeatable)"`
	Out             string   `short:"o" type:"path" help:"Write text files to this directory instead of the database"`
	Concurrency     int      `short:"c" default:"10" help:"Concurrent fetch limit"`
	RPS             float64  `name:"rps" default:"1" help:"Requests per second per host (0 disables the limit)"`
	SkipEmpty       bool     `help:"Do not store documents without good paragraphs"`
	KeepBoilerplate bool     `short:"k" help:"Store boilerplate paragraphs too"`
	Language        string   `short:"l" env:"JUSTEXT_LANGUAGE" help:"Stop-word language (ISO 639-1 code)"`
	Detect          bool     `short:"d" help:"Detect the language of each page when --language is not set"`
	Render          bool     `help:"Render pages in headless Chrome before extraction"`

	PruneFlags      `embed:""`
	ClassifierFlags `embed:""`
}

// CompareCmd is the "compare" subcommand.
type CompareCmd struct {
	Source   string `arg:"" optional:"" help:"HTML file or http(s) URL; reads stdin when omitted or '-'"`
	Baseline string `short:"b" enum:"trafilatura,readability" default:"trafilatura" help:"Reference extractor (trafilatura, readability)"`
	Format   string `short:"f" enum:"text,json" default:"text" help:"Output format (text, json)"`
	Language string `short:"l" env:"JUSTEXT_LANGUAGE" help:"Stop-word language (ISO 639-1 code)"`
	Detect   bool   `short:"d" help:"Detect the language when --language is not set"`
	Render   bool   `help:"Render URLs in headless Chrome before extraction"`

	PruneFlags      `embed:""`
	ClassifierFlags `embed:""`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr   string `default:"localhost:8080" help:"Address to listen on"`
	Detect bool   `short:"d" help:"Load language models so requests may set detect=true"`

	PruneFlags `embed:""`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	URL      string `help:"Only documents from this source URL"`
	Language string `short:"l" help:"Only documents in this language"`
	Limit    int    `short:"n" default:"50" help:"Maximum number of documents"`
	Offset   int    `help:"Number of documents to skip"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID     string `arg:"" help:"Document ID"`
	Format string `short:"f" enum:"text,json,markdown" default:"text" help:"Output format (text, json, markdown)"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Document ID"`
	Force bool   `help:"Confirm deletion"`
}

// LanguagesCmd is the "languages" subcommand.
type LanguagesCmd struct{}
