// Package cmd — scrape command.
// This is the main command that orchestrates the pipeline:
// fetch → extract → normalize media → render → write.
//
// It handles flag validation, config merging, renderer selection, and the
// --only / --all modes.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/ogmedia/config"
	"github.com/gaurav-prasanna/ogmedia/core"
	"github.com/gaurav-prasanna/ogmedia/core/extract"
	"github.com/gaurav-prasanna/ogmedia/core/fetch"
	"github.com/gaurav-prasanna/ogmedia/core/fields"
	"github.com/gaurav-prasanna/ogmedia/core/normalize"
	"github.com/gaurav-prasanna/ogmedia/core/output"
	"github.com/gaurav-prasanna/ogmedia/core/render"
	"github.com/gaurav-prasanna/ogmedia/crawl"
)

// Flag variables.
var (
	flagOnly      bool
	flagAll       bool
	flagPDF       bool
	flagMarkdown  bool
	flagJSON      bool
	flagAllMedia  bool
	flagStdout    bool
	flagOutputDir string
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape <url>",
	Short: "Scrape the media meta tags of a URL",
	Long: `Scrape fetches a webpage, reads its Open Graph, Twitter Card and music meta
tags, consolidates the image, video, player and song groups into ranked
records, and writes the result in the chosen format (JSON by default).

Examples:
  ogmedia scrape https://example.com
  ogmedia scrape https://example.com --all-media --stdout
  ogmedia scrape https://example.com --markdown --output_dir ./out
  ogmedia scrape https://example.com --all --pdf`,
	Args: cobra.ExactArgs(1),
	RunE: runScrape,
}

func init() {
	rootCmd.AddCommand(scrapeCmd)

	// Mode flags.
	scrapeCmd.Flags().BoolVar(&flagOnly, "only", false, "Scrape only the given URL (default)")
	scrapeCmd.Flags().BoolVar(&flagAll, "all", false, "Scrape all discovered sub-pages")

	// Output format flags (mutually exclusive).
	scrapeCmd.Flags().BoolVar(&flagPDF, "pdf", false, "Output PDF")
	scrapeCmd.Flags().BoolVar(&flagMarkdown, "markdown", false, "Output Markdown")
	scrapeCmd.Flags().BoolVar(&flagJSON, "json", false, "Output structured JSON")

	scrapeCmd.Flags().BoolVar(&flagAllMedia, "all-media", false, "Keep every ranked media record instead of only the best one")
	scrapeCmd.Flags().BoolVar(&flagStdout, "stdout", false, "Write to stdout instead of a file (--only mode)")
	scrapeCmd.Flags().StringVar(&flagOutputDir, "output_dir", "", "Output directory (default: current directory)")
}

// pipeline bundles the stages a page goes through.
type pipeline struct {
	fetcher    core.Fetcher
	extractor  core.Extractor
	normalizer core.Normalizer
	renderer   core.Renderer
}

func runScrape(cmd *cobra.Command, args []string) error {
	rawURL := args[0]

	if err := validateFlags(); err != nil {
		return err
	}

	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("invalid URL: %s (must include scheme, e.g. https://example.com)", rawURL)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	renderer, err := selectRenderer(cfg.Format)
	if err != nil {
		return err
	}

	fetcher := fetch.New(cfg.UserAgent, cfg.Timeout())
	p := pipeline{
		fetcher:    fetcher,
		extractor:  extract.New(fields.Catalog),
		normalizer: normalize.New(fields.Catalog, core.Options{AllMedia: cfg.AllMedia}),
		renderer:   renderer,
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if flagStdout && !flagAll {
		data, _, err := p.process(ctx, rawURL)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	writer, err := output.New(cfg.OutputDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	if flagAll {
		return runAll(ctx, cmd, rawURL, p, writer, cfg.MaxPages)
	}
	return runOnly(ctx, cmd, rawURL, p, writer)
}

// loadConfig reads the config file and environment, then applies the flags
// the user set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, errs := config.Load(flagConfig)
	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid configuration: %w", errs[0])
	}

	flags := cmd.Flags()
	if flags.Changed("all-media") {
		cfg.AllMedia = flagAllMedia
	}
	if flags.Changed("output_dir") {
		cfg.OutputDir = flagOutputDir
	}
	switch {
	case flagJSON:
		cfg.Format = "json"
	case flagMarkdown:
		cfg.Format = "markdown"
	case flagPDF:
		cfg.Format = "pdf"
	}
	return cfg, nil
}

// runOnly processes a single URL through the pipeline.
func runOnly(ctx context.Context, cmd *cobra.Command, rawURL string, p pipeline, writer *output.Writer) error {
	data, _, err := p.process(ctx, rawURL)
	if err != nil {
		return err
	}

	path, err := writer.WriteOnly(rawURL, data, p.renderer.Extension())
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Written: %s\n", path)
	return nil
}

// runAll discovers all internal pages and processes each through the pipeline.
func runAll(ctx context.Context, cmd *cobra.Command, rawURL string, p pipeline, writer *output.Writer, maxPages int) error {
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()
	fmt.Fprintf(stdout, "Discovering pages from %s...\n", rawURL)

	urls, err := crawl.DiscoverAll(ctx, rawURL, p.fetcher, maxPages)
	if err != nil {
		return fmt.Errorf("discovering pages: %w", err)
	}

	fmt.Fprintf(stdout, "Found %d pages to process\n", len(urls))

	var errCount int
	for i, pageURL := range urls {
		fmt.Fprintf(stdout, "[%d/%d] Processing %s\n", i+1, len(urls), pageURL)

		data, _, err := p.process(ctx, pageURL)
		if err != nil {
			fmt.Fprintf(stderr, "  ✗ Error: %v\n", err)
			errCount++
			continue
		}

		path, err := writer.WriteAll(pageURL, data, p.renderer.Extension())
		if err != nil {
			fmt.Fprintf(stderr, "  ✗ Write error: %v\n", err)
			errCount++
			continue
		}
		fmt.Fprintf(stdout, "  ✓ Written: %s\n", path)
	}

	if errCount > 0 {
		fmt.Fprintf(stderr, "\n%d/%d pages failed\n", errCount, len(urls))
	}
	return nil
}

// process runs a single URL through the full pipeline.
func (p pipeline) process(ctx context.Context, rawURL string) ([]byte, core.PageJSON, error) {
	// 1. Fetch
	result, err := p.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, core.PageJSON{}, fmt.Errorf("fetch: %w", err)
	}

	// 2. Extract meta tags
	extraction, err := p.extractor.Extract(result.HTML)
	if err != nil {
		return nil, core.PageJSON{}, fmt.Errorf("extract: %w", err)
	}

	// 3. Consolidate media groups
	page := core.PageJSON{
		Metadata: buildMetadata(rawURL, extraction),
		Meta:     p.normalizer.Normalize(extraction.Meta),
	}

	// 4. Render to output format
	data, err := p.renderer.Render(page)
	if err != nil {
		return nil, core.PageJSON{}, fmt.Errorf("render: %w", err)
	}

	return data, page, nil
}

// buildMetadata constructs PageMetadata from the URL and extracted document.
func buildMetadata(rawURL string, extraction *core.Extraction) core.PageMetadata {
	meta := core.PageMetadata{
		URL:       rawURL,
		Title:     extraction.Title,
		Language:  extraction.Language,
		FetchedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if parsed, err := url.Parse(rawURL); err == nil {
		meta.Domain = parsed.Host
		meta.Path = parsed.Path
	}
	return meta
}

// validateFlags checks that at most one output format is chosen and
// that --only and --all are not both specified.
func validateFlags() error {
	if flagOnly && flagAll {
		return fmt.Errorf("--only and --all are mutually exclusive")
	}

	formatCount := 0
	for _, set := range []bool{flagPDF, flagMarkdown, flagJSON} {
		if set {
			formatCount++
		}
	}
	if formatCount > 1 {
		return fmt.Errorf("only one output format allowed per run (got %d)", formatCount)
	}

	if flagStdout && flagAll {
		slog.Warn("--stdout is ignored with --all")
	}
	return nil
}

// selectRenderer creates the Renderer for a format name.
func selectRenderer(format string) (core.Renderer, error) {
	switch format {
	case "", "json":
		return render.NewJSONRenderer(), nil
	case "markdown":
		return render.NewMarkdownRenderer(), nil
	case "pdf":
		return render.NewPDFRenderer(), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}
