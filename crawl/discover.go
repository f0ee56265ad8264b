// Package crawl provides same-site page discovery for --all mode.
// It discovers internal pages via sitemap.xml and link extraction,
// keeping crawling logic separate from the metadata pipeline.
package crawl

import (
	"context"
	"encoding/xml"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/gaurav-prasanna/ogmedia/core"
)

// DefaultMaxPages bounds a link crawl when no limit is configured.
const DefaultMaxPages = 100

// sitemapURL holds a URL from a sitemap.xml.
type sitemapURL struct {
	Loc string `xml:"loc"`
}

// sitemapIndex is the root element of a sitemap.xml.
type sitemapIndex struct {
	URLs []sitemapURL `xml:"url"`
}

// DiscoverAll finds the internal pages to process starting from baseURL.
// It first tries sitemap.xml, then falls back to link crawling bounded by
// maxPages (DefaultMaxPages when <= 0).
func DiscoverAll(ctx context.Context, baseURL string, fetcher core.Fetcher, maxPages int) ([]string, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}
	domain := parsed.Host

	sitemapLoc := fmt.Sprintf("%s://%s/sitemap.xml", parsed.Scheme, domain)
	urls, err := discoverFromSitemap(ctx, sitemapLoc, domain, fetcher)
	if err == nil && len(urls) > 0 {
		if len(urls) > maxPages {
			urls = urls[:maxPages]
		}
		return urls, nil
	}
	if err != nil {
		slog.Debug("sitemap unavailable, crawling links", "sitemap", sitemapLoc, "error", err)
	}

	return discoverFromLinks(ctx, baseURL, domain, fetcher, maxPages), nil
}

// discoverFromSitemap fetches and parses sitemap.xml for internal URLs.
func discoverFromSitemap(ctx context.Context, sitemapLoc string, domain string, fetcher core.Fetcher) ([]string, error) {
	result, err := fetcher.Fetch(ctx, sitemapLoc)
	if err != nil {
		return nil, err
	}

	var sitemap sitemapIndex
	if err := xml.Unmarshal([]byte(result.HTML), &sitemap); err != nil {
		return nil, fmt.Errorf("parsing sitemap: %w", err)
	}

	queue := NewQueue()
	for _, u := range sitemap.URLs {
		loc := strings.TrimSpace(u.Loc)
		if IsSameDomain(loc, domain) && !IsStaticAsset(loc) {
			queue.Add(NormalizeURL(loc))
		}
	}
	return queue.All(), nil
}

// discoverFromLinks performs BFS crawling to find internal links.
func discoverFromLinks(ctx context.Context, startURL string, domain string, fetcher core.Fetcher, maxPages int) []string {
	queue := NewQueue()
	queue.Add(NormalizeURL(startURL))

	for queue.HasNext() && queue.Visited() < maxPages {
		if ctx.Err() != nil {
			break
		}
		currentURL := queue.Next()

		result, err := fetcher.Fetch(ctx, currentURL)
		if err != nil {
			slog.Debug("skipping page", "url", currentURL, "error", err)
			continue
		}

		links, err := extractLinks(result.HTML, currentURL)
		if err != nil {
			slog.Debug("skipping links", "url", currentURL, "error", err)
			continue
		}

		for _, link := range links {
			if queue.Visited() >= maxPages {
				break
			}
			link = NormalizeURL(link)
			if queue.Seen(link) || !IsSameDomain(link, domain) || IsStaticAsset(link) {
				continue
			}
			queue.Add(link)
		}
	}

	return queue.All()
}

// extractLinks extracts all href values from <a> tags, resolving relative URLs.
func extractLinks(html string, baseURL string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}

	var links []string
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, exists := s.Attr("href")
		if !exists || href == "" {
			return
		}
		if resolved := resolveURL(href, base); resolved != "" {
			links = append(links, resolved)
		}
	})

	return links, nil
}

// resolveURL resolves a potentially relative URL against a base.
func resolveURL(href string, base *url.URL) string {
	// Skip mailto, javascript, etc.
	if strings.HasPrefix(href, "mailto:") || strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "tel:") || strings.HasPrefix(href, "#") {
		return ""
	}

	parsed, err := url.Parse(href)
	if err != nil {
		return ""
	}

	resolved := base.ResolveReference(parsed)
	resolved.Fragment = ""
	return resolved.String()
}
