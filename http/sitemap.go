package http

import (
	"bufio"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/justext"
)

// DefaultMaxSitemaps bounds how many sitemap files one discovery reads.
const DefaultMaxSitemaps = 100

// Ensure SitemapService implements justext.SitemapService.
var _ justext.SitemapService = (*SitemapService)(nil)

// SitemapService discovers page URLs by reading robots.txt and sitemap XML.
type SitemapService struct {
	client      *http.Client
	userAgent   string
	maxSitemaps int
}

// SitemapOption configures a SitemapService.
type SitemapOption func(*SitemapService)

// WithSitemapLimit sets how many sitemap files are read per discovery.
func WithSitemapLimit(n int) SitemapOption {
	return func(s *SitemapService) {
		s.maxSitemaps = n
	}
}

// NewSitemapService creates a SitemapService. A nil client uses
// http.DefaultClient.
func NewSitemapService(client *http.Client, opts ...SitemapOption) *SitemapService {
	if client == nil {
		client = http.DefaultClient
	}
	s := &SitemapService{
		client:      client,
		userAgent:   DefaultUserAgent,
		maxSitemaps: DefaultMaxSitemaps,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DiscoverURLs returns the deduplicated page URLs listed by the sitemaps of
// siteURL, in sitemap order. Returns an empty slice when the site has no
// sitemap.
func (s *SitemapService) DiscoverURLs(ctx context.Context, siteURL string, filter *justext.URLFilter) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	site, err := url.Parse(siteURL)
	if err != nil || site.Host == "" || (site.Scheme != "http" && site.Scheme != "https") {
		return nil, justext.Errorf(justext.EINVALID, "invalid site URL %q", siteURL)
	}

	var sitemaps []string
	prefix := ""
	if strings.HasSuffix(strings.ToLower(site.Path), ".xml") {
		sitemaps = []string{site.String()}
	} else {
		prefix = strings.TrimSuffix(site.Path, "/")
		sitemaps, err = s.locateSitemaps(ctx, site)
		if err != nil {
			return nil, err
		}
	}

	w := &sitemapWalk{service: s, seen: make(map[string]bool)}
	for _, sitemapURL := range sitemaps {
		if err := w.read(ctx, sitemapURL); err != nil {
			return nil, err
		}
	}

	urls := []string{}
	seen := make(map[string]bool, len(w.pages))
	for _, u := range w.pages {
		if seen[u] || !underPath(u, prefix) || !filter.Match(u) {
			continue
		}
		seen[u] = true
		urls = append(urls, u)
	}
	return urls, nil
}

// locateSitemaps lists the Sitemap directives of robots.txt, falling back
// to /sitemap.xml when robots.txt has none.
func (s *SitemapService) locateSitemaps(ctx context.Context, site *url.URL) ([]string, error) {
	robots := site.ResolveReference(&url.URL{Path: "/robots.txt"}).String()
	fallback := site.ResolveReference(&url.URL{Path: "/sitemap.xml"}).String()

	body, err := s.get(ctx, robots)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return []string{fallback}, nil
	}
	defer body.Close()

	var sitemaps []string
	scanner := bufio.NewScanner(body)
	for scanner.Scan() {
		key, value, ok := strings.Cut(scanner.Text(), ":")
		if !ok || !strings.EqualFold(strings.TrimSpace(key), "sitemap") {
			continue
		}
		if v := strings.TrimSpace(value); v != "" {
			sitemaps = append(sitemaps, v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, justext.WrapError(justext.EPARSE, err, "failed to read %s", robots)
	}

	if len(sitemaps) == 0 {
		return []string{fallback}, nil
	}
	return sitemaps, nil
}

// sitemapWalk follows sitemap indexes depth first and collects page URLs.
type sitemapWalk struct {
	service *SitemapService
	seen    map[string]bool
	pages   []string
}

func (w *sitemapWalk) read(ctx context.Context, sitemapURL string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if w.seen[sitemapURL] || len(w.seen) >= w.service.maxSitemaps {
		return nil
	}
	w.seen[sitemapURL] = true

	body, err := w.service.get(ctx, sitemapURL)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		// A missing sitemap is not an error for discovery.
		if justext.ErrorCode(err) == justext.ENOTFOUND {
			return nil
		}
		return err
	}
	defer body.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(body); err != nil {
		return justext.WrapError(justext.EPARSE, err, "failed to parse sitemap %s", sitemapURL)
	}
	root := doc.Root()
	if root == nil {
		return justext.Errorf(justext.EPARSE, "empty sitemap %s", sitemapURL)
	}

	switch root.Tag {
	case "sitemapindex":
		for _, child := range locations(root, "sitemap") {
			if err := w.read(ctx, child); err != nil {
				return err
			}
		}
	case "urlset":
		w.pages = append(w.pages, locations(root, "url")...)
	default:
		return justext.Errorf(justext.EPARSE, "unexpected root element <%s> in %s", root.Tag, sitemapURL)
	}
	return nil
}

// locations returns the trimmed <loc> text of each child element named tag.
func locations(root *etree.Element, tag string) []string {
	var locs []string
	for _, el := range root.SelectElements(tag) {
		loc := el.SelectElement("loc")
		if loc == nil {
			continue
		}
		if text := strings.TrimSpace(loc.Text()); text != "" {
			locs = append(locs, text)
		}
	}
	return locs
}

// underPath reports whether rawURL's path is prefix or below it. An empty
// prefix matches every URL.
func underPath(rawURL, prefix string) bool {
	if prefix == "" {
		return true
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return u.Path == prefix || strings.HasPrefix(u.Path, prefix+"/")
}

func (s *SitemapService) get(ctx context.Context, target string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, justext.WrapError(justext.EINVALID, err, "invalid URL %q", target)
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		return resp.Body, nil
	case resp.StatusCode == http.StatusNotFound, resp.StatusCode == http.StatusGone:
		resp.Body.Close()
		return nil, justext.Errorf(justext.ENOTFOUND, "HTTP %d for %s", resp.StatusCode, target)
	default:
		resp.Body.Close()
		return nil, justext.Errorf(justext.EINTERNAL, "HTTP %d for %s", resp.StatusCode, target)
	}
}
