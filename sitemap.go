package justext

import (
	"context"
	"regexp"
)

// SitemapService discovers page URLs from a site's sitemaps.
type SitemapService interface {
	// DiscoverURLs returns the page URLs listed in the sitemaps of siteURL.
	// Sitemaps are read from robots.txt, falling back to /sitemap.xml.
	// A siteURL ending in .xml is read as a sitemap itself. When siteURL
	// has a path, only pages under that path are returned.
	//
	// A nil filter keeps every URL.
	DiscoverURLs(ctx context.Context, siteURL string, filter *URLFilter) ([]string, error)
}

// URLFilter keeps URLs matching any Include pattern and no Exclude pattern.
// An empty Include list matches every URL.
type URLFilter struct {
	Include []*regexp.Regexp
	Exclude []*regexp.Regexp
}

// NewURLFilter compiles include and exclude patterns. Returns nil when
// both lists are empty.
func NewURLFilter(include, exclude []string) (*URLFilter, error) {
	if len(include) == 0 && len(exclude) == 0 {
		return nil, nil
	}

	f := &URLFilter{}
	for _, pattern := range include {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, WrapError(EINVALID, err, "invalid include pattern %q", pattern)
		}
		f.Include = append(f.Include, re)
	}
	for _, pattern := range exclude {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, WrapError(EINVALID, err, "invalid exclude pattern %q", pattern)
		}
		f.Exclude = append(f.Exclude, re)
	}
	return f, nil
}

// Match reports whether url passes the filter. A nil filter matches
// everything.
func (f *URLFilter) Match(url string) bool {
	if f == nil {
		return true
	}

	if len(f.Include) > 0 && !matchAny(f.Include, url) {
		return false
	}
	return !matchAny(f.Exclude, url)
}

func matchAny(patterns []*regexp.Regexp, s string) bool {
	for _, re := range patterns {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}
