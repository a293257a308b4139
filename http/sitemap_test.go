package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fwojciec/justext"
	justexthttp "github.com/fwojciec/justext/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSiteServer serves routes, replacing {{BASE}} with the server URL.
func newSiteServer(t *testing.T, routes map[string]string) *httptest.Server {
	t.Helper()

	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := routes[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(strings.ReplaceAll(body, "{{BASE}}", srv.URL)))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func urlset(locs ...string) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n")
	for _, loc := range locs {
		b.WriteString("  <url><loc>" + loc + "</loc></url>\n")
	}
	b.WriteString("</urlset>")
	return b.String()
}

func TestSitemapService_DiscoverURLs(t *testing.T) {
	t.Parallel()

	t.Run("reads sitemaps named in robots.txt", func(t *testing.T) {
		t.Parallel()

		srv := newSiteServer(t, map[string]string{
			"/robots.txt":  "User-agent: *\nDisallow: /private/\nSitemap: {{BASE}}/pages.xml\n",
			"/pages.xml":   urlset("{{BASE}}/a", "{{BASE}}/b"),
			"/sitemap.xml": urlset("{{BASE}}/ignored"),
		})

		urls, err := justexthttp.NewSitemapService(srv.Client()).DiscoverURLs(context.Background(), srv.URL, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/a", srv.URL + "/b"}, urls)
	})

	t.Run("falls back to sitemap.xml", func(t *testing.T) {
		t.Parallel()

		srv := newSiteServer(t, map[string]string{
			"/sitemap.xml": urlset("{{BASE}}/page"),
		})

		urls, err := justexthttp.NewSitemapService(srv.Client()).DiscoverURLs(context.Background(), srv.URL, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/page"}, urls)
	})

	t.Run("follows sitemap indexes", func(t *testing.T) {
		t.Parallel()

		srv := newSiteServer(t, map[string]string{
			"/sitemap.xml": `<?xml version="1.0" encoding="UTF-8"?>
<sitemapindex xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <sitemap><loc>{{BASE}}/one.xml</loc></sitemap>
  <sitemap><loc>{{BASE}}/two.xml</loc></sitemap>
  <sitemap><loc>{{BASE}}/one.xml</loc></sitemap>
</sitemapindex>`,
			"/one.xml": urlset("{{BASE}}/1", "{{BASE}}/shared"),
			"/two.xml": urlset("{{BASE}}/2", "{{BASE}}/shared"),
		})

		urls, err := justexthttp.NewSitemapService(srv.Client()).DiscoverURLs(context.Background(), srv.URL, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/1", srv.URL + "/shared", srv.URL + "/2"}, urls)
	})

	t.Run("reads an explicit sitemap URL", func(t *testing.T) {
		t.Parallel()

		srv := newSiteServer(t, map[string]string{
			"/feeds/news.xml": urlset("{{BASE}}/news/1"),
		})

		urls, err := justexthttp.NewSitemapService(srv.Client()).DiscoverURLs(context.Background(), srv.URL+"/feeds/news.xml", nil)
		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/news/1"}, urls)
	})

	t.Run("keeps pages under the site path", func(t *testing.T) {
		t.Parallel()

		srv := newSiteServer(t, map[string]string{
			"/sitemap.xml": urlset("{{BASE}}/blog", "{{BASE}}/blog/post", "{{BASE}}/blogroll", "{{BASE}}/about"),
		})

		urls, err := justexthttp.NewSitemapService(srv.Client()).DiscoverURLs(context.Background(), srv.URL+"/blog/", nil)
		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/blog", srv.URL + "/blog/post"}, urls)
	})

	t.Run("applies the filter", func(t *testing.T) {
		t.Parallel()

		srv := newSiteServer(t, map[string]string{
			"/sitemap.xml": urlset("{{BASE}}/post/1", "{{BASE}}/post/2.pdf", "{{BASE}}/tag/go"),
		})

		filter, err := justext.NewURLFilter([]string{`/post/`}, []string{`\.pdf$`})
		require.NoError(t, err)

		urls, err := justexthttp.NewSitemapService(srv.Client()).DiscoverURLs(context.Background(), srv.URL, filter)
		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/post/1"}, urls)
	})

	t.Run("no sitemap returns empty slice", func(t *testing.T) {
		t.Parallel()

		srv := newSiteServer(t, map[string]string{})

		urls, err := justexthttp.NewSitemapService(srv.Client()).DiscoverURLs(context.Background(), srv.URL, nil)
		require.NoError(t, err)
		assert.NotNil(t, urls)
		assert.Empty(t, urls)
	})

	t.Run("stops at the sitemap limit", func(t *testing.T) {
		t.Parallel()

		srv := newSiteServer(t, map[string]string{
			"/sitemap.xml": `<sitemapindex><sitemap><loc>{{BASE}}/one.xml</loc></sitemap></sitemapindex>`,
			"/one.xml":     urlset("{{BASE}}/1"),
		})

		svc := justexthttp.NewSitemapService(srv.Client(), justexthttp.WithSitemapLimit(1))
		urls, err := svc.DiscoverURLs(context.Background(), srv.URL, nil)
		require.NoError(t, err)
		assert.Empty(t, urls)
	})

	t.Run("malformed XML is a parse error", func(t *testing.T) {
		t.Parallel()

		srv := newSiteServer(t, map[string]string{
			"/sitemap.xml": "<urlset><url a=></url></urlset>",
		})

		_, err := justexthttp.NewSitemapService(srv.Client()).DiscoverURLs(context.Background(), srv.URL, nil)
		assert.Equal(t, justext.EPARSE, justext.ErrorCode(err))
	})

	t.Run("rejects non-http site URL", func(t *testing.T) {
		t.Parallel()

		_, err := justexthttp.NewSitemapService(nil).DiscoverURLs(context.Background(), "ftp://example.com", nil)
		assert.Equal(t, justext.EINVALID, justext.ErrorCode(err))
	})

	t.Run("honors canceled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := justexthttp.NewSitemapService(nil).DiscoverURLs(ctx, "https://example.com", nil)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
