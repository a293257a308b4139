package batch

import (
	"bufio"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/fwojciec/justext"
)

// ReadURLs reads one URL per line. Blank lines and lines starting with '#'
// are skipped.
func ReadURLs(r io.Reader) ([]string, error) {
	var urls []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read URLs: %w", err)
	}
	return urls, nil
}

// Canonical returns the form of rawURL used for de-duplication: lower-case
// scheme and host, no fragment, and "/" for an empty path. Only absolute
// http and https URLs are accepted.
func Canonical(rawURL string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return nil, justext.WrapError(justext.EINVALID, err, "invalid URL %q", rawURL)
	}
	u.Scheme = strings.ToLower(u.Scheme)
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, justext.Errorf(justext.EINVALID, "unsupported URL %q", rawURL)
	}
	if u.Host == "" {
		return nil, justext.Errorf(justext.EINVALID, "URL %q has no host", rawURL)
	}
	u.Host = strings.ToLower(u.Host)
	u.Fragment = ""
	u.RawFragment = ""
	if u.Path == "" {
		u.Path = "/"
	}
	return u, nil
}
