// Package stopwords provides the built-in stop-word lists.
package stopwords

import (
	"bufio"
	"bytes"
	"embed"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/fwojciec/justext"
)

//go:embed data/*.txt
var data embed.FS

// Ensure Provider implements justext.StopWordsProvider.
var _ justext.StopWordsProvider = (*Provider)(nil)

// Provider loads embedded stop-word lists keyed by ISO 639-1 code. Lists
// are parsed on first use and cached. Safe for concurrent use.
type Provider struct {
	mu    sync.Mutex
	cache map[string]justext.StopWords
}

// NewProvider creates a new Provider.
func NewProvider() *Provider {
	return &Provider{cache: make(map[string]justext.StopWords)}
}

// StopWords returns the list for code. Returns ENOTFOUND for a language
// without a list.
func (p *Provider) StopWords(code string) (justext.StopWords, error) {
	code = strings.ToLower(strings.TrimSpace(code))
	if !validCode(code) {
		return justext.StopWords{}, justext.Errorf(justext.ENOTFOUND, "language code %q doesn't exist", code)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if sw, ok := p.cache[code]; ok {
		return sw, nil
	}

	raw, err := data.ReadFile(path.Join("data", code+".txt"))
	if err != nil {
		return justext.StopWords{}, justext.Errorf(justext.ENOTFOUND, "language code %q doesn't exist", code)
	}

	sw := justext.NewStopWords(parse(raw)...)
	p.cache[code] = sw
	return sw, nil
}

// Languages returns the supported codes in sorted order.
func (p *Provider) Languages() []string {
	entries, err := fs.ReadDir(data, "data")
	if err != nil {
		return nil
	}
	codes := make([]string, 0, len(entries))
	for _, e := range entries {
		if code, ok := strings.CutSuffix(e.Name(), ".txt"); ok {
			codes = append(codes, code)
		}
	}
	sort.Strings(codes)
	return codes
}

// parse returns one word per non-empty line.
func parse(raw []byte) []string {
	var words []string
	scanner := bufio.NewScanner(bytes.NewReader(raw))
	for scanner.Scan() {
		if w := strings.TrimSpace(scanner.Text()); w != "" {
			words = append(words, w)
		}
	}
	return words
}

func validCode(code string) bool {
	if len(code) < 2 || len(code) > 3 {
		return false
	}
	for _, r := range code {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
