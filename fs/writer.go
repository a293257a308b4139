// Package fs writes extracted documents as plain-text files.
package fs

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/justext"
	"gopkg.in/yaml.v3"
)

// URLToPath converts a document URL to a relative file path under its host.
// Example: https://example.com/docs/api/users → example.com/docs/api/users.txt
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", justext.WrapError(justext.EINVALID, err, "invalid URL %q", rawURL)
	}
	if u.Host == "" {
		return "", justext.Errorf(justext.EINVALID, "URL %q has no host", rawURL)
	}

	host := strings.ToLower(u.Hostname())
	path := strings.TrimPrefix(u.Path, "/")

	var rel string
	switch {
	case path == "":
		rel = "index.txt"
	case strings.HasSuffix(path, "/"):
		rel = path + "index.txt"
	default:
		rel = strings.TrimSuffix(strings.TrimSuffix(path, ".html"), ".htm") + ".txt"
	}

	full := filepath.Join(host, filepath.FromSlash(rel))
	if !strings.HasPrefix(full, host+string(filepath.Separator)) {
		return "", justext.Errorf(justext.EINVALID, "path traversal in URL %q", rawURL)
	}
	return full, nil
}

// frontMatter is the YAML header written above the document text.
type frontMatter struct {
	Source      string `yaml:"source"`
	Language    string `yaml:"language,omitempty"`
	ContentHash string `yaml:"content_hash,omitempty"`
	Extracted   string `yaml:"extracted"`
	Paragraphs  int    `yaml:"paragraphs"`
}

// FormatDocument formats the good text of a document with YAML frontmatter.
func FormatDocument(doc *justext.Document) (string, error) {
	header, err := yaml.Marshal(frontMatter{
		Source:      doc.SourceURL,
		Language:    doc.Language,
		ContentHash: doc.ContentHash,
		Extracted:   doc.ExtractedAt.UTC().Format(time.RFC3339),
		Paragraphs:  len(doc.Good()),
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode frontmatter: %w", err)
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(header)
	b.WriteString("---\n\n")
	b.WriteString(doc.Text())
	if len(doc.Good()) > 0 {
		b.WriteString("\n")
	}
	return b.String(), nil
}

// Ensure Writer implements justext.DocumentWriter at compile time.
var _ justext.DocumentWriter = (*Writer)(nil)

// Writer writes documents as text files to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// CreateDocument writes a document to disk. The file is written to a
// temporary name first and renamed into place, so readers never see a
// partial file.
func (w *Writer) CreateDocument(ctx context.Context, doc *justext.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	relPath, err := URLToPath(doc.SourceURL)
	if err != nil {
		return err
	}

	content, err := FormatDocument(doc)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(w.baseDir, relPath)
	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".justext-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), fullPath)
}
