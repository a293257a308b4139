package justext

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	headingPattern  = regexp.MustCompile(`\bh[1-6]\b`)
	headlinePattern = regexp.MustCompile(`\bh1\b`)
	imagePattern    = regexp.MustCompile(`\bimg\b`)
	selectPattern   = regexp.MustCompile(`^select|\.select`)
)

// Block is a text block under construction. The Segmenter appends text and
// counts tags while the block is open; the Classifier then sets its
// classification. Call Freeze to obtain the immutable Paragraph.
type Block struct {
	fragments    []string
	charsInLinks int
	tagCount     int
	domPath      string
	xpath        string
	url          string

	// Cached derivations of fragments, valid while cached is true.
	cached bool
	text   string
	words  []string

	classification      Classification
	firstClassification Classification
	classified          bool
}

// NewBlock returns an empty block located at the given paths.
func NewBlock(domPath, xpath string) *Block {
	return &Block{domPath: domPath, xpath: xpath}
}

// AppendText normalizes white space in text, appends it as a fragment and
// returns the normalized fragment.
func (b *Block) AppendText(text string) string {
	text = NormalizeWhitespace(text)
	b.fragments = append(b.fragments, text)
	b.cached = false
	return text
}

// Text returns the trimmed, normalized concatenation of all fragments.
func (b *Block) Text() string {
	b.derive()
	return b.text
}

// Words returns the white-space separated words of Text.
func (b *Block) Words() []string {
	b.derive()
	return b.words
}

func (b *Block) derive() {
	if b.cached {
		return
	}
	b.text = NormalizeWhitespace(strings.TrimSpace(strings.Join(b.fragments, "")))
	b.words = strings.Fields(b.text)
	b.cached = true
}

// Length returns the number of characters in Text.
func (b *Block) Length() int {
	return utf8.RuneCountInString(b.Text())
}

// HasText reports whether the block holds any non-blank text.
func (b *Block) HasText() bool {
	return !IsBlank(b.Text())
}

// WordCount returns the number of words.
func (b *Block) WordCount() int {
	return len(b.Words())
}

// StopWordCount returns the number of words found in stopWords.
func (b *Block) StopWordCount(stopWords StopWords) int {
	var n int
	for _, w := range b.Words() {
		if stopWords.Contains(w) {
			n++
		}
	}
	return n
}

// StopWordsDensity returns the share of words that are stop words, or 0
// for a block without words.
func (b *Block) StopWordsDensity(stopWords StopWords) float64 {
	words := b.WordCount()
	if words == 0 {
		return 0
	}
	return float64(b.StopWordCount(stopWords)) / float64(words)
}

// AddCharsInLinks records n characters of anchor text.
func (b *Block) AddCharsInLinks(n int) {
	b.charsInLinks += n
}

// CharsInLinks returns the number of characters inside links. The count
// never exceeds Length: anchor text is counted before the block text is
// trimmed.
func (b *Block) CharsInLinks() int {
	return min(b.charsInLinks, b.Length())
}

// LinkDensity returns the share of characters inside links, or 0 for an
// empty block.
func (b *Block) LinkDensity() float64 {
	length := b.Length()
	if length == 0 {
		return 0
	}
	return float64(b.CharsInLinks()) / float64(length)
}

// IncrementTagCount counts an inline tag opened inside the block.
func (b *Block) IncrementTagCount() {
	b.tagCount++
}

// DecrementTagCount takes back a counted tag.
func (b *Block) DecrementTagCount() {
	b.tagCount--
}

// TagCount returns the number of inline tags inside the block.
func (b *Block) TagCount() int {
	return b.tagCount
}

// DomPath returns the dot-joined tag path in effect when the block was opened.
func (b *Block) DomPath() string {
	return b.domPath
}

// XPath returns the indexed path in effect when the block was opened.
func (b *Block) XPath() string {
	return b.xpath
}

// SetURL records the source of an image block.
func (b *Block) SetURL(url string) {
	b.url = url
}

// URL returns the image source recorded with SetURL.
func (b *Block) URL() string {
	return b.url
}

// IsImage reports whether the block was opened by an img element.
func (b *Block) IsImage() bool {
	return imagePattern.MatchString(b.domPath)
}

// IsHeading reports whether the block sits inside an h1..h6 element.
func (b *Block) IsHeading() bool {
	return headingPattern.MatchString(b.domPath)
}

// IsHeadline reports whether the block sits inside an h1 element.
func (b *Block) IsHeadline() bool {
	return headlinePattern.MatchString(b.domPath)
}

// IsSelect reports whether the dom path starts with "select" or contains
// ".select". This is a substring test: "div.selection" matches too.
func (b *Block) IsSelect() bool {
	return selectPattern.MatchString(b.domPath)
}

// Classification returns the current classification.
func (b *Block) Classification() Classification {
	return b.classification
}

// FirstClassification returns the classification assigned first, and
// whether the block has been classified at all.
func (b *Block) FirstClassification() (Classification, bool) {
	return b.firstClassification, b.classified
}

// SetClassification sets the current classification. The first call also
// fixes FirstClassification; later calls leave it untouched.
func (b *Block) SetClassification(c Classification) {
	if !b.classified {
		b.firstClassification = c
		b.classified = true
	}
	b.classification = c
}

// IsBoilerplate reports whether the block is anything but good.
func (b *Block) IsBoilerplate() bool {
	return b.classification != ClassGood
}

// Freeze returns an immutable snapshot of the block. Word statistics are
// computed against stopWords.
func (b *Block) Freeze(stopWords StopWords) Paragraph {
	return Paragraph{
		Text:                b.Text(),
		DomPath:             b.domPath,
		XPath:               b.xpath,
		URL:                 b.url,
		Classification:      b.classification,
		FirstClassification: b.firstClassification,
		Heading:             b.IsHeading(),
		Headline:            b.IsHeadline(),
		Image:               b.IsImage(),
		Boilerplate:         b.IsBoilerplate(),
		Length:              b.Length(),
		CharsInLinks:        b.CharsInLinks(),
		LinkDensity:         b.LinkDensity(),
		TagCount:            b.tagCount,
		WordCount:           b.WordCount(),
		StopWordCount:       b.StopWordCount(stopWords),
		StopWordsDensity:    b.StopWordsDensity(stopWords),
	}
}

// Paragraph is the frozen form of a Block. It carries every derived value
// as it was at freeze time.
type Paragraph struct {
	Text                string         `json:"text"`
	DomPath             string         `json:"domPath"`
	XPath               string         `json:"xpath"`
	URL                 string         `json:"url,omitempty"`
	Classification      Classification `json:"classification"`
	FirstClassification Classification `json:"firstClassification"`
	Heading             bool           `json:"heading"`
	Headline            bool           `json:"headline"`
	Image               bool           `json:"image"`
	Boilerplate         bool           `json:"boilerplate"`
	Length              int            `json:"length"`
	CharsInLinks        int            `json:"charsInLinks"`
	LinkDensity         float64        `json:"linkDensity"`
	TagCount            int            `json:"tagCount"`
	WordCount           int            `json:"wordCount"`
	StopWordCount       int            `json:"stopWordCount"`
	StopWordsDensity    float64        `json:"stopWordsDensity"`
}
