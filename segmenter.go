package justext

import (
	"errors"
	"io"
	"strings"
	"unicode/utf8"
)

// blockTags open and close blocks. Every other tag is inline.
var blockTags = map[string]bool{
	"blockquote": true, "body": true, "caption": true, "center": true,
	"col": true, "colgroup": true, "dd": true, "div": true, "dl": true,
	"dt": true, "fieldset": true, "form": true, "h1": true, "h2": true,
	"h3": true, "h4": true, "h5": true, "h6": true, "legend": true,
	"li": true, "optgroup": true, "option": true, "p": true, "pre": true,
	"table": true, "td": true, "textarea": true, "tfoot": true, "th": true,
	"thead": true, "tr": true, "ul": true,
}

// IsBlockTag reports whether tag starts a new block.
func IsBlockTag(tag string) bool {
	return blockTags[strings.ToLower(tag)]
}

// Segmenter groups a stream of tag and text events into blocks.
// Block-level tags and runs of two or more <br> tags start a new block.
// An <img> gets a block of its own holding its alt text.
type Segmenter struct {
	path    *PathTracker
	current *Block
	blocks  []*Block

	insideAnchor bool
	insideImage  bool
	pendingBreak bool
}

// NewSegmenter returns a Segmenter positioned before the document root.
func NewSegmenter() *Segmenter {
	s := &Segmenter{path: NewPathTracker()}
	s.current = NewBlock(s.path.Dom(), s.path.XPath())
	return s
}

// StartTag handles an opening tag.
func (s *Segmenter) StartTag(name string, attrs []Attribute) {
	name = strings.ToLower(name)
	s.path.Append(name)

	if name == "img" {
		s.startImage(attrs)
		return
	}

	isBreak := name == "br"
	if blockTags[name] || (isBreak && s.pendingBreak) {
		if isBreak {
			// The first <br> of the run was counted as an inline tag.
			s.current.DecrementTagCount()
		}
		s.startBlock()
		return
	}

	s.pendingBreak = isBreak
	if name == "a" {
		s.insideAnchor = true
	}
	s.current.IncrementTagCount()
}

// EndTag handles a closing tag.
func (s *Segmenter) EndTag(name string) {
	name = strings.ToLower(name)
	s.path.Pop()

	if blockTags[name] || name == "img" {
		s.startBlock()
	}
	switch name {
	case "a":
		s.insideAnchor = false
	case "img":
		s.insideImage = false
	}
}

// Characters handles character data.
func (s *Segmenter) Characters(text string) {
	if s.insideImage || IsBlank(text) {
		return
	}
	text = s.current.AppendText(text)
	if s.insideAnchor {
		s.current.AddCharsInLinks(utf8.RuneCountInString(text))
	}
	s.pendingBreak = false
}

// Blocks closes the open block and returns all blocks with text, in
// document order. The Segmenter must not be used afterwards.
func (s *Segmenter) Blocks() []*Block {
	s.closeBlock()
	s.current = nil
	return s.blocks
}

// startImage opens a block for an img element. Its alt text is the block
// text and its src the block URL. Blank attributes are ignored.
func (s *Segmenter) startImage(attrs []Attribute) {
	s.startBlock()
	s.insideImage = true
	for _, a := range attrs {
		if IsBlank(a.Value) {
			continue
		}
		switch strings.ToLower(a.Name) {
		case "alt":
			s.current.AppendText(a.Value)
		case "src":
			s.current.SetURL(a.Value)
		}
	}
}

func (s *Segmenter) startBlock() {
	s.closeBlock()
	s.current = NewBlock(s.path.Dom(), s.path.XPath())
}

func (s *Segmenter) closeBlock() {
	if s.current != nil && s.current.HasText() {
		s.blocks = append(s.blocks, s.current)
	}
}

// Segment drains stream into a Segmenter and returns the blocks.
// A stream error aborts segmentation with EPARSE.
func Segment(stream EventStream) ([]*Block, error) {
	s := NewSegmenter()
	for {
		e, err := stream.Next()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, WrapError(EPARSE, err, "read event stream")
		}

		switch e.Kind {
		case StartTagEvent:
			s.StartTag(e.Name, e.Attrs)
		case EndTagEvent:
			s.EndTag(e.Name)
		case CharactersEvent:
			s.Characters(e.Text)
		default:
			return nil, Errorf(EPARSE, "unknown event kind %d", int(e.Kind))
		}
	}
	return s.Blocks(), nil
}
