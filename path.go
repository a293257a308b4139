package justext

import (
	"strconv"
	"strings"
)

// PathTracker follows the open-tag ancestry of a streamed document.
// Sibling ordinals are counted per parent, so the second <p> under a <div>
// is p[2] no matter how many <p> elements appear elsewhere.
type PathTracker struct {
	frames []pathFrame
	root   map[string]int
}

type pathFrame struct {
	tag      string
	ordinal  int
	children map[string]int
}

// NewPathTracker returns an empty tracker.
func NewPathTracker() *PathTracker {
	return &PathTracker{root: make(map[string]int)}
}

// Append opens tag as a child of the innermost open element.
func (p *PathTracker) Append(tag string) {
	counters := p.root
	if n := len(p.frames); n > 0 {
		counters = p.frames[n-1].children
	}
	counters[tag]++
	p.frames = append(p.frames, pathFrame{
		tag:      tag,
		ordinal:  counters[tag],
		children: make(map[string]int),
	})
}

// Pop closes the innermost open element. Popping an empty tracker is a no-op.
func (p *PathTracker) Pop() {
	if n := len(p.frames); n > 0 {
		p.frames = p.frames[:n-1]
	}
}

// Depth returns the number of open elements.
func (p *PathTracker) Depth() int {
	return len(p.frames)
}

// Dom returns the dot-joined tag names from the outermost element inwards,
// e.g. "html.body.div.p". An empty tracker yields "".
func (p *PathTracker) Dom() string {
	var b strings.Builder
	for i, f := range p.frames {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(f.tag)
	}
	return b.String()
}

// XPath returns the indexed path, e.g. "/html[1]/body[1]/div[2]".
// An empty tracker yields "/".
func (p *PathTracker) XPath() string {
	if len(p.frames) == 0 {
		return "/"
	}
	var b strings.Builder
	for _, f := range p.frames {
		b.WriteByte('/')
		b.WriteString(f.tag)
		b.WriteByte('[')
		b.WriteString(strconv.Itoa(f.ordinal))
		b.WriteByte(']')
	}
	return b.String()
}
