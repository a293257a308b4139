package justext

import "strings"

// Default classifier thresholds.
const (
	DefaultLengthLow          = 70
	DefaultLengthHigh         = 200
	DefaultStopWordsLow       = 0.30
	DefaultStopWordsHigh      = 0.32
	DefaultMaxLinkDensity     = 0.2
	DefaultMaxHeadingDistance = 200
)

// ClassifierProperties holds the thresholds of the classifier.
type ClassifierProperties struct {
	// LengthLow divides blocks by length into short and medium-size.
	LengthLow int `json:"lengthLow" yaml:"length_low"`
	// LengthHigh divides blocks by length into medium-size and long.
	LengthHigh int `json:"lengthHigh" yaml:"length_high"`
	// StopWordsLow divides blocks by stop-word density into low and medium.
	StopWordsLow float64 `json:"stopWordsLow" yaml:"stopwords_low"`
	// StopWordsHigh divides blocks by stop-word density into medium and high.
	StopWordsHigh float64 `json:"stopWordsHigh" yaml:"stopwords_high"`
	// MaxLinkDensity is the share of link characters above which a block is bad.
	MaxLinkDensity float64 `json:"maxLinkDensity" yaml:"max_link_density"`
	// MaxHeadingDistance is how many characters a heading may precede
	// good content and still be promoted.
	MaxHeadingDistance int `json:"maxHeadingDistance" yaml:"max_heading_distance"`
	// NoHeadings disables heading promotion.
	NoHeadings bool `json:"noHeadings" yaml:"no_headings"`
}

// DefaultClassifierProperties returns the standard jusText thresholds.
func DefaultClassifierProperties() ClassifierProperties {
	return ClassifierProperties{
		LengthLow:          DefaultLengthLow,
		LengthHigh:         DefaultLengthHigh,
		StopWordsLow:       DefaultStopWordsLow,
		StopWordsHigh:      DefaultStopWordsHigh,
		MaxLinkDensity:     DefaultMaxLinkDensity,
		MaxHeadingDistance: DefaultMaxHeadingDistance,
	}
}

// Validate returns EINVALID if the thresholds contradict each other.
func (p ClassifierProperties) Validate() error {
	if p.LengthLow < 0 || p.LengthHigh < 0 {
		return Errorf(EINVALID, "length thresholds must not be negative")
	}
	if p.LengthHigh < p.LengthLow {
		return Errorf(EINVALID, "length high (%d) is lower than length low (%d)", p.LengthHigh, p.LengthLow)
	}
	if p.StopWordsLow < 0 || p.StopWordsHigh > 1 {
		return Errorf(EINVALID, "stop-word thresholds must be within [0, 1]")
	}
	if p.StopWordsHigh < p.StopWordsLow {
		return Errorf(EINVALID, "stop words high (%g) is lower than stop words low (%g)", p.StopWordsHigh, p.StopWordsLow)
	}
	if p.MaxLinkDensity < 0 {
		return Errorf(EINVALID, "max link density must not be negative")
	}
	if p.MaxHeadingDistance < 0 {
		return Errorf(EINVALID, "max heading distance must not be negative")
	}
	return nil
}

// PropertiesOption modifies ClassifierProperties.
type PropertiesOption func(*ClassifierProperties)

// WithLengthLow sets the short/medium length threshold.
func WithLengthLow(n int) PropertiesOption {
	return func(p *ClassifierProperties) { p.LengthLow = n }
}

// WithLengthHigh sets the medium/long length threshold.
func WithLengthHigh(n int) PropertiesOption {
	return func(p *ClassifierProperties) { p.LengthHigh = n }
}

// WithStopWordsLow sets the low/medium stop-word density threshold.
func WithStopWordsLow(v float64) PropertiesOption {
	return func(p *ClassifierProperties) { p.StopWordsLow = v }
}

// WithStopWordsHigh sets the medium/high stop-word density threshold.
func WithStopWordsHigh(v float64) PropertiesOption {
	return func(p *ClassifierProperties) { p.StopWordsHigh = v }
}

// WithMaxLinkDensity sets the link density above which blocks are bad.
func WithMaxLinkDensity(v float64) PropertiesOption {
	return func(p *ClassifierProperties) { p.MaxLinkDensity = v }
}

// WithMaxHeadingDistance sets the heading promotion distance.
func WithMaxHeadingDistance(n int) PropertiesOption {
	return func(p *ClassifierProperties) { p.MaxHeadingDistance = n }
}

// WithNoHeadings disables heading promotion.
func WithNoHeadings(v bool) PropertiesOption {
	return func(p *ClassifierProperties) { p.NoHeadings = v }
}

// NewClassifierProperties applies opts to the defaults and validates the result.
func NewClassifierProperties(opts ...PropertiesOption) (ClassifierProperties, error) {
	p := DefaultClassifierProperties()
	for _, opt := range opts {
		opt(&p)
	}
	if err := p.Validate(); err != nil {
		return ClassifierProperties{}, err
	}
	return p, nil
}

const (
	copyrightChar   = "©"
	copyrightEntity = "&copy;"
)

var badGood = setOf(ClassBad, ClassGood)

// Classifier assigns classifications to blocks. It holds no per-document
// state and may be shared between goroutines.
type Classifier struct {
	props     ClassifierProperties
	stopWords StopWords
}

// NewClassifier returns a Classifier. Returns EINVALID if props fail validation.
func NewClassifier(props ClassifierProperties, stopWords StopWords) (*Classifier, error) {
	if err := props.Validate(); err != nil {
		return nil, err
	}
	return &Classifier{props: props, stopWords: stopWords}, nil
}

// Properties returns the thresholds in use.
func (c *Classifier) Properties() ClassifierProperties {
	return c.props
}

// Classify runs the context-free pass over every block.
func (c *Classifier) Classify(blocks []*Block) {
	for _, b := range blocks {
		b.SetClassification(c.classify(b))
	}
}

func (c *Classifier) classify(b *Block) Classification {
	length := b.Length()
	text := b.Text()

	switch {
	case b.LinkDensity() > c.props.MaxLinkDensity:
		return ClassBad
	case strings.Contains(text, copyrightChar), strings.Contains(text, copyrightEntity):
		return ClassBad
	case b.IsSelect():
		return ClassBad
	case length < c.props.LengthLow:
		if b.CharsInLinks() > 0 {
			return ClassBad
		}
		return ClassShort
	}

	density := b.StopWordsDensity(c.stopWords)
	switch {
	case density >= c.props.StopWordsHigh:
		if length > c.props.LengthHigh {
			return ClassGood
		}
		return ClassNearGood
	case density >= c.props.StopWordsLow:
		return ClassNearGood
	default:
		return ClassBad
	}
}

// Revise runs the context-sensitive pass. Blocks must have been
// classified. Short blocks are revised first, then near-good blocks, both
// left to right and in place; headings are promoted around these steps
// unless NoHeadings is set.
func (c *Classifier) Revise(blocks []*Block) {
	if len(blocks) == 0 {
		return
	}

	if !c.props.NoHeadings {
		for i, b := range blocks {
			if b.IsHeading() && b.Classification() == ClassShort && c.precedesGood(blocks, i) {
				b.SetClassification(ClassNearGood)
			}
		}
	}

	for i, b := range blocks {
		if b.Classification() != ClassShort {
			continue
		}
		merged, nearGood := mergeBoundaries(blocks, i)
		switch {
		case merged == setOf(ClassGood):
			b.SetClassification(ClassGood)
		case merged == setOf(ClassBad):
			b.SetClassification(ClassBad)
		case nearGood:
			b.SetClassification(ClassGood)
		default:
			b.SetClassification(ClassBad)
		}
	}

	for i, b := range blocks {
		if b.Classification() != ClassNearGood {
			continue
		}
		if merged, _ := mergeBoundaries(blocks, i); merged == setOf(ClassBad) {
			b.SetClassification(ClassBad)
		} else {
			b.SetClassification(ClassGood)
		}
	}

	if !c.props.NoHeadings {
		// Right to left, so a promoted heading is already visible to the
		// headings before it and a second Revise changes nothing.
		for i := len(blocks) - 1; i >= 0; i-- {
			b := blocks[i]
			if !b.IsHeading() || b.Classification() != ClassBad {
				continue
			}
			if first, _ := b.FirstClassification(); first == ClassBad {
				continue
			}
			if c.precedesGood(blocks, i) {
				b.SetClassification(ClassGood)
			}
		}
	}
}

// precedesGood reports whether a good block follows blocks[i] with at most
// MaxHeadingDistance characters of other blocks in between.
func (c *Classifier) precedesGood(blocks []*Block, i int) bool {
	distance := 0
	for j := i + 1; j < len(blocks) && distance <= c.props.MaxHeadingDistance; j++ {
		if blocks[j].Classification() == ClassGood {
			return true
		}
		distance += blocks[j].Length()
	}
	return false
}

// boundary scans from blocks[i] in direction step and collects near-good
// classifications up to the first bad or good one. Running off the end
// counts as bad.
func boundary(blocks []*Block, i, step int) classSet {
	var s classSet
	for j := i + step; j >= 0 && j < len(blocks); j += step {
		switch cl := blocks[j].Classification(); cl {
		case ClassBad, ClassGood:
			return s.with(cl)
		case ClassNearGood:
			s = s.with(cl)
		}
	}
	return s.with(ClassBad)
}

// mergeBoundaries unions the near-good-free boundaries on both sides of
// blocks[i]. nearGood is true when the union is {bad, good} and a side
// reached bad only after passing a near-good block.
func mergeBoundaries(blocks []*Block, i int) (merged classSet, nearGood bool) {
	for _, step := range [...]int{-1, 1} {
		side := boundary(blocks, i, step)
		if side.has(ClassNearGood) {
			side = side.without(ClassNearGood)
			if side != setOf(ClassGood) {
				nearGood = true
			}
		}
		merged |= side
	}
	if merged != badGood {
		nearGood = false
	}
	return merged, nearGood
}
