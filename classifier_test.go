package justext_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/fwojciec/justext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testStopWords = justext.NewStopWords(
	"a", "and", "as", "at", "be", "by", "for", "in", "is", "it",
	"of", "on", "that", "the", "this", "to", "was", "were", "who", "with",
)

// Long and dense in stop words.
const goodText = "The history of the city is long and it is full of stories. " +
	"In the early days it was a small village on the river, and the people who lived there were farmers and fishermen. " +
	"Over the years the village grew into a town and the town became a city that is known for the old bridge."

func newClassifier(t *testing.T, opts ...justext.PropertiesOption) *justext.Classifier {
	t.Helper()

	props, err := justext.NewClassifierProperties(opts...)
	require.NoError(t, err)
	c, err := justext.NewClassifier(props, testStopWords)
	require.NoError(t, err)
	return c
}

// classified returns a block with the given text and classification.
func classified(dom string, c justext.Classification, text string) *justext.Block {
	b := justext.NewBlock(dom, "/")
	b.AppendText(text)
	b.SetClassification(c)
	return b
}

func classes(blocks []*justext.Block) []justext.Classification {
	out := make([]justext.Classification, len(blocks))
	for i, b := range blocks {
		out[i] = b.Classification()
	}
	return out
}

func TestClassifier_Classify(t *testing.T) {
	t.Parallel()

	c := newClassifier(t)

	tests := []struct {
		name  string
		dom   string
		text  string
		links int
		want  justext.Classification
	}{
		{
			name:  "link heavy block is bad",
			dom:   "html.body.ul.li",
			text:  "Home",
			links: 4,
			want:  justext.ClassBad,
		},
		{
			name: "copyright sign is bad regardless of density",
			dom:  "html.body.div",
			text: "© 2020 ACME Corp. All rights reserved. This is the end of the page and it is the end of the site.",
			want: justext.ClassBad,
		},
		{
			name: "copyright entity is bad",
			dom:  "html.body.div",
			text: "&copy; 2020 ACME Corp",
			want: justext.ClassBad,
		},
		{
			name: "select is bad",
			dom:  "html.body.form.select.option",
			text: goodText,
			want: justext.ClassBad,
		},
		{
			name: "short block without links is short",
			dom:  "html.body.p",
			text: "Posted on Monday",
			want: justext.ClassShort,
		},
		{
			name:  "short block with a few link characters is bad",
			dom:   "html.body.p",
			text:  "Written by the staff of the paper and the editor",
			links: 5,
			want:  justext.ClassBad,
		},
		{
			name: "long dense block is good",
			dom:  "html.body.p",
			text: goodText,
			want: justext.ClassGood,
		},
		{
			name: "medium dense block is near-good",
			dom:  "html.body.p",
			text: "The village grew into a town and the town became a city that is known for the bridge.",
			want: justext.ClassNearGood,
		},
		{
			name: "block without stop words is bad",
			dom:  "html.body.p",
			text: "Widgets, gadgets, gizmos, sprockets, cogs, levers, pulleys, springs, wheels and axles galore",
			want: justext.ClassBad,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := justext.NewBlock(tt.dom, "/")
			b.AppendText(tt.text)
			b.AddCharsInLinks(tt.links)

			c.Classify([]*justext.Block{b})

			assert.Equal(t, tt.want, b.Classification())
			first, ok := b.FirstClassification()
			assert.True(t, ok)
			assert.Equal(t, tt.want, first)
		})
	}
}

func TestClassifier_Revise(t *testing.T) {
	t.Parallel()

	const (
		bad  = justext.ClassBad
		good = justext.ClassGood
		near = justext.ClassNearGood
		shrt = justext.ClassShort
	)

	tests := []struct {
		name string
		in   []justext.Classification
		want []justext.Classification
	}{
		{"short between bad is bad", []justext.Classification{bad, shrt, bad}, []justext.Classification{bad, bad, bad}},
		{"short between good is good", []justext.Classification{good, shrt, good}, []justext.Classification{good, good, good}},
		{
			"near-good on the way to bad makes short good",
			[]justext.Classification{good, shrt, near, bad},
			[]justext.Classification{good, good, good, bad},
		},
		{"short between good and bad is bad", []justext.Classification{good, shrt, bad}, []justext.Classification{good, bad, bad}},
		{"document edges count as bad", []justext.Classification{shrt, good, shrt}, []justext.Classification{bad, good, bad}},
		{"runs of short look past each other", []justext.Classification{good, shrt, shrt, good}, []justext.Classification{good, good, good, good}},
		{"lone near-good is bad", []justext.Classification{near}, []justext.Classification{bad}},
		{"near-good between bad is bad", []justext.Classification{bad, near, bad}, []justext.Classification{bad, bad, bad}},
		{"near-good next to good is good", []justext.Classification{bad, near, good}, []justext.Classification{bad, good, good}},
		{
			"near-good sees short already revised",
			[]justext.Classification{bad, shrt, near, bad, good},
			[]justext.Classification{bad, bad, bad, bad, good},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := newClassifier(t, justext.WithNoHeadings(true))
			blocks := make([]*justext.Block, len(tt.in))
			for i, cl := range tt.in {
				blocks[i] = classified("html.body.p", cl, "text")
			}

			c.Revise(blocks)

			assert.Equal(t, tt.want, classes(blocks))
		})
	}

	t.Run("empty sequence", func(t *testing.T) {
		t.Parallel()

		c := newClassifier(t)
		assert.NotPanics(t, func() { c.Revise(nil) })
		assert.NotPanics(t, func() { c.Revise([]*justext.Block{}) })
	})
}

func TestClassifier_ReviseHeadings(t *testing.T) {
	t.Parallel()

	t.Run("short heading before good content is promoted", func(t *testing.T) {
		t.Parallel()

		c := newClassifier(t)
		blocks := []*justext.Block{
			classified("html.body.h2", justext.ClassShort, "Introduction"),
			classified("html.body.p", justext.ClassNearGood, strings.Repeat("x", 120)),
			classified("html.body.p", justext.ClassGood, goodText),
		}

		c.Revise(blocks)

		assert.Equal(t, justext.ClassGood, blocks[0].Classification())
		first, _ := blocks[0].FirstClassification()
		assert.Equal(t, justext.ClassShort, first)
	})

	t.Run("heading too far from good content stays bad", func(t *testing.T) {
		t.Parallel()

		c := newClassifier(t)
		blocks := []*justext.Block{
			classified("html.body.h2", justext.ClassShort, "Introduction"),
			classified("html.body.p", justext.ClassBad, strings.Repeat("x", 250)),
			classified("html.body.p", justext.ClassGood, goodText),
		}

		c.Revise(blocks)

		assert.Equal(t, justext.ClassBad, blocks[0].Classification())
	})

	t.Run("distance within limit reaches good block", func(t *testing.T) {
		t.Parallel()

		c := newClassifier(t)
		blocks := []*justext.Block{
			classified("html.body.h2", justext.ClassShort, "Introduction"),
			classified("html.body.p", justext.ClassBad, strings.Repeat("x", 200)),
			classified("html.body.p", justext.ClassGood, goodText),
		}

		c.Revise(blocks)

		assert.Equal(t, justext.ClassGood, blocks[0].Classification())
	})

	t.Run("headings disabled", func(t *testing.T) {
		t.Parallel()

		c := newClassifier(t, justext.WithNoHeadings(true))
		blocks := []*justext.Block{
			classified("html.body.h2", justext.ClassShort, "Introduction"),
			classified("html.body.p", justext.ClassGood, goodText),
		}

		c.Revise(blocks)

		assert.Equal(t, justext.ClassBad, blocks[0].Classification())
	})

	t.Run("heading first classified bad is never promoted", func(t *testing.T) {
		t.Parallel()

		c := newClassifier(t)
		blocks := []*justext.Block{
			classified("html.body.h2", justext.ClassBad, "Introduction"),
			classified("html.body.p", justext.ClassGood, goodText),
		}

		c.Revise(blocks)

		assert.Equal(t, justext.ClassBad, blocks[0].Classification())
	})

	t.Run("heading revised to bad is restored before good content", func(t *testing.T) {
		t.Parallel()

		c := newClassifier(t)
		blocks := []*justext.Block{
			classified("html.body.p", justext.ClassBad, "Menu"),
			classified("html.body.h3", justext.ClassNearGood, "Opening hours of the shop"),
			classified("html.body.p", justext.ClassBad, "Ad"),
			classified("html.body.p", justext.ClassGood, goodText),
		}

		c.Revise(blocks)

		assert.Equal(t, justext.ClassGood, blocks[1].Classification())
	})
}

func TestClassifier_ReviseInvariants(t *testing.T) {
	t.Parallel()

	all := []justext.Classification{
		justext.ClassBad, justext.ClassGood, justext.ClassNearGood, justext.ClassShort,
	}
	doms := []string{"html.body.p", "html.body.h2", "html.body.div.h4"}

	randomBlocks := func(r *rand.Rand) []*justext.Block {
		blocks := make([]*justext.Block, r.Intn(20))
		for i := range blocks {
			blocks[i] = classified(
				doms[r.Intn(len(doms))],
				all[r.Intn(len(all))],
				strings.Repeat("w", 1+r.Intn(300)),
			)
		}
		return blocks
	}

	for _, noHeadings := range []bool{false, true} {
		c := newClassifier(t, justext.WithNoHeadings(noHeadings))
		r := rand.New(rand.NewSource(42))

		for range 200 {
			blocks := randomBlocks(r)
			c.Revise(blocks)
			once := classes(blocks)

			for _, cl := range once {
				require.Contains(t, []justext.Classification{justext.ClassBad, justext.ClassGood}, cl)
			}

			c.Revise(blocks)
			require.Equal(t, once, classes(blocks), "revise must be idempotent")
		}
	}
}

func TestClassifier_Deterministic(t *testing.T) {
	t.Parallel()

	build := func() []*justext.Block {
		r := rand.New(rand.NewSource(7))
		texts := []string{goodText, "Posted on Monday", "Home", "The village grew into a town and the town became a city that is known for the bridge."}
		doms := []string{"html.body.p", "html.body.h2", "html.body.ul.li"}
		blocks := make([]*justext.Block, 50)
		for i := range blocks {
			blocks[i] = justext.NewBlock(doms[r.Intn(len(doms))], "/")
			blocks[i].AppendText(texts[r.Intn(len(texts))])
		}
		return blocks
	}

	c := newClassifier(t)
	a, b := build(), build()
	c.Classify(a)
	c.Revise(a)
	c.Classify(b)
	c.Revise(b)

	assert.Equal(t, classes(a), classes(b))
}

func TestNewClassifier_InvalidProperties(t *testing.T) {
	t.Parallel()

	props := justext.DefaultClassifierProperties()
	props.LengthHigh = 10

	_, err := justext.NewClassifier(props, testStopWords)

	require.Error(t, err)
	assert.Equal(t, justext.EINVALID, justext.ErrorCode(err))
}

func TestClassifierProperties_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opts    []justext.PropertiesOption
		wantErr bool
	}{
		{"defaults", nil, false},
		{"equal length thresholds", []justext.PropertiesOption{justext.WithLengthLow(100), justext.WithLengthHigh(100)}, false},
		{"equal stop-word thresholds", []justext.PropertiesOption{justext.WithStopWordsLow(0.3), justext.WithStopWordsHigh(0.3)}, false},
		{"length high below low", []justext.PropertiesOption{justext.WithLengthHigh(50)}, true},
		{"negative length", []justext.PropertiesOption{justext.WithLengthLow(-1)}, true},
		{"stop words high below low", []justext.PropertiesOption{justext.WithStopWordsHigh(0.1)}, true},
		{"stop words above one", []justext.PropertiesOption{justext.WithStopWordsHigh(1.5)}, true},
		{"negative link density", []justext.PropertiesOption{justext.WithMaxLinkDensity(-0.1)}, true},
		{"negative heading distance", []justext.PropertiesOption{justext.WithMaxHeadingDistance(-1)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := justext.NewClassifierProperties(tt.opts...)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, justext.EINVALID, justext.ErrorCode(err))
				return
			}
			require.NoError(t, err)
		})
	}
}
