package justext_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/justext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func articleEvents() []justext.Event {
	link := func(text string) []justext.Event {
		return []justext.Event{
			justext.StartTag("li"),
			justext.StartTag("a", justext.Attribute{Name: "href", Value: "/"}),
			justext.Characters(text),
			justext.EndTag("a"),
			justext.EndTag("li"),
		}
	}
	para := func(tag, text string) []justext.Event {
		return []justext.Event{justext.StartTag(tag), justext.Characters(text), justext.EndTag(tag)}
	}

	var events []justext.Event
	events = append(events, justext.StartTag("html"), justext.StartTag("body"), justext.StartTag("ul"))
	events = append(events, link("Home")...)
	events = append(events, link("About")...)
	events = append(events, justext.EndTag("ul"))
	events = append(events, para("h1", "A short history of the city")...)
	events = append(events, para("p", goodText)...)
	events = append(events, para("p", "Posted on Monday")...)
	events = append(events, para("p", goodText)...)
	events = append(events, para("div", "© 2024 Example")...)
	events = append(events, justext.EndTag("body"), justext.EndTag("html"))
	return events
}

func TestExtract(t *testing.T) {
	t.Parallel()

	t.Run("keeps main content only", func(t *testing.T) {
		t.Parallel()

		paragraphs, err := justext.Extract(
			justext.NewEventSlice(articleEvents()...),
			testStopWords,
			justext.DefaultClassifierProperties(),
			false,
		)
		require.NoError(t, err)
		require.Len(t, paragraphs, 4)

		assert.Equal(t, "A short history of the city", paragraphs[0].Text)
		assert.True(t, paragraphs[0].Heading)
		assert.True(t, paragraphs[0].Headline)
		assert.Equal(t, justext.ClassShort, paragraphs[0].FirstClassification)
		assert.Equal(t, "/html[1]/body[1]/h1[1]", paragraphs[0].XPath)

		assert.Equal(t, goodText, paragraphs[1].Text)
		assert.Equal(t, "Posted on Monday", paragraphs[2].Text)
		assert.Equal(t, "/html[1]/body[1]/p[3]", paragraphs[3].XPath)

		for _, p := range paragraphs {
			assert.Equal(t, justext.ClassGood, p.Classification)
			assert.False(t, p.Boilerplate)
		}
	})

	t.Run("keeps boilerplate on request", func(t *testing.T) {
		t.Parallel()

		paragraphs, err := justext.Extract(
			justext.NewEventSlice(articleEvents()...),
			testStopWords,
			justext.DefaultClassifierProperties(),
			true,
		)
		require.NoError(t, err)
		require.Len(t, paragraphs, 7)

		assert.Equal(t, "Home", paragraphs[0].Text)
		assert.True(t, paragraphs[0].Boilerplate)
		assert.InDelta(t, 1.0, paragraphs[0].LinkDensity, 1e-9)
		assert.Equal(t, "/html[1]/body[1]/ul[1]/li[2]", paragraphs[1].XPath)
		assert.Equal(t, "© 2024 Example", paragraphs[6].Text)
		assert.Equal(t, justext.ClassBad, paragraphs[6].Classification)
	})

	t.Run("without stop words nothing is good", func(t *testing.T) {
		t.Parallel()

		paragraphs, err := justext.Extract(
			justext.NewEventSlice(articleEvents()...),
			justext.StopWords{},
			justext.DefaultClassifierProperties(),
			false,
		)
		require.NoError(t, err)
		assert.Empty(t, paragraphs)
	})

	t.Run("invalid properties", func(t *testing.T) {
		t.Parallel()

		props := justext.DefaultClassifierProperties()
		props.StopWordsHigh = 0.1

		paragraphs, err := justext.Extract(justext.NewEventSlice(articleEvents()...), testStopWords, props, false)

		require.Error(t, err)
		assert.Equal(t, justext.EINVALID, justext.ErrorCode(err))
		assert.Nil(t, paragraphs)
	})

	t.Run("stream failure returns no partial result", func(t *testing.T) {
		t.Parallel()

		paragraphs, err := justext.Extract(
			&failingStream{events: articleEvents()[:20], err: errors.New("reset")},
			testStopWords,
			justext.DefaultClassifierProperties(),
			true,
		)

		require.Error(t, err)
		assert.Equal(t, justext.EPARSE, justext.ErrorCode(err))
		assert.Nil(t, paragraphs)
	})
}
