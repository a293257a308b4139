package goquery_test

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/fwojciec/justext"
	"github.com/fwojciec/justext/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(t *testing.T, stream justext.EventStream) []justext.Event {
	t.Helper()

	var events []justext.Event
	for {
		e, err := stream.Next()
		if errors.Is(err, io.EOF) {
			return events
		}
		require.NoError(t, err)
		events = append(events, e)
	}
}

func texts(events []justext.Event) []string {
	var out []string
	for _, e := range events {
		if e.Kind == justext.CharactersEvent {
			out = append(out, e.Text)
		}
	}
	return out
}

func tags(events []justext.Event) []string {
	var out []string
	for _, e := range events {
		switch e.Kind {
		case justext.StartTagEvent:
			out = append(out, e.Name)
		case justext.EndTagEvent:
			out = append(out, "/"+e.Name)
		}
	}
	return out
}

func TestCleaner_Clean(t *testing.T) {
	t.Parallel()

	t.Run("flattens tree into balanced events", func(t *testing.T) {
		t.Parallel()

		stream, err := goquery.NewCleaner().Clean(`<P>Hello <B>World</B></P>`)
		require.NoError(t, err)

		events := drain(t, stream)

		assert.Equal(t, []string{"html", "body", "p", "b", "/b", "/p", "/body", "/html"}, tags(events))
		assert.Equal(t, []string{"Hello ", "World"}, texts(events))
	})

	t.Run("closes unclosed tags", func(t *testing.T) {
		t.Parallel()

		stream, err := goquery.NewCleaner().Clean(`<div><p>one<p>two</div>`)
		require.NoError(t, err)

		events := drain(t, stream)

		assert.Equal(t, []string{
			"html", "body", "div", "p", "/p", "p", "/p", "/div", "/body", "/html",
		}, tags(events))
	})

	t.Run("prunes head, scripts and styles", func(t *testing.T) {
		t.Parallel()

		raw := `<!DOCTYPE html><html><head><title>Title</title><meta charset="utf-8">` +
			`<style>p{}</style></head><body><!-- note --><script>var x;</script><p>Body</p></body></html>`

		stream, err := goquery.NewCleaner().Clean(raw)
		require.NoError(t, err)

		events := drain(t, stream)

		assert.Equal(t, []string{"Body"}, texts(events))
		assert.NotContains(t, tags(events), "head")
		assert.NotContains(t, tags(events), "script")
	})

	t.Run("prunes extra selectors", func(t *testing.T) {
		t.Parallel()

		raw := `<body><nav><a href="/">Home</a></nav><p>Body</p></body>`

		stream, err := goquery.NewCleaner(goquery.WithPrunedSelectors("nav")).Clean(raw)
		require.NoError(t, err)

		assert.Equal(t, []string{"Body"}, texts(drain(t, stream)))
	})

	t.Run("keeps attributes", func(t *testing.T) {
		t.Parallel()

		stream, err := goquery.NewCleaner().Clean(`<a href="/x" class="nav">x</a>`)
		require.NoError(t, err)

		var anchor justext.Event
		for _, e := range drain(t, stream) {
			if e.Kind == justext.StartTagEvent && e.Name == "a" {
				anchor = e
			}
		}
		assert.Equal(t, []justext.Attribute{
			{Name: "href", Value: "/x"},
			{Name: "class", Value: "nav"},
		}, anchor.Attrs)
	})

	t.Run("normalizes text to composed form", func(t *testing.T) {
		t.Parallel()

		stream, err := goquery.NewCleaner().Clean("<p>cafe\u0301</p>")
		require.NoError(t, err)

		assert.Equal(t, []string{"caf\u00e9"}, texts(drain(t, stream)))
	})

	t.Run("empty input yields skeleton only", func(t *testing.T) {
		t.Parallel()

		stream, err := goquery.NewCleaner().Clean("")
		require.NoError(t, err)

		events := drain(t, stream)
		assert.Empty(t, texts(events))
	})

	t.Run("logs pruned elements", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

		_, err := goquery.NewCleaner(goquery.WithLogger(logger)).Clean(`<body><script>x</script><p>y</p></body>`)
		require.NoError(t, err)

		assert.Contains(t, buf.String(), "selector=script")
		assert.Contains(t, buf.String(), "count=1")
	})
}

func TestCleaner_FeedsSegmenter(t *testing.T) {
	t.Parallel()

	raw := `<html><head><title>T</title></head><body>
<div><p>First paragraph</p><p>Second <a href="/">link</a></p></div>
</body></html>`

	stream, err := goquery.NewCleaner().Clean(raw)
	require.NoError(t, err)

	blocks, err := justext.Segment(stream)
	require.NoError(t, err)
	require.Len(t, blocks, 2)

	assert.Equal(t, "First paragraph", blocks[0].Text())
	assert.Equal(t, "/html[1]/body[1]/div[1]/p[1]", blocks[0].XPath())
	assert.Equal(t, "Second link", blocks[1].Text())
	assert.Equal(t, 4, blocks[1].CharsInLinks())
}
