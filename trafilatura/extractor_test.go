package trafilatura_test

import (
	"testing"

	"github.com/fwojciec/justext"
	"github.com/fwojciec/justext/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const article = `<!DOCTYPE html>
<html>
<head><title>Rivers of the valley</title></head>
<body>
<nav class="main-nav">
<ul>
<li><a href="/">Home</a></li>
<li><a href="/about">About us</a></li>
</ul>
</nav>
<article>
<h1>Rivers of the valley</h1>
<p>The river has shaped the valley for thousands of years, carving terraces that the first farmers used for their fields.</p>
<p>Today the old mills along its banks are museums, and the water that once turned their wheels feeds the town reservoir.</p>
</article>
<footer><p>Copyright 2024 Valley Historical Society</p></footer>
</body>
</html>`

func TestExtractor_ExtractText(t *testing.T) {
	t.Parallel()

	t.Run("keeps the article text", func(t *testing.T) {
		t.Parallel()

		text, err := trafilatura.NewExtractor().ExtractText(article)

		require.NoError(t, err)
		assert.Contains(t, text, "carving terraces that the first farmers used")
		assert.Contains(t, text, "feeds the town reservoir")
	})

	t.Run("drops navigation and footer", func(t *testing.T) {
		t.Parallel()

		text, err := trafilatura.NewExtractor().ExtractText(article)

		require.NoError(t, err)
		assert.NotContains(t, text, "About us")
		assert.NotContains(t, text, "Valley Historical Society")
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		_, err := trafilatura.NewExtractor().ExtractText(" \n")
		assert.Equal(t, justext.EINVALID, justext.ErrorCode(err))
	})
}
