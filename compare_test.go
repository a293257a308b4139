package justext_test

import (
	"testing"

	"github.com/fwojciec/justext"
	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	t.Parallel()

	t.Run("identical texts score one", func(t *testing.T) {
		t.Parallel()

		c := justext.Compare("The quick brown fox.", "the QUICK, brown fox")

		assert.Equal(t, 4, c.Common)
		assert.InDelta(t, 1.0, c.Precision, 1e-9)
		assert.InDelta(t, 1.0, c.Recall, 1e-9)
		assert.InDelta(t, 1.0, c.F1, 1e-9)
	})

	t.Run("extra words lower precision", func(t *testing.T) {
		t.Parallel()

		c := justext.Compare("home news the quick brown fox", "the quick brown fox")

		assert.Equal(t, 6, c.Words)
		assert.Equal(t, 4, c.ReferenceWords)
		assert.InDelta(t, 4.0/6.0, c.Precision, 1e-9)
		assert.InDelta(t, 1.0, c.Recall, 1e-9)
		assert.InDelta(t, 0.8, c.F1, 1e-9)
	})

	t.Run("counts repeated words once per occurrence", func(t *testing.T) {
		t.Parallel()

		c := justext.Compare("the the the", "the cat")

		assert.Equal(t, 1, c.Common)
		assert.InDelta(t, 1.0/3.0, c.Precision, 1e-9)
		assert.InDelta(t, 0.5, c.Recall, 1e-9)
	})

	t.Run("both empty", func(t *testing.T) {
		t.Parallel()

		c := justext.Compare("", "  ")
		assert.InDelta(t, 1.0, c.F1, 1e-9)
	})

	t.Run("one side empty", func(t *testing.T) {
		t.Parallel()

		c := justext.Compare("", "some reference text")

		assert.Zero(t, c.Precision)
		assert.Zero(t, c.Recall)
		assert.Zero(t, c.F1)
	})
}
