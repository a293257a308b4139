package justext_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/justext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := justext.Errorf(justext.ENOTFOUND, "language %q not found", "xx")

	assert.Equal(t, justext.ENOTFOUND, justext.ErrorCode(err))
	assert.Equal(t, "language \"xx\" not found", justext.ErrorMessage(err))
}

func TestWrapError(t *testing.T) {
	t.Parallel()

	cause := errors.New("unexpected EOF")
	err := justext.WrapError(justext.EPARSE, cause, "clean html")

	assert.Equal(t, justext.EPARSE, justext.ErrorCode(err))
	assert.Equal(t, "clean html", justext.ErrorMessage(err))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "unexpected EOF")
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("extract: %w", justext.Errorf(justext.EINVALID, "bad"))

	var appErr *justext.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, justext.EINVALID, justext.ErrorCode(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, justext.EINTERNAL, justext.ErrorCode(err))
	assert.Equal(t, "Internal error", justext.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, justext.ErrorCode(nil))
	assert.Empty(t, justext.ErrorMessage(nil))
}
