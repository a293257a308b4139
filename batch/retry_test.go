package batch_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/fwojciec/justext"
	"github.com/fwojciec/justext/batch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchWithRetry(t *testing.T) {
	t.Parallel()

	delays := []time.Duration{time.Millisecond, time.Millisecond, time.Millisecond}

	t.Run("returns first success", func(t *testing.T) {
		t.Parallel()

		calls := 0
		html, err := batch.FetchWithRetry(context.Background(), "u", func(context.Context, string) (string, error) {
			calls++
			return "ok", nil
		}, nil, delays)

		require.NoError(t, err)
		assert.Equal(t, "ok", html)
		assert.Equal(t, 1, calls)
	})

	t.Run("gives up after all delays", func(t *testing.T) {
		t.Parallel()

		calls := 0
		_, err := batch.FetchWithRetry(context.Background(), "u", func(context.Context, string) (string, error) {
			calls++
			return "", errors.New("timeout")
		}, nil, delays)

		require.Error(t, err)
		assert.Equal(t, 4, calls)
	})

	t.Run("stops on permanent errors", func(t *testing.T) {
		t.Parallel()

		for _, code := range []string{justext.ENOTFOUND, justext.EINVALID} {
			calls := 0
			_, err := batch.FetchWithRetry(context.Background(), "u", func(context.Context, string) (string, error) {
				calls++
				return "", justext.Errorf(code, "no")
			}, nil, delays)

			require.Error(t, err)
			assert.Equal(t, 1, calls, code)
		}
	})

	t.Run("logs each retry", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		calls := 0
		_, err := batch.FetchWithRetry(context.Background(), "https://example.com", func(context.Context, string) (string, error) {
			calls++
			if calls < 3 {
				return "", errors.New("reset")
			}
			return "ok", nil
		}, logger, delays)

		require.NoError(t, err)
		assert.Contains(t, buf.String(), "attempt=2")
		assert.Contains(t, buf.String(), "attempt=3")
		assert.Contains(t, buf.String(), "url=https://example.com")
	})

	t.Run("stops waiting when context is canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		_, err := batch.FetchWithRetry(ctx, "u", func(context.Context, string) (string, error) {
			cancel()
			return "", errors.New("reset")
		}, nil, []time.Duration{time.Hour})

		assert.ErrorIs(t, err, context.Canceled)
	})
}
