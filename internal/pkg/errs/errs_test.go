//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"lastbite-client/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark(t *testing.T) {
	sentinel := errs.New("operation failed")

	t.Run("marked error matches the sentinel through Is", func(t *testing.T) {
		cause := errs.New("connection refused")
		marked := errs.Mark(cause, sentinel)

		assert.True(t, errs.Is(marked, sentinel))
		assert.True(t, errs.Is(marked, cause))
	})

	t.Run("mark survives further wrapping", func(t *testing.T) {
		marked := errs.Mark(errs.New("boom"), sentinel)
		wrapped := errs.Wrap(marked, "while syncing")

		assert.True(t, errs.Is(wrapped, sentinel))
	})

	t.Run("marking nil yields the bare sentinel", func(t *testing.T) {
		err := errs.Mark(nil, sentinel)
		require.ErrorIs(t, err, sentinel)
	})

	t.Run("unrelated sentinel does not match", func(t *testing.T) {
		other := errs.New("something else")
		marked := errs.Mark(errs.New("boom"), sentinel)

		assert.False(t, errs.Is(marked, other))
	})

	t.Run("stdlib sentinels still match", func(t *testing.T) {
		stdSentinel := errors.New("plain sentinel")
		wrapped := errs.Wrap(stdSentinel, "context")

		assert.True(t, errs.Is(wrapped, stdSentinel))
	})
}
