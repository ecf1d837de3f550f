package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError(t *testing.T) {
	t.Run("should keep identity through WithContext and wrapping", func(t *testing.T) {
		err := ErrFileAlreadyExists.WithContext("path", "/tmp/artifact.bin")
		wrapped := fmt.Errorf("downloading artifact: %w", err)

		assert.ErrorIs(t, wrapped, ErrFileAlreadyExists)
	})

	t.Run("should not match a different named error", func(t *testing.T) {
		err := ErrSlugMissing.WithContext("flag", "--slug")

		assert.False(t, errors.Is(err, ErrConfigMissing))
	})

	t.Run("should unwrap to the underlying error", func(t *testing.T) {
		cause := errors.New("disk full")
		err := NewAppError(TypeDownload, "write failed", cause)

		require.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "DOWNLOAD")
		assert.Contains(t, err.Error(), "disk full")
	})
}
