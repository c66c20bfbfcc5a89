package handler

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrsuite/recruitment-service/internal/api/storage"
)

func TestCursorRoundTrip(t *testing.T) {
	original := &storage.Cursor{
		CreatedAt: time.Now().Truncate(time.Nanosecond),
		ID:        uuid.New().String(),
	}

	decoded, err := DecodeCursor(EncodeCursor(original))
	require.NoError(t, err)
	require.NotNil(t, decoded)
	assert.True(t, decoded.CreatedAt.Equal(original.CreatedAt))
	assert.Equal(t, original.ID, decoded.ID)
}

func TestDecodeCursor(t *testing.T) {
	t.Run("empty cursor is nil", func(t *testing.T) {
		cursor, err := DecodeCursor("")
		require.NoError(t, err)
		assert.Nil(t, cursor)
	})

	t.Run("not base64", func(t *testing.T) {
		_, err := DecodeCursor("%%%not-base64%%%")
		assert.Error(t, err)
	})

	t.Run("missing separator", func(t *testing.T) {
		_, err := DecodeCursor("bm9zZXBhcmF0b3I=") // "noseparator"
		assert.Error(t, err)
	})
}
