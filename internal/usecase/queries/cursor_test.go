//go:build unit

package queries

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfterCursor(t *testing.T) {
	at := time.Date(2026, 5, 6, 7, 8, 9, 123456000, time.UTC)
	id := uuid.New()

	gotAt, gotID, err := DecodeAfterCursor(EncodeAfterCursor(at, id))
	require.NoError(t, err)
	assert.True(t, at.Equal(gotAt))
	assert.Equal(t, id, gotID)

	invalid := []string{
		"",
		"not-base64!",
		base64.URLEncoding.EncodeToString([]byte("v2:1-" + id.String())),
		base64.URLEncoding.EncodeToString([]byte("v1:abc-" + id.String())),
		base64.URLEncoding.EncodeToString([]byte("v1:12345-not-a-uuid")),
		base64.URLEncoding.EncodeToString([]byte("v1:12345")),
	}
	for _, c := range invalid {
		_, _, err := DecodeAfterCursor(c)
		assert.Error(t, err, c)
	}
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, DefaultListLimit, ValidateLimit(0))
	assert.Equal(t, DefaultListLimit, ValidateLimit(-3))
	assert.Equal(t, 50, ValidateLimit(50))
	assert.Equal(t, MaxListLimit, ValidateLimit(MaxListLimit+1))
}
