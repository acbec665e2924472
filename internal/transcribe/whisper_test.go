package transcribe

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gastoclaro/gastoclaro/internal/common"
)

func TestNewWhisperClientRequiresAPIKey(t *testing.T) {
	_, err := NewWhisperClient(Config{})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrMissingConfig)
}

func TestNewWhisperClientDefaults(t *testing.T) {
	client, err := NewWhisperClient(Config{APIKey: "test-key"})
	require.NoError(t, err)
	assert.Equal(t, "whisper-1", client.model)
	assert.Equal(t, 60*time.Second, client.timeout)
}

func TestTranscribeRejectsEmptyPath(t *testing.T) {
	client, err := NewWhisperClient(Config{APIKey: "test-key"})
	require.NoError(t, err)

	_, err = client.Transcribe(context.Background(), "  ")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}
