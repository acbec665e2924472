// Package transcribe wraps the external speech-to-text engine. The pipeline
// itself never sees audio; this collaborator turns an audio file into the
// transcript the pipeline consumes.
package transcribe

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/gastoclaro/gastoclaro/internal/common"
	"github.com/gastoclaro/gastoclaro/internal/service"
)

// Config holds the Whisper client configuration.
type Config struct {
	APIKey  string
	Model   string
	Timeout time.Duration
	Retry   service.RetryOptions
}

// WhisperClient implements service.Transcriber over the OpenAI Whisper API.
type WhisperClient struct {
	client  *openai.Client
	model   string
	timeout time.Duration
	retry   service.RetryOptions
}

var _ service.Transcriber = (*WhisperClient)(nil)

// NewWhisperClient creates a Whisper transcription client.
func NewWhisperClient(cfg Config) (*WhisperClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: openai.api_key is required for transcription", common.ErrMissingConfig)
	}
	if cfg.Model == "" {
		cfg.Model = openai.Whisper1
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}

	return &WhisperClient{
		client:  openai.NewClient(cfg.APIKey),
		model:   cfg.Model,
		timeout: cfg.Timeout,
		retry:   cfg.Retry,
	}, nil
}

// Transcribe converts the audio file at audioPath into a Portuguese text
// transcript. The call is bounded by the configured timeout so a slow engine
// cannot block unrelated requests, and transient failures are retried.
func (w *WhisperClient) Transcribe(ctx context.Context, audioPath string) (string, error) {
	if strings.TrimSpace(audioPath) == "" {
		return "", fmt.Errorf("%w: audio path cannot be empty", common.ErrInvalidInput)
	}

	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	start := time.Now()
	var text string
	err := common.WithRetry(ctx, func() error {
		resp, err := w.client.CreateTranscription(ctx, openai.AudioRequest{
			Model:       w.model,
			FilePath:    audioPath,
			Language:    "pt",
			Temperature: 0,
		})
		if err != nil {
			return err
		}
		text = strings.TrimSpace(resp.Text)
		return nil
	}, w.retry)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrTranscriptionFailed, err)
	}

	slog.Debug("transcription complete",
		"audio", audioPath,
		"duration", time.Since(start),
		"chars", len(text))
	return text, nil
}
