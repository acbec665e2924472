// Package service defines the interfaces between the extraction pipeline's
// collaborators: persistence, speech-to-text, and the CLI/TUI surfaces that
// consume them.
package service

import (
	"context"
	"time"

	"github.com/gastoclaro/gastoclaro/internal/model"
)

// Storage persists expense drafts and the user's configured vocabularies.
type Storage interface {
	// SaveDraft writes a draft and its installments atomically. A blank
	// draft ID is assigned on save.
	SaveDraft(ctx context.Context, draft *model.ExpenseDraft) error
	// GetDraft returns a stored draft by ID.
	GetDraft(ctx context.Context, id string) (*model.ExpenseDraft, error)
	// ListDrafts returns stored drafts, optionally filtered by status.
	// Pass an empty status for all drafts.
	ListDrafts(ctx context.Context, status model.DraftStatus) ([]model.ExpenseDraft, error)
	// UpdateDraft rewrites an edited draft and its installments.
	UpdateDraft(ctx context.Context, draft *model.ExpenseDraft) error

	// Cost center configuration.
	GetCostCenters(ctx context.Context) ([]string, error)
	AddCostCenter(ctx context.Context, name string) error
	RemoveCostCenter(ctx context.Context, name string) error

	// Category configuration.
	GetCategories(ctx context.Context) ([]string, error)
	AddCategory(ctx context.Context, name string) error
	RemoveCategory(ctx context.Context, name string) error

	// Lexicon assembles the user's configured vocabularies, substituting
	// defaults where nothing is configured.
	Lexicon(ctx context.Context) (model.Lexicon, error)

	Close() error
}

// Transcriber converts an audio file into a text transcript. Implementations
// are expected to honor context cancellation; a slow engine must not block
// unrelated requests.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

// RetryOptions configures retry behavior for collaborator calls.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
