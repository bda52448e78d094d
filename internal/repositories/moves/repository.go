// Package moves defines the interface for frame data persistence
package moves

//go:generate mockgen -destination=mock/mock_repository.go -package=movesmock github.com/FottenSC/FrameData/internal/repositories/moves Repository

import (
	"context"

	"github.com/FottenSC/FrameData/internal/entities/tekken"
)

// Batch is one character's complete imported move list plus run metadata.
// A new import replaces the character's previous batch wholesale; moves
// are never updated individually.
type Batch struct {
	Character  string         `json:"character"`
	RunID      string         `json:"runId"`
	ImportedAt int64          `json:"importedAt"`
	Moves      []*tekken.Move `json:"moves"`
}

// Repository defines the interface for frame data persistence
type Repository interface {
	// ReplaceBatch atomically replaces the character's stored batch
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal for storage failures
	ReplaceBatch(ctx context.Context, input ReplaceBatchInput) (*ReplaceBatchOutput, error)

	// GetBatch retrieves a character's stored batch
	// Returns errors.InvalidArgument for an empty character
	// Returns errors.NotFound if no batch exists
	GetBatch(ctx context.Context, input GetBatchInput) (*GetBatchOutput, error)

	// ListCharacters returns the characters that have a stored batch
	ListCharacters(ctx context.Context, input ListCharactersInput) (*ListCharactersOutput, error)

	// DeleteBatch removes a character's stored batch
	// Returns errors.NotFound if no batch exists
	DeleteBatch(ctx context.Context, input DeleteBatchInput) (*DeleteBatchOutput, error)
}

// ReplaceBatchInput defines the input for replacing a character's batch
type ReplaceBatchInput struct {
	Character string
	RunID     string
	Moves     []*tekken.Move
}

// ReplaceBatchOutput defines the output for replacing a character's batch
type ReplaceBatchOutput struct {
	Batch *Batch
}

// GetBatchInput defines the input for getting a character's batch
type GetBatchInput struct {
	Character string
}

// GetBatchOutput defines the output for getting a character's batch
type GetBatchOutput struct {
	Batch *Batch
}

// ListCharactersInput defines the input for listing stored characters
type ListCharactersInput struct{}

// ListCharactersOutput defines the output for listing stored characters
type ListCharactersOutput struct {
	Characters []string
}

// DeleteBatchInput defines the input for deleting a character's batch
type DeleteBatchInput struct {
	Character string
}

// DeleteBatchOutput defines the output for deleting a character's batch
type DeleteBatchOutput struct {
	// Empty for now, can be extended later
}
