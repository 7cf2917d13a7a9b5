// Package session defines the interface for wizard session persistence
package session

//go:generate mockgen -destination=mock/mock_repository.go -package=sessionmock github.com/creatureforge/card-api/internal/repositories/session Repository

import (
	"context"

	"github.com/creatureforge/card-api/internal/entities/creature"
)

// Repository defines the interface for wizard session persistence
// Implements a single-session-per-player pattern for simplicity
type Repository interface {
	// Create creates or replaces a player's wizard session
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a wizard session by ID
	// Returns errors.InvalidArgument for empty/invalid IDs
	// Returns errors.NotFound if session doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// GetByPlayerID retrieves the player's single session
	// Returns errors.InvalidArgument for empty/invalid player IDs
	// Returns errors.NotFound if player has no session
	// Returns errors.Internal for storage failures
	GetByPlayerID(ctx context.Context, input GetByPlayerIDInput) (*GetByPlayerIDOutput, error)

	// Update updates an existing wizard session
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.NotFound if session doesn't exist
	// Returns errors.Internal for storage failures
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete deletes a wizard session by ID
	// Returns errors.InvalidArgument for empty/invalid IDs
	// Returns errors.NotFound if session doesn't exist
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// CreateInput defines the input for creating a wizard session
type CreateInput struct {
	Session *creature.WizardSession
}

// CreateOutput defines the output for creating a wizard session
type CreateOutput struct {
	Session *creature.WizardSession
}

// GetInput defines the input for getting a wizard session
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a wizard session
type GetOutput struct {
	Session *creature.WizardSession
}

// GetByPlayerIDInput defines the input for getting a player's session
type GetByPlayerIDInput struct {
	PlayerID string
}

// GetByPlayerIDOutput defines the output for getting a player's session
type GetByPlayerIDOutput struct {
	Session *creature.WizardSession
}

// UpdateInput defines the input for updating a wizard session
type UpdateInput struct {
	Session *creature.WizardSession
}

// UpdateOutput defines the output for updating a wizard session
type UpdateOutput struct {
	Session *creature.WizardSession
}

// DeleteInput defines the input for deleting a wizard session
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a wizard session
type DeleteOutput struct {
	// Empty for now, can be extended later
}
