// Package cardgen defines the interface for the card image generation service
package cardgen

//go:generate mockgen -destination=mock/mock_client.go -package=cardgenmock github.com/creatureforge/card-api/internal/clients/cardgen Client

import (
	"context"

	"github.com/creatureforge/card-api/internal/entities/creature"
)

// Client generates and edits trading card images from creature data
type Client interface {
	// GenerateCard renders a full card image from the creature's sketch and stats
	// Returns errors.InvalidArgument if the creature has no sketch
	// Returns errors.Unavailable if the image service fails or returns no image
	GenerateCard(ctx context.Context, input *GenerateCardInput) (*GenerateCardOutput, error)

	// EditCard applies a natural language edit instruction to an existing card image
	// Returns errors.InvalidArgument for missing card or empty instruction
	// Returns errors.Unavailable if the image service fails or returns no image
	EditCard(ctx context.Context, input *EditCardInput) (*EditCardOutput, error)
}

// GenerateCardInput defines the input for generating a card
type GenerateCardInput struct {
	Creature *creature.Creature
}

// GenerateCardOutput defines the output for generating a card
type GenerateCardOutput struct {
	Card *creature.ImageBlob
}

// EditCardInput defines the input for editing a card
type EditCardInput struct {
	Card        *creature.ImageBlob
	Instruction string
}

// EditCardOutput defines the output for editing a card
type EditCardOutput struct {
	Card *creature.ImageBlob
}
