package cardgen

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/genai"

	"github.com/creatureforge/card-api/internal/entities/creature"
	"github.com/creatureforge/card-api/internal/errors"
)

// DefaultModel is the multimodal model used for sketch-to-card generation
const DefaultModel = "gemini-2.5-flash-image"

const cardAspectRatio = "3:4"

// GeminiConfig holds the dependencies for the Gemini-backed client
type GeminiConfig struct {
	Client *genai.Client

	// Model overrides the default image model when set
	Model string
}

// Validate ensures the config is complete
func (c *GeminiConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Client == nil {
		return errors.InvalidArgument("genai client is required")
	}
	return nil
}

type geminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a card generation client backed by the Gemini API
func NewGeminiClient(cfg *GeminiConfig) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	return &geminiClient{
		client: cfg.Client,
		model:  model,
	}, nil
}

func (g *geminiClient) GenerateCard(ctx context.Context, input *GenerateCardInput) (*GenerateCardOutput, error) {
	if input == nil || input.Creature == nil {
		return nil, errors.InvalidArgument("creature cannot be nil")
	}
	if input.Creature.Sketch.IsEmpty() {
		return nil, errors.InvalidArgument("creature has no sketch")
	}

	card, err := g.generateImage(ctx, input.Creature.Sketch, BuildCardPrompt(input.Creature))
	if err != nil {
		return nil, err
	}

	return &GenerateCardOutput{Card: card}, nil
}

func (g *geminiClient) EditCard(ctx context.Context, input *EditCardInput) (*EditCardOutput, error) {
	if input == nil || input.Card.IsEmpty() {
		return nil, errors.InvalidArgument("card image is required")
	}
	if input.Instruction == "" {
		return nil, errors.InvalidArgument("edit instruction is required")
	}

	card, err := g.generateImage(ctx, input.Card, BuildEditPrompt(input.Instruction))
	if err != nil {
		return nil, err
	}

	return &EditCardOutput{Card: card}, nil
}

// generateImage sends an image plus prompt to Gemini and returns the first
// image part of the response.
func (g *geminiClient) generateImage(ctx context.Context, image *creature.ImageBlob, prompt string) (*creature.ImageBlob, error) {
	start := time.Now()

	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{
					InlineData: &genai.Blob{
						MIMEType: image.MIMEType,
						Data:     image.Data,
					},
				},
				{Text: prompt},
			},
		},
	}

	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"TEXT", "IMAGE"},
		ImageConfig: &genai.ImageConfig{
			AspectRatio: cardAspectRatio,
		},
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		slog.Error("gemini call failed",
			"model", g.model,
			"duration", time.Since(start),
			"error", err)
		return nil, errors.Unavailablef("image service request failed: %v", err)
	}

	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				mimeType := part.InlineData.MIMEType
				if mimeType == "" {
					mimeType = "image/png"
				}
				slog.Info("gemini image generated",
					"model", g.model,
					"output_bytes", len(part.InlineData.Data),
					"duration", time.Since(start))
				return &creature.ImageBlob{
					MIMEType: mimeType,
					Data:     part.InlineData.Data,
				}, nil
			}
		}
	}

	return nil, errors.Unavailable("image service returned no image")
}
