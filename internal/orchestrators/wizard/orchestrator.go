// Package wizard implements the creature card wizard: a per-player state
// machine that walks from sketch upload through the interview and color
// picker to card generation and editing.
package wizard

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/creatureforge/card-api/internal/clients/cardgen"
	"github.com/creatureforge/card-api/internal/entities/creature"
	"github.com/creatureforge/card-api/internal/errors"
	"github.com/creatureforge/card-api/internal/pkg/clock"
	"github.com/creatureforge/card-api/internal/pkg/idgen"
	"github.com/creatureforge/card-api/internal/pkg/roller"
	sessionrepo "github.com/creatureforge/card-api/internal/repositories/session"
)

// generateFailedMessage is the player-facing banner shown when card
// generation fails and the wizard falls back to the interview
const generateFailedMessage = "Oh no! The creation machine got jammed. Please try again."

// Service defines the wizard orchestrator operations
type Service interface {
	// CreateSession starts a fresh wizard session for a player,
	// replacing any session the player already has
	CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error)

	// GetSession retrieves a session by ID
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)

	// ResetSession returns a session to the landing screen with a
	// default creature, from any step
	ResetSession(ctx context.Context, input *ResetSessionInput) (*ResetSessionOutput, error)

	// StartWizard moves from the landing screen to sketch upload
	StartWizard(ctx context.Context, input *StartWizardInput) (*StartWizardOutput, error)

	// UploadSketch stores an uploaded image as the pending sketch preview
	UploadSketch(ctx context.Context, input *UploadSketchInput) (*UploadSketchOutput, error)

	// RetakeSketch discards the pending sketch preview
	RetakeSketch(ctx context.Context, input *RetakeSketchInput) (*RetakeSketchOutput, error)

	// ConfirmSketch commits the pending sketch and starts the interview
	ConfirmSketch(ctx context.Context, input *ConfirmSketchInput) (*ConfirmSketchOutput, error)

	// AnswerQuestion records an answer to the current interview question
	AnswerQuestion(ctx context.Context, input *AnswerQuestionInput) (*AnswerQuestionOutput, error)

	// AdvanceInterview moves to the next question, or completes the
	// interview from the final question
	AdvanceInterview(ctx context.Context, input *AdvanceInterviewInput) (*AdvanceInterviewOutput, error)

	// RetreatInterview moves back one question; no-op on the first
	RetreatInterview(ctx context.Context, input *RetreatInterviewInput) (*RetreatInterviewOutput, error)

	// ApplyVoiceAnswer merges a voice transcript into the current
	// question's answer; stale transcripts are dropped
	ApplyVoiceAnswer(ctx context.Context, input *ApplyVoiceAnswerInput) (*ApplyVoiceAnswerOutput, error)

	// ToggleColor adds or removes a palette color
	ToggleColor(ctx context.Context, input *ToggleColorInput) (*ToggleColorOutput, error)

	// SetColorHarmony sets the color harmony mode
	SetColorHarmony(ctx context.Context, input *SetColorHarmonyInput) (*SetColorHarmonyOutput, error)

	// GenerateCard calls the card generation service with the assembled
	// creature. Service failure falls back to the interview step with a
	// banner message rather than returning an error.
	GenerateCard(ctx context.Context, input *GenerateCardInput) (*GenerateCardOutput, error)

	// StartEdit enters edit mode on the result screen
	StartEdit(ctx context.Context, input *StartEditInput) (*StartEditOutput, error)

	// CancelEdit leaves edit mode and clears the in-progress instruction
	CancelEdit(ctx context.Context, input *CancelEditInput) (*CancelEditOutput, error)

	// SubmitEdit applies an edit instruction to the generated card.
	// Service failure keeps the card and edit state and returns an
	// Unavailable error.
	SubmitEdit(ctx context.Context, input *SubmitEditInput) (*SubmitEditOutput, error)

	// ApplyEditVoice merges a voice transcript into the edit instruction
	ApplyEditVoice(ctx context.Context, input *ApplyEditVoiceInput) (*ApplyEditVoiceOutput, error)

	// GetCard returns the generated card image with a download filename
	GetCard(ctx context.Context, input *GetCardInput) (*GetCardOutput, error)

	// GetQuestions returns the static interview question catalog
	GetQuestions(ctx context.Context, input *GetQuestionsInput) (*GetQuestionsOutput, error)

	// GetCatalog returns the static type, color, and harmony catalogs
	GetCatalog(ctx context.Context, input *GetCatalogInput) (*GetCatalogOutput, error)
}

// Config holds the dependencies for the wizard orchestrator
type Config struct {
	SessionRepo sessionrepo.Repository
	CardGen     cardgen.Client
	IDGenerator idgen.Generator
	Roller      roller.Roller
	Clock       clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.SessionRepo == nil {
		vb.RequiredField("SessionRepo")
	}
	if c.CardGen == nil {
		vb.RequiredField("CardGen")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	return vb.Build()
}

// Orchestrator implements the wizard Service
type Orchestrator struct {
	sessionRepo sessionrepo.Repository
	cardGen     cardgen.Client
	idGen       idgen.Generator
	roller      roller.Roller
	clock       clock.Clock
}

// New creates a new wizard orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Orchestrator{
		sessionRepo: cfg.SessionRepo,
		cardGen:     cfg.CardGen,
		idGen:       cfg.IDGenerator,
		roller:      cfg.Roller,
		clock:       cfg.Clock,
	}, nil
}

// CreateSession starts a fresh wizard session for a player
func (o *Orchestrator) CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if strings.TrimSpace(input.PlayerID) == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	now := o.clock.Now().Unix()
	sess := &creature.WizardSession{
		ID:        o.idGen.Generate(),
		PlayerID:  input.PlayerID,
		Step:      creature.StepLanding,
		Creature:  creature.NewCreature(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := o.sessionRepo.Create(ctx, sessionrepo.CreateInput{Session: sess}); err != nil {
		return nil, errors.Wrapf(err, "failed to create session for player %s", input.PlayerID)
	}

	slog.Info("wizard session created", "session_id", sess.ID, "player_id", sess.PlayerID)
	return &CreateSessionOutput{Session: sess}, nil
}

// GetSession retrieves a session by ID
func (o *Orchestrator) GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	sess, err := o.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	return &GetSessionOutput{Session: sess}, nil
}

// ResetSession returns a session to the landing screen with defaults
func (o *Orchestrator) ResetSession(ctx context.Context, input *ResetSessionInput) (*ResetSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	sess, err := o.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	sess.Step = creature.StepLanding
	sess.Creature = creature.NewCreature()
	sess.QuestionIndex = 0
	sess.PendingSketch = nil
	sess.Card = nil
	sess.Editing = false
	sess.EditInstruction = ""
	sess.Regenerating = false
	sess.LastError = ""

	if err := o.saveSession(ctx, sess); err != nil {
		return nil, err
	}
	return &ResetSessionOutput{Session: sess}, nil
}

// StartWizard moves from the landing screen to sketch upload
func (o *Orchestrator) StartWizard(ctx context.Context, input *StartWizardInput) (*StartWizardOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	sess, err := o.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if err := requireStep(sess, creature.StepLanding); err != nil {
		return nil, err
	}

	sess.Step = creature.StepUpload
	if err := o.saveSession(ctx, sess); err != nil {
		return nil, err
	}
	return &StartWizardOutput{Session: sess}, nil
}

// UploadSketch stores an uploaded image as the pending sketch preview
func (o *Orchestrator) UploadSketch(ctx context.Context, input *UploadSketchInput) (*UploadSketchOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if len(input.Data) == 0 {
		return nil, errors.InvalidArgument("sketch data is required")
	}

	mimeType := http.DetectContentType(input.Data)
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, errors.InvalidArgumentf("sketch must be an image, got %s", mimeType)
	}

	sess, err := o.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if err := requireStep(sess, creature.StepUpload); err != nil {
		return nil, err
	}

	sess.PendingSketch = &creature.ImageBlob{
		MIMEType: mimeType,
		Data:     input.Data,
	}

	if err := o.saveSession(ctx, sess); err != nil {
		return nil, err
	}
	return &UploadSketchOutput{Session: sess}, nil
}

// RetakeSketch discards the pending sketch preview. A sketch that was
// already confirmed stays committed.
func (o *Orchestrator) RetakeSketch(ctx context.Context, input *RetakeSketchInput) (*RetakeSketchOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	sess, err := o.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if err := requireStep(sess, creature.StepUpload); err != nil {
		return nil, err
	}

	sess.PendingSketch = nil
	if err := o.saveSession(ctx, sess); err != nil {
		return nil, err
	}
	return &RetakeSketchOutput{Session: sess}, nil
}

// ConfirmSketch commits the pending sketch and starts the interview
func (o *Orchestrator) ConfirmSketch(ctx context.Context, input *ConfirmSketchInput) (*ConfirmSketchOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	sess, err := o.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if err := requireStep(sess, creature.StepUpload); err != nil {
		return nil, err
	}
	if sess.PendingSketch.IsEmpty() {
		return nil, errors.FailedPrecondition("no sketch has been uploaded")
	}

	sess.Creature.Sketch = sess.PendingSketch
	sess.PendingSketch = nil
	sess.Step = creature.StepInterview
	sess.QuestionIndex = 0

	if err := o.saveSession(ctx, sess); err != nil {
		return nil, err
	}
	return &ConfirmSketchOutput{Session: sess}, nil
}

// AnswerQuestion records an answer to the current interview question
func (o *Orchestrator) AnswerQuestion(ctx context.Context, input *AnswerQuestionInput) (*AnswerQuestionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	sess, err := o.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if err := requireStep(sess, creature.StepInterview); err != nil {
		return nil, err
	}

	q := sess.CurrentQuestion()
	if q == nil {
		return nil, errors.Internal("question index out of range")
	}
	if input.QuestionID != q.ID {
		return nil, errors.FailedPreconditionf("question %s is not the current question (%s)", input.QuestionID, q.ID)
	}

	if err := applyAnswer(&sess.Creature, q, input.Value); err != nil {
		return nil, err
	}

	if err := o.saveSession(ctx, sess); err != nil {
		return nil, err
	}
	return &AnswerQuestionOutput{Session: sess}, nil
}

// applyAnswer parses value per the question's input kind and writes exactly
// the addressed creature field
func applyAnswer(c *creature.Creature, q *creature.Question, value string) error {
	switch q.ID {
	case creature.QuestionName:
		c.Name = value
	case creature.QuestionType:
		mt := creature.MonsterType(value)
		if !creature.IsValidMonsterType(mt) {
			return errors.InvalidArgumentf("unknown monster type %q", value)
		}
		c.Type = mt
	case creature.QuestionHP:
		hp, err := strconv.ParseInt(strings.TrimSpace(value), 10, 32)
		if err != nil {
			return errors.InvalidArgumentf("HP must be a number, got %q", value)
		}
		c.HP = int32(hp)
	case creature.QuestionSketchFeatures:
		c.SketchFeatures = value
	case creature.QuestionSpecialAbility:
		c.SpecialAbility = value
	case creature.QuestionDescription:
		c.Description = value
	default:
		return errors.Internalf("unhandled question %s", q.ID)
	}
	return nil
}

// AdvanceInterview moves to the next question, or completes the interview
// from the final question
func (o *Orchestrator) AdvanceInterview(ctx context.Context, input *AdvanceInterviewInput) (*AdvanceInterviewOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	sess, err := o.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if err := requireStep(sess, creature.StepInterview); err != nil {
		return nil, err
	}

	if !sess.OnLastQuestion() {
		sess.QuestionIndex++
	} else {
		if strings.TrimSpace(sess.Creature.Name) == "" {
			return nil, errors.InvalidArgument("creature needs a name before the interview can finish")
		}
		if sess.Creature.SpecialAbilityDamage == 0 {
			roll, err := o.roller.Roll(1, 50)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to roll ability damage")
			}
			sess.Creature.SpecialAbilityDamage = int32(29 + roll)
		}
		sess.Step = creature.StepColor
	}

	if err := o.saveSession(ctx, sess); err != nil {
		return nil, err
	}
	return &AdvanceInterviewOutput{Session: sess}, nil
}

// RetreatInterview moves back one question; no-op on the first
func (o *Orchestrator) RetreatInterview(ctx context.Context, input *RetreatInterviewInput) (*RetreatInterviewOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	sess, err := o.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if err := requireStep(sess, creature.StepInterview); err != nil {
		return nil, err
	}

	if sess.QuestionIndex > 0 {
		sess.QuestionIndex--
		if err := o.saveSession(ctx, sess); err != nil {
			return nil, err
		}
	}
	return &RetreatInterviewOutput{Session: sess}, nil
}

// ApplyVoiceAnswer merges a voice transcript into the current question's
// answer. Transcripts for a question the wizard has moved past are dropped
// rather than misapplied.
func (o *Orchestrator) ApplyVoiceAnswer(ctx context.Context, input *ApplyVoiceAnswerInput) (*ApplyVoiceAnswerOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	sess, err := o.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if err := requireStep(sess, creature.StepInterview); err != nil {
		return nil, err
	}

	q := sess.CurrentQuestion()
	if q == nil {
		return nil, errors.Internal("question index out of range")
	}

	// Stale transcript: the wizard moved on before the result arrived
	if input.QuestionID != q.ID {
		slog.Debug("dropping stale voice transcript",
			"session_id", sess.ID,
			"transcript_question", input.QuestionID,
			"current_question", q.ID)
		return &ApplyVoiceAnswerOutput{Session: sess, Applied: false}, nil
	}

	applied := applyVoice(&sess.Creature, q, input.Transcript)
	if !applied {
		return &ApplyVoiceAnswerOutput{Session: sess, Applied: false}, nil
	}

	if err := o.saveSession(ctx, sess); err != nil {
		return nil, err
	}
	return &ApplyVoiceAnswerOutput{Session: sess, Applied: true}, nil
}

// applyVoice merges a transcript into the field the question addresses.
// Returns false when the transcript cannot be applied.
func applyVoice(c *creature.Creature, q *creature.Question, transcript string) bool {
	switch q.InputKind {
	case creature.InputNumber:
		n, ok := extractNumber(transcript)
		if !ok {
			return false
		}
		if q.ID == creature.QuestionHP {
			c.HP = n
			return true
		}
		return false
	case creature.InputText, creature.InputTextarea:
		var merged string
		var ok bool
		switch q.ID {
		case creature.QuestionName:
			merged, ok = mergeTranscript(c.Name, transcript)
			c.Name = merged
		case creature.QuestionSketchFeatures:
			merged, ok = mergeTranscript(c.SketchFeatures, transcript)
			c.SketchFeatures = merged
		case creature.QuestionSpecialAbility:
			merged, ok = mergeTranscript(c.SpecialAbility, transcript)
			c.SpecialAbility = merged
		case creature.QuestionDescription:
			merged, ok = mergeTranscript(c.Description, transcript)
			c.Description = merged
		default:
			return false
		}
		return ok
	default:
		// select questions have no sensible transcript mapping
		return false
	}
}

// ToggleColor adds or removes a palette color
func (o *Orchestrator) ToggleColor(ctx context.Context, input *ToggleColorInput) (*ToggleColorOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if !creature.IsValidColor(input.Color) {
		return nil, errors.InvalidArgumentf("unknown color %q", input.Color)
	}

	sess, err := o.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if err := requireStep(sess, creature.StepColor); err != nil {
		return nil, err
	}

	selected := sess.Creature.SelectedColors
	for i, c := range selected {
		if c == input.Color {
			sess.Creature.SelectedColors = append(selected[:i:i], selected[i+1:]...)
			if err := o.saveSession(ctx, sess); err != nil {
				return nil, err
			}
			return &ToggleColorOutput{Session: sess}, nil
		}
	}

	// At the cap adding is a silent no-op
	if len(selected) >= creature.MaxSelectedColors {
		return &ToggleColorOutput{Session: sess}, nil
	}

	sess.Creature.SelectedColors = append(selected, input.Color)
	if err := o.saveSession(ctx, sess); err != nil {
		return nil, err
	}
	return &ToggleColorOutput{Session: sess}, nil
}

// SetColorHarmony sets the color harmony mode
func (o *Orchestrator) SetColorHarmony(ctx context.Context, input *SetColorHarmonyInput) (*SetColorHarmonyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if !creature.IsValidColorHarmony(input.Harmony) {
		return nil, errors.InvalidArgumentf("unknown color harmony %q", input.Harmony)
	}

	sess, err := o.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if err := requireStep(sess, creature.StepColor); err != nil {
		return nil, err
	}

	sess.Creature.ColorHarmony = input.Harmony
	if err := o.saveSession(ctx, sess); err != nil {
		return nil, err
	}
	return &SetColorHarmonyOutput{Session: sess}, nil
}

// GenerateCard calls the card generation service with the assembled creature
func (o *Orchestrator) GenerateCard(ctx context.Context, input *GenerateCardInput) (*GenerateCardOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	sess, err := o.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if err := requireStep(sess, creature.StepColor); err != nil {
		return nil, err
	}

	n := len(sess.Creature.SelectedColors)
	if n < creature.MinSelectedColors || n > creature.MaxSelectedColors {
		return nil, errors.FailedPreconditionf("pick %d or %d colors before generating (have %d)",
			creature.MinSelectedColors, creature.MaxSelectedColors, n)
	}

	sess.Step = creature.StepGenerating
	if err := o.saveSession(ctx, sess); err != nil {
		return nil, err
	}

	genOutput, genErr := o.cardGen.GenerateCard(ctx, &cardgen.GenerateCardInput{
		Creature: &sess.Creature,
	})

	if genErr != nil || genOutput == nil || genOutput.Card.IsEmpty() {
		// Fall back to the interview with the creature intact so the
		// player can adjust and try again
		slog.Warn("card generation failed",
			"session_id", sess.ID,
			"error", genErr)
		sess.Step = creature.StepInterview
		sess.LastError = generateFailedMessage
		if err := o.saveSession(ctx, sess); err != nil {
			return nil, err
		}
		return &GenerateCardOutput{Session: sess}, nil
	}

	sess.Card = genOutput.Card
	sess.LastError = ""
	sess.Step = creature.StepResult

	if err := o.saveSession(ctx, sess); err != nil {
		return nil, err
	}

	slog.Info("card generated",
		"session_id", sess.ID,
		"creature", sess.Creature.Name,
		"card_bytes", len(sess.Card.Data))
	return &GenerateCardOutput{Session: sess}, nil
}

// StartEdit enters edit mode on the result screen
func (o *Orchestrator) StartEdit(ctx context.Context, input *StartEditInput) (*StartEditOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	sess, err := o.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if err := requireStep(sess, creature.StepResult); err != nil {
		return nil, err
	}

	sess.Editing = true
	if err := o.saveSession(ctx, sess); err != nil {
		return nil, err
	}
	return &StartEditOutput{Session: sess}, nil
}

// CancelEdit leaves edit mode and clears the in-progress instruction
func (o *Orchestrator) CancelEdit(ctx context.Context, input *CancelEditInput) (*CancelEditOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	sess, err := o.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if err := requireStep(sess, creature.StepResult); err != nil {
		return nil, err
	}

	sess.Editing = false
	sess.EditInstruction = ""
	if err := o.saveSession(ctx, sess); err != nil {
		return nil, err
	}
	return &CancelEditOutput{Session: sess}, nil
}

// SubmitEdit applies an edit instruction to the generated card
func (o *Orchestrator) SubmitEdit(ctx context.Context, input *SubmitEditInput) (*SubmitEditOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	sess, err := o.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if err := requireStep(sess, creature.StepResult); err != nil {
		return nil, err
	}

	instruction := strings.TrimSpace(input.Instruction)
	if instruction == "" || sess.Card.IsEmpty() {
		// Nothing to do; no service call
		return &SubmitEditOutput{Session: sess}, nil
	}

	sess.EditInstruction = instruction
	sess.Regenerating = true
	if err := o.saveSession(ctx, sess); err != nil {
		return nil, err
	}

	editOutput, editErr := o.cardGen.EditCard(ctx, &cardgen.EditCardInput{
		Card:        sess.Card,
		Instruction: instruction,
	})

	sess.Regenerating = false

	if editErr != nil || editOutput == nil || editOutput.Card.IsEmpty() {
		// Keep the card and the edit state so the player can retry
		slog.Warn("card edit failed",
			"session_id", sess.ID,
			"error", editErr)
		if err := o.saveSession(ctx, sess); err != nil {
			return nil, err
		}
		return nil, errors.Unavailable("the edit magic fizzled, please try again")
	}

	sess.Card = editOutput.Card
	sess.Editing = false
	sess.EditInstruction = ""

	if err := o.saveSession(ctx, sess); err != nil {
		return nil, err
	}

	slog.Info("card edited", "session_id", sess.ID)
	return &SubmitEditOutput{Session: sess}, nil
}

// ApplyEditVoice merges a voice transcript into the edit instruction
func (o *Orchestrator) ApplyEditVoice(ctx context.Context, input *ApplyEditVoiceInput) (*ApplyEditVoiceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	sess, err := o.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if err := requireStep(sess, creature.StepResult); err != nil {
		return nil, err
	}

	merged, ok := mergeTranscript(sess.EditInstruction, input.Transcript)
	if ok {
		sess.EditInstruction = merged
		if err := o.saveSession(ctx, sess); err != nil {
			return nil, err
		}
	}
	return &ApplyEditVoiceOutput{Session: sess}, nil
}

// GetCard returns the generated card image with a download filename
func (o *Orchestrator) GetCard(ctx context.Context, input *GetCardInput) (*GetCardOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	sess, err := o.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if err := requireStep(sess, creature.StepResult); err != nil {
		return nil, err
	}
	if sess.Card.IsEmpty() {
		return nil, errors.FailedPrecondition("no card has been generated")
	}

	return &GetCardOutput{
		Card:     sess.Card,
		Filename: fmt.Sprintf("%s-card.png", sess.Creature.Name),
	}, nil
}

// GetQuestions returns the static interview question catalog
func (o *Orchestrator) GetQuestions(_ context.Context, _ *GetQuestionsInput) (*GetQuestionsOutput, error) {
	return &GetQuestionsOutput{Questions: creature.InterviewQuestions}, nil
}

// GetCatalog returns the static type, color, and harmony catalogs
func (o *Orchestrator) GetCatalog(_ context.Context, _ *GetCatalogInput) (*GetCatalogOutput, error) {
	return &GetCatalogOutput{
		MonsterTypes: creature.AllMonsterTypes,
		Colors:       creature.ColorCatalog,
		Harmonies:    creature.AllColorHarmonies,
		MinColors:    creature.MinSelectedColors,
		MaxColors:    creature.MaxSelectedColors,
	}, nil
}

// loadSession fetches a session by ID, translating empty IDs to validation
// errors
func (o *Orchestrator) loadSession(ctx context.Context, sessionID string) (*creature.WizardSession, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	output, err := o.sessionRepo.Get(ctx, sessionrepo.GetInput{ID: sessionID})
	if err != nil {
		return nil, err
	}
	return output.Session, nil
}

// saveSession persists the session with a fresh UpdatedAt
func (o *Orchestrator) saveSession(ctx context.Context, sess *creature.WizardSession) error {
	sess.UpdatedAt = o.clock.Now().Unix()
	if _, err := o.sessionRepo.Update(ctx, sessionrepo.UpdateInput{Session: sess}); err != nil {
		return errors.Wrapf(err, "failed to save session %s", sess.ID)
	}
	return nil
}

// requireStep guards an operation against being called on the wrong screen
func requireStep(sess *creature.WizardSession, step creature.AppStep) error {
	if sess.Step != step {
		return errors.FailedPreconditionf("operation requires step %s, session is on %s", step, sess.Step)
	}
	return nil
}
