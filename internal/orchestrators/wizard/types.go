package wizard

import (
	"github.com/creatureforge/card-api/internal/entities/creature"
)

// CreateSessionInput defines the input for creating a wizard session
type CreateSessionInput struct {
	PlayerID string
}

// CreateSessionOutput defines the output for creating a wizard session
type CreateSessionOutput struct {
	Session *creature.WizardSession
}

// GetSessionInput defines the input for getting a session
type GetSessionInput struct {
	SessionID string
}

// GetSessionOutput defines the output for getting a session
type GetSessionOutput struct {
	Session *creature.WizardSession
}

// ResetSessionInput defines the input for resetting a session
type ResetSessionInput struct {
	SessionID string
}

// ResetSessionOutput defines the output for resetting a session
type ResetSessionOutput struct {
	Session *creature.WizardSession
}

// StartWizardInput defines the input for leaving the landing screen
type StartWizardInput struct {
	SessionID string
}

// StartWizardOutput defines the output for leaving the landing screen
type StartWizardOutput struct {
	Session *creature.WizardSession
}

// UploadSketchInput defines the input for uploading a sketch photo
type UploadSketchInput struct {
	SessionID string
	Data      []byte
}

// UploadSketchOutput defines the output for uploading a sketch photo
type UploadSketchOutput struct {
	Session *creature.WizardSession
}

// RetakeSketchInput defines the input for discarding the pending sketch
type RetakeSketchInput struct {
	SessionID string
}

// RetakeSketchOutput defines the output for discarding the pending sketch
type RetakeSketchOutput struct {
	Session *creature.WizardSession
}

// ConfirmSketchInput defines the input for confirming the pending sketch
type ConfirmSketchInput struct {
	SessionID string
}

// ConfirmSketchOutput defines the output for confirming the pending sketch
type ConfirmSketchOutput struct {
	Session *creature.WizardSession
}

// AnswerQuestionInput defines the input for answering the current interview question
type AnswerQuestionInput struct {
	SessionID  string
	QuestionID creature.QuestionID
	Value      string
}

// AnswerQuestionOutput defines the output for answering the current interview question
type AnswerQuestionOutput struct {
	Session *creature.WizardSession
}

// AdvanceInterviewInput defines the input for moving to the next question
type AdvanceInterviewInput struct {
	SessionID string
}

// AdvanceInterviewOutput defines the output for moving to the next question
type AdvanceInterviewOutput struct {
	Session *creature.WizardSession
}

// RetreatInterviewInput defines the input for moving to the previous question
type RetreatInterviewInput struct {
	SessionID string
}

// RetreatInterviewOutput defines the output for moving to the previous question
type RetreatInterviewOutput struct {
	Session *creature.WizardSession
}

// ApplyVoiceAnswerInput defines the input for merging a voice transcript
// into the current question's answer
type ApplyVoiceAnswerInput struct {
	SessionID string

	// QuestionID is the question the transcript was captured for. If the
	// wizard has since moved on, the transcript is dropped.
	QuestionID creature.QuestionID
	Transcript string
}

// ApplyVoiceAnswerOutput defines the output for merging a voice transcript
type ApplyVoiceAnswerOutput struct {
	Session *creature.WizardSession

	// Applied is false when the transcript was dropped (stale question,
	// unparseable number, or unsupported input kind)
	Applied bool
}

// ToggleColorInput defines the input for toggling a palette color
type ToggleColorInput struct {
	SessionID string
	Color     string
}

// ToggleColorOutput defines the output for toggling a palette color
type ToggleColorOutput struct {
	Session *creature.WizardSession
}

// SetColorHarmonyInput defines the input for setting the color harmony mode
type SetColorHarmonyInput struct {
	SessionID string
	Harmony   creature.ColorHarmony
}

// SetColorHarmonyOutput defines the output for setting the color harmony mode
type SetColorHarmonyOutput struct {
	Session *creature.WizardSession
}

// GenerateCardInput defines the input for generating the card
type GenerateCardInput struct {
	SessionID string
}

// GenerateCardOutput defines the output for generating the card.
// A generation service failure is NOT a Go error: the returned session is
// back on the interview step with LastError set.
type GenerateCardOutput struct {
	Session *creature.WizardSession
}

// StartEditInput defines the input for entering edit mode
type StartEditInput struct {
	SessionID string
}

// StartEditOutput defines the output for entering edit mode
type StartEditOutput struct {
	Session *creature.WizardSession
}

// CancelEditInput defines the input for leaving edit mode
type CancelEditInput struct {
	SessionID string
}

// CancelEditOutput defines the output for leaving edit mode
type CancelEditOutput struct {
	Session *creature.WizardSession
}

// SubmitEditInput defines the input for applying an edit instruction
type SubmitEditInput struct {
	SessionID   string
	Instruction string
}

// SubmitEditOutput defines the output for applying an edit instruction
type SubmitEditOutput struct {
	Session *creature.WizardSession
}

// ApplyEditVoiceInput defines the input for merging a voice transcript
// into the edit instruction
type ApplyEditVoiceInput struct {
	SessionID  string
	Transcript string
}

// ApplyEditVoiceOutput defines the output for merging a voice transcript
// into the edit instruction
type ApplyEditVoiceOutput struct {
	Session *creature.WizardSession
}

// GetCardInput defines the input for downloading the generated card
type GetCardInput struct {
	SessionID string
}

// GetCardOutput defines the output for downloading the generated card
type GetCardOutput struct {
	Card     *creature.ImageBlob
	Filename string
}

// GetQuestionsInput defines the input for listing the interview questions
type GetQuestionsInput struct{}

// GetQuestionsOutput defines the output for listing the interview questions
type GetQuestionsOutput struct {
	Questions []creature.Question
}

// GetCatalogInput defines the input for fetching the static catalogs
type GetCatalogInput struct{}

// GetCatalogOutput defines the output for fetching the static catalogs
type GetCatalogOutput struct {
	MonsterTypes []creature.MonsterType
	Colors       []creature.Color
	Harmonies    []creature.ColorHarmony
	MinColors    int
	MaxColors    int
}
