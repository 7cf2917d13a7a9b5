package creature

// AppStep is the wizard's current screen
type AppStep string

// Wizard steps
const (
	StepLanding    AppStep = "LANDING"
	StepUpload     AppStep = "UPLOAD"
	StepInterview  AppStep = "INTERVIEW"
	StepColor      AppStep = "COLOR"
	StepGenerating AppStep = "GENERATING"
	StepResult     AppStep = "RESULT"
)

// WizardSession is one player's in-progress trip through the card wizard.
// A player has at most one active session at a time.
type WizardSession struct {
	ID       string   `json:"id"`
	PlayerID string   `json:"player_id"`
	Step     AppStep  `json:"step"`
	Creature Creature `json:"creature"`

	// QuestionIndex is the interview question currently shown,
	// meaningful only while Step is INTERVIEW
	QuestionIndex int `json:"question_index"`

	// PendingSketch holds an uploaded sketch awaiting confirmation.
	// It becomes Creature.Sketch on confirm and is discarded on retake.
	PendingSketch *ImageBlob `json:"pending_sketch,omitempty"`

	// Card is the generated card image, set once generation succeeds
	Card *ImageBlob `json:"card,omitempty"`

	// Editing is true while the player is composing an edit instruction
	// on the result screen
	Editing bool `json:"editing"`

	// EditInstruction is the edit instruction being composed
	EditInstruction string `json:"edit_instruction"`

	// Regenerating is true while an edit call is in flight
	Regenerating bool `json:"regenerating"`

	// LastError is a player-facing message from the most recent failure,
	// cleared when the player moves on
	LastError string `json:"last_error,omitempty"`

	// Unix seconds; storage TTL is owned by the repository
	CreatedAt int64 `json:"created_at"`
	UpdatedAt int64 `json:"updated_at"`
}

// QuestionCount is the number of interview questions
func QuestionCount() int {
	return len(InterviewQuestions)
}

// CurrentQuestion returns the interview question the session is on,
// or nil if the index is out of range
func (s *WizardSession) CurrentQuestion() *Question {
	if s.QuestionIndex < 0 || s.QuestionIndex >= len(InterviewQuestions) {
		return nil
	}
	q := InterviewQuestions[s.QuestionIndex]
	return &q
}

// OnLastQuestion reports whether the session is on the final interview question
func (s *WizardSession) OnLastQuestion() bool {
	return s.QuestionIndex == len(InterviewQuestions)-1
}
