package creature

// QuestionID identifies an interview question and the creature field it fills
type QuestionID string

// Interview question IDs
const (
	QuestionName           QuestionID = "name"
	QuestionType           QuestionID = "type"
	QuestionHP             QuestionID = "hp"
	QuestionSketchFeatures QuestionID = "sketchFeatures"
	QuestionSpecialAbility QuestionID = "specialAbility"
	QuestionDescription    QuestionID = "description"
)

// InputKind is the input widget a question renders with
type InputKind string

// Input kinds
const (
	InputText     InputKind = "text"
	InputSelect   InputKind = "select"
	InputNumber   InputKind = "number"
	InputTextarea InputKind = "textarea"
)

// Question is one step of the creature interview
type Question struct {
	ID         QuestionID `json:"id"`
	Question   string     `json:"question"`
	HelperText string     `json:"helper_text"`
	InputKind  InputKind  `json:"input_kind"`
	Options    []string   `json:"options,omitempty"`
}

// InterviewQuestions is the fixed interview sequence
var InterviewQuestions = []Question{
	{
		ID:         QuestionName,
		Question:   "What is this creature's name?",
		HelperText: "Every hero needs a cool name!",
		InputKind:  InputText,
	},
	{
		ID:         QuestionType,
		Question:   "What element is it?",
		HelperText: "Does it like fire, water, or maybe electricity?",
		InputKind:  InputSelect,
		Options:    monsterTypeNames(),
	},
	{
		ID:         QuestionHP,
		Question:   "How much health (HP) does it have?",
		HelperText: "Is it a tiny baby (30-50) or a giant boss (100+)?",
		InputKind:  InputNumber,
	},
	{
		ID:         QuestionSketchFeatures,
		Question:   "Look at your drawing. What are the specific shapes?",
		HelperText: "Example: 'The circles are eyes', 'The scribble in the middle is energy', 'The triangles are spikes'.",
		InputKind:  InputTextarea,
	},
	{
		ID:         QuestionSpecialAbility,
		Question:   "What is its super power attack?",
		HelperText: "Does it shoot lasers? Roll fast? Sing a sleepy song?",
		InputKind:  InputText,
	},
	{
		ID:         QuestionDescription,
		Question:   "Tell me a fun fact about where it lives!",
		HelperText: "Does it hide in volcanoes? Sleep in clouds?",
		InputKind:  InputTextarea,
	},
}

func monsterTypeNames() []string {
	names := make([]string, len(AllMonsterTypes))
	for i, t := range AllMonsterTypes {
		names[i] = string(t)
	}
	return names
}
