package model

// InputKind defines how a question is answered
type InputKind string

const (
	InputShortText    InputKind = "short_text"    // Single-line free text
	InputLongText     InputKind = "long_text"     // Multi-line free text
	InputSingleChoice InputKind = "single_choice" // Pick one from Choices
	InputMultiChoice  InputKind = "multi_choice"  // Pick any number from Choices
)

// IsChoice reports whether the kind carries a Choices list
func (k InputKind) IsChoice() bool {
	return k == InputSingleChoice || k == InputMultiChoice
}

// Question is one immutable questionnaire entry
type Question struct {
	ID          string    `json:"id"`
	Prompt      string    `json:"prompt"`
	Description string    `json:"description,omitempty"`
	Kind        InputKind `json:"kind"`
	Choices     []string  `json:"choices,omitempty"` // Choice kinds only
	Required    bool      `json:"required"`
}

// QuestionSet is the ordered question list for one contract category
type QuestionSet struct {
	Category  string     `json:"category"`
	Questions []Question `json:"questions"`
}

// Len returns the number of questions in the set
func (s QuestionSet) Len() int {
	return len(s.Questions)
}

// Has reports whether a question id belongs to the set
func (s QuestionSet) Has(id string) bool {
	for _, q := range s.Questions {
		if q.ID == id {
			return true
		}
	}
	return false
}

// Find returns the question with the given id, or nil
func (s QuestionSet) Find(id string) *Question {
	for i := range s.Questions {
		if s.Questions[i].ID == id {
			return &s.Questions[i]
		}
	}
	return nil
}

// ContractType is a selectable contract category
type ContractType struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}
