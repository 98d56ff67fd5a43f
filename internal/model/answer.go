package model

import "strings"

// AnswerValue holds one answer: free text or choice selections
type AnswerValue struct {
	Text       string   `json:"text,omitempty"`       // short_text, long_text, single_choice
	Selections []string `json:"selections,omitempty"` // multi_choice
}

// IsEmpty reports whether the value counts as unanswered
func (v AnswerValue) IsEmpty() bool {
	return strings.TrimSpace(v.Text) == "" && len(v.Selections) == 0
}

// Display renders the value for summaries and prompts
func (v AnswerValue) Display() string {
	if len(v.Selections) > 0 {
		return strings.Join(v.Selections, ", ")
	}
	return v.Text
}

// AnswerMap maps question id to its answer. Keys are always a subset of
// the active question set; selecting a category replaces the whole map.
type AnswerMap map[string]AnswerValue

// Clone returns an independent copy of the map
func (m AnswerMap) Clone() AnswerMap {
	out := make(AnswerMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// SummaryEntry pairs an answered question with its display value
type SummaryEntry struct {
	QuestionID string `json:"questionId"`
	Prompt     string `json:"prompt"`
	Value      string `json:"value"`
}
