package model

import "time"

// FlowStatus is the questionnaire state machine position
type FlowStatus string

const (
	FlowCategoryUnselected FlowStatus = "category_unselected"
	FlowInProgress         FlowStatus = "in_progress"
	FlowReview             FlowStatus = "review" // All batches answered, awaiting submit
	FlowComplete           FlowStatus = "complete"
)

// FlowState is the full state of one questionnaire session.
// Invariant: 0 <= Cursor <= len(active question set) whenever Category is set.
type FlowState struct {
	ID        string     `json:"id"`
	Category  string     `json:"category,omitempty"`
	Cursor    int        `json:"cursor"`
	Status    FlowStatus `json:"status"`
	Answers   AnswerMap  `json:"answers"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}
