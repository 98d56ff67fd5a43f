// Package flow drives questionnaire step progression: per-batch validation,
// answer accumulation and completion signaling. Pure state transitions over
// model.FlowState; no I/O.
package flow

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"lexdraft/internal/model"
	"lexdraft/internal/questionset"
)

// DefaultBatchSize matches the batched flow: three questions per step
const DefaultBatchSize = 3

var (
	ErrNoCategory   = errors.New("no category selected")
	ErrFlowComplete = errors.New("flow already complete")
)

// ValidationError lists required questions left unanswered in the
// validated window. Blocks the transition; cursor is never moved.
type ValidationError struct {
	MissingIDs []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("unanswered required questions: %s", strings.Join(e.MissingIDs, ", "))
}

// Config tunes engine behavior
type Config struct {
	// BatchSize is the number of questions validated and advanced per step.
	// 1 gives the simple one-question flow, 3 the batched flow.
	BatchSize int

	// SkipReview submits directly when the last batch passes instead of
	// stopping at the review step.
	SkipReview bool
}

// Engine applies flow transitions against the static question registry
type Engine struct {
	batchSize  int
	skipReview bool
}

// NewEngine creates an engine; a non-positive batch size falls back to the default
func NewEngine(cfg Config) *Engine {
	batch := cfg.BatchSize
	if batch <= 0 {
		batch = DefaultBatchSize
	}
	return &Engine{batchSize: batch, skipReview: cfg.SkipReview}
}

// BatchSize returns the configured step width
func (e *Engine) BatchSize() int {
	return e.batchSize
}

// NewState creates a fresh flow with no category chosen
func (e *Engine) NewState(id string) *model.FlowState {
	now := time.Now()
	return &model.FlowState{
		ID:        id,
		Status:    model.FlowCategoryUnselected,
		Answers:   model.AnswerMap{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ActiveSet resolves the question set for the flow's category
func (e *Engine) ActiveSet(st *model.FlowState) model.QuestionSet {
	return questionset.Resolve(st.Category)
}

// SelectCategory sets the category and resets progress. Answers are always
// replaced with an empty map so nothing leaks across categories. Unknown
// keys resolve to the default set; there is no error condition.
func (e *Engine) SelectCategory(st *model.FlowState, key string) {
	st.Category = key
	st.Answers = model.AnswerMap{}
	st.Cursor = 0
	st.Status = model.FlowInProgress
	st.UpdatedAt = time.Now()
}

// ClearCategory returns the flow to category selection, wiping all answers
func (e *Engine) ClearCategory(st *model.FlowState) {
	st.Category = ""
	st.Answers = model.AnswerMap{}
	st.Cursor = 0
	st.Status = model.FlowCategoryUnselected
	st.UpdatedAt = time.Now()
}

// SetAnswer upserts one answer. A question id outside the active set is a
// caller-contract violation and is silently ignored.
func (e *Engine) SetAnswer(st *model.FlowState, questionID string, value model.AnswerValue) {
	if st.Status != model.FlowInProgress && st.Status != model.FlowReview {
		return
	}
	if !e.ActiveSet(st).Has(questionID) {
		return
	}
	st.Answers[questionID] = value
	st.UpdatedAt = time.Now()
}

// CurrentBatch returns the questions visible at the current step
func (e *Engine) CurrentBatch(st *model.FlowState) []model.Question {
	if st.Status != model.FlowInProgress {
		return nil
	}
	qs := e.ActiveSet(st).Questions
	end := st.Cursor + e.batchSize
	if end > len(qs) {
		end = len(qs)
	}
	if st.Cursor >= end {
		return nil
	}
	return qs[st.Cursor:end]
}

// Advance validates the current batch and moves the cursor one batch
// forward. When the last batch passes, the flow transitions to the review
// step (or straight to completion with SkipReview) and the full AnswerMap
// is returned; the cursor never moves past the question set length.
func (e *Engine) Advance(st *model.FlowState) (model.AnswerMap, error) {
	switch st.Status {
	case model.FlowCategoryUnselected:
		return nil, ErrNoCategory
	case model.FlowComplete:
		return nil, ErrFlowComplete
	case model.FlowReview:
		// Already past the last batch; nothing to validate
		return st.Answers.Clone(), nil
	}

	if err := e.validate(st, e.CurrentBatch(st)); err != nil {
		return nil, err
	}

	qs := e.ActiveSet(st)
	if st.Cursor+e.batchSize >= qs.Len() {
		// Last batch passed; the cursor stays on it so a retreat lands
		// back on a batch boundary.
		if e.skipReview {
			return e.Submit(st)
		}
		st.Status = model.FlowReview
		st.UpdatedAt = time.Now()
		return st.Answers.Clone(), nil
	}

	st.Cursor += e.batchSize
	st.UpdatedAt = time.Now()
	return nil, nil
}

// Retreat moves back one batch, clamped at zero. From the review step it
// returns to the last batch, whose start the cursor still points at.
// Never fails.
func (e *Engine) Retreat(st *model.FlowState) {
	switch st.Status {
	case model.FlowCategoryUnselected, model.FlowComplete:
		return
	case model.FlowReview:
		st.Status = model.FlowInProgress
		st.UpdatedAt = time.Now()
		return
	}
	st.Cursor -= e.batchSize
	if st.Cursor < 0 {
		st.Cursor = 0
	}
	st.UpdatedAt = time.Now()
}

// Submit validates the entire question set, not just the last window, and
// completes the flow. Checking only the visible batch would let a blank
// left behind by an earlier retreat slip through.
func (e *Engine) Submit(st *model.FlowState) (model.AnswerMap, error) {
	if st.Status == model.FlowCategoryUnselected {
		return nil, ErrNoCategory
	}
	if err := e.validate(st, e.ActiveSet(st).Questions); err != nil {
		return nil, err
	}
	st.Cursor = e.ActiveSet(st).Len()
	st.Status = model.FlowComplete
	st.UpdatedAt = time.Now()
	return st.Answers.Clone(), nil
}

// Summary pairs each answered question with its display value, in set order
func (e *Engine) Summary(st *model.FlowState) []model.SummaryEntry {
	var out []model.SummaryEntry
	for _, q := range e.ActiveSet(st).Questions {
		v, ok := st.Answers[q.ID]
		if !ok {
			continue
		}
		out = append(out, model.SummaryEntry{QuestionID: q.ID, Prompt: q.Prompt, Value: v.Display()})
	}
	return out
}

func (e *Engine) validate(st *model.FlowState, questions []model.Question) error {
	var missing []string
	for _, q := range questions {
		if !q.Required {
			continue
		}
		if st.Answers[q.ID].IsEmpty() {
			missing = append(missing, q.ID)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{MissingIDs: missing}
	}
	return nil
}
