package service

import (
	"context"

	"lexdraft/internal/cache"
	"lexdraft/internal/flow"
	"lexdraft/internal/model"
	"lexdraft/internal/questionset"

	"github.com/google/uuid"
)

// FlowSnapshot is the flow state plus the questions visible at this step
type FlowSnapshot struct {
	State     *model.FlowState `json:"state"`
	Batch     []model.Question `json:"batch,omitempty"`
	BatchSize int              `json:"batchSize"`
	Total     int              `json:"total"`
}

// FlowService manages questionnaire sessions: the pure engine supplies
// the transitions, Redis holds the state between requests.
type FlowService struct {
	engine  *flow.Engine
	flows   cache.FlowCache
	authSvc *AuthService
}

// NewFlowService creates a new flow service
func NewFlowService(engine *flow.Engine, flows cache.FlowCache, authSvc *AuthService) *FlowService {
	return &FlowService{
		engine:  engine,
		flows:   flows,
		authSvc: authSvc,
	}
}

// Engine exposes the underlying transition engine
func (s *FlowService) Engine() *flow.Engine {
	return s.engine
}

// Create starts a new session and issues its access token
func (s *FlowService) Create(ctx context.Context) (*model.FlowState, string, error) {
	st := s.engine.NewState(uuid.New().String())
	if err := s.flows.Save(ctx, st); err != nil {
		return nil, "", err
	}
	token, err := s.authSvc.IssueSessionToken(st.ID)
	if err != nil {
		return nil, "", err
	}
	return st, token, nil
}

// Get loads a session and the current question batch
func (s *FlowService) Get(ctx context.Context, id string) (*FlowSnapshot, error) {
	st, err := s.flows.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.snapshot(st), nil
}

// SelectCategory sets the category, wiping any previous answers
func (s *FlowService) SelectCategory(ctx context.Context, id, key string) (*FlowSnapshot, error) {
	st, err := s.flows.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	s.engine.SelectCategory(st, key)
	if err := s.flows.Save(ctx, st); err != nil {
		return nil, err
	}
	return s.snapshot(st), nil
}

// ClearCategory returns the session to category selection
func (s *FlowService) ClearCategory(ctx context.Context, id string) (*FlowSnapshot, error) {
	st, err := s.flows.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	s.engine.ClearCategory(st)
	if err := s.flows.Save(ctx, st); err != nil {
		return nil, err
	}
	return s.snapshot(st), nil
}

// SetAnswer records one answer
func (s *FlowService) SetAnswer(ctx context.Context, id, questionID string, value model.AnswerValue) error {
	st, err := s.flows.Get(ctx, id)
	if err != nil {
		return err
	}
	s.engine.SetAnswer(st, questionID, value)
	return s.flows.Save(ctx, st)
}

// Advance validates the current batch and steps forward. A
// *flow.ValidationError comes back unwrapped so handlers can surface the
// offending question ids; the stored cursor is untouched in that case.
func (s *FlowService) Advance(ctx context.Context, id string) (*FlowSnapshot, error) {
	st, err := s.flows.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.engine.Advance(st); err != nil {
		return nil, err
	}
	if err := s.flows.Save(ctx, st); err != nil {
		return nil, err
	}
	return s.snapshot(st), nil
}

// Retreat steps back one batch
func (s *FlowService) Retreat(ctx context.Context, id string) (*FlowSnapshot, error) {
	st, err := s.flows.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	s.engine.Retreat(st)
	if err := s.flows.Save(ctx, st); err != nil {
		return nil, err
	}
	return s.snapshot(st), nil
}

// Summary returns the review-and-submit listing for the session
func (s *FlowService) Summary(ctx context.Context, id string) ([]model.SummaryEntry, error) {
	st, err := s.flows.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.engine.Summary(st), nil
}

// Load fetches the raw state without snapshot decoration
func (s *FlowService) Load(ctx context.Context, id string) (*model.FlowState, error) {
	return s.flows.Get(ctx, id)
}

// Save persists a state mutated elsewhere (e.g. after a successful draft)
func (s *FlowService) Save(ctx context.Context, st *model.FlowState) error {
	return s.flows.Save(ctx, st)
}

func (s *FlowService) snapshot(st *model.FlowState) *FlowSnapshot {
	snap := &FlowSnapshot{
		State:     st,
		BatchSize: s.engine.BatchSize(),
	}
	if st.Status != model.FlowCategoryUnselected {
		snap.Total = questionset.Resolve(st.Category).Len()
		snap.Batch = s.engine.CurrentBatch(st)
	}
	return snap
}
