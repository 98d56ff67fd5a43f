package service

import (
	"context"
	"log"
	"time"

	"lexdraft/internal/model"
	"lexdraft/internal/questionset"
	"lexdraft/internal/render"
)

// DraftResult carries a generated contract: raw source text plus its
// rendered block sequence. Edits operate on Text; Blocks are derived.
type DraftResult struct {
	Category    string        `json:"category"`
	Text        string        `json:"text"`
	Blocks      []model.Block `json:"blocks"`
	GeneratedAt time.Time     `json:"generatedAt"`
}

// DraftService submits a completed questionnaire and requests a drafted
// contract from the generation service
type DraftService struct {
	flows     *FlowService
	generator *GeneratorService
}

// NewDraftService creates a new draft service
func NewDraftService(flows *FlowService, generator *GeneratorService) *DraftService {
	return &DraftService{
		flows:     flows,
		generator: generator,
	}
}

// Generate runs full-set validation, calls the generation service once
// and renders the result. The stored session is only updated after a
// successful call, so a failure leaves the answers exactly as they were
// and the user can retry without re-entering anything.
func (s *DraftService) Generate(ctx context.Context, flowID string) (*DraftResult, error) {
	st, err := s.flows.Load(ctx, flowID)
	if err != nil {
		return nil, err
	}

	engine := s.flows.Engine()
	answers, err := engine.Submit(st)
	if err != nil {
		return nil, err
	}

	set := questionset.Resolve(st.Category)
	label := questionset.Label(st.Category)

	text, err := s.generator.GenerateContract(ctx, set, label, answers)
	if err != nil {
		return nil, err
	}

	if err := s.flows.Save(ctx, st); err != nil {
		// The draft is already generated; losing the status update is
		// not worth failing the request over.
		log.Printf("[Draft] WARN: failed to persist completed flow %s: %v", flowID, err)
	}

	return &DraftResult{
		Category:    st.Category,
		Text:        text,
		Blocks:      render.Blocks(text),
		GeneratedAt: time.Now(),
	}, nil
}
