package service

import (
	"context"
	"errors"
	"time"

	"lexdraft/internal/extract"
	"lexdraft/internal/model"
	"lexdraft/internal/render"
)

// ErrEmptyDocument rejects a review request with no extractable text
var ErrEmptyDocument = errors.New("document contains no text")

// ReviewResult carries a contract analysis: raw text and rendered blocks
type ReviewResult struct {
	Text       string        `json:"text"`
	Blocks     []model.Block `json:"blocks"`
	ReviewedAt time.Time     `json:"reviewedAt"`
}

// ReviewService extracts text from an uploaded document and requests a
// structured review. Unsupported uploads are rejected before any remote
// call is made.
type ReviewService struct {
	extractor extract.Extractor
	generator *GeneratorService
}

// NewReviewService creates a new review service
func NewReviewService(extractor extract.Extractor, generator *GeneratorService) *ReviewService {
	return &ReviewService{
		extractor: extractor,
		generator: generator,
	}
}

// ReviewUpload extracts text from the uploaded bytes, then analyzes it
func (s *ReviewService) ReviewUpload(ctx context.Context, contentType string, data []byte) (*ReviewResult, error) {
	text, err := s.extractor.Extract(contentType, data)
	if err != nil {
		return nil, err
	}
	return s.ReviewText(ctx, text)
}

// ReviewText analyzes already-extracted contract text
func (s *ReviewService) ReviewText(ctx context.Context, documentText string) (*ReviewResult, error) {
	if documentText == "" {
		return nil, ErrEmptyDocument
	}

	analysis, err := s.generator.AnalyzeContract(ctx, documentText)
	if err != nil {
		return nil, err
	}

	return &ReviewResult{
		Text:       analysis,
		Blocks:     render.Blocks(analysis),
		ReviewedAt: time.Now(),
	}, nil
}
