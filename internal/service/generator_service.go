package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"lexdraft/internal/config"
	"lexdraft/internal/model"
)

// GeneratorService calls the external generation service to draft or
// review contracts. One request per user action, no automatic retry:
// repeated calls can yield different text, so retries stay a deliberate
// user decision.
type GeneratorService struct {
	config *config.AIConfig
	client *http.Client
}

// NewGeneratorService creates a new generator service
func NewGeneratorService(cfg *config.AIConfig) *GeneratorService {
	return &GeneratorService{
		config: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
		},
	}
}

// GenerateContract drafts a contract from the completed answers. The
// instruction is deterministic for identical inputs; answers are
// serialized in question-set order.
func (s *GeneratorService) GenerateContract(ctx context.Context, set model.QuestionSet, label string, answers model.AnswerMap) (string, error) {
	if !s.config.IsEnabled() {
		log.Println("[Generator] API not configured, using stub draft")
		return s.stubDraft(set, label, answers), nil
	}

	system := fmt.Sprintf(`You are an AI legal document assistant specialized in creating %s contracts.
Your task is to generate a professional, legally-sound contract based on the information provided.
Format your response using Markdown with appropriate headers, sections, and clauses.
Be thorough, but concise, and ensure all critical legal elements are covered.`, label)

	user := fmt.Sprintf("Please create a %s with the following details:\n%s", label, serializeAnswers(set, answers))

	return s.complete(ctx, system, user)
}

// AnalyzeContract requests a structured review of an existing document
func (s *GeneratorService) AnalyzeContract(ctx context.Context, documentText string) (string, error) {
	if !s.config.IsEnabled() {
		log.Println("[Generator] API not configured, using stub review")
		return s.stubReview(), nil
	}

	system := `You are an AI legal document assistant specialized in analyzing contracts.
Provide a thorough analysis of the contract, highlighting:
1. Overall assessment (favorable, neutral, or unfavorable)
2. Key issues or risks, if any
3. Missing clauses or provisions
4. Recommendations for improvement
Format your response using Markdown.`

	user := "Please analyze this contract: " + documentText

	return s.complete(ctx, system, user)
}

// serializeAnswers renders the answers as a stable bullet list, walking
// the question set in order so the output never depends on map iteration
func serializeAnswers(set model.QuestionSet, answers model.AnswerMap) string {
	var b strings.Builder
	for _, q := range set.Questions {
		v, ok := answers[q.ID]
		if !ok || v.IsEmpty() {
			continue
		}
		fmt.Fprintf(&b, "- %s: %s\n", q.Prompt, v.Display())
	}
	return b.String()
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// complete makes a single chat-completion request and classifies failures
func (s *GeneratorService) complete(ctx context.Context, system, user string) (string, error) {
	reqBody := chatRequest{
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: s.config.Temperature,
		MaxTokens:   s.config.MaxTokens,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", &model.GenerationError{Kind: model.GenerationMalformed, Message: "encode request", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.config.ChatCompletionsURL(), bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", &model.GenerationError{Kind: model.GenerationTransport, Message: "build request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", s.config.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("[Generator] ERROR: request failed: %v", err)
		return "", &model.GenerationError{Kind: model.GenerationTransport, Message: "generation service unreachable", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &model.GenerationError{Kind: model.GenerationTransport, Message: "read response", Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("[Generator] ERROR: status %d: %s", resp.StatusCode, truncate(string(body), 200))
		return "", &model.GenerationError{
			Kind:    model.GenerationStatus,
			Status:  resp.StatusCode,
			Message: "generation service returned " + resp.Status,
		}
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", &model.GenerationError{Kind: model.GenerationMalformed, Message: "decode response", Err: err}
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", &model.GenerationError{Kind: model.GenerationMalformed, Message: "response missing message content"}
	}

	return parsed.Choices[0].Message.Content, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// stubDraft produces a deterministic local document when no API key is
// configured, so the rest of the pipeline stays exercisable in dev
func (s *GeneratorService) stubDraft(set model.QuestionSet, label string, answers model.AnswerMap) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", strings.ToUpper(label))
	b.WriteString("## Parties and Background\n\n")
	for _, q := range set.Questions {
		v, ok := answers[q.ID]
		if !ok || v.IsEmpty() {
			continue
		}
		fmt.Fprintf(&b, "%s %s\n\n", q.Prompt, v.Display())
	}
	b.WriteString("## Terms\n\nThe parties agree to the terms described above.\n")
	return b.String()
}

func (s *GeneratorService) stubReview() string {
	return `## Overall Assessment

The contract appears neutral overall.

### Key Issues

1. Review term and termination provisions.
2. Confirm governing law is appropriate.
3. Check liability caps against deal size.

⚠️ This is a locally generated placeholder review; configure the generation service for a real analysis.

**Recommendation**: Have counsel review the agreement before signing.
`
}
