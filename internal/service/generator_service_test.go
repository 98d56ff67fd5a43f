package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lexdraft/internal/config"
	"lexdraft/internal/model"
	"lexdraft/internal/questionset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAIConfig(endpoint string) *config.AIConfig {
	return &config.AIConfig{
		APIKey:      "test-key",
		Endpoint:    endpoint,
		Deployment:  "gpt-4o",
		APIVersion:  "2025-01-01-preview",
		TimeoutMS:   2000,
		MaxTokens:   1000,
		Temperature: 0.7,
	}
}

func chatServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "test-key", r.Header.Get("api-key"))
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
}

func ndaAnswers() (model.QuestionSet, model.AnswerMap) {
	set := questionset.Resolve("nda")
	answers := model.AnswerMap{}
	for _, q := range set.Questions {
		if q.Kind == model.InputMultiChoice {
			answers[q.ID] = model.AnswerValue{Selections: q.Choices[:2]}
		} else {
			answers[q.ID] = model.AnswerValue{Text: "value for " + q.ID}
		}
	}
	return set, answers
}

func TestGenerateContractSuccess(t *testing.T) {
	srv := chatServer(t, http.StatusOK, `{"choices":[{"message":{"content":"# NDA\n\nterms"}}]}`)
	defer srv.Close()

	g := NewGeneratorService(testAIConfig(srv.URL))
	set, answers := ndaAnswers()

	text, err := g.GenerateContract(context.Background(), set, "Non-Disclosure Agreement (NDA)", answers)
	require.NoError(t, err)
	assert.Equal(t, "# NDA\n\nterms", text)
}

func TestGenerateContractStatusFailure(t *testing.T) {
	srv := chatServer(t, http.StatusTooManyRequests, `{"error":"rate limited"}`)
	defer srv.Close()

	g := NewGeneratorService(testAIConfig(srv.URL))
	set, answers := ndaAnswers()

	_, err := g.GenerateContract(context.Background(), set, "NDA", answers)
	var gErr *model.GenerationError
	require.ErrorAs(t, err, &gErr)
	assert.Equal(t, model.GenerationStatus, gErr.Kind)
	assert.Equal(t, http.StatusTooManyRequests, gErr.Status)
}

func TestGenerateContractMalformedResponse(t *testing.T) {
	cases := map[string]string{
		"not json":      `not json at all`,
		"empty choices": `{"choices":[]}`,
		"missing text":  `{"choices":[{"message":{}}]}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			srv := chatServer(t, http.StatusOK, body)
			defer srv.Close()

			g := NewGeneratorService(testAIConfig(srv.URL))
			set, answers := ndaAnswers()

			_, err := g.GenerateContract(context.Background(), set, "NDA", answers)
			var gErr *model.GenerationError
			require.ErrorAs(t, err, &gErr)
			assert.Equal(t, model.GenerationMalformed, gErr.Kind)
		})
	}
}

func TestGenerateContractTransportFailure(t *testing.T) {
	srv := chatServer(t, http.StatusOK, `{}`)
	srv.Close() // connection refused from here on

	g := NewGeneratorService(testAIConfig(srv.URL))
	set, answers := ndaAnswers()

	_, err := g.GenerateContract(context.Background(), set, "NDA", answers)
	var gErr *model.GenerationError
	require.ErrorAs(t, err, &gErr)
	assert.Equal(t, model.GenerationTransport, gErr.Kind)
}

func TestFailedGenerationLeavesAnswersUntouched(t *testing.T) {
	srv := chatServer(t, http.StatusInternalServerError, `{"error":"boom"}`)
	defer srv.Close()

	g := NewGeneratorService(testAIConfig(srv.URL))
	set, answers := ndaAnswers()

	before, err := json.Marshal(answers)
	require.NoError(t, err)

	_, genErr := g.GenerateContract(context.Background(), set, "NDA", answers)
	require.Error(t, genErr)

	after, err := json.Marshal(answers)
	require.NoError(t, err)
	assert.Equal(t, before, after, "a failed call must not touch the answer map")
}

func TestAnswerSerializationIsDeterministicAndOrdered(t *testing.T) {
	set, answers := ndaAnswers()

	first := serializeAnswers(set, answers)
	second := serializeAnswers(set, answers)
	assert.Equal(t, first, second)

	// Question-set order, not map order
	idxCompany := strings.Index(first, "company name")
	idxPurpose := strings.Index(first, "purpose of sharing")
	assert.GreaterOrEqual(t, idxCompany, 0)
	assert.Greater(t, idxPurpose, idxCompany)
}

func TestStubGeneratorWhenNotConfigured(t *testing.T) {
	g := NewGeneratorService(&config.AIConfig{TimeoutMS: 1000})
	set, answers := ndaAnswers()

	text, err := g.GenerateContract(context.Background(), set, "NDA", answers)
	require.NoError(t, err)
	assert.Contains(t, text, "# NDA")

	review, err := g.AnalyzeContract(context.Background(), "some contract")
	require.NoError(t, err)
	assert.Contains(t, review, "## Overall Assessment")
}
