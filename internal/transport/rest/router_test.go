package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lexdraft/internal/cache"
	"lexdraft/internal/config"
	"lexdraft/internal/extract"
	"lexdraft/internal/flow"
	"lexdraft/internal/model"
	"lexdraft/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memFlowCache struct {
	flows map[string]*model.FlowState
}

func (c *memFlowCache) Save(_ context.Context, st *model.FlowState) error {
	cp := *st
	cp.Answers = st.Answers.Clone()
	c.flows[st.ID] = &cp
	return nil
}

func (c *memFlowCache) Get(_ context.Context, id string) (*model.FlowState, error) {
	st, ok := c.flows[id]
	if !ok {
		return nil, cache.ErrFlowNotFound
	}
	cp := *st
	cp.Answers = st.Answers.Clone()
	return &cp, nil
}

func (c *memFlowCache) Delete(_ context.Context, id string) error {
	delete(c.flows, id)
	return nil
}

func newTestRouter() http.Handler {
	authSvc := service.NewAuthService("test-secret", time.Hour)
	engine := flow.NewEngine(flow.Config{BatchSize: 3})
	flowSvc := service.NewFlowService(engine, &memFlowCache{flows: map[string]*model.FlowState{}}, authSvc)
	generator := service.NewGeneratorService(&config.AIConfig{TimeoutMS: 1000}) // stub mode
	return NewRouter(&Container{
		AuthService:   authSvc,
		FlowService:   flowSvc,
		DraftService:  service.NewDraftService(flowSvc, generator),
		ReviewService: service.NewReviewService(extract.NewPlainText(), generator),
	})
}

func doJSON(t *testing.T, router http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func createFlow(t *testing.T, router http.Handler) (string, string) {
	t.Helper()
	w := doJSON(t, router, "POST", "/v1/flows", "", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		State model.FlowState `json:"state"`
		Token string          `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.State.ID, resp.Token
}

func TestCategoriesEndpoint(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, "GET", "/v1/categories", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Non-Disclosure Agreement (NDA)")

	w = doJSON(t, router, "GET", "/v1/categories/nda/questions", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "company-name")
}

func TestFlowEndpointsRequireMatchingToken(t *testing.T) {
	router := newTestRouter()
	flowID, token := createFlow(t, router)

	w := doJSON(t, router, "GET", "/v1/flows/"+flowID, "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	otherID, _ := createFlow(t, router)
	w = doJSON(t, router, "GET", "/v1/flows/"+otherID, token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, router, "GET", "/v1/flows/"+flowID, token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestQuestionnaireRoundTrip(t *testing.T) {
	router := newTestRouter()
	flowID, token := createFlow(t, router)

	w := doJSON(t, router, "POST", "/v1/flows/"+flowID+"/category", token, map[string]string{"category": "consulting"})
	require.Equal(t, http.StatusOK, w.Code)

	// Advancing with blanks names the unmet question ids and keeps the cursor
	w = doJSON(t, router, "POST", "/v1/flows/"+flowID+"/advance", token, nil)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var failure struct {
		Missing []string `json:"missing"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &failure))
	assert.Equal(t, []string{"company-name", "consultant-name", "services"}, failure.Missing)

	var snap service.FlowSnapshot
	w = doJSON(t, router, "GET", "/v1/flows/"+flowID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	assert.Equal(t, 0, snap.State.Cursor)

	// Answer everything and walk to the review step
	for _, q := range snap.Batch {
		w = doJSON(t, router, "PUT", fmt.Sprintf("/v1/flows/%s/answers/%s", flowID, q.ID), token, model.AnswerValue{Text: "v"})
		require.Equal(t, http.StatusNoContent, w.Code)
	}
	w = doJSON(t, router, "POST", "/v1/flows/"+flowID+"/advance", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))

	for _, q := range snap.Batch {
		w = doJSON(t, router, "PUT", fmt.Sprintf("/v1/flows/%s/answers/%s", flowID, q.ID), token, model.AnswerValue{Text: "v"})
		require.Equal(t, http.StatusNoContent, w.Code)
	}
	w = doJSON(t, router, "POST", "/v1/flows/"+flowID+"/advance", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	assert.Equal(t, model.FlowReview, snap.State.Status)

	w = doJSON(t, router, "GET", "/v1/flows/"+flowID+"/summary", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Draft with the stub generator
	w = doJSON(t, router, "POST", "/v1/flows/"+flowID+"/draft", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var draft service.DraftResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &draft))
	assert.NotEmpty(t, draft.Blocks)
}

func TestRenderEndpoint(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, "POST", "/v1/render", "", map[string]string{"text": "- item one\n\n## Section"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Blocks []model.Block `json:"blocks"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Blocks, 3)
	assert.Equal(t, model.BlockListItem, resp.Blocks[0].Kind)
	assert.Equal(t, model.BlockBlank, resp.Blocks[1].Kind)
	assert.Equal(t, model.BlockHeading2, resp.Blocks[2].Kind)
}

func TestReviewWithPastedText(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, "POST", "/v1/reviews", "", map[string]string{"text": "This contract has terms."})
	require.Equal(t, http.StatusOK, w.Code)

	var resp service.ReviewResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Blocks)
}

func TestReviewRejectsUnsupportedBody(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest("POST", "/v1/reviews", bytes.NewBufferString("%PDF-1.7"))
	req.Header.Set("Content-Type", "application/pdf")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
}
