package handler

import (
	"encoding/json"
	"net/http"

	"lexdraft/internal/model"
	"lexdraft/internal/service"

	"github.com/gorilla/mux"
)

// FlowHandler handles questionnaire session endpoints
type FlowHandler struct {
	flowSvc  *service.FlowService
	draftSvc *service.DraftService
}

// NewFlowHandler creates a new flow handler
func NewFlowHandler(flowSvc *service.FlowService, draftSvc *service.DraftService) *FlowHandler {
	return &FlowHandler{
		flowSvc:  flowSvc,
		draftSvc: draftSvc,
	}
}

// CreateFlowResponse is returned when a session is started
type CreateFlowResponse struct {
	State *model.FlowState `json:"state"`
	Token string           `json:"token"`
}

// Create handles POST /v1/flows
func (h *FlowHandler) Create(w http.ResponseWriter, r *http.Request) {
	st, token, err := h.flowSvc.Create(r.Context())
	if err != nil {
		writeFlowError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, CreateFlowResponse{State: st, Token: token})
}

// Get handles GET /v1/flows/{flowId}
func (h *FlowHandler) Get(w http.ResponseWriter, r *http.Request) {
	snap, err := h.flowSvc.Get(r.Context(), mux.Vars(r)["flowId"])
	if err != nil {
		writeFlowError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// SelectCategoryRequest is the body for choosing a contract category
type SelectCategoryRequest struct {
	Category string `json:"category"`
}

// SelectCategory handles POST /v1/flows/{flowId}/category
func (h *FlowHandler) SelectCategory(w http.ResponseWriter, r *http.Request) {
	var req SelectCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Category == "" {
		writeError(w, http.StatusBadRequest, "category is required")
		return
	}

	snap, err := h.flowSvc.SelectCategory(r.Context(), mux.Vars(r)["flowId"], req.Category)
	if err != nil {
		writeFlowError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// ClearCategory handles DELETE /v1/flows/{flowId}/category
func (h *FlowHandler) ClearCategory(w http.ResponseWriter, r *http.Request) {
	snap, err := h.flowSvc.ClearCategory(r.Context(), mux.Vars(r)["flowId"])
	if err != nil {
		writeFlowError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// SetAnswer handles PUT /v1/flows/{flowId}/answers/{questionId}
func (h *FlowHandler) SetAnswer(w http.ResponseWriter, r *http.Request) {
	var value model.AnswerValue
	if err := json.NewDecoder(r.Body).Decode(&value); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	vars := mux.Vars(r)
	if err := h.flowSvc.SetAnswer(r.Context(), vars["flowId"], vars["questionId"], value); err != nil {
		writeFlowError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Advance handles POST /v1/flows/{flowId}/advance
func (h *FlowHandler) Advance(w http.ResponseWriter, r *http.Request) {
	snap, err := h.flowSvc.Advance(r.Context(), mux.Vars(r)["flowId"])
	if err != nil {
		writeFlowError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// Retreat handles POST /v1/flows/{flowId}/retreat
func (h *FlowHandler) Retreat(w http.ResponseWriter, r *http.Request) {
	snap, err := h.flowSvc.Retreat(r.Context(), mux.Vars(r)["flowId"])
	if err != nil {
		writeFlowError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// Summary handles GET /v1/flows/{flowId}/summary
func (h *FlowHandler) Summary(w http.ResponseWriter, r *http.Request) {
	entries, err := h.flowSvc.Summary(r.Context(), mux.Vars(r)["flowId"])
	if err != nil {
		writeFlowError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"summary": entries})
}

// GenerateDraft handles POST /v1/flows/{flowId}/draft
func (h *FlowHandler) GenerateDraft(w http.ResponseWriter, r *http.Request) {
	result, err := h.draftSvc.Generate(r.Context(), mux.Vars(r)["flowId"])
	if err != nil {
		writeFlowError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
