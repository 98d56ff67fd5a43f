package handler

import (
	"encoding/json"
	"net/http"

	"lexdraft/internal/render"
)

// RenderHandler converts raw document text to display blocks. Used by
// the edit flow: user edits operate on the source text and re-render.
type RenderHandler struct{}

// NewRenderHandler creates a new render handler
func NewRenderHandler() *RenderHandler {
	return &RenderHandler{}
}

// RenderRequest is the body for POST /v1/render
type RenderRequest struct {
	Text string `json:"text"`
}

// Render handles POST /v1/render
func (h *RenderHandler) Render(w http.ResponseWriter, r *http.Request) {
	var req RenderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"blocks": render.Blocks(req.Text)})
}
