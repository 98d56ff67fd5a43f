package handler

import (
	"net/http"

	"lexdraft/internal/questionset"

	"github.com/gorilla/mux"
)

// CategoryHandler serves the static contract catalog
type CategoryHandler struct{}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

// List handles GET /v1/categories
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"categories": questionset.Categories()})
}

// Questions handles GET /v1/categories/{key}/questions. Unknown keys
// resolve to the default question set.
func (h *CategoryHandler) Questions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, questionset.Resolve(mux.Vars(r)["key"]))
}
