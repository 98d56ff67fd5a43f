package handler

import (
	"net/http"

	"lexdraft/internal/service"

	"github.com/gorilla/mux"
)

// TemplateHandler serves the template library
type TemplateHandler struct {
	templateSvc *service.TemplateService
}

// NewTemplateHandler creates a new template handler
func NewTemplateHandler(templateSvc *service.TemplateService) *TemplateHandler {
	return &TemplateHandler{templateSvc: templateSvc}
}

// List handles GET /v1/templates?category=
func (h *TemplateHandler) List(w http.ResponseWriter, r *http.Request) {
	templates, err := h.templateSvc.List(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"templates": templates})
}

// Get handles GET /v1/templates/{templateId}
func (h *TemplateHandler) Get(w http.ResponseWriter, r *http.Request) {
	tpl, err := h.templateSvc.Get(r.Context(), mux.Vars(r)["templateId"])
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if tpl == nil {
		writeError(w, http.StatusNotFound, "template not found")
		return
	}
	writeJSON(w, http.StatusOK, tpl)
}
