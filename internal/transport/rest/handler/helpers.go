package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"lexdraft/internal/cache"
	"lexdraft/internal/extract"
	"lexdraft/internal/flow"
	"lexdraft/internal/model"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// writeFlowError maps the error taxonomy onto HTTP statuses. Every error
// here is user-recoverable; nothing is fatal to the process.
func writeFlowError(w http.ResponseWriter, err error) {
	var vErr *flow.ValidationError
	if errors.As(err, &vErr) {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"error":   "required questions are unanswered",
			"missing": vErr.MissingIDs,
		})
		return
	}

	var gErr *model.GenerationError
	if errors.As(err, &gErr) {
		writeError(w, http.StatusBadGateway, "Generation failed: try again. ("+gErr.Message+")")
		return
	}

	var uErr *extract.UnsupportedInputError
	if errors.As(err, &uErr) {
		writeError(w, http.StatusUnsupportedMediaType, uErr.Error())
		return
	}

	switch {
	case errors.Is(err, cache.ErrFlowNotFound):
		writeError(w, http.StatusNotFound, "flow session not found")
	case errors.Is(err, flow.ErrNoCategory):
		writeError(w, http.StatusConflict, "no category selected")
	case errors.Is(err, flow.ErrFlowComplete):
		writeError(w, http.StatusConflict, "flow already complete")
	case errors.Is(err, extract.ErrDocumentTooLarge):
		writeError(w, http.StatusRequestEntityTooLarge, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
