package handler

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"lexdraft/internal/extract"
	"lexdraft/internal/service"
)

// ReviewHandler handles the upload-and-analyze flow
type ReviewHandler struct {
	reviewSvc *service.ReviewService
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(reviewSvc *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewSvc: reviewSvc}
}

// ReviewTextRequest is the JSON body for reviewing pasted text
type ReviewTextRequest struct {
	Text string `json:"text"`
}

// Create handles POST /v1/reviews. Accepts either a multipart upload
// with a "document" part or a JSON body with the extracted text.
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	switch {
	case mediaType == "multipart/form-data":
		h.createFromUpload(w, r)
	case mediaType == "application/json":
		h.createFromText(w, r)
	default:
		writeError(w, http.StatusUnsupportedMediaType, "expected multipart/form-data or application/json")
	}
}

func (h *ReviewHandler) createFromUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(extract.MaxDocumentBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart body")
		return
	}

	file, header, err := r.FormFile("document")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing document part")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, extract.MaxDocumentBytes+1))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read upload")
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = sniffByExtension(header.Filename)
	}

	result, err := h.reviewSvc.ReviewUpload(r.Context(), contentType, data)
	if err != nil {
		writeFlowError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *ReviewHandler) createFromText(w http.ResponseWriter, r *http.Request) {
	var req ReviewTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.reviewSvc.ReviewText(r.Context(), req.Text)
	if err != nil {
		if errors.Is(err, service.ErrEmptyDocument) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeFlowError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func sniffByExtension(filename string) string {
	switch {
	case strings.HasSuffix(filename, ".md"):
		return "text/markdown"
	case strings.HasSuffix(filename, ".txt"):
		return "text/plain"
	default:
		return "application/octet-stream"
	}
}
