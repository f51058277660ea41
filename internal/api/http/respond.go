package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"libtrack-backend/internal/domain"
	"libtrack-backend/internal/logger"
)

type errorResponse struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		if err := json.NewEncoder(w).Encode(body); err != nil {
			logger.Error("failed to encode response", "error", err)
		}
	}
}

// writeError maps the domain error taxonomy onto HTTP statuses. Untagged
// errors are treated as internal and their detail is kept out of the body.
func writeError(w http.ResponseWriter, err error) {
	var status int
	switch domain.KindOf(err) {
	case domain.KindNotFound:
		status = http.StatusNotFound
	case domain.KindPreconditionFailed:
		status = http.StatusConflict
	case domain.KindValidationFailed:
		status = http.StatusBadRequest
	case domain.KindStoreUnavailable:
		status = http.StatusServiceUnavailable
	default:
		logger.Error("unclassified error in handler", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Kind: "INTERNAL", Message: "internal error"})
		return
	}

	resp := errorResponse{Kind: string(domain.KindOf(err)), Message: err.Error()}
	var de *domain.Error
	if errors.As(err, &de) {
		// Surface the taxonomy message, not the wrapped storage detail.
		resp.Message = de.Message
	}
	writeJSON(w, status, resp)
}
