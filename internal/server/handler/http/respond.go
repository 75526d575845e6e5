// Package http provides the HTTP handlers and routing for the catalog
// service.
package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mzaleska/catalog/internal/apperrors"
	"go.uber.org/zap"
)

// writeJSON writes v as a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// respondError maps a service error to its HTTP status and writes the
// message under the given JSON key. Anything outside the tagged
// taxonomy is logged and reported as a generic 500; nothing internal
// leaks to the client.
func respondError(w http.ResponseWriter, log *zap.Logger, err error, key string) {
	var (
		ve *apperrors.ValidationError
		nf *apperrors.NotFoundError
		ce *apperrors.ConflictError
		ae *apperrors.AuthError
	)
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, map[string]string{key: ve.Message})
	case errors.As(err, &nf):
		writeJSON(w, http.StatusNotFound, map[string]string{key: nf.Message})
	case errors.As(err, &ce):
		writeJSON(w, http.StatusConflict, map[string]string{key: ce.Message})
	case errors.As(err, &ae):
		writeJSON(w, http.StatusUnauthorized, map[string]string{key: ae.Message})
	default:
		log.Error("internal error", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "Internal server error"})
	}
}
