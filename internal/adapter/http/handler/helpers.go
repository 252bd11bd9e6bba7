package handler

import (
	"encoding/json"
	"net/http"

	"github.com/iho/chching/internal/adapter/http/dto"
	"github.com/iho/chching/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch domain.KindOf(err) {
	case domain.KindIndexBounds:
		return http.StatusNotFound
	case domain.KindMissingField, domain.KindFormat, domain.KindRange:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
