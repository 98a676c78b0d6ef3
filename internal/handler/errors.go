package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"shopmap/internal/apperr"
)

// ErrorResponse is the standard error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

func WriteJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// WriteAppError maps the error taxonomy onto HTTP statuses.
func WriteAppError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, apperr.ErrNotFound):
		WriteError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, apperr.ErrPermission):
		WriteError(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, apperr.ErrExternalService):
		WriteError(w, err.Error(), http.StatusBadGateway)
	default:
		WriteError(w, err.Error(), http.StatusInternalServerError)
	}
}
