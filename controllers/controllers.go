package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"skillforge_server/services"
)

// WriteJSONResponse writes a JSON body with the given status code
func WriteJSONResponse(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// WriteErrorResponse maps a service error to an HTTP status and a
// machine-readable code. Unrecognized errors become a 500 with the fallback
// message; the underlying error is logged, not exposed.
func WriteErrorResponse(w http.ResponseWriter, err error, fallback string) {
	status := http.StatusInternalServerError
	code := "server_error"
	message := fallback

	switch {
	case errors.Is(err, services.ErrValidation):
		status, code, message = http.StatusBadRequest, "validation_error", err.Error()
	case errors.Is(err, services.ErrNotFound):
		status, code, message = http.StatusNotFound, "not_found", err.Error()
	case errors.Is(err, services.ErrInvalidState):
		status, code, message = http.StatusBadRequest, "invalid_state", err.Error()
	case errors.Is(err, services.ErrConflict):
		status, code, message = http.StatusConflict, "conflict", err.Error()
	case errors.Is(err, services.ErrUnauthorized):
		status, code, message = http.StatusUnauthorized, "unauthorized", err.Error()
	default:
		log.Printf("Internal error: %v", err)
	}

	WriteJSONResponse(w, status, map[string]string{
		"message": message,
		"code":    code,
	})
}

// decodeBody decodes the JSON request body into dst, reporting a validation
// error on malformed input
func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		WriteErrorResponse(w, services.ValidationError("Invalid request body"), "")
		return false
	}
	return true
}

// HealthCheckHandler provides a basic health check
func HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	WriteJSONResponse(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// WelcomeHandler provides a welcome message
func WelcomeHandler(w http.ResponseWriter, r *http.Request) {
	WriteJSONResponse(w, http.StatusOK, map[string]string{"message": "Welcome to the SkillForge API"})
}
