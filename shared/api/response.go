// shared/api/response.go
package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

// Envelope is the wire format shared by every endpoint. Success responses
// carry data, error responses carry only the code and message.
type Envelope struct {
	Error   bool        `json:"error"`
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// WriteSuccess writes a success envelope with the given status, message and payload.
func WriteSuccess(w http.ResponseWriter, status int, message string, data interface{}) {
	env := Envelope{
		Error:   false,
		Code:    status,
		Message: message,
		Data:    data,
	}
	if err := WriteJSON(w, status, env); err != nil {
		log.Error().Err(err).Msg("failed to write JSON success response")
	}
}

// WriteError writes an error envelope with the given status code and message.
func WriteError(w http.ResponseWriter, status int, message string) {
	env := Envelope{
		Error:   true,
		Code:    status,
		Message: message,
	}
	// Attempt to write JSON, fall back to plain text if encoding fails.
	if err := WriteJSON(w, status, env); err != nil {
		log.Error().Err(err).Msg("failed to write JSON error response, falling back to plain text")
		http.Error(w, message, status)
	}
}

// WriteBadRequest convenience function
func WriteBadRequest(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusBadRequest, message)
}

// WriteUnauthorized convenience function
func WriteUnauthorized(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusUnauthorized, message)
}

// WriteNotFound convenience function
func WriteNotFound(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusNotFound, message)
}

// WriteInternalServerError convenience function
func WriteInternalServerError(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusInternalServerError, message)
}
