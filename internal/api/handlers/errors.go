package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"Labeddit/internal/api/validation"
)

// maxBodyBytes caps request bodies read by DecodeBody
const maxBodyBytes = 1 << 20

// WriteError writes a standardized JSON error response
func WriteError(w http.ResponseWriter, statusCode int, errorType, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(map[string]interface{}{
		"error":   errorType,
		"message": message,
	}); err != nil {
		log.Printf("Failed to encode error response: %v", err)
	}
}

// WriteJSON writes v as a JSON response with the given status
func WriteJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// DecodeBody reads the request body, validates it against schema and decodes
// it into dst. On failure it writes a 400 response and returns false.
func DecodeBody(w http.ResponseWriter, r *http.Request, schema *validation.Schema, dst interface{}) bool {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return false
	}

	if err := schema.Validate(body); err != nil {
		var schemaErr *validation.SchemaError
		if errors.As(err, &schemaErr) {
			WriteError(w, http.StatusBadRequest, "InvalidRequest", schemaErr.Error())
		} else {
			WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		}
		return false
	}

	if err := json.Unmarshal(body, dst); err != nil {
		WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return false
	}
	return true
}
