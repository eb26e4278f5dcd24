package common

import (
	"encoding/json"
	"net/http"
)

// JSON writes the provided value to the response writer as JSON.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// JSONError renders the uniform error payload used across the API surface.
func JSONError(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{
		"status":  "error",
		"message": message,
	})
}
