// Package httpjson holds the JSON response helpers for the API handlers.
// Every error response is the single-field body {"error": "<message>"};
// success responses are the raw stored record(s).
package httpjson

import (
	"encoding/json"
	"net/http"
)

// Write encodes v as the response body with the given status code.
func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes the {"error": msg} body with the given status code.
func Error(w http.ResponseWriter, status int, msg string) {
	Write(w, status, map[string]string{"error": msg})
}

// Message writes the {"message": msg} body with the given status code.
func Message(w http.ResponseWriter, status int, msg string) {
	Write(w, status, map[string]string{"message": msg})
}
