package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Content types written by the HTTP handlers.
const (
	ContentTypeJSON = "application/json"
	ContentTypeHTML = "text/html; charset=utf-8"
)

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, map[string]string{"status": "running"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	return WriteBody(w, ContentTypeJSON, jsonData, statusCode)
}

// WriteHTML writes an already rendered HTML document.
func WriteHTML(w http.ResponseWriter, body []byte, statusCode int) (int, error) {
	return WriteBody(w, ContentTypeHTML, body, statusCode)
}

// WriteBody sets Content-Type, writes statusCode and then body as is.
func WriteBody(w http.ResponseWriter, contentType string, body []byte, statusCode int) (int, error) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(statusCode)

	return w.Write(body)
}
