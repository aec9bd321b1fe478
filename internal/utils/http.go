package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Raphalinho91/user-accounts/models"
)

// WriteJSON serializes data to JSON and writes it with statusCode and a
// "Content-Type: application/json" header.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, models.HealthResponse{Status: "ok"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteError writes the uniform error body
//
//	{"statusCode": 404, "message": "user not found", "error": "Not Found"}
//
// An empty message falls back to the status text.
func WriteError(w http.ResponseWriter, statusCode int, message string) (int, error) {
	statusText := http.StatusText(statusCode)
	if message == "" {
		message = statusText
	}

	return WriteJSON(w, models.ErrorResponse{
		StatusCode: statusCode,
		Message:    message,
		Error:      statusText,
	}, statusCode)
}
