package services

import (
	"encoding/json"
	"net/http"

	"github.com/planet-app/user-services/models"
)

// HandleErrResponse writes a JSON error envelope with the given status code.
func HandleErrResponse(w http.ResponseWriter, statusCode int, err error) {
	response := models.Response{
		Success:      0,
		ErrorDetails: err.Error(),
	}
	writeJSON(w, statusCode, response)
}

// HandleSuccessResponse writes a JSON response with a specific status code.
func HandleSuccessResponse(w http.ResponseWriter, statusCode int, headers map[string]string, response interface{}) {
	for key, value := range headers {
		w.Header().Set(key, value)
	}
	writeJSON(w, statusCode, response)
}

func writeJSON(w http.ResponseWriter, statusCode int, response interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}
