package models

// Response represents a generic API error response structure.
type Response struct {
	Success      int         `json:"success"`
	ErrorDetails string      `json:"error_details,omitempty"`
	Data         interface{} `json:"data,omitempty"`
}
