package dto

import "errors"

// Custom errors
var (
	// ErrEmptyInput means the input text/file was empty or unreadable.
	ErrEmptyInput = errors.New("invoice input is empty or unreadable")
	// ErrExtractionFailed means neither the deterministic pipeline nor the
	// AI fallback could extract anything from the document.
	ErrExtractionFailed = errors.New("could not extract any data from this invoice")
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}
