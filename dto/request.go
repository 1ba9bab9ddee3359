package dto

import (
	"errors"
	"strings"
)

// TextExtractionRequest is the JSON body for text-only extraction,
// for callers that already ran OCR themselves.
type TextExtractionRequest struct {
	Text         string `json:"text" binding:"required"`
	RetailerHint string `json:"retailer_hint,omitempty"`
}

// Validate performs basic validation on the request
func (r *TextExtractionRequest) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return errors.New("text is required")
	}
	return nil
}
