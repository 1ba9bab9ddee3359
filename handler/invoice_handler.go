package handler

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/NightCrawler909/WarrantyVault-sub001/dto"
	"github.com/NightCrawler909/WarrantyVault-sub001/service"

	"github.com/gin-gonic/gin"
)

type InvoiceHandler struct {
	invoiceService *service.InvoiceService
}

func NewInvoiceHandler(invoiceService *service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
	}
}

// ExtractFromFile handles POST /invoice/extract: an uploaded invoice
// document (PDF/JPG/PNG) plus an optional retailer hint
func (h *InvoiceHandler) ExtractFromFile(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "INVALID_UPLOAD", "No file provided", err)
		return
	}

	hint := c.PostForm("retailer_hint")

	file, err := fileHeader.Open()
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "INVALID_UPLOAD", "Failed to open uploaded file", err)
		return
	}
	defer file.Close()

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "INVALID_UPLOAD", "Failed to read uploaded file", err)
		return
	}

	log.Printf("Extraction request for %s (%d bytes, hint=%q)", fileHeader.Filename, len(fileBytes), hint)

	contentType := fileHeader.Header.Get("Content-Type")
	result, err := h.invoiceService.ExtractFromFile(c.Request.Context(), fileBytes, fileHeader.Filename, contentType, hint)
	if err != nil {
		h.mapPipelineError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ExtractFromText handles POST /invoice/extract-text: raw OCR text from
// callers that ran their own text extraction
func (h *InvoiceHandler) ExtractFromText(c *gin.Context) {
	var request dto.TextExtractionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.sendError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body", err)
		return
	}

	if err := request.Validate(); err != nil {
		h.sendError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error(), err)
		return
	}

	result, err := h.invoiceService.ExtractFromText(c.Request.Context(), request.Text, request.RetailerHint)
	if err != nil {
		h.mapPipelineError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// mapPipelineError translates pipeline boundary errors into HTTP responses
func (h *InvoiceHandler) mapPipelineError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, dto.ErrEmptyInput):
		h.sendError(c, http.StatusBadRequest, "EMPTY_INPUT", err.Error(), err)
	case errors.Is(err, dto.ErrExtractionFailed):
		// Distinct status so the dashboard can show "could not read this
		// invoice" instead of silently saving an empty record
		h.sendError(c, http.StatusUnprocessableEntity, "EXTRACTION_FAILED", err.Error(), err)
	default:
		h.sendError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process invoice", err)
	}
}

// sendError sends a structured error response
func (h *InvoiceHandler) sendError(c *gin.Context, statusCode int, code, message string, err error) {
	if err != nil {
		log.Printf("Error: %s - %v", message, err)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   code,
		Message: message,
		Code:    statusCode,
	})
}
