package service

import (
	"bytes"
	"context"
	"errors"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/NightCrawler909/WarrantyVault-sub001/dto"
	"github.com/NightCrawler909/WarrantyVault-sub001/utils"
)

// Embedded PDF text shorter than this is treated as a scanned document
const minTextLayerLen = 20

// AIExtractor is the external AI microservice boundary: OCR text extraction
// and layout-aware structured extraction
type AIExtractor interface {
	ExtractText(ctx context.Context, fileBytes []byte, filename, contentType string) (string, float64, error)
	ExtractStructured(ctx context.Context, fileBytes []byte, filename, contentType string) (*dto.ExtractedInvoiceData, error)
}

// ImageOCR is the local OCR fallback boundary
type ImageOCR interface {
	ExtractTextFromImage(img image.Image) (string, float64, error)
}

// InvoiceService runs the invoice extraction pipeline: text acquisition,
// retailer dispatch, deterministic field extraction, validation, and the
// AI fallback. Each call is self-contained; the service holds no mutable
// state and is safe for concurrent use.
type InvoiceService struct {
	ai              AIExtractor
	pdfProcessor    PDFProcessor
	imageOCR        ImageOCR
	fallbackTimeout time.Duration
}

func NewInvoiceService(ai AIExtractor, pdfProcessor PDFProcessor, imageOCR ImageOCR, fallbackTimeout time.Duration) *InvoiceService {
	return &InvoiceService{
		ai:              ai,
		pdfProcessor:    pdfProcessor,
		imageOCR:        imageOCR,
		fallbackTimeout: fallbackTimeout,
	}
}

// ExtractFromText runs the deterministic pipeline on pre-OCR'd text.
// The AI fallback needs the source document, so a validation failure here is
// recorded as fallback-unavailable rather than triggering it.
func (s *InvoiceService) ExtractFromText(ctx context.Context, text, hint string) (*dto.ExtractionResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, dto.ErrEmptyInput
	}

	requestID := uuid.NewString()
	data := s.runDeterministic(text, hint)

	result := &dto.ExtractionResult{
		Data:        data,
		RequestID:   requestID,
		ProcessedAt: time.Now().Format(time.RFC3339),
	}

	if !utils.ValidateExtraction(&data) {
		result.FallbackError = "fallback unavailable: no source document"
		if data.IsEmpty() {
			return nil, dto.ErrExtractionFailed
		}
		log.Printf("[%s] validation failed, returning partial result (no document for fallback)", requestID)
	}

	return result, nil
}

// ExtractFromFile runs the full pipeline on an uploaded invoice document.
// Text acquisition prefers the PDF text layer, then the AI service's OCR,
// then local Tesseract on extracted page images. A validation failure
// triggers one AI structured-extraction call; its fields fill gaps but never
// overwrite a deterministically found value.
func (s *InvoiceService) ExtractFromFile(ctx context.Context, fileBytes []byte, filename, contentType, hint string) (*dto.ExtractionResult, error) {
	if len(fileBytes) == 0 {
		return nil, dto.ErrEmptyInput
	}

	requestID := uuid.NewString()
	text, confidence := s.acquireText(ctx, fileBytes, filename, contentType)

	result := &dto.ExtractionResult{
		RequestID:     requestID,
		OCRConfidence: confidence,
		ProcessedAt:   time.Now().Format(time.RFC3339),
	}

	if strings.TrimSpace(text) == "" {
		// Nothing readable: the AI fallback is the only option left
		log.Printf("[%s] no text could be acquired, going straight to AI fallback", requestID)
		result.UsedFallback = true

		aiData, err := s.runFallback(ctx, fileBytes, filename, contentType)
		if err != nil || aiData == nil || aiData.IsEmpty() {
			return nil, dto.ErrExtractionFailed
		}

		aiData.Platform = dto.PlatformOther
		result.Data = *aiData
		return result, nil
	}

	data := s.runDeterministic(text, hint)

	// Text heuristics missed the order ID: a barcode on the page may still
	// carry it
	if data.OrderID == "" {
		if id := s.scanBarcodes(fileBytes, filename, contentType); id != "" {
			data.OrderID = id
			data.AddDetail("order_id", "barcode")
		}
	}

	if !utils.ValidateExtraction(&data) {
		result.UsedFallback = true

		aiData, err := s.runFallback(ctx, fileBytes, filename, contentType)
		if err != nil {
			// Fallback unavailable: log, keep the deterministic partial
			log.Printf("[%s] AI fallback failed: %v", requestID, err)
			result.FallbackError = err.Error()
		} else {
			mergeExtractedData(&data, aiData)
		}

		if data.IsEmpty() {
			return nil, dto.ErrExtractionFailed
		}
	}

	result.Data = data
	return result, nil
}

// runDeterministic dispatches to the retailer extractor and runs it
func (s *InvoiceService) runDeterministic(text, hint string) dto.ExtractedInvoiceData {
	extractor := utils.SelectExtractor(text, hint)
	return extractor.Extract(text)
}

// acquireText produces OCR/text-layer output for the document.
// PDF: text layer first, AI service OCR second, local Tesseract last.
// Image: AI service OCR first, local Tesseract second.
func (s *InvoiceService) acquireText(ctx context.Context, fileBytes []byte, filename, contentType string) (string, float64) {
	if isPDF(filename, contentType) {
		if text, err := s.pdfProcessor.ExtractText(fileBytes); err == nil && len(strings.TrimSpace(text)) >= minTextLayerLen {
			return text, 100.0
		}

		log.Printf("PDF %s has no usable text layer, trying AI service OCR", filename)
		if text, confidence, err := s.ai.ExtractText(ctx, fileBytes, filename, contentType); err == nil && strings.TrimSpace(text) != "" {
			return text, confidence * 100
		}

		return s.ocrPDFImages(fileBytes)
	}

	if text, confidence, err := s.ai.ExtractText(ctx, fileBytes, filename, contentType); err == nil && strings.TrimSpace(text) != "" {
		return text, confidence * 100
	}

	log.Printf("AI service OCR unavailable for %s, trying local Tesseract", filename)
	img, _, err := image.Decode(bytes.NewReader(fileBytes))
	if err != nil {
		return "", 0
	}
	return s.ocrImage(img)
}

// ocrPDFImages extracts embedded page images and OCRs each one locally
func (s *InvoiceService) ocrPDFImages(pdfData []byte) (string, float64) {
	images, err := s.pdfProcessor.ExtractImages(pdfData)
	if err != nil || len(images) == 0 {
		return "", 0
	}

	var combined strings.Builder
	var totalConfidence float64
	var pageCount int

	for _, img := range images {
		pageText, pageConf, err := s.ocrImageOnce(img)
		if err != nil {
			continue
		}
		combined.WriteString(pageText)
		combined.WriteString("\n")
		totalConfidence += pageConf
		pageCount++
	}

	if pageCount == 0 {
		return "", 0
	}
	return combined.String(), totalConfidence / float64(pageCount)
}

func (s *InvoiceService) ocrImage(img image.Image) (string, float64) {
	text, confidence, err := s.ocrImageOnce(img)
	if err != nil {
		return "", 0
	}
	return text, confidence
}

func (s *InvoiceService) ocrImageOnce(img image.Image) (string, float64, error) {
	if s.imageOCR == nil {
		return "", 0, errors.New("local OCR not configured")
	}
	return s.imageOCR.ExtractTextFromImage(img)
}

// scanBarcodes collects page images and looks for an order-ID barcode
func (s *InvoiceService) scanBarcodes(fileBytes []byte, filename, contentType string) string {
	var images []image.Image

	if isPDF(filename, contentType) {
		extracted, err := s.pdfProcessor.ExtractImages(fileBytes)
		if err != nil {
			return ""
		}
		images = extracted
	} else {
		img, _, err := image.Decode(bytes.NewReader(fileBytes))
		if err != nil {
			return ""
		}
		images = []image.Image{img}
	}

	return decodeOrderIDFromImages(images)
}

// runFallback invokes the AI structured extraction exactly once, bounded by
// the configured timeout. No retries: a slow or broken AI service degrades
// to a partial deterministic result, it never blocks the caller.
func (s *InvoiceService) runFallback(ctx context.Context, fileBytes []byte, filename, contentType string) (*dto.ExtractedInvoiceData, error) {
	fallbackCtx, cancel := context.WithTimeout(ctx, s.fallbackTimeout)
	defer cancel()

	return s.ai.ExtractStructured(fallbackCtx, fileBytes, filename, contentType)
}

// mergeExtractedData fills gaps in the deterministic record with AI-sourced
// fields. A field found deterministically is never overwritten; only absence
// lets the AI value in.
func mergeExtractedData(dst, src *dto.ExtractedInvoiceData) {
	if src == nil {
		return
	}

	if dst.ProductName == "" && src.ProductName != "" {
		dst.ProductName = src.ProductName
		dst.AddDetail("product_name", "ai_fallback")
	}
	if dst.OrderID == "" && src.OrderID != "" {
		dst.OrderID = src.OrderID
		dst.AddDetail("order_id", "ai_fallback")
	}
	if dst.InvoiceNumber == "" && src.InvoiceNumber != "" {
		dst.InvoiceNumber = src.InvoiceNumber
		dst.AddDetail("invoice_number", "ai_fallback")
	}
	if dst.OrderDate == "" && src.OrderDate != "" {
		dst.OrderDate = src.OrderDate
		dst.AddDetail("order_date", "ai_fallback")
	}
	if dst.InvoiceDate == "" && src.InvoiceDate != "" {
		dst.InvoiceDate = src.InvoiceDate
		dst.AddDetail("invoice_date", "ai_fallback")
	}
	if dst.Price == nil && src.Price != nil {
		dst.Price = src.Price
		dst.AddDetail("price", "ai_fallback")
	}
	if dst.Vendor == "" && src.Vendor != "" {
		dst.Vendor = src.Vendor
		dst.AddDetail("vendor", "ai_fallback")
	}
	if dst.HSN == "" && src.HSN != "" {
		dst.HSN = src.HSN
		dst.AddDetail("hsn", "ai_fallback")
	}
}

func isPDF(filename, contentType string) bool {
	return strings.Contains(strings.ToLower(contentType), "pdf") ||
		strings.HasSuffix(strings.ToLower(filename), ".pdf")
}
