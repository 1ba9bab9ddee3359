package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/NightCrawler909/WarrantyVault-sub001/dto"
	"github.com/NightCrawler909/WarrantyVault-sub001/utils"
)

// AIServiceClient talks to the WarrantyVault AI microservice over HTTP.
// The service exposes two endpoints: /extract-text (OCR, returns raw text
// plus an advisory confidence) and /ai-structured-extract (layout-aware
// structured field extraction, used as the fallback path).
type AIServiceClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewAIServiceClient creates a client for the AI microservice
func NewAIServiceClient(baseURL string, timeout time.Duration) *AIServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		baseURL = os.Getenv("AI_SERVICE_URL")
	}
	if baseURL == "" {
		baseURL = "http://localhost:8000"
	}

	return &AIServiceClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

var (
	defaultAIClient *AIServiceClient
	defaultAIMu     sync.Mutex
)

// DefaultAIClient returns the process-wide AI service client, creating it on
// first use. Initialization happens at most once; concurrent first callers
// share the same handle.
func DefaultAIClient(baseURL string, timeout time.Duration) *AIServiceClient {
	defaultAIMu.Lock()
	defer defaultAIMu.Unlock()

	if defaultAIClient == nil {
		defaultAIClient = NewAIServiceClient(baseURL, timeout)
		log.Printf("AI service client initialized for %s", defaultAIClient.baseURL)
	}
	return defaultAIClient
}

// ResetDefaultAIClient discards the process-wide client. Teardown hook for
// tests.
func ResetDefaultAIClient() {
	defaultAIMu.Lock()
	defer defaultAIMu.Unlock()
	defaultAIClient = nil
}

// ExtractText runs OCR on the document via the AI service.
// Returns the recognized text and an advisory confidence score.
func (c *AIServiceClient) ExtractText(ctx context.Context, fileBytes []byte, filename, contentType string) (string, float64, error) {
	body, err := c.postFile(ctx, "/extract-text", fileBytes, filename, contentType)
	if err != nil {
		return "", 0, err
	}

	var result struct {
		Text       string  `json:"text"`
		Confidence float64 `json:"confidence"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", 0, fmt.Errorf("failed to decode OCR response: %w", err)
	}

	log.Printf("AI service OCR returned %d characters (confidence %.2f)", len(result.Text), result.Confidence)
	return result.Text, result.Confidence, nil
}

// structuredResponse mirrors the AI service's /ai-structured-extract payload
type structuredResponse struct {
	ProductName   string `json:"product_name"`
	OrderID       string `json:"order_id"`
	InvoiceNumber string `json:"invoice_number"`
	TotalAmount   string `json:"total_amount"`
	PurchaseDate  string `json:"purchase_date"`
	Retailer      string `json:"retailer"`
}

// ExtractStructured asks the AI service for structured invoice fields.
// The model is slow (seconds); callers bound the context. Returned fields are
// partial: anything the model could not answer comes back absent.
func (c *AIServiceClient) ExtractStructured(ctx context.Context, fileBytes []byte, filename, contentType string) (*dto.ExtractedInvoiceData, error) {
	body, err := c.postFile(ctx, "/ai-structured-extract", fileBytes, filename, contentType)
	if err != nil {
		return nil, err
	}

	var resp structuredResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode structured extraction response: %w", err)
	}

	data := &dto.ExtractedInvoiceData{
		ProductName:   strings.TrimSpace(resp.ProductName),
		OrderID:       strings.TrimSpace(resp.OrderID),
		InvoiceNumber: strings.TrimSpace(resp.InvoiceNumber),
		Vendor:        strings.TrimSpace(resp.Retailer),
	}

	// The model answers free-form: amounts arrive currency-formatted and
	// dates in whatever shape the invoice printed them
	if amount, ok := parseModelAmount(resp.TotalAmount); ok {
		data.Price = &amount
	}
	if date := utils.NormalizeDate(strings.TrimSpace(resp.PurchaseDate)); date != "" {
		data.OrderDate = date
	}

	return data, nil
}

// postFile uploads the document as multipart form data and returns the
// response body
func (c *AIServiceClient) postFile(ctx context.Context, path string, fileBytes []byte, filename, contentType string) ([]byte, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	// The AI service routes PDFs through pdf2image based on the part's
	// content type, so it must be set explicitly
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("failed to create form part: %w", err)
	}
	if _, err := part.Write(fileBytes); err != nil {
		return nil, fmt.Errorf("failed to write file data: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("AI service call failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read AI service response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("AI service returned status %d: %s", resp.StatusCode, string(body))
	}

	return body, nil
}

var modelAmountRe = regexp.MustCompile(`[0-9][0-9,]*(?:\.[0-9]{1,2})?`)

// parseModelAmount pulls a non-negative decimal out of a free-form model
// answer like "₹549.00" or "Rs. 1,299"
func parseModelAmount(raw string) (float64, bool) {
	m := modelAmountRe.FindString(raw)
	if m == "" {
		return 0, false
	}
	amount, err := strconv.ParseFloat(strings.ReplaceAll(m, ",", ""), 64)
	if err != nil || amount < 0 {
		return 0, false
	}
	return amount, true
}
