package dto

// Platform identifies which retailer template an extractor models
const (
	PlatformAmazon   = "amazon"
	PlatformFlipkart = "flipkart"
	PlatformGeneric  = "generic"
	PlatformOther    = "other"
)

// ExtractedInvoiceData holds the structured fields pulled from invoice text.
// Every field is independently optional: "" (or nil for Price) means absent,
// which is a normal outcome, not an error.
type ExtractedInvoiceData struct {
	Platform      string   `json:"platform"`
	ProductName   string   `json:"product_name,omitempty"`
	OrderID       string   `json:"order_id,omitempty"`
	InvoiceNumber string   `json:"invoice_number,omitempty"`
	OrderDate     string   `json:"order_date,omitempty"`   // YYYY-MM-DD
	InvoiceDate   string   `json:"invoice_date,omitempty"` // YYYY-MM-DD
	Price         *float64 `json:"price,omitempty"`
	Vendor        string   `json:"vendor,omitempty"`
	HSN           string   `json:"hsn,omitempty"`

	// ExtractionDetails maps field name -> match evidence (pattern label or
	// matched snippet). Diagnostic only, never authoritative.
	ExtractionDetails map[string]string `json:"extraction_details,omitempty"`
}

// IsEmpty reports whether no field was extracted at all
func (d *ExtractedInvoiceData) IsEmpty() bool {
	return d.ProductName == "" &&
		d.OrderID == "" &&
		d.InvoiceNumber == "" &&
		d.OrderDate == "" &&
		d.InvoiceDate == "" &&
		d.Price == nil &&
		d.Vendor == "" &&
		d.HSN == ""
}

// AddDetail records match evidence for a field
func (d *ExtractedInvoiceData) AddDetail(field, evidence string) {
	if d.ExtractionDetails == nil {
		d.ExtractionDetails = make(map[string]string)
	}
	d.ExtractionDetails[field] = evidence
}

// ExtractionResult is the pipeline's boundary output
type ExtractionResult struct {
	Data          ExtractedInvoiceData `json:"data"`
	UsedFallback  bool                 `json:"used_fallback"`
	FallbackError string               `json:"fallback_error,omitempty"`
	OCRConfidence float64              `json:"ocr_confidence,omitempty"`
	RequestID     string               `json:"request_id"`
	ProcessedAt   string               `json:"processed_at"`
}
