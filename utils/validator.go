package utils

import "github.com/NightCrawler909/WarrantyVault-sub001/dto"

// ValidateExtraction scores a deterministic extraction for downstream use.
// A record passes when the product name is present along with at least one of
// price, a date, or the order ID. Failure is the trigger for the AI fallback.
// Well-formedness is guaranteed upstream: dates arrive canonical and prices
// parsed, so presence implies validity here.
func ValidateExtraction(d *dto.ExtractedInvoiceData) bool {
	if d.ProductName == "" {
		return false
	}
	return d.Price != nil || d.OrderDate != "" || d.InvoiceDate != "" || d.OrderID != ""
}
