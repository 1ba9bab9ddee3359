package utils

import (
	"regexp"

	"github.com/NightCrawler909/WarrantyVault-sub001/dto"
)

// Amazon order IDs are three digit groups: 3-7-7
var (
	amazonOrderIDLabeledRe = regexp.MustCompile(`(?i)order\s*(?:number|id|no\.?|#)\s*[:\-]?\s*(\d{3}-\d{7}-\d{7})`)
	amazonOrderIDBareRe    = regexp.MustCompile(`\b(\d{3}-\d{7}-\d{7})\b`)
)

// AmazonExtractor pulls structured fields from Amazon invoice text
type AmazonExtractor struct{}

func (AmazonExtractor) Platform() string { return dto.PlatformAmazon }

// Extract applies Amazon-specific field heuristics. Each field is extracted
// independently; a miss on one field never blocks the others.
func (AmazonExtractor) Extract(text string) dto.ExtractedInvoiceData {
	data := dto.ExtractedInvoiceData{Platform: dto.PlatformAmazon}

	if m := amazonOrderIDLabeledRe.FindStringSubmatch(text); len(m) > 1 {
		data.OrderID = m[1]
		data.AddDetail("order_id", "labeled:"+m[1])
	} else if m := amazonOrderIDBareRe.FindStringSubmatch(text); len(m) > 1 {
		data.OrderID = m[1]
		data.AddDetail("order_id", "signature:"+m[1])
	}

	if id := extractInvoiceNumber(text); id != "" {
		data.InvoiceNumber = id
		data.AddDetail("invoice_number", id)
	}

	if date, raw := extractLabeledDate(text, orderDateRe); date != "" {
		data.OrderDate = date
		data.AddDetail("order_date", raw)
	}
	if date, raw := extractLabeledDate(text, invoiceDateRe); date != "" {
		data.InvoiceDate = date
		data.AddDetail("invoice_date", raw)
	}

	if vendor := extractVendor(text); vendor != "" {
		data.Vendor = vendor
		data.AddDetail("vendor", vendor)
	}

	if hsn := extractHSN(text); hsn != "" {
		data.HSN = hsn
		data.AddDetail("hsn", hsn)
	}

	if price, evidence := ExtractPrice(text, dto.PlatformAmazon); price != nil {
		data.Price = price
		data.AddDetail("price", evidence)
	}

	if name, raw := ExtractProductName(text); name != "" {
		data.ProductName = name
		data.AddDetail("product_name", raw)
	}

	return data
}
