package utils

import (
	"regexp"

	"github.com/NightCrawler909/WarrantyVault-sub001/dto"
)

// Flipkart order IDs are "OD" followed by 18-21 digits
var (
	flipkartOrderIDLabeledRe = regexp.MustCompile(`(?i)order\s*(?:id|number|no\.?)\s*[:\-]?\s*(OD\d{18,21})`)
	flipkartOrderIDBareRe    = regexp.MustCompile(`\b(OD\d{18,21})\b`)
)

// FlipkartExtractor pulls structured fields from Flipkart invoice text
type FlipkartExtractor struct{}

func (FlipkartExtractor) Platform() string { return dto.PlatformFlipkart }

func (FlipkartExtractor) Extract(text string) dto.ExtractedInvoiceData {
	data := dto.ExtractedInvoiceData{Platform: dto.PlatformFlipkart}

	if m := flipkartOrderIDLabeledRe.FindStringSubmatch(text); len(m) > 1 {
		data.OrderID = m[1]
		data.AddDetail("order_id", "labeled:"+m[1])
	} else if m := flipkartOrderIDBareRe.FindStringSubmatch(text); len(m) > 1 {
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

	if price, evidence := ExtractPrice(text, dto.PlatformFlipkart); price != nil {
		data.Price = price
		data.AddDetail("price", evidence)
	}

	if name, raw := ExtractProductName(text); name != "" {
		data.ProductName = name
		data.AddDetail("product_name", raw)
	}

	return data
}
