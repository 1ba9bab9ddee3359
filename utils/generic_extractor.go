package utils

import (
	"regexp"
	"strings"

	"github.com/NightCrawler909/WarrantyVault-sub001/dto"
)

// Generic order IDs have no fixed shape; require a label plus a reasonably
// long alphanumeric identifier
var genericOrderIDRe = regexp.MustCompile(`(?i)order\s*(?:number|id|no\.?|#)\s*[:\-]?\s*([A-Za-z0-9][A-Za-z0-9\-/_]*)`)

// GenericExtractor handles invoices from unrecognized retailers. It is the
// universal fallback of the dispatcher, so its patterns stay label-driven and
// conservative.
type GenericExtractor struct{}

func (GenericExtractor) Platform() string { return dto.PlatformGeneric }

func (GenericExtractor) Extract(text string) dto.ExtractedInvoiceData {
	data := dto.ExtractedInvoiceData{Platform: dto.PlatformGeneric}

	if m := genericOrderIDRe.FindStringSubmatch(text); len(m) > 1 {
		id := strings.TrimSpace(m[1])
		// Short matches are almost always column bleed, not identifiers
		if len(id) >= orderIDMinLen {
			data.OrderID = id
			data.AddDetail("order_id", "labeled:"+id)
		}
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
	// Some invoices carry a single unlabeled-kind "Date:" field; use it for
	// the invoice date when nothing better matched
	if data.OrderDate == "" && data.InvoiceDate == "" {
		if date, raw := extractLabeledDate(text, bareDateRe); date != "" {
			data.InvoiceDate = date
			data.AddDetail("invoice_date", raw)
		}
	}

	if vendor := extractVendor(text); vendor != "" {
		data.Vendor = vendor
		data.AddDetail("vendor", vendor)
	}

	if hsn := extractHSN(text); hsn != "" {
		data.HSN = hsn
		data.AddDetail("hsn", hsn)
	}

	if price, evidence := ExtractPrice(text, dto.PlatformGeneric); price != nil {
		data.Price = price
		data.AddDetail("price", evidence)
	}

	if name, raw := ExtractProductName(text); name != "" {
		data.ProductName = name
		data.AddDetail("product_name", raw)
	}

	return data
}
