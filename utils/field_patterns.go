package utils

import (
	"regexp"
	"strings"
)

// Minimum identifier lengths; shorter matches are treated as false positives
const (
	orderIDMinLen   = 6
	invoiceNoMinLen = 3
)

// dateToken matches the bounded token captured after a date label: numeric
// day-month-year in dot/dash/slash form, or a textual-month form
const dateToken = `(\d{1,2}[./-]\d{1,2}[./-]\d{2,4}` +
	`|\d{1,2}\s+[A-Za-z]{3,9},?\s+\d{4}` +
	`|[A-Za-z]{3,9}\s+\d{1,2},?\s+\d{4})`

var (
	orderDateRe   = regexp.MustCompile(`(?i)order(?:ed)?\s*(?:date|on)\s*[:\-]?\s*` + dateToken)
	invoiceDateRe = regexp.MustCompile(`(?i)invoice\s*date\s*[:\-]?\s*` + dateToken)
	bareDateRe    = regexp.MustCompile(`(?i)\bdate\s*[:\-]\s*` + dateToken)

	invoiceNumberRe = regexp.MustCompile(`(?i)invoice\s*(?:number|no\.?|#)\s*[:\-]?\s*([A-Za-z0-9][A-Za-z0-9\-/]*)`)
	vendorRe        = regexp.MustCompile(`(?i)(?:sold\s*by|seller|vendor)\s*[:\-]\s*([^,\n]+)`)
	hsnRe           = regexp.MustCompile(`(?i)\bHSN(?:\s*/?\s*SAC|\s*code)?\s*[:\-]?\s*(\d{4,10})\b`)
)

// extractLabeledDate finds a labeled date field and normalizes its token.
// Returns the canonical date and the raw token as evidence.
func extractLabeledDate(text string, re *regexp.Regexp) (string, string) {
	m := re.FindStringSubmatch(text)
	if len(m) < 2 {
		return "", ""
	}
	normalized := NormalizeDate(m[1])
	if normalized == "" {
		return "", ""
	}
	return normalized, m[1]
}

// extractInvoiceNumber pulls a labeled invoice number; short matches are
// discarded as false positives
func extractInvoiceNumber(text string) string {
	m := invoiceNumberRe.FindStringSubmatch(text)
	if len(m) < 2 {
		return ""
	}
	id := strings.TrimSpace(m[1])
	if len(id) < invoiceNoMinLen {
		return ""
	}
	return id
}

// extractVendor pulls the seller name after a "Sold By"-style label, cut at
// the first comma or newline, with internal whitespace collapsed
func extractVendor(text string) string {
	m := vendorRe.FindStringSubmatch(text)
	if len(m) < 2 {
		return ""
	}
	vendor := multiSpaceRe.ReplaceAllString(strings.TrimSpace(m[1]), " ")
	if len(vendor) < 2 || len(vendor) > 80 {
		return ""
	}
	return vendor
}

// extractHSN pulls a labeled HSN/SAC tax classification code (4-10 digits)
func extractHSN(text string) string {
	m := hsnRe.FindStringSubmatch(text)
	if len(m) < 2 {
		return ""
	}
	return m[1]
}
