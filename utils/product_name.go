package utils

import (
	"regexp"
	"strings"
	"unicode"
)

// Scan tuning. These thresholds are empirically tuned against real invoice
// dumps; change them only with a fixture that proves the new value.
const (
	productScanWindow    = 22  // lines inspected after the table header
	productMinLineLen    = 10  // minimum raw candidate length
	productMinWords      = 3   // minimum whitespace-delimited words
	productMaxDigitRatio = 0.4 // digit chars / total chars ceiling
	productMinCleanedLen = 5   // minimum length after cleanup
)

// tableHeaderMarkers identify the item-table header row
var tableHeaderMarkers = []string{
	"description", "particulars", "title", "sl no", "s.no", "sl.no", "item",
}

// productBlocklist rejects table rows that belong to totals, tax breakups,
// charges, or address/policy boilerplate rather than the line item itself
var productBlocklistRe = regexp.MustCompile(`(?i)\b(` +
	`sub[- ]?total|total|grand|tax(?:able)?|gst|cgst|sgst|igst|cess|hsn|sac|` +
	`qty|quantity|unit\s*price|rate|discount|coupon|shipping|handling|delivery\s*charges|` +
	`invoice|order\s*(?:id|no|number|date)|billing|address|ship\s*to|bill\s*to|sold\s*by|` +
	`amount\s*in\s*words|declaration|warranty|return\s*policy|authori[sz]ed|signature|` +
	`page\s*\d|thank\s*you|customer\s*care|reg(?:d)?\.?\s*office` +
	`)\b`)

var (
	serialPrefixRe       = regexp.MustCompile(`^\d{1,3}[.)]?\s+`)
	trailingHSNRe        = regexp.MustCompile(`(?i)\s*\bHSN\b[:\s]*\d*\s*$`)
	trailingTaxCodeRe    = regexp.MustCompile(`(?i)\s*\b(?:HSN|SAC)\b[:\s/]*\d{4,10}.*$`)
	trailingAmountRe     = regexp.MustCompile(`(?:\s+|\s*(?:₹|Rs\.?|INR|\$|€)\s*)[0-9][0-9,]*(?:\.[0-9]{1,2})?%?\s*$`)
	bracketedCatalogRe   = regexp.MustCompile(`\s*[\[(][A-Z0-9][A-Z0-9\-/]{3,}[\])]`)
	currencyDigitsOnlyRe = regexp.MustCompile(`(?i)^(?:rs\.?|inr)?[\s\d.,:₹$€/%\-]*$`)
	multiSpaceRe         = regexp.MustCompile(`\s+`)
)

// ExtractProductName scans invoice text for the first plausible line-item
// description. It looks for the item-table header, then inspects a bounded
// window of lines below it through a conservative multi-predicate filter:
// noise rows (totals, tax codes, charges, boilerplate) and numeric-heavy rows
// are skipped. The trade-off is deliberate: unusually short or noisy product
// names are occasionally missed rather than returning header/tax garbage.
// Returns the cleaned name plus the raw line it came from, or ("", "").
func ExtractProductName(text string) (string, string) {
	lines := strings.Split(text, "\n")

	start := 0
	if h := findTableHeader(lines); h >= 0 {
		start = h + 1
	}

	end := start + productScanWindow
	if end > len(lines) {
		end = len(lines)
	}

	for i := start; i < end; i++ {
		raw := strings.TrimSpace(lines[i])
		if raw == "" {
			continue
		}

		candidate := serialPrefixRe.ReplaceAllString(raw, "")

		if productBlocklistRe.MatchString(candidate) {
			continue
		}
		if len(candidate) < productMinLineLen {
			continue
		}
		if !containsLetter(candidate) {
			continue
		}
		if len(strings.Fields(candidate)) < productMinWords {
			continue
		}
		if digitRatio(candidate) > productMaxDigitRatio {
			continue
		}
		if currencyDigitsOnlyRe.MatchString(candidate) {
			continue
		}

		cleaned := cleanProductLine(candidate)
		if len(cleaned) >= productMinCleanedLen {
			return cleaned, raw
		}
	}

	return "", ""
}

// findTableHeader returns the index of the item-table header line, or -1.
// Lines carrying tax qualifiers are skipped: a "Taxable Description" header
// belongs to the tax breakup table, not the item table.
func findTableHeader(lines []string) int {
	for i, line := range lines {
		lower := strings.ToLower(line)
		if strings.Contains(lower, "tax") {
			continue
		}
		for _, marker := range tableHeaderMarkers {
			if strings.Contains(lower, marker) {
				return i
			}
		}
	}
	return -1
}

// cleanProductLine strips trailing tax-code annotations, price-like numeric
// suffixes, and bracketed catalog/ASIN artifacts from a table row
func cleanProductLine(line string) string {
	line = trailingTaxCodeRe.ReplaceAllString(line, "")
	line = trailingHSNRe.ReplaceAllString(line, "")

	// Rows often carry qty/rate/amount columns: peel numeric suffixes off
	// one at a time until only the description remains
	for {
		stripped := trailingAmountRe.ReplaceAllString(line, "")
		if stripped == line {
			break
		}
		line = stripped
	}

	line = bracketedCatalogRe.ReplaceAllString(line, "")
	line = multiSpaceRe.ReplaceAllString(line, " ")

	return strings.TrimSpace(line)
}

func containsLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

func digitRatio(s string) float64 {
	digits, total := 0, 0
	for _, r := range s {
		total++
		if unicode.IsDigit(r) {
			digits++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(digits) / float64(total)
}
