package utils

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/NightCrawler909/WarrantyVault-sub001/dto"
)

// amountToken matches a currency-formatted number, thousand separators included
const amountToken = `([0-9][0-9,]*(?:\.[0-9]{1,2})?)`

// currencyMarker matches the currency prefix printed before invoice amounts
const currencyMarker = `(?:₹|Rs\.?|INR|\$|€)`

var currencyAmountRe = regexp.MustCompile(`(?i)` + currencyMarker + `\s*` + amountToken)

// Labeled grand-total patterns, tried in order. Platform-specific label
// vocabularies come first so an Amazon "Order Total" beats a generic "Total".
var amazonTotalLabels = []string{
	`grand\s*total`, `invoice\s*value`, `order\s*total`, `total\s*amount`, `amount\s*payable`, `total`,
}

var flipkartTotalLabels = []string{
	`grand\s*total`, `total\s*price`, `amount\s*payable`, `total`,
}

var genericTotalLabels = []string{
	`grand\s*total`, `invoice\s*total`, `total\s*amount`, `net\s*amount`, `amount\s*payable`, `amount\s*due`, `total`,
}

// ExtractPrice isolates a single monetary total from invoice text.
// Labeled total fields are tried first using the platform's label vocabulary;
// if none match, the largest currency-adjacent amount in the text is used.
// Returns the amount plus match evidence, or (nil, "") when no plausible
// amount is found.
func ExtractPrice(text, platform string) (*float64, string) {
	var labels []string
	switch platform {
	case dto.PlatformAmazon:
		labels = amazonTotalLabels
	case dto.PlatformFlipkart:
		labels = flipkartTotalLabels
	default:
		labels = genericTotalLabels
	}

	for _, label := range labels {
		re := regexp.MustCompile(`(?i)` + label + `\s*[:\-]?\s*` + currencyMarker + `?\s*` + amountToken)
		if m := re.FindStringSubmatch(text); len(m) > 1 {
			if amount, ok := parseAmount(m[1]); ok {
				return &amount, "label:" + strings.ReplaceAll(label, `\s*`, " ")
			}
		}
	}

	// No labeled total: fall back to the largest currency-marked amount
	var best float64
	found := false
	for _, m := range currencyAmountRe.FindAllStringSubmatch(text, -1) {
		amount, ok := parseAmount(m[1])
		if !ok {
			continue
		}
		if !found || amount > best {
			best = amount
			found = true
		}
	}
	if found {
		return &best, "largest_currency_amount"
	}

	return nil, ""
}

// parseAmount strips thousand separators and parses a non-negative decimal
func parseAmount(raw string) (float64, bool) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if cleaned == "" {
		return 0, false
	}
	amount, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || amount < 0 {
		return 0, false
	}
	return amount, true
}
