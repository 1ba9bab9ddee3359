package utils

import (
	"strings"

	"github.com/NightCrawler909/WarrantyVault-sub001/dto"
)

// InvoiceExtractor is implemented once per retailer template. Adding a new
// retailer means adding a new implementation plus its dispatcher markers, not
// branching inside an existing extractor.
type InvoiceExtractor interface {
	Platform() string
	Extract(text string) dto.ExtractedInvoiceData
}

var (
	amazonMarkers   = []string{"amazon.in", "amazon.com", "amazon seller", "amzn", "amazon", "asin:"}
	flipkartMarkers = []string{"flipkart", "fkrt", "ekart logistics", "ekart"}
)

// DetectPlatform classifies invoice text by retailer-identifying markers:
// brand strings first, then order-number format signatures. First match wins;
// unrecognized text is generic. Deterministic and side-effect-free.
func DetectPlatform(text string) string {
	lower := strings.ToLower(text)

	for _, marker := range amazonMarkers {
		if strings.Contains(lower, marker) {
			return dto.PlatformAmazon
		}
	}
	for _, marker := range flipkartMarkers {
		if strings.Contains(lower, marker) {
			return dto.PlatformFlipkart
		}
	}

	if amazonOrderIDBareRe.MatchString(text) {
		return dto.PlatformAmazon
	}
	if flipkartOrderIDBareRe.MatchString(text) {
		return dto.PlatformFlipkart
	}

	return dto.PlatformGeneric
}

// SelectExtractor returns the extractor for the text's retailer. A caller
// hint naming a known platform short-circuits detection. Always returns a
// usable extractor; generic is the universal fallback.
func SelectExtractor(text, hint string) InvoiceExtractor {
	platform := strings.ToLower(strings.TrimSpace(hint))
	switch platform {
	case dto.PlatformAmazon, dto.PlatformFlipkart:
		// known platform, trust the hint
	default:
		platform = DetectPlatform(text)
	}

	switch platform {
	case dto.PlatformAmazon:
		return AmazonExtractor{}
	case dto.PlatformFlipkart:
		return FlipkartExtractor{}
	default:
		return GenericExtractor{}
	}
}
