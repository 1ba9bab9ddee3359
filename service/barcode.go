package service

import (
	"image"
	"log"
	"regexp"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/oned"
	"github.com/makiuchi-d/gozxing/qrcode"
)

// Retailer invoices print the order number as a barcode or QR next to the
// header. When text heuristics miss the order ID, decoding that code is a
// second chance.
var barcodePayloadPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(\d{3}-\d{7}-\d{7})\b`),
	regexp.MustCompile(`\b(OD\d{18,21})\b`),
	regexp.MustCompile(`(?i)order[^A-Za-z0-9]{0,3}([A-Za-z0-9\-]{6,})`),
}

// bounded per document; pages beyond the first few never carry the barcode
const maxBarcodePages = 3

// decodeOrderIDFromImages scans invoice page images for a barcode or QR code
// whose payload looks like a retailer order ID. Returns "" when nothing
// decodes or the payload has no recognizable identifier.
func decodeOrderIDFromImages(images []image.Image) string {
	limit := len(images)
	if limit > maxBarcodePages {
		limit = maxBarcodePages
	}

	for i := 0; i < limit; i++ {
		bmp, err := gozxing.NewBinaryBitmapFromImage(images[i])
		if err != nil {
			continue
		}

		if payload := decodeAnyFormat(bmp); payload != "" {
			if id := matchOrderIDPayload(payload); id != "" {
				log.Printf("Barcode scan recovered order ID from page %d", i+1)
				return id
			}
		}
	}

	return ""
}

// decodeAnyFormat tries QR first (Flipkart), then the 1D formats Amazon uses
func decodeAnyFormat(bmp *gozxing.BinaryBitmap) string {
	if result, err := qrcode.NewQRCodeReader().Decode(bmp, nil); err == nil {
		return result.GetText()
	}
	if result, err := oned.NewCode128Reader().Decode(bmp, nil); err == nil {
		return result.GetText()
	}
	if result, err := oned.NewCode39Reader().Decode(bmp, nil); err == nil {
		return result.GetText()
	}
	return ""
}

// matchOrderIDPayload extracts an order identifier from a decoded payload
func matchOrderIDPayload(payload string) string {
	for _, re := range barcodePayloadPatterns {
		if m := re.FindStringSubmatch(payload); len(m) > 1 {
			return m[1]
		}
	}
	return ""
}
