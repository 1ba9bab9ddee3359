package client

import (
	"fmt"
	"image"
	"log"
	"os"

	"github.com/disintegration/imaging"
	"github.com/otiai10/gosseract/v2"
)

// TesseractClient is the local OCR fallback, used when the AI service's OCR
// endpoint is unreachable and the PDF carries no usable text layer
type TesseractClient struct {
	dataPath string
}

func NewTesseractClient(dataPath string) *TesseractClient {
	return &TesseractClient{
		dataPath: dataPath,
	}
}

// ExtractTextFromImage preprocesses an invoice page image and runs Tesseract
// on it. Returns the recognized text and an average word confidence.
func (tc *TesseractClient) ExtractTextFromImage(img image.Image) (string, float64, error) {
	tempFile, err := tc.savePreprocessedImage(img)
	if err != nil {
		return "", 0, fmt.Errorf("failed to prepare image: %w", err)
	}
	defer os.Remove(tempFile)

	return tc.ExtractTextAndQuality(tempFile)
}

// savePreprocessedImage sharpens, boosts contrast, and grayscales the page
// before OCR. Scanned invoices are low-contrast more often than not.
func (tc *TesseractClient) savePreprocessedImage(img image.Image) (string, error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	const maxDimension = 2500
	processed := img
	if width > maxDimension || height > maxDimension {
		if width > height {
			processed = imaging.Resize(processed, maxDimension, 0, imaging.Lanczos)
		} else {
			processed = imaging.Resize(processed, 0, maxDimension, imaging.Lanczos)
		}
	}

	processed = imaging.Sharpen(processed, 1.5)
	processed = imaging.AdjustContrast(processed, 25)
	processed = imaging.Grayscale(processed)

	tempFile, err := os.CreateTemp("", "invoice-ocr-*.png")
	if err != nil {
		return "", err
	}
	tempFile.Close()

	if err := imaging.Save(processed, tempFile.Name()); err != nil {
		os.Remove(tempFile.Name())
		return "", err
	}

	return tempFile.Name(), nil
}

// ExtractTextAndQuality runs Tesseract on an image file and averages the
// per-word confidence scores
func (tc *TesseractClient) ExtractTextAndQuality(filePath string) (string, float64, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if tc.dataPath != "" {
		client.SetTessdataPrefix(tc.dataPath)
	}
	if err := client.SetLanguage("eng"); err != nil {
		return "", 0, fmt.Errorf("failed to set language: %w", err)
	}

	if err := client.SetImage(filePath); err != nil {
		return "", 0, fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", 0, fmt.Errorf("failed to extract text: %w", err)
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		// No word boxes: keep the text, report unknown confidence
		return text, 0, nil
	}

	var totalConf float64
	var count int
	for _, box := range boxes {
		totalConf += box.Confidence
		count++
	}

	avgConf := 0.0
	if count > 0 {
		avgConf = totalConf / float64(count)
	}

	return text, avgConf, nil
}

// Close performs cleanup
func (tc *TesseractClient) Close() {
	log.Println("Tesseract client closed")
}
