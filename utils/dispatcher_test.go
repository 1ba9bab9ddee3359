package utils

import (
	"testing"

	"github.com/NightCrawler909/WarrantyVault-sub001/dto"
	"github.com/stretchr/testify/assert"
)

func TestDetectPlatformByBrandMarker(t *testing.T) {
	assert.Equal(t, dto.PlatformAmazon, DetectPlatform("Sold on Amazon.in by Appario Retail"))
	assert.Equal(t, dto.PlatformFlipkart, DetectPlatform("Flipkart Internet Private Limited"))
	assert.Equal(t, dto.PlatformFlipkart, DetectPlatform("Shipped via Ekart Logistics"))
}

func TestDetectPlatformByOrderIDSignature(t *testing.T) {
	assert.Equal(t, dto.PlatformAmazon, DetectPlatform("Order Number: 123-1234567-1234567"))
	assert.Equal(t, dto.PlatformFlipkart, DetectPlatform("Order ID: OD123456789012345678"))
}

func TestDetectPlatformGenericFallback(t *testing.T) {
	assert.Equal(t, dto.PlatformGeneric, DetectPlatform("Local Electronics Store\nInvoice No: LE-2024-001"))
	assert.Equal(t, dto.PlatformGeneric, DetectPlatform(""))
}

func TestSelectExtractorHintOverride(t *testing.T) {
	// Hint wins over text markers
	ex := SelectExtractor("Flipkart Internet Private Limited", dto.PlatformAmazon)
	assert.Equal(t, dto.PlatformAmazon, ex.Platform())
}

func TestSelectExtractorUnknownHintFallsBackToDetection(t *testing.T) {
	ex := SelectExtractor("Sold on Amazon.in", "walmart")
	assert.Equal(t, dto.PlatformAmazon, ex.Platform())

	ex = SelectExtractor("no retailer markers here", "")
	assert.Equal(t, dto.PlatformGeneric, ex.Platform())
}

func TestDetectPlatformIsDeterministic(t *testing.T) {
	text := "Amazon.in Order Number: 123-1234567-1234567"
	first := DetectPlatform(text)
	second := DetectPlatform(text)
	assert.Equal(t, first, second)
}
