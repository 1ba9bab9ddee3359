package utils

import (
	"testing"

	"github.com/NightCrawler909/WarrantyVault-sub001/dto"
	"github.com/stretchr/testify/assert"
)

func TestFlipkartExtractorFullInvoice(t *testing.T) {
	text := `Tax Invoice
Flipkart Internet Private Limited
Order ID: OD123456789012345678
Order Date: 15-03-2024
Invoice No: FAB1234567890
Sold By: SuperComNet, Bengaluru
Description Qty Rate Amount
1 boAt Rockerz 450 Bluetooth Headphones 1 1499.00 1499.00
HSN/SAC: 851830
Grand Total ₹1,499.00
`

	data := FlipkartExtractor{}.Extract(text)

	assert.Equal(t, dto.PlatformFlipkart, data.Platform)
	assert.Equal(t, "OD123456789012345678", data.OrderID)
	assert.Equal(t, "2024-03-15", data.OrderDate)
	assert.Equal(t, "FAB1234567890", data.InvoiceNumber)
	assert.Equal(t, "boAt Rockerz 450 Bluetooth Headphones", data.ProductName)
	assert.Equal(t, "SuperComNet", data.Vendor)
	assert.Equal(t, "851830", data.HSN)
	assert.NotNil(t, data.Price)
	assert.Equal(t, 1499.00, *data.Price)
}

func TestFlipkartExtractorBareOrderID(t *testing.T) {
	data := FlipkartExtractor{}.Extract("ref OD987654321098765432 shipped")

	assert.Equal(t, "OD987654321098765432", data.OrderID)
}

func TestFlipkartExtractorMissingFieldsStayAbsent(t *testing.T) {
	data := FlipkartExtractor{}.Extract("Flipkart\nThank you for shopping!")

	assert.Equal(t, dto.PlatformFlipkart, data.Platform)
	assert.Empty(t, data.OrderID)
	assert.Empty(t, data.ProductName)
	assert.Nil(t, data.Price)
	assert.True(t, data.IsEmpty())
}
