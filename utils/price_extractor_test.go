package utils

import (
	"testing"

	"github.com/NightCrawler909/WarrantyVault-sub001/dto"
	"github.com/stretchr/testify/assert"
)

func TestExtractPriceLabeledTotal(t *testing.T) {
	text := `
		Item Subtotal: ₹1,099.00
		Shipping: ₹40.00
		Grand Total: ₹1,139.00
	`

	price, evidence := ExtractPrice(text, dto.PlatformAmazon)

	assert.NotNil(t, price)
	assert.Equal(t, 1139.00, *price)
	assert.Contains(t, evidence, "grand")
}

func TestExtractPriceStripsThousandSeparators(t *testing.T) {
	text := "Total Amount: Rs. 1,23,456.50"

	price, _ := ExtractPrice(text, dto.PlatformGeneric)

	assert.NotNil(t, price)
	assert.Equal(t, 123456.50, *price)
}

func TestExtractPriceFlipkartLabels(t *testing.T) {
	text := "Total Price ₹2,499.00"

	price, _ := ExtractPrice(text, dto.PlatformFlipkart)

	assert.NotNil(t, price)
	assert.Equal(t, 2499.00, *price)
}

func TestExtractPriceLargestCurrencyAmountFallback(t *testing.T) {
	text := `
		1 Pigeon Favourite Electric Kettle ₹549.00
		Delivery ₹40.00
	`

	price, evidence := ExtractPrice(text, dto.PlatformAmazon)

	assert.NotNil(t, price)
	assert.Equal(t, 549.00, *price)
	assert.Equal(t, "largest_currency_amount", evidence)
}

func TestExtractPriceAbsent(t *testing.T) {
	price, evidence := ExtractPrice("no amounts in this text at all", dto.PlatformGeneric)

	assert.Nil(t, price)
	assert.Empty(t, evidence)
}
