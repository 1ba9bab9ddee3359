package utils

import (
	"testing"

	"github.com/NightCrawler909/WarrantyVault-sub001/dto"
	"github.com/stretchr/testify/assert"
)

func TestValidateExtractionPasses(t *testing.T) {
	price := 549.00

	cases := []dto.ExtractedInvoiceData{
		{ProductName: "Electric Kettle", Price: &price},
		{ProductName: "Electric Kettle", OrderDate: "2024-01-04"},
		{ProductName: "Electric Kettle", InvoiceDate: "2024-01-05"},
		{ProductName: "Electric Kettle", OrderID: "123-1234567-1234567"},
	}

	for _, c := range cases {
		assert.True(t, ValidateExtraction(&c))
	}
}

func TestValidateExtractionFailsWithoutProductName(t *testing.T) {
	price := 549.00
	data := dto.ExtractedInvoiceData{
		Price:    &price,
		OrderID:  "123-1234567-1234567",
		Platform: dto.PlatformAmazon,
	}

	assert.False(t, ValidateExtraction(&data))
}

func TestValidateExtractionFailsWithProductNameAlone(t *testing.T) {
	data := dto.ExtractedInvoiceData{ProductName: "Electric Kettle"}

	assert.False(t, ValidateExtraction(&data))
}

func TestValidateExtractionFailsOnEmptyRecord(t *testing.T) {
	data := dto.ExtractedInvoiceData{Platform: dto.PlatformGeneric}

	assert.False(t, ValidateExtraction(&data))
}
