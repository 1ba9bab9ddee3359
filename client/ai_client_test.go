package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExtractTextMapsResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/extract-text", r.URL.Path)
		assert.NoError(t, r.ParseMultipartForm(32<<20))
		_, header, err := r.FormFile("file")
		assert.NoError(t, err)
		assert.Equal(t, "invoice.pdf", header.Filename)
		assert.Equal(t, "application/pdf", header.Header.Get("Content-Type"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"text": "Order Number: 123-1234567-1234567", "confidence": 0.93}`))
	}))
	defer server.Close()

	c := NewAIServiceClient(server.URL, 5*time.Second)

	text, confidence, err := c.ExtractText(context.Background(), []byte("%PDF-"), "invoice.pdf", "application/pdf")

	assert.NoError(t, err)
	assert.Equal(t, "Order Number: 123-1234567-1234567", text)
	assert.Equal(t, 0.93, confidence)
}

func TestExtractStructuredMapsAndNormalizesFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ai-structured-extract", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"product_name": "Pigeon Favourite Electric Kettle",
			"order_id": "123-1234567-1234567",
			"invoice_number": "IN-12345",
			"total_amount": "Rs. 549.00",
			"purchase_date": "04.01.2024",
			"retailer": "Appario Retail"
		}`))
	}))
	defer server.Close()

	c := NewAIServiceClient(server.URL, 5*time.Second)

	data, err := c.ExtractStructured(context.Background(), []byte("%PDF-"), "invoice.pdf", "application/pdf")

	assert.NoError(t, err)
	assert.Equal(t, "Pigeon Favourite Electric Kettle", data.ProductName)
	assert.Equal(t, "123-1234567-1234567", data.OrderID)
	assert.Equal(t, "IN-12345", data.InvoiceNumber)
	assert.Equal(t, "Appario Retail", data.Vendor)
	assert.Equal(t, "2024-01-04", data.OrderDate)
	assert.NotNil(t, data.Price)
	assert.Equal(t, 549.00, *data.Price)
}

func TestExtractStructuredPartialAnswers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"product_name": "Electric Kettle", "total_amount": "", "purchase_date": "unknown"}`))
	}))
	defer server.Close()

	c := NewAIServiceClient(server.URL, 5*time.Second)

	data, err := c.ExtractStructured(context.Background(), []byte("img"), "invoice.jpg", "image/jpeg")

	assert.NoError(t, err)
	assert.Equal(t, "Electric Kettle", data.ProductName)
	assert.Nil(t, data.Price)
	assert.Empty(t, data.OrderDate)
}

func TestExtractStructuredServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail": "model load failed"}`, http.StatusInternalServerError)
	}))
	defer server.Close()

	c := NewAIServiceClient(server.URL, 5*time.Second)

	_, err := c.ExtractStructured(context.Background(), []byte("img"), "invoice.jpg", "image/jpeg")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestExtractStructuredContextTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	c := NewAIServiceClient(server.URL, 5*time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := c.ExtractStructured(ctx, []byte("img"), "invoice.jpg", "image/jpeg")

	assert.Error(t, err)
}

func TestDefaultAIClientSingleFlight(t *testing.T) {
	ResetDefaultAIClient()
	defer ResetDefaultAIClient()

	first := DefaultAIClient("http://ai-service:8000", time.Second)
	second := DefaultAIClient("http://other-host:9000", time.Second)

	// Second call reuses the already-initialized handle
	assert.Same(t, first, second)
	assert.Equal(t, "http://ai-service:8000", first.baseURL)
}

func TestResetDefaultAIClient(t *testing.T) {
	ResetDefaultAIClient()

	first := DefaultAIClient("http://ai-service:8000", time.Second)
	ResetDefaultAIClient()
	second := DefaultAIClient("http://ai-service:8000", time.Second)

	assert.NotSame(t, first, second)
	ResetDefaultAIClient()
}
