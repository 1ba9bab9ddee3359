package main

import (
	"log"

	"github.com/NightCrawler909/WarrantyVault-sub001/client"
	"github.com/NightCrawler909/WarrantyVault-sub001/config"
	"github.com/NightCrawler909/WarrantyVault-sub001/handler"
	"github.com/NightCrawler909/WarrantyVault-sub001/service"

	"github.com/gin-gonic/gin"
)

func main() {
	// Initialize configuration
	cfg := config.LoadConfig()

	// Initialize collaborator clients
	aiClient := client.DefaultAIClient(cfg.AIServiceURL, cfg.AIRequestTimeout)
	tesseractClient := client.NewTesseractClient(cfg.TesseractDataPath)
	defer tesseractClient.Close()

	// Initialize PDF processor
	pdfProcessor := service.NewPDFProcessor()

	// Initialize service layer
	invoiceService := service.NewInvoiceService(aiClient, pdfProcessor, tesseractClient, cfg.FallbackTimeout)

	// Initialize handler layer
	invoiceHandler := handler.NewInvoiceHandler(invoiceService)

	// Setup Gin router
	router := gin.Default()

	// Configure max multipart memory
	router.MaxMultipartMemory = cfg.MaxFileSize

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "WarrantyVault Invoice Extraction",
		})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		invoice := api.Group("/invoice")
		{
			invoice.POST("/extract", invoiceHandler.ExtractFromFile)
			invoice.POST("/extract-text", invoiceHandler.ExtractFromText)
		}
	}

	// Start server
	log.Printf("Starting WarrantyVault Invoice Extraction Service on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
