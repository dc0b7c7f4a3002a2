package http

import (
	"errors"
	"image"
	"net/http"
	"time"

	_ "image/jpeg"
	_ "image/png"

	"github.com/gin-gonic/gin"

	"github.com/eatelligence/scanner/internal/domain"
	"github.com/eatelligence/scanner/internal/scan"
	"github.com/eatelligence/scanner/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	scannerService *usecase.ScannerService
	storeService   *usecase.StoreService
	barcodeScanner *scan.Scanner
}

// NewHandler creates a new HTTP handler
func NewHandler(
	scannerService *usecase.ScannerService,
	storeService *usecase.StoreService,
	barcodeScanner *scan.Scanner,
) *Handler {
	return &Handler{
		scannerService: scannerService,
		storeService:   storeService,
		barcodeScanner: barcodeScanner,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "eatelligence-scanner",
		"version": "1.0.0",
	})
}

// GetProduct looks up a barcode and returns the scan report
func (h *Handler) GetProduct(c *gin.Context) {
	barcode := c.Param("barcode")

	report, err := h.scannerService.Lookup(c.Request.Context(), barcode)
	if err != nil {
		h.reportError(c, err)
		return
	}

	c.JSON(http.StatusOK, reportResponse(report))
}

// ScanImage decodes a barcode from an uploaded still image and looks the
// product up. An image without a readable barcode is a 404, not an error.
func (h *Handler) ScanImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not open uploaded file"})
		return
	}
	defer file.Close()

	frame, _, err := image.Decode(file)
	if err != nil {
		// Malformed image input is "not found", not a crash
		c.JSON(http.StatusNotFound, gin.H{"error": "no barcode detected"})
		return
	}

	payload, ok := h.barcodeScanner.DetectBarcode(frame)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no barcode detected"})
		return
	}

	report, err := h.scannerService.Lookup(c.Request.Context(), payload)
	if err != nil {
		h.reportError(c, err)
		return
	}

	resp := reportResponse(report)
	resp["barcode"] = payload
	c.JSON(http.StatusOK, resp)
}

// SuggestStores runs a deadline-bounded store lookup for a product name
func (h *Handler) SuggestStores(c *gin.Context) {
	productName := c.Query("product")
	if productName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product query parameter is required"})
		return
	}

	var deadline time.Duration
	if raw := c.Query("timeout"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid timeout duration"})
			return
		}
		deadline = parsed
	}

	result, err := h.storeService.Suggest(c.Request.Context(), productName, deadline)
	if err != nil {
		if errors.Is(err, domain.ErrStoreLookupTimeout) {
			c.JSON(http.StatusGatewayTimeout, gin.H{
				"error":    "the store search is taking too long, please try again",
				"timedOut": true,
			})
			return
		}
		h.reportError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// reportResponse shapes a scan report for the UI layer, attaching the
// formatted nutrition facts rows for the product and each alternative.
func reportResponse(report *domain.ScanReport) gin.H {
	alternatives := make([]gin.H, 0, len(report.Alternatives))
	for _, alt := range report.Alternatives {
		alternatives = append(alternatives, gin.H{
			"name":           alt.Name,
			"brands":         alt.Brands,
			"servingSize":    alt.ServingSize,
			"healthScore":    usecase.FormatNumber(alt.HealthScore),
			"stores":         alt.Stores,
			"nutritionFacts": usecase.NutritionFacts(alt.Nutriments),
		})
	}

	return gin.H{
		"product":        report.Product,
		"healthScore":    usecase.FormatNumber(report.HealthScore),
		"nutritionFacts": usecase.NutritionFacts(report.Product.Nutriments),
		"alternatives":   alternatives,
		"source":         report.Source,
	}
}

// reportError maps domain errors to HTTP status codes
func (h *Handler) reportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
	case errors.Is(err, domain.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found in database"})
	case errors.Is(err, domain.ErrStoreLookupFailure):
		c.JSON(http.StatusBadGateway, gin.H{"error": "store suggestion backend failed"})
	default:
		c.JSON(http.StatusBadGateway, gin.H{"error": "food database request failed"})
	}
}
