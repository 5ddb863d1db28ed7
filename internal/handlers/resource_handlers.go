package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/FilmsDust/agency-os/internal/services"
)

// ProductHandler serves the service catalog.
type ProductHandler struct {
	productService *services.ProductService
}

func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

func (h *ProductHandler) Index(c *gin.Context) {
	query := listQueryFromContext(c)

	products, total, err := h.productService.List(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]interface{}, 0, len(products))
	for _, p := range products {
		responses = append(responses, p.ToResponse())
	}

	c.JSON(http.StatusOK, gin.H{
		"products":   responses,
		"pagination": paginationResponse(query, total),
	})
}

type ProductRequest struct {
	Name      string  `json:"name" binding:"required"`
	BasePrice float64 `json:"base_price"`
	Category  string  `json:"category"`
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.productService.Create(c.Request.Context(), services.CreateProductInput{
		Name:      req.Name,
		BasePrice: req.BasePrice,
		Category:  req.Category,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, product.ToResponse())
}

func (h *ProductHandler) Update(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.productService.Update(c.Request.Context(), c.Param("id"), services.CreateProductInput{
		Name:      req.Name,
		BasePrice: req.BasePrice,
		Category:  req.Category,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, product.ToResponse())
}

func (h *ProductHandler) Destroy(c *gin.Context) {
	if err := h.productService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
}

// PurchaseHandler serves vendor purchases and their CSV export.
type PurchaseHandler struct {
	purchaseService *services.PurchaseService
	exportService   *services.ExportService
}

func NewPurchaseHandler(purchaseService *services.PurchaseService, exportService *services.ExportService) *PurchaseHandler {
	return &PurchaseHandler{purchaseService: purchaseService, exportService: exportService}
}

func (h *PurchaseHandler) Index(c *gin.Context) {
	query := listQueryFromContext(c)

	purchases, total, err := h.purchaseService.List(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]interface{}, 0, len(purchases))
	for _, p := range purchases {
		responses = append(responses, p.ToResponse())
	}

	c.JSON(http.StatusOK, gin.H{
		"purchases":  responses,
		"pagination": paginationResponse(query, total),
	})
}

type CreatePurchaseRequest struct {
	VendorName  string     `json:"vendor_name" binding:"required"`
	Description string     `json:"description"`
	Amount      float64    `json:"amount" binding:"required"`
	Date        *time.Time `json:"date"`
	Status      string     `json:"status"`
	Category    string     `json:"category"`
}

func (h *PurchaseHandler) Create(c *gin.Context) {
	var req CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := services.CreatePurchaseInput{
		VendorName:  req.VendorName,
		Description: req.Description,
		Amount:      req.Amount,
		Status:      req.Status,
		Category:    req.Category,
	}
	if req.Date != nil {
		input.Date = *req.Date
	}

	purchase, err := h.purchaseService.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, purchase.ToResponse())
}

func (h *PurchaseHandler) Destroy(c *gin.Context) {
	if err := h.purchaseService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "purchase deleted"})
}

func (h *PurchaseHandler) ExportCSV(c *gin.Context) {
	data, filename, err := h.exportService.ExportPurchasesCSV(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "text/csv", data)
}

// SettingsHandler serves the agency settings singleton.
type SettingsHandler struct {
	settingsService *services.SettingsService
}

func NewSettingsHandler(settingsService *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

func (h *SettingsHandler) Show(c *gin.Context) {
	settings, err := h.settingsService.Get(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

type UpdateSettingsRequest struct {
	Name        string `json:"name" binding:"required"`
	Tagline     string `json:"tagline"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	BankDetails string `json:"bank_details"`
	TaxNumber   string `json:"tax_number"`
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings, err := h.settingsService.Update(c.Request.Context(), services.UpdateSettingsInput{
		Name:        req.Name,
		Tagline:     req.Tagline,
		Phone:       req.Phone,
		Email:       req.Email,
		Address:     req.Address,
		BankDetails: req.BankDetails,
		TaxNumber:   req.TaxNumber,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}
