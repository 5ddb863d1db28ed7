package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/FilmsDust/agency-os/internal/services"
)

type InvoiceHandler struct {
	invoiceService *services.InvoiceService
	exportService  *services.ExportService
}

func NewInvoiceHandler(invoiceService *services.InvoiceService, exportService *services.ExportService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService, exportService: exportService}
}

func (h *InvoiceHandler) Index(c *gin.Context) {
	query := listQueryFromContext(c)
	if clientID := c.Query("client_id"); clientID != "" {
		query.Filters["client_id"] = clientID
	}

	invoices, total, err := h.invoiceService.List(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]interface{}, 0, len(invoices))
	for _, inv := range invoices {
		responses = append(responses, inv.ToResponse())
	}

	c.JSON(http.StatusOK, gin.H{
		"invoices":   responses,
		"pagination": paginationResponse(query, total),
	})
}

type InvoiceItemRequest struct {
	Description string  `json:"description" binding:"required"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

type CreateInvoiceRequest struct {
	ClientID       string               `json:"client_id" binding:"required"`
	Items          []InvoiceItemRequest `json:"items" binding:"required"`
	DiscountAmount float64              `json:"discount_amount"`
	AdvancePayment float64              `json:"advance_payment"`
	Currency       string               `json:"currency"`
	Notes          *string              `json:"notes"`
	DueDate        *time.Time           `json:"due_date"`
}

func (h *InvoiceHandler) Create(c *gin.Context) {
	var req CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items := make([]services.InvoiceItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, services.InvoiceItemInput{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}

	invoice, err := h.invoiceService.Create(c.Request.Context(), services.CreateInvoiceInput{
		ClientID:       req.ClientID,
		Items:          items,
		DiscountAmount: req.DiscountAmount,
		AdvancePayment: req.AdvancePayment,
		Currency:       req.Currency,
		Notes:          req.Notes,
		DueDate:        req.DueDate,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, invoice.ToResponse())
}

func (h *InvoiceHandler) Show(c *gin.Context) {
	invoice, err := h.invoiceService.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoice.ToResponse())
}

func (h *InvoiceHandler) MarkAsPaid(c *gin.Context) {
	invoice, err := h.invoiceService.MarkAsPaid(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoice.ToResponse())
}

func (h *InvoiceHandler) Cancel(c *gin.Context) {
	invoice, err := h.invoiceService.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoice.ToResponse())
}

func (h *InvoiceHandler) Destroy(c *gin.Context) {
	if err := h.invoiceService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "invoice deleted"})
}

func (h *InvoiceHandler) DownloadPDF(c *gin.Context) {
	data, filename, err := h.exportService.ExportInvoicePDF(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/pdf", data)
}
