package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/FilmsDust/agency-os/internal/services"
	"github.com/FilmsDust/agency-os/internal/storage"
)

type TransactionHandler struct {
	transactionService *services.TransactionService
	storage            *storage.LocalStorage
}

func NewTransactionHandler(transactionService *services.TransactionService, store *storage.LocalStorage) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService, storage: store}
}

func (h *TransactionHandler) Index(c *gin.Context) {
	query := listQueryFromContext(c)
	if t := c.Query("type"); t != "" {
		query.Filters["type"] = t
	}
	if category := c.Query("category"); category != "" {
		query.Filters["category"] = category
	}

	transactions, total, err := h.transactionService.List(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]interface{}, 0, len(transactions))
	for _, t := range transactions {
		responses = append(responses, t.ToResponse())
	}

	c.JSON(http.StatusOK, gin.H{
		"transactions": responses,
		"pagination":   paginationResponse(query, total),
	})
}

type CreateTransactionRequest struct {
	Description string     `json:"description" binding:"required"`
	Amount      float64    `json:"amount" binding:"required"`
	Type        string     `json:"type" binding:"required"`
	Date        *time.Time `json:"date"`
	Category    string     `json:"category" binding:"required"`
	ProjectID   *string    `json:"project_id"`
	EntityName  *string    `json:"entity_name"`
}

func (h *TransactionHandler) Create(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := services.CreateTransactionInput{
		Description: req.Description,
		Amount:      req.Amount,
		Type:        req.Type,
		Category:    req.Category,
		ProjectID:   req.ProjectID,
		EntityName:  req.EntityName,
	}
	if req.Date != nil {
		input.Date = *req.Date
	}

	txn, err := h.transactionService.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, txn.ToResponse())
}

func (h *TransactionHandler) Show(c *gin.Context) {
	txn, err := h.transactionService.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, txn.ToResponse())
}

func (h *TransactionHandler) Destroy(c *gin.Context) {
	if err := h.transactionService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "transaction deleted"})
}

func (h *TransactionHandler) UploadReceipt(c *gin.Context) {
	file, header, err := c.Request.FormFile("receipt")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "receipt file is required"})
		return
	}
	defer file.Close()

	txn, err := h.transactionService.AttachReceipt(c.Request.Context(), c.Param("id"), file, header)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, txn.ToResponse())
}

func (h *TransactionHandler) DownloadReceipt(c *gin.Context) {
	txn, err := h.transactionService.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if txn.ReceiptPath == nil || *txn.ReceiptPath == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "no receipt attached"})
		return
	}
	if !h.storage.Exists(*txn.ReceiptPath) {
		c.JSON(http.StatusNotFound, gin.H{"error": "receipt file missing"})
		return
	}

	c.File(h.storage.GetFullPath(*txn.ReceiptPath))
}
