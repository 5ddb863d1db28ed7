package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/FilmsDust/agency-os/internal/jobs"
	"github.com/FilmsDust/agency-os/internal/repository"
	"github.com/FilmsDust/agency-os/internal/services"
	"github.com/FilmsDust/agency-os/internal/storage"
)

// Handlers holds all handler instances
type Handlers struct {
	Health      *HealthHandler
	Auth        *AuthHandler
	Transaction *TransactionHandler
	Invoice     *InvoiceHandler
	Client      *ClientHandler
	Staff       *StaffHandler
	Project     *ProjectHandler
	Lead        *LeadHandler
	Proposal    *ProposalHandler
	Product     *ProductHandler
	Purchase    *PurchaseHandler
	Settings    *SettingsHandler
	Assistant   *AssistantHandler
	Dashboard   *DashboardHandler
}

// NewHandlers creates all handler instances
func NewHandlers(svcs *services.Services, store *storage.LocalStorage, worker *jobs.Worker) *Handlers {
	return &Handlers{
		Health:      NewHealthHandler(),
		Auth:        NewAuthHandler(svcs.Auth),
		Transaction: NewTransactionHandler(svcs.Transaction, store),
		Invoice:     NewInvoiceHandler(svcs.Invoice, svcs.Export),
		Client:      NewClientHandler(svcs.Client),
		Staff:       NewStaffHandler(svcs.Staff),
		Project:     NewProjectHandler(svcs.Project),
		Lead:        NewLeadHandler(svcs.Lead),
		Proposal:    NewProposalHandler(svcs.Proposal, svcs.Document),
		Product:     NewProductHandler(svcs.Product),
		Purchase:    NewPurchaseHandler(svcs.Purchase, svcs.Export),
		Settings:    NewSettingsHandler(svcs.Settings),
		Assistant:   NewAssistantHandler(svcs.Assistant, svcs.Settings),
		Dashboard:   NewDashboardHandler(svcs.Analytics, svcs.Export, worker),
	}
}

// listQueryFromContext builds a ListQuery from the common query parameters.
func listQueryFromContext(c *gin.Context) *repository.ListQuery {
	query := repository.NewListQuery()
	query.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	query.PerPage, _ = strconv.Atoi(c.DefaultQuery("per_page", "20"))
	query.Search = c.Query("search")

	if status := c.Query("status"); status != "" {
		query.Filters["status"] = status
	}

	// Sort parameter format: field-direction
	if sort := c.Query("sort"); sort != "" {
		parts := strings.Split(sort, "-")
		query.SortBy = parts[0]
		if len(parts) > 1 {
			query.SortDir = parts[1]
		}
	}
	return query
}

// respondError maps service errors onto HTTP status codes.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidState):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func paginationResponse(query *repository.ListQuery, total int64) gin.H {
	totalPages := int64(0)
	if query.PerPage > 0 {
		totalPages = (total + int64(query.PerPage) - 1) / int64(query.PerPage)
	}
	return gin.H{
		"page":        query.Page,
		"per_page":    query.PerPage,
		"total":       total,
		"total_pages": totalPages,
	}
}
