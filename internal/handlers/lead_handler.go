package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/FilmsDust/agency-os/internal/services"
)

type LeadHandler struct {
	leadService *services.LeadService
}

func NewLeadHandler(leadService *services.LeadService) *LeadHandler {
	return &LeadHandler{leadService: leadService}
}

func (h *LeadHandler) Index(c *gin.Context) {
	query := listQueryFromContext(c)

	leads, total, err := h.leadService.List(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]interface{}, 0, len(leads))
	for _, lead := range leads {
		responses = append(responses, lead.ToResponse())
	}

	c.JSON(http.StatusOK, gin.H{
		"leads":      responses,
		"pagination": paginationResponse(query, total),
	})
}

type CreateLeadRequest struct {
	CompanyName string  `json:"company_name" binding:"required"`
	ContactName string  `json:"contact_name"`
	Value       float64 `json:"value"`
	Source      string  `json:"source"`
}

func (h *LeadHandler) Create(c *gin.Context) {
	var req CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lead, err := h.leadService.Create(c.Request.Context(), services.CreateLeadInput{
		CompanyName: req.CompanyName,
		ContactName: req.ContactName,
		Value:       req.Value,
		Source:      req.Source,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, lead.ToResponse())
}

func (h *LeadHandler) Show(c *gin.Context) {
	lead, err := h.leadService.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lead.ToResponse())
}

type MoveStageRequest struct {
	Stage string `json:"stage" binding:"required"`
}

func (h *LeadHandler) MoveStage(c *gin.Context) {
	var req MoveStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "stage is required"})
		return
	}

	lead, err := h.leadService.MoveStage(c.Request.Context(), c.Param("id"), req.Stage)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, lead.ToResponse())
}

type ConvertLeadRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Industry string `json:"industry"`
}

func (h *LeadHandler) Convert(c *gin.Context) {
	var req ConvertLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	client, err := h.leadService.ConvertToClient(c.Request.Context(), c.Param("id"), req.Email, req.Industry)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, client.ToResponse())
}

func (h *LeadHandler) Destroy(c *gin.Context) {
	if err := h.leadService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "lead deleted"})
}
