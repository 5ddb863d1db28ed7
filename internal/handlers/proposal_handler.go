package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/FilmsDust/agency-os/internal/services"
)

type ProposalHandler struct {
	proposalService *services.ProposalService
	documentService *services.DocumentService
}

func NewProposalHandler(proposalService *services.ProposalService, documentService *services.DocumentService) *ProposalHandler {
	return &ProposalHandler{proposalService: proposalService, documentService: documentService}
}

func (h *ProposalHandler) Index(c *gin.Context) {
	query := listQueryFromContext(c)

	proposals, total, err := h.proposalService.List(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]interface{}, 0, len(proposals))
	for _, p := range proposals {
		responses = append(responses, p.ToResponse())
	}

	c.JSON(http.StatusOK, gin.H{
		"proposals":  responses,
		"pagination": paginationResponse(query, total),
	})
}

type CreateProposalRequest struct {
	ClientName     string  `json:"client_name" binding:"required"`
	ClientIndustry string  `json:"client_industry"`
	ProjectTitle   string  `json:"project_title" binding:"required"`
	Duration       string  `json:"duration"`
	TemplateType   string  `json:"template_type" binding:"required"`
	TotalAmount    float64 `json:"total_amount" binding:"required"`
	AdvanceAmount  float64 `json:"advance_amount"`
}

func (h *ProposalHandler) Create(c *gin.Context) {
	var req CreateProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	proposal, err := h.proposalService.Create(c.Request.Context(), services.CreateProposalInput{
		ClientName:     req.ClientName,
		ClientIndustry: req.ClientIndustry,
		ProjectTitle:   req.ProjectTitle,
		Duration:       req.Duration,
		TemplateType:   req.TemplateType,
		TotalAmount:    req.TotalAmount,
		AdvanceAmount:  req.AdvanceAmount,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, proposal.ToResponse())
}

func (h *ProposalHandler) Show(c *gin.Context) {
	proposal, err := h.proposalService.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, proposal.ToResponse())
}

func (h *ProposalHandler) ConvertToInvoice(c *gin.Context) {
	invoice, err := h.proposalService.ConvertToInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, invoice.ToResponse())
}

func (h *ProposalHandler) DownloadPDF(c *gin.Context) {
	pdf, filename, err := h.documentService.GenerateProposalPDF(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/pdf", pdf.Bytes())
}

func (h *ProposalHandler) Destroy(c *gin.Context) {
	if err := h.proposalService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "proposal deleted"})
}
