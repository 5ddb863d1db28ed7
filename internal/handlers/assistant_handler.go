package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/FilmsDust/agency-os/internal/services"
)

type AssistantHandler struct {
	assistantService *services.AssistantService
	settingsService  *services.SettingsService
}

func NewAssistantHandler(assistantService *services.AssistantService, settingsService *services.SettingsService) *AssistantHandler {
	return &AssistantHandler{assistantService: assistantService, settingsService: settingsService}
}

func (h *AssistantHandler) agencyName(c *gin.Context) string {
	settings, err := h.settingsService.Get(c.Request.Context())
	if err != nil {
		return "the agency"
	}
	return settings.Name
}

func (h *AssistantHandler) AuditReport(c *gin.Context) {
	report := h.assistantService.GenerateAuditReport(c.Request.Context(), h.agencyName(c))
	c.JSON(http.StatusOK, gin.H{"report": report})
}

type ChatRequest struct {
	Query string `json:"query" binding:"required"`
}

func (h *AssistantHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query is required"})
		return
	}

	answer := h.assistantService.Chat(c.Request.Context(), h.agencyName(c), req.Query)
	c.JSON(http.StatusOK, gin.H{"answer": answer})
}
