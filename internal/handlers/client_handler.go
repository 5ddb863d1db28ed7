package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/FilmsDust/agency-os/internal/services"
)

type ClientHandler struct {
	clientService *services.ClientService
}

func NewClientHandler(clientService *services.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

func (h *ClientHandler) Index(c *gin.Context) {
	query := listQueryFromContext(c)

	clients, total, err := h.clientService.List(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]interface{}, 0, len(clients))
	for _, client := range clients {
		responses = append(responses, client.ToResponse())
	}

	c.JSON(http.StatusOK, gin.H{
		"clients":    responses,
		"pagination": paginationResponse(query, total),
	})
}

type CreateClientRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Industry string `json:"industry"`
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	client, err := h.clientService.Create(c.Request.Context(), services.CreateClientInput{
		Name:     req.Name,
		Email:    req.Email,
		Industry: req.Industry,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, client.ToResponse())
}

type UpdateClientRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Industry *string `json:"industry"`
	Status   *string `json:"status"`
}

func (h *ClientHandler) Update(c *gin.Context) {
	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	client, err := h.clientService.Update(c.Request.Context(), c.Param("id"), services.UpdateClientInput{
		Name:     req.Name,
		Email:    req.Email,
		Industry: req.Industry,
		Status:   req.Status,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, client.ToResponse())
}

func (h *ClientHandler) Show(c *gin.Context) {
	client, err := h.clientService.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, client.ToResponse())
}

func (h *ClientHandler) Stats(c *gin.Context) {
	stats, err := h.clientService.Stats(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *ClientHandler) Destroy(c *gin.Context) {
	if err := h.clientService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "client deleted"})
}
