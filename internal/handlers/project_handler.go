package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/FilmsDust/agency-os/internal/services"
)

type ProjectHandler struct {
	projectService *services.ProjectService
}

func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

func (h *ProjectHandler) Index(c *gin.Context) {
	query := listQueryFromContext(c)
	if clientID := c.Query("client_id"); clientID != "" {
		query.Filters["client_id"] = clientID
	}

	projects, total, err := h.projectService.List(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]interface{}, 0, len(projects))
	for _, p := range projects {
		responses = append(responses, p.ToResponse())
	}

	c.JSON(http.StatusOK, gin.H{
		"projects":   responses,
		"pagination": paginationResponse(query, total),
	})
}

type CreateProjectRequest struct {
	ClientID string     `json:"client_id" binding:"required"`
	Title    string     `json:"title" binding:"required"`
	Budget   float64    `json:"budget"`
	Deadline *time.Time `json:"deadline"`
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := services.CreateProjectInput{
		ClientID: req.ClientID,
		Title:    req.Title,
		Budget:   req.Budget,
	}
	if req.Deadline != nil {
		input.Deadline = *req.Deadline
	}

	project, err := h.projectService.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, project.ToResponse())
}

func (h *ProjectHandler) Show(c *gin.Context) {
	project, err := h.projectService.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, project.ToResponse())
}

type UpdateProgressRequest struct {
	Progress *int `json:"progress" binding:"required"`
}

func (h *ProjectHandler) UpdateProgress(c *gin.Context) {
	var req UpdateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "progress is required"})
		return
	}

	project, err := h.projectService.UpdateProgress(c.Request.Context(), c.Param("id"), *req.Progress)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, project.ToResponse())
}

func (h *ProjectHandler) Hold(c *gin.Context) {
	project, err := h.projectService.Hold(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, project.ToResponse())
}

func (h *ProjectHandler) Destroy(c *gin.Context) {
	if err := h.projectService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "project deleted"})
}
