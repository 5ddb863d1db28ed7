package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/FilmsDust/agency-os/internal/services"
)

type StaffHandler struct {
	staffService *services.StaffService
}

func NewStaffHandler(staffService *services.StaffService) *StaffHandler {
	return &StaffHandler{staffService: staffService}
}

func (h *StaffHandler) Index(c *gin.Context) {
	query := listQueryFromContext(c)
	if dept := c.Query("department"); dept != "" {
		query.Filters["department"] = dept
	}

	staff, total, err := h.staffService.List(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]interface{}, 0, len(staff))
	for _, member := range staff {
		responses = append(responses, member.ToResponse())
	}

	c.JSON(http.StatusOK, gin.H{
		"staff":      responses,
		"pagination": paginationResponse(query, total),
	})
}

type CreateStaffRequest struct {
	Name        string     `json:"name" binding:"required"`
	Designation string     `json:"designation"`
	Department  string     `json:"department" binding:"required"`
	Salary      float64    `json:"salary" binding:"required"`
	JoiningDate *time.Time `json:"joining_date"`
}

func (h *StaffHandler) Create(c *gin.Context) {
	var req CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := services.CreateStaffInput{
		Name:        req.Name,
		Designation: req.Designation,
		Department:  req.Department,
		Salary:      req.Salary,
	}
	if req.JoiningDate != nil {
		input.JoiningDate = *req.JoiningDate
	}

	staff, err := h.staffService.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, staff.ToResponse())
}

func (h *StaffHandler) Show(c *gin.Context) {
	staff, err := h.staffService.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, staff.ToResponse())
}

type UpdateStaffStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *StaffHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStaffStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	staff, err := h.staffService.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, staff.ToResponse())
}

func (h *StaffHandler) Destroy(c *gin.Context) {
	if err := h.staffService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "staff member deleted"})
}

func (h *StaffHandler) RunPayroll(c *gin.Context) {
	result, err := h.staffService.RunPayroll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
