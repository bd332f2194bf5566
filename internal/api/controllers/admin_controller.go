package controllers

import (
	"encoding/csv"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"coursepulse/internal/models/request_models"
	"coursepulse/internal/services"
	"coursepulse/pkg/utils"
)

type AdminController struct {
	adminService services.AdminServiceInterface
}

func NewAdminController(adminService services.AdminServiceInterface) *AdminController {
	return &AdminController{adminService: adminService}
}

// ListStudents godoc
// @Summary List students with optional search
// @Tags Admin
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param search query string false "Case-insensitive substring over name and email"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/students [get]
func (a *AdminController) ListStudents(c *gin.Context) {
	page, limit, ok := parsePagination(c, 10)
	if !ok {
		return
	}
	search := c.Query("search")

	result, err := a.adminService.ListStudents(c.Request.Context(), search, page, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Students fetched successfully")
}

// BlockStudent godoc
// @Summary Block or unblock a student
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Student id"
// @Param request body request_models.BlockStudentRequest true "Blocked flag"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/students/{id}/block [put]
func (a *AdminController) BlockStudent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, utils.CodeNotFound, "Student not found")
		return
	}

	var req request_models.BlockStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Blocked == nil {
		utils.RespondError(c, http.StatusBadRequest, utils.CodeValidationError, "Invalid request payload")
		return
	}

	student, svcErr := a.adminService.SetStudentBlocked(c.Request.Context(), id, *req.Blocked)
	if svcErr != nil {
		utils.HandleServiceError(c, svcErr)
		return
	}

	utils.RespondSuccess(c, student, "Student updated successfully")
}

// DeleteStudent godoc
// @Summary Delete a student and all their feedback
// @Tags Admin
// @Param id path string true "Student id"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/students/{id} [delete]
func (a *AdminController) DeleteStudent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, utils.CodeNotFound, "Student not found")
		return
	}

	if err := a.adminService.DeleteStudent(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "User deleted successfully")
}

// DashboardStats godoc
// @Summary Four headline counts for the admin dashboard
// @Tags Admin
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/dashboard-stats [get]
func (a *AdminController) DashboardStats(c *gin.Context) {
	stats, err := a.adminService.DashboardStats(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, stats, "Dashboard stats fetched successfully")
}

// FeedbackStats godoc
// @Summary Per-course feedback count and mean rating
// @Tags Admin
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/feedback-stats [get]
func (a *AdminController) FeedbackStats(c *gin.Context) {
	stats, err := a.adminService.FeedbackStats(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, stats, "Feedback stats fetched successfully")
}

// FeedbackTrend godoc
// @Summary Per-day feedback counts over a lookback window
// @Tags Admin
// @Param days query int false "Lookback window in days" default(30)
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/analytics/feedback-trend [get]
func (a *AdminController) FeedbackTrend(c *gin.Context) {
	daysStr := c.DefaultQuery("days", "30")
	days, err := strconv.Atoi(daysStr)
	if err != nil || days <= 0 {
		utils.RespondError(c, http.StatusBadRequest, utils.CodeValidationError, "days must be a positive integer")
		return
	}

	trend, svcErr := a.adminService.FeedbackTrend(c.Request.Context(), days)
	if svcErr != nil {
		utils.HandleServiceError(c, svcErr)
		return
	}
	utils.RespondSuccess(c, trend, "Feedback trend fetched successfully")
}

// RatingDistribution godoc
// @Summary All-time feedback counts per rating value
// @Tags Admin
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/analytics/rating-distribution [get]
func (a *AdminController) RatingDistribution(c *gin.Context) {
	dist, err := a.adminService.RatingDistribution(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, dist, "Rating distribution fetched successfully")
}

// ExportFeedback streams the whole feedback table as a CSV attachment.
func (a *AdminController) ExportFeedback(c *gin.Context) {
	records, err := a.adminService.ExportFeedback(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="feedback-export.csv"`)
	c.Status(http.StatusOK)

	// Headers are already out; a write failure can only be logged.
	w := csv.NewWriter(c.Writer)
	if err := w.WriteAll(records); err != nil {
		log.Printf("CSV export write error: %v", err)
	}
}
