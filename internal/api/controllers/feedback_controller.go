package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"coursepulse/internal/models/request_models"
	"coursepulse/internal/services"
	"coursepulse/pkg/middleware"
	"coursepulse/pkg/utils"
)

type FeedbackController struct {
	feedbackService services.FeedbackServiceInterface
}

func NewFeedbackController(feedbackService services.FeedbackServiceInterface) *FeedbackController {
	return &FeedbackController{feedbackService: feedbackService}
}

// CreateFeedback godoc
// @Summary Submit feedback for a course
// @Tags Feedback
// @Accept json
// @Produce json
// @Param request body request_models.CreateFeedbackRequest true "Feedback payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /feedback [post]
func (f *FeedbackController) CreateFeedback(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, utils.CodeUnauthenticated, "Authentication required")
		return
	}

	var req request_models.CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, utils.CodeValidationError, "Invalid request payload")
		return
	}

	courseID, err := uuid.Parse(req.Course)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, utils.CodeValidationError, "Invalid course id")
		return
	}

	feedback, svcErr := f.feedbackService.CreateFeedback(c.Request.Context(), user.ID, courseID, req.Rating, req.Message)
	if svcErr != nil {
		utils.HandleServiceError(c, svcErr)
		return
	}

	utils.RespondCreated(c, feedback, "Feedback added successfully")
}

// ListMyFeedback godoc
// @Summary Get the caller's feedback, newest first
// @Tags Feedback
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(5) minimum(1) maximum(100)
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /feedback/my [get]
func (f *FeedbackController) ListMyFeedback(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, utils.CodeUnauthenticated, "Authentication required")
		return
	}

	page, limit, ok := parsePagination(c, 5)
	if !ok {
		return
	}

	result, err := f.feedbackService.ListMyFeedback(c.Request.Context(), user.ID, page, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Feedback fetched successfully")
}

// UpdateFeedback godoc
// @Summary Update the caller's own feedback
// @Tags Feedback
// @Accept json
// @Produce json
// @Param id path string true "Feedback id"
// @Param request body request_models.UpdateFeedbackRequest true "Feedback payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /feedback/{id} [put]
func (f *FeedbackController) UpdateFeedback(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, utils.CodeUnauthenticated, "Authentication required")
		return
	}

	feedbackID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, utils.CodeNotFound, "Feedback not found")
		return
	}

	var req request_models.UpdateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, utils.CodeValidationError, "Invalid request payload")
		return
	}

	feedback, svcErr := f.feedbackService.UpdateFeedback(c.Request.Context(), user.ID, feedbackID, req.Rating, req.Message)
	if svcErr != nil {
		utils.HandleServiceError(c, svcErr)
		return
	}

	utils.RespondSuccess(c, feedback, "Feedback updated successfully")
}

// DeleteFeedback godoc
// @Summary Delete the caller's own feedback
// @Tags Feedback
// @Param id path string true "Feedback id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /feedback/{id} [delete]
func (f *FeedbackController) DeleteFeedback(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, utils.CodeUnauthenticated, "Authentication required")
		return
	}

	feedbackID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, utils.CodeNotFound, "Feedback not found")
		return
	}

	if err := f.feedbackService.DeleteFeedback(c.Request.Context(), user.ID, feedbackID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Feedback deleted successfully")
}

// parsePagination reads page and limit query params, writing the error
// response itself when they are out of range.
func parsePagination(c *gin.Context, defaultLimit int) (int, int, bool) {
	pageStr := c.DefaultQuery("page", "1")
	limitStr := c.DefaultQuery("limit", strconv.Itoa(defaultLimit))

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		utils.HandleServiceError(c, utils.ErrInvalidPage)
		return 0, 0, false
	}

	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 || limit > 100 {
		utils.HandleServiceError(c, utils.ErrInvalidPageSize)
		return 0, 0, false
	}
	return page, limit, true
}
