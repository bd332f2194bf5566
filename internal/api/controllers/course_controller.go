package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"coursepulse/internal/models/request_models"
	"coursepulse/internal/services"
	"coursepulse/pkg/utils"
)

type CourseController struct {
	courseService services.CourseServiceInterface
}

func NewCourseController(courseService services.CourseServiceInterface) *CourseController {
	return &CourseController{courseService: courseService}
}

// ListCourses godoc
// @Summary List all courses
// @Tags Courses
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /courses [get]
func (cc *CourseController) ListCourses(c *gin.Context) {
	courses, err := cc.courseService.ListCourses(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, courses, "Courses fetched successfully")
}

// CreateCourse godoc
// @Summary Create a course (admin only)
// @Tags Courses
// @Accept json
// @Produce json
// @Param request body request_models.CreateCourseRequest true "Course payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /courses [post]
func (cc *CourseController) CreateCourse(c *gin.Context) {
	var req request_models.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, utils.CodeValidationError, "Invalid request format")
		return
	}

	course, err := cc.courseService.CreateCourse(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, course, "Course created successfully")
}

// UpdateCourse godoc
// @Summary Update a course (admin only)
// @Tags Courses
// @Accept json
// @Produce json
// @Param id path string true "Course id"
// @Param request body request_models.UpdateCourseRequest true "Course payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /courses/{id} [put]
func (cc *CourseController) UpdateCourse(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, utils.CodeValidationError, "Invalid course id")
		return
	}

	var req request_models.UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, utils.CodeValidationError, "Invalid request format")
		return
	}

	course, svcErr := cc.courseService.UpdateCourse(c.Request.Context(), id, req)
	if svcErr != nil {
		utils.HandleServiceError(c, svcErr)
		return
	}
	utils.RespondSuccess(c, course, "Course updated successfully")
}

// DeleteCourse godoc
// @Summary Delete a course (admin only)
// @Tags Courses
// @Param id path string true "Course id"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /courses/{id} [delete]
func (cc *CourseController) DeleteCourse(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, utils.CodeValidationError, "Invalid course id")
		return
	}

	if err := cc.courseService.DeleteCourse(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Course deleted")
}
