package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"coursepulse/internal/models/request_models"
	"coursepulse/internal/services"
	"coursepulse/pkg/middleware"
	"coursepulse/pkg/utils"
)

type ProfileController struct {
	accountService services.AccountServiceInterface
}

func NewProfileController(accountService services.AccountServiceInterface) *ProfileController {
	return &ProfileController{accountService: accountService}
}

// GetProfile godoc
// @Summary Get the caller's profile
// @Tags Profile
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /profile [get]
func (p *ProfileController) GetProfile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, utils.CodeUnauthenticated, "Authentication required")
		return
	}

	profile, err := p.accountService.GetProfile(c.Request.Context(), user.ID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profile, "Profile fetched successfully")
}

// UpdateProfile godoc
// @Summary Update the caller's profile fields
// @Tags Profile
// @Accept json
// @Produce json
// @Param request body request_models.UpdateProfileRequest true "Profile payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /profile [put]
func (p *ProfileController) UpdateProfile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, utils.CodeUnauthenticated, "Authentication required")
		return
	}

	var req request_models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, utils.CodeValidationError, "Invalid request format")
		return
	}

	profile, err := p.accountService.UpdateProfile(c.Request.Context(), user.ID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profile, "Profile updated successfully")
}

// ChangePassword godoc
// @Summary Change the caller's password
// @Tags Profile
// @Accept json
// @Produce json
// @Param request body request_models.ChangePasswordRequest true "Password payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /profile/change-password [put]
func (p *ProfileController) ChangePassword(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, utils.CodeUnauthenticated, "Authentication required")
		return
	}

	var req request_models.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, utils.CodeValidationError, "Invalid request format")
		return
	}

	if fieldErrors := utils.ValidatePasswordStrength(req.NewPassword); len(fieldErrors) > 0 {
		utils.RespondValidationError(c, fieldErrors)
		return
	}

	if err := p.accountService.ChangePassword(c.Request.Context(), user.ID, req.CurrentPassword, req.NewPassword); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Password updated successfully")
}
