package request_models

// role and email are deliberately absent: neither is writable through the
// profile path.
type UpdateProfileRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Phone       string `json:"phone" binding:"omitempty,e164|numeric"`
	DateOfBirth string `json:"dateOfBirth" binding:"omitempty,datetime=2006-01-02"`
	Address     string `json:"address" binding:"omitempty,max=500"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}
