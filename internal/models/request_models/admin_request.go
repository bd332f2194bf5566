package request_models

type BlockStudentRequest struct {
	Blocked *bool `json:"blocked" binding:"required"`
}
