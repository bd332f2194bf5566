package request_models

type CreateFeedbackRequest struct {
	Course  string `json:"course" binding:"required,uuid"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Message string `json:"message"`
}

type UpdateFeedbackRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Message string `json:"message"`
}
