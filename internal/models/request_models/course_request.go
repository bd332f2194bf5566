package request_models

type CreateCourseRequest struct {
	Title       string `json:"title" binding:"required,min=2,max=200"`
	Code        string `json:"code" binding:"required,min=2,max=20"`
	Description string `json:"description"`
}

type UpdateCourseRequest struct {
	Title       string `json:"title" binding:"required,min=2,max=200"`
	Code        string `json:"code" binding:"required,min=2,max=20"`
	Description string `json:"description"`
}
