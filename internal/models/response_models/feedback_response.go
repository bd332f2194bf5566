package response_models

import (
	"time"

	"coursepulse/internal/models/db_models"
)

type CourseRef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Code  string `json:"code"`
}

type FeedbackResponse struct {
	ID        string    `json:"id"`
	Course    CourseRef `json:"course"`
	Rating    int       `json:"rating"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type FeedbackPage struct {
	Feedbacks      []FeedbackResponse `json:"feedbacks"`
	CurrentPage    int                `json:"currentPage"`
	TotalPages     int                `json:"totalPages"`
	TotalFeedbacks int64              `json:"totalFeedbacks"`
}

func NewFeedbackResponse(f *db_models.Feedback) FeedbackResponse {
	return FeedbackResponse{
		ID: f.ID.String(),
		Course: CourseRef{
			ID:    f.Course.ID.String(),
			Title: f.Course.Title,
			Code:  f.Course.Code,
		},
		Rating:    f.Rating,
		Message:   f.Message,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}
