package services

import (
	"context"

	"github.com/google/uuid"

	"coursepulse/internal/models/db_models"
	"coursepulse/internal/models/response_models"
	"coursepulse/internal/repositories"
	"coursepulse/pkg/utils"
)

type FeedbackServiceInterface interface {
	CreateFeedback(ctx context.Context, studentID, courseID uuid.UUID, rating int, message string) (*response_models.FeedbackResponse, error)
	ListMyFeedback(ctx context.Context, studentID uuid.UUID, page, pageSize int) (*response_models.FeedbackPage, error)
	UpdateFeedback(ctx context.Context, studentID, feedbackID uuid.UUID, rating int, message string) (*response_models.FeedbackResponse, error)
	DeleteFeedback(ctx context.Context, studentID, feedbackID uuid.UUID) error
}

type FeedbackService struct {
	feedbackRepo repositories.FeedbackRepository
	courseRepo   repositories.CourseRepository
}

func NewFeedbackService(feedbackRepo repositories.FeedbackRepository, courseRepo repositories.CourseRepository) FeedbackServiceInterface {
	return &FeedbackService{feedbackRepo: feedbackRepo, courseRepo: courseRepo}
}

func (s *FeedbackService) CreateFeedback(ctx context.Context, studentID, courseID uuid.UUID, rating int, message string) (*response_models.FeedbackResponse, error) {
	if rating < 1 || rating > 5 {
		return nil, utils.ErrInvalidRating
	}

	course, err := s.courseRepo.FindByID(ctx, courseID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if course == nil {
		return nil, utils.ErrCourseNotFound
	}

	feedback := &db_models.Feedback{
		StudentID: studentID,
		CourseID:  courseID,
		Rating:    rating,
		Message:   message,
	}
	if err := s.feedbackRepo.Create(ctx, feedback); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := response_models.NewFeedbackResponse(feedback)
	return &resp, nil
}

func (s *FeedbackService) ListMyFeedback(ctx context.Context, studentID uuid.UUID, page, pageSize int) (*response_models.FeedbackPage, error) {
	feedbacks, total, err := s.feedbackRepo.ListByStudent(ctx, studentID, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	items := make([]response_models.FeedbackResponse, 0, len(feedbacks))
	for i := range feedbacks {
		items = append(items, response_models.NewFeedbackResponse(&feedbacks[i]))
	}

	return &response_models.FeedbackPage{
		Feedbacks:      items,
		CurrentPage:    page,
		TotalPages:     utils.TotalPages(total, pageSize),
		TotalFeedbacks: total,
	}, nil
}

func (s *FeedbackService) UpdateFeedback(ctx context.Context, studentID, feedbackID uuid.UUID, rating int, message string) (*response_models.FeedbackResponse, error) {
	if rating < 1 || rating > 5 {
		return nil, utils.ErrInvalidRating
	}

	feedback, err := s.feedbackRepo.FindOwned(ctx, feedbackID, studentID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if feedback == nil {
		return nil, utils.ErrFeedbackNotFound
	}

	feedback.Rating = rating
	feedback.Message = message
	if err := s.feedbackRepo.Update(ctx, feedback); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := response_models.NewFeedbackResponse(feedback)
	return &resp, nil
}

func (s *FeedbackService) DeleteFeedback(ctx context.Context, studentID, feedbackID uuid.UUID) error {
	deleted, err := s.feedbackRepo.DeleteOwned(ctx, feedbackID, studentID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !deleted {
		return utils.ErrFeedbackNotFound
	}
	return nil
}
