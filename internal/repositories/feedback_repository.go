package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"coursepulse/internal/models/db_models"
)

type FeedbackRepository interface {
	Create(ctx context.Context, feedback *db_models.Feedback) error
	FindOwned(ctx context.Context, id, studentID uuid.UUID) (*db_models.Feedback, error)
	ListByStudent(ctx context.Context, studentID uuid.UUID, page, pageSize int) ([]db_models.Feedback, int64, error)
	Update(ctx context.Context, feedback *db_models.Feedback) error
	DeleteOwned(ctx context.Context, id, studentID uuid.UUID) (bool, error)
}

type feedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) Create(ctx context.Context, feedback *db_models.Feedback) error {
	if err := r.db.WithContext(ctx).Create(feedback).Error; err != nil {
		return err
	}
	// Resolve the course reference for the display projection.
	return r.db.WithContext(ctx).
		First(&feedback.Course, "id = ?", feedback.CourseID).Error
}

// FindOwned scopes the lookup to the caller, so an absent id and an id owned
// by someone else are indistinguishable.
func (r *feedbackRepository) FindOwned(ctx context.Context, id, studentID uuid.UUID) (*db_models.Feedback, error) {
	var feedback db_models.Feedback
	err := r.db.WithContext(ctx).
		Preload("Course").
		Where("id = ? AND student_id = ?", id, studentID).
		First(&feedback).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &feedback, nil
}

func (r *feedbackRepository) ListByStudent(ctx context.Context, studentID uuid.UUID, page, pageSize int) ([]db_models.Feedback, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&db_models.Feedback{}).
		Where("student_id = ?", studentID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var feedbacks []db_models.Feedback
	err := r.db.WithContext(ctx).
		Preload("Course").
		Where("student_id = ?", studentID).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&feedbacks).Error
	return feedbacks, total, err
}

// Update writes the editable columns only; updating through the model
// instance keeps the struct's UpdatedAt in step with the row.
func (r *feedbackRepository) Update(ctx context.Context, feedback *db_models.Feedback) error {
	return r.db.WithContext(ctx).
		Model(feedback).
		Updates(map[string]interface{}{
			"rating":  feedback.Rating,
			"message": feedback.Message,
		}).Error
}

func (r *feedbackRepository) DeleteOwned(ctx context.Context, id, studentID uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND student_id = ?", id, studentID).
		Delete(&db_models.Feedback{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
