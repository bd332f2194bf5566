package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"coursepulse/internal/models/db_models"
)

type CourseRepository interface {
	Insert(ctx context.Context, course *db_models.Course) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Course, error)
	FindByTitleOrCode(ctx context.Context, title, code string) (*db_models.Course, error)
	ListAll(ctx context.Context) ([]db_models.Course, error)
	Update(ctx context.Context, course *db_models.Course) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type courseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) Insert(ctx context.Context, course *db_models.Course) error {
	return r.db.WithContext(ctx).Create(course).Error
}

func (r *courseRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Course, error) {
	var course db_models.Course
	err := r.db.WithContext(ctx).First(&course, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &course, nil
}

func (r *courseRepository) FindByTitleOrCode(ctx context.Context, title, code string) (*db_models.Course, error) {
	var course db_models.Course
	err := r.db.WithContext(ctx).
		Where("title = ? OR code = ?", title, code).
		First(&course).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &course, nil
}

func (r *courseRepository) ListAll(ctx context.Context) ([]db_models.Course, error) {
	var courses []db_models.Course
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&courses).Error
	return courses, err
}

func (r *courseRepository) Update(ctx context.Context, course *db_models.Course) error {
	return r.db.WithContext(ctx).Save(course).Error
}

func (r *courseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&db_models.Course{}).Error
}
