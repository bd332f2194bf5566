package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"coursepulse/internal/models/db_models"
	"coursepulse/internal/models/request_models"
	"coursepulse/internal/repositories"
	"coursepulse/pkg/utils"
)

type CourseServiceInterface interface {
	CreateCourse(ctx context.Context, request request_models.CreateCourseRequest) (*db_models.Course, error)
	ListCourses(ctx context.Context) ([]db_models.Course, error)
	UpdateCourse(ctx context.Context, id uuid.UUID, request request_models.UpdateCourseRequest) (*db_models.Course, error)
	DeleteCourse(ctx context.Context, id uuid.UUID) error
}

type CourseService struct {
	courseRepo repositories.CourseRepository
}

func NewCourseService(courseRepo repositories.CourseRepository) CourseServiceInterface {
	return &CourseService{courseRepo: courseRepo}
}

func (s *CourseService) CreateCourse(ctx context.Context, request request_models.CreateCourseRequest) (*db_models.Course, error) {
	existing, err := s.courseRepo.FindByTitleOrCode(ctx, request.Title, request.Code)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrCourseExists
	}

	course := &db_models.Course{
		Title:       request.Title,
		Code:        request.Code,
		Description: request.Description,
	}
	if err := s.courseRepo.Insert(ctx, course); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrCourseExists
		}
		return nil, utils.ErrDatabaseError
	}
	return course, nil
}

func (s *CourseService) ListCourses(ctx context.Context) ([]db_models.Course, error) {
	courses, err := s.courseRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return courses, nil
}

func (s *CourseService) UpdateCourse(ctx context.Context, id uuid.UUID, request request_models.UpdateCourseRequest) (*db_models.Course, error) {
	course, err := s.courseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if course == nil {
		return nil, utils.ErrCourseNotFound
	}

	conflict, err := s.courseRepo.FindByTitleOrCode(ctx, request.Title, request.Code)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if conflict != nil && conflict.ID != course.ID {
		return nil, utils.ErrCourseExists
	}

	course.Title = request.Title
	course.Code = request.Code
	course.Description = request.Description
	if err := s.courseRepo.Update(ctx, course); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrCourseExists
		}
		return nil, utils.ErrDatabaseError
	}
	return course, nil
}

func (s *CourseService) DeleteCourse(ctx context.Context, id uuid.UUID) error {
	course, err := s.courseRepo.FindByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if course == nil {
		return utils.ErrCourseNotFound
	}
	if err := s.courseRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
