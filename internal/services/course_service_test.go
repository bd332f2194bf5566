package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"coursepulse/internal/models/request_models"
	"coursepulse/internal/repositories"
	"coursepulse/pkg/utils"
)

func newCourseService(t *testing.T) (CourseServiceInterface, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	return NewCourseService(repositories.NewCourseRepository(db)), db
}

func TestCreateCourse(t *testing.T) {
	svc, _ := newCourseService(t)
	ctx := context.Background()

	course, err := svc.CreateCourse(ctx, request_models.CreateCourseRequest{
		Title: "Algorithms", Code: "CS201", Description: "Sorting and graphs",
	})
	require.NoError(t, err)
	require.Equal(t, "Algorithms", course.Title)
	require.NotEqual(t, uuid.Nil, course.ID)
}

func TestCreateCourseConflict(t *testing.T) {
	svc, _ := newCourseService(t)
	ctx := context.Background()

	_, err := svc.CreateCourse(ctx, request_models.CreateCourseRequest{Title: "Algorithms", Code: "CS201"})
	require.NoError(t, err)

	// Either a duplicate title or a duplicate code blocks the create.
	_, err = svc.CreateCourse(ctx, request_models.CreateCourseRequest{Title: "Algorithms", Code: "CS999"})
	require.ErrorIs(t, err, utils.ErrCourseExists)
	_, err = svc.CreateCourse(ctx, request_models.CreateCourseRequest{Title: "Other", Code: "CS201"})
	require.ErrorIs(t, err, utils.ErrCourseExists)
}

func TestUpdateCourse(t *testing.T) {
	svc, _ := newCourseService(t)
	ctx := context.Background()

	course, err := svc.CreateCourse(ctx, request_models.CreateCourseRequest{Title: "Algorithms", Code: "CS201"})
	require.NoError(t, err)
	other, err := svc.CreateCourse(ctx, request_models.CreateCourseRequest{Title: "Databases", Code: "CS301"})
	require.NoError(t, err)

	// Keeping its own title is not a conflict.
	updated, err := svc.UpdateCourse(ctx, course.ID, request_models.UpdateCourseRequest{
		Title: "Algorithms", Code: "CS201", Description: "now with descriptions",
	})
	require.NoError(t, err)
	require.Equal(t, "now with descriptions", updated.Description)

	// Taking another course's code is.
	_, err = svc.UpdateCourse(ctx, course.ID, request_models.UpdateCourseRequest{
		Title: "Algorithms", Code: other.Code,
	})
	require.ErrorIs(t, err, utils.ErrCourseExists)

	_, err = svc.UpdateCourse(ctx, uuid.New(), request_models.UpdateCourseRequest{
		Title: "Ghost", Code: "CS000",
	})
	require.ErrorIs(t, err, utils.ErrCourseNotFound)
}

func TestDeleteCourse(t *testing.T) {
	svc, _ := newCourseService(t)
	ctx := context.Background()

	course, err := svc.CreateCourse(ctx, request_models.CreateCourseRequest{Title: "Algorithms", Code: "CS201"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCourse(ctx, course.ID))
	require.ErrorIs(t, svc.DeleteCourse(ctx, course.ID), utils.ErrCourseNotFound)

	courses, err := svc.ListCourses(ctx)
	require.NoError(t, err)
	require.Empty(t, courses)
}
