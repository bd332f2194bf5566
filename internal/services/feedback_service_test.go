package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"coursepulse/internal/models/db_models"
	"coursepulse/internal/repositories"
	"coursepulse/pkg/utils"
)

func newFeedbackService(t *testing.T) (FeedbackServiceInterface, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	svc := NewFeedbackService(
		repositories.NewFeedbackRepository(db),
		repositories.NewCourseRepository(db),
	)
	return svc, db
}

func TestCreateFeedback(t *testing.T) {
	svc, db := newFeedbackService(t)
	ctx := context.Background()

	student := seedUser(t, db, "Alice", "alice@example.com", db_models.RoleStudent)
	course := seedCourse(t, db, "Algorithms", "CS201")

	resp, err := svc.CreateFeedback(ctx, student.ID, course.ID, 4, "solid course")
	require.NoError(t, err)
	require.Equal(t, 4, resp.Rating)
	require.Equal(t, "solid course", resp.Message)
	require.Equal(t, "Algorithms", resp.Course.Title)
	require.Equal(t, "CS201", resp.Course.Code)
}

func TestCreateFeedbackRatingOutOfRange(t *testing.T) {
	svc, db := newFeedbackService(t)
	ctx := context.Background()

	student := seedUser(t, db, "Alice", "alice@example.com", db_models.RoleStudent)
	course := seedCourse(t, db, "Algorithms", "CS201")

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.CreateFeedback(ctx, student.ID, course.ID, rating, "")
		require.ErrorIs(t, err, utils.ErrInvalidRating)
	}
}

func TestCreateFeedbackUnknownCourse(t *testing.T) {
	svc, db := newFeedbackService(t)

	student := seedUser(t, db, "Alice", "alice@example.com", db_models.RoleStudent)

	_, err := svc.CreateFeedback(context.Background(), student.ID, uuid.New(), 3, "")
	require.ErrorIs(t, err, utils.ErrCourseNotFound)
}

func TestListMyFeedbackPagination(t *testing.T) {
	svc, db := newFeedbackService(t)
	ctx := context.Background()

	student := seedUser(t, db, "Alice", "alice@example.com", db_models.RoleStudent)
	other := seedUser(t, db, "Bob", "bob@example.com", db_models.RoleStudent)
	course := seedCourse(t, db, "Algorithms", "CS201")

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		seedFeedback(t, db, student.ID, course.ID, 3, base.Add(time.Duration(i)*time.Hour))
	}
	// Another student's feedback never leaks into the page.
	seedFeedback(t, db, other.ID, course.ID, 5, base)

	page, err := svc.ListMyFeedback(ctx, student.ID, 1, 5)
	require.NoError(t, err)
	require.Len(t, page.Feedbacks, 5)
	require.Equal(t, 1, page.CurrentPage)
	require.Equal(t, 2, page.TotalPages)
	require.Equal(t, int64(7), page.TotalFeedbacks)

	// Newest first.
	require.True(t, page.Feedbacks[0].CreatedAt.After(page.Feedbacks[4].CreatedAt))

	page2, err := svc.ListMyFeedback(ctx, student.ID, 2, 5)
	require.NoError(t, err)
	require.Len(t, page2.Feedbacks, 2)

	// A page past the end is empty, not an error.
	page3, err := svc.ListMyFeedback(ctx, student.ID, 3, 5)
	require.NoError(t, err)
	require.Empty(t, page3.Feedbacks)
	require.Equal(t, int64(7), page3.TotalFeedbacks)
}

func TestUpdateFeedbackOwnershipScoped(t *testing.T) {
	svc, db := newFeedbackService(t)
	ctx := context.Background()

	alice := seedUser(t, db, "Alice", "alice@example.com", db_models.RoleStudent)
	bob := seedUser(t, db, "Bob", "bob@example.com", db_models.RoleStudent)
	course := seedCourse(t, db, "Algorithms", "CS201")

	fb := seedFeedback(t, db, alice.ID, course.ID, 3, time.Now().UTC())

	// The owner can update.
	resp, err := svc.UpdateFeedback(ctx, alice.ID, fb.ID, 5, "revised")
	require.NoError(t, err)
	require.Equal(t, 5, resp.Rating)
	require.Equal(t, "revised", resp.Message)

	// Someone else's entry and a nonexistent one fail identically.
	_, err = svc.UpdateFeedback(ctx, bob.ID, fb.ID, 2, "")
	require.ErrorIs(t, err, utils.ErrFeedbackNotFound)
	_, err = svc.UpdateFeedback(ctx, alice.ID, uuid.New(), 2, "")
	require.ErrorIs(t, err, utils.ErrFeedbackNotFound)
}

func TestUpdateFeedbackRefreshesUpdatedAt(t *testing.T) {
	svc, db := newFeedbackService(t)
	ctx := context.Background()

	alice := seedUser(t, db, "Alice", "alice@example.com", db_models.RoleStudent)
	course := seedCourse(t, db, "Algorithms", "CS201")
	fb := seedFeedback(t, db, alice.ID, course.ID, 3, time.Now().UTC().Add(-time.Hour))

	resp, err := svc.UpdateFeedback(ctx, alice.ID, fb.ID, 4, "later thoughts")
	require.NoError(t, err)

	// The response timestamp tracks the row, not the pre-update struct.
	var reloaded db_models.Feedback
	require.NoError(t, db.First(&reloaded, "id = ?", fb.ID).Error)
	require.WithinDuration(t, reloaded.UpdatedAt, resp.UpdatedAt, time.Second)
	require.True(t, resp.UpdatedAt.After(fb.CreatedAt))
}

func TestUpdateFeedbackRatingOutOfRange(t *testing.T) {
	svc, db := newFeedbackService(t)

	alice := seedUser(t, db, "Alice", "alice@example.com", db_models.RoleStudent)
	course := seedCourse(t, db, "Algorithms", "CS201")
	fb := seedFeedback(t, db, alice.ID, course.ID, 3, time.Now().UTC())

	_, err := svc.UpdateFeedback(context.Background(), alice.ID, fb.ID, 6, "")
	require.ErrorIs(t, err, utils.ErrInvalidRating)
}

func TestDeleteFeedbackOwnershipScoped(t *testing.T) {
	svc, db := newFeedbackService(t)
	ctx := context.Background()

	alice := seedUser(t, db, "Alice", "alice@example.com", db_models.RoleStudent)
	bob := seedUser(t, db, "Bob", "bob@example.com", db_models.RoleStudent)
	course := seedCourse(t, db, "Algorithms", "CS201")
	fb := seedFeedback(t, db, alice.ID, course.ID, 3, time.Now().UTC())

	require.ErrorIs(t, svc.DeleteFeedback(ctx, bob.ID, fb.ID), utils.ErrFeedbackNotFound)
	require.NoError(t, svc.DeleteFeedback(ctx, alice.ID, fb.ID))

	// Gone for real; a second delete reports not found.
	require.ErrorIs(t, svc.DeleteFeedback(ctx, alice.ID, fb.ID), utils.ErrFeedbackNotFound)
}
