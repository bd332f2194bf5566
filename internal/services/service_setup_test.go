package services

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"coursepulse/internal/models/db_models"
	"coursepulse/pkg/utils"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&db_models.User{},
		&db_models.Course{},
		&db_models.Feedback{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name, email string, role db_models.Role) *db_models.User {
	t.Helper()

	hash, err := utils.HashPassword("password123")
	require.NoError(t, err)

	user := &db_models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedCourse(t *testing.T, db *gorm.DB, title, code string) *db_models.Course {
	t.Helper()

	course := &db_models.Course{Title: title, Code: code}
	require.NoError(t, db.Create(course).Error)
	return course
}

func seedFeedback(t *testing.T, db *gorm.DB, studentID, courseID uuid.UUID, rating int, createdAt time.Time) *db_models.Feedback {
	t.Helper()

	feedback := &db_models.Feedback{
		StudentID: studentID,
		CourseID:  courseID,
		Rating:    rating,
		Message:   "seeded feedback",
	}
	feedback.CreatedAt = createdAt
	require.NoError(t, db.Create(feedback).Error)
	return feedback
}
