package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"coursepulse/internal/models/db_models"
)

type AnalyticsRepository interface {
	// Dashboard counts. Four independent queries; callers accept that the
	// numbers are not a consistent snapshot under concurrent writes.
	CountStudents(ctx context.Context) (int64, error)
	CountBlockedStudents(ctx context.Context) (int64, error)
	CountFeedback(ctx context.Context) (int64, error)
	CountCourses(ctx context.Context) (int64, error)

	// Aggregates.
	FeedbackStatsByCourse(ctx context.Context) ([]CourseStatsRow, error)
	RatingDistribution(ctx context.Context) ([]RatingCountRow, error)
	FeedbackSince(ctx context.Context, since time.Time) ([]TrendSourceRow, error)

	// Full-table export join.
	ExportRows(ctx context.Context) ([]ExportRow, error)
}

type analyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

// ---------- Row helpers ----------

type CourseStatsRow struct {
	CourseTitle string  `gorm:"column:course_title"`
	CourseCode  string  `gorm:"column:course_code"`
	AvgRating   float64 `gorm:"column:avg_rating"`
	Count       int64   `gorm:"column:count"`
}

type RatingCountRow struct {
	Rating int   `gorm:"column:rating"`
	Count  int64 `gorm:"column:count"`
}

type TrendSourceRow struct {
	CreatedAt time.Time `gorm:"column:created_at"`
	Rating    int       `gorm:"column:rating"`
}

type ExportRow struct {
	StudentName  string    `gorm:"column:student_name"`
	StudentEmail string    `gorm:"column:student_email"`
	CourseTitle  string    `gorm:"column:course_title"`
	CourseCode   string    `gorm:"column:course_code"`
	Rating       int       `gorm:"column:rating"`
	Message      string    `gorm:"column:message"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

// ---------- Counts ----------

func (r *analyticsRepository) CountStudents(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&db_models.User{}).
		Where("role = ?", db_models.RoleStudent).
		Count(&n).Error
	return n, err
}

func (r *analyticsRepository) CountBlockedStudents(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&db_models.User{}).
		Where("role = ? AND blocked = ?", db_models.RoleStudent, true).
		Count(&n).Error
	return n, err
}

func (r *analyticsRepository) CountFeedback(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db_models.Feedback{}).Count(&n).Error
	return n, err
}

func (r *analyticsRepository) CountCourses(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db_models.Course{}).Count(&n).Error
	return n, err
}

// ---------- Aggregates ----------

// FeedbackStatsByCourse groups existing feedback by course; courses without
// feedback never appear.
func (r *analyticsRepository) FeedbackStatsByCourse(ctx context.Context) ([]CourseStatsRow, error) {
	var rows []CourseStatsRow
	err := r.db.WithContext(ctx).
		Table("feedbacks f").
		Select(`
			c.title AS course_title,
			c.code AS course_code,
			AVG(f.rating) AS avg_rating,
			COUNT(*) AS count`).
		Joins("JOIN courses c ON c.id = f.course_id").
		Group("c.id, c.title, c.code").
		Order("count DESC").
		Find(&rows).Error
	return rows, err
}

func (r *analyticsRepository) RatingDistribution(ctx context.Context) ([]RatingCountRow, error) {
	var rows []RatingCountRow
	err := r.db.WithContext(ctx).
		Table("feedbacks").
		Select("rating, COUNT(*) AS count").
		Group("rating").
		Order("rating ASC").
		Find(&rows).Error
	return rows, err
}

// FeedbackSince returns the raw rows inside the lookback window; day
// bucketing happens in the service so the query stays portable.
func (r *analyticsRepository) FeedbackSince(ctx context.Context, since time.Time) ([]TrendSourceRow, error) {
	var rows []TrendSourceRow
	err := r.db.WithContext(ctx).
		Table("feedbacks").
		Select("created_at, rating").
		Where("created_at >= ?", since).
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}

// ---------- Export ----------

func (r *analyticsRepository) ExportRows(ctx context.Context) ([]ExportRow, error) {
	var rows []ExportRow
	err := r.db.WithContext(ctx).
		Table("feedbacks f").
		Select(`
			u.name AS student_name,
			u.email AS student_email,
			c.title AS course_title,
			c.code AS course_code,
			f.rating,
			f.message,
			f.created_at`).
		Joins("JOIN users u ON u.id = f.student_id").
		Joins("JOIN courses c ON c.id = f.course_id").
		Order("f.created_at DESC").
		Find(&rows).Error
	return rows, err
}
