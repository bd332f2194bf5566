package services

import (
	"context"
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"coursepulse/internal/models/response_models"
	"coursepulse/internal/repositories"
	"coursepulse/pkg/utils"
)

// ExportColumns is the CSV header row for the feedback export.
var ExportColumns = []string{
	"Student Name", "Student Email", "Course", "Course Code", "Rating", "Message", "Date",
}

type AdminServiceInterface interface {
	ListStudents(ctx context.Context, search string, page, pageSize int) (*response_models.StudentPage, error)
	SetStudentBlocked(ctx context.Context, id uuid.UUID, blocked bool) (*response_models.AccountResponse, error)
	DeleteStudent(ctx context.Context, id uuid.UUID) error
	DashboardStats(ctx context.Context) (*response_models.DashboardStats, error)
	FeedbackStats(ctx context.Context) ([]response_models.CourseFeedbackStats, error)
	FeedbackTrend(ctx context.Context, days int) ([]response_models.TrendPoint, error)
	RatingDistribution(ctx context.Context) ([]response_models.RatingBucket, error)
	ExportFeedback(ctx context.Context) ([][]string, error)
}

type AdminService struct {
	userRepo      repositories.UserRepository
	analyticsRepo repositories.AnalyticsRepository
}

func NewAdminService(userRepo repositories.UserRepository, analyticsRepo repositories.AnalyticsRepository) AdminServiceInterface {
	return &AdminService{userRepo: userRepo, analyticsRepo: analyticsRepo}
}

func (s *AdminService) ListStudents(ctx context.Context, search string, page, pageSize int) (*response_models.StudentPage, error) {
	students, total, err := s.userRepo.ListStudents(ctx, search, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	items := make([]response_models.AccountResponse, 0, len(students))
	for i := range students {
		items = append(items, response_models.NewAccountResponse(&students[i]))
	}

	return &response_models.StudentPage{
		Students:      items,
		CurrentPage:   page,
		TotalPages:    utils.TotalPages(total, pageSize),
		TotalStudents: total,
	}, nil
}

func (s *AdminService) SetStudentBlocked(ctx context.Context, id uuid.UUID, blocked bool) (*response_models.AccountResponse, error) {
	user, err := s.userRepo.SetBlocked(ctx, id, blocked)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrAccountNotFound
	}
	user.Blocked = blocked
	resp := response_models.NewAccountResponse(user)
	return &resp, nil
}

func (s *AdminService) DeleteStudent(ctx context.Context, id uuid.UUID) error {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if user == nil {
		return utils.ErrAccountNotFound
	}
	if err := s.userRepo.DeleteWithFeedback(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *AdminService) DashboardStats(ctx context.Context) (*response_models.DashboardStats, error) {
	totalStudents, err := s.analyticsRepo.CountStudents(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	totalFeedback, err := s.analyticsRepo.CountFeedback(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	totalCourses, err := s.analyticsRepo.CountCourses(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	blockedStudents, err := s.analyticsRepo.CountBlockedStudents(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.DashboardStats{
		TotalStudents:   totalStudents,
		TotalFeedback:   totalFeedback,
		TotalCourses:    totalCourses,
		BlockedStudents: blockedStudents,
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func (s *AdminService) FeedbackStats(ctx context.Context) ([]response_models.CourseFeedbackStats, error) {
	rows, err := s.analyticsRepo.FeedbackStatsByCourse(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	stats := make([]response_models.CourseFeedbackStats, 0, len(rows))
	for _, r := range rows {
		stats = append(stats, response_models.CourseFeedbackStats{
			CourseName:    r.CourseTitle,
			CourseCode:    r.CourseCode,
			AvgRating:     round2(r.AvgRating),
			FeedbackCount: r.Count,
		})
	}
	return stats, nil
}

// FeedbackTrend buckets feedback per UTC calendar day over the lookback
// window. Days without feedback are omitted; the series is sparse.
func (s *AdminService) FeedbackTrend(ctx context.Context, days int) ([]response_models.TrendPoint, error) {
	if days <= 0 {
		days = 30
	}
	since := time.Now().UTC().AddDate(0, 0, -days)

	rows, err := s.analyticsRepo.FeedbackSince(ctx, since)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	type bucket struct {
		count int64
		sum   int64
	}
	buckets := make(map[string]*bucket)
	for _, r := range rows {
		day := r.CreatedAt.UTC().Format("2006-01-02")
		b, ok := buckets[day]
		if !ok {
			b = &bucket{}
			buckets[day] = b
		}
		b.count++
		b.sum += int64(r.Rating)
	}

	ordered := make([]string, 0, len(buckets))
	for day := range buckets {
		ordered = append(ordered, day)
	}
	sort.Strings(ordered)

	points := make([]response_models.TrendPoint, 0, len(ordered))
	for _, day := range ordered {
		b := buckets[day]
		points = append(points, response_models.TrendPoint{
			Date:      day,
			Count:     b.count,
			AvgRating: round2(float64(b.sum) / float64(b.count)),
		})
	}
	return points, nil
}

func (s *AdminService) RatingDistribution(ctx context.Context) ([]response_models.RatingBucket, error) {
	rows, err := s.analyticsRepo.RatingDistribution(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	dist := make([]response_models.RatingBucket, 0, len(rows))
	for _, r := range rows {
		dist = append(dist, response_models.RatingBucket{Rating: r.Rating, Count: r.Count})
	}
	return dist, nil
}

// ExportFeedback returns the header plus one record per feedback row, whole
// table in one pass. Acceptable only while the dataset stays small.
func (s *AdminService) ExportFeedback(ctx context.Context) ([][]string, error) {
	rows, err := s.analyticsRepo.ExportRows(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	records := make([][]string, 0, len(rows)+1)
	records = append(records, ExportColumns)
	for _, r := range rows {
		records = append(records, []string{
			r.StudentName,
			r.StudentEmail,
			r.CourseTitle,
			r.CourseCode,
			strconv.Itoa(r.Rating),
			r.Message,
			r.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return records, nil
}
