package services

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"gorm.io/gorm"

	"coursepulse/internal/models/db_models"
	"coursepulse/pkg/utils"
)

const (
	defaultAdminEmail    = "admin@example.com"
	defaultAdminPassword = "Admin@123"

	seedStudentCount  = 20
	seedBlockedCount  = 2
	seedFeedbackCount = 100
	seedLookbackDays  = 90
)

var seedCourses = []db_models.Course{
	{Title: "Web Development", Code: "CS101", Description: "Learn HTML, CSS, JavaScript and modern web frameworks"},
	{Title: "Data Structures", Code: "CS102", Description: "Fundamental data structures and algorithms"},
	{Title: "Database Systems", Code: "CS103", Description: "SQL, NoSQL, and database design principles"},
	{Title: "Machine Learning", Code: "CS104", Description: "Introduction to ML algorithms and applications"},
	{Title: "Computer Networks", Code: "CS201", Description: "Network protocols, security, and architecture"},
	{Title: "Software Engineering", Code: "CS202", Description: "Software development methodologies and practices"},
	{Title: "Artificial Intelligence", Code: "CS301", Description: "AI concepts, neural networks, and expert systems"},
	{Title: "Cloud Computing", Code: "CS302", Description: "Cloud platforms, services, and deployment"},
}

var seedFeedbackMessages = []string{
	"Excellent course! The instructor was very knowledgeable and engaging.",
	"Good content, but the pace was a bit too fast for beginners.",
	"Loved the practical assignments. Really helped solidify the concepts.",
	"The course material could use more real-world examples.",
	"Outstanding course! Would highly recommend to others.",
	"The projects were challenging but very rewarding.",
	"Some topics felt rushed. Would benefit from more detailed explanations.",
	"Great balance between theory and practical applications.",
	"The instructor was very responsive to questions and provided helpful feedback.",
	"Course content was relevant and up-to-date with industry standards.",
	"Would have liked more interactive sessions and group discussions.",
	"The assessments were fair and tested understanding effectively.",
	"Some technical issues with the online platform, but overall good experience.",
	"The course exceeded my expectations in terms of content and delivery.",
	"Well-structured curriculum with clear learning objectives.",
}

type SeedSummary struct {
	AdminEmail      string
	Students        int64
	BlockedStudents int64
	Courses         int64
	Feedback        int64
}

// SeedService loads the demo dataset: one admin account, twenty students
// (two of them blocked), the course catalog and randomized feedback spread
// over the last ninety days. Seeding wipes all existing data first.
type SeedService struct {
	db *gorm.DB
}

func NewSeedService(db *gorm.DB) *SeedService {
	return &SeedService{db: db}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func (s *SeedService) Seed(ctx context.Context) (*SeedSummary, error) {
	db := s.db.WithContext(ctx)

	wipe := db.Session(&gorm.Session{AllowGlobalUpdate: true})
	for _, model := range []interface{}{
		&db_models.Feedback{}, &db_models.Course{}, &db_models.User{},
	} {
		if err := wipe.Delete(model).Error; err != nil {
			return nil, err
		}
	}

	adminEmail := envOr("ADMIN_EMAIL", defaultAdminEmail)
	adminHash, err := utils.HashPassword(envOr("ADMIN_PASSWORD", defaultAdminPassword))
	if err != nil {
		return nil, err
	}
	adminDOB := time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)
	admin := &db_models.User{
		Name:         "Admin User",
		Email:        adminEmail,
		PasswordHash: adminHash,
		Role:         db_models.RoleAdmin,
		Phone:        "+1-555-0101",
		Address:      "123 Admin Blvd, Admin City, AC 12345",
		DateOfBirth:  &adminDOB,
	}
	if err := db.Create(admin).Error; err != nil {
		return nil, err
	}

	students := make([]*db_models.User, 0, seedStudentCount)
	for i := 1; i <= seedStudentCount; i++ {
		hash, err := utils.HashPassword(fmt.Sprintf("Student%d@123", i))
		if err != nil {
			return nil, err
		}
		dob := time.Date(1995+(i%5), time.Month(i%12+1), (i%28)+1, 0, 0, 0, 0, time.UTC)
		student := &db_models.User{
			Name:         fmt.Sprintf("Student %d", i),
			Email:        fmt.Sprintf("student%d@example.com", i),
			PasswordHash: hash,
			Role:         db_models.RoleStudent,
			Blocked:      i <= seedBlockedCount,
			Phone:        fmt.Sprintf("+1-555-%d-%d", 100+i, 1000+i),
			Address:      fmt.Sprintf("%d Main St, City, State %d", 100+i, 10000+i),
			DateOfBirth:  &dob,
		}
		if err := db.Create(student).Error; err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	courses := make([]*db_models.Course, 0, len(seedCourses))
	for _, c := range seedCourses {
		course := c
		if err := db.Create(&course).Error; err != nil {
			return nil, err
		}
		courses = append(courses, &course)
	}

	now := time.Now().UTC()
	window := int64(seedLookbackDays) * int64(24*time.Hour)
	for i := 0; i < seedFeedbackCount; i++ {
		feedback := &db_models.Feedback{
			StudentID: students[rand.Intn(len(students))].ID,
			CourseID:  courses[rand.Intn(len(courses))].ID,
			Rating:    rand.Intn(5) + 1,
			Message:   seedFeedbackMessages[rand.Intn(len(seedFeedbackMessages))],
		}
		feedback.CreatedAt = now.Add(-time.Duration(rand.Int63n(window)))
		if err := db.Create(feedback).Error; err != nil {
			return nil, err
		}
	}

	summary := &SeedSummary{AdminEmail: adminEmail}
	if err := db.Model(&db_models.User{}).
		Where("role = ?", db_models.RoleStudent).
		Count(&summary.Students).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&db_models.User{}).
		Where("role = ? AND blocked = ?", db_models.RoleStudent, true).
		Count(&summary.BlockedStudents).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&db_models.Course{}).Count(&summary.Courses).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&db_models.Feedback{}).Count(&summary.Feedback).Error; err != nil {
		return nil, err
	}
	return summary, nil
}
