package response_models

type StudentPage struct {
	Students      []AccountResponse `json:"students"`
	CurrentPage   int               `json:"currentPage"`
	TotalPages    int               `json:"totalPages"`
	TotalStudents int64             `json:"totalStudents"`
}

// DashboardStats holds four independent counts; they are not a consistent
// snapshot under concurrent writes.
type DashboardStats struct {
	TotalStudents   int64 `json:"totalStudents"`
	TotalFeedback   int64 `json:"totalFeedback"`
	TotalCourses    int64 `json:"totalCourses"`
	BlockedStudents int64 `json:"blockedStudents"`
}

type CourseFeedbackStats struct {
	CourseName    string  `json:"courseName"`
	CourseCode    string  `json:"courseCode"`
	AvgRating     float64 `json:"avgRating"`
	FeedbackCount int64   `json:"feedbackCount"`
}

// TrendPoint is one UTC calendar day with at least one feedback entry.
type TrendPoint struct {
	Date      string  `json:"date"` // YYYY-MM-DD
	Count     int64   `json:"count"`
	AvgRating float64 `json:"avgRating"`
}

type RatingBucket struct {
	Rating int   `json:"rating"`
	Count  int64 `json:"count"`
}
