package feedback_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"coursepulse/internal/api/controllers"
	"coursepulse/internal/repositories"
	"coursepulse/internal/services"
)

var Module = fx.Provide(
	provideFeedbackRepo, provideFeedbackService, provideFeedbackController,
)

func provideFeedbackRepo(db *gorm.DB) repositories.FeedbackRepository {
	return repositories.NewFeedbackRepository(db)
}

func provideFeedbackService(feedbackRepo repositories.FeedbackRepository, courseRepo repositories.CourseRepository) services.FeedbackServiceInterface {
	return services.NewFeedbackService(feedbackRepo, courseRepo)
}

func provideFeedbackController(feedbackService services.FeedbackServiceInterface) *controllers.FeedbackController {
	return controllers.NewFeedbackController(feedbackService)
}
