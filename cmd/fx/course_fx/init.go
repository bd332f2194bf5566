package course_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"coursepulse/internal/api/controllers"
	"coursepulse/internal/repositories"
	"coursepulse/internal/services"
)

var Module = fx.Provide(
	provideCourseRepo, provideCourseService, provideCourseController,
)

func provideCourseRepo(db *gorm.DB) repositories.CourseRepository {
	return repositories.NewCourseRepository(db)
}

func provideCourseService(courseRepo repositories.CourseRepository) services.CourseServiceInterface {
	return services.NewCourseService(courseRepo)
}

func provideCourseController(courseService services.CourseServiceInterface) *controllers.CourseController {
	return controllers.NewCourseController(courseService)
}
