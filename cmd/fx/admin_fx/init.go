package admin_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"coursepulse/internal/api/controllers"
	"coursepulse/internal/repositories"
	"coursepulse/internal/services"
)

var Module = fx.Provide(
	provideAnalyticsRepo, provideAdminService, provideAdminController,
)

func provideAnalyticsRepo(db *gorm.DB) repositories.AnalyticsRepository {
	return repositories.NewAnalyticsRepository(db)
}

func provideAdminService(userRepo repositories.UserRepository, analyticsRepo repositories.AnalyticsRepository) services.AdminServiceInterface {
	return services.NewAdminService(userRepo, analyticsRepo)
}

func provideAdminController(adminService services.AdminServiceInterface) *controllers.AdminController {
	return controllers.NewAdminController(adminService)
}
