package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"coursepulse/internal/api/controllers"
	"coursepulse/internal/repositories"
	"coursepulse/internal/services"
)

var Module = fx.Provide(
	provideUserRepo, provideAccountService, provideAuthController, provideProfileController,
)

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideAccountService(userRepo repositories.UserRepository) services.AccountServiceInterface {
	return services.NewAccountService(userRepo)
}

func provideAuthController(accountService services.AccountServiceInterface) *controllers.AuthController {
	return controllers.NewAuthController(accountService)
}

func provideProfileController(accountService services.AccountServiceInterface) *controllers.ProfileController {
	return controllers.NewProfileController(accountService)
}
