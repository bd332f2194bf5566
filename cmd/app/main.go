package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"coursepulse/cmd/fx/account_fx"
	"coursepulse/cmd/fx/admin_fx"
	"coursepulse/cmd/fx/course_fx"
	"coursepulse/cmd/fx/db_fx"
	"coursepulse/cmd/fx/feedback_fx"
	"coursepulse/internal/api/controllers"
	"coursepulse/internal/models/db_models"
	"coursepulse/internal/repositories"
	"coursepulse/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Notice: .env file not found, using system environment variables")
	}

	app := fx.New(
		db_fx.Module,
		account_fx.Module,
		course_fx.Module,
		feedback_fx.Module,
		admin_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				addr := ":" + os.Getenv("PORT")
				log.Printf("Starting HTTP server at %s", addr)
				if err := engine.Run(addr); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	userRepo repositories.UserRepository,
	authController *controllers.AuthController,
	profileController *controllers.ProfileController,
	courseController *controllers.CourseController,
	feedbackController *controllers.FeedbackController,
	adminController *controllers.AdminController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, userRepo, authController, profileController, courseController, feedbackController, adminController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	userRepo repositories.UserRepository,
	authController *controllers.AuthController,
	profileController *controllers.ProfileController,
	courseController *controllers.CourseController,
	feedbackController *controllers.FeedbackController,
	adminController *controllers.AdminController) {

	authGate := middleware.AuthMiddleware(userRepo)
	adminOnly := middleware.RequireRole(db_models.RoleAdmin)

	authGroup := r.Group("/auth")
	authGroup.POST("/signup", authController.Signup)
	authGroup.POST("/login", authController.Login)

	courseGroup := r.Group("/courses", authGate)
	courseGroup.GET("", courseController.ListCourses)
	courseGroup.POST("", adminOnly, courseController.CreateCourse)
	courseGroup.PUT("/:id", adminOnly, courseController.UpdateCourse)
	courseGroup.DELETE("/:id", adminOnly, courseController.DeleteCourse)

	feedbackGroup := r.Group("/feedback", authGate)
	feedbackGroup.POST("", feedbackController.CreateFeedback)
	feedbackGroup.GET("/my", feedbackController.ListMyFeedback)
	feedbackGroup.PUT("/:id", feedbackController.UpdateFeedback)
	feedbackGroup.DELETE("/:id", feedbackController.DeleteFeedback)

	profileGroup := r.Group("/profile", authGate)
	profileGroup.GET("", profileController.GetProfile)
	profileGroup.PUT("", profileController.UpdateProfile)
	profileGroup.PUT("/change-password", profileController.ChangePassword)

	adminGroup := r.Group("/admin", authGate, adminOnly)
	adminGroup.GET("/students", adminController.ListStudents)
	adminGroup.PUT("/students/:id/block", adminController.BlockStudent)
	adminGroup.DELETE("/students/:id", adminController.DeleteStudent)
	adminGroup.GET("/dashboard-stats", adminController.DashboardStats)
	adminGroup.GET("/feedback-stats", adminController.FeedbackStats)
	adminGroup.GET("/analytics/feedback-trend", adminController.FeedbackTrend)
	adminGroup.GET("/analytics/rating-distribution", adminController.RatingDistribution)
	adminGroup.GET("/export-feedback", adminController.ExportFeedback)
}
