package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"coursepulse/internal/infra"
	"coursepulse/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Notice: .env file not found, using system environment variables")
	}

	db := infra.InitPostgresql()
	defer infra.ClosePostgresql(db)

	summary, err := services.NewSeedService(db).Seed(context.Background())
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Printf("Seeded %d students (%d blocked), %d courses, %d feedback entries",
		summary.Students, summary.BlockedStudents, summary.Courses, summary.Feedback)
	log.Printf("Admin login: %s", summary.AdminEmail)
	log.Printf("Student logins: student1@example.com ... student%d@example.com", summary.Students)
}
