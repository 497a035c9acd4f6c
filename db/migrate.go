package db

import (
	"fmt"
	"log"

	"github.com/lumicoach/coaching-api/models"
)

func Migrate() {
	// Initialize DB connection
	Init()

	// Run AutoMigrate only when explicitly called
	err := DB.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Coupon{},
		&models.Appointment{},
		&models.Article{},
		&models.Comment{},
		&models.Testimonial{},
		&models.News{},
		&models.KPIRecord{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	fmt.Println("✅ Migrations applied successfully!")
}
