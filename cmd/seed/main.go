package main

import (
	"fmt"

	"streamhub/internal/model"
	"streamhub/pkg/config"
	"streamhub/pkg/database"
	"streamhub/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := seedDatabase(db, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(db *gorm.DB, log *logger.Logger) error {
	testUsers := []struct {
		email     string
		password  string
		firstName string
		lastName  string
		isAdmin   bool
	}{
		{"admin@streamhub.test", "admin123", "Ada", "Admin", true},
		{"alice@streamhub.test", "password123", "Alice", "Viewer", false},
		{"bob@streamhub.test", "password123", "Bob", "Viewer", false},
	}

	for _, userData := range testUsers {
		var existing model.UserModel
		if err := db.Where("email = ?", userData.email).First(&existing).Error; err == nil {
			log.Info("User %s already exists, skipping", userData.email)
			continue
		}

		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte(userData.password), bcrypt.DefaultCost)
		user := &model.UserModel{
			Email:       userData.email,
			Password:    string(hashedPassword),
			FirstName:   userData.firstName,
			LastName:    userData.lastName,
			IsAdmin:     userData.isAdmin,
			IsActive:    true,
			Theme:       "dark",
			AccentColor: "blue",
		}
		if err := db.Create(user).Error; err != nil {
			log.Error("Failed to create user %s: %v", userData.email, err)
			continue
		}
		log.Info("Created user: %s", user.Email)
	}

	testMovies := []model.MovieModel{
		{Title: "Midnight Express Run", Description: "A courier races the last train across the city.", Duration: 104, Year: 2021, Genre: "thriller", IsPremium: false, IsActive: true},
		{Title: "Garden of Static", Description: "A radio operator hears voices from a lost expedition.", Duration: 97, Year: 2019, Genre: "drama", IsPremium: false, IsActive: true},
		{Title: "Paper Lanterns", Description: "Two strangers meet every year at the same festival.", Duration: 112, Year: 2022, Genre: "romance", IsPremium: true, IsActive: true},
		{Title: "The Cartographer's Debt", Description: "A mapmaker must redraw a border that never existed.", Duration: 128, Year: 2023, Genre: "drama", IsPremium: true, IsActive: true},
		{Title: "Low Orbit", Description: "A maintenance crew is stranded between two stations.", Duration: 119, Year: 2020, Genre: "sci-fi", IsPremium: false, IsActive: true},
	}

	for i := range testMovies {
		movie := &testMovies[i]

		var existing model.MovieModel
		if err := db.Where("title = ?", movie.Title).First(&existing).Error; err == nil {
			log.Info("Movie %q already exists, skipping", movie.Title)
			continue
		}

		if err := db.Create(movie).Error; err != nil {
			log.Error("Failed to create movie %q: %v", movie.Title, err)
			continue
		}
		log.Info("Created movie: %s (%s)", movie.Title, movie.Genre)
	}

	testCodes := []model.PremiumCodeModel{
		{Code: "WELCOME7DAYS", DurationDays: 7, UsesLeft: 1, IsActive: true},
		{Code: "LAUNCH30DAYS", DurationDays: 30, UsesLeft: 1, IsActive: true},
	}

	for i := range testCodes {
		code := &testCodes[i]

		var existing model.PremiumCodeModel
		if err := db.Where("code = ?", code.Code).First(&existing).Error; err == nil {
			log.Info("Code %s already exists, skipping", code.Code)
			continue
		}

		if err := db.Create(code).Error; err != nil {
			log.Error("Failed to create code %s: %v", code.Code, err)
			continue
		}
		log.Info("Created premium code: %s (%d days)", code.Code, code.DurationDays)
	}

	return nil
}
