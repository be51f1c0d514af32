package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/okhrimenko/recipe-scout/internal/config"
	"github.com/okhrimenko/recipe-scout/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Ingredient{},
		&models.Recipe{},
		&models.Review{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func testConfig() *config.Config {
	cfg := config.Load()
	cfg.JWTSecret = "test-secret"
	return cfg
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("qwerty123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:     email,
		Password:  string(hash),
		FirstName: "Michael",
		LastName:  "Row",
		Phone:     "0987538747",
		IsActive:  true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user %s: %v", email, err)
	}
	return user
}

func createTestRecipe(t *testing.T, db *gorm.DB, author *models.User, name, category string) *models.Recipe {
	t.Helper()

	recipe := &models.Recipe{
		Name:             name,
		Category:         category,
		Description:      "some fantastic " + name,
		Steps:            "1 step, 2 step, 3 step",
		TotalCookingTime: 60,
		Difficulty:       "medium",
		Country:          "Italy",
	}
	if author != nil {
		recipe.AuthorID = &author.ID
	}
	if err := db.Create(recipe).Error; err != nil {
		t.Fatalf("failed to create recipe %s: %v", name, err)
	}
	return recipe
}

func createTestIngredient(t *testing.T, db *gorm.DB, name string, calories int, category string) *models.Ingredient {
	t.Helper()

	ingredient := &models.Ingredient{
		Name:           name,
		CaloricContent: calories,
		Category:       category,
	}
	if err := db.Create(ingredient).Error; err != nil {
		t.Fatalf("failed to create ingredient %s: %v", name, err)
	}
	return ingredient
}
