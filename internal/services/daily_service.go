package services

import (
	"github.com/okhrimenko/recipe-scout/internal/models"
	"gorm.io/gorm"
)

// TemperatureSource yields the current temperature for a "lat,lon" location.
type TemperatureSource interface {
	CurrentTemperature(location string) (int, error)
}

// DailyService recommends recipes for the caller's current weather: hot days
// get light categories, cold days warming ones, anything between the default
// spread. Matches are returned best-rated first, capped at 20.
type DailyService struct {
	db      *gorm.DB
	weather TemperatureSource
}

const dailyRecipesLimit = 20

var (
	hotCategories     = []string{"healthy", "salad", "appetizer"}
	coldCategories    = []string{"soup", "drink", "lunch"}
	defaultCategories = []string{"breakfast", "side_dish", "bread", "dessert"}
)

func NewDailyService(db *gorm.DB, weather TemperatureSource) *DailyService {
	return &DailyService{db: db, weather: weather}
}

func (s *DailyService) GetDailyRecipes(location string) ([]models.Recipe, error) {
	temperature, err := s.weather.CurrentTemperature(location)
	if err != nil {
		return nil, err
	}

	var recipes []models.Recipe
	err = s.db.Preload("Author").
		Where("category IN ?", categoriesForTemperature(temperature)).
		Order("avg_rating DESC").
		Limit(dailyRecipesLimit).
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

func categoriesForTemperature(t int) []string {
	switch {
	case t >= 25:
		return hotCategories
	case t <= 10:
		return coldCategories
	default:
		return defaultCategories
	}
}
