package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Recipe is the central aggregate: it owns its ingredient and like
// memberships and carries the derived rating statistics. AvgRating and
// NumberReviews are only ever mutated by the review-creation service.
type Recipe struct {
	ID               uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name             string         `gorm:"size:200;not null" json:"name"`
	Category         string         `gorm:"size:50;not null;index" json:"category"`
	Description      string         `gorm:"type:text" json:"description"`
	Steps            string         `gorm:"type:text" json:"steps"`
	TotalCookingTime int            `gorm:"not null" json:"total_cooking_time"`
	Difficulty       string         `gorm:"size:10;not null" json:"difficulty"`
	Image            string         `gorm:"size:255" json:"image,omitempty"`
	Country          string         `gorm:"size:100" json:"country"`
	AvgRating        float64        `gorm:"default:0" json:"avg_rating"`
	NumberReviews    int            `gorm:"default:0" json:"number_reviews"`
	Slug             string         `gorm:"size:210;uniqueIndex" json:"slug"`
	AuthorID         *uuid.UUID     `gorm:"type:uuid;index" json:"-"`
	Author           *User          `gorm:"foreignKey:AuthorID" json:"-"`
	Ingredients      []Ingredient   `gorm:"many2many:recipe_ingredients" json:"-"`
	LikedUsers       []User         `gorm:"many2many:recipe_likes" json:"-"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

// RecipeCategories are the accepted values for Recipe.Category.
var RecipeCategories = []string{
	"breakfast", "lunch", "healthy", "appetizer", "salad",
	"soup", "bread", "side_dish", "drink", "dessert",
}

// RecipeDifficulties are the accepted values for Recipe.Difficulty.
var RecipeDifficulties = []string{"easy", "medium", "hard"}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.Slug == "" {
		s, err := UniqueSlug(tx, &Recipe{}, r.Name)
		if err != nil {
			return err
		}
		r.Slug = s
	}
	return nil
}
