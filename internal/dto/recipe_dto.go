package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateRecipeRequest struct {
	Name             string      `json:"name" validate:"required,max=200"`
	Category         string      `json:"category" validate:"required,oneof=breakfast lunch healthy appetizer salad soup bread side_dish drink dessert"`
	Description      string      `json:"description" validate:"required"`
	Steps            string      `json:"steps" validate:"required"`
	TotalCookingTime int         `json:"total_cooking_time" validate:"min=0"`
	Difficulty       string      `json:"difficulty" validate:"required,oneof=easy medium hard"`
	Country          string      `json:"country" validate:"required,max=100"`
	IngredientIDs    []uuid.UUID `json:"ingredients"`
	LikedUserIDs     []uuid.UUID `json:"liked_users"`
}

// UpdateRecipeRequest uses pointers so PATCH can distinguish absent fields.
type UpdateRecipeRequest struct {
	Name             *string `json:"name" validate:"omitempty,max=200"`
	Category         *string `json:"category" validate:"omitempty,oneof=breakfast lunch healthy appetizer salad soup bread side_dish drink dessert"`
	Description      *string `json:"description"`
	Steps            *string `json:"steps"`
	TotalCookingTime *int    `json:"total_cooking_time" validate:"omitempty,min=0"`
	Difficulty       *string `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
	Country          *string `json:"country" validate:"omitempty,max=100"`
}

type RecipeResponse struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Category         string    `json:"category"`
	Description      string    `json:"description"`
	Steps            string    `json:"steps"`
	TotalCookingTime int       `json:"total_cooking_time"`
	Difficulty       string    `json:"difficulty"`
	Image            string    `json:"image,omitempty"`
	Country          string    `json:"country"`
	AvgRating        float64   `json:"avg_rating"`
	NumberReviews    int       `json:"number_reviews"`
	Slug             string    `json:"slug"`
	Author           string    `json:"author,omitempty"`
	LikesCount       int64     `json:"likes_count"`
	IsLiked          bool      `json:"is_liked"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// RecipeListQuery carries the supported list filters.
type RecipeListQuery struct {
	Category    string
	Country     string
	Difficulty  string
	Ingredients []string
	Search      string
	Ordering    string
	Page        int
	Size        int
}

type LikeToggleResponse struct {
	Liked     bool  `json:"liked"`
	LikeCount int64 `json:"like_count"`
}
