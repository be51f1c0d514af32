package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/okhrimenko/recipe-scout/internal/models"
	"gorm.io/gorm"
)

type LikeService struct {
	db *gorm.DB
}

func NewLikeService(db *gorm.DB) *LikeService {
	return &LikeService{db: db}
}

// Toggle flips the user's membership in the recipe's liked-set and reports
// the new state plus the resulting like count. Each call strictly inverts
// the current state; two sequential toggles restore the original membership.
func (s *LikeService) Toggle(userID uuid.UUID, slug string) (bool, int64, error) {
	var recipe models.Recipe
	if err := s.db.Where("slug = ?", slug).First(&recipe).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, 0, ErrRecipeNotFound
		}
		return false, 0, err
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return false, 0, ErrUserNotFound
	}

	var member int64
	if err := s.db.Table("recipe_likes").
		Where("recipe_id = ? AND user_id = ?", recipe.ID, userID).
		Count(&member).Error; err != nil {
		return false, 0, err
	}

	assoc := s.db.Model(&recipe).Association("LikedUsers")

	var liked bool
	if member > 0 {
		if err := assoc.Delete(&user); err != nil {
			return false, 0, err
		}
		liked = false
	} else {
		if err := assoc.Append(&user); err != nil {
			return false, 0, err
		}
		liked = true
	}

	var count int64
	if err := s.db.Table("recipe_likes").
		Where("recipe_id = ?", recipe.ID).
		Count(&count).Error; err != nil {
		return liked, 0, err
	}
	return liked, count, nil
}
