package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/okhrimenko/recipe-scout/internal/dto"
	"github.com/okhrimenko/recipe-scout/internal/models"
	"gorm.io/gorm"
)

var (
	ErrReviewNotFound  = errors.New("review not found")
	ErrAlreadyReviewed = errors.New("You have already reviewed this recipe!")
	ErrNotReviewAuthor = errors.New("You are not author of this review!")
)

type ReviewService struct {
	db *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

// Create inserts a review and folds its rating into the recipe's running
// average. The whole sequence runs in one transaction so a failure cannot
// leave number_reviews incremented without a matching review row. The count
// itself is bumped with a SQL-level increment to avoid lost updates between
// concurrent submissions.
func (s *ReviewService) Create(authorID uuid.UUID, slug string, req *dto.CreateReviewRequest) (*models.Review, error) {
	var review *models.Review

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var recipe models.Recipe
		if err := tx.Where("slug = ?", slug).First(&recipe).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRecipeNotFound
			}
			return err
		}

		var existing int64
		if err := tx.Model(&models.Review{}).
			Where("author_id = ? AND recipe_id = ?", authorID, recipe.ID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return ErrAlreadyReviewed
		}

		var avg float64
		if recipe.NumberReviews == 0 {
			avg = float64(req.Rating)
		} else {
			avg = (recipe.AvgRating*float64(recipe.NumberReviews) + float64(req.Rating)) /
				float64(recipe.NumberReviews+1)
		}

		if err := tx.Model(&models.Recipe{}).Where("id = ?", recipe.ID).
			Updates(map[string]interface{}{
				"avg_rating":     avg,
				"number_reviews": gorm.Expr("number_reviews + 1"),
			}).Error; err != nil {
			return err
		}

		// Re-read for the post-increment state before binding the review.
		if err := tx.First(&recipe, "id = ?", recipe.ID).Error; err != nil {
			return err
		}

		review = &models.Review{
			ID:          uuid.New(),
			AuthorID:    &authorID,
			RecipeID:    recipe.ID,
			Rating:      req.Rating,
			Description: req.Description,
		}
		return tx.Create(review).Error
	})
	if err != nil {
		return nil, err
	}
	return review, nil
}

// ListForRecipe returns a recipe's reviews, newest first.
func (s *ReviewService) ListForRecipe(slug string, q *dto.ReviewListQuery) ([]models.Review, error) {
	var recipe models.Recipe
	if err := s.db.Where("slug = ?", slug).First(&recipe).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}

	query := s.db.Preload("Author").Where("recipe_id = ?", recipe.ID)
	if q != nil {
		if q.CreatedAfter != nil {
			query = query.Where("created_at >= ?", *q.CreatedAfter)
		}
		if q.CreatedBefore != nil {
			query = query.Where("created_at <= ?", *q.CreatedBefore)
		}
		if q.UpdatedAfter != nil {
			query = query.Where("updated_at >= ?", *q.UpdatedAfter)
		}
		if q.UpdatedBefore != nil {
			query = query.Where("updated_at <= ?", *q.UpdatedBefore)
		}
	}

	var reviews []models.Review
	if err := query.Order("created_at DESC").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (s *ReviewService) Get(id uuid.UUID) (*models.Review, error) {
	var review models.Review
	if err := s.db.Preload("Author").First(&review, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

// Update applies plain field edits; the recipe aggregate is deliberately
// left untouched.
func (s *ReviewService) Update(id, userID uuid.UUID, req *dto.UpdateReviewRequest) (*models.Review, error) {
	review, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if review.AuthorID == nil || *review.AuthorID != userID {
		return nil, ErrNotReviewAuthor
	}

	updates := map[string]interface{}{}
	if req.Rating != nil {
		updates["rating"] = *req.Rating
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}

	if len(updates) > 0 {
		if err := s.db.Model(review).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return review, nil
}

func (s *ReviewService) Delete(id, userID uuid.UUID) error {
	review, err := s.Get(id)
	if err != nil {
		return err
	}
	if review.AuthorID == nil || *review.AuthorID != userID {
		return ErrNotReviewAuthor
	}
	return s.db.Delete(review).Error
}

// ToResponse assembles the API shape for a review.
func ToReviewResponse(review *models.Review) dto.ReviewResponse {
	resp := dto.ReviewResponse{
		ID:          review.ID,
		Rating:      review.Rating,
		Description: review.Description,
		CreatedAt:   review.CreatedAt,
		UpdatedAt:   review.UpdatedAt,
	}
	if review.Author != nil {
		resp.Author = review.Author.Email
	}
	return resp
}
