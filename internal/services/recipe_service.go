package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/okhrimenko/recipe-scout/internal/dto"
	"github.com/okhrimenko/recipe-scout/internal/models"
	"gorm.io/gorm"
)

var (
	ErrRecipeNotFound = errors.New("recipe not found")
	ErrNotAuthor      = errors.New("You are not author of this recipe!")
)

const (
	defaultPageSize = 3
	maxPageSize     = 15
)

type RecipeService struct {
	db *gorm.DB
}

func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// Create persists a recipe owned by author. The initial ingredient and like
// memberships are attached only when both id lists are present.
func (s *RecipeService) Create(authorID uuid.UUID, req *dto.CreateRecipeRequest) (*models.Recipe, error) {
	recipe := &models.Recipe{
		Name:             req.Name,
		Category:         req.Category,
		Description:      req.Description,
		Steps:            req.Steps,
		TotalCookingTime: req.TotalCookingTime,
		Difficulty:       req.Difficulty,
		Country:          req.Country,
		AuthorID:         &authorID,
	}

	if req.IngredientIDs != nil && req.LikedUserIDs != nil {
		var ingredients []models.Ingredient
		if err := s.db.Where("id IN ?", req.IngredientIDs).Find(&ingredients).Error; err != nil {
			return nil, err
		}
		var likedUsers []models.User
		if err := s.db.Where("id IN ?", req.LikedUserIDs).Find(&likedUsers).Error; err != nil {
			return nil, err
		}
		recipe.Ingredients = ingredients
		recipe.LikedUsers = likedUsers
	}

	if err := s.db.Create(recipe).Error; err != nil {
		return nil, err
	}
	return recipe, nil
}

func (s *RecipeService) GetBySlug(slug string) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.Preload("Author").Where("slug = ?", slug).First(&recipe).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

func (s *RecipeService) List(q *dto.RecipeListQuery) ([]models.Recipe, int64, error) {
	query := s.db.Model(&models.Recipe{}).Preload("Author")

	if q.Category != "" {
		query = query.Where("LOWER(category) = ?", strings.ToLower(q.Category))
	}
	if q.Country != "" {
		query = query.Where("LOWER(country) LIKE ?", "%"+strings.ToLower(q.Country)+"%")
	}
	if q.Difficulty != "" {
		query = query.Where("LOWER(difficulty) LIKE ?", "%"+strings.ToLower(q.Difficulty)+"%")
	}
	if q.Search != "" {
		query = query.Where("LOWER(recipes.name) LIKE ?", "%"+strings.ToLower(q.Search)+"%")
	}
	// A recipe matches only when it contains every listed ingredient.
	for _, name := range q.Ingredients {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		query = query.Where(
			"EXISTS (SELECT 1 FROM recipe_ingredients ri JOIN ingredients i ON i.id = ri.ingredient_id"+
				" WHERE ri.recipe_id = recipes.id AND LOWER(i.name) = ?)",
			strings.ToLower(name),
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	switch q.Ordering {
	case "avg_rating":
		query = query.Order("avg_rating ASC")
	case "-avg_rating":
		query = query.Order("avg_rating DESC")
	default:
		query = query.Order("created_at DESC")
	}

	page, size := q.Page, q.Size
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}

	var recipes []models.Recipe
	err := query.Offset((page - 1) * size).Limit(size).Find(&recipes).Error
	if err != nil {
		return nil, 0, err
	}
	return recipes, total, nil
}

// Update applies field edits; only the author may mutate a recipe.
func (s *RecipeService) Update(slug string, userID uuid.UUID, req *dto.UpdateRecipeRequest) (*models.Recipe, error) {
	recipe, err := s.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if recipe.AuthorID == nil || *recipe.AuthorID != userID {
		return nil, ErrNotAuthor
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Steps != nil {
		updates["steps"] = *req.Steps
	}
	if req.TotalCookingTime != nil {
		updates["total_cooking_time"] = *req.TotalCookingTime
	}
	if req.Difficulty != nil {
		updates["difficulty"] = *req.Difficulty
	}
	if req.Country != nil {
		updates["country"] = *req.Country
	}

	if len(updates) > 0 {
		if err := s.db.Model(recipe).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return recipe, nil
}

func (s *RecipeService) Delete(slug string, userID uuid.UUID) error {
	recipe, err := s.GetBySlug(slug)
	if err != nil {
		return err
	}
	if recipe.AuthorID == nil || *recipe.AuthorID != userID {
		return ErrNotAuthor
	}
	return s.db.Delete(recipe).Error
}

// SetImage records the stored image path; only the author may attach one.
func (s *RecipeService) SetImage(slug string, userID uuid.UUID, path string) (*models.Recipe, error) {
	recipe, err := s.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if recipe.AuthorID == nil || *recipe.AuthorID != userID {
		return nil, ErrNotAuthor
	}
	if err := s.db.Model(recipe).Update("image", path).Error; err != nil {
		return nil, err
	}
	return recipe, nil
}

// LikeCount counts the recipe's liked-set membership.
func (s *RecipeService) LikeCount(recipeID uuid.UUID) (int64, error) {
	var count int64
	err := s.db.Table("recipe_likes").Where("recipe_id = ?", recipeID).Count(&count).Error
	return count, err
}

// IsLiked reports whether user is in the recipe's liked-set.
func (s *RecipeService) IsLiked(recipeID, userID uuid.UUID) (bool, error) {
	var count int64
	err := s.db.Table("recipe_likes").
		Where("recipe_id = ? AND user_id = ?", recipeID, userID).
		Count(&count).Error
	return count > 0, err
}

// ToResponse assembles the API shape, including the caller-dependent
// likes_count/is_liked pair.
func (s *RecipeService) ToResponse(recipe *models.Recipe, callerID *uuid.UUID) dto.RecipeResponse {
	resp := dto.RecipeResponse{
		ID:               recipe.ID,
		Name:             recipe.Name,
		Category:         recipe.Category,
		Description:      recipe.Description,
		Steps:            recipe.Steps,
		TotalCookingTime: recipe.TotalCookingTime,
		Difficulty:       recipe.Difficulty,
		Image:            recipe.Image,
		Country:          recipe.Country,
		AvgRating:        recipe.AvgRating,
		NumberReviews:    recipe.NumberReviews,
		Slug:             recipe.Slug,
		CreatedAt:        recipe.CreatedAt,
		UpdatedAt:        recipe.UpdatedAt,
	}
	if recipe.Author != nil {
		resp.Author = recipe.Author.Email
	}
	if count, err := s.LikeCount(recipe.ID); err == nil {
		resp.LikesCount = count
	}
	if callerID != nil {
		if liked, err := s.IsLiked(recipe.ID, *callerID); err == nil {
			resp.IsLiked = liked
		}
	}
	return resp
}
