package services

import (
	"errors"
	"strings"

	"github.com/okhrimenko/recipe-scout/internal/dto"
	"github.com/okhrimenko/recipe-scout/internal/models"
	"gorm.io/gorm"
)

var ErrIngredientNotFound = errors.New("ingredient not found")

type IngredientService struct {
	db *gorm.DB
}

func NewIngredientService(db *gorm.DB) *IngredientService {
	return &IngredientService{db: db}
}

func (s *IngredientService) Create(req *dto.IngredientRequest) (*models.Ingredient, error) {
	ingredient := &models.Ingredient{
		Name:           req.Name,
		CaloricContent: req.CaloricContent,
		Category:       req.Category,
	}
	if ingredient.Category == "" {
		ingredient.Category = "vegetables"
	}

	if err := s.db.Create(ingredient).Error; err != nil {
		return nil, err
	}
	return ingredient, nil
}

func (s *IngredientService) GetBySlug(slug string) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	if err := s.db.Where("slug = ?", slug).First(&ingredient).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIngredientNotFound
		}
		return nil, err
	}
	return &ingredient, nil
}

func (s *IngredientService) List(q *dto.IngredientListQuery) ([]models.Ingredient, error) {
	query := s.db.Model(&models.Ingredient{})

	if q.Name != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(q.Name)+"%")
	}
	if q.Search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(q.Search)+"%")
	}
	if q.Category != "" {
		query = query.Where("LOWER(category) = ?", strings.ToLower(q.Category))
	}
	if q.CaloricMin != nil {
		query = query.Where("caloric_content >= ?", *q.CaloricMin)
	}
	if q.CaloricMax != nil {
		query = query.Where("caloric_content <= ?", *q.CaloricMax)
	}

	switch q.Ordering {
	case "caloric_content":
		query = query.Order("caloric_content ASC")
	case "-caloric_content":
		query = query.Order("caloric_content DESC")
	default:
		query = query.Order("name ASC")
	}

	var ingredients []models.Ingredient
	if err := query.Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (s *IngredientService) Update(slug string, req *dto.IngredientRequest) (*models.Ingredient, error) {
	ingredient, err := s.GetBySlug(slug)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"name":            req.Name,
		"caloric_content": req.CaloricContent,
	}
	if req.Category != "" {
		updates["category"] = req.Category
	}

	if err := s.db.Model(ingredient).Updates(updates).Error; err != nil {
		return nil, err
	}
	return ingredient, nil
}

func (s *IngredientService) Delete(slug string) error {
	ingredient, err := s.GetBySlug(slug)
	if err != nil {
		return err
	}
	return s.db.Delete(ingredient).Error
}
