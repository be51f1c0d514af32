package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Ingredient struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name           string    `gorm:"size:50;not null" json:"name"`
	CaloricContent int       `gorm:"not null;default:0" json:"caloric_content"`
	Category       string    `gorm:"size:50;not null;default:'vegetables';index" json:"category"`
	Slug           string    `gorm:"size:60;uniqueIndex" json:"slug"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// IngredientCategories are the accepted values for Ingredient.Category.
var IngredientCategories = []string{
	"dairy", "meat", "fish", "seafood", "vegetables", "fruits",
	"mushrooms", "grains", "legumes", "flour", "spices_sauces",
	"sweets", "beverages", "oils", "nuts", "herbs", "condiments", "bakery",
}

// The slug is assigned once at creation and never regenerated.
func (i *Ingredient) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	if i.Slug == "" {
		s, err := UniqueSlug(tx, &Ingredient{}, i.Name)
		if err != nil {
			return err
		}
		i.Slug = s
	}
	return nil
}
