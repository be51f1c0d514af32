package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review holds one rating+comment per (author, recipe) pair. The uniqueness
// of the pair is enforced by the review-creation service and backed by the
// composite index.
type Review struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	AuthorID    *uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_reviews_author_recipe" json:"-"`
	Author      *User      `gorm:"foreignKey:AuthorID" json:"-"`
	RecipeID    uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_author_recipe;index" json:"-"`
	Recipe      *Recipe    `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
	Rating      int        `gorm:"not null" json:"rating"`
	Description string     `gorm:"type:text" json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (r *Review) BeforeCreate(_ *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
