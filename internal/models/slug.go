package models

import (
	"fmt"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// UniqueSlug derives a slug from name and uniquifies it with a numeric
// suffix (-1, -2, ...) against existing rows of model, soft-deleted included.
func UniqueSlug(tx *gorm.DB, model interface{}, name string) (string, error) {
	base := slug.Make(name)
	candidate := base
	for num := 1; ; num++ {
		var count int64
		if err := tx.Unscoped().Model(model).Where("slug = ?", candidate).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, num)
	}
}
