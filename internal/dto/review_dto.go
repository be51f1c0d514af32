package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	Rating      int    `json:"rating" validate:"required,min=1,max=5"`
	Description string `json:"description" validate:"required"`
}

type UpdateReviewRequest struct {
	Rating      *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	Description *string `json:"description"`
}

type ReviewResponse struct {
	ID          uuid.UUID `json:"id"`
	Author      string    `json:"author,omitempty"`
	Rating      int       `json:"rating"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ReviewListQuery carries the supported date-range filters.
type ReviewListQuery struct {
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
	UpdatedAfter  *time.Time
	UpdatedBefore *time.Time
}
