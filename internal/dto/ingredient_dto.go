package dto

type IngredientRequest struct {
	Name           string `json:"name" validate:"required,max=50"`
	CaloricContent int    `json:"caloric_content" validate:"min=0"`
	Category       string `json:"category" validate:"omitempty,oneof=dairy meat fish seafood vegetables fruits mushrooms grains legumes flour spices_sauces sweets beverages oils nuts herbs condiments bakery"`
}

// IngredientListQuery carries the supported list filters.
type IngredientListQuery struct {
	Name       string
	Category   string
	CaloricMin *int
	CaloricMax *int
	Search     string
	Ordering   string
}
