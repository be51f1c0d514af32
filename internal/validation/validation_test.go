package validation

import (
	"testing"

	"github.com/okhrimenko/recipe-scout/internal/dto"
)

func TestStruct_ValidRequest(t *testing.T) {
	fields := Struct(&dto.RegisterRequest{
		Email:     "michael2004@gmail.com",
		FirstName: "Michael",
		LastName:  "Row",
		Password:  "qwerty123",
		Password2: "qwerty123",
	})
	if fields != nil {
		t.Errorf("valid request produced errors: %v", fields)
	}
}

func TestStruct_ReportsJSONFieldNames(t *testing.T) {
	fields := Struct(&dto.RegisterRequest{
		Email:     "not-an-email",
		LastName:  "Row",
		Password:  "qwerty123",
		Password2: "different",
	})
	if fields == nil {
		t.Fatal("expected validation errors")
	}

	if got := fields["first_name"]; got != "This field is required" {
		t.Errorf("first_name message = %q, want required message", got)
	}
	if got := fields["email"]; got != "Enter a valid email address" {
		t.Errorf("email message = %q, want email message", got)
	}
	if got := fields["password2"]; got != "Passwords do not match" {
		t.Errorf("password2 message = %q, want mismatch message", got)
	}
	if _, ok := fields["FirstName"]; ok {
		t.Error("errors keyed by Go field name, want json name")
	}
}

func TestStruct_EnumAndBounds(t *testing.T) {
	fields := Struct(&dto.CreateRecipeRequest{
		Name:             "Pizza",
		Category:         "midnight_snack",
		Description:      "A recipe",
		Steps:            "Mix and bake.",
		TotalCookingTime: -5,
		Difficulty:       "easy",
		Country:          "Italy",
	})
	if fields == nil {
		t.Fatal("expected validation errors")
	}
	if _, ok := fields["category"]; !ok {
		t.Error("unknown category passed validation")
	}
	if _, ok := fields["total_cooking_time"]; !ok {
		t.Error("negative cooking time passed validation")
	}
}
