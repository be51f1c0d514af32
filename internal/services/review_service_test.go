package services

import (
	"errors"
	"math"
	"testing"

	"github.com/okhrimenko/recipe-scout/internal/dto"
	"github.com/okhrimenko/recipe-scout/internal/models"
)

func TestReviewService_CreateUpdatesAggregate(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService(db)

	author := createTestUser(t, db, "michael2004@gmail.com")
	reviewer1 := createTestUser(t, db, "edward1995@gmail.com")
	reviewer2 := createTestUser(t, db, "anna1990@gmail.com")
	recipe := createTestRecipe(t, db, author, "Pizza", "lunch")

	if recipe.AvgRating != 0 || recipe.NumberReviews != 0 {
		t.Fatalf("new recipe: avg_rating=%v number_reviews=%d, want 0 and 0", recipe.AvgRating, recipe.NumberReviews)
	}

	_, err := svc.Create(reviewer1.ID, recipe.Slug, &dto.CreateReviewRequest{
		Rating: 4, Description: "This is a pretty delicious recipe.",
	})
	if err != nil {
		t.Fatalf("first review: %v", err)
	}

	var got models.Recipe
	if err := db.First(&got, "id = ?", recipe.ID).Error; err != nil {
		t.Fatalf("reload recipe: %v", err)
	}
	if got.AvgRating != 4.0 {
		t.Errorf("avg_rating after first review = %v, want 4.0", got.AvgRating)
	}
	if got.NumberReviews != 1 {
		t.Errorf("number_reviews after first review = %d, want 1", got.NumberReviews)
	}

	_, err = svc.Create(reviewer2.ID, recipe.Slug, &dto.CreateReviewRequest{
		Rating: 2, Description: "Not my thing",
	})
	if err != nil {
		t.Fatalf("second review: %v", err)
	}

	if err := db.First(&got, "id = ?", recipe.ID).Error; err != nil {
		t.Fatalf("reload recipe: %v", err)
	}
	if got.AvgRating != 3.0 {
		t.Errorf("avg_rating after second review = %v, want 3.0", got.AvgRating)
	}
	if got.NumberReviews != 2 {
		t.Errorf("number_reviews after second review = %d, want 2", got.NumberReviews)
	}
}

func TestReviewService_RunningMeanMatchesExactMean(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService(db)

	author := createTestUser(t, db, "author@example.com")
	recipe := createTestRecipe(t, db, author, "Ratatouille", "side_dish")

	ratings := []int{5, 3, 4, 2, 1, 5, 4}
	sum := 0
	for i, rating := range ratings {
		reviewer := createTestUser(t, db, string(rune('a'+i))+"@example.com")
		if _, err := svc.Create(reviewer.ID, recipe.Slug, &dto.CreateReviewRequest{
			Rating: rating, Description: "review",
		}); err != nil {
			t.Fatalf("review %d: %v", i, err)
		}
		sum += rating
	}

	var got models.Recipe
	if err := db.First(&got, "id = ?", recipe.ID).Error; err != nil {
		t.Fatalf("reload recipe: %v", err)
	}

	want := float64(sum) / float64(len(ratings))
	if math.Abs(got.AvgRating-want) > 1e-9 {
		t.Errorf("avg_rating = %v, want %v", got.AvgRating, want)
	}
	if got.NumberReviews != len(ratings) {
		t.Errorf("number_reviews = %d, want %d", got.NumberReviews, len(ratings))
	}
}

func TestReviewService_RejectsSecondReviewBySameAuthor(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService(db)

	author := createTestUser(t, db, "author@example.com")
	reviewer := createTestUser(t, db, "reviewer@example.com")
	recipe := createTestRecipe(t, db, author, "Pizza", "lunch")

	if _, err := svc.Create(reviewer.ID, recipe.Slug, &dto.CreateReviewRequest{
		Rating: 4, Description: "tasty",
	}); err != nil {
		t.Fatalf("first review: %v", err)
	}

	_, err := svc.Create(reviewer.ID, recipe.Slug, &dto.CreateReviewRequest{
		Rating: 5, Description: "SOOO tasty",
	})
	if !errors.Is(err, ErrAlreadyReviewed) {
		t.Errorf("second review error = %v, want ErrAlreadyReviewed", err)
	}

	// The rejected review must not have touched the aggregate.
	var got models.Recipe
	if err := db.First(&got, "id = ?", recipe.ID).Error; err != nil {
		t.Fatalf("reload recipe: %v", err)
	}
	if got.NumberReviews != 1 || got.AvgRating != 4.0 {
		t.Errorf("aggregate after rejected review: avg=%v count=%d, want 4.0 and 1", got.AvgRating, got.NumberReviews)
	}
}

func TestReviewService_CreateUnknownSlug(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService(db)
	reviewer := createTestUser(t, db, "reviewer@example.com")

	_, err := svc.Create(reviewer.ID, "no-such-recipe", &dto.CreateReviewRequest{
		Rating: 4, Description: "tasty",
	})
	if !errors.Is(err, ErrRecipeNotFound) {
		t.Errorf("error = %v, want ErrRecipeNotFound", err)
	}
}

func TestReviewService_CountMatchesReviewRows(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService(db)

	author := createTestUser(t, db, "author@example.com")
	recipe := createTestRecipe(t, db, author, "Borscht", "soup")

	for i := 0; i < 3; i++ {
		reviewer := createTestUser(t, db, string(rune('a'+i))+"@example.com")
		if _, err := svc.Create(reviewer.ID, recipe.Slug, &dto.CreateReviewRequest{
			Rating: i + 2, Description: "review",
		}); err != nil {
			t.Fatalf("review %d: %v", i, err)
		}
	}

	var rows int64
	if err := db.Model(&models.Review{}).Where("recipe_id = ?", recipe.ID).Count(&rows).Error; err != nil {
		t.Fatalf("count reviews: %v", err)
	}

	var got models.Recipe
	if err := db.First(&got, "id = ?", recipe.ID).Error; err != nil {
		t.Fatalf("reload recipe: %v", err)
	}
	if int64(got.NumberReviews) != rows {
		t.Errorf("number_reviews = %d, review rows = %d, want equal", got.NumberReviews, rows)
	}
}

func TestReviewService_UpdateDoesNotReaggregate(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService(db)

	author := createTestUser(t, db, "author@example.com")
	reviewer := createTestUser(t, db, "reviewer@example.com")
	recipe := createTestRecipe(t, db, author, "Pizza", "lunch")

	review, err := svc.Create(reviewer.ID, recipe.Slug, &dto.CreateReviewRequest{
		Rating: 4, Description: "tasty",
	})
	if err != nil {
		t.Fatalf("create review: %v", err)
	}

	newRating := 1
	if _, err := svc.Update(review.ID, reviewer.ID, &dto.UpdateReviewRequest{Rating: &newRating}); err != nil {
		t.Fatalf("update review: %v", err)
	}

	var got models.Recipe
	if err := db.First(&got, "id = ?", recipe.ID).Error; err != nil {
		t.Fatalf("reload recipe: %v", err)
	}
	if got.AvgRating != 4.0 {
		t.Errorf("avg_rating after review edit = %v, want unchanged 4.0", got.AvgRating)
	}
}

func TestReviewService_MutationsRequireAuthor(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService(db)

	author := createTestUser(t, db, "author@example.com")
	reviewer := createTestUser(t, db, "reviewer@example.com")
	stranger := createTestUser(t, db, "stranger@example.com")
	recipe := createTestRecipe(t, db, author, "Pizza", "lunch")

	review, err := svc.Create(reviewer.ID, recipe.Slug, &dto.CreateReviewRequest{
		Rating: 4, Description: "tasty",
	})
	if err != nil {
		t.Fatalf("create review: %v", err)
	}

	desc := "edited"
	if _, err := svc.Update(review.ID, stranger.ID, &dto.UpdateReviewRequest{Description: &desc}); !errors.Is(err, ErrNotReviewAuthor) {
		t.Errorf("update by stranger error = %v, want ErrNotReviewAuthor", err)
	}
	if err := svc.Delete(review.ID, stranger.ID); !errors.Is(err, ErrNotReviewAuthor) {
		t.Errorf("delete by stranger error = %v, want ErrNotReviewAuthor", err)
	}
	if err := svc.Delete(review.ID, reviewer.ID); err != nil {
		t.Errorf("delete by author error = %v, want nil", err)
	}
}
