package services

import (
	"errors"
	"testing"
)

type fakeTemperatureSource struct {
	temperature  int
	err          error
	lastLocation string
}

func (f *fakeTemperatureSource) CurrentTemperature(location string) (int, error) {
	f.lastLocation = location
	return f.temperature, f.err
}

func TestCategoriesForTemperature(t *testing.T) {
	tests := []struct {
		temperature int
		want        []string
	}{
		{30, hotCategories},
		{25, hotCategories},
		{24, defaultCategories},
		{11, defaultCategories},
		{10, coldCategories},
		{-5, coldCategories},
	}
	for _, tt := range tests {
		got := categoriesForTemperature(tt.temperature)
		if len(got) != len(tt.want) || got[0] != tt.want[0] {
			t.Errorf("categoriesForTemperature(%d) = %v, want %v", tt.temperature, got, tt.want)
		}
	}
}

func TestDailyService_PicksCategoriesByWeather(t *testing.T) {
	db := newTestDB(t)
	author := createTestUser(t, db, "author@example.com")

	createTestRecipe(t, db, author, "Borscht", "soup")
	createTestRecipe(t, db, author, "Caesar Salad", "salad")
	createTestRecipe(t, db, author, "Pancakes", "breakfast")

	weather := &fakeTemperatureSource{temperature: 30}
	svc := NewDailyService(db, weather)

	recipes, err := svc.GetDailyRecipes("50.4501,30.5234")
	if err != nil {
		t.Fatalf("hot day: %v", err)
	}
	if len(recipes) != 1 || recipes[0].Name != "Caesar Salad" {
		t.Errorf("hot day returned %d recipes, want just Caesar Salad", len(recipes))
	}
	if weather.lastLocation != "50.4501,30.5234" {
		t.Errorf("location passed to weather source = %q", weather.lastLocation)
	}

	weather.temperature = 2
	recipes, err = svc.GetDailyRecipes("50.4501,30.5234")
	if err != nil {
		t.Fatalf("cold day: %v", err)
	}
	if len(recipes) != 1 || recipes[0].Name != "Borscht" {
		t.Errorf("cold day returned %d recipes, want just Borscht", len(recipes))
	}

	weather.temperature = 18
	recipes, err = svc.GetDailyRecipes("50.4501,30.5234")
	if err != nil {
		t.Fatalf("mild day: %v", err)
	}
	if len(recipes) != 1 || recipes[0].Name != "Pancakes" {
		t.Errorf("mild day returned %d recipes, want just Pancakes", len(recipes))
	}
}

func TestDailyService_OrdersByRatingAndCapsResults(t *testing.T) {
	db := newTestDB(t)
	author := createTestUser(t, db, "author@example.com")

	low := createTestRecipe(t, db, author, "Gazpacho", "soup")
	high := createTestRecipe(t, db, author, "Ramen", "soup")
	if err := db.Model(low).Update("avg_rating", 2.5).Error; err != nil {
		t.Fatal(err)
	}
	if err := db.Model(high).Update("avg_rating", 4.8).Error; err != nil {
		t.Fatal(err)
	}

	svc := NewDailyService(db, &fakeTemperatureSource{temperature: 0})
	recipes, err := svc.GetDailyRecipes("50.4501,30.5234")
	if err != nil {
		t.Fatalf("daily recipes: %v", err)
	}
	if len(recipes) != 2 || recipes[0].Name != "Ramen" {
		t.Errorf("first recipe = %q, want Ramen (highest rated)", recipes[0].Name)
	}
}

func TestDailyService_WeatherErrorPropagates(t *testing.T) {
	db := newTestDB(t)
	wantErr := errors.New("weather upstream down")
	svc := NewDailyService(db, &fakeTemperatureSource{err: wantErr})

	_, err := svc.GetDailyRecipes("50.4501,30.5234")
	if !errors.Is(err, wantErr) {
		t.Errorf("error = %v, want %v", err, wantErr)
	}
}
