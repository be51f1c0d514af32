package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/okhrimenko/recipe-scout/internal/config"
	"github.com/okhrimenko/recipe-scout/internal/handlers"
	"github.com/okhrimenko/recipe-scout/internal/middleware"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	ingredientHandler *handlers.IngredientHandler,
	recipeHandler *handlers.RecipeHandler,
	reviewHandler *handlers.ReviewHandler,
	dailyHandler *handlers.DailyHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — public, with a stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)
	auth.Post("/verify", authHandler.Verify)

	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)
	api.Get("/auth/me", middleware.JWTProtected(cfg), authHandler.Me)

	// Ingredient catalog: reads public, mutations staff-only
	api.Get("/ingredients", ingredientHandler.List)
	api.Post("/ingredients", middleware.JWTProtected(cfg), middleware.StaffRequired(db, cfg), ingredientHandler.Create)
	api.Get("/ingredients/:slug", ingredientHandler.Get)
	api.Put("/ingredients/:slug", middleware.JWTProtected(cfg), middleware.StaffRequired(db, cfg), ingredientHandler.Update)
	api.Delete("/ingredients/:slug", middleware.JWTProtected(cfg), middleware.StaffRequired(db, cfg), ingredientHandler.Delete)

	// Recipes. daily-recipes is registered before the :slug routes so the
	// literal segment wins.
	api.Get("/recipes", recipeHandler.List)
	api.Post("/recipes", middleware.JWTProtected(cfg), recipeHandler.Create)
	api.Get("/recipes/daily-recipes", dailyHandler.GetDailyRecipes)
	api.Get("/recipes/:slug", recipeHandler.Get)
	api.Patch("/recipes/:slug", middleware.JWTProtected(cfg), recipeHandler.Update)
	api.Put("/recipes/:slug", middleware.JWTProtected(cfg), recipeHandler.Update)
	api.Delete("/recipes/:slug", middleware.JWTProtected(cfg), recipeHandler.Delete)
	api.Post("/recipes/:slug/image", middleware.JWTProtected(cfg), recipeHandler.UploadImage)
	api.Post("/recipes/:slug/like-toggle", middleware.JWTProtected(cfg), recipeHandler.LikeToggle)

	// Reviews, nested under their recipe
	api.Get("/recipes/:slug/reviews", reviewHandler.List)
	api.Post("/recipes/:slug/reviews", middleware.JWTProtected(cfg), reviewHandler.Create)
	api.Get("/recipes/:slug/reviews/:id", reviewHandler.Get)
	api.Patch("/recipes/:slug/reviews/:id", middleware.JWTProtected(cfg), reviewHandler.Update)
	api.Delete("/recipes/:slug/reviews/:id", middleware.JWTProtected(cfg), reviewHandler.Delete)
}
