package handlers

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/okhrimenko/recipe-scout/internal/auth"
	"github.com/okhrimenko/recipe-scout/internal/config"
	"github.com/okhrimenko/recipe-scout/internal/dto"
	"github.com/okhrimenko/recipe-scout/internal/services"
	"github.com/okhrimenko/recipe-scout/internal/validation"
)

type RecipeHandler struct {
	service     *services.RecipeService
	likeService *services.LikeService
	cfg         *config.Config
}

func NewRecipeHandler(service *services.RecipeService, likeService *services.LikeService, cfg *config.Config) *RecipeHandler {
	return &RecipeHandler{service: service, likeService: likeService, cfg: cfg}
}

func (h *RecipeHandler) List(c *fiber.Ctx) error {
	q := dto.RecipeListQuery{
		Category:   c.Query("category"),
		Country:    c.Query("country"),
		Difficulty: c.Query("difficulty"),
		Search:     c.Query("search"),
		Ordering:   c.Query("ordering"),
		Page:       c.QueryInt("page", 1),
		Size:       c.QueryInt("size", 0),
	}
	if raw := c.Query("ingredients"); raw != "" {
		q.Ingredients = strings.Split(raw, ",")
	}

	recipes, total, err := h.service.List(&q)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list recipes",
		})
	}

	callerID := h.optionalUserID(c)
	results := make([]dto.RecipeResponse, len(recipes))
	for i := range recipes {
		results[i] = h.service.ToResponse(&recipes[i], callerID)
	}

	size := q.Size
	if size < 1 {
		size = 3
	}
	if size > 15 {
		size = 15
	}
	page := q.Page
	if page < 1 {
		page = 1
	}

	return c.JSON(fiber.Map{
		"results": results,
		"pagination": dto.Pagination{
			Page:       page,
			Size:       size,
			Total:      total,
			TotalPages: (total + int64(size) - 1) / int64(size),
		},
	})
}

func (h *RecipeHandler) Get(c *fiber.Ctx) error {
	recipe, err := h.service.GetBySlug(c.Params("slug"))
	if err != nil {
		if errors.Is(err, services.ErrRecipeNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.JSON(h.service.ToResponse(recipe, h.optionalUserID(c)))
}

func (h *RecipeHandler) Create(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateRecipeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if fields := validation.Struct(&req); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Validation failed", Fields: fields,
		})
	}

	recipe, err := h.service.Create(userID, &req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create recipe",
		})
	}

	full, err := h.service.GetBySlug(recipe.Slug)
	if err != nil {
		full = recipe
	}
	return c.Status(fiber.StatusCreated).JSON(h.service.ToResponse(full, &userID))
}

func (h *RecipeHandler) Update(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.UpdateRecipeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if fields := validation.Struct(&req); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Validation failed", Fields: fields,
		})
	}

	recipe, err := h.service.Update(c.Params("slug"), userID, &req)
	if err != nil {
		return h.mutationError(c, err)
	}

	return c.JSON(h.service.ToResponse(recipe, &userID))
}

func (h *RecipeHandler) Delete(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	if err := h.service.Delete(c.Params("slug"), userID); err != nil {
		return h.mutationError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *RecipeHandler) LikeToggle(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	liked, count, err := h.likeService.Toggle(userID, c.Params("slug"))
	if err != nil {
		if errors.Is(err, services.ErrRecipeNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to toggle like",
		})
	}

	return c.JSON(dto.LikeToggleResponse{Liked: liked, LikeCount: count})
}

func (h *RecipeHandler) UploadImage(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Image file is required",
		})
	}

	slug := c.Params("slug")
	dir := filepath.Join(h.cfg.MediaRoot, "images_recipes")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to store image",
		})
	}

	path := filepath.Join(dir, slug+filepath.Ext(file.Filename))
	if err := c.SaveFile(file, path); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to store image",
		})
	}

	recipe, err := h.service.SetImage(slug, userID, path)
	if err != nil {
		return h.mutationError(c, err)
	}

	return c.JSON(h.service.ToResponse(recipe, &userID))
}

func (h *RecipeHandler) mutationError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrRecipeNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, services.ErrNotAuthor):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
}

// optionalUserID resolves the caller on public routes, where the JWT
// middleware is not mounted. An absent or bad token just means anonymous.
func (h *RecipeHandler) optionalUserID(c *fiber.Ctx) *uuid.UUID {
	header := c.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return nil
	}

	token, err := jwt.Parse(strings.TrimPrefix(header, "Bearer "), func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(h.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil
	}
	sub, _ := claims["sub"].(string)
	id, err := uuid.Parse(sub)
	if err != nil {
		return nil
	}
	return &id
}
