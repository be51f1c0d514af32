package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/okhrimenko/recipe-scout/internal/dto"
	"github.com/okhrimenko/recipe-scout/internal/services"
	"github.com/okhrimenko/recipe-scout/internal/validation"
)

type IngredientHandler struct {
	service *services.IngredientService
}

func NewIngredientHandler(service *services.IngredientService) *IngredientHandler {
	return &IngredientHandler{service: service}
}

func (h *IngredientHandler) List(c *fiber.Ctx) error {
	q := dto.IngredientListQuery{
		Name:     c.Query("name"),
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Ordering: c.Query("ordering"),
	}
	if v := c.QueryInt("caloric_min", -1); v >= 0 {
		q.CaloricMin = &v
	}
	if v := c.QueryInt("caloric_max", -1); v >= 0 {
		q.CaloricMax = &v
	}

	ingredients, err := h.service.List(&q)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list ingredients",
		})
	}

	return c.JSON(fiber.Map{"results": ingredients})
}

func (h *IngredientHandler) Get(c *fiber.Ctx) error {
	ingredient, err := h.service.GetBySlug(c.Params("slug"))
	if err != nil {
		if errors.Is(err, services.ErrIngredientNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(ingredient)
}

func (h *IngredientHandler) Create(c *fiber.Ctx) error {
	var req dto.IngredientRequest
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

	ingredient, err := h.service.Create(&req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create ingredient",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(ingredient)
}

func (h *IngredientHandler) Update(c *fiber.Ctx) error {
	var req dto.IngredientRequest
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

	ingredient, err := h.service.Update(c.Params("slug"), &req)
	if err != nil {
		if errors.Is(err, services.ErrIngredientNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update ingredient",
		})
	}

	return c.JSON(ingredient)
}

func (h *IngredientHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Params("slug")); err != nil {
		if errors.Is(err, services.ErrIngredientNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete ingredient",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
