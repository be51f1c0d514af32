package handlers

import (
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/okhrimenko/recipe-scout/internal/dto"
	"github.com/okhrimenko/recipe-scout/internal/services"
)

type DailyHandler struct {
	service       *services.DailyService
	recipeService *services.RecipeService
	geoIP         *services.GeoIPClient
}

func NewDailyHandler(service *services.DailyService, recipeService *services.RecipeService, geoIP *services.GeoIPClient) *DailyHandler {
	return &DailyHandler{service: service, recipeService: recipeService, geoIP: geoIP}
}

func (h *DailyHandler) GetDailyRecipes(c *fiber.Ctx) error {
	ip := clientIP(c)
	location := h.geoIP.Locate(ip)
	if location.Fallback {
		slog.Info("geolocation fell back to default", "ip", ip, "reason", location.Reason)
	}

	recipes, err := h.service.GetDailyRecipes(location.Coords)
	if err != nil {
		slog.Error("daily recipes lookup failed", "error", err, "location", location.Coords)
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Error: true, Message: "Weather service is unavailable",
		})
	}

	results := make([]dto.RecipeResponse, len(recipes))
	for i := range recipes {
		results[i] = h.recipeService.ToResponse(&recipes[i], nil)
	}
	return c.JSON(fiber.Map{"results": results})
}

// clientIP prefers the first X-Forwarded-For entry over the connection's
// remote address.
func clientIP(c *fiber.Ctx) string {
	if forwarded := c.Get("X-Forwarded-For"); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	return c.IP()
}
