package handlers

import (
	"food-ordering-api/domain"
	"food-ordering-api/internal/api/presenters"
	"food-ordering-api/pkg/menu"
	"github.com/gofiber/fiber/v2"
)

type (
	MenuHandler interface {
		GetCategories(c *fiber.Ctx) error
		GetMenuItems(c *fiber.Ctx) error
	}

	menuHandler struct {
		menuService menu.MenuService
	}
)

func NewMenuHandler(menuService menu.MenuService) MenuHandler {
	return &menuHandler{
		menuService: menuService,
	}
}

func (h *menuHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.menuService.GetCategories(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetCategories, err)
	}

	return presenters.SuccessResponse(c, categories, fiber.StatusOK, domain.MessageSuccessGetCategories)
}

func (h *menuHandler) GetMenuItems(c *fiber.Ctx) error {
	category := c.Query("category", domain.CategoryAll)

	items, err := h.menuService.GetMenuItems(c.Context(), category)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetMenuItems, err)
	}

	return presenters.SuccessResponse(c, items, fiber.StatusOK, domain.MessageSuccessGetMenuItems)
}
