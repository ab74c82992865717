package handlers

import (
	"food-ordering-api/domain"
	"food-ordering-api/internal/api/presenters"
	"food-ordering-api/pkg/order"
	"github.com/gofiber/fiber/v2"
)

type (
	OrderHandler interface {
		GetOrderHistory(c *fiber.Ctx) error
	}

	orderHandler struct {
		orderService order.OrderService
	}
)

func NewOrderHandler(orderService order.OrderService) OrderHandler {
	return &orderHandler{
		orderService: orderService,
	}
}

func (h *orderHandler) GetOrderHistory(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	orders, err := h.orderService.GetOrderHistory(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetOrders, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"count":  len(orders),
		"orders": orders,
	}, fiber.StatusOK, domain.MessageSuccessGetOrders)
}
