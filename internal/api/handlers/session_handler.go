package handlers

import (
	"food-ordering-api/domain"
	"food-ordering-api/internal/api/presenters"
	"food-ordering-api/pkg/user"
	"errors"
	"github.com/gofiber/fiber/v2"
)

type (
	SessionHandler interface {
		GetSummary(c *fiber.Ctx) error
		Logout(c *fiber.Ctx) error
	}

	sessionHandler struct {
		userService user.UserService
	}
)

func NewSessionHandler(userService user.UserService) SessionHandler {
	return &sessionHandler{
		userService: userService,
	}
}

func (h *sessionHandler) GetSummary(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	summary, err := h.userService.GetSessionSummary(c.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetSession, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetSession, err)
	}

	return presenters.SuccessResponse(c, summary, fiber.StatusOK, domain.MessageSuccessGetSession)
}

// Logout acknowledges sign-out. Sessions are stateless bearer tokens, so the
// client discards its token; there is no server-side state to clear.
func (h *sessionHandler) Logout(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessLogout)
}
