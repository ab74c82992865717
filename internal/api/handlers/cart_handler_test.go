package handlers_test

import (
	"context"
	"encoding/json"
	"food-ordering-api/domain"
	"food-ordering-api/internal/api/handlers"
	"food-ordering-api/internal/api/presenters"
	"food-ordering-api/internal/utils"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cartServiceStub struct {
	AddToCartFunc func(ctx context.Context, req domain.AddToCartRequest, userID string) (domain.CartLineResponse, error)
	CheckoutFunc  func(ctx context.Context, req domain.CheckoutRequest, userID string) (domain.CheckoutResponse, error)
}

func (s *cartServiceStub) AddToCart(ctx context.Context, req domain.AddToCartRequest, userID string) (domain.CartLineResponse, error) {
	return s.AddToCartFunc(ctx, req, userID)
}
func (s *cartServiceStub) GetCart(ctx context.Context, userID string) (domain.CartResponse, error) {
	return domain.CartResponse{Items: []domain.CartLineResponse{}}, nil
}
func (s *cartServiceStub) UpdateQuantity(ctx context.Context, itemID, userID string, quantity int) error {
	return nil
}
func (s *cartServiceStub) RemoveItem(ctx context.Context, itemID, userID string) error {
	return nil
}
func (s *cartServiceStub) Checkout(ctx context.Context, req domain.CheckoutRequest, userID string) (domain.CheckoutResponse, error) {
	return s.CheckoutFunc(ctx, req, userID)
}

const testUserID = "3f2c8f1e-8f7a-4c21-9a6e-1d2b3c4d5e6f"

func newCartTestApp(stub *cartServiceStub) *fiber.App {
	utils.InitValidator()
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", testUserID)
		return c.Next()
	})

	handler := handlers.NewCartHandler(stub, utils.Validate)
	app.Post("/api/v1/cart", handler.AddToCart)
	app.Get("/api/v1/cart", handler.GetCart)
	app.Post("/api/v1/cart/checkout", handler.Checkout)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target, body string) (*http.Response, presenters.Response) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var parsed presenters.Response
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return resp, parsed
}

func TestAddToCartHandler(t *testing.T) {
	menuItemID := uuid.NewString()

	t.Run("valid request returns 201", func(t *testing.T) {
		stub := &cartServiceStub{
			AddToCartFunc: func(ctx context.Context, req domain.AddToCartRequest, userID string) (domain.CartLineResponse, error) {
				assert.Equal(t, testUserID, userID)
				assert.Equal(t, menuItemID, req.MenuItemID)
				return domain.CartLineResponse{MenuItemID: req.MenuItemID, Quantity: 2, LineTotal: 19.00}, nil
			},
		}

		resp, parsed := doJSON(t, newCartTestApp(stub), fiber.MethodPost, "/api/v1/cart",
			`{"menu_item_id":"`+menuItemID+`","quantity":2}`)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
		assert.True(t, parsed.Status)
		assert.Equal(t, domain.MessageSuccessAddToCart, parsed.Message)
	})

	t.Run("missing menu item id is rejected", func(t *testing.T) {
		stub := &cartServiceStub{
			AddToCartFunc: func(ctx context.Context, req domain.AddToCartRequest, userID string) (domain.CartLineResponse, error) {
				t.Errorf("service should not be called for an invalid body")
				return domain.CartLineResponse{}, nil
			},
		}

		resp, parsed := doJSON(t, newCartTestApp(stub), fiber.MethodPost, "/api/v1/cart", `{"quantity":2}`)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.False(t, parsed.Status)
	})

	t.Run("unknown menu item returns 404", func(t *testing.T) {
		stub := &cartServiceStub{
			AddToCartFunc: func(ctx context.Context, req domain.AddToCartRequest, userID string) (domain.CartLineResponse, error) {
				return domain.CartLineResponse{}, domain.ErrMenuItemNotFound
			},
		}

		resp, parsed := doJSON(t, newCartTestApp(stub), fiber.MethodPost, "/api/v1/cart",
			`{"menu_item_id":"`+menuItemID+`"}`)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
		assert.Equal(t, domain.ErrMenuItemNotFound.Error(), parsed.Error)
	})
}

func TestCheckoutHandler(t *testing.T) {
	t.Run("valid request returns 201 with order summary", func(t *testing.T) {
		orderID := uuid.NewString()
		stub := &cartServiceStub{
			CheckoutFunc: func(ctx context.Context, req domain.CheckoutRequest, userID string) (domain.CheckoutResponse, error) {
				assert.Equal(t, "1 Main St", req.DeliveryAddress)
				assert.Equal(t, "555-0100", req.Phone)
				return domain.CheckoutResponse{OrderID: orderID, TotalAmount: 22.25, Status: "pending"}, nil
			},
		}

		resp, parsed := doJSON(t, newCartTestApp(stub), fiber.MethodPost, "/api/v1/cart/checkout",
			`{"delivery_address":"1 Main St","phone":"555-0100"}`)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
		assert.Equal(t, domain.MessageSuccessCheckout, parsed.Message)

		data, ok := parsed.Data.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, orderID, data["order_id"])
		assert.Equal(t, 22.25, data["total_amount"])
		assert.Equal(t, "pending", data["status"])
	})

	t.Run("missing delivery address is rejected", func(t *testing.T) {
		stub := &cartServiceStub{
			CheckoutFunc: func(ctx context.Context, req domain.CheckoutRequest, userID string) (domain.CheckoutResponse, error) {
				t.Errorf("service should not be called for an invalid body")
				return domain.CheckoutResponse{}, nil
			},
		}

		resp, parsed := doJSON(t, newCartTestApp(stub), fiber.MethodPost, "/api/v1/cart/checkout",
			`{"phone":"555-0100"}`)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.False(t, parsed.Status)
	})

	t.Run("empty cart returns 400", func(t *testing.T) {
		stub := &cartServiceStub{
			CheckoutFunc: func(ctx context.Context, req domain.CheckoutRequest, userID string) (domain.CheckoutResponse, error) {
				return domain.CheckoutResponse{}, domain.ErrCartEmpty
			},
		}

		resp, parsed := doJSON(t, newCartTestApp(stub), fiber.MethodPost, "/api/v1/cart/checkout",
			`{"delivery_address":"1 Main St","phone":"555-0100"}`)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, domain.ErrCartEmpty.Error(), parsed.Error)
	})
}
