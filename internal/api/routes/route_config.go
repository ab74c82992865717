package routes

import (
	"food-ordering-api/internal/api/handlers"
	"food-ordering-api/internal/middleware"
	"food-ordering-api/pkg/jwt"
	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App            *fiber.App
	MenuHandler    handlers.MenuHandler
	CartHandler    handlers.CartHandler
	OrderHandler   handlers.OrderHandler
	SessionHandler handlers.SessionHandler
	Middleware     middleware.Middleware
	JWTService     jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Landing()
	c.Menu()
	c.Cart()
	c.Orders()
	c.Session()
}

// Landing has no data dependency; it only describes the service.
func (c *Config) Landing() {
	c.App.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"name":    "MHP Food Ordering",
			"tagline": "Fresh meals, delivered to your door",
			"menu":    "/api/v1/menu/items",
		})
	})
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

func (c *Config) Menu() {
	menu := c.App.Group("/api/v1/menu")
	{
		menu.Get("/categories", c.MenuHandler.GetCategories)
		menu.Get("/items", c.MenuHandler.GetMenuItems)
	}
}

func (c *Config) Cart() {
	cart := c.App.Group("/api/v1/cart", c.Middleware.AuthMiddleware(c.JWTService))
	{
		cart.Get("", c.CartHandler.GetCart)
		cart.Post("", c.CartHandler.AddToCart)
		cart.Post("/checkout", c.CartHandler.Checkout)
		cart.Patch("/:id", c.CartHandler.UpdateCartItem)
		cart.Delete("/:id", c.CartHandler.RemoveCartItem)
	}
}

func (c *Config) Orders() {
	orders := c.App.Group("/api/v1/orders", c.Middleware.AuthMiddleware(c.JWTService))
	{
		orders.Get("", c.OrderHandler.GetOrderHistory)
	}
}

func (c *Config) Session() {
	session := c.App.Group("/api/v1/session", c.Middleware.AuthMiddleware(c.JWTService))
	{
		session.Get("/summary", c.SessionHandler.GetSummary)
		session.Post("/logout", c.SessionHandler.Logout)
	}
}
