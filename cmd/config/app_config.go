package config

import (
	"food-ordering-api/internal/api/handlers"
	"food-ordering-api/internal/api/routes"
	"food-ordering-api/internal/middleware"
	"food-ordering-api/internal/utils"
	"food-ordering-api/internal/utils/mailing"
	"food-ordering-api/pkg/cart"
	"food-ordering-api/pkg/jwt"
	"food-ordering-api/pkg/menu"
	"food-ordering-api/pkg/order"
	"food-ordering-api/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	mailer := mailing.NewMailer()

	// Repository
	userRepository := user.NewUserRepository(db)
	menuRepository := menu.NewMenuRepository(db)
	cartRepository := cart.NewCartRepository(db)
	orderRepository := order.NewOrderRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	menuService := menu.NewMenuService(menuRepository)
	cartService := cart.NewCartService(cartRepository, menuRepository, orderRepository, userRepository, mailer)
	orderService := order.NewOrderService(orderRepository)
	userService := user.NewUserService(userRepository, cartRepository)

	// Handler
	menuHandler := handlers.NewMenuHandler(menuService)
	cartHandler := handlers.NewCartHandler(cartService, validator)
	orderHandler := handlers.NewOrderHandler(orderService)
	sessionHandler := handlers.NewSessionHandler(userService)

	// routes
	routesConfig := routes.Config{
		App:            app,
		MenuHandler:    menuHandler,
		CartHandler:    cartHandler,
		OrderHandler:   orderHandler,
		SessionHandler: sessionHandler,
		Middleware:     middlewares,
		JWTService:     jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
