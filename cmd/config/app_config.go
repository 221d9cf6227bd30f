package config

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"

	"github.com/Ifeanyi-M/Sweetopia-Backend/internal/api/handlers"
	"github.com/Ifeanyi-M/Sweetopia-Backend/internal/api/routes"
	"github.com/Ifeanyi-M/Sweetopia-Backend/internal/middleware"
	"github.com/Ifeanyi-M/Sweetopia-Backend/internal/utils"
	"github.com/Ifeanyi-M/Sweetopia-Backend/internal/utils/storage"
	"github.com/Ifeanyi-M/Sweetopia-Backend/pkg/cart"
	"github.com/Ifeanyi-M/Sweetopia-Backend/pkg/jwt"
	"github.com/Ifeanyi-M/Sweetopia-Backend/pkg/menu"
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
		TimeZone:   "Africa/Lagos",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	menuRepository := menu.NewMenuRepository(db)
	cartRepository := cart.NewCartRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	menuService := menu.NewMenuService(menuRepository, s3)
	cartService := cart.NewCartService(cartRepository, menuRepository)

	// Handler
	menuItemHandler := handlers.NewMenuItemHandler(menuService, validator)
	cartHandler := handlers.NewCartHandler(cartService, validator)

	// routes
	routesConfig := routes.Config{
		App:             app,
		MenuItemHandler: menuItemHandler,
		CartHandler:     cartHandler,
		Middleware:      middlewares,
		JWTService:      jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
