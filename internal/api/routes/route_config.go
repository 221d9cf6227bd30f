package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Ifeanyi-M/Sweetopia-Backend/internal/api/handlers"
	"github.com/Ifeanyi-M/Sweetopia-Backend/internal/middleware"
	"github.com/Ifeanyi-M/Sweetopia-Backend/pkg/jwt"
)

type Config struct {
	App             *fiber.App
	MenuItemHandler handlers.MenuItemHandler
	CartHandler     handlers.CartHandler
	Middleware      middleware.Middleware
	JWTService      jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.MenuItems()
	c.Cart()
	c.GuestRoute()
}

func (c *Config) MenuItems() {
	menuItems := c.App.Group("/api/menu-items")

	// Catalog reads are public.
	menuItems.Get("", c.MenuItemHandler.GetMenuItems)
	menuItems.Get("/:id", c.MenuItemHandler.GetMenuItem)

	// Catalog mutations are admin only.
	auth := c.Middleware.AuthMiddleware(c.JWTService)
	onlyAdmin := c.Middleware.OnlyAdmin()
	menuItems.Post("", auth, onlyAdmin, c.MenuItemHandler.CreateMenuItem)
	menuItems.Put("/:id", auth, onlyAdmin, c.MenuItemHandler.UpdateMenuItem)
	menuItems.Delete("/:id", auth, onlyAdmin, c.MenuItemHandler.DeleteMenuItem)
}

func (c *Config) Cart() {
	cart := c.App.Group("/api/cart")
	{
		cart.Get("", c.CartHandler.GetCart)
		cart.Post("", c.CartHandler.AddOrUpdateItem)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong, its works"})
	})
}
