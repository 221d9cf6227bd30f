package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/Ifeanyi-M/Sweetopia-Backend/domain"
	"github.com/Ifeanyi-M/Sweetopia-Backend/internal/api/presenters"
	"github.com/Ifeanyi-M/Sweetopia-Backend/pkg/cart"
)

type (
	CartHandler interface {
		GetCart(c *fiber.Ctx) error
		AddOrUpdateItem(c *fiber.Ctx) error
	}

	cartHandler struct {
		cartService cart.CartService
		validator   *validator.Validate
	}
)

func NewCartHandler(cartService cart.CartService, validator *validator.Validate) CartHandler {
	return &cartHandler{
		cartService: cartService,
		validator:   validator,
	}
}

func (h *cartHandler) GetCart(c *fiber.Ctx) error {
	userID := c.Query("userId")

	res, err := h.cartService.GetCart(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCart, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *cartHandler) AddOrUpdateItem(c *fiber.Ctx) error {
	req := new(domain.UpsertCartItemRequest)

	if err := c.QueryParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	// Parameters may arrive in the form body instead of the query string.
	if req.UserID == "" || req.MenuItemID == 0 {
		_ = c.BodyParser(req)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateCart, err)
	}

	if err := h.cartService.AddOrUpdateItem(c.Context(), req.UserID, req.MenuItemID, req.UpdateQuantityBy); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateCart, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK)
}
