package handlers

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/Ifeanyi-M/Sweetopia-Backend/domain"
	"github.com/Ifeanyi-M/Sweetopia-Backend/internal/api/presenters"
	"github.com/Ifeanyi-M/Sweetopia-Backend/pkg/menu"
)

type (
	MenuItemHandler interface {
		GetMenuItems(c *fiber.Ctx) error
		GetMenuItem(c *fiber.Ctx) error
		CreateMenuItem(c *fiber.Ctx) error
		UpdateMenuItem(c *fiber.Ctx) error
		DeleteMenuItem(c *fiber.Ctx) error
	}

	menuItemHandler struct {
		menuService menu.MenuService
		validator   *validator.Validate
	}
)

func NewMenuItemHandler(menuService menu.MenuService, validator *validator.Validate) MenuItemHandler {
	return &menuItemHandler{
		menuService: menuService,
		validator:   validator,
	}
}

func (h *menuItemHandler) GetMenuItems(c *fiber.Ctx) error {
	items, err := h.menuService.GetMenuItems(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetMenuItems, err)
	}

	return presenters.SuccessResponse(c, items, fiber.StatusOK)
}

func (h *menuItemHandler) GetMenuItem(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMenuItem, domain.ErrInvalidMenuItemID)
	}

	item, err := h.menuService.GetMenuItemByID(c.Context(), uint(id))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidMenuItemID):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMenuItem, err)
		case errors.Is(err, domain.ErrMenuItemNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetMenuItem, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetMenuItem, err)
		}
	}

	return presenters.SuccessResponse(c, item, fiber.StatusOK)
}

func (h *menuItemHandler) CreateMenuItem(c *fiber.Ctx) error {
	req := new(domain.CreateMenuItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if file, err := c.FormFile("file"); err == nil {
		req.File = file
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateMenuItem, err)
	}

	res, err := h.menuService.CreateMenuItem(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrImageRequired) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateMenuItem, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCreateMenuItem, err)
	}

	c.Set(fiber.HeaderLocation, fmt.Sprintf("/api/menu-items/%d", res.ID))
	return presenters.SuccessResponse(c, res, fiber.StatusCreated)
}

func (h *menuItemHandler) UpdateMenuItem(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateMenuItem, domain.ErrInvalidMenuItemID)
	}

	req := new(domain.UpdateMenuItemRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if file, err := c.FormFile("file"); err == nil {
		req.File = file
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateMenuItem, err)
	}

	if err := h.menuService.UpdateMenuItem(c.Context(), uint(id), *req); err != nil {
		switch {
		case errors.Is(err, domain.ErrMenuItemIDMismatch),
			errors.Is(err, domain.ErrMenuItemNotFound):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateMenuItem, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdateMenuItem, err)
		}
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusNoContent)
}

func (h *menuItemHandler) DeleteMenuItem(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteMenuItem, domain.ErrInvalidMenuItemID)
	}

	if err := h.menuService.DeleteMenuItem(c.Context(), uint(id)); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidMenuItemID),
			errors.Is(err, domain.ErrMenuItemNotFound):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteMenuItem, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDeleteMenuItem, err)
		}
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusNoContent)
}
