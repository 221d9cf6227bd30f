package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessGetMenuItems   = "menu items retrieved successfully"
	MessageSuccessGetMenuItem    = "menu item retrieved successfully"
	MessageSuccessCreateMenuItem = "menu item created successfully"
	MessageSuccessUpdateMenuItem = "menu item updated successfully"
	MessageSuccessDeleteMenuItem = "menu item deleted successfully"

	MessageFailedGetMenuItems   = "failed to retrieve menu items"
	MessageFailedGetMenuItem    = "failed to retrieve menu item"
	MessageFailedCreateMenuItem = "failed to create menu item"
	MessageFailedUpdateMenuItem = "failed to update menu item"
	MessageFailedDeleteMenuItem = "failed to delete menu item"

	ErrInvalidMenuItemID  = errors.New("invalid menu item id")
	ErrMenuItemNotFound   = errors.New("menu item not found")
	ErrMenuItemIDMismatch = errors.New("menu item id mismatch")
	ErrImageRequired      = errors.New("menu item image is required")
)

type (
	CreateMenuItemRequest struct {
		Name        string                `json:"name" form:"name" validate:"required"`
		Description string                `json:"description" form:"description"`
		SpecialTag  string                `json:"special_tag" form:"specialTag"`
		Category    string                `json:"category" form:"category" validate:"required"`
		Price       float64               `json:"price" form:"price" validate:"gte=0"`
		File        *multipart.FileHeader `json:"-" form:"-"`
	}

	UpdateMenuItemRequest struct {
		ID          uint                  `json:"id" form:"id" validate:"required"`
		Name        string                `json:"name" form:"name" validate:"required"`
		Description string                `json:"description" form:"description"`
		SpecialTag  string                `json:"special_tag" form:"specialTag"`
		Category    string                `json:"category" form:"category" validate:"required"`
		Price       float64               `json:"price" form:"price" validate:"gte=0"`
		File        *multipart.FileHeader `json:"-" form:"-"`
	}

	MenuItemResponse struct {
		ID          uint      `json:"id"`
		Name        string    `json:"name"`
		Description string    `json:"description"`
		SpecialTag  string    `json:"special_tag,omitempty"`
		Category    string    `json:"category"`
		Price       float64   `json:"price"`
		Image       string    `json:"image"`
		CreatedAt   time.Time `json:"created_at"`
	}
)
