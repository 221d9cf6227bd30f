package domain

import (
	"errors"
)

var (
	MessageSuccessGetCart    = "shopping cart retrieved successfully"
	MessageSuccessUpdateCart = "shopping cart updated successfully"

	MessageFailedGetCart    = "failed to retrieve shopping cart"
	MessageFailedUpdateCart = "failed to update shopping cart"

	ErrCartFetchFailed = errors.New("failed to load shopping cart")
)

type (
	UpsertCartItemRequest struct {
		UserID           string `json:"user_id" form:"userId" query:"userId" validate:"required"`
		MenuItemID       uint   `json:"menu_item_id" form:"menuItemId" query:"menuItemId" validate:"required"`
		UpdateQuantityBy int    `json:"update_quantity_by" form:"updateQuantityBy" query:"updateQuantityBy"`
	}

	CartItemResponse struct {
		ID         uint              `json:"id"`
		MenuItemID uint              `json:"menu_item_id"`
		Quantity   int               `json:"quantity"`
		MenuItem   *MenuItemResponse `json:"menu_item,omitempty"`
	}

	ShoppingCartResponse struct {
		ID        uint               `json:"id"`
		UserID    string             `json:"user_id"`
		CartTotal float64            `json:"cart_total"`
		CartItems []CartItemResponse `json:"cart_items"`
	}
)
