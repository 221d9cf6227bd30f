package cart

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Ifeanyi-M/Sweetopia-Backend/domain"
	"github.com/Ifeanyi-M/Sweetopia-Backend/entities"
	"github.com/Ifeanyi-M/Sweetopia-Backend/pkg/menu"
)

type (
	CartService interface {
		GetCart(ctx context.Context, userID string) (domain.ShoppingCartResponse, error)
		AddOrUpdateItem(ctx context.Context, userID string, menuItemID uint, updateQuantityBy int) error
	}

	cartService struct {
		cartRepository CartRepository
		menuRepository menu.MenuRepository
	}
)

func NewCartService(cartRepository CartRepository, menuRepository menu.MenuRepository) CartService {
	return &cartService{
		cartRepository: cartRepository,
		menuRepository: menuRepository,
	}
}

func (s *cartService) GetCart(ctx context.Context, userID string) (domain.ShoppingCartResponse, error) {
	// No user id means an empty cart shell; the store is not consulted.
	if userID == "" {
		return emptyCartResponse(""), nil
	}

	cart, err := s.cartRepository.GetCartByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return emptyCartResponse(userID), nil
		}
		return domain.ShoppingCartResponse{}, fmt.Errorf("%w: %v", domain.ErrCartFetchFailed, err)
	}

	return toShoppingCartResponse(cart), nil
}

// AddOrUpdateItem merges a quantity delta into the user's cart. A new
// cart is created on the first positive delta; a line item whose
// quantity reaches zero is removed, and removing the last line item
// removes the cart as well. A zero delta always removes the pairing.
func (s *cartService) AddOrUpdateItem(ctx context.Context, userID string, menuItemID uint, updateQuantityBy int) error {
	if _, err := s.menuRepository.GetMenuItemByID(ctx, menuItemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMenuItemNotFound
		}
		return err
	}

	cart, err := s.cartRepository.GetCartByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		cart = nil
	}

	if cart == nil {
		// Nothing to decrement.
		if updateQuantityBy <= 0 {
			return nil
		}

		newCart := &entities.ShoppingCart{UserID: userID}
		if err := s.cartRepository.CreateCart(ctx, newCart); err != nil {
			return err
		}

		return s.cartRepository.CreateCartItem(ctx, &entities.CartItem{
			ShoppingCartID: newCart.ID,
			MenuItemID:     menuItemID,
			Quantity:       updateQuantityBy,
		})
	}

	var itemInCart *entities.CartItem
	for i := range cart.CartItems {
		if cart.CartItems[i].MenuItemID == menuItemID {
			itemInCart = &cart.CartItems[i]
			break
		}
	}

	if itemInCart == nil {
		if updateQuantityBy <= 0 {
			return nil
		}

		return s.cartRepository.CreateCartItem(ctx, &entities.CartItem{
			ShoppingCartID: cart.ID,
			MenuItemID:     menuItemID,
			Quantity:       updateQuantityBy,
		})
	}

	newQuantity := itemInCart.Quantity + updateQuantityBy
	if updateQuantityBy == 0 || newQuantity <= 0 {
		if err := s.cartRepository.DeleteCartItem(ctx, itemInCart.ID); err != nil {
			return err
		}

		// That was the cart's last line item.
		if len(cart.CartItems) == 1 {
			return s.cartRepository.DeleteCart(ctx, cart.ID)
		}
		return nil
	}

	return s.cartRepository.UpdateCartItemQuantity(ctx, itemInCart.ID, newQuantity)
}

func emptyCartResponse(userID string) domain.ShoppingCartResponse {
	return domain.ShoppingCartResponse{
		UserID:    userID,
		CartItems: []domain.CartItemResponse{},
	}
}

func toShoppingCartResponse(cart *entities.ShoppingCart) domain.ShoppingCartResponse {
	response := domain.ShoppingCartResponse{
		ID:        cart.ID,
		UserID:    cart.UserID,
		CartItems: make([]domain.CartItemResponse, 0, len(cart.CartItems)),
	}

	for i := range cart.CartItems {
		item := &cart.CartItems[i]
		itemResponse := domain.CartItemResponse{
			ID:         item.ID,
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
		}
		if item.MenuItem != nil {
			menuItem := domain.MenuItemResponse{
				ID:          item.MenuItem.ID,
				Name:        item.MenuItem.Name,
				Description: item.MenuItem.Description,
				SpecialTag:  item.MenuItem.SpecialTag,
				Category:    item.MenuItem.Category,
				Price:       item.MenuItem.Price,
				Image:       item.MenuItem.Image,
				CreatedAt:   item.MenuItem.CreatedAt,
			}
			itemResponse.MenuItem = &menuItem
			response.CartTotal += float64(item.Quantity) * item.MenuItem.Price
		}
		response.CartItems = append(response.CartItems, itemResponse)
	}

	return response
}
