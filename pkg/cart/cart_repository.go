package cart

import (
	"context"

	"gorm.io/gorm"

	"github.com/Ifeanyi-M/Sweetopia-Backend/entities"
)

type (
	CartRepository interface {
		GetCartByUserID(ctx context.Context, userID string) (*entities.ShoppingCart, error)
		CreateCart(ctx context.Context, cart *entities.ShoppingCart) error
		DeleteCart(ctx context.Context, id uint) error
		CreateCartItem(ctx context.Context, cartItem *entities.CartItem) error
		UpdateCartItemQuantity(ctx context.Context, id uint, quantity int) error
		DeleteCartItem(ctx context.Context, id uint) error
	}

	cartRepository struct {
		db *gorm.DB
	}
)

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) GetCartByUserID(ctx context.Context, userID string) (*entities.ShoppingCart, error) {
	var cart entities.ShoppingCart
	if err := r.db.WithContext(ctx).
		Preload("CartItems.MenuItem").
		Where("user_id = ?", userID).
		First(&cart).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepository) CreateCart(ctx context.Context, cart *entities.ShoppingCart) error {
	return r.db.WithContext(ctx).Create(cart).Error
}

func (r *cartRepository) DeleteCart(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Select("CartItems").Delete(&entities.ShoppingCart{ID: id}).Error
}

func (r *cartRepository) CreateCartItem(ctx context.Context, cartItem *entities.CartItem) error {
	return r.db.WithContext(ctx).Create(cartItem).Error
}

func (r *cartRepository) UpdateCartItemQuantity(ctx context.Context, id uint, quantity int) error {
	return r.db.WithContext(ctx).Model(&entities.CartItem{}).
		Where("id = ?", id).
		Update("quantity", quantity).Error
}

func (r *cartRepository) DeleteCartItem(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.CartItem{}).Error
}
