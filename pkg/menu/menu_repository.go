package menu

import (
	"context"

	"gorm.io/gorm"

	"github.com/Ifeanyi-M/Sweetopia-Backend/entities"
)

type (
	MenuRepository interface {
		GetMenuItems(ctx context.Context) ([]*entities.MenuItem, error)
		GetMenuItemByID(ctx context.Context, id uint) (*entities.MenuItem, error)
		CreateMenuItem(ctx context.Context, menuItem *entities.MenuItem) error
		UpdateMenuItem(ctx context.Context, menuItem *entities.MenuItem) error
		DeleteMenuItem(ctx context.Context, id uint) error
	}

	menuRepository struct {
		db *gorm.DB
	}
)

func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepository{db: db}
}

func (r *menuRepository) GetMenuItems(ctx context.Context) ([]*entities.MenuItem, error) {
	var menuItems []*entities.MenuItem
	if err := r.db.WithContext(ctx).Find(&menuItems).Error; err != nil {
		return nil, err
	}
	return menuItems, nil
}

func (r *menuRepository) GetMenuItemByID(ctx context.Context, id uint) (*entities.MenuItem, error) {
	var menuItem entities.MenuItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&menuItem).Error; err != nil {
		return nil, err
	}
	return &menuItem, nil
}

func (r *menuRepository) CreateMenuItem(ctx context.Context, menuItem *entities.MenuItem) error {
	return r.db.WithContext(ctx).Create(menuItem).Error
}

func (r *menuRepository) UpdateMenuItem(ctx context.Context, menuItem *entities.MenuItem) error {
	return r.db.WithContext(ctx).Save(menuItem).Error
}

func (r *menuRepository) DeleteMenuItem(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.MenuItem{}).Error
}
