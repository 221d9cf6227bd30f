package menu

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Ifeanyi-M/Sweetopia-Backend/domain"
	"github.com/Ifeanyi-M/Sweetopia-Backend/entities"
	"github.com/Ifeanyi-M/Sweetopia-Backend/internal/utils"
	"github.com/Ifeanyi-M/Sweetopia-Backend/internal/utils/storage"
)

const defaultContainer = "menu-items"

type (
	MenuService interface {
		GetMenuItems(ctx context.Context) ([]domain.MenuItemResponse, error)
		GetMenuItemByID(ctx context.Context, id uint) (domain.MenuItemResponse, error)
		CreateMenuItem(ctx context.Context, req domain.CreateMenuItemRequest) (domain.MenuItemResponse, error)
		UpdateMenuItem(ctx context.Context, id uint, req domain.UpdateMenuItemRequest) error
		DeleteMenuItem(ctx context.Context, id uint) error
	}

	menuService struct {
		menuRepository MenuRepository
		s3             storage.AwsS3
	}
)

func NewMenuService(menuRepository MenuRepository, s3 storage.AwsS3) MenuService {
	return &menuService{
		menuRepository: menuRepository,
		s3:             s3,
	}
}

func (s *menuService) GetMenuItems(ctx context.Context) ([]domain.MenuItemResponse, error) {
	menuItems, err := s.menuRepository.GetMenuItems(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.MenuItemResponse, 0, len(menuItems))
	for _, item := range menuItems {
		response = append(response, toMenuItemResponse(item))
	}

	return response, nil
}

func (s *menuService) GetMenuItemByID(ctx context.Context, id uint) (domain.MenuItemResponse, error) {
	if id == 0 {
		return domain.MenuItemResponse{}, domain.ErrInvalidMenuItemID
	}

	menuItem, err := s.menuRepository.GetMenuItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MenuItemResponse{}, domain.ErrMenuItemNotFound
		}
		return domain.MenuItemResponse{}, err
	}

	return toMenuItemResponse(menuItem), nil
}

func (s *menuService) CreateMenuItem(ctx context.Context, req domain.CreateMenuItemRequest) (domain.MenuItemResponse, error) {
	if req.File == nil || req.File.Size == 0 {
		return domain.MenuItemResponse{}, domain.ErrImageRequired
	}

	fileName := storage.FileNameWithExt(uuid.New().String(), req.File.Filename)
	objectKey, err := s.s3.UploadFile(fileName, req.File, s.container(), storage.AllowImage...)
	if err != nil {
		return domain.MenuItemResponse{}, err
	}

	menuItem := &entities.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		SpecialTag:  req.SpecialTag,
		Category:    req.Category,
		Price:       req.Price,
		Image:       s.s3.GetPublicLinkKey(objectKey),
	}

	// A failed insert after a successful upload leaves the object
	// orphaned in the bucket; there is no compensating delete.
	if err := s.menuRepository.CreateMenuItem(ctx, menuItem); err != nil {
		return domain.MenuItemResponse{}, err
	}

	return toMenuItemResponse(menuItem), nil
}

func (s *menuService) UpdateMenuItem(ctx context.Context, id uint, req domain.UpdateMenuItemRequest) error {
	if id != req.ID {
		return domain.ErrMenuItemIDMismatch
	}

	menuItem, err := s.menuRepository.GetMenuItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMenuItemNotFound
		}
		return err
	}

	menuItem.Name = req.Name
	menuItem.Description = req.Description
	menuItem.SpecialTag = req.SpecialTag
	menuItem.Category = req.Category
	menuItem.Price = req.Price

	if req.File != nil && req.File.Size > 0 {
		if objectKey := s.s3.GetObjectKeyFromLink(menuItem.Image); objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}

		fileName := storage.FileNameWithExt(uuid.New().String(), req.File.Filename)
		objectKey, err := s.s3.UploadFile(fileName, req.File, s.container(), storage.AllowImage...)
		if err != nil {
			return err
		}
		menuItem.Image = s.s3.GetPublicLinkKey(objectKey)
	}

	return s.menuRepository.UpdateMenuItem(ctx, menuItem)
}

func (s *menuService) DeleteMenuItem(ctx context.Context, id uint) error {
	if id == 0 {
		return domain.ErrInvalidMenuItemID
	}

	menuItem, err := s.menuRepository.GetMenuItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMenuItemNotFound
		}
		return err
	}

	if objectKey := s.s3.GetObjectKeyFromLink(menuItem.Image); objectKey != "" {
		_ = s.s3.DeleteFile(objectKey)
	}

	return s.menuRepository.DeleteMenuItem(ctx, id)
}

func (s *menuService) container() string {
	if c := utils.GetConfig("AWS_S3_CONTAINER"); c != "" {
		return c
	}
	return defaultContainer
}

func toMenuItemResponse(item *entities.MenuItem) domain.MenuItemResponse {
	return domain.MenuItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		SpecialTag:  item.SpecialTag,
		Category:    item.Category,
		Price:       item.Price,
		Image:       item.Image,
		CreatedAt:   item.CreatedAt,
	}
}
