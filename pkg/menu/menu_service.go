package menu

import (
	"food-ordering-api/domain"
	"context"
)

type (
	MenuService interface {
		GetCategories(ctx context.Context) ([]domain.CategoryResponse, error)
		GetMenuItems(ctx context.Context, categoryID string) ([]domain.MenuItemResponse, error)
	}

	menuService struct {
		menuRepository MenuRepository
	}
)

func NewMenuService(menuRepository MenuRepository) MenuService {
	return &menuService{
		menuRepository: menuRepository,
	}
}

func (s *menuService) GetCategories(ctx context.Context) ([]domain.CategoryResponse, error) {
	categories, err := s.menuRepository.GetCategories(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		response = append(response, domain.CategoryResponse{
			ID:           category.ID.String(),
			Name:         category.Name,
			Description:  category.Description,
			DisplayOrder: category.DisplayOrder,
		})
	}
	return response, nil
}

func (s *menuService) GetMenuItems(ctx context.Context, categoryID string) ([]domain.MenuItemResponse, error) {
	if categoryID == "" {
		categoryID = domain.CategoryAll
	}

	items, err := s.menuRepository.GetMenuItems(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.MenuItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, domain.MenuItemResponse{
			ID:           item.ID.String(),
			CategoryID:   item.CategoryID.String(),
			Name:         item.Name,
			Description:  item.Description,
			Price:        item.Price,
			ImageURL:     item.ImageURL,
			DisplayOrder: item.DisplayOrder,
			CreatedAt:    item.CreatedAt,
		})
	}
	return response, nil
}
