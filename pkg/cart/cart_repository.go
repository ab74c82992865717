package cart

import (
	"food-ordering-api/entities"
	"context"
	"errors"
	"gorm.io/gorm"
)

type (
	CartRepository interface {
		GetCartItems(ctx context.Context, userID string) ([]*entities.CartItem, error)
		GetCartItemByID(ctx context.Context, id string) (*entities.CartItem, error)
		GetCartItemByMenuItem(ctx context.Context, userID string, menuItemID string) (*entities.CartItem, error)
		CreateCartItem(ctx context.Context, item *entities.CartItem) error
		UpdateCartItemQuantity(ctx context.Context, id string, quantity int) error
		DeleteCartItem(ctx context.Context, id string) error
		DeleteCartItemsByUser(ctx context.Context, userID string) error
		CountCartQuantity(ctx context.Context, userID string) (int64, error)
	}

	cartRepository struct {
		db *gorm.DB
	}
)

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) GetCartItems(ctx context.Context, userID string) ([]*entities.CartItem, error) {
	var items []*entities.CartItem
	if err := r.db.WithContext(ctx).
		Preload("MenuItem").
		Where("user_id = ?", userID).
		Order("created_at asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *cartRepository) GetCartItemByID(ctx context.Context, id string) (*entities.CartItem, error) {
	var item entities.CartItem
	if err := r.db.WithContext(ctx).
		Preload("MenuItem").
		Where("id = ?", id).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, err
	}
	return &item, nil
}

func (r *cartRepository) GetCartItemByMenuItem(ctx context.Context, userID string, menuItemID string) (*entities.CartItem, error) {
	var item entities.CartItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND menu_item_id = ?", userID, menuItemID).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *cartRepository) CreateCartItem(ctx context.Context, item *entities.CartItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *cartRepository) UpdateCartItemQuantity(ctx context.Context, id string, quantity int) error {
	return r.db.WithContext(ctx).Model(&entities.CartItem{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"quantity": quantity}).Error
}

func (r *cartRepository) DeleteCartItem(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.CartItem{}).Error
}

func (r *cartRepository) DeleteCartItemsByUser(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&entities.CartItem{}).Error
}

func (r *cartRepository) CountCartQuantity(ctx context.Context, userID string) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&entities.CartItem{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
