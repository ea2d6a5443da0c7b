package shopping

import (
	"context"
	"errors"

	"Household-Planner-Backend/domain"
	"Household-Planner-Backend/entities"

	"gorm.io/gorm"
)

type (
	ShoppingRepository interface {
		AddItem(ctx context.Context, item *entities.ShoppingItem) error
		GetItems(ctx context.Context) ([]entities.ShoppingItem, error)
		GetItemByID(ctx context.Context, id uint) (*entities.ShoppingItem, error)
		UpdateItem(ctx context.Context, item *entities.ShoppingItem) error
		DeleteItem(ctx context.Context, id uint) error
		ClearDone(ctx context.Context) error
	}

	shoppingRepository struct {
		db *gorm.DB
	}
)

func NewShoppingRepository(db *gorm.DB) ShoppingRepository {
	return &shoppingRepository{db: db}
}

func (r *shoppingRepository) AddItem(ctx context.Context, item *entities.ShoppingItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// GetItems returns the whole list ordered for display: urgent categories
// first, open items before done ones, newest entries on top.
func (r *shoppingRepository) GetItems(ctx context.Context) ([]entities.ShoppingItem, error) {
	var items []entities.ShoppingItem
	if err := r.db.WithContext(ctx).
		Order("CASE category WHEN 'urgent' THEN 1 WHEN 'this-week' THEN 2 ELSE 3 END").
		Order("done asc").
		Order("created_at desc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *shoppingRepository) GetItemByID(ctx context.Context, id uint) (*entities.ShoppingItem, error) {
	var item entities.ShoppingItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrShoppingItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *shoppingRepository) UpdateItem(ctx context.Context, item *entities.ShoppingItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *shoppingRepository) DeleteItem(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.ShoppingItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrShoppingItemNotFound
	}
	return nil
}

func (r *shoppingRepository) ClearDone(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("done = ?", true).Delete(&entities.ShoppingItem{}).Error
}
