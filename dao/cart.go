package dao

import (
	"context"

	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/models"

	"gorm.io/gorm"
)

type Cart struct {
	Repo[models.CartItem]
}

func NewCart(db *gorm.DB) *Cart {
	return &Cart{Repo: NewRepo[models.CartItem](db)}
}

func (c *Cart) ListByUser(ctx context.Context, userID uint64) ([]*models.CartItem, error) {
	items := make([]*models.CartItem, 0)
	err := c.Conn(ctx).Preload("Product").
		Where("user_id = ?", userID).
		Order("id DESC").
		Find(&items).Error
	return items, err
}

// FindOwnedByIds 只返回属于该用户的购物车行
func (c *Cart) FindOwnedByIds(ctx context.Context, userID uint64, ids []uint64) ([]*models.CartItem, error) {
	items := make([]*models.CartItem, 0, len(ids))
	err := c.Conn(ctx).Where("user_id = ? AND id IN ?", userID, ids).Order("id ASC").Find(&items).Error
	return items, err
}

func (c *Cart) FindLine(ctx context.Context, userID, productID uint64, spec string) (*models.CartItem, error) {
	return c.FindByWhere(ctx, "user_id = ? AND product_id = ? AND spec = ?", userID, productID, spec)
}

func (c *Cart) DeleteOwned(ctx context.Context, userID uint64, ids []uint64) (int64, error) {
	result := c.Conn(ctx).Where("user_id = ? AND id IN ?", userID, ids).Delete(&models.CartItem{})
	return result.RowsAffected, result.Error
}
