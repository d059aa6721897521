package dao

import (
	"context"

	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/models"

	"gorm.io/gorm"
)

type Address struct {
	Repo[models.Address]
}

func NewAddress(db *gorm.DB) *Address {
	return &Address{Repo: NewRepo[models.Address](db)}
}

func (a *Address) ListByUser(ctx context.Context, userID uint64) ([]*models.Address, error) {
	items := make([]*models.Address, 0)
	err := a.Conn(ctx).Where("user_id = ?", userID).
		Order("is_default DESC").Order("id DESC").
		Find(&items).Error
	return items, err
}

// FindOwned 只返回属于该用户的地址
func (a *Address) FindOwned(ctx context.Context, id, userID uint64) (*models.Address, error) {
	return a.FindByWhere(ctx, "id = ? AND user_id = ?", id, userID)
}

func (a *Address) ClearDefault(ctx context.Context, userID uint64) error {
	_, err := a.UpdateWhere(ctx, map[string]any{"is_default": false}, "user_id = ? AND is_default = ?", userID, true)
	return err
}

func (a *Address) DeleteOwned(ctx context.Context, id, userID uint64) (int64, error) {
	result := a.Conn(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&models.Address{})
	return result.RowsAffected, result.Error
}
