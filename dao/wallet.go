package dao

import (
	"context"

	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/models"

	"gorm.io/gorm"
)

type Wallet struct {
	Repo[models.WalletTransaction]
}

func NewWallet(db *gorm.DB) *Wallet {
	return &Wallet{Repo: NewRepo[models.WalletTransaction](db)}
}

func (w *Wallet) ListByUser(ctx context.Context, userID uint64, page, limit int) ([]*models.WalletTransaction, int64, error) {
	return w.Page(ctx, page, limit, func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	})
}
