package dao

import (
	"context"
	"time"

	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Invite struct {
	Repo[models.InviteRecord]
}

func NewInvite(db *gorm.DB) *Invite {
	return &Invite{Repo: NewRepo[models.InviteRecord](db)}
}

func (i *Invite) FindByInvitee(ctx context.Context, inviteeID uint64) (*models.InviteRecord, error) {
	return i.FindByWhere(ctx, "invitee_id = ?", inviteeID)
}

// ClaimFirstOrder 只有首单能写入 first_order_id，并发支付时仅一个成功
func (i *Invite) ClaimFirstOrder(ctx context.Context, id uint64, orderID string, at time.Time, reward decimal.Decimal) error {
	rows, err := i.UpdateWhere(ctx, map[string]any{
		"first_order_id": orderID,
		"first_order_at": at,
		"total_orders":   gorm.Expr("total_orders + ?", 1),
		"total_reward":   gorm.Expr("total_reward + ?", reward),
	}, "id = ? AND first_order_id IS NULL", id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrConditionNotMet
	}
	return nil
}

func (i *Invite) ListByInviter(ctx context.Context, inviterID uint64, page, limit int) ([]*models.InviteRecord, int64, error) {
	return i.Page(ctx, page, limit, func(db *gorm.DB) *gorm.DB {
		return db.Where("inviter_id = ?", inviterID)
	}, "Invitee")
}

type Reward struct {
	Repo[models.RewardRecord]
}

func NewReward(db *gorm.DB) *Reward {
	return &Reward{Repo: NewRepo[models.RewardRecord](db)}
}

// PromoteMatured 冻结期已过的返利转为可提现
func (r *Reward) PromoteMatured(ctx context.Context, userID uint64, now time.Time) (int64, error) {
	return r.UpdateWhere(ctx, map[string]any{
		"status": models.RewardAvailable,
	}, "user_id = ? AND status = ? AND available_at <= ?", userID, models.RewardPending, now)
}

func (r *Reward) ListAvailable(ctx context.Context, userID uint64) ([]*models.RewardRecord, error) {
	return r.FindAll(ctx, "user_id = ? AND status = ?", userID, models.RewardAvailable)
}

// Complete 仅把仍为 available 的记录置为 completed，返回实际更新数
func (r *Reward) Complete(ctx context.Context, ids []uint64, now time.Time) (int64, error) {
	return r.UpdateWhere(ctx, map[string]any{
		"status":       models.RewardCompleted,
		"completed_at": now,
	}, "id IN ? AND status = ?", ids, models.RewardAvailable)
}

type RewardSum struct {
	Status models.RewardStatus
	Total  decimal.Decimal
}

// SumByStatus 按状态汇总返利金额
func (r *Reward) SumByStatus(ctx context.Context, userID uint64) (map[models.RewardStatus]decimal.Decimal, error) {
	rows := make([]RewardSum, 0, 3)
	err := r.Conn(ctx).Model(&models.RewardRecord{}).
		Select("status, COALESCE(SUM(amount), 0) AS total").
		Where("user_id = ?", userID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	sums := map[models.RewardStatus]decimal.Decimal{
		models.RewardPending:   decimal.Zero,
		models.RewardAvailable: decimal.Zero,
		models.RewardCompleted: decimal.Zero,
	}
	for _, row := range rows {
		sums[row.Status] = row.Total
	}
	return sums, nil
}

func (r *Reward) ListByUser(ctx context.Context, userID uint64, status models.RewardStatus, page, limit int) ([]*models.RewardRecord, int64, error) {
	return r.Page(ctx, page, limit, func(db *gorm.DB) *gorm.DB {
		db = db.Where("user_id = ?", userID)
		if status != "" {
			db = db.Where("status = ?", status)
		}
		return db
	})
}
