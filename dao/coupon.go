package dao

import (
	"context"
	"time"

	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/models"

	"gorm.io/gorm"
)

type Coupon struct {
	Repo[models.Coupon]
}

func NewCoupon(db *gorm.DB) *Coupon {
	return &Coupon{Repo: NewRepo[models.Coupon](db)}
}

// ListActive 领券中心展示的模板
func (c *Coupon) ListActive(ctx context.Context, now time.Time) ([]*models.Coupon, error) {
	items := make([]*models.Coupon, 0)
	err := c.Conn(ctx).
		Where("is_active = ?", true).
		Where("end_at IS NULL OR end_at > ?", now).
		Order("id DESC").
		Find(&items).Error
	return items, err
}

// IncrReceived 领取计数 +1，发放上限已满时返回 ErrConditionNotMet
func (c *Coupon) IncrReceived(ctx context.Context, id uint64) error {
	rows, err := c.UpdateWhere(ctx, map[string]any{
		"received_count": gorm.Expr("received_count + ?", 1),
	}, "id = ? AND (total_count = 0 OR received_count < total_count)", id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrConditionNotMet
	}
	return nil
}

type UserCoupon struct {
	Repo[models.UserCoupon]
}

func NewUserCoupon(db *gorm.DB) *UserCoupon {
	return &UserCoupon{Repo: NewRepo[models.UserCoupon](db)}
}

func (u *UserCoupon) FindOwned(ctx context.Context, id, userID uint64) (*models.UserCoupon, error) {
	return u.FindByWhere(ctx, "id = ? AND user_id = ?", id, userID)
}

func (u *UserCoupon) HasClaimed(ctx context.Context, userID, couponID uint64) (bool, error) {
	return u.IsExist(ctx, "user_id = ? AND coupon_id = ?", userID, couponID)
}

// ClaimedTemplateIds 用户领过的模板 ID 集合
func (u *UserCoupon) ClaimedTemplateIds(ctx context.Context, userID uint64) (map[uint64]struct{}, error) {
	var ids []uint64
	err := u.Conn(ctx).Model(&models.UserCoupon{}).
		Where("user_id = ? AND coupon_id > 0", userID).
		Distinct().Pluck("coupon_id", &ids).Error
	if err != nil {
		return nil, err
	}
	set := make(map[uint64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set, nil
}

func (u *UserCoupon) ListByUser(ctx context.Context, userID uint64, status models.UserCouponStatus) ([]*models.UserCoupon, error) {
	if status == "" {
		return u.FindAll(ctx, "user_id = ?", userID)
	}
	return u.FindAll(ctx, "user_id = ? AND status = ?", userID, status)
}

// ListUnexpired 未使用且未过期，门槛由调用方判断
func (u *UserCoupon) ListUnexpired(ctx context.Context, userID uint64, now time.Time) ([]*models.UserCoupon, error) {
	return u.FindAll(ctx, "user_id = ? AND status = ? AND expire_at > ?", userID, models.CouponUnused, now)
}

// MarkUsed unused -> used，只有一个请求能成功
func (u *UserCoupon) MarkUsed(ctx context.Context, id uint64, orderID string, now time.Time) error {
	rows, err := u.UpdateWhere(ctx, map[string]any{
		"status":   models.CouponUsed,
		"order_id": orderID,
		"used_at":  now,
	}, "id = ? AND status = ?", id, models.CouponUnused)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrConditionNotMet
	}
	return nil
}

// ExpireOverdue 把已过期但仍是 unused 的券置为 expired
func (u *UserCoupon) ExpireOverdue(ctx context.Context, userID uint64, now time.Time) (int64, error) {
	return u.UpdateWhere(ctx, map[string]any{
		"status": models.CouponExpired,
	}, "user_id = ? AND status = ? AND expire_at <= ?", userID, models.CouponUnused, now)
}
