package service

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/dao"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/dao/cache"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/models"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/pkg/clock"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/types"

	"github.com/shopspring/decimal"
)

// 新用户通过邀请注册时发放的优惠券
const (
	newcomerCouponName  = "新人专享券"
	newcomerCouponCount = 2
)

var (
	newcomerCouponAmount    = decimal.NewFromInt(10)
	newcomerCouponMinAmount = decimal.NewFromInt(200)
)

func newcomerCoupons(uid uint64, now time.Time) []*models.UserCoupon {
	coupons := make([]*models.UserCoupon, 0, newcomerCouponCount)
	for i := 0; i < newcomerCouponCount; i++ {
		coupons = append(coupons, &models.UserCoupon{
			UserID:    uid,
			Name:      newcomerCouponName,
			Amount:    newcomerCouponAmount,
			MinAmount: newcomerCouponMinAmount,
			Status:    models.CouponUnused,
			ExpireAt:  now.Add(models.DefaultCouponValidity),
		})
	}
	return coupons
}

// couponExpireAt 有效天数优先，其次模板截止时间，都没有则 30 天
func couponExpireAt(tpl *models.Coupon, now time.Time) time.Time {
	switch {
	case tpl.ValidDays > 0:
		return now.AddDate(0, 0, tpl.ValidDays)
	case tpl.EndAt != nil:
		return *tpl.EndAt
	default:
		return now.Add(models.DefaultCouponValidity)
	}
}

var _ ICouponService = (*CouponService)(nil)

type ICouponService interface {
	List(ctx context.Context, uid uint64, status string) ([]*models.UserCoupon, error)
	Available(ctx context.Context, uid uint64, amount decimal.Decimal) ([]*models.UserCoupon, error)
	Center(ctx context.Context, uid uint64) ([]*types.CenterCoupon, error)
	Receive(ctx context.Context, uid, couponID uint64) (*models.UserCoupon, error)
}

type CouponService struct {
	Tx            *dao.Transactor
	Locker        cache.Locker
	Clock         clock.Clock
	CouponDAO     *dao.Coupon
	UserCouponDAO *dao.UserCoupon
}

// List 先把过期未用的券标记为 expired 再查询
func (c *CouponService) List(ctx context.Context, uid uint64, status string) ([]*models.UserCoupon, error) {
	st := models.UserCouponStatus(status)
	switch st {
	case "", models.CouponUnused, models.CouponUsed, models.CouponExpired:
	default:
		return nil, ErrCouponStatus
	}
	if _, err := c.UserCouponDAO.ExpireOverdue(ctx, uid, c.Clock.Now()); err != nil {
		return nil, err
	}
	return c.UserCouponDAO.ListByUser(ctx, uid, st)
}

// Available 当前金额下可用的券，减免金额大的在前
func (c *CouponService) Available(ctx context.Context, uid uint64, amount decimal.Decimal) ([]*models.UserCoupon, error) {
	now := c.Clock.Now()
	coupons, err := c.UserCouponDAO.ListUnexpired(ctx, uid, now)
	if err != nil {
		return nil, err
	}
	usable := make([]*models.UserCoupon, 0, len(coupons))
	for _, item := range coupons {
		if item.Usable(amount, now) {
			usable = append(usable, item)
		}
	}
	slices.SortStableFunc(usable, func(a, b *models.UserCoupon) int {
		return b.Amount.Cmp(a.Amount)
	})
	return usable, nil
}

func (c *CouponService) Center(ctx context.Context, uid uint64) ([]*types.CenterCoupon, error) {
	templates, err := c.CouponDAO.ListActive(ctx, c.Clock.Now())
	if err != nil {
		return nil, err
	}
	claimed, err := c.UserCouponDAO.ClaimedTemplateIds(ctx, uid)
	if err != nil {
		return nil, err
	}
	items := make([]*types.CenterCoupon, 0, len(templates))
	for _, tpl := range templates {
		_, ok := claimed[tpl.ID]
		items = append(items, &types.CenterCoupon{Coupon: tpl, Received: ok})
	}
	return items, nil
}

func (c *CouponService) Receive(ctx context.Context, uid, couponID uint64) (*models.UserCoupon, error) {
	unlock, err := lockUser(ctx, c.Locker, uid)
	if err != nil {
		return nil, err
	}
	defer unlock()

	tpl, err := c.CouponDAO.FindById(ctx, couponID)
	if dao.IsNotFound(err) {
		return nil, ErrCouponNotFound
	}
	if err != nil {
		return nil, err
	}

	now := c.Clock.Now()
	if !tpl.IsActive || (tpl.EndAt != nil && !now.Before(*tpl.EndAt)) {
		return nil, ErrCouponInactive
	}
	claimed, err := c.UserCouponDAO.HasClaimed(ctx, uid, tpl.ID)
	if err != nil {
		return nil, err
	}
	if claimed {
		return nil, ErrCouponClaimed
	}
	if tpl.TotalCount > 0 && tpl.ReceivedCount >= tpl.TotalCount {
		return nil, ErrCouponSoldOut
	}

	uc := &models.UserCoupon{
		UserID:    uid,
		CouponID:  tpl.ID,
		Name:      tpl.Name,
		Amount:    tpl.Amount,
		MinAmount: tpl.MinAmount,
		Status:    models.CouponUnused,
		ExpireAt:  couponExpireAt(tpl, now),
	}
	err = c.Tx.Transaction(ctx, func(ctx context.Context) error {
		// 计数与发放在同一事务内，计数失败说明刚好被领完
		if err := c.CouponDAO.IncrReceived(ctx, tpl.ID); err != nil {
			if errors.Is(err, dao.ErrConditionNotMet) {
				return ErrCouponSoldOut
			}
			return err
		}
		return c.UserCouponDAO.Create(ctx, uc)
	})
	if err != nil {
		return nil, err
	}
	return uc, nil
}
