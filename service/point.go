package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/dao"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/dao/cache"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/models"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/pkg/clock"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/types"

	"gorm.io/gorm"
)

const (
	checkinDateLayout = "2006-01-02"
	checkinBasePoints = 10
	checkinStepPoints = 2
	checkinMaxBonus   = 20
)

// CheckinPoints 第 streak 天连续签到可得积分
func CheckinPoints(streak int) int64 {
	if streak < 1 {
		streak = 1
	}
	bonus := (streak - 1) * checkinStepPoints
	if bonus > checkinMaxBonus {
		bonus = checkinMaxBonus
	}
	return int64(checkinBasePoints + bonus)
}

type PointService struct {
	Tx         *dao.Transactor
	Locker     cache.Locker
	Clock      clock.Clock
	UsersRepo  *dao.Users
	PointDAO   *dao.Point
	CheckinDAO *dao.Checkin
}

var _ IPointService = (*PointService)(nil)

type IPointService interface {
	// Award 变动积分并追加流水，relatedID 非空时同一来源只处理一次
	Award(ctx context.Context, uid uint64, delta int64, typ, description, relatedID string) (int64, error)
	Records(ctx context.Context, uid uint64, req *types.ListPointsReq) (*types.PointsResp, error)
	Checkin(ctx context.Context, uid uint64) (*types.CheckinResp, error)
	CheckinStatus(ctx context.Context, uid uint64) (*types.CheckinStatusResp, error)
}

func (p *PointService) Award(ctx context.Context, uid uint64, delta int64, typ, description, relatedID string) (int64, error) {
	if delta == 0 {
		return 0, fmt.Errorf("points delta must not be zero")
	}

	var balance int64
	err := p.Tx.Transaction(ctx, func(ctx context.Context) error {
		// 幂等检查
		if relatedID != "" {
			exists, err := p.PointDAO.CheckLogExists(ctx, uid, typ, relatedID)
			if err != nil {
				return fmt.Errorf("检查积分流水失败: %w", err)
			}
			if exists {
				return ErrDuplicatePoints
			}
		}

		var err error
		balance, err = p.UsersRepo.IncrPoints(ctx, uid, delta)
		if errors.Is(err, dao.ErrConditionNotMet) {
			return ErrInsufficientPoints
		}
		if err != nil {
			return fmt.Errorf("更新积分余额失败: %w", err)
		}

		return p.PointDAO.Create(ctx, &models.PointsRecord{
			UserID:      uid,
			Points:      delta,
			Balance:     balance,
			Type:        typ,
			Description: description,
			RelatedID:   relatedID,
			CreatedAt:   p.Clock.Now(),
		})
	})
	if err != nil {
		return 0, err
	}
	return balance, nil
}

func (p *PointService) Records(ctx context.Context, uid uint64, req *types.ListPointsReq) (*types.PointsResp, error) {
	req.Normalize()
	user, err := p.UsersRepo.FindById(ctx, uid)
	if dao.IsNotFound(err) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	records, total, err := p.PointDAO.ListByUser(ctx, uid, req.Type, req.Page, req.Limit)
	if err != nil {
		return nil, err
	}
	return &types.PointsResp{
		Balance:    user.Points,
		Records:    records,
		Pagination: types.NewPagination(req.Page, req.Limit, total),
	}, nil
}

// Checkin 按 UTC 自然日签到，昨天签过则连续天数 +1，否则从 1 开始
func (p *PointService) Checkin(ctx context.Context, uid uint64) (*types.CheckinResp, error) {
	unlock, err := lockUser(ctx, p.Locker, uid)
	if err != nil {
		return nil, err
	}
	defer unlock()

	now := p.Clock.Now().UTC()
	today := now.Format(checkinDateLayout)
	_, err = p.CheckinDAO.FindByDate(ctx, uid, today)
	if err == nil {
		return nil, ErrAlreadyCheckedIn
	}
	if !dao.IsNotFound(err) {
		return nil, err
	}

	streak := 1
	prev, err := p.CheckinDAO.FindByDate(ctx, uid, now.AddDate(0, 0, -1).Format(checkinDateLayout))
	switch {
	case err == nil:
		streak = prev.ContinuousDays + 1
	case !dao.IsNotFound(err):
		return nil, err
	}

	record := &models.CheckinRecord{
		UserID:         uid,
		CheckinDate:    today,
		Points:         CheckinPoints(streak),
		ContinuousDays: streak,
		CreatedAt:      now,
	}
	var balance int64
	err = p.Tx.Transaction(ctx, func(ctx context.Context) error {
		if err := p.CheckinDAO.Create(ctx, record); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadyCheckedIn
			}
			return err
		}
		desc := fmt.Sprintf("连续签到第%d天", streak)
		b, err := p.Award(ctx, uid, record.Points, models.PointsTypeCheckin, desc, today)
		if errors.Is(err, ErrDuplicatePoints) {
			return ErrAlreadyCheckedIn
		}
		balance = b
		return err
	})
	if err != nil {
		return nil, err
	}

	return &types.CheckinResp{
		Points:         record.Points,
		ContinuousDays: streak,
		Balance:        balance,
	}, nil
}

func (p *PointService) CheckinStatus(ctx context.Context, uid uint64) (*types.CheckinStatusResp, error) {
	user, err := p.UsersRepo.FindById(ctx, uid)
	if dao.IsNotFound(err) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	now := p.Clock.Now().UTC()
	resp := &types.CheckinStatusResp{Balance: user.Points, NextPoints: CheckinPoints(1)}

	today, err := p.CheckinDAO.FindByDate(ctx, uid, now.Format(checkinDateLayout))
	if err == nil {
		resp.CheckedIn = true
		resp.ContinuousDays = today.ContinuousDays
		resp.TodayPoints = today.Points
		resp.NextPoints = CheckinPoints(today.ContinuousDays + 1)
		return resp, nil
	}
	if !dao.IsNotFound(err) {
		return nil, err
	}

	yesterday, err := p.CheckinDAO.FindByDate(ctx, uid, now.AddDate(0, 0, -1).Format(checkinDateLayout))
	if err == nil {
		resp.ContinuousDays = yesterday.ContinuousDays
		resp.NextPoints = CheckinPoints(yesterday.ContinuousDays + 1)
		return resp, nil
	}
	if !dao.IsNotFound(err) {
		return nil, err
	}
	return resp, nil
}
