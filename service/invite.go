package service

import (
	"context"
	"fmt"

	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/dao"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/dao/cache"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/models"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/pkg/clock"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/pkg/utils"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/types"

	"github.com/shopspring/decimal"
)

var _ IInviteService = (*InviteService)(nil)

type IInviteService interface {
	Stats(ctx context.Context, uid uint64) (*types.InviteStatsResp, error)
	Records(ctx context.Context, uid uint64, req *types.PageReq) (*types.InviteRecordsResp, error)
	Rewards(ctx context.Context, uid uint64, req *types.ListRewardsReq) (*types.RewardsResp, error)
	Withdraw(ctx context.Context, uid uint64) (*types.WithdrawRewardResp, error)
}

type InviteService struct {
	Tx            *dao.Transactor
	Locker        cache.Locker
	Clock         clock.Clock
	UsersRepo     *dao.Users
	InviteRepo    *dao.Invite
	RewardDAO     *dao.Reward
	WalletService IWalletService
}

func (i *InviteService) Stats(ctx context.Context, uid uint64) (*types.InviteStatsResp, error) {
	user, err := i.UsersRepo.FindById(ctx, uid)
	if dao.IsNotFound(err) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	if _, err := i.RewardDAO.PromoteMatured(ctx, uid, i.Clock.Now()); err != nil {
		return nil, err
	}

	invites, err := i.InviteRepo.Count(ctx, "inviter_id = ?", uid)
	if err != nil {
		return nil, err
	}
	sums, err := i.RewardDAO.SumByStatus(ctx, uid)
	if err != nil {
		return nil, err
	}

	resp := &types.InviteStatsResp{
		TotalInvites:    invites,
		PendingReward:   sums[models.RewardPending],
		AvailableReward: sums[models.RewardAvailable],
		WithdrawnReward: sums[models.RewardCompleted],
	}
	resp.TotalReward = resp.PendingReward.Add(resp.AvailableReward).Add(resp.WithdrawnReward)
	if user.InviteCode != nil {
		resp.InviteCode = *user.InviteCode
	}
	return resp, nil
}

func (i *InviteService) Records(ctx context.Context, uid uint64, req *types.PageReq) (*types.InviteRecordsResp, error) {
	req.Normalize()
	records, total, err := i.InviteRepo.ListByInviter(ctx, uid, req.Page, req.Limit)
	if err != nil {
		return nil, err
	}

	items := make([]types.InviteRecordItem, 0, len(records))
	for _, r := range records {
		item := types.InviteRecordItem{
			ID:           r.ID,
			InviteeID:    r.InviteeID,
			FirstOrderAt: r.FirstOrderAt,
			TotalReward:  r.TotalReward,
			CreatedAt:    r.CreatedAt,
		}
		if r.Invitee != nil {
			item.InviteeName = r.Invitee.Name
			item.InviteePhone = utils.MaskPhone(r.Invitee.Phone)
		}
		items = append(items, item)
	}
	return &types.InviteRecordsResp{
		Records:    items,
		Pagination: types.NewPagination(req.Page, req.Limit, total),
	}, nil
}

func (i *InviteService) Rewards(ctx context.Context, uid uint64, req *types.ListRewardsReq) (*types.RewardsResp, error) {
	req.Normalize()
	if _, err := i.RewardDAO.PromoteMatured(ctx, uid, i.Clock.Now()); err != nil {
		return nil, err
	}
	rewards, total, err := i.RewardDAO.ListByUser(ctx, uid, models.RewardStatus(req.Status), req.Page, req.Limit)
	if err != nil {
		return nil, err
	}
	return &types.RewardsResp{
		Rewards:    rewards,
		Pagination: types.NewPagination(req.Page, req.Limit, total),
	}, nil
}

// Withdraw 把全部可提现返利一次性转入钱包
func (i *InviteService) Withdraw(ctx context.Context, uid uint64) (*types.WithdrawRewardResp, error) {
	unlock, err := lockUser(ctx, i.Locker, uid)
	if err != nil {
		return nil, err
	}
	defer unlock()

	resp := &types.WithdrawRewardResp{}
	err = i.Tx.Transaction(ctx, func(ctx context.Context) error {
		now := i.Clock.Now()
		if _, err := i.RewardDAO.PromoteMatured(ctx, uid, now); err != nil {
			return err
		}
		rewards, err := i.RewardDAO.ListAvailable(ctx, uid)
		if err != nil {
			return err
		}
		if len(rewards) == 0 {
			return ErrNothingToWithdraw
		}

		total := decimal.Zero
		ids := make([]uint64, 0, len(rewards))
		for _, r := range rewards {
			total = total.Add(r.Amount)
			ids = append(ids, r.ID)
		}
		n, err := i.RewardDAO.Complete(ctx, ids, now)
		if err != nil {
			return err
		}
		if n != int64(len(ids)) {
			return fmt.Errorf("reward records changed during withdraw: want %d, got %d", len(ids), n)
		}

		txn, err := i.WalletService.Apply(ctx, uid, total, models.WalletTypeReward, models.WalletStatusCompleted,
			fmt.Sprintf("邀请奖励提现（%d笔）", len(ids)), "")
		if err != nil {
			return err
		}
		resp.Amount = total
		resp.Count = len(ids)
		resp.Balance = txn.Balance
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
