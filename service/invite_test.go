package service

import (
	"testing"
	"time"

	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/models"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInviteRewardWithdraw(t *testing.T) {
	env := newTestEnv(t)
	inviter, buyer, coupons := invitedBuyer(t, env)
	bag := env.product(t, "羊皮手袋", 100, 10)

	order := env.placeOrder(t, buyer.ID, bag, 3, &coupons[0].ID)
	_, err := env.orders.Pay(env.ctx, buyer.ID, order.ID, "alipay")
	require.NoError(t, err)

	// 冻结期内无可提现奖励
	_, err = env.invites.Withdraw(env.ctx, inviter.ID)
	assert.ErrorIs(t, err, ErrNothingToWithdraw)

	stats, err := env.invites.Stats(env.ctx, inviter.ID)
	require.NoError(t, err)
	assert.Equal(t, "INV00001", stats.InviteCode)
	assert.Equal(t, int64(1), stats.TotalInvites)
	assertDecimal(t, "14.5", stats.PendingReward)
	assertDecimal(t, "0", stats.AvailableReward)
	assertDecimal(t, "14.5", stats.TotalReward)

	env.clock.Add(models.RewardHoldPeriod)

	rewards, err := env.invites.Rewards(env.ctx, inviter.ID, &types.ListRewardsReq{Status: string(models.RewardAvailable)})
	require.NoError(t, err)
	require.Len(t, rewards.Rewards, 1)
	assert.Equal(t, order.ID, rewards.Rewards[0].OrderID)
	assertDecimal(t, "290", rewards.Rewards[0].OrderAmount)

	resp, err := env.invites.Withdraw(env.ctx, inviter.ID)
	require.NoError(t, err)
	assertDecimal(t, "14.5", resp.Amount)
	assert.Equal(t, 1, resp.Count)
	assertDecimal(t, "14.5", resp.Balance)
	assertDecimal(t, "14.5", env.reloadUser(t, inviter.ID).Balance)

	var txn models.WalletTransaction
	require.NoError(t, env.db.Where("user_id = ?", inviter.ID).First(&txn).Error)
	assert.Equal(t, models.WalletTypeReward, txn.Type)
	assert.Equal(t, models.WalletStatusCompleted, txn.Status)
	assertDecimal(t, "14.5", txn.Amount)

	_, err = env.invites.Withdraw(env.ctx, inviter.ID)
	assert.ErrorIs(t, err, ErrNothingToWithdraw)

	stats, err = env.invites.Stats(env.ctx, inviter.ID)
	require.NoError(t, err)
	assertDecimal(t, "0", stats.PendingReward)
	assertDecimal(t, "14.5", stats.WithdrawnReward)
	assertDecimal(t, "14.5", stats.TotalReward)

	var reward models.RewardRecord
	require.NoError(t, env.db.Where("user_id = ?", inviter.ID).First(&reward).Error)
	assert.Equal(t, models.RewardCompleted, reward.Status)
	require.NotNil(t, reward.CompletedAt)
	assert.WithinDuration(t, env.clock.Now(), *reward.CompletedAt, time.Second)
}

func TestInviteRecords(t *testing.T) {
	env := newTestEnv(t)
	inviter, buyer, _ := invitedBuyer(t, env)

	resp, err := env.invites.Records(env.ctx, inviter.ID, &types.PageReq{})
	require.NoError(t, err)
	require.Len(t, resp.Records, 1)
	item := resp.Records[0]
	assert.Equal(t, buyer.ID, item.InviteeID)
	assert.Equal(t, "用户0002", item.InviteeName)
	assert.Equal(t, "139****0002", item.InviteePhone)
	assert.Nil(t, item.FirstOrderAt)
	assertDecimal(t, "0", item.TotalReward)
	assert.Equal(t, int64(1), resp.Pagination.Total)

	empty, err := env.invites.Records(env.ctx, buyer.ID, &types.PageReq{})
	require.NoError(t, err)
	assert.Empty(t, empty.Records)
	assert.Equal(t, int64(0), empty.Pagination.TotalPages)
}
