package types

import (
	"time"

	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/models"

	"github.com/shopspring/decimal"
)

type InviteStatsResp struct {
	InviteCode      string          `json:"inviteCode"`
	TotalInvites    int64           `json:"totalInvites"`
	TotalReward     decimal.Decimal `json:"totalReward"`
	PendingReward   decimal.Decimal `json:"pendingReward"`
	AvailableReward decimal.Decimal `json:"availableReward"`
	WithdrawnReward decimal.Decimal `json:"withdrawnReward"`
}

type InviteRecordItem struct {
	ID           uint64          `json:"id"`
	InviteeID    uint64          `json:"inviteeId"`
	InviteeName  string          `json:"inviteeName"`
	InviteePhone string          `json:"inviteePhone"` // 脱敏
	FirstOrderAt *time.Time      `json:"firstOrderAt"`
	TotalReward  decimal.Decimal `json:"totalReward"`
	CreatedAt    time.Time       `json:"createdAt"`
}

type InviteRecordsResp struct {
	Records    []InviteRecordItem `json:"records"`
	Pagination Pagination         `json:"pagination"`
}

type ListRewardsReq struct {
	PageReq
	Status string `form:"status" binding:"omitempty,oneof=pending available completed"`
}

type RewardsResp struct {
	Rewards    []*models.RewardRecord `json:"rewards"`
	Pagination Pagination             `json:"pagination"`
}

type WithdrawRewardResp struct {
	Amount  decimal.Decimal `json:"amount"`
	Count   int             `json:"count"`
	Balance decimal.Decimal `json:"balance"`
}
