package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	// RewardRate 被邀请人首单实付金额的返利比例
	RewardRate = "0.05"
	// RewardHoldPeriod 返利冻结期
	RewardHoldPeriod = 7 * 24 * time.Hour
)

// InviteRecord 邀请关系，被邀请人注册时创建
type InviteRecord struct {
	ID           uint64          `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	InviterID    uint64          `gorm:"column:inviter_id;not null;index" json:"inviterId"`
	InviteeID    uint64          `gorm:"column:invitee_id;not null;uniqueIndex:idx_invitee_id" json:"inviteeId"`
	FirstOrderID *string         `gorm:"column:first_order_id;type:varchar(32)" json:"firstOrderId"`
	FirstOrderAt *time.Time      `gorm:"column:first_order_at" json:"firstOrderAt"`
	TotalOrders  int             `gorm:"column:total_orders;not null;default:0" json:"totalOrders"`
	TotalReward  decimal.Decimal `gorm:"column:total_reward;type:decimal(12,2);not null;default:0" json:"totalReward"`
	CreatedAt    time.Time       `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`

	Invitee *Users `gorm:"foreignKey:InviteeID" json:"-"`
}

func (InviteRecord) TableName() string {
	return "invite_records"
}

type RewardStatus string

const (
	RewardPending   RewardStatus = "pending"
	RewardAvailable RewardStatus = "available"
	RewardCompleted RewardStatus = "completed"
)

// RewardRecord 应付给邀请人的返利
type RewardRecord struct {
	ID          uint64          `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	UserID      uint64          `gorm:"column:user_id;not null;index:idx_reward_records_user_status,priority:1" json:"userId"` // 邀请人
	InviteeID   uint64          `gorm:"column:invitee_id;not null" json:"inviteeId"`
	OrderID     string          `gorm:"column:order_id;type:varchar(32);not null" json:"orderId"`
	OrderAmount decimal.Decimal `gorm:"column:order_amount;type:decimal(12,2);not null" json:"orderAmount"`
	Amount      decimal.Decimal `gorm:"column:amount;type:decimal(12,2);not null" json:"amount"`
	Status      RewardStatus    `gorm:"column:status;type:varchar(10);not null;index:idx_reward_records_user_status,priority:2" json:"status"`
	AvailableAt time.Time       `gorm:"column:available_at;not null" json:"availableAt"`
	CompletedAt *time.Time      `gorm:"column:completed_at" json:"completedAt"`
	CreatedAt   time.Time       `gorm:"column:created_at" json:"createdAt"`
}

func (RewardRecord) TableName() string {
	return "reward_records"
}
