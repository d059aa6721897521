package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	WalletTypeRecharge = "recharge"
	WalletTypeWithdraw = "withdraw"
	WalletTypeReward   = "reward"
	WalletTypePayment  = "payment"

	WalletStatusCompleted  = "completed"
	WalletStatusProcessing = "processing"
)

// WalletTransaction 钱包流水，只追加不修改
type WalletTransaction struct {
	ID        uint64          `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	UserID    uint64          `gorm:"column:user_id;not null;index" json:"userId"`
	Type      string          `gorm:"column:type;type:varchar(20);not null" json:"type"`
	Amount    decimal.Decimal `gorm:"column:amount;type:decimal(12,2);not null" json:"amount"`   // 变动金额（正负）
	Balance   decimal.Decimal `gorm:"column:balance;type:decimal(12,2);not null" json:"balance"` // 变动后余额
	Status    string          `gorm:"column:status;type:varchar(20);not null" json:"status"`
	Remark    string          `gorm:"column:remark;size:255" json:"remark"`
	RelatedID string          `gorm:"column:related_id;size:64" json:"relatedId"`
	CreatedAt time.Time       `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (WalletTransaction) TableName() string {
	return "wallet_transactions"
}
