package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Users 用户表
type Users struct {
	ID         uint64          `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Phone      string          `gorm:"column:phone;type:varchar(20);not null;uniqueIndex:idx_phone" json:"phone"`
	Password   string          `gorm:"column:password;type:varchar(255);not null" json:"-"`
	Name       string          `gorm:"column:name;type:varchar(64);not null;default:''" json:"name"`
	Avatar     string          `gorm:"column:avatar;type:varchar(512);not null;default:''" json:"avatar"`
	Points     int64           `gorm:"column:points;not null;default:0" json:"points"`                // 积分余额，等于积分流水之和
	Balance    decimal.Decimal `gorm:"column:balance;type:decimal(12,2);not null;default:0" json:"balance"` // 钱包余额
	InviteCode *string         `gorm:"column:invite_code;type:varchar(16);uniqueIndex:idx_invite_code" json:"inviteCode"` // 注册事务内回填
	InviterID  *uint64         `gorm:"column:inviter_id;index" json:"inviterId,omitempty"`
	CreatedAt  time.Time       `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (Users) TableName() string {
	return "users"
}
