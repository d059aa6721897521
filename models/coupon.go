package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultCouponValidity 模板既没有有效天数也没有截止日期时的默认有效期
const DefaultCouponValidity = 30 * 24 * time.Hour

// Coupon 优惠券模板
type Coupon struct {
	ID            uint64          `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name          string          `gorm:"column:name;type:varchar(64);not null" json:"name"`
	Amount        decimal.Decimal `gorm:"column:amount;type:decimal(10,2);not null" json:"amount"`                 // 减免金额
	MinAmount     decimal.Decimal `gorm:"column:min_amount;type:decimal(10,2);not null;default:0" json:"minAmount"` // 使用门槛
	TotalCount    int             `gorm:"column:total_count;not null;default:0" json:"totalCount"`                  // 发放上限，0 表示不限
	ReceivedCount int             `gorm:"column:received_count;not null;default:0" json:"receivedCount"`
	ValidDays     int             `gorm:"column:valid_days;not null;default:0" json:"validDays"`
	EndAt         *time.Time      `gorm:"column:end_at" json:"endAt"`
	IsActive      bool            `gorm:"column:is_active;not null;default:true" json:"isActive"`
	CreatedAt     time.Time       `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (Coupon) TableName() string {
	return "coupons"
}

type UserCouponStatus string

const (
	CouponUnused  UserCouponStatus = "unused"
	CouponUsed    UserCouponStatus = "used"
	CouponExpired UserCouponStatus = "expired"
)

// UserCoupon 发放到用户的优惠券实例
type UserCoupon struct {
	ID        uint64           `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	UserID    uint64           `gorm:"column:user_id;not null;index:idx_user_coupons_user_status,priority:1" json:"userId"`
	CouponID  uint64           `gorm:"column:coupon_id;not null;default:0;index" json:"couponId"` // 0 表示系统直接发放
	Name      string           `gorm:"column:name;type:varchar(64);not null" json:"name"`
	Amount    decimal.Decimal  `gorm:"column:amount;type:decimal(10,2);not null" json:"amount"`
	MinAmount decimal.Decimal  `gorm:"column:min_amount;type:decimal(10,2);not null;default:0" json:"minAmount"`
	Status    UserCouponStatus `gorm:"column:status;type:varchar(10);not null;index:idx_user_coupons_user_status,priority:2" json:"status"`
	ExpireAt  time.Time        `gorm:"column:expire_at;not null" json:"expireAt"`
	OrderID   *string          `gorm:"column:order_id;type:varchar(32)" json:"orderId,omitempty"`
	UsedAt    *time.Time       `gorm:"column:used_at" json:"usedAt"`
	CreatedAt time.Time        `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (UserCoupon) TableName() string {
	return "user_coupons"
}

// Usable 未使用、未过期且满足门槛
func (c *UserCoupon) Usable(total decimal.Decimal, now time.Time) bool {
	return c.Status == CouponUnused && now.Before(c.ExpireAt) && total.GreaterThanOrEqual(c.MinAmount)
}
