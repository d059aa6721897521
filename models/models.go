package models

// All 参与自动迁移的全部表
func All() []any {
	return []any{
		&Users{},
		&Address{},
		&Product{},
		&CartItem{},
		&Order{},
		&OrderItem{},
		&Coupon{},
		&UserCoupon{},
		&PointsRecord{},
		&CheckinRecord{},
		&InviteRecord{},
		&RewardRecord{},
		&WalletTransaction{},
	}
}
