package types

import "github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/models"

type ListCouponsReq struct {
	Status string `form:"status"`
}

type ReceiveCouponReq struct {
	CouponID uint64 `json:"couponId" binding:"required"`
}

// CenterCoupon 领券中心条目
type CenterCoupon struct {
	*models.Coupon
	Received bool `json:"received"`
}
