package types

import (
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/models"

	"github.com/shopspring/decimal"
)

type CreateOrderReq struct {
	AddressID   uint64          `json:"addressId" binding:"required"`
	CartItemIDs []uint64        `json:"cartItemIds" binding:"required,min=1"`
	CouponID    *uint64         `json:"couponId"`
	Remark      string          `json:"remark" binding:"max=255"`
	ShippingFee decimal.Decimal `json:"shippingFee"`
}

type PayOrderReq struct {
	PaymentMethod string `json:"paymentMethod" binding:"required,max=20"`
}

type ListOrdersReq struct {
	PageReq
	Status string `form:"status"`
}

type ListOrdersResp struct {
	Orders     []*models.Order `json:"orders"`
	Pagination Pagination      `json:"pagination"`
}

// OrderPaidEvent 订单支付成功后投递的消息体
type OrderPaidEvent struct {
	OrderID     string          `json:"orderId"`
	UserID      uint64          `json:"userId"`
	FinalAmount decimal.Decimal `json:"finalAmount"`
	Method      string          `json:"paymentMethod"`
	PaidAt      int64           `json:"paidAt"`
}

// AddressSnapshot 订单里保存的收货地址
type AddressSnapshot struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Province string `json:"province"`
	City     string `json:"city"`
	District string `json:"district"`
	Detail   string `json:"detail"`
}
