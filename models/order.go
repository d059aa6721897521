package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type OrderStatus string

const (
	OrderPendingPayment  OrderStatus = "pending_payment"  // 待付款
	OrderPendingShipment OrderStatus = "pending_shipment" // 待发货
	OrderPendingReceipt  OrderStatus = "pending_receipt"  // 待收货
	OrderCompleted       OrderStatus = "completed"
	OrderCancelled       OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPendingPayment, OrderPendingShipment, OrderPendingReceipt, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

// PaymentTimeout 下单后的支付期限
const PaymentTimeout = 30 * time.Minute

// Order 订单主表
type Order struct {
	ID              string          `gorm:"primaryKey;column:id;type:varchar(32)" json:"id"`
	UserID          uint64          `gorm:"column:user_id;not null;index" json:"userId"`
	Status          OrderStatus     `gorm:"column:status;type:varchar(20);not null;index" json:"status"`
	TotalAmount     decimal.Decimal `gorm:"column:total_amount;type:decimal(12,2);not null" json:"totalAmount"`
	DiscountAmount  decimal.Decimal `gorm:"column:discount_amount;type:decimal(12,2);not null;default:0" json:"discountAmount"`
	ShippingFee     decimal.Decimal `gorm:"column:shipping_fee;type:decimal(12,2);not null;default:0" json:"shippingFee"`
	FinalAmount     decimal.Decimal `gorm:"column:final_amount;type:decimal(12,2);not null" json:"finalAmount"`
	AddressSnapshot datatypes.JSON  `gorm:"column:address_snapshot" json:"address"` // 下单时的地址快照
	CouponID        *uint64         `gorm:"column:coupon_id" json:"couponId,omitempty"` // 用户优惠券 ID
	Remark          string          `gorm:"column:remark;type:varchar(255)" json:"remark"`
	PaymentMethod   string          `gorm:"column:payment_method;type:varchar(20)" json:"paymentMethod"`
	PaymentDeadline time.Time       `gorm:"column:payment_deadline;not null" json:"paymentDeadline"`
	PaidAt          *time.Time      `gorm:"column:paid_at" json:"paidAt"`
	ShippedAt       *time.Time      `gorm:"column:shipped_at" json:"shippedAt"`
	ReceivedAt      *time.Time      `gorm:"column:received_at" json:"receivedAt"`
	CancelledAt     *time.Time      `gorm:"column:cancelled_at" json:"cancelledAt"`
	CreatedAt       time.Time       `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt       time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem 订单明细，是下单时商品的快照
type OrderItem struct {
	ID           uint64          `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	OrderID      string          `gorm:"column:order_id;type:varchar(32);not null;index" json:"orderId"`
	ProductID    uint64          `gorm:"column:product_id;not null;index" json:"productId"`
	ProductName  string          `gorm:"column:product_name;size:255;not null" json:"productName"`
	ProductImage string          `gorm:"column:product_image;size:512;default:''" json:"productImage"`
	Spec         string          `gorm:"column:spec;type:varchar(64);not null;default:''" json:"spec"`
	Price        decimal.Decimal `gorm:"column:price;type:decimal(10,2);not null" json:"price"`
	Quantity     int             `gorm:"column:quantity;not null" json:"quantity"`
	Subtotal     decimal.Decimal `gorm:"column:subtotal;type:decimal(12,2);not null" json:"subtotal"`
	CreatedAt    time.Time       `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
