package models

import "time"

// CartItem 购物车行
type CartItem struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null;index" json:"userId"`
	ProductID uint64    `gorm:"column:product_id;not null" json:"productId"`
	Spec      string    `gorm:"column:spec;type:varchar(64);not null;default:''" json:"spec"`
	Quantity  int       `gorm:"column:quantity;not null;default:1" json:"quantity"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

func (CartItem) TableName() string {
	return "cart_items"
}
