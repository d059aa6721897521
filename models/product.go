package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	ProductOffShelf int8 = 0
	ProductOnSale   int8 = 1
)

// Product 对应数据库中的 products 表
type Product struct {
	ID            uint64          `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name          string          `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Category      string          `gorm:"column:category;type:varchar(64);index" json:"category"`
	Price         decimal.Decimal `gorm:"column:price;type:decimal(10,2);not null" json:"price"`
	OriginalPrice decimal.Decimal `gorm:"column:original_price;type:decimal(10,2);not null;default:0" json:"originalPrice"`
	Stock         int             `gorm:"column:stock;not null;default:0" json:"stock"`
	Sales         int             `gorm:"column:sales;not null;default:0" json:"sales"`
	Description   string          `gorm:"column:description;type:text" json:"description"`
	CoverImage    string          `gorm:"column:cover_image;size:512;default:''" json:"coverImage"`
	Status        int8            `gorm:"column:status;not null;default:1;index" json:"status"` // 0-下架, 1-上架
	CreatedAt     time.Time       `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
	DeletedAt     gorm.DeletedAt  `gorm:"column:deleted_at;index" json:"-"`
}

func (Product) TableName() string {
	return "products"
}
