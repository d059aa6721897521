package models

import "time"

// Address 收货地址
type Address struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null;index" json:"userId"`
	Name      string    `gorm:"column:name;type:varchar(64);not null" json:"name"`
	Phone     string    `gorm:"column:phone;type:varchar(20);not null" json:"phone"`
	Province  string    `gorm:"column:province;type:varchar(32)" json:"province"`
	City      string    `gorm:"column:city;type:varchar(32)" json:"city"`
	District  string    `gorm:"column:district;type:varchar(32)" json:"district"`
	Detail    string    `gorm:"column:detail;type:varchar(255);not null" json:"detail"`
	IsDefault bool      `gorm:"column:is_default;not null;default:false" json:"isDefault"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (Address) TableName() string {
	return "addresses"
}
