package dao

import (
	"context"

	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/models"

	"gorm.io/gorm"
)

type Order struct {
	Repo[models.Order]
}

func NewOrder(db *gorm.DB) *Order {
	return &Order{Repo: NewRepo[models.Order](db)}
}

// Create 写订单主表和明细，调用方负责开启事务
func (o *Order) Create(ctx context.Context, order *models.Order) error {
	db := o.Conn(ctx)
	if err := db.Omit("Items").Create(order).Error; err != nil {
		return err
	}
	if len(order.Items) == 0 {
		return nil
	}
	for i := range order.Items {
		order.Items[i].OrderID = order.ID
	}
	return db.CreateInBatches(order.Items, 100).Error
}

// FindOwned 查询用户自己的订单（含明细）
func (o *Order) FindOwned(ctx context.Context, id string, userID uint64) (*models.Order, error) {
	var order models.Order
	err := o.Conn(ctx).Preload("Items").
		Where("id = ? AND user_id = ?", id, userID).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (o *Order) ListByUser(ctx context.Context, userID uint64, status models.OrderStatus, page, limit int) ([]*models.Order, int64, error) {
	return o.Page(ctx, page, limit, func(db *gorm.DB) *gorm.DB {
		db = db.Where("user_id = ?", userID)
		if status != "" {
			db = db.Where("status = ?", status)
		}
		return db
	}, "Items")
}

// TransitStatus 条件状态迁移：只有当前状态为 from 时才更新，未命中返回 ErrConditionNotMet
func (o *Order) TransitStatus(ctx context.Context, id string, from, to models.OrderStatus, fields map[string]any) error {
	data := map[string]any{"status": to}
	for k, v := range fields {
		data[k] = v
	}
	rows, err := o.UpdateWhere(ctx, data, "id = ? AND status = ?", id, from)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrConditionNotMet
	}
	return nil
}
