package dao

import (
	"context"

	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/models"

	"gorm.io/gorm"
)

type Product struct {
	Repo[models.Product]
}

func NewProduct(db *gorm.DB) *Product {
	return &Product{
		Repo: NewRepo[models.Product](db),
	}
}

type ProductFilter struct {
	Category string
	Keyword  string
}

func (p *Product) List(ctx context.Context, f ProductFilter, page, limit int) ([]*models.Product, int64, error) {
	return p.Page(ctx, page, limit, func(db *gorm.DB) *gorm.DB {
		db = db.Where("status = ?", models.ProductOnSale)
		if f.Category != "" {
			db = db.Where("category = ?", f.Category)
		}
		if f.Keyword != "" {
			db = db.Where("name LIKE ?", "%"+f.Keyword+"%")
		}
		return db
	})
}

// FindByIds 批量查询，按 ID 建索引方便调用方取用
func (p *Product) FindByIds(ctx context.Context, ids []uint64) (map[uint64]*models.Product, error) {
	products := make([]*models.Product, 0, len(ids))
	if err := p.Conn(ctx).Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, err
	}
	m := make(map[uint64]*models.Product, len(products))
	for _, item := range products {
		m[item.ID] = item
	}
	return m, nil
}

// DecrStock 条件扣减库存并累加销量，库存不足时不更新
func (p *Product) DecrStock(ctx context.Context, id uint64, quantity int) error {
	rows, err := p.UpdateWhere(ctx, map[string]any{
		"stock": gorm.Expr("stock - ?", quantity),
		"sales": gorm.Expr("sales + ?", quantity),
	}, "id = ? AND stock >= ?", id, quantity)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrConditionNotMet
	}
	return nil
}
