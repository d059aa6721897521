package dao

import (
	"context"

	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/models"

	"gorm.io/gorm"
)

type Point struct {
	Repo[models.PointsRecord]
}

func NewPoint(db *gorm.DB) *Point {
	return &Point{
		Repo: NewRepo[models.PointsRecord](db),
	}
}

// CheckLogExists 同一来源只记一次流水
func (p *Point) CheckLogExists(ctx context.Context, userID uint64, typ, relatedID string) (bool, error) {
	return p.IsExist(ctx, "user_id = ? AND type = ? AND related_id = ?", userID, typ, relatedID)
}

const (
	PointsIncome  = "income"
	PointsExpense = "expense"
)

// ListByUser direction 为 income 只看增加，expense 只看扣减，空串不过滤
func (p *Point) ListByUser(ctx context.Context, userID uint64, direction string, page, limit int) ([]*models.PointsRecord, int64, error) {
	return p.Page(ctx, page, limit, func(db *gorm.DB) *gorm.DB {
		db = db.Where("user_id = ?", userID)
		switch direction {
		case PointsIncome:
			db = db.Where("points > 0")
		case PointsExpense:
			db = db.Where("points < 0")
		}
		return db
	})
}

type Checkin struct {
	Repo[models.CheckinRecord]
}

func NewCheckin(db *gorm.DB) *Checkin {
	return &Checkin{Repo: NewRepo[models.CheckinRecord](db)}
}

func (c *Checkin) FindByDate(ctx context.Context, userID uint64, date string) (*models.CheckinRecord, error) {
	return c.FindByWhere(ctx, "user_id = ? AND checkin_date = ?", userID, date)
}
