package dao

import (
	"context"
	"fmt"

	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Users struct {
	Repo[models.Users]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.Users](db),
	}
}

// FindByPhone 手机号查询
func (u *Users) FindByPhone(ctx context.Context, phone string) (*models.Users, error) {
	return u.Repo.FindByWhere(ctx, "phone = ?", phone)
}

// IsPhoneExist 判断手机号是否存在
func (u *Users) IsPhoneExist(ctx context.Context, phone string) (bool, error) {
	return u.Repo.IsExist(ctx, "phone = ?", phone)
}

func (u *Users) FindByInviteCode(ctx context.Context, code string) (*models.Users, error) {
	return u.Repo.FindByWhere(ctx, "invite_code = ?", code)
}

func (u *Users) UpdateById(ctx context.Context, id uint64, data map[string]any) error {
	if id == 0 {
		return gorm.ErrRecordNotFound
	}
	if len(data) == 0 {
		return nil
	}
	if _, err := u.Repo.UpdateWhere(ctx, data, "id = ?", id); err != nil {
		return fmt.Errorf("dao.Users.UpdateById error: %w", err)
	}
	return nil
}

// IncrPoints 原子增减积分，返回变动后余额
func (u *Users) IncrPoints(ctx context.Context, id uint64, delta int64) (int64, error) {
	rows, err := u.Repo.UpdateWhere(ctx, map[string]any{
		"points": gorm.Expr("points + ?", delta),
	}, "id = ? AND points + ? >= 0", id, delta)
	if err != nil {
		return 0, err
	}
	if rows == 0 {
		return 0, ErrConditionNotMet
	}

	var points int64
	err = u.Conn(ctx).Model(&models.Users{}).Where("id = ?", id).Pluck("points", &points).Error
	return points, err
}

// IncrBalance 原子增减钱包余额，扣减时余额不足返回 ErrConditionNotMet
func (u *Users) IncrBalance(ctx context.Context, id uint64, delta decimal.Decimal) (decimal.Decimal, error) {
	where := "id = ?"
	args := []any{id}
	if delta.IsNegative() {
		where = "id = ? AND balance >= ?"
		args = append(args, delta.Neg())
	}
	rows, err := u.Repo.UpdateWhere(ctx, map[string]any{
		"balance": gorm.Expr("balance + ?", delta),
	}, where, args...)
	if err != nil {
		return decimal.Zero, err
	}
	if rows == 0 {
		return decimal.Zero, ErrConditionNotMet
	}

	user, err := u.FindById(ctx, id)
	if err != nil {
		return decimal.Zero, err
	}
	return user.Balance, nil
}
