package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/dao"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/dao/cache"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/models"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/pkg/clock"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/types"

	"github.com/shopspring/decimal"
)

// MaxRecharge 单笔充值上限
var MaxRecharge = decimal.NewFromInt(50000)

var _ IWalletService = (*WalletService)(nil)

type IWalletService interface {
	// Apply 变动余额并追加流水，delta 为负时余额不足返回 ErrInsufficientBalance
	Apply(ctx context.Context, uid uint64, delta decimal.Decimal, typ, status, remark, relatedID string) (*models.WalletTransaction, error)
	Overview(ctx context.Context, uid uint64, req *types.PageReq) (*types.WalletResp, error)
	Recharge(ctx context.Context, uid uint64, amount decimal.Decimal) (*models.WalletTransaction, error)
	Withdraw(ctx context.Context, uid uint64, req *types.WithdrawReq) (*models.WalletTransaction, error)
}

type WalletService struct {
	Tx        *dao.Transactor
	Locker    cache.Locker
	Clock     clock.Clock
	UsersRepo *dao.Users
	WalletDAO *dao.Wallet
}

func (w *WalletService) Apply(ctx context.Context, uid uint64, delta decimal.Decimal, typ, status, remark, relatedID string) (*models.WalletTransaction, error) {
	if delta.IsZero() {
		return nil, ErrInvalidAmount
	}

	txn := &models.WalletTransaction{
		UserID:    uid,
		Type:      typ,
		Amount:    delta,
		Status:    status,
		Remark:    remark,
		RelatedID: relatedID,
		CreatedAt: w.Clock.Now(),
	}
	err := w.Tx.Transaction(ctx, func(ctx context.Context) error {
		balance, err := w.UsersRepo.IncrBalance(ctx, uid, delta)
		if errors.Is(err, dao.ErrConditionNotMet) {
			return ErrInsufficientBalance
		}
		if err != nil {
			return fmt.Errorf("更新钱包余额失败: %w", err)
		}
		txn.Balance = balance
		return w.WalletDAO.Create(ctx, txn)
	})
	if err != nil {
		return nil, err
	}
	return txn, nil
}

func (w *WalletService) Overview(ctx context.Context, uid uint64, req *types.PageReq) (*types.WalletResp, error) {
	req.Normalize()
	user, err := w.UsersRepo.FindById(ctx, uid)
	if dao.IsNotFound(err) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	txns, total, err := w.WalletDAO.ListByUser(ctx, uid, req.Page, req.Limit)
	if err != nil {
		return nil, err
	}
	return &types.WalletResp{
		Balance:      user.Balance,
		Transactions: txns,
		Pagination:   types.NewPagination(req.Page, req.Limit, total),
	}, nil
}

func (w *WalletService) Recharge(ctx context.Context, uid uint64, amount decimal.Decimal) (*models.WalletTransaction, error) {
	if !validAmount(amount) || amount.GreaterThan(MaxRecharge) {
		return nil, ErrInvalidAmount
	}

	unlock, err := lockUser(ctx, w.Locker, uid)
	if err != nil {
		return nil, err
	}
	defer unlock()

	return w.Apply(ctx, uid, amount, models.WalletTypeRecharge, models.WalletStatusCompleted, "钱包充值", "")
}

// Withdraw 提现先扣余额，打款结果由线下处理，流水状态为 processing
func (w *WalletService) Withdraw(ctx context.Context, uid uint64, req *types.WithdrawReq) (*models.WalletTransaction, error) {
	if !validAmount(req.Amount) {
		return nil, ErrInvalidAmount
	}

	unlock, err := lockUser(ctx, w.Locker, uid)
	if err != nil {
		return nil, err
	}
	defer unlock()

	remark := "余额提现"
	if req.BankCardID != "" {
		remark = "余额提现至银行卡 " + req.BankCardID
	}
	return w.Apply(ctx, uid, req.Amount.Neg(), models.WalletTypeWithdraw, models.WalletStatusProcessing, remark, req.BankCardID)
}

// validAmount 大于 0 且最多两位小数
func validAmount(amount decimal.Decimal) bool {
	return amount.IsPositive() && amount.Equal(amount.Round(2))
}
