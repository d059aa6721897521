package types

import (
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/models"

	"github.com/shopspring/decimal"
)

type RechargeReq struct {
	Amount decimal.Decimal `json:"amount"`
}

type WithdrawReq struct {
	Amount     decimal.Decimal `json:"amount"`
	BankCardID string          `json:"bankCardId"`
}

type WalletResp struct {
	Balance      decimal.Decimal             `json:"balance"`
	Transactions []*models.WalletTransaction `json:"transactions"`
	Pagination   Pagination                  `json:"pagination"`
}
