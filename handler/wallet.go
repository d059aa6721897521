package handler

import (
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/config"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/middleware"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/pkg/context"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/pkg/response"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/service"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/types"

	"github.com/gin-gonic/gin"
)

type Wallet struct {
	Config        *config.Config
	WalletService service.IWalletService
}

func (h *Wallet) RegisterRouter(r gin.IRouter) {
	g := r.Group("/wallet")
	g.Use(middleware.Auth([]byte(h.Config.Jwt.Secret)))
	g.GET("", context.Wrap(h.Overview))
	g.POST("/recharge", context.Wrap(h.Recharge))
	g.POST("/withdraw", context.Wrap(h.Withdraw))
}

func (h *Wallet) Overview(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	var req types.PageReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return errBadParams
	}
	resp, err := h.WalletService.Overview(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Wallet) Recharge(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	var req types.RechargeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return service.ErrInvalidAmount
	}
	txn, err := h.WalletService.Recharge(c.Request.Context(), userID, req.Amount)
	if err != nil {
		return err
	}
	response.Success(c, txn)
	return nil
}

func (h *Wallet) Withdraw(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	var req types.WithdrawReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return service.ErrInvalidAmount
	}
	txn, err := h.WalletService.Withdraw(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}
	response.Success(c, txn)
	return nil
}
