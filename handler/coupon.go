package handler

import (
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/config"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/middleware"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/pkg/context"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/pkg/response"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/service"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/types"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type Coupon struct {
	Config        *config.Config
	CouponService service.ICouponService
}

func (h *Coupon) RegisterRouter(r gin.IRouter) {
	g := r.Group("/coupons")
	g.Use(middleware.Auth([]byte(h.Config.Jwt.Secret)))
	g.GET("", context.Wrap(h.List))
	g.GET("/available", context.Wrap(h.Available))
	g.GET("/center", context.Wrap(h.Center))
	g.POST("/receive", context.Wrap(h.Receive))
}

func (h *Coupon) List(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	var req types.ListCouponsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return errBadParams
	}
	coupons, err := h.CouponService.List(c.Request.Context(), userID, req.Status)
	if err != nil {
		return err
	}
	response.Success(c, coupons)
	return nil
}

func (h *Coupon) Available(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	amount, err := decimal.NewFromString(c.DefaultQuery("amount", "0"))
	if err != nil || amount.IsNegative() {
		return response.BadRequest("amount 参数错误")
	}
	coupons, err := h.CouponService.Available(c.Request.Context(), userID, amount)
	if err != nil {
		return err
	}
	response.Success(c, coupons)
	return nil
}

func (h *Coupon) Center(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	coupons, err := h.CouponService.Center(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, coupons)
	return nil
}

func (h *Coupon) Receive(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	var req types.ReceiveCouponReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return errBadParams
	}
	coupon, err := h.CouponService.Receive(c.Request.Context(), userID, req.CouponID)
	if err != nil {
		return err
	}
	response.Created(c, coupon)
	return nil
}
