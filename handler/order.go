package handler

import (
	gocontext "context"

	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/config"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/middleware"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/models"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/pkg/context"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/pkg/response"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/service"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/types"

	"github.com/gin-gonic/gin"
)

type Order struct {
	Config       *config.Config
	OrderService service.IOrderService
}

func (o *Order) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(o.Config.Jwt.Secret))
	order := r.Group("/orders")
	order.Use(authorize)
	order.GET("", context.Wrap(o.List))
	order.POST("", context.Wrap(o.Create))
	order.GET("/:id", context.Wrap(o.Detail))
	order.POST("/:id/pay", context.Wrap(o.Pay))
	order.POST("/:id/cancel", context.Wrap(o.Cancel))
	order.POST("/:id/confirm", context.Wrap(o.Confirm))
}

func (o *Order) List(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	var req types.ListOrdersReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return errBadParams
	}
	resp, err := o.OrderService.List(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (o *Order) Create(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	var req types.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest("请选择收货地址和商品")
	}
	order, err := o.OrderService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}
	response.Created(c, order)
	return nil
}

func (o *Order) Detail(c *gin.Context) error {
	return o.handle(c, o.OrderService.Detail)
}

func (o *Order) Pay(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	var req types.PayOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest("请选择支付方式")
	}
	order, err := o.OrderService.Pay(c.Request.Context(), userID, c.Param("id"), req.PaymentMethod)
	if err != nil {
		return err
	}
	response.Success(c, order)
	return nil
}

func (o *Order) Cancel(c *gin.Context) error {
	return o.handle(c, o.OrderService.Cancel)
}

func (o *Order) Confirm(c *gin.Context) error {
	return o.handle(c, o.OrderService.Confirm)
}

// handle 只需要用户和订单号的操作
func (o *Order) handle(c *gin.Context, fn func(ctx gocontext.Context, uid uint64, orderID string) (*models.Order, error)) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	order, err := fn(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		return err
	}
	response.Success(c, order)
	return nil
}
