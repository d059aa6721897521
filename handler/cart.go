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

type Cart struct {
	Config      *config.Config
	CartService service.ICartService
}

func (h *Cart) RegisterRouter(r gin.IRouter) {
	g := r.Group("/cart")
	g.Use(middleware.Auth([]byte(h.Config.Jwt.Secret)))
	g.GET("", context.Wrap(h.List))
	g.POST("", context.Wrap(h.Add))
	g.PUT("/:id", context.Wrap(h.Update))
	g.DELETE("/:id", context.Wrap(h.Remove))
}

func (h *Cart) List(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	items, err := h.CartService.List(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, items)
	return nil
}

func (h *Cart) Add(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	var req types.AddCartReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return errBadParams
	}
	item, err := h.CartService.Add(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}
	response.Created(c, item)
	return nil
}

func (h *Cart) Update(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req types.UpdateCartReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return errBadParams
	}
	item, err := h.CartService.Update(c.Request.Context(), userID, id, req.Quantity)
	if err != nil {
		return err
	}
	response.Success(c, item)
	return nil
}

func (h *Cart) Remove(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.CartService.Remove(c.Request.Context(), userID, id); err != nil {
		return err
	}
	response.Success(c, types.MessageResp{Message: "已删除"})
	return nil
}
