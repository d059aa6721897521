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

type Address struct {
	Config         *config.Config
	AddressService service.IAddressService
}

func (h *Address) RegisterRouter(r gin.IRouter) {
	g := r.Group("/addresses")
	g.Use(middleware.Auth([]byte(h.Config.Jwt.Secret)))
	g.GET("", context.Wrap(h.List))
	g.POST("", context.Wrap(h.Create))
	g.DELETE("/:id", context.Wrap(h.Delete))
}

func (h *Address) List(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	items, err := h.AddressService.List(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, items)
	return nil
}

func (h *Address) Create(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	var req types.CreateAddressReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest("收货地址信息不完整")
	}
	addr, err := h.AddressService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}
	response.Created(c, addr)
	return nil
}

func (h *Address) Delete(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.AddressService.Delete(c.Request.Context(), userID, id); err != nil {
		return err
	}
	response.Success(c, types.MessageResp{Message: "已删除"})
	return nil
}
