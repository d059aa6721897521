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

type Invite struct {
	Config        *config.Config
	InviteService service.IInviteService
}

func (h *Invite) RegisterRouter(r gin.IRouter) {
	g := r.Group("/invite")
	g.Use(middleware.Auth([]byte(h.Config.Jwt.Secret)))
	g.GET("/stats", context.Wrap(h.Stats))
	g.GET("/records", context.Wrap(h.Records))
	g.GET("/rewards", context.Wrap(h.Rewards))
	g.POST("/withdraw", context.Wrap(h.Withdraw))
}

func (h *Invite) Stats(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	resp, err := h.InviteService.Stats(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Invite) Records(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	var req types.PageReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return errBadParams
	}
	resp, err := h.InviteService.Records(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Invite) Rewards(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	var req types.ListRewardsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return errBadParams
	}
	resp, err := h.InviteService.Rewards(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Invite) Withdraw(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	resp, err := h.InviteService.Withdraw(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}
