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

type Point struct {
	Config       *config.Config
	PointService service.IPointService
}

func (p *Point) RegisterRouter(r gin.IRouter) {
	pointGroup := r.Group("/points")
	pointGroup.Use(middleware.Auth([]byte(p.Config.Jwt.Secret)))
	pointGroup.GET("", context.Wrap(p.Records))
	pointGroup.POST("/checkin", context.Wrap(p.Checkin))
	pointGroup.GET("/checkin/status", context.Wrap(p.CheckinStatus))
}

func (p *Point) Records(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	var req types.ListPointsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.BadRequest("type 只能是 income 或 expense")
	}
	resp, err := p.PointService.Records(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (p *Point) Checkin(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	resp, err := p.PointService.Checkin(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (p *Point) CheckinStatus(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	resp, err := p.PointService.CheckinStatus(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}
