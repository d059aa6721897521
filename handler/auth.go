package handler

import (
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/pkg/context"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/pkg/response"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/service"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/types"

	"github.com/gin-gonic/gin"
)

type Auth struct {
	UserService service.IUserService
}

func (u *Auth) RegisterRouter(r gin.IRouter) {
	auth := r.Group("/auth")
	auth.POST("/register", context.Wrap(u.Register))
	auth.POST("/login", context.Wrap(u.Login))
}

func (u *Auth) Register(c *gin.Context) error {
	var req types.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest("手机号或密码格式错误")
	}

	resp, err := u.UserService.Register(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Created(c, resp)
	return nil
}

func (u *Auth) Login(c *gin.Context) error {
	var req types.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return errBadParams
	}

	resp, err := u.UserService.Login(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}
