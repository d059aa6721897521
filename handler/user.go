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

type User struct {
	Config      *config.Config
	UserService service.IUserService
}

func (u *User) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(u.Config.Jwt.Secret))
	g := r.Group("/user")
	g.Use(authorize)
	g.GET("/profile", context.Wrap(u.Profile))
	g.PUT("/profile", context.Wrap(u.UpdateProfile))
	g.PUT("/password", context.Wrap(u.UpdatePassword))
	g.POST("/avatar", context.Wrap(u.UploadAvatar))
}

func (u *User) Profile(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	user, err := u.UserService.Profile(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, user)
	return nil
}

func (u *User) UpdateProfile(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}

	var req types.ProfileUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		return errBadParams
	}

	user, err := u.UserService.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}
	response.Success(c, user)
	return nil
}

func (u *User) UpdatePassword(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}

	var req types.UpdatePasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest("新密码至少 6 位")
	}
	if err := u.UserService.UpdatePassword(c.Request.Context(), userID, &req); err != nil {
		return err
	}
	response.Success(c, types.MessageResp{Message: "密码已修改"})
	return nil
}

func (u *User) UploadAvatar(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}

	header, err := c.FormFile("image")
	if err != nil {
		return response.BadRequest("请选择图片")
	}

	resp, err := u.UserService.UploadAvatar(c.Request.Context(), userID, header)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}
