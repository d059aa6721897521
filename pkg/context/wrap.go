package context

import (
	"errors"
	"net/http"

	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/pkg/log"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	CtxUserID = "user_id"
	CtxPhone  = "phone"
)

type HandlerFunc func(*gin.Context) error

func Wrap(h HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := h(c)
		if err == nil {
			return
		}
		// 如果已经写过响应，直接返回
		if c.Writer.Written() {
			return
		}
		// 业务错误
		var be *response.BizError
		if errors.As(err, &be) {
			response.Fail(c, be.Code, be.Msg)
			return
		}

		log.L.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		msg := "服务器内部错误"
		if gin.Mode() != gin.ReleaseMode {
			msg = err.Error()
		}
		response.Fail(c, http.StatusInternalServerError, msg)
	}
}

func GetUserID(c *gin.Context) (uint64, error) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return 0, response.Unauthorized("未登录")
	}

	uid, ok := v.(uint64)
	if !ok || uid == 0 {
		return 0, response.Unauthorized("user_id 类型错误")
	}

	return uid, nil
}
