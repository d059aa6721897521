package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/pkg/context"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/pkg/jwt"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/pkg/response"

	"github.com/gin-gonic/gin"
)

// RotateBuffer 剩余有效期不足该值时在响应头下发新令牌
const RotateBuffer = 24 * time.Hour

const HeaderNewToken = "X-New-Access-Token"

func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Abort(c, http.StatusUnauthorized, "缺少 Authorization")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			response.Abort(c, http.StatusUnauthorized, "Authorization 格式错误")
			return
		}

		claims, err := jwt.ParseToken(secret, jwt.TypeAccess, parts[1])
		if err != nil || claims.UserID == 0 {
			response.Abort(c, http.StatusUnauthorized, "登录已失效，请重新登录")
			return
		}
		if jwt.ShouldRotate(claims, RotateBuffer) {
			if newToken, err := jwt.GenerateToken(secret, claims.UserID, claims.Phone, jwt.TypeAccess, jwt.DefaultExpire); err == nil {
				c.Header(HeaderNewToken, newToken)
			}
		}
		c.Set(context.CtxUserID, claims.UserID)
		c.Set(context.CtxPhone, claims.Phone)

		c.Next()
	}
}
