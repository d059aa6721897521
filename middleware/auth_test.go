package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/pkg/context"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("middleware-secret")

func authEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", Auth(secret), func(c *gin.Context) {
		uid, _ := context.GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"uid": uid})
	})
	return r
}

func call(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthRejects(t *testing.T) {
	r := authEngine()
	expired, err := jwt.GenerateToken(secret, 1, "13800000000", jwt.TypeAccess, -time.Minute)
	require.NoError(t, err)
	foreign, err := jwt.GenerateToken([]byte("other"), 1, "13800000000", jwt.TypeAccess, time.Hour)
	require.NoError(t, err)

	for name, header := range map[string]string{
		"missing":      "",
		"no scheme":    "abc",
		"wrong scheme": "Token abc",
		"empty token":  "Bearer ",
		"garbage":      "Bearer abc.def.ghi",
		"expired":      "Bearer " + expired,
		"wrong secret": "Bearer " + foreign,
	} {
		w := call(r, header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, name)
		assert.Contains(t, w.Body.String(), "message", name)
	}
}

func TestAuthPassesAndRotates(t *testing.T) {
	r := authEngine()

	fresh, err := jwt.GenerateToken(secret, 42, "13800000000", jwt.TypeAccess, jwt.DefaultExpire)
	require.NoError(t, err)
	w := call(r, "Bearer "+fresh)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"uid":42}`, w.Body.String())
	assert.Empty(t, w.Header().Get(HeaderNewToken))

	// 剩余不足 24 小时，下发新令牌
	ageing, err := jwt.GenerateToken(secret, 42, "13800000000", jwt.TypeAccess, time.Hour)
	require.NoError(t, err)
	w = call(r, "Bearer "+ageing)
	require.Equal(t, http.StatusOK, w.Code)
	rotated := w.Header().Get(HeaderNewToken)
	require.NotEmpty(t, rotated)

	claims, err := jwt.ParseToken(secret, jwt.TypeAccess, rotated)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), claims.UserID)
	assert.False(t, jwt.ShouldRotate(claims, RotateBuffer))
}
