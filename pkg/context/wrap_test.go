package context

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, h HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/x", Wrap(h))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	return w
}

func TestWrapBizError(t *testing.T) {
	w := serve(t, func(c *gin.Context) error {
		return response.NotFound("订单不存在")
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	var body response.ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "订单不存在", body.Message)
}

func TestWrapUnexpectedError(t *testing.T) {
	w := serve(t, func(c *gin.Context) error {
		return errors.New("connection refused")
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body response.ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "connection refused", body.Message)
}

func TestWrapSuccessUntouched(t *testing.T) {
	w := serve(t, func(c *gin.Context) error {
		response.Success(c, gin.H{"ok": true})
		return nil
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
}

func TestGetUserID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, err := GetUserID(c)
	assert.Error(t, err)

	c.Set(CtxUserID, uint64(7))
	uid, err := GetUserID(c)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), uid)
}
