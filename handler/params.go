package handler

import (
	"strconv"

	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/pkg/response"

	"github.com/gin-gonic/gin"
)

var errBadParams = response.BadRequest("参数格式错误")

// pathID 解析路由中的数字 ID
func pathID(c *gin.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, response.BadRequest("id 参数错误")
	}
	return id, nil
}
