package handler

import (
	"Inkwell/internal/pkg/response"
	"Inkwell/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

// pathID 解析路径中的数字 id，失败时直接写入 400
func pathID(c *gin.Context, name string) (uint64, bool) {
	id, ok := parseID(c.Param(name))
	if !ok {
		response.Error(c, service.ErrParamInvalid)
	}
	return id, ok
}

func parseID(raw string) (uint64, bool) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

func toggled(c *gin.Context, result service.ToggleResult, err error) {
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Toggled(c, result == service.Created)
}
