package response

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/pkg/util"
	"Inkwell/internal/service"
	"errors"
	log "log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
)

const (
	Ok                  = http.StatusOK
	Created             = http.StatusCreated
	NoContent           = http.StatusNoContent
	BadRequest          = http.StatusBadRequest
	Unauthorized        = http.StatusUnauthorized
	Forbidden           = http.StatusForbidden
	NotFound            = http.StatusNotFound
	Conflict            = http.StatusConflict
	InternalServerError = http.StatusInternalServerError
)

// Success 成功返回封装
func Success(c *gin.Context, data interface{}) {
	c.JSON(Ok, dto.Response{
		Code:    Ok,
		Message: "success",
		Data:    data,
	})
}

// SuccessCreated 201 返回
func SuccessCreated(c *gin.Context, data interface{}) {
	c.JSON(Created, dto.Response{
		Code:    Created,
		Message: "created",
		Data:    data,
	})
}

// Toggled toggle 类接口：新建返回 201，删除返回 204，均无响应体
func Toggled(c *gin.Context, created bool) {
	if created {
		c.Status(Created)
		return
	}
	c.Status(NoContent)
}

// Deleted 软删除成功
func Deleted(c *gin.Context) {
	c.Status(NoContent)
}

// Fail 失败返回封装，HTTP 状态码与业务码一致
func Fail(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, dto.Response{
		Code:    code,
		Message: message,
		Data:    nil,
	})
}

// Error 处理错误
func Error(c *gin.Context, err error) {
	if msg, ok := util.ValidationMessage(err); ok {
		Fail(c, BadRequest, msg)
		return
	}

	var unmarshalTypeError *json.UnmarshalTypeError
	if errors.As(err, &unmarshalTypeError) {
		Fail(c, BadRequest, "invalid json")
		return
	}
	var syntaxError *json.SyntaxError
	if errors.As(err, &syntaxError) {
		Fail(c, BadRequest, "invalid json")
		return
	}

	code, ok := service.CodeOf(err)
	if !ok {
		code = InternalServerError
		log.ErrorContext(c.Request.Context(), "Error", "err", err)
		Fail(c, code, service.UnExpectedError.Error())
		return
	}
	Fail(c, code, err.Error())
}

// BindError 请求绑定失败统一按 400 返回
func BindError(c *gin.Context, err error) {
	if msg, ok := util.ValidationMessage(err); ok {
		Fail(c, BadRequest, msg)
		return
	}
	Fail(c, BadRequest, service.ErrParamInvalid.Error())
}
