package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Success 返回 200 与 JSON 数据
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// SuccessWithMessage 返回 200 与纯文本消息
func SuccessWithMessage(c *gin.Context, message string) {
	c.String(http.StatusOK, message)
}

// Error 返回纯文本错误，不携带任何内部细节
func Error(c *gin.Context, code int, message string) {
	if message == "" {
		message = http.StatusText(code)
	}
	c.String(code, message)
}

// BadRequest 返回400错误
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}
