package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"github.com/user/movie-api/internal/repository"
	"github.com/user/movie-api/internal/utils"
)

// 返回给客户端的固定文案
const (
	msgNotFound    = "Not Found"
	msgNotCreated  = "Movie not created"
	msgNotUpdated  = "Movie not updated"
	msgNotDeleted  = "Movie not deleted"
	msgDeleted     = "Movie deleted"
	msgInvalidID   = "Invalid movie id"
	msgInvalidYear = "Invalid year"
)

// Handler HTTP 处理器
type Handler struct {
	Store repository.MovieStore
	Log   hclog.Logger
}

// NewHandler 创建处理器
func NewHandler(repos *repository.Repositories, log hclog.Logger) *Handler {
	return &Handler{
		Store: repos.Movie,
		Log:   log.Named("handler"),
	}
}

// statusFor 按错误类别选择状态码
func statusFor(err error) int {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, repository.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, repository.ErrUnimplemented):
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

// fail 记录错误原因并返回固定文案；查询类接口只有 404 才使用 "Not Found"
func (h *Handler) fail(c *gin.Context, op string, err error, message string) {
	code := statusFor(err)
	if message == msgNotFound && code != http.StatusNotFound {
		message = ""
	}

	if code >= http.StatusInternalServerError {
		h.Log.Error("操作失败", "op", op, "status", code, "error", err)
	} else {
		h.Log.Debug("操作失败", "op", op, "status", code, "error", err)
	}
	utils.Error(c, code, message)
}

// bindJSON 绑定并校验请求体，失败时直接返回 400
func (h *Handler) bindJSON(c *gin.Context, op string, dst interface{}, message string) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fe.Field()+":"+fe.Tag())
		}
		h.Log.Debug("请求体校验失败", "op", op, "fields", fields)
	} else {
		h.Log.Debug("请求体解析失败", "op", op, "error", err)
	}
	utils.BadRequest(c, message)
	return false
}

// parseID 解析路径中的电影 ID
func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, msgInvalidID)
		return uuid.Nil, false
	}
	return id, true
}
