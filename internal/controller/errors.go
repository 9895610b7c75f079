package controller

import (
	"attendance_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

// handleError 把服务层错误映射为 HTTP 状态码：
// 校验失败 422，不存在 404，约束冲突 409，其余记录日志后返回 500
func handleError(ctx *gin.Context, err error) {
	if ve, ok := util.IsValidationError(err); ok {
		util.UnprocessableEntity(ctx, ve.Fields)
		return
	}

	switch {
	case errors.Is(err, util.ErrNotFound):
		util.NotFound(ctx, err.Error())
	case errors.Is(err, util.ErrConflict):
		util.Conflict(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}

// bindJSON 绑定并校验请求体，失败时已写出 422
func bindJSON(ctx *gin.Context, obj interface{}) bool {
	if err := ctx.ShouldBindJSON(obj); err != nil {
		handleError(ctx, util.TranslateBindError(err))
		return false
	}
	return true
}

// pathIDs 依次读取路径参数，任一非法时已写出 404
func pathIDs(ctx *gin.Context, names ...string) ([]uint, bool) {
	ids := make([]uint, len(names))
	for i, name := range names {
		id, err := util.ParamID(ctx, name)
		if err != nil {
			handleError(ctx, err)
			return nil, false
		}
		ids[i] = id
	}
	return ids, true
}
